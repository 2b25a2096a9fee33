package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestResolverBackend_IsValid tests all valid and invalid backends
func TestResolverBackend_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		backend  ResolverBackend
		expected bool
	}{
		{name: "cymru is valid", backend: ResolverCymru, expected: true},
		{name: "mmdb is valid", backend: ResolverMMDB, expected: true},
		{name: "empty string is invalid", backend: ResolverBackend(""), expected: false},
		{name: "unknown backend is invalid", backend: ResolverBackend("whois"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.backend.IsValid())
		})
	}
}

func TestResolverBackend_IsLocal(t *testing.T) {
	assert.True(t, ResolverMMDB.IsLocal())
	assert.False(t, ResolverCymru.IsLocal())
}

func TestResolverBackend_Description(t *testing.T) {
	assert.Equal(t, "Team Cymru (DNS)", ResolverCymru.Description())
	assert.Equal(t, "MaxMind database (local)", ResolverMMDB.Description())
	assert.Equal(t, "Unknown", ResolverBackend("other").Description())
}

func TestMMDBSettings_IsConfigured(t *testing.T) {
	assert.False(t, MMDBSettings{}.IsConfigured())
	assert.True(t, MMDBSettings{Path: "/tmp/asn.mmdb"}.IsConfigured())
}

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Equal(t, ResolverCymru, settings.Resolver.Backend)
	assert.Equal(t, "asn.cymru.com", settings.Resolver.Cymru.Zone)
	assert.Empty(t, settings.Resolver.Cymru.Server)
	assert.Equal(t, 5*time.Second, settings.Resolver.Cymru.Timeout)
	assert.InDelta(t, 10.0, settings.Resolver.Cymru.Rate, 0.0001)
	assert.False(t, settings.Resolver.MMDB.IsConfigured())
}

func TestResolverSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *ResolverSettings)
		wantErr error
	}{
		{name: "defaults are valid", modify: func(*ResolverSettings) {}},
		{
			name:    "unknown backend",
			modify:  func(r *ResolverSettings) { r.Backend = "whois" },
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "empty zone",
			modify:  func(r *ResolverSettings) { r.Cymru.Zone = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero timeout",
			modify:  func(r *ResolverSettings) { r.Cymru.Timeout = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative rate",
			modify:  func(r *ResolverSettings) { r.Cymru.Rate = -1 },
			wantErr: ErrInvalidInput,
		},
		{
			name:   "zero rate disables pacing",
			modify: func(r *ResolverSettings) { r.Cymru.Rate = 0 },
		},
		{
			name:    "mmdb without path",
			modify:  func(r *ResolverSettings) { r.Backend = ResolverMMDB },
			wantErr: ErrInvalidInput,
		},
		{
			name: "mmdb ignores cymru fields",
			modify: func(r *ResolverSettings) {
				r.Backend = ResolverMMDB
				r.MMDB.Path = "/tmp/asn.mmdb"
				r.Cymru.Zone = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultAppSettings().Resolver
			tt.modify(&r)

			err := r.Validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolverSettings_Validate_ReportsAllProblems(t *testing.T) {
	r := DefaultAppSettings().Resolver
	r.Cymru.Zone = ""
	r.Cymru.Timeout = 0

	err := r.Validate()

	assert.ErrorContains(t, err, "zone")
	assert.ErrorContains(t, err, "timeout")
}
