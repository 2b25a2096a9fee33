package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/asroute/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/asroute/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("resolver.backend", "mmdb")
	_ = store.Set("resolver.cymru.server", "9.9.9.9:53")
	_ = store.Set("resolver.cymru.zone", "asn.example.net")
	_ = store.Set("resolver.cymru.timeout_ms", int64(1500))
	_ = store.Set("resolver.cymru.rate", int64(0))
	_ = store.Set("resolver.mmdb.path", "/var/lib/GeoIP/GeoLite2-ASN.mmdb")

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	r := settings.Resolver
	assert.Equal(t, domain.ResolverMMDB, r.Backend)
	assert.Equal(t, "9.9.9.9:53", r.Cymru.Server)
	assert.Equal(t, "asn.example.net", r.Cymru.Zone)
	assert.Equal(t, 1500*time.Millisecond, r.Cymru.Timeout)
	assert.Zero(t, r.Cymru.Rate, "explicit zero disables pacing")
	assert.Equal(t, "/var/lib/GeoIP/GeoLite2-ASN.mmdb", r.MMDB.Path)
}

func TestSettingsService_SaveAndGet_RoundTrip(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	settings := domain.DefaultAppSettings()
	settings.Resolver.Backend = domain.ResolverMMDB
	settings.Resolver.Cymru.Timeout = 2 * time.Second
	settings.Resolver.Cymru.Rate = 2.5
	settings.Resolver.MMDB.Path = "/tmp/asn.mmdb"

	require.NoError(t, service.Save(&settings))
	loaded, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, settings, *loaded)
}

func TestSettingsService_Validate(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]any
		wantErr error
	}{
		{name: "defaults are valid", values: nil},
		{
			name:    "unknown backend",
			values:  map[string]any{"resolver.backend": "whois"},
			wantErr: domain.ErrUnsupportedType,
		},
		{
			name:    "mmdb without path",
			values:  map[string]any{"resolver.backend": "mmdb"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:   "mmdb with path",
			values: map[string]any{"resolver.backend": "mmdb", "resolver.mmdb.path": "/tmp/asn.mmdb"},
		},
		{
			name:    "negative rate",
			values:  map[string]any{"resolver.cymru.rate": -1.0},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			for k, v := range tt.values {
				require.NoError(t, store.Set(k, v))
			}

			err := NewSettingsService(store).Validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSettingsService_ConfigPath(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, ":memory:", service.ConfigPath())
}
