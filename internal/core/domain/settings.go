package domain

import (
	"errors"
	"fmt"
	"time"
)

const unknownDescription = "Unknown"

// ResolverBackend identifies the service used to name autonomous systems.
type ResolverBackend string

// Available resolver backends.
const (
	// ResolverCymru queries the Team Cymru IP-to-ASN DNS zone.
	ResolverCymru ResolverBackend = "cymru"

	// ResolverMMDB reads a local MaxMind GeoLite2-ASN database.
	ResolverMMDB ResolverBackend = "mmdb"
)

// IsValid returns true if the backend is recognised.
func (b ResolverBackend) IsValid() bool {
	switch b {
	case ResolverCymru, ResolverMMDB:
		return true
	default:
		return false
	}
}

// IsLocal returns true if the backend works without network access.
func (b ResolverBackend) IsLocal() bool {
	return b == ResolverMMDB
}

// String returns the string representation.
func (b ResolverBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b ResolverBackend) Description() string {
	switch b {
	case ResolverCymru:
		return "Team Cymru (DNS)"
	case ResolverMMDB:
		return "MaxMind database (local)"
	default:
		return unknownDescription
	}
}

// CymruSettings holds configuration for the DNS resolver.
type CymruSettings struct {
	// Server is the DNS server as host:port. Empty uses the system resolver.
	Server string

	// Zone is the DNS zone holding AS name records.
	Zone string

	// Timeout bounds a single DNS exchange.
	Timeout time.Duration

	// Rate is the maximum number of queries per second. Zero disables pacing.
	Rate float64
}

// MMDBSettings holds configuration for the local database resolver.
type MMDBSettings struct {
	// Path is the location of the .mmdb file.
	Path string
}

// IsConfigured returns true if a database path is set.
func (m MMDBSettings) IsConfigured() bool {
	return m.Path != ""
}

// ResolverSettings holds resolver selection and per-backend configuration.
type ResolverSettings struct {
	Backend ResolverBackend
	Cymru   CymruSettings
	MMDB    MMDBSettings
}

// Validate checks the settings of the selected backend.
// All problems are reported together.
func (r ResolverSettings) Validate() error {
	var errs []error
	switch r.Backend {
	case ResolverCymru:
		if r.Cymru.Zone == "" {
			errs = append(errs, fmt.Errorf("%w: cymru zone is empty", ErrInvalidInput))
		}
		if r.Cymru.Timeout <= 0 {
			errs = append(errs, fmt.Errorf("%w: cymru timeout must be positive", ErrInvalidInput))
		}
		if r.Cymru.Rate < 0 {
			errs = append(errs, fmt.Errorf("%w: cymru rate must not be negative", ErrInvalidInput))
		}
	case ResolverMMDB:
		if !r.MMDB.IsConfigured() {
			errs = append(errs, fmt.Errorf("%w: mmdb path is not set", ErrInvalidInput))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: resolver %q", ErrUnsupportedType, r.Backend))
	}
	return errors.Join(errs...)
}

// AppSettings holds all application configuration.
type AppSettings struct {
	Resolver ResolverSettings
}

// Default resolver values.
const (
	DefaultCymruZone    = "asn.cymru.com"
	DefaultCymruServer  = "1.1.1.1:53"
	DefaultCymruTimeout = 5 * time.Second
	DefaultCymruRate    = 10.0
)

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Resolver: ResolverSettings{
			Backend: ResolverCymru,
			Cymru: CymruSettings{
				Zone:    DefaultCymruZone,
				Timeout: DefaultCymruTimeout,
				Rate:    DefaultCymruRate,
			},
		},
	}
}
