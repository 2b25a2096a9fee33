package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/asroute/internal/core/domain"
	"github.com/custodia-labs/asroute/internal/core/ports/driven"
	"github.com/custodia-labs/asroute/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyResolverBackend = "resolver.backend"
	keyCymruServer     = "resolver.cymru.server"
	keyCymruZone       = "resolver.cymru.zone"
	keyCymruTimeoutMS  = "resolver.cymru.timeout_ms"
	keyCymruRate       = "resolver.cymru.rate"
	keyMMDBPath        = "resolver.mmdb.path"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Resolver: domain.ResolverSettings{
			Backend: s.getBackend(defaults.Resolver.Backend),
			Cymru: domain.CymruSettings{
				Server:  s.configStore.GetString(keyCymruServer), // Empty means system resolver
				Zone:    s.getString(keyCymruZone, defaults.Resolver.Cymru.Zone),
				Timeout: s.getTimeout(defaults.Resolver.Cymru.Timeout),
				Rate:    s.getFloat(keyCymruRate, defaults.Resolver.Cymru.Rate),
			},
			MMDB: domain.MMDBSettings{
				Path: s.configStore.GetString(keyMMDBPath),
			},
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	r := settings.Resolver
	if err := s.configStore.Set(keyResolverBackend, r.Backend.String()); err != nil {
		return fmt.Errorf("save resolver backend: %w", err)
	}
	if err := s.configStore.Set(keyCymruServer, r.Cymru.Server); err != nil {
		return fmt.Errorf("save cymru server: %w", err)
	}
	if err := s.configStore.Set(keyCymruZone, r.Cymru.Zone); err != nil {
		return fmt.Errorf("save cymru zone: %w", err)
	}
	if err := s.configStore.Set(keyCymruTimeoutMS, r.Cymru.Timeout.Milliseconds()); err != nil {
		return fmt.Errorf("save cymru timeout: %w", err)
	}
	if err := s.configStore.Set(keyCymruRate, r.Cymru.Rate); err != nil {
		return fmt.Errorf("save cymru rate: %w", err)
	}
	if err := s.configStore.Set(keyMMDBPath, r.MMDB.Path); err != nil {
		return fmt.Errorf("save mmdb path: %w", err)
	}
	return nil
}

// Validate checks that the configured backend can be created.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Resolver.Validate()
}

// ConfigPath returns where settings are stored.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

func (s *SettingsService) getBackend(fallback domain.ResolverBackend) domain.ResolverBackend {
	val := s.configStore.GetString(keyResolverBackend)
	if val == "" {
		return fallback
	}
	// Unknown values are kept so Validate can report them.
	return domain.ResolverBackend(val)
}

func (s *SettingsService) getString(key, fallback string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return fallback
}

func (s *SettingsService) getFloat(key string, fallback float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getTimeout(fallback time.Duration) time.Duration {
	if ms := s.configStore.GetInt(keyCymruTimeoutMS); ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
