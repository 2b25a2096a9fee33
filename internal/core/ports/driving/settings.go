package driving

import "github.com/custodia-labs/asroute/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Validate checks that the configured backend can be created.
	Validate() error

	// ConfigPath returns where settings are stored.
	ConfigPath() string
}
