package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/asroute/internal/core/domain"
)

var (
	settingsServer  string
	settingsZone    string
	settingsTimeout time.Duration
	settingsRate    float64
	settingsPath    string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the service used to name autonomous systems.

Use subcommands to change a setting.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsResolverCmd = &cobra.Command{
	Use:   "resolver [backend]",
	Short: "Select the resolver backend",
	Long: `Select the service used to name autonomous systems.

Available backends:
  cymru - Team Cymru DNS lookups (default, needs network access)
  mmdb  - Local MaxMind GeoLite2-ASN database (requires --path)`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{domain.ResolverCymru.String(), domain.ResolverMMDB.String()},
	RunE:      runSettingsResolver,
}

func init() {
	settingsResolverCmd.Flags().StringVar(&settingsServer, "server", "", "DNS server as host:port (cymru)")
	settingsResolverCmd.Flags().StringVar(&settingsZone, "zone", "", "DNS zone holding AS names (cymru)")
	settingsResolverCmd.Flags().DurationVar(&settingsTimeout, "timeout", 0, "timeout for one DNS query (cymru)")
	settingsResolverCmd.Flags().Float64Var(&settingsRate, "rate", 0, "maximum queries per second, 0 for no limit (cymru)")
	settingsResolverCmd.Flags().StringVar(&settingsPath, "path", "", "path to the .mmdb file (mmdb)")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsResolverCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := getSettingsService()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	r := settings.Resolver
	cmd.Printf("Config file: %s\n", svc.ConfigPath())
	cmd.Println()
	cmd.Printf("Resolver: %s\n", r.Backend.Description())
	cmd.Println()
	cmd.Println("Team Cymru:")
	cmd.Printf("  Server:  %s\n", valueOr(r.Cymru.Server, "(system resolver)"))
	cmd.Printf("  Zone:    %s\n", r.Cymru.Zone)
	cmd.Printf("  Timeout: %s\n", r.Cymru.Timeout)
	if r.Cymru.Rate > 0 {
		cmd.Printf("  Rate:    %.1f/s\n", r.Cymru.Rate)
	} else {
		cmd.Println("  Rate:    unlimited")
	}
	cmd.Println()
	cmd.Println("MaxMind database:")
	cmd.Printf("  Path:    %s\n", valueOr(r.MMDB.Path, "(not set)"))

	if err := svc.Validate(); err != nil {
		cmd.Println()
		cmd.Printf("Warning: %v\n", err)
	}

	return nil
}

func runSettingsResolver(cmd *cobra.Command, args []string) error {
	svc, err := getSettingsService()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	backend := domain.ResolverBackend(args[0])
	if !backend.IsValid() {
		return fmt.Errorf("%w: resolver %q (use cymru or mmdb)", domain.ErrUnsupportedType, args[0])
	}
	settings.Resolver.Backend = backend

	flags := cmd.Flags()
	if flags.Changed("server") {
		settings.Resolver.Cymru.Server = settingsServer
	}
	if flags.Changed("zone") {
		settings.Resolver.Cymru.Zone = settingsZone
	}
	if flags.Changed("timeout") {
		settings.Resolver.Cymru.Timeout = settingsTimeout
	}
	if flags.Changed("rate") {
		settings.Resolver.Cymru.Rate = settingsRate
	}
	if flags.Changed("path") {
		settings.Resolver.MMDB.Path = settingsPath
	}

	if err := settings.Resolver.Validate(); err != nil {
		return err
	}
	if err := svc.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Resolver set to: %s\n", backend.Description())
	return nil
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
