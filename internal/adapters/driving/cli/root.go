// Package cli is the command-line driving adapter for asroute.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/asroute/internal/adapters/driven/config/file"
	"github.com/custodia-labs/asroute/internal/adapters/driven/resolver"
	"github.com/custodia-labs/asroute/internal/core/domain"
	"github.com/custodia-labs/asroute/internal/core/ports/driven"
	"github.com/custodia-labs/asroute/internal/core/ports/driving"
	"github.com/custodia-labs/asroute/internal/core/services"
	"github.com/custodia-labs/asroute/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

var (
	verbose          bool
	configDir        string
	resolverOverride string
)

// Collaborators, replaceable in tests.
var (
	settingsService driving.SettingsService
	resolverFactory = resolver.New
)

var rootCmd = &cobra.Command{
	Use:   "asroute",
	Short: "Summarise the autonomous systems a traceroute passes through",
	Long: `Reads traceroute -a (or lft) output on stdin and prints the name of
each autonomous system on the path, once per change of AS.

  traceroute -a example.com | asroute

Hops that did not answer print "-> *" and hops in reserved address space
print "-> AS0 (Reserved)". Use --verbose to see why a hop was skipped.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runAnnotate,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"print diagnostics for skipped hops to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "",
		"config directory (default ~/.asroute)")
	rootCmd.PersistentFlags().StringVar(&resolverOverride, "resolver", "",
		"resolver backend for this run (cymru, mmdb)")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func runAnnotate(cmd *cobra.Command, _ []string) error {
	asnResolver := openAnnotateResolver()
	defer asnResolver.Close()

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.Warn("Reading trace from a terminal. Expected usage 'traceroute -a example.com | asroute'")
	}

	return services.NewAnnotateService(asnResolver).Run(cmd.Context(), in, cmd.OutOrStdout())
}

// openAnnotateResolver never fails: the filter must still print hop markers
// when configuration is broken. Config problems fall back to defaults and a
// resolver that cannot be created fails every lookup instead.
func openAnnotateResolver() driven.ASNResolver {
	settings, err := loadSettings()
	if err != nil {
		logger.Warn("%v. Using default settings", err)
		defaults := domain.DefaultAppSettings()
		settings = &defaults
	}

	asnResolver, err := newResolver(settings)
	if err != nil {
		logger.Warn("%v", err)
		return driven.ASNResolverFunc(func(context.Context, uint32) ([]domain.ASRecord, error) {
			return nil, err
		})
	}
	return asnResolver
}

// getSettingsService returns the configured settings service, creating the
// file-backed one on first use.
func getSettingsService() (driving.SettingsService, error) {
	if settingsService != nil {
		return settingsService, nil
	}
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	settingsService = services.NewSettingsService(store)
	return settingsService, nil
}

// openResolver creates the resolver for this run, honouring --resolver.
// Unlike the filter, configuration errors are returned.
func openResolver() (driven.ASNResolver, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}
	return newResolver(settings)
}

func loadSettings() (*domain.AppSettings, error) {
	svc, err := getSettingsService()
	if err != nil {
		return nil, err
	}
	settings, err := svc.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

func newResolver(settings *domain.AppSettings) (driven.ASNResolver, error) {
	if resolverOverride != "" {
		settings.Resolver.Backend = domain.ResolverBackend(resolverOverride)
	}
	if resolverFactory == nil {
		return nil, errors.New("resolver not configured")
	}
	return resolverFactory(settings.Resolver)
}
