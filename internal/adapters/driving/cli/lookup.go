package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/asroute/internal/core/domain"
	"github.com/custodia-labs/asroute/internal/core/services"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [asn...]",
	Short: "Look up autonomous system names",
	Long: `Resolves one or more AS numbers without reading a trace.
Numbers may be given as 13335, AS13335 or [AS13335].`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	asnResolver, err := openResolver()
	if err != nil {
		return err
	}
	defer asnResolver.Close()

	svc := services.NewAnnotateService(asnResolver)
	failed := 0
	for _, arg := range args {
		name, err := svc.Resolve(cmd.Context(), lookupToken(arg))
		if err != nil {
			failed++
			cmd.PrintErrf("%s: %v\n", arg, err)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), domain.AnnotatedLine(name))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d lookups failed", failed, len(args))
	}
	return nil
}

// lookupToken turns user input into the token form found in traces.
func lookupToken(arg string) domain.Token {
	token := strings.Trim(services.Normalize(strings.TrimSpace(arg)), "[]")
	if !strings.HasPrefix(token, "AS") {
		token = "AS" + token
	}
	return domain.Token(token)
}
