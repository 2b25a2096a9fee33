// Package resolver provides the factory that turns resolver settings into a
// driven.ASNResolver.
package resolver

import (
	"fmt"

	"github.com/custodia-labs/asroute/internal/adapters/driven/cymru"
	"github.com/custodia-labs/asroute/internal/adapters/driven/mmdb"
	"github.com/custodia-labs/asroute/internal/core/domain"
	"github.com/custodia-labs/asroute/internal/core/ports/driven"
	"github.com/custodia-labs/asroute/internal/logger"
)

// New creates the resolver selected by settings.
// Errors wrap domain.ErrResolverUnavailable with guidance for the user.
func New(settings domain.ResolverSettings) (driven.ASNResolver, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'asroute settings show' to check your configuration",
			domain.ErrResolverUnavailable, err)
	}

	logger.Info("Resolver: %s", settings.Backend.Description())

	var (
		resolver driven.ASNResolver
		err      error
	)
	switch settings.Backend {
	case domain.ResolverCymru:
		resolver, err = cymru.New(settings.Cymru)
	case domain.ResolverMMDB:
		resolver, err = mmdb.Open(settings.MMDB.Path)
	default:
		err = fmt.Errorf("%w: resolver %q", domain.ErrUnsupportedType, settings.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrResolverUnavailable, err)
	}
	return resolver, nil
}
