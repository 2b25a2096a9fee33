package driven

import (
	"context"

	"github.com/custodia-labs/asroute/internal/core/domain"
)

// ASNResolver is the external resolution service keyed by AS number.
// Calls are synchronous and fallible; callers never retry.
type ASNResolver interface {
	// Lookup returns the name records for asn, possibly none.
	// Returns domain.ErrNotFound when the service knows nothing of asn.
	Lookup(ctx context.Context, asn uint32) ([]domain.ASRecord, error)

	// Close releases resources held by the resolver.
	Close() error
}

// ASNResolverFunc transforms a func into an [ASNResolver].
type ASNResolverFunc func(ctx context.Context, asn uint32) ([]domain.ASRecord, error)

var _ ASNResolver = ASNResolverFunc(nil)

// Lookup implements ASNResolver.
func (fn ASNResolverFunc) Lookup(ctx context.Context, asn uint32) ([]domain.ASRecord, error) {
	return fn(ctx, asn)
}

// Close implements ASNResolver.
func (fn ASNResolverFunc) Close() error {
	return nil
}
