package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/asroute/internal/core/domain"
	"github.com/custodia-labs/asroute/internal/core/ports/driven"
	"github.com/custodia-labs/asroute/internal/logger"
)

// asPrefix is removed from tokens before the number is parsed.
const asPrefix = "AS"

// NameResolver turns identifier tokens into display names through a
// resolution service.
type NameResolver struct {
	resolver driven.ASNResolver
}

// NewNameResolver creates a resolver adapter over the given service.
func NewNameResolver(resolver driven.ASNResolver) *NameResolver {
	return &NameResolver{resolver: resolver}
}

// ParseASN extracts the AS number from a token such as "AS13335".
// Every "AS" in the token is dropped, not just a leading one, and a single
// leading "+" is accepted.
func ParseASN(token domain.Token) (uint32, error) {
	digits := strings.ReplaceAll(string(token), asPrefix, "")
	asn, err := strconv.ParseUint(strings.TrimPrefix(digits, "+"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", domain.ErrInvalidIdentifier, token, err)
	}
	return uint32(asn), nil
}

// Resolve returns the name of the first record for token, or "?" when the
// service returns no records.
func (r *NameResolver) Resolve(ctx context.Context, token domain.Token) (string, error) {
	asn, err := ParseASN(token)
	if err != nil {
		return "", err
	}

	logger.Debug("Looking up AS%d", asn)
	records, err := r.resolver.Lookup(ctx, asn)
	if err != nil {
		return "", fmt.Errorf("%w AS%d: %w", domain.ErrLookupFailed, asn, err)
	}
	logger.Debug("AS%d: %d record(s)", asn, len(records))

	return domain.DisplayName(records), nil
}
