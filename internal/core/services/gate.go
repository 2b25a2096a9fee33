package services

import "github.com/custodia-labs/asroute/internal/core/domain"

// DedupGate remembers the last identifier looked up so that consecutive
// hops in the same autonomous system are only named once.
// The zero value is ready to use; it starts out holding the empty token,
// so an empty first token is suppressed.
type DedupGate struct {
	last domain.Token
}

// ShouldProcess reports whether token differs from the last recorded one.
func (g *DedupGate) ShouldProcess(token domain.Token) bool {
	return token != g.last
}

// Record makes token the last identifier seen.
func (g *DedupGate) Record(token domain.Token) {
	g.last = token
}
