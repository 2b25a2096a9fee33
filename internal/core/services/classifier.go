package services

import (
	"strings"

	"github.com/custodia-labs/asroute/internal/core/domain"
)

// Normalize upper-cases a raw trace line.
func Normalize(line string) string {
	return strings.ToUpper(line)
}

// Classify decides what a normalized line represents.
// A "*" anywhere wins over reserved markers on the same line.
func Classify(line string) domain.Hop {
	switch {
	case strings.Contains(line, domain.NoResponseMarker):
		return domain.Hop{Kind: domain.HopNoResponse}
	case strings.Contains(line, domain.ReservedMarker), strings.Contains(line, domain.UnknownMarker):
		return domain.Hop{Kind: domain.HopReserved}
	default:
		return domain.Hop{Kind: domain.HopCandidate, Line: line}
	}
}

// ExtractToken returns the text between the first "[" and the first "]".
// The token is not validated here; see ParseASN.
func ExtractToken(line string) (domain.Token, bool) {
	start := strings.Index(line, "[")
	end := strings.Index(line, "]")
	if start < 0 || end < 0 || end < start {
		return "", false
	}
	return domain.Token(line[start+1 : end]), true
}
