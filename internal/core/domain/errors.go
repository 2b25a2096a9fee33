package domain

import "errors"

// Domain errors represent annotation failures.
// Only ErrInputRead stops a run; the others cost one hop its annotation.
var (
	// ErrInputRead indicates the trace input stream could not be read.
	ErrInputRead = errors.New("failed to read line")

	// ErrMissingIdentifier indicates a hop line carries no bracketed [ASN] token.
	ErrMissingIdentifier = errors.New("couldn't find [ASN] in line")

	// ErrInvalidIdentifier indicates the token's number could not be parsed.
	ErrInvalidIdentifier = errors.New("failed to parse ASN")

	// ErrLookupFailed indicates the resolution service call failed.
	ErrLookupFailed = errors.New("failed to lookup ASN")

	// ErrNotFound indicates the resolution service has no entry for a number.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown resolver backend.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrResolverUnavailable indicates the configured resolver could not be created.
	ErrResolverUnavailable = errors.New("resolver unavailable")
)
