// Package domain defines the core types for asroute.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Hop: One classified line of trace output
//   - Token: The bracketed autonomous-system identifier of a hop
//   - ASRecord: A name record returned by a resolution service
//   - AppSettings: Resolver configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
