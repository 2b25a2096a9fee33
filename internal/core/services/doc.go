// Package services implements the driving port interfaces.
// Services contain the hop annotation logic and orchestrate
// calls to driven ports (adapters).
//
// The per-line pipeline is:
//
//	Normalize -> Classify -> ExtractToken -> DedupGate -> NameResolver
//
// Services are pure Go with no external dependencies beyond the logger.
package services
