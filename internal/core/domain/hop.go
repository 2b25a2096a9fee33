package domain

// HopKind is the classification of one line of trace output.
type HopKind int

// Classification outcomes. Exactly one applies to a line.
const (
	// HopCandidate is a line eligible for identifier extraction.
	HopCandidate HopKind = iota

	// HopNoResponse is a hop that did not answer ("*").
	HopNoResponse

	// HopReserved is a hop in reserved or unknown address space ([AS0], [AS?]).
	HopReserved
)

// String returns the string representation.
func (k HopKind) String() string {
	switch k {
	case HopCandidate:
		return "candidate"
	case HopNoResponse:
		return "no_response"
	case HopReserved:
		return "reserved"
	default:
		return "unknown"
	}
}

// Markers recognised in normalized hop lines.
const (
	NoResponseMarker = "*"
	ReservedMarker   = "[AS0]"
	UnknownMarker    = "[AS?]"
)

// Output lines written for each annotated hop.
const (
	// ArrowPrefix starts every output line.
	ArrowPrefix = "-> "

	// NoResponseLine is written for a hop that did not answer.
	NoResponseLine = ArrowPrefix + "*"

	// ReservedLine is written for a hop in reserved address space.
	ReservedLine = ArrowPrefix + "AS0 (Reserved)"

	// UnknownName is shown when the resolution service returns no records.
	UnknownName = "?"
)

// Hop is the classification outcome for one normalized line.
// Line is only meaningful for candidates.
type Hop struct {
	Kind HopKind
	Line string
}

// Token is the raw text found between the first "[" and first "]" of a hop,
// normally "AS" followed by digits.
type Token string

// String returns the string representation.
func (t Token) String() string {
	return string(t)
}

// AnnotatedLine formats the output line for a resolved name.
func AnnotatedLine(name string) string {
	return ArrowPrefix + name
}
