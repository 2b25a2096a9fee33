package services

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/asroute/internal/core/domain"
	"github.com/custodia-labs/asroute/internal/core/ports/driven"
	"github.com/custodia-labs/asroute/internal/core/ports/driving"
	"github.com/custodia-labs/asroute/internal/logger"
)

// Ensure AnnotateService implements the interface.
var _ driving.AnnotateService = (*AnnotateService)(nil)

// maxLineSize bounds a single line of trace input.
const maxLineSize = 1024 * 1024

// usageHint is shown in verbose mode when a hop has no [ASN] token.
const usageHint = "Check you passed the -a argument to traceroute. " +
	"Expected usage 'traceroute -a example.com | asroute'"

// AnnotateService is the stream driver. It owns the dedup state for one run,
// so a fresh instance must be used per input stream.
type AnnotateService struct {
	names *NameResolver
	gate  DedupGate
}

// NewAnnotateService creates a new annotate service.
func NewAnnotateService(resolver driven.ASNResolver) *AnnotateService {
	return &AnnotateService{
		names: NewNameResolver(resolver),
	}
}

// Run reads trace lines from r and writes annotations to w, one hop at a time.
func (s *AnnotateService) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	logger.Section("Annotate")

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	lines := 0
	for scanner.Scan() {
		lines++
		out, ok := s.Annotate(ctx, scanner.Text())
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return fmt.Errorf("write annotation: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInputRead, err)
	}

	logger.Info("Processed %d line(s)", lines)
	return nil
}

// Annotate processes one raw line and returns its output line, if any.
// Lookup and parse failures are reported in verbose mode and swallowed.
func (s *AnnotateService) Annotate(ctx context.Context, raw string) (string, bool) {
	hop := Classify(Normalize(raw))

	switch hop.Kind {
	case domain.HopNoResponse:
		return domain.NoResponseLine, true
	case domain.HopReserved:
		return domain.ReservedLine, true
	}

	token, ok := ExtractToken(hop.Line)
	if !ok {
		logger.Warn("%v. %s", domain.ErrMissingIdentifier, usageHint)
		return "", false
	}

	if !s.gate.ShouldProcess(token) {
		logger.Debug("Same AS as previous hop: %s", token)
		return "", false
	}
	s.gate.Record(token)

	name, err := s.names.Resolve(ctx, token)
	if err != nil {
		logger.Warn("%v", err)
		return "", false
	}

	return domain.AnnotatedLine(name), true
}

// Resolve names a single token without touching the dedup state.
func (s *AnnotateService) Resolve(ctx context.Context, token domain.Token) (string, error) {
	return s.names.Resolve(ctx, token)
}
