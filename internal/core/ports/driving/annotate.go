package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/asroute/internal/core/domain"
)

// AnnotateService turns trace output into AS name annotations.
type AnnotateService interface {
	// Run reads trace lines from r until EOF and writes one line to w per hop
	// that warrants one. Only a read failure ends the run early.
	Run(ctx context.Context, r io.Reader, w io.Writer) error

	// Resolve names a single identifier token such as "AS13335".
	Resolve(ctx context.Context, token domain.Token) (string, error)
}
