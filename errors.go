package grpf

import (
	"errors"
	"fmt"
)

// InvalidDomain and TriangulatorFailure are fatal and returned to the
// caller; LimitExceeded is a diagnostic - Grpf still returns its
// best-effort roots/poles alongside it. A non-finite function evaluation
// has no Go error value of its own: it is absorbed silently into the
// quadrant model as geom.QNode.
var (
	// ErrInvalidDomain: origcoords is empty, degenerate (collinear), or its
	// bounding rectangle cannot be mapped into the triangulator's
	// admissible range; also returned when Params fails validation.
	ErrInvalidDomain = errors.New("grpf: invalid domain")

	// ErrLimitExceeded: max_iterations or max_nodes was reached before the
	// refinement loop converged.
	ErrLimitExceeded = errors.New("grpf: refinement limit exceeded")

	// ErrTriangulatorFailure: the underlying Triangulator implementation
	// reported a failure it could not recover from.
	ErrTriangulatorFailure = errors.New("grpf: triangulator failure")
)

// errWrap formats msg/args and wraps it under sentinel with %w so callers
// can errors.Is/errors.As against the sentinel.
func errWrap(sentinel error, msg string, args ...interface{}) error {
	return fmt.Errorf("%w: "+msg, append([]interface{}{sentinel}, args...)...)
}
