package grpf

// Params is the immutable configuration record for one Grpf call. It is a
// plain struct with a DefaultParams constructor rather than a variadic or
// functional-options constructor.
type Params struct {
	// TessSizeHint is an initial-capacity hint passed to the Triangulator.
	TessSizeHint int
	// Tolerance is the edge-length stop, in user coordinates.
	Tolerance float64
	// MaxIterations bounds the refinement loop.
	MaxIterations int
	// MaxNodes bounds total vertex count.
	MaxNodes int
	// SkinnyRatio is the longest/shortest edge ratio above which a
	// triangle is considered skinny.
	SkinnyRatio float64
	// Multithreading enables the parallel function-evaluation map.
	Multithreading bool
}

// DefaultParams returns the documented default configuration.
func DefaultParams() Params {
	return Params{
		TessSizeHint:   5000,
		Tolerance:      1e-9,
		MaxIterations:  100,
		MaxNodes:       500000,
		SkinnyRatio:    3,
		Multithreading: false,
	}
}

// validate checks the recognized-option constraints.
func (p Params) validate(initialVertexCount int) error {
	if p.TessSizeHint < 1 {
		return errWrap(ErrInvalidDomain, "tess_sizehint must be >= 1, got %d", p.TessSizeHint)
	}
	if p.Tolerance <= 0 {
		return errWrap(ErrInvalidDomain, "tolerance must be positive, got %v", p.Tolerance)
	}
	if p.MaxIterations < 0 {
		return errWrap(ErrInvalidDomain, "max_iterations must be >= 0, got %d", p.MaxIterations)
	}
	if p.MaxNodes < initialVertexCount {
		return errWrap(ErrInvalidDomain, "max_nodes must be >= initial vertex count %d, got %d", initialVertexCount, p.MaxNodes)
	}
	if p.SkinnyRatio <= 1 {
		return errWrap(ErrInvalidDomain, "skinny_ratio must be > 1, got %v", p.SkinnyRatio)
	}
	return nil
}
