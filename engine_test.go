package grpf

import (
	"errors"
	"math/cmplx"
	"testing"

	"github.com/deadsy/grpf/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(side float64) []complex128 {
	return domain.Rectangular(complex(-side, -side), complex(side, side), side/6)
}

func locate(t *testing.T, got []RootPole, want complex128, tol float64) RootPole {
	t.Helper()
	for _, rp := range got {
		if cmplx.Abs(rp.Location-want) < tol {
			return rp
		}
	}
	t.Fatalf("no root/pole found near %v among %v", want, got)
	return RootPole{}
}

func TestGrpfFindsRootsAndPoleOfRationalFunction(t *testing.T) {
	// (z-1)(z-2i)(z+1)^3 / (z+i) over a region enclosing all of it.
	f := func(z complex128) complex128 {
		num := (z - 1) * (z - complex(0, 2)) * (z + 1) * (z + 1) * (z + 1)
		den := z + complex(0, 1)
		return num / den
	}

	params := DefaultParams()
	params.Tolerance = 1e-3
	res, err := Grpf(f, square(3), params, nil)
	require.NoError(t, err)
	require.NotNil(t, res)

	locate(t, res.Roots, 1, 0.2)
	locate(t, res.Roots, complex(0, 2), 0.2)
	neg1 := locate(t, res.Roots, -1, 0.2)
	assert.Equal(t, 3, neg1.Multiplicity)

	pole := locate(t, res.Poles, complex(0, -1), 0.2)
	assert.Equal(t, 1, pole.Multiplicity)
}

func TestGrpfFindsRootsOfPoleFreePolynomial(t *testing.T) {
	f := func(z complex128) complex128 { return z*z + 1 }

	params := DefaultParams()
	params.Tolerance = 1e-3
	res, err := Grpf(f, square(3), params, nil)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Empty(t, res.Poles)
	locate(t, res.Roots, complex(0, 1), 0.2)
	locate(t, res.Roots, complex(0, -1), 0.2)
}

func TestGrpfFindsOnlyPoles(t *testing.T) {
	f := func(z complex128) complex128 {
		return 1 / ((z - 0.5) * (z + 0.5))
	}

	params := DefaultParams()
	params.Tolerance = 1e-3
	res, err := Grpf(f, square(2), params, nil)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Empty(t, res.Roots)
	locate(t, res.Poles, 0.5, 0.2)
	locate(t, res.Poles, -0.5, 0.2)
}

func TestGrpfFindsNothingInEmptyRegion(t *testing.T) {
	f := func(z complex128) complex128 { return cmplx.Exp(z) }

	params := DefaultParams()
	params.Tolerance = 1e-3
	res, err := Grpf(f, square(1), params, nil)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Empty(t, res.Roots)
	assert.Empty(t, res.Poles)
}

func TestGrpfReportsLimitExceededWithoutFailing(t *testing.T) {
	f := func(z complex128) complex128 { return z*z + 1 }

	params := DefaultParams()
	params.Tolerance = 1e-12
	params.MaxIterations = 2
	res, err := Grpf(f, square(3), params, nil)
	require.NoError(t, err)
	require.NotNil(t, res)
	// LimitExceeded is a non-fatal diagnostic, not an error.
	assert.LessOrEqual(t, res.Iterations, 2)
}

func TestGrpfRejectsEmptyOrigcoords(t *testing.T) {
	_, err := Grpf(func(z complex128) complex128 { return z }, nil, DefaultParams(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDomain))
}

func TestGrpfRejectsCollinearOrigcoords(t *testing.T) {
	pts := []complex128{0, 1, 2, 3}
	_, err := Grpf(func(z complex128) complex128 { return z }, pts, DefaultParams(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDomain))
}

func TestGrpfRejectsInvalidParams(t *testing.T) {
	params := DefaultParams()
	params.Tolerance = 0
	_, err := Grpf(func(z complex128) complex128 { return z }, square(1), params, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDomain))
}

func TestGrpfDiagnosticsAreAlwaysPopulated(t *testing.T) {
	f := func(z complex128) complex128 { return z*z + 1 }
	res, err := Grpf(f, square(3), DefaultParams(), nil)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.NotNil(t, res.Diagnostics.Mesh)
	assert.NotNil(t, res.Diagnostics.Unmap)
	assert.NotEmpty(t, res.Diagnostics.Quadrants)
}
