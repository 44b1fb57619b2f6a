package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangularCoversBoundsAndRejectsBadStep(t *testing.T) {
	assert.Nil(t, Rectangular(complex(0, 0), complex(1, 1), 0))
	assert.Nil(t, Rectangular(complex(0, 0), complex(1, 1), -1))

	pts := Rectangular(complex(-1, -1), complex(1, 1), 0.3)
	require.NotEmpty(t, pts)

	minX, maxX, minY, maxY := math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		x, y := real(p), imag(p)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	assert.GreaterOrEqual(t, minX, -1.0-1e-9)
	assert.LessOrEqual(t, maxX, 1.0+1e-9)
	assert.GreaterOrEqual(t, minY, -1.0-1e-9)
	assert.LessOrEqual(t, maxY, 1.0+1e-9)
}

func TestRectangularHandlesSwappedCorners(t *testing.T) {
	a := Rectangular(complex(1, 1), complex(-1, -1), 0.4)
	b := Rectangular(complex(-1, -1), complex(1, 1), 0.4)
	assert.Equal(t, len(b), len(a))
}

func TestDiskIncludesCenterAndRejectsBadInput(t *testing.T) {
	assert.Nil(t, Disk(0, 1, 0))
	assert.Nil(t, Disk(0, 0, 0.1))

	pts := Disk(complex(2, 3), 1, 0.2)
	require.Greater(t, len(pts), 1, "expected rings beyond the center point")
	assert.Equal(t, complex(2, 3), pts[0])

	maxR := 0.0
	for _, p := range pts[1:] {
		d := p - complex(2, 3)
		r := math.Hypot(real(d), imag(d))
		if r > maxR {
			maxR = r
		}
	}
	assert.InDelta(t, 1.0, maxR, 0.05)
}
