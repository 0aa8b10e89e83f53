package vec2go

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromAngle(t *testing.T) {
	assert.Equal(t, Right[float64](), FromAngle(0.0))
	assert.True(t, ApproxEq(FromAngle(math.Pi/2), New(0.0, 1.0)))
	assert.True(t, ApproxEq(FromAngle(math.Pi), Left[float64]()))

	// from_angle always produces a unit vector
	for _, a := range []float64{0.1, 1, -2.5, 6} {
		assert.InDelta(t, 1.0, Length(FromAngle(a)), 1e-12, "angle=%v", a)
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2[float64]
		expected float64
	}{
		{"Right", Right[float64](), 0},
		{"Down", Down[float64](), math.Pi / 2},
		{"Diagonal", New(1.0, -1.0), -math.Pi / 4},
		{"Left", Left[float64](), math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Angle(tt.v), 1e-12)
		})
	}
}

func TestAbs(t *testing.T) {
	assert.Equal(t, New(1.5, 2.5), Abs(New(-1.5, 2.5)))
	assert.Equal(t, New(0.0, 3.0), Abs(New(0.0, -3.0)))
}

func TestCross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector2[float64]
		expected float64
	}{
		{"Simple", New(1.0, 2.0), New(3.0, 4.0), -2},
		{"Parallel", New(2.0, 2.0), New(4.0, 4.0), 0},
		{"Units", Right[float64](), Down[float64](), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Cross(tt.a, tt.b), 1e-12)
			// Anti-commutative.
			assert.InDelta(t, -tt.expected, Cross(tt.b, tt.a), 1e-12)
		})
	}
}

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector2[float64]
		expected float64
	}{
		{"Simple", New(1.0, 2.0), New(3.0, 4.0), 11},
		{"Orthogonal", Right[float64](), Down[float64](), 0},
		{"Opposite", Right[float64](), Left[float64](), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Dot(tt.a, tt.b), 1e-12)
			assert.InDelta(t, tt.expected, Dot(tt.b, tt.a), 1e-12)
		})
	}
}

func TestDistanceTo(t *testing.T) {
	assert.InDelta(t, 5.0, DistanceTo(New(0.0, 0.0), New(3.0, 4.0)), 1e-12)
	assert.InDelta(t, 5.0, DistanceTo(New(3.0, 4.0), New(0.0, 0.0)), 1e-12)
	assert.Zero(t, DistanceTo(New(1.5, -2.5), New(1.5, -2.5)))
}

func TestLength(t *testing.T) {
	assert.InDelta(t, 10*math.Sqrt2, Length(Splat(10.0)), 1e-12)
	assert.Equal(t, 200.0, LengthSquared(Splat(10.0)))
	assert.Zero(t, Length(New(0.0, 0.0)))
}

func TestLimitLength(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2[float64]
		max      float64
		expected Vector2[float64]
	}{
		{"Clamped", Splat(10.0), 1, Splat(1 / math.Sqrt2)},
		{"ClampedLonger", Splat(10.0), 5, Splat(5 / math.Sqrt2)},
		{"Unchanged", New(3.0, 4.0), 10, New(3.0, 4.0)},
		{"ExactLength", New(3.0, 4.0), 5, New(3.0, 4.0)},
		// Zero vector passes through untouched, no division by zero.
		{"Zero", New(0.0, 0.0), 1, New(0.0, 0.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LimitLength(tt.v, tt.max)
			assert.True(t, ApproxEq(got, tt.expected), "got %v, want %v", got, tt.expected)
		})
	}
}

func TestNormalized(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2[float64]
		expected Vector2[float64]
	}{
		{"AlreadyUnit", Right[float64](), Right[float64]()},
		{"Diagonal", Splat(1.0), Splat(math.Sqrt(0.5))},
		{"Long", New(30.0, 40.0), New(0.6, 0.8)},
		// Zero vector passes through untouched, no NaN.
		{"Zero", New(0.0, 0.0), New(0.0, 0.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalized(tt.v)
			assert.True(t, ApproxEq(got, tt.expected), "got %v, want %v", got, tt.expected)
		})
	}
}

func TestRotated(t *testing.T) {
	v := New(1.2, 3.4)

	tests := []struct {
		name     string
		angle    float64
		expected Vector2[float64]
	}{
		{"FullTurn", 2 * math.Pi, v},
		{"QuarterTurn", math.Pi / 2, New(-3.4, 1.2)},
		{"ThirdTurn", 2 * math.Pi / 3, New(-3.5444863, -0.6607695)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rotated(v, tt.angle)
			assert.True(t, ApproxEq(got, tt.expected), "got %v, want %v", got, tt.expected)
		})
	}

	// Rotating by pi in either direction lands on the same vector.
	assert.True(t, ApproxEq(Rotated(v, math.Pi), Rotated(v, -math.Pi)))
	// Rotation preserves length.
	assert.InDelta(t, Length(v), Length(Rotated(v, 1.234)), 1e-12)
}

func TestCeilFloor(t *testing.T) {
	v := New(1.2, -3.4)
	assert.Equal(t, New(2.0, -3.0), Ceil(v))
	assert.Equal(t, New(1.0, -4.0), Floor(v))

	whole := New(2.0, -3.0)
	assert.Equal(t, whole, Ceil(whole))
	assert.Equal(t, whole, Floor(whole))
}

func TestFloat32Geometry(t *testing.T) {
	// The float-gated functions work for float32 components too.
	v := New[float32](3, 4)
	assert.InDelta(t, 5.0, Length(v), 1e-6)
	assert.True(t, ApproxEq(Normalized(v), New[float32](0.6, 0.8)))
	assert.InDelta(t, math.Pi/2, Angle(Down[float32]()), 1e-6)
}
