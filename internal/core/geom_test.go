package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 40, 40),
			b:        NewRect(20, 20, 40, 40),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 40, 40),
			b:        NewRect(60, 0, 40, 40),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 40, 40),
			b:        NewRect(0, 60, 40, 40),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 40, 40),
			b:        NewRect(40, 0, 40, 40),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 40, 40),
			b:        NewRect(0, 40, 40, 40),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 80, 80),
			b:        NewRect(20, 20, 10, 10),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 40, 40),
			b:        NewRect(39.5, 39.5, 40, 40),
			expected: true,
		},
		{
			name:     "double width box reaches further",
			a:        NewRect(0, 0, 80, 40),
			b:        NewRect(60, 10, 40, 40),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := tc.a.Intersects(tc.b); result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			if resultReverse := tc.b.Intersects(tc.a); resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Distance(0,0,3,4) = %v, expected 5", d)
	}
	if d := Distance(1, 1, 1, 1); d != 0 {
		t.Errorf("Distance to self = %v, expected 0", d)
	}
	if d := Distance(-2, 0, 2, 0); math.Abs(d-4) > 1e-9 {
		t.Errorf("Distance(-2,0,2,0) = %v, expected 4", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if result := ClampF(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
