package common

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlap_on_the_left",
			a:        NewRectXY(10, 10, 100, 100),
			b:        NewRectXY(0, 10, 100, 100),
			expected: true,
		},
		{
			name:     "overlap_on_the_top",
			a:        NewRectXY(10, 10, 100, 100),
			b:        NewRectXY(10, 0, 100, 100),
			expected: true,
		},
		{
			name:     "stacked_vertically",
			a:        NewRectXY(10, 10, 100, 100),
			b:        NewRectXY(10, 110, 100, 100),
			expected: false,
		},
		{
			name:     "shared_vertical_edge",
			a:        NewRectXY(0, 0, 10, 10),
			b:        NewRectXY(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "shared_corner",
			a:        NewRectXY(0, 0, 10, 10),
			b:        NewRectXY(10, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained",
			a:        NewRectXY(0, 0, 20, 20),
			b:        NewRectXY(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single_pixel_overlap",
			a:        NewRectXY(0, 0, 10, 10),
			b:        NewRectXY(9, 9, 10, 10),
			expected: true,
		},
		{
			name:     "negative_coordinates",
			a:        NewRectXY(-30, -30, 20, 20),
			b:        NewRectXY(-15, -15, 20, 20),
			expected: true,
		},
		{
			name:     "zero_width_inside",
			a:        NewRectXY(0, 0, 0, 10),
			b:        NewRectXY(-5, 0, 10, 10),
			expected: true,
		},
		{
			name:     "zero_width_on_left_edge",
			a:        NewRectXY(5, 0, 0, 10),
			b:        NewRectXY(5, 0, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Fatalf("a.Intersects(b) = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Fatalf("b.Intersects(a) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRectXY(-20, 479, 60, 121)
	if r.Right() != 40 {
		t.Fatalf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 600 {
		t.Fatalf("Bottom() = %d, expected 600", r.Bottom())
	}
	r.SetX(5)
	if r.X() != 5 || r.Right() != 65 {
		t.Fatalf("SetX moved rect to %d..%d, expected 5..65", r.X(), r.Right())
	}
}
