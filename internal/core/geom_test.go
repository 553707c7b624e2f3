package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
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
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
func TestVec3DistSq(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(3, 4, 0)

	if d := a.DistSq(b); d != 25 {
		t.Errorf("DistSq() = %f, expected 25", d)
	}
	if a.DistSq(b) != b.DistSq(a) {
		t.Error("DistSq() should be symmetric")
	}

	c := V3(3, 100, 4)
	if d := a.DistXZSq(c); d != 25 {
		t.Errorf("DistXZSq() = %f, expected 25 (height ignored)", d)
	}
}

func TestBox3Overlaps(t *testing.T) {
	unit := V3(1, 1, 1)
	tests := []struct {
		name     string
		a, b     Box3
		expected bool
	}{
		{"same center", Box3{V3(0, 0, 0), unit}, Box3{V3(0, 0, 0), unit}, true},
		{"overlap all axes", Box3{V3(0, 0, 0), unit}, Box3{V3(1.5, 1.5, 1.5), unit}, true},
		{"touching x", Box3{V3(0, 0, 0), unit}, Box3{V3(2, 0, 0), unit}, false},
		{"apart y only", Box3{V3(0, 0, 0), unit}, Box3{V3(0, 3, 0), unit}, false},
		{"apart z only", Box3{V3(0, 0, 0), unit}, Box3{V3(0, 0, -2.5), unit}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}
