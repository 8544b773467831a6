package geom

import "testing"

func TestRect_Contains(t *testing.T) {
	r := NewRect(2, 3, 10, 5)

	cases := []struct {
		name string
		p    Point
		want bool
	}{
		{"top-left corner", Point{2, 3}, true},
		{"inside", Point{7, 5}, true},
		{"right edge exclusive", Point{12, 5}, false},
		{"bottom edge exclusive", Point{7, 8}, false},
		{"left of rect", Point{1, 5}, false},
		{"above rect", Point{5, 2}, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("%s: Contains(%v)=%v, want %v", tc.name, tc.p, got, tc.want)
		}
	}
}

func TestRect_Edges(t *testing.T) {
	r := NewRect(2, 3, 10, 5)
	if r.X2() != 12 {
		t.Errorf("X2: got %d, want 12", r.X2())
	}
	if r.Y2() != 8 {
		t.Errorf("Y2: got %d, want 8", r.Y2())
	}
	if c := r.Center(); c != (Point{7, 5}) {
		t.Errorf("Center: got %v, want {7 5}", c)
	}
}

func TestRect_Shrink(t *testing.T) {
	r := NewRect(0, 0, 10, 10).Shrink(2)
	if r != (Rect{2, 2, 6, 6}) {
		t.Errorf("Shrink(2): got %v", r)
	}
	if !NewRect(0, 0, 3, 3).Shrink(2).IsEmpty() {
		t.Error("over-shrunk rect should be empty")
	}
}

func TestRect_Overlaps(t *testing.T) {
	a := NewRect(0, 0, 5, 5)
	if !a.Overlaps(NewRect(4, 4, 5, 5)) {
		t.Error("expected corner overlap")
	}
	if a.Overlaps(NewRect(5, 0, 5, 5)) {
		t.Error("edge-adjacent rects must not overlap")
	}
}

func TestPoint_AddSub(t *testing.T) {
	p := Point{3, 4}.Add(Point{1, -2})
	if p != (Point{4, 2}) {
		t.Errorf("Add: got %v", p)
	}
	if q := p.Sub(Point{4, 2}); q != (Point{}) {
		t.Errorf("Sub: got %v", q)
	}
}
