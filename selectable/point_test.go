package selectable

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Pt(15, 25), true},
		{"min corner", Pt(10, 20), true},
		{"max corner", Pt(40, 60), false},
		{"right edge", Pt(40, 30), false},
		{"left of rect", Pt(9, 30), false},
		{"below rect", Pt(15, 61), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 5, 10, 10)

	u := a.Union(b)
	want := NewRect(0, 0, 30, 15)
	if u != want {
		t.Errorf("Union() = %v, want %v", u, want)
	}

	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union with empty = %v, want %v", got, a)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty Union b = %v, want %v", got, b)
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	got := r.Translate(Pt(10, 20))
	want := NewRect(11, 22, 3, 4)
	if got != want {
		t.Errorf("Translate() = %v, want %v", got, want)
	}
}

func TestRectSize(t *testing.T) {
	r := NewRect(5, 5, 7, 3)
	if r.Width() != 7 {
		t.Errorf("Width() = %v, want 7", r.Width())
	}
	if r.Height() != 3 {
		t.Errorf("Height() = %v, want 3", r.Height())
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if !(Rect{}).IsEmpty() {
		t.Error("zero rect IsEmpty() = false, want true")
	}
}
