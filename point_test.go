package quadrature

import "testing"

func TestPointCoords(t *testing.T) {
	pts := []struct {
		pt     Point
		coords []float64
	}{
		{Pt1(0.5), []float64{0.5}},
		{Pt2(1, 0.25), []float64{1, 0.25}},
		{Pt3(0, 0.5, 1), []float64{0, 0.5, 1}},
	}
	for _, tc := range pts {
		if tc.pt.Dim() != len(tc.coords) {
			t.Errorf("%v: got dimension %d, expected %d", tc.pt, tc.pt.Dim(), len(tc.coords))
		}
		for i, want := range tc.coords {
			if got := tc.pt.Coord(i); got != want {
				t.Errorf("%v: coordinate %d is %g, expected %g", tc.pt, i, got, want)
			}
		}
	}
}

func TestPointCoordRange(t *testing.T) {
	mustPanic(t, "Coord(-1)", func() { Pt2(0, 0).Coord(-1) })
	mustPanic(t, "Coord(2) on 2-dimensional point", func() { Pt2(0, 0).Coord(2) })
	mustPanic(t, "Coord(0) on 0-dimensional point", func() { (Point{}).Coord(0) })
}

func TestPointString(t *testing.T) {
	if got := Pt1(0.5).String(); got != "(0.5)" {
		t.Errorf("got %q, expected %q", got, "(0.5)")
	}
	if got := Pt3(0, 0.5, 1).String(); got != "(0, 0.5, 1)" {
		t.Errorf("got %q, expected %q", got, "(0, 0.5, 1)")
	}
}
