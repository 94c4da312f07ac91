package quadrature

import (
	"errors"
	"math"
	"testing"
)

func weightSum(q *Quadrature) float64 {
	var sum float64
	for w := range q.Weights() {
		sum += w
	}
	return sum
}

func TestIteratedWeightSum(t *testing.T) {
	bases := map[string]*Quadrature{
		"midpoint":  NewMidpoint(),
		"trapezoid": NewTrapezoid(),
		"simpson":   NewSimpson(),
		"milne":     NewMilne(),
		"weddle":    NewWeddle(),
		"gauss3":    NewGaussLegendre(3),
	}
	for name, base := range bases {
		for dim := 1; dim <= 3; dim++ {
			for n := 1; n <= 4; n++ {
				q, err := NewIterated(dim, base, n)
				if err != nil {
					t.Fatalf("%s, dim %d, %d copies: %v", name, dim, n, err)
				}
				if sum := weightSum(q); math.Abs(sum-1) > 1e-12 {
					t.Errorf("%s, dim %d, %d copies: weights sum to %g", name, dim, n, sum)
				}
			}
		}
	}
}

func TestIteratedEndpointMerge(t *testing.T) {
	q, err := NewIterated(1, NewTrapezoid(), 2)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt1(0), Pt1(0.5), Pt1(1)}, collectPoints(q), approxPoints)
	diff(t, []float64{0.25, 0.5, 0.25}, collectWeights(q))

	// Simpson sampled twice: the two copies' samples at 0.5 coincide and
	// carry the summed endpoint weight.
	q, err = NewIterated(1, NewSimpson(), 2)
	if err != nil {
		t.Fatal(err)
	}
	base := NewSimpson()
	if want := 2*(base.Len()-1) + 1; q.Len() != want {
		t.Fatalf("got %d points, expected %d", q.Len(), want)
	}
	diff(t, []Point{Pt1(0), Pt1(0.25), Pt1(0.5), Pt1(0.75), Pt1(1)}, collectPoints(q), approxPoints)
	wantMid := (base.Weight(0) + base.Weight(2)) / 2
	if got := q.Weight(2); math.Abs(got-wantMid) > 1e-15 {
		t.Errorf("merged weight at 0.5 is %g, expected %g", got, wantMid)
	}
}

func TestIteratedNoMerge(t *testing.T) {
	q, err := NewIterated(1, NewGaussLegendre(2), 3)
	if err != nil {
		t.Fatal(err)
	}
	if q.Len() != 6 {
		t.Errorf("got %d points, expected 6", q.Len())
	}

	q, err = NewIterated(1, NewMidpoint(), 4)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt1(0.125), Pt1(0.375), Pt1(0.625), Pt1(0.875)}, collectPoints(q), approxPoints)
	diff(t, []float64{0.25, 0.25, 0.25, 0.25}, collectWeights(q))
}

func TestIteratedHigherDim(t *testing.T) {
	for dim := 1; dim <= 3; dim++ {
		q, err := NewIterated(dim, NewSimpson(), 2)
		if err != nil {
			t.Fatal(err)
		}
		want := 1
		for d := 0; d < dim; d++ {
			want *= 5
		}
		if q.Len() != want {
			t.Errorf("dim %d: got %d points, expected %d", dim, q.Len(), want)
		}
		if q.Dim() != dim {
			t.Errorf("got dimension %d, expected %d", q.Dim(), dim)
		}
	}
}

func TestIteratedErrors(t *testing.T) {
	if _, err := NewIterated(1, NewSimpson(), 0); !errors.Is(err, ErrInvalidFormula) {
		t.Errorf("got %v, expected ErrInvalidFormula", err)
	}
	bad := New([]Point{Pt1(0.3)}, []float64{0.5})
	if _, err := NewIterated(2, bad, 3); !errors.Is(err, ErrWeightSumMismatch) {
		t.Errorf("got %v, expected ErrWeightSumMismatch", err)
	}
	mustPanic(t, "dimension 4", func() { NewIterated(4, NewSimpson(), 1) })
	mustPanic(t, "2-dimensional base rule", func() {
		line := NewSimpson()
		NewIterated(2, TensorProduct(line, line), 1)
	})
}

func collectPoints(q *Quadrature) []Point {
	pts := make([]Point, 0, q.Len())
	for pt := range q.Points() {
		pts = append(pts, pt)
	}
	return pts
}

func collectWeights(q *Quadrature) []float64 {
	ws := make([]float64, 0, q.Len())
	for w := range q.Weights() {
		ws = append(ws, w)
	}
	return ws
}
