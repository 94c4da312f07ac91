package quadrature

import (
	"fmt"
	"iter"
)

// Quadrature is a quadrature rule: an ordered list of sample points on the
// unit line, square, or cube together with an index-aligned list of weights.
// Rules are immutable once constructed and safe for concurrent reads.
//
// For a correct formula the weights sum to the measure of the reference
// domain, which is 1 for the unit line, square, and cube. The type does not
// enforce this; see [NewIterated] for the one place the invariant is checked.
type Quadrature struct {
	dim     int
	n       int
	points  []Point
	weights []float64
}

// New returns a rule with the given points and weights. The slices must have
// equal nonzero length and all points must share one dimension in 1 to 3;
// otherwise New panics. The slices are copied, so the caller may reuse them.
func New(points []Point, weights []float64) *Quadrature {
	if len(points) != len(weights) {
		panic(fmt.Sprintf("quadrature has %d points but %d weights", len(points), len(weights)))
	}
	if len(points) == 0 {
		panic("quadrature must have at least one point")
	}
	dim := points[0].Dim()
	if dim < 1 || dim > 3 {
		panic(fmt.Sprintf("unsupported point dimension %d", dim))
	}
	for i, pt := range points {
		if pt.Dim() != dim {
			panic(fmt.Sprintf("point %d has dimension %d, expected %d", i, pt.Dim(), dim))
		}
	}
	return &Quadrature{
		dim:     dim,
		n:       len(points),
		points:  append([]Point(nil), points...),
		weights: append([]float64(nil), weights...),
	}
}

// NewDegenerate returns the degenerate 0-dimensional rule with n points.
// It exists so that dimension-generic callers have a value to pass where a
// rule one dimension below the line is expected, for example when projecting
// onto the endpoints of the unit interval. Only [Quadrature.Len] and
// [Quadrature.Dim] may be called on it; every other query panics.
func NewDegenerate(n int) *Quadrature {
	return &Quadrature{dim: 0, n: n}
}

// TensorProduct returns the tensor product of a 1- or 2-dimensional rule and
// a 1-dimensional rule: for every pair of a point p of lower and a point q of
// line it emits the point whose leading coordinates are p's and whose last
// coordinate is q's single coordinate, with weight equal to the product of
// the two weights.
//
// The outer loop runs over lower and the inner loop over line, so the pair
// (j, k) lands at index j*line.Len()+k. The result has
// lower.Len()*line.Len() points.
func TensorProduct(lower, line *Quadrature) *Quadrature {
	if lower.dim < 1 || lower.dim > 2 {
		panic(fmt.Sprintf("cannot build a tensor product from a %d-dimensional rule", lower.dim))
	}
	if line.dim != 1 {
		panic(fmt.Sprintf("tensor product factor must be 1-dimensional, got %d", line.dim))
	}
	dim := lower.dim + 1
	points := make([]Point, 0, lower.n*line.n)
	weights := make([]float64, 0, lower.n*line.n)
	for j := 0; j < lower.n; j++ {
		p := lower.points[j]
		for k := 0; k < line.n; k++ {
			x := line.points[k].Coord(0)
			switch dim {
			case 2:
				points = append(points, Pt2(p.Coord(0), x))
			case 3:
				points = append(points, Pt3(p.Coord(0), p.Coord(1), x))
			}
			weights = append(weights, lower.weights[j]*line.weights[k])
		}
	}
	return &Quadrature{dim: dim, n: len(points), points: points, weights: weights}
}

// Dim returns the dimension of the rule's points.
func (q *Quadrature) Dim() int {
	return q.dim
}

// Len returns the number of quadrature points.
func (q *Quadrature) Len() int {
	return q.n
}

func (q *Quadrature) checkQuery(i int) {
	if q.dim == 0 {
		panic("0-dimensional quadrature rules cannot be queried")
	}
	if i < 0 || i >= q.n {
		panic(fmt.Sprintf("quadrature point index %d out of range, rule has %d points", i, q.n))
	}
}

// Point returns the i-th quadrature point. It panics if i is not in
// [0, Len()) or the rule is 0-dimensional.
func (q *Quadrature) Point(i int) Point {
	q.checkQuery(i)
	return q.points[i]
}

// Weight returns the weight of the i-th quadrature point, under the same
// contract as [Quadrature.Point].
func (q *Quadrature) Weight(i int) float64 {
	q.checkQuery(i)
	return q.weights[i]
}

// Points returns an iterator over the quadrature points in index order.
func (q *Quadrature) Points() iter.Seq[Point] {
	if q.dim == 0 {
		panic("0-dimensional quadrature rules cannot be queried")
	}
	return func(yield func(Point) bool) {
		for _, pt := range q.points {
			if !yield(pt) {
				return
			}
		}
	}
}

// Weights returns an iterator over the weights in index order.
func (q *Quadrature) Weights() iter.Seq[float64] {
	if q.dim == 0 {
		panic("0-dimensional quadrature rules cannot be queried")
	}
	return func(yield func(float64) bool) {
		for _, w := range q.weights {
			if !yield(w) {
				return
			}
		}
	}
}

// All returns an iterator over (point, weight) pairs in index order.
func (q *Quadrature) All() iter.Seq2[Point, float64] {
	if q.dim == 0 {
		panic("0-dimensional quadrature rules cannot be queried")
	}
	return func(yield func(Point, float64) bool) {
		for i, pt := range q.points {
			if !yield(pt, q.weights[i]) {
				return
			}
		}
	}
}
