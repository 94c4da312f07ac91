package quadrature

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidFormula reports a base formula that cannot be iterated: an
	// empty rule or a replication count below one.
	ErrInvalidFormula = errors.New("invalid quadrature formula")

	// ErrWeightSumMismatch reports an iterated rule whose weights do not sum
	// to one, which indicates a malformed base formula.
	ErrWeightSumMismatch = errors.New("sum of quadrature weights is not one")
)

// Weights of a correct rule on the unit interval sum to one; allow for
// accumulated rounding across copies.
const weightSumTol = 1e-12

// NewIterated returns the dim-dimensional rule obtained by copying the
// 1-dimensional base rule onto each of nCopies equal sub-intervals of [0,1]
// and, for dim > 1, taking the dim-fold tensor product of the resulting
// 1-dimensional rule with itself.
//
// When the base rule samples both endpoints of the interval, adjacent copies
// coincide at the internal sub-interval boundaries; each such pair is merged
// into a single point carrying the sum of the two weights, so the iterated
// 1-dimensional rule has nCopies*(base.Len()-1)+1 points. A base rule that
// touches neither endpoint (or only one) is copied without merging, giving
// nCopies*base.Len() points.
//
// NewIterated panics unless dim is in 1 to 3 and base is 1-dimensional. It
// returns an error wrapping [ErrInvalidFormula] for a degenerate base rule
// or nCopies < 1, and an error wrapping [ErrWeightSumMismatch] if the merged
// weights do not sum to one.
func NewIterated(dim int, base *Quadrature, nCopies int) (*Quadrature, error) {
	if dim < 1 || dim > 3 {
		panic(fmt.Sprintf("unsupported dimension %d for iterated quadrature", dim))
	}
	if base.Dim() != 1 {
		panic(fmt.Sprintf("iterated quadrature needs a 1-dimensional base rule, got %d-dimensional", base.Dim()))
	}
	line, err := iterateLine(base, nCopies)
	if err != nil {
		return nil, err
	}
	q := line
	for d := 1; d < dim; d++ {
		q = TensorProduct(q, line)
	}
	return q, nil
}

// usesBothEndpoints reports whether the 1-dimensional rule has a sample at
// exactly 0 and a sample at exactly 1.
func usesBothEndpoints(base *Quadrature) bool {
	var atLeft, atRight bool
	for pt := range base.Points() {
		switch pt.Coord(0) {
		case 0:
			atLeft = true
		case 1:
			atRight = true
		}
	}
	return atLeft && atRight
}

func iterateLine(base *Quadrature, nCopies int) (*Quadrature, error) {
	if base.Len() < 1 {
		return nil, fmt.Errorf("base rule has no points: %w", ErrInvalidFormula)
	}
	if nCopies < 1 {
		return nil, fmt.Errorf("cannot iterate %d times: %w", nCopies, ErrInvalidFormula)
	}

	scale := float64(nCopies)
	var points []Point
	var weights []float64
	if !usesBothEndpoints(base) {
		points = make([]Point, 0, nCopies*base.Len())
		weights = make([]float64, 0, nCopies*base.Len())
		for k := 0; k < nCopies; k++ {
			for i := 0; i < base.Len(); i++ {
				points = append(points, Pt1((base.Point(i).Coord(0)+float64(k))/scale))
				weights = append(weights, base.Weight(i)/scale)
			}
		}
	} else {
		// The right endpoint of copy k coincides with the left endpoint of
		// copy k+1. Skip the left endpoint of every copy but the first, and
		// let the right endpoint of every internal copy carry both weights.
		var merged float64
		for pt, w := range base.All() {
			if x := pt.Coord(0); x == 0 || x == 1 {
				merged += w
			}
		}
		points = make([]Point, 0, nCopies*(base.Len()-1)+1)
		weights = make([]float64, 0, nCopies*(base.Len()-1)+1)
		for k := 0; k < nCopies; k++ {
			for i := 0; i < base.Len(); i++ {
				x := base.Point(i).Coord(0)
				if k > 0 && x == 0 {
					continue
				}
				w := base.Weight(i)
				if x == 1 && k != nCopies-1 {
					w = merged
				}
				points = append(points, Pt1((x+float64(k))/scale))
				weights = append(weights, w/scale)
			}
		}
	}

	var sum float64
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1) > weightSumTol {
		return nil, fmt.Errorf("weights sum to %g: %w", sum, ErrWeightSumMismatch)
	}
	return New(points, weights), nil
}
