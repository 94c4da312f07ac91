package quadrature

import (
	"fmt"
	"strings"
)

// Point is a point in 1-, 2-, or 3-dimensional real space on the reference
// cell. The zero value is the degenerate 0-dimensional point, which has no
// components.
type Point struct {
	dim    int
	coords [3]float64
}

// Pt1 returns the 1-dimensional point (x).
func Pt1(x float64) Point {
	return Point{dim: 1, coords: [3]float64{x, 0, 0}}
}

// Pt2 returns the 2-dimensional point (x, y).
func Pt2(x, y float64) Point {
	return Point{dim: 2, coords: [3]float64{x, y, 0}}
}

// Pt3 returns the 3-dimensional point (x, y, z).
func Pt3(x, y, z float64) Point {
	return Point{dim: 3, coords: [3]float64{x, y, z}}
}

// Dim returns the dimension of the point.
func (pt Point) Dim() int {
	return pt.dim
}

// Coord returns the i-th coordinate of the point. It panics if i is not in
// [0, Dim()).
func (pt Point) Coord(i int) float64 {
	if i < 0 || i >= pt.dim {
		panic(fmt.Sprintf("coordinate index %d out of range for %d-dimensional point", i, pt.dim))
	}
	return pt.coords[i]
}

func (pt Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < pt.dim; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", pt.coords[i])
	}
	sb.WriteByte(')')
	return sb.String()
}
