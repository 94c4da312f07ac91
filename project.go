package quadrature

import "fmt"

// Face projection embeds a rule for a (D-1)-dimensional manifold onto a face
// of the D-dimensional unit cell. Faces of the unit square are numbered
// counterclockwise starting at the bottom edge, so face 0 is y=0, face 1 is
// x=1, face 2 is y=1 and face 3 is x=0. Faces of the unit cube come in the
// opposite pairs (0,1) clamping y, (2,4) clamping z and (3,5) clamping x,
// with the rule's two coordinates filling the free axes in ascending order.
// Faces have an orientation: projecting a rule with increasing points onto
// face 1 of the square traverses it counterclockwise as seen from outside,
// onto face 3 clockwise.

func checkFace(dim, faceNo int) {
	if dim < 1 || dim > 3 {
		panic(fmt.Sprintf("cannot project onto faces of a %d-dimensional cell", dim))
	}
	if faceNo < 0 || faceNo >= 2*dim {
		panic(fmt.Sprintf("face number %d out of range, cell has %d faces", faceNo, 2*dim))
	}
}

func facePoint2(faceNo int, x float64) Point {
	switch faceNo {
	case 0:
		return Pt2(x, 0)
	case 1:
		return Pt2(1, x)
	case 2:
		return Pt2(x, 1)
	case 3:
		return Pt2(0, x)
	}
	panic("unreachable")
}

func facePoint3(faceNo int, u, v float64) Point {
	switch faceNo {
	case 0:
		return Pt3(u, 0, v)
	case 1:
		return Pt3(u, 1, v)
	case 2:
		return Pt3(u, v, 0)
	case 3:
		return Pt3(1, u, v)
	case 4:
		return Pt3(u, v, 1)
	case 5:
		return Pt3(0, u, v)
	}
	panic("unreachable")
}

// ProjectToFace returns the locations of q's points on face faceNo of the
// unit cell one dimension above q, in q's point order. For a 0-dimensional
// rule the cell is the unit interval and the faces are its endpoints, so the
// result is Len() copies of the point (faceNo). Weights are not transformed.
//
// ProjectToFace panics if faceNo is out of range or the cell dimension is
// not 1, 2 or 3.
func ProjectToFace(q *Quadrature, faceNo int) []Point {
	dim := q.Dim() + 1
	checkFace(dim, faceNo)
	points := make([]Point, q.Len())
	switch dim {
	case 1:
		for i := range points {
			points[i] = Pt1(float64(faceNo))
		}
	case 2:
		for i := range points {
			points[i] = facePoint2(faceNo, q.Point(i).Coord(0))
		}
	case 3:
		for i := range points {
			pt := q.Point(i)
			points[i] = facePoint3(faceNo, pt.Coord(0), pt.Coord(1))
		}
	}
	return points
}

// ProjectToSubface is like [ProjectToFace], but first rescales q onto child
// subfaceNo of the face. A face of the square has two children, the halves
// of its running coordinate in order; a face of the cube has four, numbered
// counterclockwise starting at the child containing the face's origin.
//
// ProjectToSubface panics if faceNo or subfaceNo is out of range or the cell
// dimension is not 1, 2 or 3.
func ProjectToSubface(q *Quadrature, faceNo, subfaceNo int) []Point {
	dim := q.Dim() + 1
	checkFace(dim, faceNo)
	if nChildren := 1 << (dim - 1); subfaceNo < 0 || subfaceNo >= nChildren {
		panic(fmt.Sprintf("subface number %d out of range, face has %d children", subfaceNo, nChildren))
	}
	points := make([]Point, q.Len())
	switch dim {
	case 1:
		// The only child of a vertex is the vertex itself.
		for i := range points {
			points[i] = Pt1(float64(faceNo))
		}
	case 2:
		for i := range points {
			x := q.Point(i).Coord(0)/2 + 0.5*float64(subfaceNo)
			points[i] = facePoint2(faceNo, x)
		}
	case 3:
		var du, dv float64
		switch subfaceNo {
		case 0:
			// no offset
		case 1:
			du = 0.5
		case 2:
			du, dv = 0.5, 0.5
		case 3:
			dv = 0.5
		}
		for i := range points {
			pt := q.Point(i)
			points[i] = facePoint3(faceNo, pt.Coord(0)/2+du, pt.Coord(1)/2+dv)
		}
	}
	return points
}
