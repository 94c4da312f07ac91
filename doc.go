// Package quadrature provides quadrature rules — finite lists of sample
// points and weights that approximate integrals — on the unit line, square,
// and cube, for use as the integration backbone of finite-element code.
//
// The design follows the quadrature support of the deal.II finite element
// library: a single rule type holding points and weights, a tensor-product
// construction that lifts rules to higher dimensions, iterated rules that
// replicate a one-dimensional formula across equal sub-intervals, and
// projection of lower-dimensional rules onto the faces and subfaces of the
// reference cell.
//
// # Rules
//
// A [Quadrature] is an immutable, index-aligned list of points and weights.
// Rules are built either directly from point and weight slices with [New]
// (this is how concrete formulas such as [NewSimpson] or [NewGaussLegendre]
// are seeded), as the tensor product of a lower-dimensional rule and a
// one-dimensional rule with [TensorProduct], or by iterating a
// one-dimensional formula with [NewIterated]. Once built, a rule may be read
// concurrently without synchronization.
//
// Consumers index points positionally, so point ordering is part of the
// contract: [TensorProduct] emits points with the outer loop over the
// lower-dimensional rule and the inner loop over the one-dimensional rule.
//
// # Faces and subfaces
//
// The faces of the D-dimensional unit cell are numbered 0 to 2D-1, and the
// children of a face ("subfaces", produced by bisecting the face along each
// of its axes) 0 to 2^(D-1)-1. [ProjectToFace] and [ProjectToSubface] embed
// a (D-1)-dimensional rule onto a face in the cell's own coordinates,
// preserving the face's orientation: for example, projecting the Simpson
// rule onto face 1 of the unit square yields (1,0), (1,0.5), (1,1), while
// face 3 yields (0,0), (0,0.5), (0,1), the reversed traversal sense.
// Weights are not touched by projection; scaling by the face mapping's
// Jacobian is the caller's concern.
package quadrature
