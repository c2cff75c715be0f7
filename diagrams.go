/*
Package diagrams holds the geometry shared by the diagram path generators:
points, similarity transforms, angle conventions and the fallback colour
palette.

Sub-packages emit vector drawing commands (move, line, elliptical arc, close)
for two shape families: angular pie charts (package pie) and rounded
rectangles with a single protruding tab (package tab). Commands are written
to a pathcmd.Builder; turning them into a document is left to the caller.

# Coordinates

All generators work in a y-down coordinate space, as SVG does. Angles are
measured in radians from the positive x-axis ("3 o'clock") and grow in the
mathematical direction, which renders clockwise on screen.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package diagrams

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'diagrams'
func tracer() tracing.Trace {
	return tracing.Select("diagrams")
}

// === Numeric Data Type =====================================================

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
const Deg2Rad = math.Pi / 180

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Pair Data Type ========================================================

// Pair is a 2D point or vector, stored as a complex number.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Polar returns the point at distance r from the origin, in direction theta.
// Theta follows the package's angle convention.
func Polar(theta, r float64) Pair {
	return P(math.Cos(theta)*r, math.Sin(theta)*r)
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs within Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// IsFinite is false if either coordinate is NaN or infinite.
func (p Pair) IsFinite() bool {
	x, y := p.F()
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}

// Dist returns the euclidian distance between p and q.
func (p Pair) Dist(q Pair) float64 {
	return math.Hypot(q.X()-p.X(), q.Y()-p.Y())
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return Translation(v).Transform(p)
}

// Rotated returns a new pair rotated around origin by theta.
func (p Pair) Rotated(theta float64) Pair {
	return Rotation(theta).Transform(p)
}

// === Affine Transformations ================================================

// AT is an affine transform, a 3x3 matrix flattened by rows.
//
// Path generators only need similarity transforms (translation, rotation,
// uniform scaling), which keep circular arcs circular.
type AT [9]float64

func (m *AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []float64 {
	return []float64{m[col], m[3+col], m[6+col]}
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return AT{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Rotation transform. Rotate a point around the origin by theta radians,
// in the direction of growing angles.
func Rotation(theta float64) AT {
	m := Identity()
	sin, cos := math.Sincos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	return m
}

// Scaling transform, scaling uniformly by factor s around the origin.
func Scaling(s float64) AT {
	if s <= 0 {
		tracer().Errorf("non-positive scaling factor %g mirrors arcs", s)
	}
	m := Identity()
	m.set(0, 0, s)
	m.set(1, 1, s)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float64) float64 {
	return vec1[0]*vec2[0] + vec1[1]*vec2[1] + vec1[2]*vec2[2]
}

// Combine 2 affine transformations to a new one: the result applies m first,
// then n.
func (m AT) Combine(n AT) AT {
	var o AT
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	v := []float64{p.X(), p.Y(), 1.0}
	return P(dotProd(m.row(0), v), dotProd(m.row(1), v))
}

// Angle returns the rotation angle of a similarity transform.
func (m AT) Angle() float64 {
	return math.Atan2(m[3], m[0])
}

// Scale returns the scaling factor of a similarity transform.
func (m AT) Scale() float64 {
	return math.Hypot(m[0], m[3])
}
