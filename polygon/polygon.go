/*
Package polygon treats flattened outlines as polygons.

Paths from the diagram generators consist of lines and circular arcs. Once
flattened they become polygons, which may be measured (area, bounds,
containment) and combined by boolean operations. Boolean operations are
done by polyclip, an implementation of the Martinez-Rueda clipping
algorithm.

Polygons may consist of several contours. A contour nested inside an odd
number of other contours is a hole.

	pg := polygon.NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/diagrams"
	"github.com/npillmayer/diagrams/pathcmd"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to key 'polygon'.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a set of closed contours.
type Polygon struct {
	pg polyclip.Polygon
}

// Builder collects knots for a single contour.
type Builder struct {
	contour polyclip.Contour
}

// NullPolygon starts a new polygon without any knots.
func NullPolygon() *Builder {
	return &Builder{}
}

// Knot appends a vertex to the polygon under construction.
func (b *Builder) Knot(p diagrams.Pair) *Builder {
	b.contour.Add(point(p))
	return b
}

// Cycle closes the contour and returns the polygon. The builder must not
// be used afterwards.
func (b *Builder) Cycle() *Polygon {
	if len(b.contour) < 3 {
		L().Errorf("polygon with %d knots is degenerate", len(b.contour))
	}
	pg := &Polygon{}
	pg.pg.Add(b.contour)
	b.contour = nil
	return pg
}

// Box creates a rectangular polygon from two opposite corners.
func Box(ll, ur diagrams.Pair) *Polygon {
	x0, x1 := math.Min(ll.X(), ur.X()), math.Max(ll.X(), ur.X())
	y0, y1 := math.Min(ll.Y(), ur.Y()), math.Max(ll.Y(), ur.Y())
	return NullPolygon().
		Knot(diagrams.P(x0, y0)).Knot(diagrams.P(x1, y0)).
		Knot(diagrams.P(x1, y1)).Knot(diagrams.P(x0, y1)).Cycle()
}

// FromPath flattens path and turns every subpath into a contour. Open
// subpaths are closed implicitly; subpaths with fewer than 3 distinct
// vertices are dropped.
func FromPath(path *pathcmd.Path, tolerance float64) (*Polygon, error) {
	lines, err := path.Flatten(tolerance)
	if err != nil {
		return nil, fmt.Errorf("cannot convert path to polygon: %w", err)
	}
	pg := &Polygon{}
	for _, line := range lines {
		if n := len(line); n > 1 && line[0].Equal(line[n-1]) {
			line = line[:n-1]
		}
		var c polyclip.Contour
		for i, p := range line {
			if i > 0 && p.Equal(line[i-1]) {
				continue
			}
			c.Add(point(p))
		}
		if len(c) < 3 {
			L().Debugf("dropping degenerate subpath of %d vertices", len(c))
			continue
		}
		pg.pg.Add(c)
	}
	return pg, nil
}

func point(p diagrams.Pair) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}

func pair(p polyclip.Point) diagrams.Pair {
	return diagrams.P(p.X, p.Y)
}

// N returns the number of vertices.
func (pg *Polygon) N() int {
	return pg.pg.NumVertices()
}

// Contours returns the number of contours.
func (pg *Polygon) Contours() int {
	return len(pg.pg)
}

// Contour returns the vertices of contour i.
func (pg *Polygon) Contour(i int) []diagrams.Pair {
	c := pg.pg[i]
	knots := make([]diagrams.Pair, len(c))
	for j, p := range c {
		knots[j] = pair(p)
	}
	return knots
}

// Bounds returns the lower left and upper right corner of the bounding box.
// For an empty polygon both are the origin.
func (pg *Polygon) Bounds() (diagrams.Pair, diagrams.Pair) {
	if pg.N() == 0 {
		return diagrams.Origin, diagrams.Origin
	}
	bb := pg.pg.BoundingBox()
	return pair(bb.Min), pair(bb.Max)
}

// Contains is true if p lies within an odd number of contours.
func (pg *Polygon) Contains(p diagrams.Pair) bool {
	inside := false
	for _, c := range pg.pg {
		if c.Contains(point(p)) {
			inside = !inside
		}
	}
	return inside
}

// depth returns the number of other contours enclosing contour i.
func (pg *Polygon) depth(i int) int {
	d := 0
	for j, c := range pg.pg {
		if j != i && c.Contains(pg.pg[i][0]) {
			d++
		}
	}
	return d
}

// Area returns the area covered by the polygon. Holes are subtracted,
// regardless of the orientation of their contours.
func (pg *Polygon) Area() float64 {
	area := 0.0
	for i, c := range pg.pg {
		a := math.Abs(shoelace(c))
		if pg.depth(i)%2 == 1 {
			a = -a
		}
		area += a
	}
	return area
}

// shoelace returns the signed area of a contour.
func shoelace(c polyclip.Contour) float64 {
	s := 0.0
	for i, p := range c {
		q := c[(i+1)%len(c)]
		s += p.X*q.Y - q.X*p.Y
	}
	return s / 2
}

func (pg *Polygon) construct(op polyclip.Op, other *Polygon) *Polygon {
	r := &Polygon{pg: pg.pg.Construct(op, other.pg)}
	L().Debugf("boolean op %d: %d and %d vertices give %d", op, pg.N(), other.N(), r.N())
	return r
}

// Union returns a new polygon covering both pg and other.
func (pg *Polygon) Union(other *Polygon) *Polygon {
	return pg.construct(polyclip.UNION, other)
}

// Intersection returns a new polygon covering the area common to pg and
// other.
func (pg *Polygon) Intersection(other *Polygon) *Polygon {
	return pg.construct(polyclip.INTERSECTION, other)
}

// Difference returns a new polygon covering pg without other.
func (pg *Polygon) Difference(other *Polygon) *Polygon {
	return pg.construct(polyclip.DIFFERENCE, other)
}

// Xor returns a new polygon covering either pg or other, but not both.
func (pg *Polygon) Xor(other *Polygon) *Polygon {
	return pg.construct(polyclip.XOR, other)
}

// AsString returns a polygon as a (debugging) string, one bracketed list
// of knots per contour.
func AsString(pg *Polygon) string {
	if pg == nil {
		return "<nil>"
	}
	var b strings.Builder
	for i, c := range pg.pg {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('[')
		for j, p := range c {
			if j > 0 {
				b.WriteString("--")
			}
			b.WriteString(pair(p).String())
		}
		b.WriteString("--cycle]")
	}
	return b.String()
}
