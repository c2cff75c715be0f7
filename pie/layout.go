package pie

import (
	"github.com/npillmayer/diagrams"
	"github.com/npillmayer/diagrams/pathcmd"
)

// Wedge is the angular layout of one slice.
type Wedge struct {
	Index  int
	Start  float64       // angle of the leading edge
	Sweep  float64       // angular size, ratio × 2π
	Radius float64
	From   diagrams.Pair // arc start point on the circle
	To     diagrams.Pair // arc end point on the circle
	Color  string        // explicit colour or palette fallback
}

// End returns the angle of the trailing edge.
func (w Wedge) End() float64 {
	return w.Start + w.Sweep
}

// Mid returns the angle bisecting the wedge, e.g. for label placement.
func (w Wedge) Mid() float64 {
	return w.Start + w.Sweep/2
}

// Layout computes the wedges of a chart, in segment order.
func (c *Chart) Layout() []Wedge {
	wedges := make([]Wedge, len(c.segments))
	pos := c.initialAngle()
	tracer().Debugf("layout of %d segments, style %s, first edge at %g", len(c.segments), c.startStyle, pos)
	for i, s := range c.segments {
		angle := s.ratio * diagrams.TwoPi
		wedges[i] = Wedge{
			Index:  i,
			Start:  pos,
			Sweep:  angle,
			Radius: c.radius,
			From:   diagrams.Polar(pos, c.radius),
			To:     diagrams.Polar(pos+angle, c.radius),
			Color:  diagrams.ColorOr(s.color, i),
		}
		pos += angle
	}
	return wedges
}

// Emit writes a wedge as a closed slice path: from the center out to the
// circle, along the arc, and back to the center.
//
// The large-arc flag is always off, so a single wedge larger than half of
// the circle is drawn along the minor arc.
func Emit(w Wedge, b pathcmd.Builder) {
	b.MoveTo(diagrams.Origin)
	b.LineTo(w.From)
	b.ArcTo(w.Radius, w.Radius, 0, false, true, w.To)
	b.LineTo(diagrams.Origin)
	b.Close()
}

// Slice is a rendered slice of a pie chart.
type Slice struct {
	Path  *pathcmd.Path
	Color string
}

// Styled returns the slice's path with its colour as fill.
func (s Slice) Styled() pathcmd.Styled {
	return s.Path.Filled(s.Color)
}

// Render returns one closed path per segment, in segment order, each
// centered on the origin.
func (c *Chart) Render() []Slice {
	wedges := c.Layout()
	slices := make([]Slice, len(wedges))
	for i, w := range wedges {
		path := pathcmd.Nullpath()
		Emit(w, path)
		slices[i] = Slice{Path: path, Color: w.Color}
	}
	return slices
}
