/*
Package pie lays out pie charts and emits one closed path per slice.

A chart is a list of segments, each taking a ratio of the full circle.
Ratios are used as given: they are neither validated nor normalized, so a
chart whose ratios do not sum up to 1 does not close into a full circle.

	chart := pie.NewChart()
	chart.SetRadius(100)
	chart.SetStart(-math.Pi/2, pie.Edge) // 12 o'clock
	chart.SetSegments(0.15, 0.3, 0.4, 0.15)
	for _, slice := range chart.Render() {
		fmt.Println(slice.Color, slice.Path.Data())
	}

Angles follow the convention of package diagrams: 0 is "3 o'clock", and
slices follow each other in the direction of growing angles, which is
clockwise on a y-down canvas.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package pie

import (
	"github.com/npillmayer/diagrams"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pie'
func tracer() tracing.Trace {
	return tracing.Select("pie")
}

// StartStyle selects how the start offset of a chart aligns the slices.
type StartStyle int8

const (
	// Edge puts the leading edge of the first slice at the start offset.
	Edge StartStyle = iota
	// Center puts the angular center of the first slice at the start offset.
	Center
	// CenterLargest rotates the chart such that the largest slice is centered
	// where it would be centered if all slices were of equal size. The start
	// offset is ignored, unless SetKeepOffset(true) is in effect.
	CenterLargest
)

func (s StartStyle) String() string {
	switch s {
	case Edge:
		return "Edge"
	case Center:
		return "Center"
	case CenterLargest:
		return "CenterLargest"
	}
	return "StartStyle(?)"
}

// Segment is one slice of a pie chart.
type Segment struct {
	ratio float64
	color string
}

// NewSegment creates a segment for a ratio, using the fallback colour.
func NewSegment(ratio float64) Segment {
	return Segment{ratio: ratio}
}

// SetRatio sets the ratio of the full circle this segment takes.
func (s *Segment) SetRatio(ratio float64) {
	s.ratio = ratio
}

// SetColor sets a fill colour. The empty string selects the fallback palette.
func (s *Segment) SetColor(color string) {
	s.color = color
}

// Ratio returns the segment's ratio.
func (s Segment) Ratio() float64 {
	return s.ratio
}

// Color returns the colour explicitly set, or the empty string.
func (s Segment) Color() string {
	return s.color
}

// Chart is a pie chart. Create it with NewChart; a zero Chart has radius 0.
type Chart struct {
	segments    []Segment
	radius      float64
	startOffset float64
	startStyle  StartStyle
	keepOffset  bool
}

// NewChart creates an empty chart with radius 1.
func NewChart() *Chart {
	return &Chart{radius: 1.0}
}

// SetRadius sets the radius of the circle.
func (c *Chart) SetRadius(radius float64) {
	c.radius = radius
}

// Radius returns the radius of the circle.
func (c *Chart) Radius() float64 {
	return c.radius
}

// SetStart sets the start offset (in radians) and how it aligns the slices.
func (c *Chart) SetStart(offset float64, style StartStyle) {
	c.startOffset = offset
	c.startStyle = style
}

// Start returns the start offset and style.
func (c *Chart) Start() (float64, StartStyle) {
	return c.startOffset, c.startStyle
}

// SetKeepOffset selects whether CenterLargest adds the start offset to the
// alignment it computes. It is off by default, in which case the start
// offset has no effect under CenterLargest.
func (c *Chart) SetKeepOffset(keep bool) {
	c.keepOffset = keep
}

// SetSegments replaces all segments by segments with the given ratios and
// fallback colours.
func (c *Chart) SetSegments(ratios ...float64) {
	c.segments = make([]Segment, len(ratios))
	for i, r := range ratios {
		c.segments[i] = NewSegment(r)
	}
}

// SetSegmentList replaces all segments by copies of segs.
func (c *Chart) SetSegmentList(segs []Segment) {
	c.segments = append([]Segment(nil), segs...)
}

// Segment returns the i-th segment for modification, or nil if i is out of
// range.
func (c *Chart) Segment(i int) *Segment {
	if i < 0 || i >= len(c.segments) {
		return nil
	}
	return &c.segments[i]
}

// N returns the number of segments.
func (c *Chart) N() int {
	return len(c.segments)
}

// LargestIndex returns the index of the segment with the largest ratio,
// or -1 for a chart without segments. Of several segments sharing the
// largest ratio, the last one wins.
func (c *Chart) LargestIndex() int {
	largest := -1
	for i, s := range c.segments {
		if largest < 0 || s.ratio >= c.segments[largest].ratio {
			largest = i
		}
	}
	return largest
}

// initialAngle applies the start style to the start offset, returning the
// angle at which the leading edge of the first slice sits.
func (c *Chart) initialAngle() float64 {
	pos := c.startOffset
	if len(c.segments) == 0 {
		return pos
	}
	switch c.startStyle {
	case Center:
		pos -= (c.segments[0].ratio / 2) * diagrams.TwoPi
	case CenterLargest:
		n := float64(len(c.segments))
		index := c.LargestIndex()
		largest := c.segments[index].ratio
		ideal := float64(index)*(1/n) + (1/n)/2
		actual := 0.0
		for _, s := range c.segments[:index] {
			actual += s.ratio
		}
		actual += largest / 2
		aligned := (ideal - actual) * diagrams.TwoPi
		tracer().Debugf("largest segment #%d: ideal center %g, actual center %g", index, ideal, actual)
		if c.keepOffset {
			pos += aligned
		} else {
			pos = aligned
		}
	}
	return pos
}
