/*
Package tab draws rounded rectangles with a single protruding tab on one of
their edges, as used for panel outlines in technical drawings.

The outline is described by 16 boundary points a…p. For a tab on the left
edge they sit as follows (y grows downwards):

	          a----------b
	          p           c
	          o           |
	    m----n            |
	   l                  |
	   k                  |
	    j----i            |
	          h           |
	          g           d
	          f----------e

The outline starts at a, runs clockwise on screen and traverses the tab
edge last. Every corner is a fillet of the same radius. Each edge has its
own table of points; they are not derived from each other.

Tab sizes are absolute: the tab width is always its extent along x, the tab
height its extent along y. The tab position is the distance of the tab from
the top edge (for Left and Right) or from the left edge (for Top and Bottom).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package tab

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tab'
func tracer() tracing.Trace {
	return tracing.Select("tab")
}

// ErrUnsupportedConfiguration is returned for a tab configuration without
// a point formula.
var ErrUnsupportedConfiguration = errors.New("unsupported tab configuration")

// Edge selects the rectangle edge carrying the tab.
type Edge int8

// Tab edges. None draws a plain rounded rectangle.
const (
	Left Edge = iota
	Right
	Top
	Bottom
	None
)

func (e Edge) String() string {
	switch e {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case None:
		return "None"
	}
	return fmt.Sprintf("Edge(%d)", int8(e))
}

// Tab is a rounded rectangle with an optional tab. It is a value type:
// every setter returns a modified copy, so calls chain.
//
//	outline, err := tab.New().Sized(50, 80).Radius(10).Tab(15, 25).Edge(tab.Left).Position(15).Render()
type Tab struct {
	radius    float64
	width     float64
	height    float64
	edge      Edge
	tabWidth  float64
	tabHeight float64
	position  float64
	edgeAware bool
}

// New creates a zero-sized rectangle with its (empty) tab on the left edge.
func New() Tab {
	return Tab{}
}

// Sized sets the size of the rectangle, excluding the tab.
func (t Tab) Sized(width, height float64) Tab {
	t.width = width
	t.height = height
	return t
}

// Radius sets the radius of all corner fillets.
func (t Tab) Radius(radius float64) Tab {
	t.radius = radius
	return t
}

// Tab sets the x- and y-extent of the tab.
func (t Tab) Tab(tabWidth, tabHeight float64) Tab {
	t.tabWidth = tabWidth
	t.tabHeight = tabHeight
	return t
}

// Edge selects the edge carrying the tab.
func (t Tab) Edge(edge Edge) Tab {
	t.edge = edge
	return t
}

// Position sets the distance of the tab from the start of its edge.
func (t Tab) Position(position float64) Tab {
	t.position = position
	return t
}

// EdgeAwareGates selects how the fillets next to the tab are dropped. By
// default the fillet entering the tab is dropped when the tab height plus a
// fillet reaches the far end of its edge, and the fillet leaving the tab when
// the tab sits within a fillet of the start, for every edge. With
// edge-aware gates, the tab extent along its edge is measured (the tab width
// for Top and Bottom), and for Top and Right, which are traversed along the
// position axis, the two gates trade places.
func (t Tab) EdgeAwareGates(on bool) Tab {
	t.edgeAware = on
	return t
}

// HasEdgeAwareGates tells whether edge-aware gates are in effect.
func (t Tab) HasEdgeAwareGates() bool { return t.edgeAware }

// Width returns the width of the rectangle.
func (t Tab) Width() float64 { return t.width }

// Height returns the height of the rectangle.
func (t Tab) Height() float64 { return t.height }

// CornerRadius returns the fillet radius.
func (t Tab) CornerRadius() float64 { return t.radius }

// TabSize returns the x- and y-extent of the tab.
func (t Tab) TabSize() (float64, float64) { return t.tabWidth, t.tabHeight }

// TabEdge returns the edge carrying the tab.
func (t Tab) TabEdge() Edge { return t.edge }

// TabPosition returns the distance of the tab from the start of its edge.
func (t Tab) TabPosition() float64 { return t.position }

// HasTab is true if the tab is on an edge and has a non-zero size.
func (t Tab) HasTab() bool {
	return t.edge != None && t.tabWidth != 0 && t.tabHeight != 0
}

// notNearStart is true if there is room for a fillet between the start of
// the tab edge and the tab.
func (t Tab) notNearStart() bool {
	return t.position > t.radius
}

// notNearEnd is true if there is room for a fillet between the tab and the
// end of the tab edge.
func (t Tab) notNearEnd() bool {
	along, dim := t.tabHeight, t.height
	if t.edge == Top || t.edge == Bottom {
		dim = t.width
		if t.edgeAware {
			along = t.tabWidth
		}
	}
	return t.position+t.radius+along < dim
}

// gates tells whether the corner pair entering the tab (g→h→i) and the one
// leaving it (o→p→a) are drawn.
func (t Tab) gates() (enter, leave bool) {
	if t.edgeAware && (t.edge == Top || t.edge == Right) {
		return t.notNearStart(), t.notNearEnd()
	}
	return t.notNearEnd(), t.notNearStart()
}
