/*
Package shape composes the diagram generators into a fixed set of renderable
shapes.

A Shape renders to a list of styled paths, ready to be handed to a document
layer. The set of shapes is closed: pie charts, tab outlines, and shapes
placed somewhere else by a rotation and a translation.

	shapes := []shape.Shape{
		shape.Pie{Chart: chart},
		shape.Placed{
			Shape:  shape.Outline{Tab: panel, Stroke: "black"},
			Offset: diagrams.P(150, 0),
		},
	}
	paths, err := shape.Render(shapes...)

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package shape

import (
	"errors"
	"fmt"

	"github.com/npillmayer/diagrams"
	"github.com/npillmayer/diagrams/pathcmd"
	"github.com/npillmayer/diagrams/pie"
	"github.com/npillmayer/diagrams/tab"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'shape'
func tracer() tracing.Trace {
	return tracing.Select("shape")
}

// ErrMissingShape is returned for shapes wrapping nothing.
var ErrMissingShape = errors.New("shape has nothing to render")

// Shape is anything which renders to styled paths. Implementations are
// Pie, Outline and Placed.
type Shape interface {
	Render() ([]pathcmd.Styled, error)
	isShape()
}

// Pie renders a pie chart, one path per slice, filled with the slice colour.
type Pie struct {
	Chart *pie.Chart
}

// Outline renders the outline of a rectangle with a tab.
type Outline struct {
	Tab    tab.Tab
	Fill   string
	Stroke string
}

// Placed renders a shape rotated around the origin by Rotation (radians),
// then shifted by Offset.
type Placed struct {
	Shape    Shape
	Offset   diagrams.Pair
	Rotation float64
}

func (Pie) isShape()     {}
func (Outline) isShape() {}
func (Placed) isShape()  {}

// Render renders the slices of the chart.
func (p Pie) Render() ([]pathcmd.Styled, error) {
	if p.Chart == nil {
		return nil, fmt.Errorf("%w: pie without chart", ErrMissingShape)
	}
	slices := p.Chart.Render()
	paths := make([]pathcmd.Styled, len(slices))
	for i, s := range slices {
		paths[i] = s.Styled()
	}
	return paths, nil
}

// Render renders the outline as a single path.
func (o Outline) Render() ([]pathcmd.Styled, error) {
	path, err := o.Tab.Render()
	if err != nil {
		return nil, err
	}
	return []pathcmd.Styled{path.Filled(o.Fill).Stroked(o.Stroke)}, nil
}

// Transform returns the transform applied to the wrapped shape.
func (p Placed) Transform() diagrams.AT {
	return diagrams.Rotation(p.Rotation).Combine(diagrams.Translation(p.Offset))
}

// Render renders the wrapped shape and transforms every path. Styles are
// kept.
func (p Placed) Render() ([]pathcmd.Styled, error) {
	if p.Shape == nil {
		return nil, fmt.Errorf("%w: placement without shape", ErrMissingShape)
	}
	paths, err := p.Shape.Render()
	if err != nil {
		return nil, err
	}
	m := p.Transform()
	for i, s := range paths {
		paths[i].Path = s.Path.Transformed(m)
	}
	return paths, nil
}

// Render renders shapes in order and concatenates their paths. It stops at
// the first shape failing to render.
func Render(shapes ...Shape) ([]pathcmd.Styled, error) {
	var paths []pathcmd.Styled
	for i, s := range shapes {
		if s == nil {
			return nil, fmt.Errorf("%w: shape #%d is nil", ErrMissingShape, i)
		}
		p, err := s.Render()
		if err != nil {
			tracer().Errorf("shape #%d failed to render: %v", i, err)
			return nil, fmt.Errorf("shape #%d: %w", i, err)
		}
		paths = append(paths, p...)
	}
	tracer().Debugf("rendered %d shapes into %d paths", len(shapes), len(paths))
	return paths, nil
}
