/*
Package raster renders paths into alpha masks.

Paths are flattened and filled with the non-zero winding rule, with
anti-aliased edges. One path unit is one pixel. Masks are mainly used to
check the coverage of generated shapes.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/npillmayer/diagrams/pathcmd"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/vector"
)

// tracer writes to trace with key 'raster'
func tracer() tracing.Trace {
	return tracing.Select("raster")
}

// ErrEmptyBounds is returned when asked to rasterize into an empty area.
var ErrEmptyBounds = errors.New("raster bounds are empty")

// Rasterize fills path into a new alpha mask covering bounds, given in path
// coordinates. Pixel (0,0) of the mask corresponds to bounds.Min. Arcs are
// flattened with the given tolerance. Parts of the path outside of bounds
// are clipped.
func Rasterize(path *pathcmd.Path, bounds image.Rectangle, tolerance float64) (*image.Alpha, error) {
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrEmptyBounds, bounds)
	}
	lines, err := path.Flatten(tolerance)
	if err != nil {
		return nil, fmt.Errorf("cannot rasterize path: %w", err)
	}
	w, h := bounds.Dx(), bounds.Dy()
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	for _, line := range lines {
		for i, p := range line {
			x, y := float32(p.X()-ox), float32(p.Y()-oy)
			if i == 0 {
				z.MoveTo(x, y)
			} else {
				z.LineTo(x, y)
			}
		}
		z.ClosePath()
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	tracer().Debugf("rasterized %d subpaths into %dx%d mask", len(lines), w, h)
	return mask, nil
}

// Coverage returns the area covered by a mask, in pixels. Partially covered
// pixels count in proportion to their alpha.
func Coverage(mask *image.Alpha) float64 {
	if mask == nil {
		return 0
	}
	sum := 0
	r := mask.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := mask.Pix[mask.PixOffset(r.Min.X, y):]
		for _, a := range row[:r.Dx()] {
			sum += int(a)
		}
	}
	return float64(sum) / 255
}
