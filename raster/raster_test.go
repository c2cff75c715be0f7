package raster

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/npillmayer/diagrams"
	"github.com/npillmayer/diagrams/pathcmd"
	"github.com/npillmayer/diagrams/pie"
	"github.com/npillmayer/diagrams/tab"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square adds a closed square subpath, clockwise on screen unless ccw is
// set.
func square(path *pathcmd.Path, x0, y0, x1, y1 float64, ccw bool) {
	corners := []diagrams.Pair{
		diagrams.P(x0, y0), diagrams.P(x1, y0), diagrams.P(x1, y1), diagrams.P(x0, y1),
	}
	if ccw {
		corners[1], corners[3] = corners[3], corners[1]
	}
	path.MoveTo(corners[0])
	for _, c := range corners[1:] {
		path.LineTo(c)
	}
	path.Close()
}

func TestMaskOrigin(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := pathcmd.Nullpath()
	square(path, 12, 7, 13, 8, false)
	mask, err := Rasterize(path, image.Rect(10, 5, 20, 15), 0.1)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 10), mask.Bounds())
	assert.Equal(t, uint8(0xff), mask.AlphaAt(2, 2).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(0, 0).A)
	assert.InDelta(t, 1.0, Coverage(mask), 0.01)
}

func TestNonZeroFill(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	bounds := image.Rect(0, 0, 10, 10)
	same := pathcmd.Nullpath()
	square(same, 0, 0, 10, 10, false)
	square(same, 3, 3, 5, 5, false)
	mask, err := Rasterize(same, bounds, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, Coverage(mask), 0.01)
	opposite := pathcmd.Nullpath()
	square(opposite, 0, 0, 10, 10, false)
	square(opposite, 3, 3, 5, 5, true)
	mask, err = Rasterize(opposite, bounds, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 96.0, Coverage(mask), 0.01)
}

func TestClipping(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := pathcmd.Nullpath()
	square(path, -5, -5, 5, 5, false)
	mask, err := Rasterize(path, image.Rect(0, 0, 10, 10), 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, Coverage(mask), 0.01)
}

func TestErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := pathcmd.Nullpath()
	square(path, 0, 0, 1, 1, false)
	_, err := Rasterize(path, image.Rect(0, 0, 0, 10), 0.1)
	assert.True(t, errors.Is(err, ErrEmptyBounds))
	_, err = Rasterize(path, image.Rect(0, 0, 10, 10), 0)
	assert.ErrorIs(t, err, pathcmd.ErrBadTolerance)
	_, err = Rasterize(pathcmd.Nullpath(), image.Rect(0, 0, 10, 10), 0.1)
	assert.ErrorIs(t, err, pathcmd.ErrEmptyPath)
	assert.Equal(t, 0.0, Coverage(nil))
}

func TestPieCoverage(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	chart := pie.NewChart()
	chart.SetRadius(20)
	chart.SetStart(0.3, pie.CenterLargest)
	chart.SetSegments(0.21, 0.19, 0.19, 0.41)
	bounds := image.Rect(-20, -20, 20, 20)
	total := 0.0
	for i, s := range chart.Render() {
		mask, err := Rasterize(s.Path, bounds, 0.01)
		require.NoError(t, err)
		c := Coverage(mask)
		assert.InDelta(t, 200*chart.Segment(i).Ratio()*diagrams.TwoPi, c, 1.5, "slice %d", i)
		total += c
	}
	assert.InDelta(t, 400*math.Pi, total, 2)
}

func TestTabCoverage(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	panel := tab.New().Sized(60, 80).Radius(5).Tab(15, 20).Edge(tab.Left).Position(20)
	bounds := image.Rect(-20, -5, 65, 85)
	coverage := func(tb tab.Tab) float64 {
		path, err := tb.Render()
		require.NoError(t, err)
		mask, err := Rasterize(path, bounds, 0.01)
		require.NoError(t, err)
		return Coverage(mask)
	}
	rect := coverage(panel.Edge(tab.None))
	assert.InDelta(t, 60*80-100*(1-math.Pi/4), rect, 2)
	assert.InDelta(t, 300.0, coverage(panel)-rect, 3)
}
