package pathcmd

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/diagrams"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

// quarter circle of radius 10 around the origin, as a closed wedge
func testwedge() *Path {
	path := Nullpath()
	path.MoveTo(diagrams.Origin)
	path.LineTo(diagrams.P(10, 0))
	path.ArcTo(10, 10, 0, false, true, diagrams.P(0, 10))
	path.LineTo(diagrams.Origin)
	path.Close()
	return path
}

func TestCreatePath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testwedge()
	assert.Equal(t, 5, path.N())
	assert.Equal(t, 1, path.Count(OpArc))
	assert.Equal(t, 2, path.Count(OpLine))
	assert.Equal(t, 1, path.Subpaths())
	assert.True(t, path.IsClosed())
	assert.Equal(t, diagrams.Origin, path.Start())
	assert.Equal(t, diagrams.Origin, path.Current())
}

func TestDataSnapshot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testwedge()
	assert.Equal(t, "M 0 0 L 10 0 A 10 10 0 0 1 0 10 L 0 0 Z", path.Data())
	assert.Equal(t, "M(0,0) L(10,0) A[10,10,0,0,1](0,10) L(0,0) Z", AsString(path))
	p := Nullpath()
	p.MoveTo(diagrams.P(-0.0, 2.5))
	assert.Equal(t, "M 0 2.5", p.Data())
}

func TestMisuseOfEmptyPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mustPanic(t, func() { Nullpath().LineTo(diagrams.P(1, 1)) })
	mustPanic(t, func() { Nullpath().ArcTo(1, 1, 0, false, true, diagrams.P(1, 1)) })
	mustPanic(t, func() { Nullpath().Close() })
}

func TestCloseReturnsToSubpathStart(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath()
	path.MoveTo(diagrams.P(0, 0))
	path.LineTo(diagrams.P(1, 0))
	path.Close()
	path.MoveTo(diagrams.P(5, 5))
	path.LineTo(diagrams.P(6, 5))
	path.Close()
	assert.Equal(t, 2, path.Subpaths())
	assert.Equal(t, diagrams.P(5, 5), path.Current())
	assert.Equal(t, diagrams.P(5, 5), path.Command(path.N()-1).To)
}

func TestEqualAndCopy(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, q := testwedge(), testwedge()
	if d := cmp.Diff(p.Commands(), q.Commands()); d != "" {
		t.Fatalf("mismatch (-want +got):\n%s", d)
	}
	assert.True(t, p.Equal(q))
	c := p.Copy()
	c.LineTo(diagrams.P(3, 3))
	assert.False(t, p.Equal(c))
	assert.Equal(t, 5, p.N(), "copy must not share storage")
}

func TestTransformed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testwedge()
	moved := path.Translated(diagrams.P(100, 50))
	assert.Equal(t, "M 100 50 L 110 50 A 10 10 0 0 1 100 60 L 100 50 Z", moved.Data())
	assert.Equal(t, "M 0 0 L 10 0 A 10 10 0 0 1 0 10 L 0 0 Z", path.Data(), "receiver changed")

	turned := path.Rotated(math.Pi / 2)
	arc := turned.Command(2)
	assert.InDelta(t, 90.0, arc.XRot, 1e-9)
	assert.True(t, arc.To.Equal(diagrams.P(-10, 0)), "arc end = %v", arc.To)
	assert.True(t, arc.Sweep)

	big := path.Scaled(2)
	assert.Equal(t, 20.0, big.Command(2).Rx)
	assert.True(t, big.Command(2).To.Equal(diagrams.P(0, 20)))
}

func TestStyled(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := testwedge().Filled("#fff").Stroked("black")
	assert.Equal(t, "#fff", s.Fill)
	assert.Equal(t, "black", s.Stroke)
	assert.Equal(t, 5, s.Path.N())
}

func TestFlattenErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := testwedge().Flatten(0)
	assert.True(t, errors.Is(err, ErrBadTolerance))
	_, err = Nullpath().Flatten(0.1)
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestFlattenQuarterCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	lines, err := testwedge().Flatten(0.01)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	pl := lines[0]
	assert.Equal(t, diagrams.Origin, pl[0])
	assert.Equal(t, diagrams.Origin, pl[len(pl)-1])
	// all points of the arc lie on the circle and run clockwise on screen
	arcpts := pl[2 : len(pl)-1]
	assert.Greater(t, len(arcpts), 4)
	prev := 0.0
	for _, p := range arcpts {
		assert.InDelta(t, 10.0, p.Dist(diagrams.Origin), 1e-9)
		a := math.Atan2(p.Y(), p.X())
		assert.GreaterOrEqual(t, a, prev)
		prev = a
	}
}

func TestFlattenDegenerateArcs(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath()
	path.MoveTo(diagrams.P(0, 0))
	path.ArcTo(0, 0, 0, false, true, diagrams.P(5, 0)) // zero radius: a line
	path.ArcTo(3, 3, 0, false, true, diagrams.P(5, 0)) // no movement: dropped
	path.ArcTo(1, 1, 0, false, false, diagrams.P(5, 10))
	lines, err := path.Flatten(0.5)
	require.NoError(t, err)
	pl := lines[0]
	assert.Equal(t, diagrams.P(5, 0), pl[1])
	// radius 1 is too small for a chord of 10: scaled up to a half circle
	mid := pl[1+len(pl[1:])/2]
	assert.InDelta(t, 5.0, mid.Dist(diagrams.P(5, 5)), 1e-6)
	assert.Equal(t, diagrams.P(5, 10), pl[len(pl)-1])
}

func TestFlattenLargeArc(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	small, large := Nullpath(), Nullpath()
	for _, p := range []*Path{small, large} {
		p.MoveTo(diagrams.P(10, 0))
	}
	small.ArcTo(10, 10, 0, false, true, diagrams.P(0, 10))
	large.ArcTo(10, 10, 0, true, true, diagrams.P(0, 10))
	ls, err := small.Flatten(0.01)
	require.NoError(t, err)
	ll, err := large.Flatten(0.01)
	require.NoError(t, err)
	assert.Greater(t, len(ll[0]), 2*len(ls[0]))
	for _, p := range ls[0] {
		assert.InDelta(t, 10.0, p.Dist(diagrams.Origin), 1e-9)
	}
	for _, p := range ll[0] {
		assert.InDelta(t, 10.0, p.Dist(diagrams.P(10, 10)), 1e-9)
	}
}
