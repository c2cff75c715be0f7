package tab

import (
	"github.com/npillmayer/diagrams"
	"github.com/npillmayer/diagrams/pathcmd"
)

// Emit writes the outline as a single closed path to b.
//
// Without a tab, the outline is a plain rounded rectangle, independent of
// the configured edge. With a tab, the fillets next to the tab are dropped
// when the tab sits too close to an end of its edge; the outline then cuts
// straight to the tab. All arcs are minor arcs; they bend clockwise, except
// for the two fillets where the outline turns into and out of the tab.
func (t Tab) Emit(b pathcmd.Builder) error {
	if !t.HasTab() {
		t = t.Edge(Left).Tab(0, 0)
	}
	pts, err := t.Points()
	if err != nil {
		return err
	}
	r := t.radius
	corner := func(p diagrams.Pair) {
		b.ArcTo(r, r, 0, false, true, p)
	}
	inner := func(p diagrams.Pair) {
		b.ArcTo(r, r, 0, false, false, p)
	}
	b.MoveTo(pts.A)
	b.LineTo(pts.B)
	corner(pts.C)
	b.LineTo(pts.D)
	corner(pts.E)
	b.LineTo(pts.F)
	if !t.HasTab() {
		corner(pts.G)
		b.LineTo(pts.P)
		corner(pts.A)
		b.Close()
		return nil
	}
	enter, leave := t.gates()
	tracer().Debugf("tab on %s edge at %g: enter fillet %v, leave fillet %v", t.edge, t.position, enter, leave)
	if enter {
		corner(pts.G)
		b.LineTo(pts.H)
		inner(pts.I)
	}
	b.LineTo(pts.J)
	corner(pts.K)
	b.LineTo(pts.L)
	corner(pts.M)
	b.LineTo(pts.N)
	if leave {
		inner(pts.O)
		b.LineTo(pts.P)
		corner(pts.A)
	}
	b.Close()
	return nil
}

// Render returns the outline as a new path.
func (t Tab) Render() (*pathcmd.Path, error) {
	path := pathcmd.Nullpath()
	if err := t.Emit(path); err != nil {
		return nil, err
	}
	return path, nil
}
