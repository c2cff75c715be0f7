package pathcmd

import (
	"github.com/npillmayer/diagrams"
)

// Transformed returns a new path with every command mapped by the similarity
// transform m. Arc radii are scaled and arc x-axis rotations follow the
// rotation part of m. The receiver is unchanged.
//
// Transforms which shear or scale non-uniformly would turn circular arcs
// into general ellipses; they are not supported and produce wrong arcs.
func (path *Path) Transformed(m diagrams.AT) *Path {
	s, rot := m.Scale(), m.Angle()/diagrams.Deg2Rad
	q := path.Copy()
	for i, c := range q.cmds {
		c.To = m.Transform(c.To)
		if c.Op == OpArc {
			c.Rx *= s
			c.Ry *= s
			c.XRot += rot
		}
		q.cmds[i] = c
	}
	q.start = m.Transform(path.start)
	q.current = m.Transform(path.current)
	tracer().Debugf("transformed path of %d commands by %s", q.N(), m)
	return q
}

// Translated returns a copy of path shifted by v.
func (path *Path) Translated(v diagrams.Pair) *Path {
	return path.Transformed(diagrams.Translation(v))
}

// Rotated returns a copy of path rotated around the origin by theta radians.
func (path *Path) Rotated(theta float64) *Path {
	return path.Transformed(diagrams.Rotation(theta))
}

// Scaled returns a copy of path scaled by s around the origin. s must be
// positive.
func (path *Path) Scaled(s float64) *Path {
	return path.Transformed(diagrams.Scaling(s))
}
