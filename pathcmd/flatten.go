package pathcmd

import (
	"fmt"
	"math"

	"github.com/npillmayer/diagrams"
)

// Flatten converts a path into polylines, one per subpath. Arcs are
// approximated by line segments deviating at most tolerance from the true
// arc. Closed subpaths end with their start point.
func (path *Path) Flatten(tolerance float64) ([][]diagrams.Pair, error) {
	if tolerance <= 0 || math.IsNaN(tolerance) {
		return nil, fmt.Errorf("%w: got %g", ErrBadTolerance, tolerance)
	}
	if len(path.cmds) == 0 {
		return nil, ErrEmptyPath
	}
	var lines [][]diagrams.Pair
	var cur []diagrams.Pair
	var start, pen diagrams.Pair
	for _, c := range path.cmds {
		switch c.Op {
		case OpMove:
			if len(cur) > 0 {
				lines = append(lines, cur)
			}
			cur = []diagrams.Pair{c.To}
			start, pen = c.To, c.To
			continue
		case OpLine:
			cur = append(cur, c.To)
		case OpArc:
			cur = append(cur, flattenArc(pen, c, tolerance)...)
		case OpClose:
			if pen != start {
				cur = append(cur, start)
			}
			pen = start
			continue
		}
		pen = c.To
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines, nil
}

// arc is an elliptical arc in centre parameterization.
type arc struct {
	center        diagrams.Pair
	rx, ry        float64
	sin, cos      float64 // of the x-axis rotation
	theta, dtheta float64 // start angle and signed sweep
}

func (a arc) at(theta float64) diagrams.Pair {
	st, ct := math.Sincos(theta)
	x := a.cos*a.rx*ct - a.sin*a.ry*st + a.center.X()
	y := a.sin*a.rx*ct + a.cos*a.ry*st + a.center.Y()
	return diagrams.P(x, y)
}

// flattenArc returns the points after p0 along the arc command c, the last
// one being exactly c.To.
func flattenArc(p0 diagrams.Pair, c Command, tolerance float64) []diagrams.Pair {
	a, ok := centerArc(p0, c)
	if !ok {
		if p0 == c.To {
			return nil
		}
		return []diagrams.Pair{c.To}
	}
	r := math.Max(a.rx, a.ry)
	step := 2 * math.Acos(math.Max(-1, 1-tolerance/r))
	n := int(math.Ceil(math.Abs(a.dtheta) / step))
	if n < 1 {
		n = 1
	}
	pts := make([]diagrams.Pair, 0, n)
	for i := 1; i < n; i++ {
		pts = append(pts, a.at(a.theta+a.dtheta*float64(i)/float64(n)))
	}
	return append(pts, c.To)
}

// centerArc converts an SVG endpoint arc into centre parameterization,
// following the SVG implementation notes (F.6.5 and F.6.6). It returns false
// for arcs which degrade to straight lines.
func centerArc(p0 diagrams.Pair, c Command) (arc, bool) {
	rx, ry := math.Abs(c.Rx), math.Abs(c.Ry)
	if diagrams.Is0(rx) || diagrams.Is0(ry) || p0 == c.To {
		return arc{}, false
	}
	a := arc{}
	a.sin, a.cos = math.Sincos(c.XRot * diagrams.Deg2Rad)
	x1, y1 := p0.F()
	x2, y2 := c.To.F()
	dx2, dy2 := (x1-x2)/2, (y1-y2)/2
	x1p := a.cos*dx2 + a.sin*dy2
	y1p := -a.sin*dx2 + a.cos*dy2
	if lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := math.Sqrt(math.Max(0, num/den))
	if c.Large == c.Sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx
	a.center = diagrams.P(
		a.cos*cxp-a.sin*cyp+(x1+x2)/2,
		a.sin*cxp+a.cos*cyp+(y1+y2)/2,
	)
	a.rx, a.ry = rx, ry
	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := (-x1p-cxp)/rx, (-y1p-cyp)/ry
	a.theta = vecAngle(1, 0, ux, uy)
	a.dtheta = vecAngle(ux, uy, vx, vy)
	if !c.Sweep && a.dtheta > 0 {
		a.dtheta -= diagrams.TwoPi
	} else if c.Sweep && a.dtheta < 0 {
		a.dtheta += diagrams.TwoPi
	}
	return a, true
}

// signed angle from vector u to vector v
func vecAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}
