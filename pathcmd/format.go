package pathcmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/diagrams"
)

// Data returns the path as an SVG path data string ("d" attribute).
// Numbers are written in the shortest form which reads back to the same
// float64.
func (path *Path) Data() string {
	var b strings.Builder
	for i, c := range path.cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.Op.String())
		switch c.Op {
		case OpMove, OpLine:
			writeNums(&b, c.To.X(), c.To.Y())
		case OpArc:
			writeNums(&b, c.Rx, c.Ry, c.XRot, flag(c.Large), flag(c.Sweep), c.To.X(), c.To.Y())
		}
	}
	return b.String()
}

func writeNums(b *strings.Builder, nums ...float64) {
	for _, n := range nums {
		b.WriteByte(' ')
		if n == 0 { // no "-0"
			n = 0
		}
		b.WriteString(strconv.FormatFloat(n, 'f', -1, 64))
	}
}

func flag(f bool) float64 {
	if f {
		return 1
	}
	return 0
}

// AsString returns a path as a one-line (debugging) string, with
// coordinates rounded to 4 digits.
//
// Example, a quarter circle of radius 1:
//
//	M(0,0) L(1,0) A[1,1,0,0,1](0,1) Z
func AsString(path *Path) string {
	if path == nil {
		return "<nil>"
	}
	s := make([]string, len(path.cmds))
	for i, c := range path.cmds {
		switch c.Op {
		case OpMove, OpLine:
			s[i] = c.Op.String() + ptstring(c.To)
		case OpArc:
			s[i] = fmt.Sprintf("A[%.4g,%.4g,%.4g,%d,%d]%s", c.Rx, c.Ry, c.XRot,
				int(flag(c.Large)), int(flag(c.Sweep)), ptstring(c.To))
		default:
			s[i] = c.Op.String()
		}
	}
	return strings.Join(s, " ")
}

func ptstring(p diagrams.Pair) string {
	return fmt.Sprintf("(%.4g,%.4g)", diagrams.Zap(p.X()), diagrams.Zap(p.Y()))
}

func (c Command) String() string {
	p := Nullpath()
	p.cmds = []Command{c}
	return AsString(p)
}
