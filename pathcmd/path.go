/*
Package pathcmd records vector path commands.

Shape generators write to a Builder, which knows four primitives: move,
line, elliptical arc and close. The concrete Path type records the commands
and renders them as SVG path data, flattens them to polylines, or transforms
them as a whole.

	path := pathcmd.Nullpath()
	path.MoveTo(diagrams.P(0, 0))
	path.LineTo(diagrams.P(10, 0))
	path.ArcTo(10, 10, 0, false, true, diagrams.P(20, 10))
	path.Close()
	fmt.Println(path.Data()) // M 0 0 L 10 0 A 10 10 0 0 1 20 10 Z

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package pathcmd

import (
	"errors"

	"github.com/npillmayer/diagrams"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pathcmd'
func tracer() tracing.Trace {
	return tracing.Select("pathcmd")
}

var (
	// ErrEmptyPath indicates a path without any commands.
	ErrEmptyPath = errors.New("path has no commands")
	// ErrBadTolerance indicates a non-positive flattening tolerance.
	ErrBadTolerance = errors.New("flattening tolerance must be positive")
)

// Builder receives path commands. Arc parameters follow the SVG 'A' command:
// radii rx and ry, x-axis rotation xrot in degrees, large-arc and sweep flags,
// and the end point.
type Builder interface {
	MoveTo(p diagrams.Pair)
	LineTo(p diagrams.Pair)
	ArcTo(rx, ry, xrot float64, large, sweep bool, p diagrams.Pair)
	Close()
}

// Op is the kind of a path command.
type Op uint8

// Path command kinds.
const (
	OpMove Op = iota + 1
	OpLine
	OpArc
	OpClose
)

func (op Op) String() string {
	switch op {
	case OpMove:
		return "M"
	case OpLine:
		return "L"
	case OpArc:
		return "A"
	case OpClose:
		return "Z"
	}
	return "?"
}

// Command is a single recorded path command. Arc fields are zero for
// other kinds, To is unused for OpClose.
type Command struct {
	Op           Op
	To           diagrams.Pair
	Rx, Ry       float64
	XRot         float64 // degrees
	Large, Sweep bool
}

// Path is a sequence of path commands, possibly consisting of several
// subpaths. The zero value is an empty path ready to use.
type Path struct {
	cmds    []Command
	start   diagrams.Pair // start of the current subpath
	current diagrams.Pair
	pen     bool // is there a current point?
}

var _ Builder = (*Path)(nil)

// Nullpath creates an empty path, to be extended by subsequent builder calls.
func Nullpath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at p.
func (path *Path) MoveTo(p diagrams.Pair) {
	path.cmds = append(path.cmds, Command{Op: OpMove, To: p})
	path.start, path.current, path.pen = p, p, true
}

// LineTo draws a straight line from the current point to p.
func (path *Path) LineTo(p diagrams.Pair) {
	if !path.pen {
		panic("cannot add line to empty path")
	}
	path.cmds = append(path.cmds, Command{Op: OpLine, To: p})
	path.current = p
}

// ArcTo draws an elliptical arc from the current point to p.
func (path *Path) ArcTo(rx, ry, xrot float64, large, sweep bool, p diagrams.Pair) {
	if !path.pen {
		panic("cannot add arc to empty path")
	}
	path.cmds = append(path.cmds, Command{
		Op:    OpArc,
		To:    p,
		Rx:    rx,
		Ry:    ry,
		XRot:  xrot,
		Large: large,
		Sweep: sweep,
	})
	path.current = p
}

// Close closes the current subpath. The current point returns to the start
// of the subpath.
func (path *Path) Close() {
	if !path.pen {
		panic("cannot close empty path")
	}
	path.cmds = append(path.cmds, Command{Op: OpClose, To: path.start})
	path.current = path.start
}

// N returns the number of commands in this path.
func (path *Path) N() int {
	return len(path.cmds)
}

// Command returns the i-th command.
func (path *Path) Command(i int) Command {
	return path.cmds[i]
}

// Commands returns a copy of the command list.
func (path *Path) Commands() []Command {
	return append([]Command(nil), path.cmds...)
}

// Count returns the number of commands of kind op.
func (path *Path) Count(op Op) int {
	n := 0
	for _, c := range path.cmds {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Start returns the first point of the path, or the origin for an empty path.
func (path *Path) Start() diagrams.Pair {
	if len(path.cmds) == 0 {
		return diagrams.Origin
	}
	return path.cmds[0].To
}

// Current returns the current point, i.e. the end point of the last command.
func (path *Path) Current() diagrams.Pair {
	return path.current
}

// IsClosed is a predicate: does the path end with a close command?
func (path *Path) IsClosed() bool {
	return len(path.cmds) > 0 && path.cmds[len(path.cmds)-1].Op == OpClose
}

// Subpaths returns the number of subpaths, i.e. the number of move commands.
func (path *Path) Subpaths() int {
	return path.Count(OpMove)
}

// Equal reports whether two paths consist of identical commands.
func (path *Path) Equal(q *Path) bool {
	if path == nil || q == nil {
		return path == q
	}
	if len(path.cmds) != len(q.cmds) {
		return false
	}
	for i := range path.cmds {
		if path.cmds[i] != q.cmds[i] {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of path.
func (path *Path) Copy() *Path {
	c := *path
	c.cmds = path.Commands()
	return &c
}
