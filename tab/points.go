package tab

import (
	"fmt"

	"github.com/npillmayer/diagrams"
)

// Points are the labelled boundary points of a tab outline. A…G and P run
// around the three plain corners and the start of the tab edge, H…O around
// the tab.
type Points struct {
	A, B, C, D, E, F, G, H diagrams.Pair
	I, J, K, L, M, N, O, P diagrams.Pair
}

// Points computes the 16 boundary points. A tab without size, or on edge
// None, yields the points of a plain rounded rectangle, with a tab of size 0
// on the left edge.
func (t Tab) Points() (Points, error) {
	if t.edge == None {
		return t.Edge(Left).Tab(0, 0).Points()
	}
	P := diagrams.P
	r, w, h := t.radius, t.width, t.height
	tw, th, tp := t.tabWidth, t.tabHeight, t.position
	switch t.edge {
	case Left:
		return Points{
			A: P(r, 0),
			B: P(w-r, 0),
			C: P(w, r),
			D: P(w, h-r),
			E: P(w-r, h),
			F: P(r, h),
			G: P(0, h-r),
			H: P(0, tp+r+th),
			I: P(-r, tp+th),
			J: P(-tw+r, tp+th),
			K: P(-tw, tp-r+th),
			L: P(-tw, tp+r),
			M: P(-tw+r, tp),
			N: P(-r, tp),
			O: P(0, tp-r),
			P: P(0, r),
		}, nil
	case Right:
		return Points{
			A: P(w-r, h),
			B: P(r, h),
			C: P(0, h-r),
			D: P(0, r),
			E: P(r, 0),
			F: P(w-r, 0),
			G: P(w, r),
			H: P(w, tp-r),
			I: P(w+r, tp),
			J: P(w+tw-r, tp),
			K: P(w+tw, tp+r),
			L: P(w+tw, tp+th-r),
			M: P(w+tw-r, tp+th),
			N: P(w+r, tp+th),
			O: P(w, tp+th+r),
			P: P(w, h-r),
		}, nil
	case Top:
		return Points{
			A: P(w, r),
			B: P(w, h-r),
			C: P(w-r, h),
			D: P(r, h),
			E: P(0, h-r),
			F: P(0, r),
			G: P(r, 0),
			H: P(tp-r, 0),
			I: P(tp, -r),
			J: P(tp, -th+r),
			K: P(tp+r, -th),
			L: P(tp+tw-r, -th),
			M: P(tp+tw, -th+r),
			N: P(tp+tw, -r),
			O: P(tp+tw+r, 0),
			P: P(w-r, 0),
		}, nil
	case Bottom:
		return Points{
			A: P(0, h-r),
			B: P(0, r),
			C: P(r, 0),
			D: P(w-r, 0),
			E: P(w, r),
			F: P(w, h-r),
			G: P(w-r, h),
			H: P(tp+tw+r, h),
			I: P(tp+tw, h+r),
			J: P(tp+tw, h+th-r),
			K: P(tp+tw-r, h+th),
			L: P(tp+r, h+th),
			M: P(tp, h+th-r),
			N: P(tp, h+r),
			O: P(tp-r, h),
			P: P(r, h),
		}, nil
	}
	tracer().Errorf("no point formula for tab edge %s", t.edge)
	return Points{}, fmt.Errorf("%w: edge %s", ErrUnsupportedConfiguration, t.edge)
}
