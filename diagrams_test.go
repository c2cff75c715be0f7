package diagrams

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	assert.Equal(t, 0.0, Zap(-a))
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.Equal(t, "(3,2)", p.String())
	assert.InDelta(t, 5.0, P(0, 0).Dist(P(3, 4)), 1e-12)
}

func TestPolarFollowsScreenConvention(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// -π/2 points up on a y-down canvas ("12 o'clock")
	p := Polar(-math.Pi/2, 100)
	assert.InDelta(t, 0.0, p.X(), 1e-9)
	assert.InDelta(t, -100.0, p.Y(), 1e-9)
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(180 * Deg2Rad).Shifted(P(1, 0)).IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestCombine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := Rotation(math.Pi / 2).Combine(Translation(P(10, 0)))
	p := m.Transform(P(1, 0))
	assert.True(t, p.Equal(P(10, 1)), "rotate then translate, got %v", p)
	assert.InDelta(t, math.Pi/2, m.Angle(), 1e-12)
	assert.InDelta(t, 1.0, m.Scale(), 1e-12)
	assert.InDelta(t, 2.5, Scaling(2.5).Scale(), 1e-12)
}

func TestFallbackColorCycles(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	want := []string{"#D81B60", "#1E88E5", "#FFC107", "#004D40", "#D81B60"}
	for i, c := range want {
		assert.Equal(t, c, FallbackColor(i))
	}
	assert.Equal(t, "#004D40", FallbackColor(-1))
	assert.Equal(t, "red", ColorOr("red", 2))
	assert.Equal(t, "#FFC107", ColorOr("", 2))
}
