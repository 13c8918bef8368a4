package core

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"

	"pan-ca/internal/render"
)

type bit uint8

// holdRule copies each cell unchanged; useful for isolating viewport and
// buffer behavior from rule behavior.
type holdRule struct{}

func (holdRule) Update(x, y int, prev *Grid[bit]) bit { return prev.Get(x, y) }
func (holdRule) Toggle(curr bit) bit                  { return curr ^ 1 }
func (holdRule) Style(curr bit) color.Color {
	if curr != 0 {
		return color.White
	}
	return color.Black
}

// shiftRule moves the whole board one column left per step. Because every
// cell reads its right-hand neighbor from the previous generation, any leak
// of already-updated state into a step destroys the traveling marker.
type shiftRule struct{ holdRule }

func (shiftRule) Update(x, y int, prev *Grid[bit]) bit { return prev.Get(x+1, y) }

type coinRule struct{ holdRule }

func (coinRule) Seed(rng *rand.Rand) bit { return bit(rng.IntN(2)) }

func newTestSupervisor[S any](t *testing.T, rule Rule[S], w, h int) *Supervisor[S] {
	t.Helper()
	s, err := NewSupervisor[S]("test", rule, w, h, DefaultSettings())
	if err != nil {
		t.Fatalf("NewSupervisor(%d, %d) failed: %v", w, h, err)
	}
	return s
}

func TestNewSupervisorRejectsZeroSize(t *testing.T) {
	if _, err := NewSupervisor[bit]("test", holdRule{}, 0, 10, DefaultSettings()); err == nil {
		t.Error("zero width accepted, want error")
	}
	if _, err := NewSupervisor[bit]("test", holdRule{}, 10, 0, DefaultSettings()); err == nil {
		t.Error("zero height accepted, want error")
	}
}

func TestNewSupervisorDefaults(t *testing.T) {
	s := newTestSupervisor[bit](t, holdRule{}, 20, 20)
	if sc := s.Scale(); sc.Mode != ScaleAuto || sc.Factor != 1.0 {
		t.Fatalf("initial scale = %+v, want auto 1.0", sc)
	}
	if s.Generation() != 0 {
		t.Fatalf("initial generation = %d, want 0", s.Generation())
	}
	if sz := s.Size(); sz.W != 20 || sz.H != 20 {
		t.Fatalf("size = %+v, want 20x20", sz)
	}
}

// Two sequential steps must update every cell from the generation observed
// at the start of each step, never from a neighbor updated within the same
// pass. The left-shifting marker would vanish otherwise.
func TestStepReadsConsistentSnapshot(t *testing.T) {
	s := newTestSupervisor[bit](t, shiftRule{}, 5, 1)
	s.Toggle(0, 0)

	s.Step()
	for x := 0; x < 5; x++ {
		want := bit(0)
		if x == 4 {
			want = 1
		}
		if got := s.front.Get(x, 0); got != want {
			t.Fatalf("after one step cell %d = %d, want %d", x, got, want)
		}
	}

	s.Step()
	for x := 0; x < 5; x++ {
		want := bit(0)
		if x == 3 {
			want = 1
		}
		if got := s.front.Get(x, 0); got != want {
			t.Fatalf("after two steps cell %d = %d, want %d", x, got, want)
		}
	}
	if s.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", s.Generation())
	}
}

func TestToggleEditsDisplayedGenerationOnly(t *testing.T) {
	s := newTestSupervisor[bit](t, holdRule{}, 3, 3)
	s.Toggle(1, 1)
	if got := s.front.Get(1, 1); got != 1 {
		t.Fatalf("front cell = %d after toggle, want 1", got)
	}
	if got := s.back.Get(1, 1); got != 0 {
		t.Fatalf("back cell = %d after toggle, want untouched 0", got)
	}
	s.Toggle(1, 1)
	if got := s.front.Get(1, 1); got != 0 {
		t.Fatalf("front cell = %d after double toggle, want 0", got)
	}
}

func TestToggleWrapsCoordinates(t *testing.T) {
	s := newTestSupervisor[bit](t, holdRule{}, 4, 4)
	s.Toggle(-1, -1)
	if got := s.front.Get(3, 3); got != 1 {
		t.Fatalf("Toggle(-1, -1) did not land on (3, 3)")
	}
}

func TestRandomizeDeterministicAndRestartsGeneration(t *testing.T) {
	a := newTestSupervisor[bit](t, coinRule{}, 8, 8)
	b := newTestSupervisor[bit](t, coinRule{}, 8, 8)
	a.Step()
	a.Randomize(99)
	b.Randomize(99)
	if a.Generation() != 0 {
		t.Fatalf("generation = %d after Randomize, want 0", a.Generation())
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if a.front.Get(x, y) != b.front.Get(x, y) {
				t.Fatalf("same seed produced different boards at (%d,%d)", x, y)
			}
		}
	}
}

func TestRandomizeWithoutSeederClears(t *testing.T) {
	s := newTestSupervisor[bit](t, holdRule{}, 3, 3)
	s.Toggle(0, 0)
	s.Randomize(7)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if s.front.Get(x, y) != 0 {
				t.Fatalf("cell (%d,%d) not cleared by Randomize", x, y)
			}
		}
	}
}

func TestScreenRoundTrip(t *testing.T) {
	s := newTestSupervisor[bit](t, holdRule{}, 20, 20)
	s.ResetZoom(640, 480)
	s.Pan(13, -27)

	points := []Point{{0, 0}, {320, 240}, {-55.5, 17.25}, {1e4, -1e4}}
	for _, p := range points {
		got := s.ToScreen(s.FromScreen(p))
		if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
			t.Fatalf("ToScreen(FromScreen(%v)) = %v", p, got)
		}
		got = s.FromScreen(s.ToScreen(p))
		if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
			t.Fatalf("FromScreen(ToScreen(%v)) = %v", p, got)
		}
	}
}

func TestResetZoomFitsAndCenters(t *testing.T) {
	// 20 cells × 50 px = 1000 world px per side.
	s := newTestSupervisor[bit](t, holdRule{}, 20, 20)
	s.ResetZoom(500, 300)

	sc := s.Scale()
	if sc.Mode != ScaleAuto {
		t.Fatalf("scale mode = %v after ResetZoom, want auto", sc.Mode)
	}
	if math.Abs(sc.Factor-0.3) > 1e-9 {
		t.Fatalf("scale factor = %v, want 0.3", sc.Factor)
	}

	tl := s.ToScreen(Pt(0, 0))
	br := s.ToScreen(Pt(1000, 1000))
	// The limiting axis touches both viewport edges.
	if math.Abs(tl.Y-0) > 1e-9 || math.Abs(br.Y-300) > 1e-9 {
		t.Fatalf("grid spans y [%v, %v], want [0, 300]", tl.Y, br.Y)
	}
	// The other axis is centered.
	if math.Abs(tl.X-(500-br.X)) > 1e-9 {
		t.Fatalf("grid spans x [%v, %v], not centered in 500", tl.X, br.X)
	}
	if tl.X < -1e-9 || br.X > 500+1e-9 {
		t.Fatalf("grid spans x [%v, %v], outside viewport", tl.X, br.X)
	}
}

func TestSetScaleFromDeltaKeepsAnchorFixed(t *testing.T) {
	s := newTestSupervisor[bit](t, holdRule{}, 20, 20)
	s.ResetZoom(640, 480)

	anchor := Pt(123, 77)
	world := s.FromScreen(anchor)
	s.SetScaleFromDelta(anchor, 240)

	if mode := s.Scale().Mode; mode != ScaleManual {
		t.Fatalf("scale mode = %v after wheel zoom, want manual", mode)
	}
	back := s.ToScreen(world)
	if math.Abs(back.X-anchor.X) > 1e-6 || math.Abs(back.Y-anchor.Y) > 1e-6 {
		t.Fatalf("anchor moved from %v to %v during zoom", anchor, back)
	}
}

func TestSetScaleFromDeltaClampsNonNegative(t *testing.T) {
	s := newTestSupervisor[bit](t, holdRule{}, 20, 20)
	s.SetScaleFromDelta(Pt(10, 10), -1e9)

	sc := s.Scale()
	if sc.Factor != 0 {
		t.Fatalf("scale factor = %v after huge zoom-out, want clamped 0", sc.Factor)
	}
	if sc.Raw() <= 0 {
		t.Fatalf("raw scale = %v, want positive epsilon floor", sc.Raw())
	}
	p := s.FromScreen(Pt(42, 42))
	if math.IsInf(p.X, 0) || math.IsNaN(p.X) || math.IsInf(p.Y, 0) || math.IsNaN(p.Y) {
		t.Fatalf("FromScreen produced non-finite point %v at clamped scale", p)
	}
}

func TestResetZoomRestoresAutoAfterManual(t *testing.T) {
	s := newTestSupervisor[bit](t, holdRule{}, 20, 20)
	s.SetScaleFromDelta(Pt(0, 0), 500)
	if s.Scale().Mode != ScaleManual {
		t.Fatal("wheel zoom did not switch to manual mode")
	}
	s.ResetZoom(800, 800)
	if s.Scale().Mode != ScaleAuto {
		t.Fatal("ResetZoom did not restore auto mode")
	}
}

func TestDrawGeometryAndStyles(t *testing.T) {
	s := newTestSupervisor[bit](t, holdRule{}, 2, 2)
	// 2 cells × 50 px = 100 world px; a 100×100 viewport keeps scale 1 and
	// the translation at the origin.
	s.ResetZoom(100, 100)
	s.Toggle(1, 0)

	rec := render.NewRecorder()
	s.Draw(rec)

	if len(rec.Rects) != 4 {
		t.Fatalf("draw issued %d rects, want 4", len(rec.Rects))
	}
	want := []struct {
		x, y float64
		fill color.Color
	}{
		{1, 1, color.Black},
		{51, 1, color.White},
		{1, 51, color.Black},
		{51, 51, color.Black},
	}
	for i, w := range want {
		r := rec.Rects[i]
		if math.Abs(r.X-w.x) > 1e-9 || math.Abs(r.Y-w.y) > 1e-9 {
			t.Fatalf("rect %d at (%v, %v), want (%v, %v)", i, r.X, r.Y, w.x, w.y)
		}
		if math.Abs(r.W-48) > 1e-9 || math.Abs(r.H-48) > 1e-9 {
			t.Fatalf("rect %d is %vx%v, want 48x48", i, r.W, r.H)
		}
		if r.Fill != w.fill {
			t.Fatalf("rect %d filled %v, want %v", i, r.Fill, w.fill)
		}
	}
}

func TestDrawScalesRectangles(t *testing.T) {
	s := newTestSupervisor[bit](t, holdRule{}, 2, 2)
	s.ResetZoom(50, 50) // scale 0.5

	rec := render.NewRecorder()
	s.Draw(rec)

	for i, r := range rec.Rects {
		if math.Abs(r.W-24) > 1e-9 || math.Abs(r.H-24) > 1e-9 {
			t.Fatalf("rect %d is %vx%v at half zoom, want 24x24", i, r.W, r.H)
		}
	}
}
