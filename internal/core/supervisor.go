package core

// Supervisor owns the two generation buffers for one automaton and the
// viewport state used to map between grid and screen coordinates. All
// mutation happens on the event loop thread, so no locking is needed.
type Supervisor[S any] struct {
	name string
	rule Rule[S]
	set  Settings

	// front holds the last committed generation; drawing and manual
	// toggles read and write it. back is the scratch buffer for the
	// generation being computed and is fully overwritten on every step.
	front *Grid[S]
	back  *Grid[S]

	trans Point
	scale Scale
	gen   int
}

// NewSupervisor allocates front and back grids of the given size, both
// cleared to the zero state. The viewport starts untranslated at an
// auto-fit scale of 1.0.
func NewSupervisor[S any](name string, rule Rule[S], w, h int, set Settings) (*Supervisor[S], error) {
	front, err := NewGrid[S](w, h)
	if err != nil {
		return nil, err
	}
	back, err := NewGrid[S](w, h)
	if err != nil {
		return nil, err
	}
	return &Supervisor[S]{
		name:  name,
		rule:  rule,
		set:   set,
		front: front,
		back:  back,
		scale: AutoScale(1.0),
	}, nil
}

// Name returns the automaton identifier.
func (s *Supervisor[S]) Name() string { return s.name }

// Size returns the grid dimensions.
func (s *Supervisor[S]) Size() Size {
	return Size{W: s.front.Width(), H: s.front.Height()}
}

// Generation returns the number of steps taken since construction or the
// last randomize.
func (s *Supervisor[S]) Generation() int { return s.gen }

// Scale returns the current viewport scale.
func (s *Supervisor[S]) Scale() Scale { return s.scale }

// Step advances the automaton by one generation. The buffers swap roles
// first, then every cell of the new front buffer is computed from the old
// front (now back), so the update rule for every cell observes one
// consistent prior generation and never a mix of old and updated cells.
func (s *Supervisor[S]) Step() {
	s.front, s.back = s.back, s.front
	for y := 0; y < s.front.Height(); y++ {
		for x := 0; x < s.front.Width(); x++ {
			s.front.Set(x, y, s.rule.Update(x, y, s.back))
		}
	}
	s.gen++
}

// Toggle applies the rule's manual-edit transition to the displayed cell at
// (x, y). Only the front buffer is touched; the back buffer is overwritten
// wholesale on the next step.
func (s *Supervisor[S]) Toggle(x, y int) {
	s.front.Set(x, y, s.rule.Toggle(s.front.Get(x, y)))
}

// Randomize reseeds the front buffer. Rules that implement Seeder fill the
// board from a deterministic RNG; others get a cleared board. The
// generation counter restarts.
func (s *Supervisor[S]) Randomize(seed int64) {
	seeder, ok := s.rule.(Seeder[S])
	if !ok {
		s.front.Clear()
		s.gen = 0
		return
	}
	rng := NewRNG(seed).Source()
	for y := 0; y < s.front.Height(); y++ {
		for x := 0; x < s.front.Width(); x++ {
			s.front.Set(x, y, seeder.Seed(rng))
		}
	}
	s.gen = 0
}

// ResetZoom recomputes an auto-fit scale for the given viewport and centers
// the grid within it. This is the fit-to-window operation; it always leaves
// the scale in auto mode.
func (s *Supervisor[S]) ResetZoom(viewportW, viewportH int) {
	targetW := float64(viewportW)
	targetH := float64(viewportH)
	gridW := float64(s.front.Width()) * s.set.CellSize
	gridH := float64(s.front.Height()) * s.set.CellSize
	fit := targetW / gridW
	if hs := targetH / gridH; hs < fit {
		fit = hs
	}
	s.scale = AutoScale(fit)
	raw := s.scale.Raw()
	s.trans = Pt((targetW/raw-gridW)/2, (targetH/raw-gridH)/2)
}

// SetScaleFromDelta applies a wheel-zoom step and recomputes the
// translation so the world point under anchor stays fixed on screen. The
// resulting scale is manual and stays in effect across resizes.
func (s *Supervisor[S]) SetScaleFromDelta(anchor Point, delta float64) {
	orig := s.FromScreen(anchor)
	s.scale = ManualScale(s.scale.Raw() + s.set.ZoomStep*delta)
	s.trans = anchor.Div(s.scale.Raw()).Sub(orig)
}

// Pan shifts the translation by the given drag delta.
func (s *Supervisor[S]) Pan(dx, dy float64) {
	s.trans = s.trans.Add(Pt(dx, dy))
}

// ToScreen maps a world point to screen coordinates: translate, then scale.
func (s *Supervisor[S]) ToScreen(p Point) Point {
	return p.Add(s.trans).Mul(s.scale.Raw())
}

// FromScreen is the exact inverse of ToScreen.
func (s *Supervisor[S]) FromScreen(p Point) Point {
	return p.Div(s.scale.Raw()).Sub(s.trans)
}

// Draw paints every cell of the displayed generation through the injected
// canvas. Each fill is inset by CellInset on all sides so a grid-line gap
// remains visible between cells.
func (s *Supervisor[S]) Draw(c Canvas) {
	cell := s.set.CellSize
	inset := s.set.CellInset
	side := (cell - 2*inset) * s.scale.Raw()
	for y := 0; y < s.front.Height(); y++ {
		for x := 0; x < s.front.Width(); x++ {
			c.SetFill(s.rule.Style(s.front.Get(x, y)))
			pos := s.ToScreen(Pt(float64(x)*cell+inset, float64(y)*cell+inset))
			c.FillRect(pos.X, pos.Y, side, side)
		}
	}
}
