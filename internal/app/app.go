//go:build ebiten

package app

import (
	"image/color"
	"time"

	"pan-ca/internal/core"
	"pan-ca/internal/render"
	"pan-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// wheelDelta converts one ebiten wheel notch into the delta-y units the
// viewport zoom step was calibrated for.
const wheelDelta = 120.0

var background = color.RGBA{R: 40, G: 40, B: 40, A: 255}

// Game adapts a core machine to the ebiten.Game interface, translating
// pointer, wheel and keyboard events into machine operations.
type Game struct {
	machine core.Machine
	set     core.Settings
	clock   *core.FixedStep
	overlay *ui.Overlay

	seed    int64
	autoRun bool

	pressed        bool
	pressX, pressY int

	lastW, lastH int
}

// New constructs a Game for the provided machine.
func New(machine core.Machine, set core.Settings, seed int64) *Game {
	return &Game{
		machine: machine,
		set:     set,
		clock:   core.NewFixedStep(set.TPS),
		overlay: ui.NewOverlay(),
		seed:    seed,
	}
}

// Update handles per-frame input and advances the machine when auto-run is
// enabled.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.autoRun = !g.autoRun
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.machine.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.machine.ResetZoom(g.lastW, g.lastH)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.machine.Randomize(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.machine.Randomize(time.Now().UnixNano())
	}

	g.handlePointer()
	g.handleWheel()

	if g.overlay != nil {
		g.overlay.Update()
	}

	if g.autoRun && g.clock.ShouldStep() {
		g.machine.Step()
	}
	return nil
}

// handlePointer turns a press/release pair into either a cell toggle or a
// pan, depending on how far the cursor traveled.
func (g *Game) handlePointer() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressX, g.pressY = ebiten.CursorPosition()
		g.pressed = true
		return
	}
	if !g.pressed || !inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return
	}
	g.pressed = false
	cx, cy := ebiten.CursorPosition()
	dx, dy := cx-g.pressX, cy-g.pressY
	if abs(dx) <= g.set.MinDragX && abs(dy) <= g.set.MinDragY {
		world := g.machine.FromScreen(core.Pt(float64(cx), float64(cy)))
		g.machine.Toggle(int(world.X/g.set.CellSize), int(world.Y/g.set.CellSize))
		return
	}
	g.machine.Pan(float64(dx), float64(dy))
}

// handleWheel zooms around the cursor position.
func (g *Game) handleWheel() {
	_, wy := ebiten.Wheel()
	if wy == 0 {
		return
	}
	cx, cy := ebiten.CursorPosition()
	g.machine.SetScaleFromDelta(core.Pt(float64(cx), float64(cy)), wy*wheelDelta)
}

// Draw renders the current generation and the status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.machine.Draw(render.NewTarget(screen))
	if g.overlay != nil {
		scale := g.machine.Scale()
		g.overlay.Draw(screen, ui.Status{
			Name:       g.machine.Name(),
			Generation: g.machine.Generation(),
			Scale:      scale.Raw(),
			ScaleMode:  scale.Mode.String(),
			AutoRun:    g.autoRun,
		})
	}
}

// Layout tracks the window size and re-fits the viewport on resize while
// the scale is in auto mode. A manual zoom is never silently overwritten.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.lastW || outsideHeight != g.lastH {
		g.lastW, g.lastH = outsideWidth, outsideHeight
		if g.machine.Scale().Mode == core.ScaleAuto {
			g.machine.ResetZoom(outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
