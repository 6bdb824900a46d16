//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"squarevolution/internal/render"
	"squarevolution/internal/ui"
)

// Game adapts a Sandbox to the ebiten.Game interface.
type Game struct {
	sb      *Sandbox
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay

	width int
}

// New constructs a Game for the provided sandbox.
func New(sb *Sandbox) *Game {
	win := sb.Camera().Window()
	return &Game{
		sb:      sb,
		painter: render.NewPainter(),
		hud:     ui.NewHUD(sb),
		overlay: ui.NewOverlay(),
		width:   int(win.X),
	}
}

// Update polls input and advances the grid.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	mx, my := ebiten.CursorPosition()
	g.sb.MoveCursor(mx, my)

	onPanel := false
	if g.sb.ShowHUD() {
		onPanel = g.hud.Update(g.width)
	}
	if !onPanel && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.sb.PressPrimary(mx, my)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.sb.PressSecondary(mx, my)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		g.sb.ReleaseSecondary()
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.sb.Wheel(dy, ebiten.IsKeyPressed(ebiten.KeyShift))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sb.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sb.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.sb.ToggleHUD()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.sb.ToggleOverlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sb.StepOnce()
	}
	g.sb.Frame(ebiten.IsKeyPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyEnter))
	return nil
}

// Draw renders the visible cells and the optional panels.
func (g *Game) Draw(screen *ebiten.Image) {
	cam := g.sb.Camera()
	g.painter.Draw(screen, cam, g.sb.Grid())
	g.painter.DrawCursor(screen, cam, g.sb.Cursor())
	if g.sb.ShowOverlay() {
		g.overlay.Draw(screen, cam, g.sb.Grid(), g.sb.Cursor())
	}
	if g.sb.ShowHUD() {
		g.hud.Draw(screen)
	}
}

// Layout follows the window so resizing reveals more of the lattice.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width = outsideWidth
	g.sb.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
