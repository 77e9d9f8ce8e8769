// internal/app/game.go
package app

import (
	"fmt"
	"image"
	"log"

	"go-shape-canvas/internal/canvas"
	"go-shape-canvas/internal/config"
	"go-shape-canvas/internal/event"
	"go-shape-canvas/internal/shell"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var mouseButtons = []struct {
	mouse  ebiten.MouseButton
	button event.Button
}{
	{ebiten.MouseButtonLeft, event.ButtonPrimary},
	{ebiten.MouseButtonMiddle, event.ButtonMiddle},
	{ebiten.MouseButtonRight, event.ButtonSecondary},
}

// Game drives one shell.Window from the ebiten loop.
type Game struct {
	win    *shell.Window
	mirror *ebiten.Image

	outW, outH int
	resized    bool
}

func NewGame(inst config.Instance) *Game {
	return &Game{win: shell.NewWindow(inst)}
}

func (g *Game) Window() *shell.Window { return g.win }

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.win.Dispatch(event.Event{Type: event.Close})
		g.releaseMirror()
		return ebiten.Termination
	}
	if err := g.applyResize(); err != nil {
		return err
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.mouse) {
			x, y := ebiten.CursorPosition()
			g.click(b.button, x, y)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.win.NeedsRepaint() {
		g.upload(g.win.Surface())
		g.win.MarkPainted()
	}
	screen.Fill(config.FrameColor)
	if g.mirror == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(config.FrameBorder, config.FrameBorder)
	screen.DrawImage(g.mirror, op)

	b := g.mirror.Bounds()
	vector.StrokeRect(screen, config.FrameBorder-1, config.FrameBorder-1, float32(b.Dx()+2), float32(b.Dy()+2),
		1, canvas.DarkenColor(config.FrameColor), false)
}

// Layout keeps the logical screen at the window size and notes size changes;
// the resize is applied on the next Update. A zero size (minimized window) is
// not a resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return max(outsideWidth, 1), max(outsideHeight, 1)
	}
	if outsideWidth != g.outW || outsideHeight != g.outH {
		g.outW, g.outH = outsideWidth, outsideHeight
		g.resized = true
	}
	return outsideWidth, outsideHeight
}

func (g *Game) applyResize() error {
	if !g.resized {
		return nil
	}
	g.resized = false
	w, h := canvasSize(g.outW, g.outH)
	g.win.Dispatch(event.Event{Type: event.Resize, Data: event.ResizeData{Width: w, Height: h}})
	if err := g.win.Err(); err != nil {
		return fmt.Errorf("configure canvas: %w", err)
	}
	return nil
}

// click posts a press at window coordinates (x, y). Presses on the frame are
// not delivered.
func (g *Game) click(button event.Button, x, y int) bool {
	s := g.win.Surface()
	p, ok := toCanvas(x, y, s.Width(), s.Height())
	if !ok {
		return false
	}
	return g.win.Dispatch(event.Event{
		Type: event.Click,
		Data: event.ClickData{Button: button, X: float64(p.X), Y: float64(p.Y)},
	})
}

func (g *Game) upload(s *canvas.Surface) {
	if !s.Allocated() {
		g.releaseMirror()
		return
	}
	if g.mirror == nil || g.mirror.Bounds().Dx() != s.Width() || g.mirror.Bounds().Dy() != s.Height() {
		g.releaseMirror()
		g.mirror = ebiten.NewImage(s.Width(), s.Height())
	}
	g.mirror.WritePixels(s.Image().Pix)
}

func (g *Game) releaseMirror() {
	if g.mirror != nil {
		g.mirror.Deallocate()
		g.mirror = nil
	}
}

// canvasSize is the drawing area inside the frame of a window of the given size.
func canvasSize(outW, outH int) (int, int) {
	return outW - 2*config.FrameBorder, outH - 2*config.FrameBorder
}

// toCanvas maps window coordinates to canvas-local ones.
func toCanvas(x, y, w, h int) (image.Point, bool) {
	p := image.Pt(x-config.FrameBorder, y-config.FrameBorder)
	return p, p.In(image.Rect(0, 0, w, h))
}

// Run opens the window for inst and blocks until it is closed.
func Run(inst config.Instance) error {
	log.Printf("starting %s (%s, %s mode)", inst.AppID, inst.Title, inst.Mode)
	ebiten.SetWindowTitle(inst.Title)
	ebiten.SetWindowSize(config.CanvasWidth+2*config.FrameBorder, config.CanvasHeight+2*config.FrameBorder)
	ebiten.SetWindowSizeLimits(config.CanvasWidth+2*config.FrameBorder, config.CanvasHeight+2*config.FrameBorder, -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(NewGame(inst)); err != nil {
		return fmt.Errorf("%s: %w", inst.AppID, err)
	}
	log.Printf("%s closed", inst.AppID)
	return nil
}
