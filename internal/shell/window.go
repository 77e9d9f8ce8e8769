// internal/shell/window.go
package shell

import (
	"fmt"

	"go-shape-canvas/internal/canvas"
	"go-shape-canvas/internal/config"
	"go-shape-canvas/internal/event"
	"go-shape-canvas/internal/state"
)

// Handler is the set of window callbacks a toolkit drives.
type Handler interface {
	OnResize(width, height int) error
	OnClick(button event.Button, x, y float64) bool
	OnClose()
}

// Window owns one surface and the instance configuration it draws with.
// All methods must be called from the toolkit's event loop.
type Window struct {
	inst    config.Instance
	style   canvas.Style
	surface canvas.Surface
	phase   *state.StateMachine
	events  *event.Dispatcher
	dirty   bool
	err     error
}

var _ Handler = (*Window)(nil)

// NewWindow returns an uninitialized window. The surface is allocated on the
// first resize.
func NewWindow(inst config.Instance) *Window {
	w := &Window{
		inst:   inst,
		style:  canvas.DefaultStyle(),
		phase:  state.NewStateMachine(),
		events: event.NewDispatcher(),
	}
	w.events.Subscribe(event.Resize, event.ListenerFunc(w.handleResize))
	w.events.Subscribe(event.Click, event.ListenerFunc(w.handleClick))
	w.events.Subscribe(event.Close, event.ListenerFunc(w.handleClose))
	return w
}

func (w *Window) Instance() config.Instance { return w.inst }

func (w *Window) Phase() state.Phase { return w.phase.Current() }

// Surface exposes the backing surface for painting to the screen.
func (w *Window) Surface() *canvas.Surface { return &w.surface }

// NeedsRepaint reports whether the surface changed since the last MarkPainted.
func (w *Window) NeedsRepaint() bool { return w.dirty }

func (w *Window) MarkPainted() { w.dirty = false }

// Err returns the first resize error seen through Dispatch.
func (w *Window) Err() error { return w.err }

// Dispatch routes a toolkit event to the matching callback and reports
// whether it was handled.
func (w *Window) Dispatch(e event.Event) bool {
	return w.events.Dispatch(e)
}

// OnResize reallocates the surface at the new size and clears it. Anything
// drawn before is lost.
func (w *Window) OnResize(width, height int) error {
	if !w.phase.CanEnter(state.Ready) {
		return nil
	}
	if err := w.surface.Allocate(width, height); err != nil {
		w.dirty = true
		return fmt.Errorf("%s: resize: %w", w.inst.AppID, err)
	}
	w.surface.Clear()
	w.dirty = true
	return w.phase.SetState(state.Ready)
}

// OnClick clears the surface and draws the instance's shape centered on
// (x, y). Only the primary button draws; every other press, and any press
// before the surface exists, is left unhandled.
func (w *Window) OnClick(button event.Button, x, y float64) bool {
	if !w.surface.Allocated() {
		return false
	}
	if button != event.ButtonPrimary {
		return false
	}
	w.surface.Clear()
	w.drawShape(x, y)
	w.dirty = true
	return true
}

// OnClose releases the surface. Later events are ignored.
func (w *Window) OnClose() {
	if w.phase.Current() == state.Terminated {
		return
	}
	w.surface.Release()
	_ = w.phase.SetState(state.Terminated)
}

func (w *Window) drawShape(x, y float64) {
	switch w.inst.Mode {
	case config.ShapeRectangle:
		w.surface.DrawRectangle(x, y, config.RectWidth, config.RectHeight, w.style)
	case config.ShapeCircle:
		w.surface.DrawCircle(x, y, config.CircleRadius, w.style)
	}
}

func (w *Window) handleResize(e event.Event) bool {
	data, ok := e.Data.(event.ResizeData)
	if !ok {
		return false
	}
	if err := w.OnResize(data.Width, data.Height); err != nil {
		if w.err == nil {
			w.err = err
		}
		return false
	}
	return true
}

func (w *Window) handleClick(e event.Event) bool {
	data, ok := e.Data.(event.ClickData)
	if !ok {
		return false
	}
	return w.OnClick(data.Button, data.X, data.Y)
}

func (w *Window) handleClose(event.Event) bool {
	w.OnClose()
	return true
}
