// internal/canvas/surface.go
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"go-shape-canvas/internal/config"

	"golang.org/x/image/vector"
)

// ErrInvalidSize is returned by Allocate for a non-positive width or height.
var ErrInvalidSize = errors.New("canvas: invalid surface size")

// Surface is an in-memory pixel buffer holding a window's drawable contents.
// The zero value is an unallocated surface.
type Surface struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

// NewSurface allocates a surface of the given size and clears it.
func NewSurface(width, height int) (*Surface, error) {
	s := &Surface{}
	if err := s.Allocate(width, height); err != nil {
		return nil, err
	}
	s.Clear()
	return s, nil
}

// Allocate replaces the buffer with a blank one of the given size. The
// previous buffer is released first. The new buffer is not cleared.
func (s *Surface) Allocate(width, height int) error {
	s.Release()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("allocate %dx%d: %w", width, height, ErrInvalidSize)
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.ras = vector.NewRasterizer(width, height)
	return nil
}

// Release drops the buffer. The surface is unallocated afterwards.
func (s *Surface) Release() {
	s.img = nil
	s.ras = nil
}

func (s *Surface) Allocated() bool {
	return s.img != nil
}

// Clear fills the whole buffer with the canvas color.
func (s *Surface) Clear() {
	if s.img == nil {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(config.CanvasColor), image.Point{}, draw.Src)
}

func (s *Surface) Width() int {
	if s.img == nil {
		return 0
	}
	return s.img.Bounds().Dx()
}

func (s *Surface) Height() int {
	if s.img == nil {
		return 0
	}
	return s.img.Bounds().Dy()
}

// Image returns the backing buffer, or nil when unallocated. Callers must not
// keep it across Allocate or Release.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// DrawRectangle paints a w x h rectangle centered on (cx, cy): outline first,
// then the fill over it.
func (s *Surface) DrawRectangle(cx, cy, w, h float64, st Style) {
	if s.img == nil {
		return
	}
	x0, y0 := float32(cx-w/2), float32(cy-h/2)
	x1, y1 := float32(cx+w/2), float32(cy+h/2)
	if st.OutlineWidth > 0 {
		d := st.OutlineWidth / 2
		s.begin()
		rectPath(s.ras, x0-d, y0-d, x1+d, y1+d, false)
		rectPath(s.ras, x0+d, y0+d, x1-d, y1-d, true)
		s.paint(st.Outline)
	}
	s.begin()
	rectPath(s.ras, x0, y0, x1, y1, false)
	s.paint(st.Fill)
}

// DrawCircle paints a circle of radius r centered on (cx, cy): outline first,
// then the fill over it.
func (s *Surface) DrawCircle(cx, cy, r float64, st Style) {
	if s.img == nil {
		return
	}
	x, y, rr := float32(cx), float32(cy), float32(r)
	if st.OutlineWidth > 0 {
		d := st.OutlineWidth / 2
		s.begin()
		circlePath(s.ras, x, y, rr+d, false)
		if rr > d {
			circlePath(s.ras, x, y, rr-d, true)
		}
		s.paint(st.Outline)
	}
	s.begin()
	circlePath(s.ras, x, y, rr, false)
	s.paint(st.Fill)
}

func (s *Surface) begin() {
	b := s.img.Bounds()
	s.ras.Reset(b.Dx(), b.Dy())
	s.ras.DrawOp = draw.Over
}

func (s *Surface) paint(c color.RGBA) {
	s.ras.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{})
}
