// internal/canvas/style.go
package canvas

import (
	"image/color"

	"go-shape-canvas/internal/config"
)

// Style holds the colors and outline width used to paint a shape.
type Style struct {
	Fill         color.RGBA
	Outline      color.RGBA
	OutlineWidth float32
}

// DefaultStyle is the gray fill with a 1px gray outline every shape uses.
func DefaultStyle() Style {
	return Style{
		Fill:         config.ShapeColor,
		Outline:      config.ShapeColor,
		OutlineWidth: config.OutlineWidth,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
