// internal/config/config.go
package config

import (
	"image/color"
	"os"
	"strings"
)

const (
	CanvasWidth  = 1000
	CanvasHeight = 700
	FrameBorder  = 8

	RectWidth    = 420.0
	RectHeight   = 280.0
	CircleRadius = 180.0
	OutlineWidth = 1.0

	// InstanceEnv selects which instance a process runs. Unset means rectangle.
	InstanceEnv = "SHAPES_INSTANCE"
)

var (
	CanvasColor = color.RGBA{255, 255, 255, 255}
	ShapeColor  = color.RGBA{153, 153, 153, 255} // 0.6 gray
	FrameColor  = color.RGBA{214, 214, 214, 255}
)

// ShapeMode is the shape an instance draws on click.
type ShapeMode int

const (
	ShapeRectangle ShapeMode = iota
	ShapeCircle
)

func (m ShapeMode) String() string {
	switch m {
	case ShapeRectangle:
		return "rectangle"
	case ShapeCircle:
		return "circle"
	}
	return "unknown"
}

// Instance is the per-process window configuration. It is fixed before the
// event loop starts.
type Instance struct {
	Mode  ShapeMode
	AppID string
	Title string
}

var (
	RectangleInstance = Instance{Mode: ShapeRectangle, AppID: "rectangle.example", Title: "Rectangle Window"}
	CircleInstance    = Instance{Mode: ShapeCircle, AppID: "circle.example", Title: "Circle Window"}
)

// ParseInstance maps an instance name to its configuration. The second
// result is false for names it does not know; the rectangle instance is
// returned in that case.
func ParseInstance(name string) (Instance, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ShapeRectangle.String():
		return RectangleInstance, true
	case ShapeCircle.String():
		return CircleInstance, true
	}
	return RectangleInstance, false
}

// InstanceFromEnv reads InstanceEnv. See ParseInstance.
func InstanceFromEnv() (Instance, bool) {
	return ParseInstance(os.Getenv(InstanceEnv))
}

// IsSibling reports whether this process was started as the second instance.
func IsSibling() bool {
	return os.Getenv(InstanceEnv) != ""
}
