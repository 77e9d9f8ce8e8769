// internal/event/types.go
package event

const (
	Resize EventType = "resize"
	Click  EventType = "click"
	Close  EventType = "close"
)

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonMiddle
	ButtonSecondary
)

// Event is one window event with its payload.
type Event struct {
	Type EventType
	Data interface{} // ResizeData, ClickData or nil
}

type ResizeData struct {
	Width, Height int
}

// ClickData carries a press in canvas-local pixel coordinates.
type ClickData struct {
	Button Button
	X, Y   float64
}
