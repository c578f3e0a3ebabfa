package folio

// Vec2 is a 2D vector used for pointer positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Bottom returns the Y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Range is an ordered pair of endpoints. Start may be greater than End; a
// parallax output that drifts upward is written as Range{0, -100}.
type Range struct {
	Start, End float64
}

// EventType identifies a kind of platform or engine event.
type EventType uint8

const (
	EventScroll            EventType = iota // scroll position changed
	EventScrollEnd                          // a programmatic smooth scroll finished or was interrupted
	EventResize                             // viewport size changed
	EventPointerMove                        // pointer moved inside the viewport
	EventPointerDown                        // pointer button pressed
	EventPointerUp                          // pointer button released
	EventPointerEnter                       // pointer entered the viewport
	EventPointerLeave                       // pointer left the viewport
	EventActiveSection                      // the active section changed (engine bridge only)
	EventHoverChange                        // pointer hover over an interactive element changed (engine bridge only)
	EventMotionChange                       // reduced-motion preference changed (engine bridge only)
	EventPointerSuppressed                  // cursor suppression changed (engine bridge only)

	eventTypeCount
)

var eventTypeNames = [...]string{
	EventScroll:            "scroll",
	EventScrollEnd:         "scrollend",
	EventResize:            "resize",
	EventPointerMove:       "pointermove",
	EventPointerDown:       "pointerdown",
	EventPointerUp:         "pointerup",
	EventPointerEnter:      "pointerenter",
	EventPointerLeave:      "pointerleave",
	EventActiveSection:     "activesection",
	EventHoverChange:       "hoverchange",
	EventMotionChange:      "motionchange",
	EventPointerSuppressed: "pointersuppressed",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Event is delivered to window listeners. Only the fields relevant to Type
// are set.
type Event struct {
	Type EventType
	// X and Y are viewport coordinates for pointer events.
	X, Y   float64
	Button MouseButton
	// ScrollY is the scroll position after a scroll or scroll-end event.
	ScrollY float64
	// Interrupted is set on EventScrollEnd when user input cancelled the
	// programmatic scroll before it settled.
	Interrupted bool
	// Width and Height are the viewport size for resize events.
	Width, Height float64
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
