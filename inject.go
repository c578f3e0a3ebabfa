package folio

type syntheticKind uint8

const (
	synthMove syntheticKind = iota
	synthPress
	synthRelease
	synthLeave
	synthEnter
	synthWheel
	synthResize
)

// syntheticEvent represents a single injected input event. Coordinates are
// viewport coordinates, identical to real input.
type syntheticEvent struct {
	kind          syntheticKind
	x, y          float64
	dy            float64
	width, height float64
}

// InjectMove queues a pointer move to (x, y). Each queued event is consumed
// on its own frame.
func (e *Engine) InjectMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthMove, x: x, y: y})
}

// InjectPress queues a left-button press at (x, y).
func (e *Engine) InjectPress(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthPress, x: x, y: y})
}

// InjectRelease queues a left-button release at (x, y).
func (e *Engine) InjectRelease(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthRelease, x: x, y: y})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (e *Engine) InjectClick(x, y float64) {
	e.InjectPress(x, y)
	e.InjectRelease(x, y)
}

// InjectLeave queues the pointer leaving the viewport.
func (e *Engine) InjectLeave() {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthLeave})
}

// InjectEnter queues the pointer entering the viewport at (x, y).
func (e *Engine) InjectEnter(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthEnter, x: x, y: y})
}

// InjectWheel queues user scroll input of dy pixels.
func (e *Engine) InjectWheel(dy float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthWheel, dy: dy})
}

// InjectResize queues a viewport resize.
func (e *Engine) InjectResize(width, height float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthResize, width: width, height: height})
}

// Pending reports how many injected events are still queued.
func (e *Engine) Pending() int {
	return len(e.injectQueue)
}

// processInjectedInput pops one event from the inject queue and applies it
// to the window. Returns true if an event was consumed (real input should be
// skipped this frame).
func (e *Engine) processInjectedInput() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	w := e.win
	switch evt.kind {
	case synthMove:
		w.PointerMove(evt.x, evt.y)
	case synthPress:
		w.PointerMove(evt.x, evt.y)
		w.PointerDown(evt.x, evt.y, MouseButtonLeft)
	case synthRelease:
		w.PointerMove(evt.x, evt.y)
		w.PointerUp(evt.x, evt.y, MouseButtonLeft)
	case synthLeave:
		w.PointerLeave()
	case synthEnter:
		w.PointerEnter(evt.x, evt.y)
	case synthWheel:
		w.ScrollBy(evt.dy)
	case synthResize:
		w.Resize(evt.width, evt.height)
	}
	return true
}
