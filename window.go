package folio

import (
	"sort"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ReducedMotionQuery is the media query for the platform's reduced-motion
// accessibility setting.
const ReducedMotionQuery = "(prefers-reduced-motion: reduce)"

const (
	defaultScrollDuration = 0.6 // seconds
)

// scrollAnim holds an active smooth-scroll tween.
type scrollAnim struct {
	tween  *gween.Tween
	target float64
}

// Window is the platform the engine runs against: the viewport, the
// document scroll position, the input event stream, media signals, and the
// body class list. Hosts feed it raw input (see EbitenHost); components
// subscribe to it.
//
// Window is single-threaded. All listeners run synchronously inside the call
// that produced the event.
type Window struct {
	width, height float64
	scrollY       float64
	contentHeight float64
	clock         float64

	// ScrollDuration is the smooth-scroll animation length in seconds.
	ScrollDuration float32
	// ScrollEase is the easing function for smooth scrolling.
	ScrollEase ease.TweenFunc

	listeners [eventTypeCount]handlerList[func(Event)]

	media          map[string]*MediaQueryList
	mediaDisabled  bool
	body           ClassList
	smooth         *scrollAnim
	pointerX       float64
	pointerY       float64
	pointerInside  bool
	scrollCommands int
}

// NewWindow creates a window with the given viewport size in pixels.
func NewWindow(width, height float64) *Window {
	return &Window{
		width:          width,
		height:         height,
		ScrollDuration: defaultScrollDuration,
		ScrollEase:     ease.OutCubic,
		media:          make(map[string]*MediaQueryList),
		pointerInside:  true,
	}
}

// --- Listeners ---

// AddListener registers fn for events of the given type.
func (w *Window) AddListener(t EventType, fn func(Event)) ListenerHandle {
	if t >= eventTypeCount || fn == nil {
		return ListenerHandle{}
	}
	return w.listeners[t].add(fn)
}

// ListenerCount reports how many listeners are attached for t.
func (w *Window) ListenerCount(t EventType) int {
	if t >= eventTypeCount {
		return 0
	}
	return w.listeners[t].len()
}

// TotalListeners reports the number of listeners attached across all event
// types and media query lists.
func (w *Window) TotalListeners() int {
	n := 0
	for i := range w.listeners {
		n += w.listeners[i].len()
	}
	for _, mq := range w.media {
		n += mq.listeners.len()
	}
	return n
}

// Dispatch delivers e to every listener registered for e.Type, in
// registration order.
func (w *Window) Dispatch(e Event) {
	if e.Type >= eventTypeCount {
		return
	}
	for _, h := range w.listeners[e.Type].entries {
		h.fn(e)
	}
}

// --- Geometry ---

// Size returns the viewport width and height.
func (w *Window) Size() (float64, float64) {
	return w.width, w.height
}

// Width returns the viewport width.
func (w *Window) Width() float64 { return w.width }

// Height returns the viewport height.
func (w *Window) Height() float64 { return w.height }

// Clock returns the time in seconds accumulated by Update.
func (w *Window) Clock() float64 { return w.clock }

// ScrollY returns the current vertical scroll position.
func (w *Window) ScrollY() float64 { return w.scrollY }

// ContentHeight returns the height of the scrollable document.
func (w *Window) ContentHeight() float64 { return w.contentHeight }

// SetContentHeight sets the scrollable document height and re-clamps the
// scroll position.
func (w *Window) SetContentHeight(h float64) {
	w.contentHeight = h
	if clamped := clamp(w.scrollY, 0, w.MaxScroll()); clamped != w.scrollY {
		w.setScroll(clamped)
	}
}

// MaxScroll returns the largest valid scroll position.
func (w *Window) MaxScroll() float64 {
	m := w.contentHeight - w.height
	if m < 0 {
		return 0
	}
	return m
}

// Resize changes the viewport size and fires EventResize.
func (w *Window) Resize(width, height float64) {
	if width == w.width && height == w.height {
		return
	}
	w.width, w.height = width, height
	w.Dispatch(Event{Type: EventResize, Width: width, Height: height})
	if clamped := clamp(w.scrollY, 0, w.MaxScroll()); clamped != w.scrollY {
		w.setScroll(clamped)
	}
}

// --- Scrolling ---

// ScrollTo is the single programmatic scroll command. With smooth set the
// position is animated over ScrollDuration; otherwise it jumps. A new
// command replaces any animation already in flight.
func (w *Window) ScrollTo(y float64, smooth bool) {
	w.scrollCommands++
	y = clamp(y, 0, w.MaxScroll())
	w.smooth = nil
	if !smooth || w.ScrollDuration <= 0 || y == w.scrollY {
		w.setScroll(y)
		w.Dispatch(Event{Type: EventScrollEnd, ScrollY: w.scrollY})
		return
	}
	fn := w.ScrollEase
	if fn == nil {
		fn = ease.OutCubic
	}
	w.smooth = &scrollAnim{
		tween:  gween.New(float32(w.scrollY), float32(y), w.ScrollDuration, fn),
		target: y,
	}
}

// ScrollBy applies user scroll input (wheel, touch drag, keyboard). It
// interrupts any programmatic smooth scroll in flight.
func (w *Window) ScrollBy(dy float64) {
	if w.smooth != nil {
		w.smooth = nil
		w.Dispatch(Event{Type: EventScrollEnd, ScrollY: w.scrollY, Interrupted: true})
	}
	w.setScroll(clamp(w.scrollY+dy, 0, w.MaxScroll()))
}

// Scrolling reports whether a programmatic smooth scroll is in flight.
func (w *Window) Scrolling() bool {
	return w.smooth != nil
}

// ScrollTarget returns the destination of the in-flight smooth scroll.
func (w *Window) ScrollTarget() (float64, bool) {
	if w.smooth == nil {
		return 0, false
	}
	return w.smooth.target, true
}

// ScrollCommands reports how many programmatic scroll commands were issued.
func (w *Window) ScrollCommands() int {
	return w.scrollCommands
}

func (w *Window) setScroll(y float64) {
	if y == w.scrollY {
		return
	}
	w.scrollY = y
	w.Dispatch(Event{Type: EventScroll, ScrollY: y})
}

// Update advances the clock and any smooth-scroll animation by dt seconds.
func (w *Window) Update(dt float32) {
	w.clock += float64(dt)
	if w.smooth == nil {
		return
	}
	val, done := w.smooth.tween.Update(dt)
	if done {
		target := w.smooth.target
		w.smooth = nil
		w.setScroll(target)
		w.Dispatch(Event{Type: EventScrollEnd, ScrollY: w.scrollY})
		return
	}
	w.setScroll(clamp(float64(val), 0, w.MaxScroll()))
}

// --- Pointer input ---

// PointerMove reports a pointer position in viewport coordinates.
func (w *Window) PointerMove(x, y float64) {
	if x == w.pointerX && y == w.pointerY {
		return
	}
	w.pointerX, w.pointerY = x, y
	w.Dispatch(Event{Type: EventPointerMove, X: x, Y: y})
}

// PointerDown reports a button press at (x, y).
func (w *Window) PointerDown(x, y float64, button MouseButton) {
	w.pointerX, w.pointerY = x, y
	w.Dispatch(Event{Type: EventPointerDown, X: x, Y: y, Button: button})
}

// PointerUp reports a button release at (x, y).
func (w *Window) PointerUp(x, y float64, button MouseButton) {
	w.pointerX, w.pointerY = x, y
	w.Dispatch(Event{Type: EventPointerUp, X: x, Y: y, Button: button})
}

// PointerLeave reports that the pointer left the viewport.
func (w *Window) PointerLeave() {
	if !w.pointerInside {
		return
	}
	w.pointerInside = false
	w.Dispatch(Event{Type: EventPointerLeave, X: w.pointerX, Y: w.pointerY})
}

// PointerEnter reports that the pointer re-entered the viewport at (x, y).
func (w *Window) PointerEnter(x, y float64) {
	if w.pointerInside {
		return
	}
	w.pointerInside = true
	w.pointerX, w.pointerY = x, y
	w.Dispatch(Event{Type: EventPointerEnter, X: x, Y: y})
}

// Pointer returns the last known pointer position and whether it is inside
// the viewport.
func (w *Window) Pointer() (x, y float64, inside bool) {
	return w.pointerX, w.pointerY, w.pointerInside
}

// --- Media queries ---

// MediaQueryList is a live view of a media query, mirroring the browser's
// matchMedia result.
type MediaQueryList struct {
	Media     string
	matches   bool
	listeners handlerList[func(bool)]
}

// Matches reports whether the query currently matches.
func (m *MediaQueryList) Matches() bool {
	return m.matches
}

// AddChangeListener registers fn to be called when Matches changes.
func (m *MediaQueryList) AddChangeListener(fn func(matches bool)) ListenerHandle {
	return m.listeners.add(fn)
}

// ListenerCount reports how many change listeners are attached.
func (m *MediaQueryList) ListenerCount() int {
	return m.listeners.len()
}

// MatchMedia returns the live list for query. ok is false when the platform
// has no media query support (see DisableMedia).
func (w *Window) MatchMedia(query string) (mq *MediaQueryList, ok bool) {
	if w.mediaDisabled {
		return nil, false
	}
	mq = w.media[query]
	if mq == nil {
		mq = &MediaQueryList{Media: query}
		w.media[query] = mq
	}
	return mq, true
}

// SetMediaMatches is the platform signal: it updates the query result and
// notifies change listeners if the value changed.
func (w *Window) SetMediaMatches(query string, matches bool) {
	if w.mediaDisabled {
		return
	}
	mq, _ := w.MatchMedia(query)
	if mq.matches == matches {
		return
	}
	mq.matches = matches
	for _, h := range mq.listeners.entries {
		h.fn(matches)
	}
}

// DisableMedia simulates a platform without media query support.
func (w *Window) DisableMedia() {
	w.mediaDisabled = true
}

// Body returns the document body's class list.
func (w *Window) Body() *ClassList {
	return &w.body
}

// --- Class list ---

// ClassList is a set of class names applied to the document body. Downstream
// styling reads it; the engine toggles markers such as "reduced-motion".
type ClassList struct {
	names map[string]struct{}
}

// Add inserts name.
func (c *ClassList) Add(name string) {
	if c.names == nil {
		c.names = make(map[string]struct{})
	}
	c.names[name] = struct{}{}
}

// Remove deletes name.
func (c *ClassList) Remove(name string) {
	delete(c.names, name)
}

// Toggle adds name when on is true and removes it otherwise.
func (c *ClassList) Toggle(name string, on bool) {
	if on {
		c.Add(name)
	} else {
		c.Remove(name)
	}
}

// Contains reports whether name is present.
func (c *ClassList) Contains(name string) bool {
	_, ok := c.names[name]
	return ok
}

// String returns the class names sorted and space separated.
func (c *ClassList) String() string {
	names := make([]string, 0, len(c.names))
	for n := range c.names {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}
