package folio

// DefaultTouchBreakpoint is the viewport width, in pixels, at or below which
// the device is treated as touch-primary and the custom cursor is disabled.
const DefaultTouchBreakpoint = 768.0

// --- Hit shapes ---

// HitShape is a region used to decide whether the pointer is over an
// interactive element.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area. Points must define a convex
// polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Interactive registry ---

// Interactive is an element that makes the cursor switch to its hover state:
// a link, a button, or anything explicitly tagged.
type Interactive struct {
	Name  string
	Shape HitShape
	// Fixed elements (the navigation bar) are positioned in viewport
	// coordinates. Others are in document coordinates and scroll with the page.
	Fixed bool

	id uint32
}

// InteractiveHandle deregisters an interactive element.
type InteractiveHandle struct {
	id  uint32
	reg *InteractiveRegistry
}

// Remove deregisters the element. Removing twice is harmless.
func (h InteractiveHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.id)
}

// InteractiveRegistry is the exact membership set of interactive elements.
// Components register what they mount and remove it when they unmount.
type InteractiveRegistry struct {
	elems    []*Interactive
	nextID   uint32
	version  uint64
	onChange handlerList[func()]
}

// Register adds an element. Later registrations sit on top for hit testing.
func (r *InteractiveRegistry) Register(name string, shape HitShape, fixed bool) InteractiveHandle {
	r.nextID++
	el := &Interactive{Name: name, Shape: shape, Fixed: fixed, id: r.nextID}
	r.elems = append(r.elems, el)
	r.bump()
	return InteractiveHandle{id: el.id, reg: r}
}

func (r *InteractiveRegistry) remove(id uint32) {
	for i, el := range r.elems {
		if el.id == id {
			r.elems = append(r.elems[:i], r.elems[i+1:]...)
			r.bump()
			return
		}
	}
}

func (r *InteractiveRegistry) bump() {
	r.version++
	for _, h := range r.onChange.entries {
		h.fn()
	}
}

// OnChange registers fn to run whenever membership changes.
func (r *InteractiveRegistry) OnChange(fn func()) ListenerHandle {
	return r.onChange.add(fn)
}

// Len returns the number of registered elements.
func (r *InteractiveRegistry) Len() int {
	return len(r.elems)
}

// Version increases on every membership change.
func (r *InteractiveRegistry) Version() uint64 {
	return r.version
}

// HitTest returns the topmost element under the viewport point (vx, vy)
// given the current scroll position, or nil.
func (r *InteractiveRegistry) HitTest(vx, vy, scrollY float64) *Interactive {
	for i := len(r.elems) - 1; i >= 0; i-- {
		el := r.elems[i]
		if el.Shape == nil {
			continue
		}
		y := vy
		if !el.Fixed {
			y += scrollY
		}
		if el.Shape.Contains(vx, y) {
			return el
		}
	}
	return nil
}

// --- Pointer engine ---

// PointerState is the cursor model. IsSuppressed forces the cursor visual to
// render nothing.
type PointerState struct {
	X, Y                  float64
	IsDown                bool
	IsHoveringInteractive bool
	IsSuppressed          bool
}

// PointerEngine tracks pointer position, press state and hover over
// interactive elements. It owns PointerState exclusively.
//
// On a touch-primary viewport Mount attaches nothing and the state stays
// suppressed.
type PointerEngine struct {
	// TouchBreakpoint is the widest viewport treated as touch-primary.
	TouchBreakpoint float64

	win      *Window
	registry *InteractiveRegistry
	state    *Store[PointerState]
	scope    Scope
	mounted  bool
	touch    bool
	hovered  *Interactive
}

// NewPointerEngine creates an engine over win and registry.
func NewPointerEngine(win *Window, registry *InteractiveRegistry) *PointerEngine {
	return &PointerEngine{
		TouchBreakpoint: DefaultTouchBreakpoint,
		win:             win,
		registry:        registry,
		state:           NewStore(PointerState{IsSuppressed: true}),
	}
}

// State returns the read-only pointer state.
func (p *PointerEngine) State() ReadOnly[PointerState] {
	return p.state
}

// Hovered returns the interactive element under the pointer, or nil.
func (p *PointerEngine) Hovered() *Interactive {
	return p.hovered
}

// IsTouchPrimary reports whether width counts as a touch-primary viewport.
func (p *PointerEngine) IsTouchPrimary(width float64) bool {
	return width <= p.TouchBreakpoint
}

// TouchMode reports whether the engine was mounted in touch mode.
func (p *PointerEngine) TouchMode() bool {
	return p.touch
}

// Mounted reports whether the engine is mounted.
func (p *PointerEngine) Mounted() bool {
	return p.mounted
}

// Mount attaches pointer listeners, unless the viewport is touch-primary.
// Mounting twice does not duplicate handlers.
func (p *PointerEngine) Mount() {
	if p.mounted {
		return
	}
	p.mounted = true
	p.touch = p.IsTouchPrimary(p.win.Width())
	if p.touch {
		p.hovered = nil
		p.state.set(PointerState{IsSuppressed: true})
		return
	}

	x, y, inside := p.win.Pointer()
	st := p.state.Get()
	st.X, st.Y = x, y
	st.IsDown = false
	st.IsSuppressed = !inside
	p.state.set(st)

	p.scope.Add(p.win.AddListener(EventPointerMove, p.onMove))
	p.scope.Add(p.win.AddListener(EventPointerDown, p.onDown))
	p.scope.Add(p.win.AddListener(EventPointerUp, p.onUp))
	p.scope.Add(p.win.AddListener(EventPointerLeave, p.onLeave))
	p.scope.Add(p.win.AddListener(EventPointerEnter, p.onEnter))
	p.scope.Add(p.registry.OnChange(p.Rescan))
	p.Rescan()
}

// Unmount detaches every listener the engine attached.
func (p *PointerEngine) Unmount() {
	if !p.mounted {
		return
	}
	p.mounted = false
	p.scope.Close()
	p.hovered = nil
	st := p.state.Get()
	st.IsDown = false
	st.IsHoveringInteractive = false
	p.state.set(st)
}

func (p *PointerEngine) onMove(e Event) {
	st := p.state.Get()
	st.X, st.Y = e.X, e.Y
	st.IsHoveringInteractive = p.hitTest(e.X, e.Y)
	p.state.set(st)
}

func (p *PointerEngine) onDown(e Event) {
	st := p.state.Get()
	st.X, st.Y = e.X, e.Y
	st.IsDown = true
	p.state.set(st)
}

func (p *PointerEngine) onUp(e Event) {
	st := p.state.Get()
	st.X, st.Y = e.X, e.Y
	st.IsDown = false
	p.state.set(st)
}

func (p *PointerEngine) onLeave(Event) {
	st := p.state.Get()
	st.IsSuppressed = true
	p.state.set(st)
}

func (p *PointerEngine) onEnter(e Event) {
	st := p.state.Get()
	st.X, st.Y = e.X, e.Y
	st.IsSuppressed = false
	st.IsHoveringInteractive = p.hitTest(e.X, e.Y)
	p.state.set(st)
}

// Rescan recomputes hover at the last pointer position. It runs after the
// interactive set changes and after the page scrolls under a still pointer.
func (p *PointerEngine) Rescan() {
	if !p.mounted || p.touch {
		return
	}
	st := p.state.Get()
	st.IsHoveringInteractive = p.hitTest(st.X, st.Y)
	p.state.set(st)
}

func (p *PointerEngine) hitTest(x, y float64) bool {
	p.hovered = p.registry.HitTest(x, y, p.win.ScrollY())
	return p.hovered != nil
}
