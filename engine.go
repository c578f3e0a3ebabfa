package folio

// EventStore is the interface for optional ECS integration. When set on an
// Engine, state changes are forwarded as InteractionEvents.
type EventStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries engine state changes for the ECS bridge.
type InteractionEvent struct {
	Type EventType
	// SectionID is set for EventActiveSection.
	SectionID string
	// X and Y are the pointer position for hover and suppression events.
	X, Y float64
	// Hovering is set for EventHoverChange.
	Hovering bool
	// Suppressed is set for EventPointerSuppressed.
	Suppressed bool
	// Reduced is set for EventMotionChange.
	Reduced bool
	// ScrollY is the scroll position when the event was emitted.
	ScrollY float64
}

// Engine wires the interaction components to a window and a document and
// advances them once per frame.
type Engine struct {
	cfg Config
	win *Window
	doc *Document

	sampler     *Sampler
	sections    SectionRegistry
	resolver    *Resolver
	scroll      *ScrollController
	motion      *MotionController
	pointer     *PointerEngine
	interactive InteractiveRegistry
	cursor      *CursorVisual
	nav         *Nav
	copy        *CopyFeedback
	layers      []*ParallaxLayer

	store   EventStore
	debug   bool
	scope   Scope
	mounted bool
	frames  int

	injectQueue []syntheticEvent
	testRunner  *TestRunner
}

// NewEngine creates an engine. Components are created but not mounted.
func NewEngine(win *Window, doc *Document, cfg Config) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{cfg: cfg, win: win, doc: doc}
	win.ScrollDuration = cfg.ScrollDuration

	e.sampler = NewSampler(win)
	e.resolver = NewResolver(&e.sections, cfg.ActivationLine)
	e.motion = NewMotionController(win)
	e.scroll = NewScrollController(win, doc, doc, e.resolver, e.motion.Reduced())
	e.scroll.Gap = cfg.ScrollGap
	e.pointer = NewPointerEngine(win, &e.interactive)
	e.pointer.TouchBreakpoint = cfg.TouchBreakpoint
	e.cursor = NewCursorVisual()
	e.nav = NewNav(nil, e.scroll, e.resolver, doc)
	e.copy = NewCopyFeedback(nil)
	return e
}

// --- Accessors ---

// Window returns the engine's window.
func (e *Engine) Window() *Window { return e.win }

// Document returns the engine's document.
func (e *Engine) Document() *Document { return e.doc }

// Config returns the effective configuration.
func (e *Engine) Config() Config { return e.cfg }

// Sampler returns the viewport sampler.
func (e *Engine) Sampler() *Sampler { return e.sampler }

// Sections returns the section registry.
func (e *Engine) Sections() *SectionRegistry { return &e.sections }

// Resolver returns the active-section resolver.
func (e *Engine) Resolver() *Resolver { return e.resolver }

// ActiveSection returns the read-only active-section state.
func (e *Engine) ActiveSection() ReadOnly[string] { return e.resolver.Active() }

// Scroll returns the smooth scroll controller.
func (e *Engine) Scroll() *ScrollController { return e.scroll }

// Motion returns the motion preference controller.
func (e *Engine) Motion() *MotionController { return e.motion }

// ReducedMotion returns the read-only reduced-motion state.
func (e *Engine) ReducedMotion() ReadOnly[bool] { return e.motion.Reduced() }

// Pointer returns the pointer tracking engine.
func (e *Engine) Pointer() *PointerEngine { return e.pointer }

// Interactive returns the interactive-element registry.
func (e *Engine) Interactive() *InteractiveRegistry { return &e.interactive }

// Cursor returns the cursor visual.
func (e *Engine) Cursor() *CursorVisual { return e.cursor }

// Nav returns the navigation bar.
func (e *Engine) Nav() *Nav { return e.nav }

// Copy returns the copy-to-clipboard feedback.
func (e *Engine) Copy() *CopyFeedback { return e.copy }

// Layers returns the parallax layers. The returned slice MUST NOT be mutated.
func (e *Engine) Layers() []*ParallaxLayer { return e.layers }

// Layer returns the named parallax layer.
func (e *Engine) Layer(name string) *ParallaxLayer {
	for _, l := range e.layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Frames returns the number of Update calls.
func (e *Engine) Frames() int { return e.frames }

// Mounted reports whether the engine is mounted.
func (e *Engine) Mounted() bool { return e.mounted }

// --- Setup ---

// SetNavItems sets the navigation entries in page order.
func (e *Engine) SetNavItems(items []NavItem) {
	e.nav.Items = items
}

// SetClipboard installs the clipboard used by Copy.
func (e *Engine) SetClipboard(clip Clipboard) {
	e.copy.clip = clip
}

// SetEventStore sets the optional ECS bridge.
func (e *Engine) SetEventStore(store EventStore) {
	e.store = store
}

// RegisterSection adds a section in page order and schedules a sample.
func (e *Engine) RegisterSection(id string) (SectionHandle, error) {
	h, err := e.sections.Register(id)
	if err != nil {
		return SectionHandle{}, err
	}
	e.sampler.Request()
	return h, nil
}

// RegisterInteractive adds an element that puts the cursor in hover state.
func (e *Engine) RegisterInteractive(name string, shape HitShape, fixed bool) InteractiveHandle {
	return e.interactive.Register(name, shape, fixed)
}

// AddLayer attaches a parallax layer and schedules a sample.
func (e *Engine) AddLayer(l *ParallaxLayer) {
	e.layers = append(e.layers, l)
	e.sampler.Request()
}

// RemoveLayer detaches a parallax layer.
func (e *Engine) RemoveLayer(l *ParallaxLayer) {
	for i, x := range e.layers {
		if x == l {
			e.layers = append(e.layers[:i], e.layers[i+1:]...)
			return
		}
	}
}

// --- Lifecycle ---

// Mount attaches every component to the window. Mounting twice does nothing.
func (e *Engine) Mount() {
	if e.mounted {
		return
	}
	e.mounted = true

	e.motion.Mount()
	e.sampler.Mount()
	e.scroll.Mount()
	e.pointer.Mount()

	// Blocks mounting or resizing mid-page shift sections without a scroll.
	e.scope.Add(e.doc.OnChange(e.sampler.Request))

	// Motion changes re-pin or release parallax outputs on the next frame.
	e.scope.Add(e.motion.Reduced().Subscribe(func(reduced bool) {
		e.sampler.Request()
		e.debugf("reduced motion: %v", reduced)
		e.emit(InteractionEvent{Type: EventMotionChange, Reduced: reduced})
	}))
	e.scope.Add(e.resolver.Active().Subscribe(func(id string) {
		e.debugf("active section: %q", id)
		e.emit(InteractionEvent{Type: EventActiveSection, SectionID: id})
	}))
	e.scope.Add(e.pointer.State().Subscribe(e.onPointerState()))
}

// onPointerState returns a subscriber that forwards hover and suppression
// edges to the bridge.
func (e *Engine) onPointerState() func(PointerState) {
	prev := e.pointer.State().Get()
	return func(st PointerState) {
		if st.IsHoveringInteractive != prev.IsHoveringInteractive {
			e.emit(InteractionEvent{Type: EventHoverChange, X: st.X, Y: st.Y, Hovering: st.IsHoveringInteractive})
		}
		if st.IsSuppressed != prev.IsSuppressed {
			e.emit(InteractionEvent{Type: EventPointerSuppressed, X: st.X, Y: st.Y, Suppressed: st.IsSuppressed})
		}
		prev = st
	}
}

// Unmount releases every listener and subscription the engine and its
// components hold.
func (e *Engine) Unmount() {
	if !e.mounted {
		return
	}
	e.mounted = false
	e.scope.Close()
	e.pointer.Unmount()
	e.scroll.Unmount()
	e.sampler.Unmount()
	e.motion.Unmount()
	e.debugCheckLeaks()
}

// Update processes injected input, advances the smooth scroll, runs at most
// one sample evaluation, and animates the cursor. Call once per frame with
// the frame duration in seconds.
func (e *Engine) Update(dt float32) {
	if e.testRunner != nil {
		e.testRunner.step(e)
	}
	e.processInjectedInput()

	e.win.Update(dt)
	e.sampler.Flush(e.evaluate)

	reduced := e.motion.Reduced().Get()
	e.cursor.Update(e.pointer.State().Get(), reduced, dt)
	e.copy.Update(float64(dt))
	e.frames++
}

// evaluate runs everything that depends on a viewport sample.
func (e *Engine) evaluate(snap ViewportSnapshot) {
	sections := e.sections.Measure(e.doc, snap)
	e.resolver.Evaluate(sections, snap)

	reduced := e.motion.Reduced().Get()
	contentHeight := e.win.ContentHeight()
	for _, l := range e.layers {
		l.update(sections, snap, e.cfg.ActivationLine, contentHeight, reduced)
	}
	e.nav.refresh()

	if e.mounted && e.pointer.Mounted() && e.pointer.TouchMode() != e.pointer.IsTouchPrimary(snap.ViewportWidth) {
		e.pointer.Unmount()
		e.pointer.Mount()
		e.debugf("pointer touch mode: %v (width %.0f)", e.pointer.TouchMode(), snap.ViewportWidth)
	}
	e.pointer.Rescan()
}

// NavigateTo performs a navigation click on id.
func (e *Engine) NavigateTo(id string) bool {
	return e.nav.Click(id)
}

func (e *Engine) emit(ev InteractionEvent) {
	if e.store == nil {
		return
	}
	ev.ScrollY = e.win.ScrollY()
	e.store.EmitEvent(ev)
}
