package folio

// ReducedMotionClass is the body class applied while reduced motion is on.
const ReducedMotionClass = "reduced-motion"

// MotionController mirrors the platform's reduced-motion signal into a
// read-only store and a body class. It never polls: it reads the signal once
// on mount and then follows change notifications.
type MotionController struct {
	win     *Window
	state   *Store[bool]
	scope   Scope
	mounted bool
}

// NewMotionController creates a controller for win. Motion is allowed until
// Mount reads the platform signal.
func NewMotionController(win *Window) *MotionController {
	return &MotionController{win: win, state: NewStore(false)}
}

// Reduced returns the read-only reduced-motion state.
func (m *MotionController) Reduced() ReadOnly[bool] {
	return m.state
}

// Mount reads the current preference and subscribes to changes. When the
// platform has no media query support the preference stays false.
func (m *MotionController) Mount() {
	if m.mounted {
		return
	}
	m.mounted = true
	mq, ok := m.win.MatchMedia(ReducedMotionQuery)
	if !ok {
		m.apply(false)
		return
	}
	m.apply(mq.Matches())
	m.scope.Add(mq.AddChangeListener(m.apply))
}

// Unmount unsubscribes from change notifications. The last state and body
// class are left in place.
func (m *MotionController) Unmount() {
	if !m.mounted {
		return
	}
	m.mounted = false
	m.scope.Close()
}

func (m *MotionController) apply(reduced bool) {
	m.win.Body().Toggle(ReducedMotionClass, reduced)
	m.state.set(reduced)
}
