package folio

// ViewportSnapshot is an immutable sample of viewport geometry.
type ViewportSnapshot struct {
	ScrollY        float64
	ViewportWidth  float64
	ViewportHeight float64
	// Timestamp is the window clock, in seconds, when the sample was taken.
	Timestamp float64
}

// Sampler turns raw scroll and resize events into snapshots. Events only
// request a sample; the frame loop takes it, so a burst of scroll events in
// one frame costs one evaluation. Only the current and previous snapshots
// are retained.
type Sampler struct {
	win      *Window
	throttle FrameThrottle
	scope    Scope
	mounted  bool
	current  ViewportSnapshot
	previous ViewportSnapshot
	samples  int
}

// NewSampler creates a sampler for win.
func NewSampler(win *Window) *Sampler {
	return &Sampler{win: win}
}

// Mount attaches the scroll and resize listeners and requests an initial
// sample. Mounting an already mounted sampler does nothing.
func (s *Sampler) Mount() {
	if s.mounted {
		return
	}
	s.mounted = true
	request := func(Event) { s.throttle.Request() }
	s.scope.Add(s.win.AddListener(EventScroll, request))
	s.scope.Add(s.win.AddListener(EventResize, request))
	s.throttle.Request()
}

// Unmount releases all listeners.
func (s *Sampler) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false
	s.scope.Close()
}

// Mounted reports whether the sampler's listeners are attached.
func (s *Sampler) Mounted() bool {
	return s.mounted
}

// Request forces a sample on the next flush, e.g. after a layout change that
// produced no scroll event.
func (s *Sampler) Request() {
	s.throttle.Request()
}

// Flush takes a sample if one was requested since the last flush and passes
// it to fn. It reports whether a sample was taken.
func (s *Sampler) Flush(fn func(ViewportSnapshot)) bool {
	return s.throttle.Flush(func() {
		snap := s.Sample()
		if fn != nil {
			fn(snap)
		}
	})
}

// Sample reads the window now and rotates the snapshot history.
func (s *Sampler) Sample() ViewportSnapshot {
	w, h := s.win.Size()
	snap := ViewportSnapshot{
		ScrollY:        s.win.ScrollY(),
		ViewportWidth:  w,
		ViewportHeight: h,
		Timestamp:      s.win.Clock(),
	}
	if s.samples == 0 {
		s.previous = snap
	} else {
		s.previous = s.current
	}
	s.current = snap
	s.samples++
	return snap
}

// Current returns the latest snapshot.
func (s *Sampler) Current() ViewportSnapshot {
	return s.current
}

// Previous returns the snapshot before the latest one. Before the second
// sample it equals Current.
func (s *Sampler) Previous() ViewportSnapshot {
	return s.previous
}

// Delta returns the scroll distance covered between the previous and the
// current snapshot. Positive values mean the page moved down.
func (s *Sampler) Delta() float64 {
	return s.current.ScrollY - s.previous.ScrollY
}

// Stats returns the throttle's request and flush counts.
func (s *Sampler) Stats() (requests, flushes int) {
	return s.throttle.Stats()
}
