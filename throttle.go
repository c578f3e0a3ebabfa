package folio

// FrameThrottle coalesces high-frequency requests (scroll, resize) into at
// most one evaluation per rendered frame. Handlers call Request; the frame
// loop calls Flush once per tick.
type FrameThrottle struct {
	pending  bool
	requests int
	flushes  int
}

// Request marks that an evaluation is needed this frame.
func (t *FrameThrottle) Request() {
	t.pending = true
	t.requests++
}

// Pending reports whether an evaluation has been requested since the last flush.
func (t *FrameThrottle) Pending() bool {
	return t.pending
}

// Flush runs fn if a request is pending and clears the request. It reports
// whether fn ran.
func (t *FrameThrottle) Flush(fn func()) bool {
	if !t.pending {
		return false
	}
	t.pending = false
	t.flushes++
	fn()
	return true
}

// Stats returns the number of requests and the number of evaluations that
// actually ran.
func (t *FrameThrottle) Stats() (requests, flushes int) {
	return t.requests, t.flushes
}
