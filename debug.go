package folio

import (
	"fmt"
	"os"
)

// SetDebugMode enables or disables debug mode. When enabled, state changes
// (active section, reduced motion, touch mode) are logged to stderr, and
// Unmount warns about listeners still attached to the window.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// debugf prints a diagnostic line to stderr when debug mode is on.
func (e *Engine) debugf(format string, args ...any) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[folio] "+format+"\n", args...)
}

// debugCheckLeaks warns on stderr if the window still carries listeners
// after the engine unmounted.
func (e *Engine) debugCheckLeaks() {
	if !e.debug {
		return
	}
	if n := e.win.TotalListeners(); n > 0 {
		_, _ = fmt.Fprintf(os.Stderr, "[folio] warning: %d listeners still attached after unmount\n", n)
	}
	requests, flushes := e.sampler.Stats()
	_, _ = fmt.Fprintf(os.Stderr, "[folio] frames: %d | sample requests: %d | evaluations: %d\n",
		e.frames, requests, flushes)
}
