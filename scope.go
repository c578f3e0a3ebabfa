package folio

// Scope collects the resources a component acquires while mounted and
// releases all of them on Close. Disposers run once, newest first. A closed
// scope can be reused: Add after Close starts a new acquisition cycle.
type Scope struct {
	disposers []func()
}

// Add records a listener handle to be removed on Close.
func (s *Scope) Add(h ListenerHandle) {
	s.disposers = append(s.disposers, h.Remove)
}

// Defer records an arbitrary disposer.
func (s *Scope) Defer(fn func()) {
	if fn != nil {
		s.disposers = append(s.disposers, fn)
	}
}

// Len reports how many disposers are pending.
func (s *Scope) Len() int {
	return len(s.disposers)
}

// Close runs every pending disposer. A disposer that panics does not stop
// the remaining ones from running; the first panic is re-raised afterwards.
func (s *Scope) Close() {
	disposers := s.disposers
	s.disposers = nil
	var recovered any
	for i := len(disposers) - 1; i >= 0; i-- {
		func() {
			defer func() {
				if r := recover(); r != nil && recovered == nil {
					recovered = r
				}
			}()
			disposers[i]()
		}()
	}
	if recovered != nil {
		panic(recovered)
	}
}
