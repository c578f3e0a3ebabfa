package folio

// --- Handler lists ---

type handlerEntry[F any] struct {
	id uint32
	fn F
}

// handlerList is an ordered set of callbacks. Removal replaces the backing
// slice instead of shifting it in place, so a dispatch loop that is already
// iterating keeps a stable view even if a handler removes itself.
type handlerList[F any] struct {
	entries []handlerEntry[F]
	nextID  uint32
}

func (l *handlerList[F]) add(fn F) ListenerHandle {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, handlerEntry[F]{id: id, fn: fn})
	return ListenerHandle{id: id, list: l}
}

func (l *handlerList[F]) remove(id uint32) {
	for i := range l.entries {
		if l.entries[i].id == id {
			next := make([]handlerEntry[F], 0, len(l.entries)-1)
			next = append(next, l.entries[:i]...)
			next = append(next, l.entries[i+1:]...)
			l.entries = next
			return
		}
	}
}

func (l *handlerList[F]) len() int {
	return len(l.entries)
}

type remover interface {
	remove(id uint32)
}

// ListenerHandle allows removing a registered listener or subscription.
// The zero value is valid and Remove on it does nothing. Removing twice is
// harmless.
type ListenerHandle struct {
	id   uint32
	list remover
}

// Remove unregisters the callback so it no longer fires.
func (h ListenerHandle) Remove() {
	if h.list == nil {
		return
	}
	h.list.remove(h.id)
}

// --- Store ---

// ReadOnly is the consumer view of a Store. Display code reads and
// subscribes; only the owning component can write.
type ReadOnly[T comparable] interface {
	Get() T
	Subscribe(fn func(T)) ListenerHandle
}

// Store is a single-owner state container. Writes go through the unexported
// set method, so only code in this package (the owning resolver or engine)
// can change the value. Subscribers are notified synchronously, and only
// when the value actually changes.
type Store[T comparable] struct {
	value T
	subs  handlerList[func(T)]
}

// NewStore creates a store holding initial.
func NewStore[T comparable](initial T) *Store[T] {
	return &Store[T]{value: initial}
}

// Get returns the current value.
func (s *Store[T]) Get() T {
	return s.value
}

// Subscribe registers fn to be called after each change.
func (s *Store[T]) Subscribe(fn func(T)) ListenerHandle {
	return s.subs.add(fn)
}

// SubscriberCount reports how many subscriptions are live.
func (s *Store[T]) SubscriberCount() int {
	return s.subs.len()
}

// set stores v and notifies subscribers. It reports whether the value changed.
func (s *Store[T]) set(v T) bool {
	if s.value == v {
		return false
	}
	s.value = v
	for _, e := range s.subs.entries {
		e.fn(v)
	}
	return true
}
