package folio

import (
	"errors"
	"fmt"
)

// DefaultActivationLine is the viewport offset, in pixels, just below the
// fixed header. The section straddling this line is the active one.
const DefaultActivationLine = 100.0

var (
	// ErrDuplicateSection is returned when a section id is registered twice.
	ErrDuplicateSection = errors.New("folio: duplicate section id")
	// ErrEmptySectionID is returned when a section is registered without an id.
	ErrEmptySectionID = errors.New("folio: empty section id")
	// ErrNoSections is returned when a page is built without any sections.
	ErrNoSections = errors.New("folio: no sections")
	// ErrUnknownSection is returned when a page has no block for an id.
	ErrUnknownSection = errors.New("folio: unknown section")
)

// Section is a measured page section. Bounds are in document space and are
// recomputed on every sample.
type Section struct {
	ID           string
	Order        int
	BoundsTop    float64
	BoundsBottom float64
}

// Contains reports whether the document-space position y lies within the
// section's bounds (edges inclusive).
func (s Section) Contains(y float64) bool {
	return s.BoundsTop <= y && y <= s.BoundsBottom
}

// --- Registry ---

type sectionEntry struct {
	id    string
	order int
}

// SectionRegistry records page sections in declared page order. An id keeps
// the order it was first registered with, so a section that is removed and
// registered again returns to its original place.
type SectionRegistry struct {
	entries   []sectionEntry
	orders    map[string]int
	nextOrder int
	onChange  []func()
	buf       []Section
}

// SectionHandle unregisters a section.
type SectionHandle struct {
	id  string
	reg *SectionRegistry
}

// Remove unregisters the section. Removing twice is harmless.
func (h SectionHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.unregister(h.id)
}

// ID returns the registered section id.
func (h SectionHandle) ID() string {
	return h.id
}

// Register adds a section. A new id goes at the end of the page order; an id
// registered before takes back its first-assigned slot.
func (r *SectionRegistry) Register(id string) (SectionHandle, error) {
	if id == "" {
		return SectionHandle{}, fmt.Errorf("register section: %w", ErrEmptySectionID)
	}
	if r.Has(id) {
		return SectionHandle{}, fmt.Errorf("register section %q: %w", id, ErrDuplicateSection)
	}
	order, seen := r.orders[id]
	if !seen {
		if r.orders == nil {
			r.orders = make(map[string]int)
		}
		order = r.nextOrder
		r.orders[id] = order
		r.nextOrder++
	}
	i := len(r.entries)
	for j, e := range r.entries {
		if e.order > order {
			i = j
			break
		}
	}
	r.entries = append(r.entries, sectionEntry{})
	copy(r.entries[i+1:], r.entries[i:])
	r.entries[i] = sectionEntry{id: id, order: order}
	r.changed()
	return SectionHandle{id: id, reg: r}, nil
}

func (r *SectionRegistry) unregister(id string) {
	for i := range r.entries {
		if r.entries[i].id == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			r.changed()
			return
		}
	}
}

func (r *SectionRegistry) changed() {
	for _, fn := range r.onChange {
		fn()
	}
}

// Has reports whether id is registered.
func (r *SectionRegistry) Has(id string) bool {
	for i := range r.entries {
		if r.entries[i].id == id {
			return true
		}
	}
	return false
}

// IDs returns the registered ids in page order.
func (r *SectionRegistry) IDs() []string {
	ids := make([]string, len(r.entries))
	for i, e := range r.entries {
		ids[i] = e.id
	}
	return ids
}

// Len returns the number of registered sections.
func (r *SectionRegistry) Len() int {
	return len(r.entries)
}

// Measure returns the registered sections that are currently mounted in
// layout, with document-space bounds for the given snapshot. Sections whose
// element is missing are left out. The returned slice is reused by the next
// call.
func (r *SectionRegistry) Measure(layout Layout, snap ViewportSnapshot) []Section {
	r.buf = r.buf[:0]
	for _, e := range r.entries {
		rect, ok := layout.Measure(e.id)
		if !ok {
			continue
		}
		top := rect.Y + snap.ScrollY
		r.buf = append(r.buf, Section{
			ID:           e.id,
			Order:        e.order,
			BoundsTop:    top,
			BoundsBottom: top + rect.Height,
		})
	}
	return r.buf
}

// --- Resolution ---

// ResolveActiveSection returns the first section, in the order given, whose
// bounds contain the activation line. The line is a viewport offset; it is
// placed in document space using snap.ScrollY. ok is false when no section
// contains the line.
//
// Sections must be passed in page order. Ties between overlapping sections
// are decided by that order alone.
func ResolveActiveSection(sections []Section, snap ViewportSnapshot, activationLine float64) (id string, ok bool) {
	line := snap.ScrollY + activationLine
	for _, s := range sections {
		if s.Contains(line) {
			return s.ID, true
		}
	}
	return "", false
}

// Resolver owns the active-section state. Consumers read it through Active;
// only sampling (Evaluate) and the scroll controller's optimistic update
// change it.
type Resolver struct {
	// ActivationLine is the viewport offset used by the containment test.
	ActivationLine float64

	registry *SectionRegistry
	state    *Store[string]

	holding bool
	holdID  string
}

// NewResolver creates a resolver over registry. The active id starts as the
// first section registered.
func NewResolver(registry *SectionRegistry, activationLine float64) *Resolver {
	r := &Resolver{
		ActivationLine: activationLine,
		registry:       registry,
		state:          NewStore(""),
	}
	registry.onChange = append(registry.onChange, r.seed)
	r.seed()
	return r
}

// seed keeps the active id pointing at a registered section. An empty id, or
// one whose section was unregistered, becomes the first section in page
// order, or empty when none remain. A held optimistic id is dropped along
// with its section.
func (r *Resolver) seed() {
	cur := r.state.Get()
	if cur != "" && r.registry.Has(cur) {
		return
	}
	if r.holding && r.holdID == cur {
		r.release()
	}
	next := ""
	if r.registry.Len() > 0 {
		next = r.registry.entries[0].id
	}
	r.state.set(next)
}

// Active returns the read-only active-section state.
func (r *Resolver) Active() ReadOnly[string] {
	return r.state
}

// ActiveID returns the current active section id.
func (r *Resolver) ActiveID() string {
	return r.state.Get()
}

// Evaluate re-runs resolution against measured sections. When nothing
// matches, the previous id is kept. While an optimistic update is held, other
// matches are ignored until the held section itself matches.
func (r *Resolver) Evaluate(sections []Section, snap ViewportSnapshot) string {
	id, ok := ResolveActiveSection(sections, snap, r.ActivationLine)
	if !ok {
		return r.state.Get()
	}
	if r.holding {
		if id != r.holdID {
			return r.state.Get()
		}
		r.holding = false
		r.holdID = ""
	}
	r.state.set(id)
	return id
}

// setOptimistic sets the active id immediately and holds it until sampling
// agrees or the hold is released.
func (r *Resolver) setOptimistic(id string) {
	r.state.set(id)
	r.holding = true
	r.holdID = id
}

// release drops an optimistic hold so normal resolution resumes.
func (r *Resolver) release() {
	r.holding = false
	r.holdID = ""
}

// Holding reports whether an optimistic update is being held.
func (r *Resolver) Holding() bool {
	return r.holding
}
