package folio

import "fmt"

// Layout is the section boundary source. Measure returns an element's
// bounding rectangle relative to the viewport at the moment of the call,
// the same contract as a browser's getBoundingClientRect. ok is false when
// the element is not mounted.
type Layout interface {
	Measure(id string) (r Rect, ok bool)
}

// HeaderMeasurer reports the live rendered height of the fixed header.
type HeaderMeasurer interface {
	HeaderHeight() float64
}

// Header is the fixed overlay navigation bar. It renders expanded at the top
// of the page and switches to its compact height once the page has scrolled
// past CompactAfter.
type Header struct {
	Expanded     float64
	Compact      float64
	CompactAfter float64
}

// block is one page section laid out in document space.
type block struct {
	id      string
	height  float64
	mounted bool
	top     float64
}

// Document stacks page blocks vertically and measures them against the
// window's scroll position. Unmounted blocks take no space.
type Document struct {
	win    *Window
	header Header
	blocks []*block
	byID   map[string]*block

	changes handlerList[func()]
}

// NewDocument creates an empty document attached to win.
func NewDocument(win *Window, header Header) *Document {
	return &Document{
		win:    win,
		header: header,
		byID:   make(map[string]*block),
	}
}

// AddBlock appends a mounted block of the given height.
func (d *Document) AddBlock(id string, height float64) error {
	if id == "" {
		return fmt.Errorf("add block: %w", ErrEmptySectionID)
	}
	if _, dup := d.byID[id]; dup {
		return fmt.Errorf("add block %q: %w", id, ErrDuplicateSection)
	}
	b := &block{id: id, height: height, mounted: true}
	d.blocks = append(d.blocks, b)
	d.byID[id] = b
	d.relayout()
	return nil
}

// SetMounted mounts or unmounts a block. Unknown ids are ignored.
func (d *Document) SetMounted(id string, mounted bool) {
	b := d.byID[id]
	if b == nil || b.mounted == mounted {
		return
	}
	b.mounted = mounted
	d.relayout()
}

// SetHeight changes a block's height, shifting every block below it.
func (d *Document) SetHeight(id string, height float64) {
	b := d.byID[id]
	if b == nil || b.height == height {
		return
	}
	b.height = height
	d.relayout()
}

func (d *Document) relayout() {
	y := 0.0
	for _, b := range d.blocks {
		if !b.mounted {
			continue
		}
		b.top = y
		y += b.height
	}
	if d.win != nil {
		d.win.SetContentHeight(y)
	}
	for _, h := range d.changes.entries {
		h.fn()
	}
}

// OnChange registers fn to be called after every layout change: a block
// added, mounted, unmounted or resized.
func (d *Document) OnChange(fn func()) ListenerHandle {
	if fn == nil {
		return ListenerHandle{}
	}
	return d.changes.add(fn)
}

// ChangeListeners returns the number of registered layout-change callbacks.
func (d *Document) ChangeListeners() int {
	return d.changes.len()
}

// HasBlock reports whether a block with id was added, mounted or not.
func (d *Document) HasBlock(id string) bool {
	_, ok := d.byID[id]
	return ok
}

// Measure returns the block's viewport-relative rectangle.
func (d *Document) Measure(id string) (Rect, bool) {
	b := d.byID[id]
	if b == nil || !b.mounted {
		return Rect{}, false
	}
	scrollY := 0.0
	width := 0.0
	if d.win != nil {
		scrollY = d.win.ScrollY()
		width = d.win.Width()
	}
	return Rect{X: 0, Y: b.top - scrollY, Width: width, Height: b.height}, true
}

// HeaderHeight measures the header at the current scroll position.
func (d *Document) HeaderHeight() float64 {
	if d.win != nil && d.header.Compact > 0 && d.win.ScrollY() > d.header.CompactAfter {
		return d.header.Compact
	}
	return d.header.Expanded
}

// HeaderCompact reports whether the header is currently in its compact state.
func (d *Document) HeaderCompact() bool {
	return d.win != nil && d.win.ScrollY() > d.header.CompactAfter
}

// Height returns the total height of the mounted blocks.
func (d *Document) Height() float64 {
	h := 0.0
	for _, b := range d.blocks {
		if b.mounted {
			h += b.height
		}
	}
	return h
}
