package folio

import "fmt"

// Page bundles a window, the document laid out from a Config, and the
// engine driving both.
type Page struct {
	Window   *Window
	Document *Document
	Engine   *Engine

	handles []SectionHandle
}

// NewPage lays out cfg's sections in a window of the given size, registers
// them in page order, builds their parallax layers and nav items, and
// returns the page unmounted.
func NewPage(cfg Config, width, height float64) (*Page, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new page: %w", err)
	}
	if len(cfg.Sections) == 0 {
		return nil, fmt.Errorf("new page: %w", ErrNoSections)
	}

	win := NewWindow(width, height)
	doc := NewDocument(win, Header{
		Expanded:     cfg.Header.Expanded,
		Compact:      cfg.Header.Compact,
		CompactAfter: cfg.Header.CompactAfter,
	})
	e := NewEngine(win, doc, cfg)
	p := &Page{Window: win, Document: doc, Engine: e}

	for _, s := range cfg.Sections {
		if err := doc.AddBlock(s.ID, s.Height); err != nil {
			return nil, fmt.Errorf("new page: %w", err)
		}
		h, err := e.RegisterSection(s.ID)
		if err != nil {
			return nil, fmt.Errorf("new page: %w", err)
		}
		p.handles = append(p.handles, h)
		for _, lc := range s.Layers {
			layer, err := lc.build(s.ID)
			if err != nil {
				return nil, fmt.Errorf("new page: section %q: %w", s.ID, err)
			}
			e.AddLayer(layer)
		}
	}
	for _, lc := range cfg.PageLayers {
		layer, err := lc.build("")
		if err != nil {
			return nil, fmt.Errorf("new page: %w", err)
		}
		e.AddLayer(layer)
	}
	e.SetNavItems(cfg.NavItems())
	return p, nil
}

// UnmountSection takes a section off the page: its block stops taking space
// and it leaves the section registry. It reports whether the section was
// mounted.
func (p *Page) UnmountSection(id string) bool {
	for i, h := range p.handles {
		if h.ID() != id {
			continue
		}
		h.Remove()
		p.handles = append(p.handles[:i], p.handles[i+1:]...)
		p.Document.SetMounted(id, false)
		return true
	}
	return false
}

// MountSection puts a section taken off by UnmountSection back on the page.
// It returns to its original place in page order.
func (p *Page) MountSection(id string) error {
	if !p.Document.HasBlock(id) {
		return fmt.Errorf("mount section %q: %w", id, ErrUnknownSection)
	}
	h, err := p.Engine.RegisterSection(id)
	if err != nil {
		return fmt.Errorf("mount section: %w", err)
	}
	p.handles = append(p.handles, h)
	p.Document.SetMounted(id, true)
	return nil
}

// Mount mounts the engine.
func (p *Page) Mount() {
	p.Engine.Mount()
}

// Unmount unmounts the engine.
func (p *Page) Unmount() {
	p.Engine.Unmount()
}
