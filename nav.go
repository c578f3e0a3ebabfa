package folio

// NavItem is one navigation entry, in fixed page order.
type NavItem struct {
	ID    string
	Label string
}

// Nav is the navigation bar's behavior: the item list, the highlighted item
// (read from the resolver), the compact header state, and the mobile menu.
type Nav struct {
	Items []NavItem

	scroll   *ScrollController
	resolver *Resolver
	doc      *Document
	compact  *Store[bool]
	menuOpen *Store[bool]
}

// NewNav creates a navigation bar.
func NewNav(items []NavItem, scroll *ScrollController, resolver *Resolver, doc *Document) *Nav {
	return &Nav{
		Items:    items,
		scroll:   scroll,
		resolver: resolver,
		doc:      doc,
		compact:  NewStore(false),
		menuOpen: NewStore(false),
	}
}

// Click navigates to the item's section and closes the mobile menu. A click
// on an unknown or unmounted section does nothing and reports false.
func (n *Nav) Click(id string) bool {
	if !n.scroll.ScrollToNav(id) {
		return false
	}
	n.menuOpen.set(false)
	return true
}

// IsActive reports whether id is the highlighted item.
func (n *Nav) IsActive(id string) bool {
	return n.resolver.ActiveID() == id
}

// Label returns the label for id.
func (n *Nav) Label(id string) (string, bool) {
	for _, it := range n.Items {
		if it.ID == id {
			return it.Label, true
		}
	}
	return "", false
}

// ToggleMenu opens or closes the mobile menu.
func (n *Nav) ToggleMenu() {
	n.menuOpen.set(!n.menuOpen.Get())
}

// MenuOpen returns the read-only mobile menu state.
func (n *Nav) MenuOpen() ReadOnly[bool] {
	return n.menuOpen
}

// Compact returns the read-only compact header state.
func (n *Nav) Compact() ReadOnly[bool] {
	return n.compact
}

// refresh updates the compact header state from the document.
func (n *Nav) refresh() {
	if n.doc != nil {
		n.compact.set(n.doc.HeaderCompact())
	}
}
