package folio

// DefaultScrollGap is the visual buffer, in pixels, left between the fixed
// header and a section scrolled into view.
const DefaultScrollGap = 8.0

// ScrollTarget computes the scroll position that places a section's top
// edge gap pixels below a fixed header. sectionTop is viewport-relative.
func ScrollTarget(sectionTop, scrollY, headerHeight, gap float64) float64 {
	return sectionTop + scrollY - headerHeight - gap
}

// ScrollController performs offset-compensated smooth scrolling to a
// section and keeps the active-section highlight steady while the scroll
// animates.
type ScrollController struct {
	// Gap is the buffer left below the header.
	Gap float64

	win      *Window
	layout   Layout
	header   HeaderMeasurer
	resolver *Resolver
	motion   ReadOnly[bool]

	scope   Scope
	mounted bool
}

// NewScrollController creates a controller. header and motion may be nil;
// a nil header measures as zero height and a nil motion store means motion
// is allowed.
func NewScrollController(win *Window, layout Layout, header HeaderMeasurer, resolver *Resolver, motion ReadOnly[bool]) *ScrollController {
	return &ScrollController{
		Gap:      DefaultScrollGap,
		win:      win,
		layout:   layout,
		header:   header,
		resolver: resolver,
		motion:   motion,
	}
}

// Mount attaches the scroll-end listener that releases optimistic holds.
func (c *ScrollController) Mount() {
	if c.mounted {
		return
	}
	c.mounted = true
	c.scope.Add(c.win.AddListener(EventScrollEnd, func(Event) {
		if c.resolver != nil {
			c.resolver.release()
		}
	}))
}

// Unmount releases the controller's listeners.
func (c *ScrollController) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false
	c.scope.Close()
}

// ScrollToSection scrolls so that the section's top sits gap pixels below a
// header of the given height. The section is measured now, not from a cached
// sample. A missing section is a no-op and reports false.
func (c *ScrollController) ScrollToSection(id string, headerHeight, gap float64) bool {
	rect, ok := c.layout.Measure(id)
	if !ok {
		return false
	}
	target := ScrollTarget(rect.Y, c.win.ScrollY(), headerHeight, gap)
	smooth := c.motion == nil || !c.motion.Get()
	if c.resolver != nil {
		c.resolver.setOptimistic(id)
	}
	c.win.ScrollTo(target, smooth)
	return true
}

// ScrollToNav scrolls to a section using the header's live height and the
// controller's gap. This is what a navigation click invokes.
func (c *ScrollController) ScrollToNav(id string) bool {
	h := 0.0
	if c.header != nil {
		h = c.header.HeaderHeight()
	}
	return c.ScrollToSection(id, h, c.Gap)
}
