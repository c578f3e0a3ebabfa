package folio

import "testing"

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"inside", 60, 50, true},
		{"outside", 80, 50, false},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitPolygonContains(t *testing.T) {
	// Square polygon: (0,0), (100,0), (100,100), (0,100)
	p := HitPolygon{Points: []Vec2{
		{0, 0}, {100, 0}, {100, 100}, {0, 100},
	}}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 50, true},
		{"on edge", 0, 50, true},
		{"corner", 0, 0, true},
		{"outside", -1, 50, false},
		{"outside far", 200, 200, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitPolygon.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	// Triangle
	tri := HitPolygon{Points: []Vec2{
		{0, 0}, {100, 0}, {50, 100},
	}}
	if !tri.Contains(50, 50) {
		t.Error("triangle should contain its center")
	}
	if tri.Contains(-10, 50) {
		t.Error("triangle should not contain point far left")
	}

	// Degenerate (< 3 points)
	degen := HitPolygon{Points: []Vec2{{0, 0}, {1, 1}}}
	if degen.Contains(0, 0) {
		t.Error("degenerate polygon should not contain anything")
	}
}

func TestHitPolygonContains_ReversedWinding(t *testing.T) {
	// Same square but clockwise winding.
	p := HitPolygon{Points: []Vec2{
		{0, 100}, {100, 100}, {100, 0}, {0, 0},
	}}
	if !p.Contains(50, 50) {
		t.Error("reversed winding polygon should still contain center point")
	}
	if p.Contains(-1, 50) {
		t.Error("reversed winding polygon should not contain outside point")
	}
}

// --- Interactive registry tests ---

func TestInteractiveRegistry_HitTestTopmost(t *testing.T) {
	var r InteractiveRegistry
	r.Register("card", HitRect{X: 0, Y: 0, Width: 200, Height: 200}, false)
	r.Register("button", HitRect{X: 50, Y: 50, Width: 40, Height: 20}, false)

	if el := r.HitTest(60, 60, 0); el == nil || el.Name != "button" {
		t.Errorf("HitTest = %v, want button", el)
	}
	if el := r.HitTest(150, 150, 0); el == nil || el.Name != "card" {
		t.Errorf("HitTest = %v, want card", el)
	}
	if el := r.HitTest(500, 500, 0); el != nil {
		t.Errorf("HitTest = %v, want nil", el)
	}
}

func TestInteractiveRegistry_FixedVersusScrolling(t *testing.T) {
	var r InteractiveRegistry
	r.Register("nav", HitRect{X: 0, Y: 0, Width: 100, Height: 40}, true)
	r.Register("link", HitRect{X: 0, Y: 1000, Width: 100, Height: 40}, false)

	tests := []struct {
		name    string
		vy      float64
		scrollY float64
		want    string
	}{
		{"fixed at top", 20, 0, "nav"},
		{"fixed after scroll", 20, 500, "nav"},
		{"document element before scroll", 1010, 0, "link"},
		{"document element scrolled into view", 30, 990, "link"},
		{"document element scrolled away", 1010, 500, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := r.HitTest(10, tt.vy, tt.scrollY)
			got := ""
			if el != nil {
				got = el.Name
			}
			if got != tt.want {
				t.Errorf("HitTest(10, %v, %v) = %q, want %q", tt.vy, tt.scrollY, got, tt.want)
			}
		})
	}
}

func TestInteractiveRegistry_RemoveBumpsVersion(t *testing.T) {
	var r InteractiveRegistry
	changes := 0
	r.OnChange(func() { changes++ })
	h := r.Register("a", HitCircle{Radius: 5}, false)
	v := r.Version()
	h.Remove()
	h.Remove()
	if r.Len() != 0 || r.Version() == v || changes != 2 {
		t.Errorf("Len=%d Version=%d->%d changes=%d", r.Len(), v, r.Version(), changes)
	}
}

// --- Pointer engine tests ---

func newPointerFixture(width float64) (*Window, *InteractiveRegistry, *PointerEngine) {
	w := NewWindow(width, 800)
	w.SetContentHeight(4000)
	reg := &InteractiveRegistry{}
	return w, reg, NewPointerEngine(w, reg)
}

func TestPointerEngine_TracksMoveAndPress(t *testing.T) {
	w, _, p := newPointerFixture(1280)
	p.Mount()
	defer p.Unmount()

	w.PointerMove(120, 340)
	st := p.State().Get()
	if st.X != 120 || st.Y != 340 || st.IsSuppressed {
		t.Errorf("after move: %+v", st)
	}

	w.PointerDown(120, 340, MouseButtonLeft)
	if !p.State().Get().IsDown {
		t.Error("IsDown should be true after press")
	}
	w.PointerUp(120, 340, MouseButtonLeft)
	if p.State().Get().IsDown {
		t.Error("IsDown should be false after release")
	}
}

func TestPointerEngine_Hover(t *testing.T) {
	w, reg, p := newPointerFixture(1280)
	reg.Register("button", HitRect{X: 100, Y: 100, Width: 80, Height: 30}, false)
	p.Mount()
	defer p.Unmount()

	w.PointerMove(110, 110)
	if !p.State().Get().IsHoveringInteractive {
		t.Error("should hover over the button")
	}
	if p.Hovered() == nil || p.Hovered().Name != "button" {
		t.Errorf("Hovered() = %v", p.Hovered())
	}
	w.PointerMove(300, 300)
	if p.State().Get().IsHoveringInteractive {
		t.Error("should not hover over empty space")
	}
}

func TestPointerEngine_RescanOnRegistryChange(t *testing.T) {
	w, reg, p := newPointerFixture(1280)
	p.Mount()
	defer p.Unmount()
	w.PointerMove(50, 50)

	h := reg.Register("late", HitCircle{CenterX: 50, CenterY: 50, Radius: 10}, false)
	if !p.State().Get().IsHoveringInteractive {
		t.Error("registering under a still pointer should start hover")
	}
	h.Remove()
	if p.State().Get().IsHoveringInteractive {
		t.Error("removing the element should end hover")
	}
}

func TestPointerEngine_RescanAfterScroll(t *testing.T) {
	w, reg, p := newPointerFixture(1280)
	reg.Register("link", HitRect{X: 0, Y: 1000, Width: 200, Height: 50}, false)
	p.Mount()
	defer p.Unmount()
	w.PointerMove(20, 20)

	w.ScrollBy(990)
	p.Rescan()
	if !p.State().Get().IsHoveringInteractive {
		t.Error("content scrolled under the pointer should be hovered after rescan")
	}
}

func TestPointerEngine_LeaveAndEnter(t *testing.T) {
	w, _, p := newPointerFixture(1280)
	p.Mount()
	defer p.Unmount()
	w.PointerMove(10, 10)

	w.PointerLeave()
	if !p.State().Get().IsSuppressed {
		t.Error("leaving the viewport should suppress the cursor")
	}
	w.PointerEnter(30, 40)
	st := p.State().Get()
	if st.IsSuppressed || st.X != 30 || st.Y != 40 {
		t.Errorf("after enter: %+v", st)
	}
}

func TestPointerEngine_TouchModeAttachesNothing(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		touch bool
	}{
		{"phone", 390, true},
		{"breakpoint", 768, true},
		{"just above", 769, false},
		{"desktop", 1440, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, p := newPointerFixture(tt.width)
			p.Mount()
			defer p.Unmount()

			if p.TouchMode() != tt.touch {
				t.Errorf("TouchMode() = %v, want %v", p.TouchMode(), tt.touch)
			}
			if !tt.touch {
				return
			}
			if w.TotalListeners() != 0 {
				t.Errorf("touch mode attached %d listeners", w.TotalListeners())
			}
			w.PointerMove(50, 50)
			if !p.State().Get().IsSuppressed {
				t.Error("touch mode cursor must stay suppressed")
			}
		})
	}
}

func TestPointerEngine_MountUnmountCycles(t *testing.T) {
	w, reg, p := newPointerFixture(1280)
	for i := 0; i < 10; i++ {
		p.Mount()
		p.Mount()
		if got := w.ListenerCount(EventPointerMove); got != 1 {
			t.Fatalf("cycle %d: %d move listeners, want 1", i, got)
		}
		p.Unmount()
	}
	if w.TotalListeners() != 0 {
		t.Errorf("TotalListeners() = %d, want 0", w.TotalListeners())
	}
	if reg.onChange.len() != 0 {
		t.Errorf("registry change listeners = %d, want 0", reg.onChange.len())
	}

	// Events after unmount leave state alone.
	before := p.State().Get()
	w.PointerMove(999, 999)
	if p.State().Get() != before {
		t.Error("unmounted engine reacted to pointer input")
	}
}
