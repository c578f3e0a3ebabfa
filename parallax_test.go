package folio

import "testing"

func TestComputeOutput(t *testing.T) {
	tests := []struct {
		name     string
		b        Binding
		progress float64
		want     float64
	}{
		{"start endpoint", NewBinding(0, 100), 0, 0},
		{"end endpoint", NewBinding(0, 100), 1, 100},
		{"midpoint", NewBinding(0, 100), 0.5, 50},
		{"descending output", NewBinding(0, -100), 0.25, -25},
		{"clamped below", NewBinding(0, 80), -3, 0},
		{"clamped above", NewBinding(0, 80), 7, 80},
		{"custom input", Binding{Input: Range{0.5, 1}, Output: Range{10, 20}}, 0.75, 15},
		{"reversed input", Binding{Input: Range{1, 0}, Output: Range{0, 10}}, 0.25, 7.5},
		{"degenerate input", Binding{Input: Range{0.5, 0.5}, Output: Range{3, 9}}, 0.9, 3},
		{"fractional glow", NewBinding(0.2, 0.6), 1, 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeOutput(tt.b, tt.progress)
			if !approxEqual(got, tt.want, 1e-9) {
				t.Errorf("ComputeOutput(%+v, %v) = %v, want %v", tt.b, tt.progress, got, tt.want)
			}
		})
	}
}

func TestComputeOutput_Pure(t *testing.T) {
	b := NewBinding(0, 80)
	first := ComputeOutput(b, 0.37)
	for i := 0; i < 100; i++ {
		if got := ComputeOutput(b, 0.37); got != first {
			t.Fatalf("call %d returned %v, want %v", i, got, first)
		}
	}
}

func TestEvaluate_ReducedReturnsRest(t *testing.T) {
	b := NewBinding(0.2, 0.6)
	for _, p := range []float64{0, 0.3, 1} {
		if got := Evaluate(b, p, true); got != 0.2 {
			t.Errorf("Evaluate(reduced, %v) = %v, want 0.2", p, got)
		}
	}
	if got := Evaluate(b, 1, false); got != 0.6 {
		t.Errorf("Evaluate(full motion, 1) = %v, want 0.6", got)
	}
}

func TestSectionProgress(t *testing.T) {
	sec := Section{ID: "about", BoundsTop: 1000, BoundsBottom: 1800}
	tests := []struct {
		scrollY float64
		want    float64
	}{
		{0, 0},
		{900, 0},
		{1100, 0.25},
		{1700, 1},
		{5000, 1},
	}
	for _, tt := range tests {
		got := SectionProgress(sec, ViewportSnapshot{ScrollY: tt.scrollY}, 100)
		if !approxEqual(got, tt.want, 1e-9) {
			t.Errorf("SectionProgress(scroll %v) = %v, want %v", tt.scrollY, got, tt.want)
		}
	}
}

func TestPageProgress(t *testing.T) {
	snap := ViewportSnapshot{ScrollY: 600, ViewportHeight: 600}
	if got := PageProgress(snap, 3000); !approxEqual(got, 0.25, 1e-9) {
		t.Errorf("PageProgress = %v, want 0.25", got)
	}
	if got := PageProgress(snap, 500); got != 0 {
		t.Errorf("PageProgress for short page = %v, want 0", got)
	}
}

func TestParseScrollOffset(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       ScrollOffset
		wantErr    bool
	}{
		{
			name: "keywords and percent", start: "start 60%", end: "end center",
			want: ScrollOffset{
				Start: Intersection{Target: Edge{Fraction: 0}, Viewport: Edge{Fraction: 0.6}},
				End:   Intersection{Target: Edge{Fraction: 1}, Viewport: Edge{Fraction: 0.5}},
			},
		},
		{
			name: "pixels", start: "start 40px", end: "end 0",
			want: ScrollOffset{
				Start: Intersection{Target: Edge{}, Viewport: Edge{Pixels: 40}},
				End:   Intersection{Target: Edge{Fraction: 1}, Viewport: Edge{}},
			},
		},
		{name: "one token", start: "start", end: "end end", wantErr: true},
		{name: "bad keyword", start: "start 60%", end: "bottom end", wantErr: true},
		{name: "bad percent", start: "start x%", end: "end end", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScrollOffset(tt.start, tt.end)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseScrollOffset(%q, %q) = %+v, want %+v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestOffsetProgress(t *testing.T) {
	// Section 1000..2000 in a 600px viewport, "start 60%" to "end 60%":
	// progress runs from scroll 640 to scroll 1640.
	o, err := ParseScrollOffset("start 60%", "end 60%")
	if err != nil {
		t.Fatal(err)
	}
	sec := Section{BoundsTop: 1000, BoundsBottom: 2000}
	tests := []struct {
		scrollY float64
		want    float64
	}{
		{0, 0},
		{640, 0},
		{1140, 0.5},
		{1640, 1},
		{3000, 1},
	}
	for _, tt := range tests {
		got := OffsetProgress(sec, ViewportSnapshot{ScrollY: tt.scrollY, ViewportHeight: 600}, o)
		if !approxEqual(got, tt.want, 1e-9) {
			t.Errorf("OffsetProgress(scroll %v) = %v, want %v", tt.scrollY, got, tt.want)
		}
	}
}

func TestParallaxLayer_Update(t *testing.T) {
	l := NewParallaxLayer("about", "about")
	y := l.Bind("imageY", NewBinding(0, 80))
	l.Bind("textY", NewBinding(0, 40))
	sections := []Section{{ID: "about", BoundsTop: 1000, BoundsBottom: 1800}}

	l.update(sections, ViewportSnapshot{ScrollY: 1300}, 100, 4000, false)

	if !approxEqual(y.Value(), 40, 1e-9) {
		t.Errorf("imageY = %v, want 40", y.Value())
	}
	if v, ok := l.Output("textY"); !ok || !approxEqual(v, 20, 1e-9) {
		t.Errorf("textY = (%v, %v), want (20, true)", v, ok)
	}
	if _, ok := l.Output("missing"); ok {
		t.Error("Output of unknown binding should report false")
	}
	if !approxEqual(l.Progress(), 0.5, 1e-9) {
		t.Errorf("Progress() = %v, want 0.5", l.Progress())
	}
}

func TestParallaxLayer_ReducedPinsOnce(t *testing.T) {
	l := NewParallaxLayer("exp", "exp")
	glow := l.Bind("glow", NewBinding(0.2, 0.6))
	sections := []Section{{ID: "exp", BoundsTop: 0, BoundsBottom: 1000}}

	l.update(sections, ViewportSnapshot{ScrollY: 900}, 100, 4000, false)
	if glow.Value() != 0.6 {
		t.Fatalf("glow = %v, want 0.6", glow.Value())
	}
	updates := l.Updates()

	for _, y := range []float64{0, 300, 900} {
		l.update(sections, ViewportSnapshot{ScrollY: y}, 100, 4000, true)
		if glow.Value() != 0.2 {
			t.Errorf("reduced glow at scroll %v = %v, want 0.2", y, glow.Value())
		}
	}
	if l.Updates() != updates {
		t.Errorf("reduced motion recomputed outputs %d times", l.Updates()-updates)
	}

	l.update(sections, ViewportSnapshot{ScrollY: 400}, 100, 4000, false)
	if !approxEqual(glow.Value(), 0.4, 1e-9) {
		t.Errorf("glow after motion restored = %v, want 0.4", glow.Value())
	}
}

func TestParallaxLayer_MissingSectionKeepsOutputs(t *testing.T) {
	l := NewParallaxLayer("p", "projects")
	b := l.Bind("bgY", NewBinding(0, -100))
	if b.Value() != 0 {
		t.Fatalf("initial value = %v, want rest 0", b.Value())
	}
	l.update(nil, ViewportSnapshot{ScrollY: 500}, 100, 4000, false)
	if b.Value() != 0 || l.Updates() != 0 {
		t.Errorf("unmounted section should leave outputs untouched")
	}
}

func TestParallaxLayer_PageProgress(t *testing.T) {
	l := NewParallaxLayer("page", "")
	p := l.Bind("progress", NewBinding(0, 1))
	l.update(nil, ViewportSnapshot{ScrollY: 1200, ViewportHeight: 600}, 100, 3000, false)
	if !approxEqual(p.Value(), 0.5, 1e-9) {
		t.Errorf("page progress = %v, want 0.5", p.Value())
	}
}
