package folio

import (
	"fmt"
	"strconv"
	"strings"
)

// Binding maps scroll progress linearly onto an output range. Progress is
// clamped to Input before mapping.
type Binding struct {
	Input  Range
	Output Range
}

// NewBinding returns a binding from [0, 1] to [from, to].
func NewBinding(from, to float64) Binding {
	return Binding{Input: Range{0, 1}, Output: Range{from, to}}
}

// Rest is the output shown when motion is reduced: the first output endpoint.
func (b Binding) Rest() float64 {
	return b.Output.Start
}

// ComputeOutput maps progress through b. It is pure: the same binding and
// progress always produce the same value. For an ascending input range the
// endpoints are exact: Input.Start gives Output.Start and Input.End gives
// Output.End. A reversed range maps Input.Start to Output.Start all the
// same, and a degenerate one maps everything to Output.Start. Configs
// loaded through LoadConfig only produce ascending ranges.
func ComputeOutput(b Binding, progress float64) float64 {
	lo, hi := b.Input.Start, b.Input.End
	if lo == hi {
		return b.Output.Start
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	p := clamp(progress, lo, hi)
	t := (p - b.Input.Start) / (b.Input.End - b.Input.Start)
	if t == 0 {
		return b.Output.Start
	}
	if t == 1 {
		return b.Output.End
	}
	return b.Output.Start + t*(b.Output.End-b.Output.Start)
}

// Evaluate is ComputeOutput gated by the motion preference: with reduced
// set, the binding's rest value is returned regardless of progress.
func Evaluate(b Binding, progress float64, reduced bool) float64 {
	if reduced {
		return b.Rest()
	}
	return ComputeOutput(b, progress)
}

// --- Progress sources ---

// SectionProgress returns how far the activation line has travelled through
// the section, clamped to [0, 1].
func SectionProgress(sec Section, snap ViewportSnapshot, activationLine float64) float64 {
	line := snap.ScrollY + activationLine
	h := sec.BoundsBottom - sec.BoundsTop
	if h <= 0 {
		if line < sec.BoundsTop {
			return 0
		}
		return 1
	}
	return clamp((line-sec.BoundsTop)/h, 0, 1)
}

// PageProgress returns the overall scroll fraction of the page.
func PageProgress(snap ViewportSnapshot, contentHeight float64) float64 {
	maxScroll := contentHeight - snap.ViewportHeight
	if maxScroll <= 0 {
		return 0
	}
	return clamp(snap.ScrollY/maxScroll, 0, 1)
}

// Edge is a point along an element or the viewport: a fraction of its
// height plus a pixel offset.
type Edge struct {
	Fraction float64
	Pixels   float64
}

// Intersection pairs a point on the section with a point on the viewport.
// It is reached when the two points coincide.
type Intersection struct {
	Target   Edge
	Viewport Edge
}

// ScrollOffset describes where progress starts (0) and ends (1), written as
// two intersections such as "start 60%" and "end 60%".
type ScrollOffset struct {
	Start, End Intersection
}

// ParseScrollOffset parses a pair of intersection strings. Each has the form
// "<target> <viewport>" where both tokens are one of start, center, end, a
// percentage, or a pixel length ("40px" or a bare number).
func ParseScrollOffset(start, end string) (ScrollOffset, error) {
	s, err := parseIntersection(start)
	if err != nil {
		return ScrollOffset{}, fmt.Errorf("parse scroll offset start: %w", err)
	}
	e, err := parseIntersection(end)
	if err != nil {
		return ScrollOffset{}, fmt.Errorf("parse scroll offset end: %w", err)
	}
	return ScrollOffset{Start: s, End: e}, nil
}

func parseIntersection(s string) (Intersection, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Intersection{}, fmt.Errorf("%q: want two tokens", s)
	}
	target, err := parseEdge(fields[0])
	if err != nil {
		return Intersection{}, err
	}
	viewport, err := parseEdge(fields[1])
	if err != nil {
		return Intersection{}, err
	}
	return Intersection{Target: target, Viewport: viewport}, nil
}

func parseEdge(tok string) (Edge, error) {
	switch tok {
	case "start":
		return Edge{Fraction: 0}, nil
	case "center":
		return Edge{Fraction: 0.5}, nil
	case "end":
		return Edge{Fraction: 1}, nil
	}
	if pct, ok := strings.CutSuffix(tok, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return Edge{}, fmt.Errorf("edge %q: %w", tok, err)
		}
		return Edge{Fraction: v / 100}, nil
	}
	px, _ := strings.CutSuffix(tok, "px")
	v, err := strconv.ParseFloat(px, 64)
	if err != nil {
		return Edge{}, fmt.Errorf("edge %q: %w", tok, err)
	}
	return Edge{Pixels: v}, nil
}

// scrollAt returns the scroll position at which the intersection is reached.
func (i Intersection) scrollAt(sec Section, viewportHeight float64) float64 {
	h := sec.BoundsBottom - sec.BoundsTop
	target := sec.BoundsTop + i.Target.Fraction*h + i.Target.Pixels
	view := i.Viewport.Fraction*viewportHeight + i.Viewport.Pixels
	return target - view
}

// OffsetProgress returns progress through sec between the two
// intersections of o, clamped to [0, 1].
func OffsetProgress(sec Section, snap ViewportSnapshot, o ScrollOffset) float64 {
	s0 := o.Start.scrollAt(sec, snap.ViewportHeight)
	s1 := o.End.scrollAt(sec, snap.ViewportHeight)
	if s1 == s0 {
		if snap.ScrollY < s0 {
			return 0
		}
		return 1
	}
	return clamp((snap.ScrollY-s0)/(s1-s0), 0, 1)
}

// --- Layers ---

// ParallaxBinding is a named binding plus the last output computed for it.
type ParallaxBinding struct {
	Name    string
	Binding Binding
	last    float64
}

// Value returns the last computed output.
func (b *ParallaxBinding) Value() float64 {
	return b.last
}

// ParallaxLayer groups the bindings driven by one scroll source: a section
// (SectionID set) or the whole page (SectionID empty). Bindings are
// independent; none reads another's output.
type ParallaxLayer struct {
	Name      string
	SectionID string
	// Offset, when set, replaces activation-line progress for section layers.
	Offset *ScrollOffset

	bindings []*ParallaxBinding
	progress float64
	pinned   bool
	updates  int
}

// NewParallaxLayer creates a layer. An empty sectionID drives the layer from
// whole-page progress.
func NewParallaxLayer(name, sectionID string) *ParallaxLayer {
	return &ParallaxLayer{Name: name, SectionID: sectionID}
}

// Bind adds a named binding. Its initial value is the binding's rest value.
func (l *ParallaxLayer) Bind(name string, b Binding) *ParallaxBinding {
	pb := &ParallaxBinding{Name: name, Binding: b, last: b.Rest()}
	l.bindings = append(l.bindings, pb)
	return pb
}

// Output returns the last value of the named binding.
func (l *ParallaxLayer) Output(name string) (float64, bool) {
	for _, b := range l.bindings {
		if b.Name == name {
			return b.last, true
		}
	}
	return 0, false
}

// Bindings returns the layer's bindings. The returned slice MUST NOT be mutated.
func (l *ParallaxLayer) Bindings() []*ParallaxBinding {
	return l.bindings
}

// Progress returns the progress used for the last computation.
func (l *ParallaxLayer) Progress() float64 {
	return l.progress
}

// Updates reports how many times outputs were recomputed from progress.
func (l *ParallaxLayer) Updates() int {
	return l.updates
}

// update recomputes the layer's outputs. sections are the measured sections
// for snap. When reduced is set, outputs are pinned to rest once and further
// recomputation is skipped. A section layer whose section is not mounted
// keeps its last outputs.
func (l *ParallaxLayer) update(sections []Section, snap ViewportSnapshot, activationLine, contentHeight float64, reduced bool) {
	if reduced {
		if l.pinned {
			return
		}
		for _, b := range l.bindings {
			b.last = b.Binding.Rest()
		}
		l.pinned = true
		return
	}
	l.pinned = false

	var p float64
	if l.SectionID == "" {
		p = PageProgress(snap, contentHeight)
	} else {
		sec, ok := findSection(sections, l.SectionID)
		if !ok {
			return
		}
		if l.Offset != nil {
			p = OffsetProgress(sec, snap, *l.Offset)
		} else {
			p = SectionProgress(sec, snap, activationLine)
		}
	}
	l.progress = p
	for _, b := range l.bindings {
		b.last = ComputeOutput(b.Binding, p)
	}
	l.updates++
}

func findSection(sections []Section, id string) (Section, bool) {
	for _, s := range sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}
