package folio

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config holds the engine's design constants and, optionally, the page it
// drives. In a Config built as a literal, zero numeric fields take the
// defaults from DefaultConfig. Configs returned by DefaultConfig or
// LoadConfig already carry the defaults, so an explicit zero set on them
// (or written in the YAML) is kept.
type Config struct {
	// ActivationLine is the viewport offset used for scroll-spy and
	// section progress.
	ActivationLine float64 `yaml:"activationLine"`
	// ScrollGap is the buffer left below the header after a nav scroll.
	ScrollGap float64 `yaml:"scrollGap"`
	// TouchBreakpoint is the widest viewport treated as touch-primary.
	TouchBreakpoint float64 `yaml:"touchBreakpoint"`
	// ScrollDuration is the smooth-scroll length in seconds.
	ScrollDuration float32 `yaml:"scrollDuration"`

	Header   HeaderConfig    `yaml:"header"`
	Sections []SectionConfig `yaml:"sections"`
	// PageLayers are parallax layers driven by whole-page progress.
	PageLayers []LayerConfig `yaml:"pageLayers"`

	defaulted bool
}

// HeaderConfig sizes the fixed header.
type HeaderConfig struct {
	Expanded     float64 `yaml:"expanded"`
	Compact      float64 `yaml:"compact"`
	CompactAfter float64 `yaml:"compactAfter"`
}

// SectionConfig declares one page section. Order in the list is page order.
type SectionConfig struct {
	ID     string  `yaml:"id"`
	Label  string  `yaml:"label"`
	Height float64 `yaml:"height"`
	// Nav controls whether the section appears in the navigation bar.
	// Defaults to true.
	Nav    *bool         `yaml:"nav"`
	Layers []LayerConfig `yaml:"layers"`
}

// LayerConfig declares a parallax layer.
type LayerConfig struct {
	Name string `yaml:"name"`
	// Offset is a pair of intersections, e.g. ["start 60%", "end 60%"].
	// Empty means activation-line progress.
	Offset   []string        `yaml:"offset"`
	Bindings []BindingConfig `yaml:"bindings"`
}

// BindingConfig declares one parallax binding. An omitted input range
// means [0, 1]; a given one must be ascending.
type BindingConfig struct {
	Name   string     `yaml:"name"`
	Input  [2]float64 `yaml:"input"`
	Output [2]float64 `yaml:"output"`
}

// DefaultConfig returns the standard design constants and no sections.
func DefaultConfig() Config {
	return Config{
		ActivationLine:  DefaultActivationLine,
		ScrollGap:       DefaultScrollGap,
		TouchBreakpoint: DefaultTouchBreakpoint,
		ScrollDuration:  defaultScrollDuration,
		Header: HeaderConfig{
			Expanded:     80,
			Compact:      64,
			CompactAfter: 20,
		},
		defaulted: true,
	}
}

func (c Config) withDefaults() Config {
	if c.defaulted {
		return c
	}
	d := DefaultConfig()
	if c.ActivationLine == 0 {
		c.ActivationLine = d.ActivationLine
	}
	if c.ScrollGap == 0 {
		c.ScrollGap = d.ScrollGap
	}
	if c.TouchBreakpoint == 0 {
		c.TouchBreakpoint = d.TouchBreakpoint
	}
	if c.ScrollDuration == 0 {
		c.ScrollDuration = d.ScrollDuration
	}
	if c.Header == (HeaderConfig{}) {
		c.Header = d.Header
	}
	c.defaulted = true
	return c
}

// LoadConfig parses YAML configuration over DefaultConfig and validates it.
// Keys absent from data keep their default values.
func LoadConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks section ids, heights and parallax declarations.
func (c Config) Validate() error {
	var errs []error
	if c.ActivationLine < 0 {
		errs = append(errs, fmt.Errorf("activationLine %v: must not be negative", c.ActivationLine))
	}
	if c.ScrollGap < 0 {
		errs = append(errs, fmt.Errorf("scrollGap %v: must not be negative", c.ScrollGap))
	}
	if c.ScrollDuration < 0 {
		errs = append(errs, fmt.Errorf("scrollDuration %v: must not be negative", c.ScrollDuration))
	}
	seen := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("sections[%d]: %w", i, ErrEmptySectionID))
			continue
		}
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("sections[%d] %q: %w", i, s.ID, ErrDuplicateSection))
		}
		seen[s.ID] = true
		if s.Height <= 0 {
			errs = append(errs, fmt.Errorf("sections[%d] %q: height must be positive", i, s.ID))
		}
		for j, l := range s.Layers {
			if err := l.validate(); err != nil {
				errs = append(errs, fmt.Errorf("sections[%d] %q layers[%d]: %w", i, s.ID, j, err))
			}
		}
	}
	for j, l := range c.PageLayers {
		if err := l.validate(); err != nil {
			errs = append(errs, fmt.Errorf("pageLayers[%d]: %w", j, err))
		}
		if len(l.Offset) != 0 {
			errs = append(errs, fmt.Errorf("pageLayers[%d]: offset is only valid on section layers", j))
		}
	}
	return errors.Join(errs...)
}

func (l LayerConfig) validate() error {
	if l.Name == "" {
		return errors.New("layer name is empty")
	}
	if len(l.Offset) != 0 {
		if _, err := l.scrollOffset(); err != nil {
			return err
		}
	}
	for _, b := range l.Bindings {
		if b.Input == [2]float64{} {
			continue
		}
		if b.Input[0] >= b.Input[1] {
			return fmt.Errorf("binding %q: input range %v must be ascending", b.Name, b.Input)
		}
	}
	return nil
}

func (l LayerConfig) scrollOffset() (*ScrollOffset, error) {
	if len(l.Offset) == 0 {
		return nil, nil
	}
	if len(l.Offset) != 2 {
		return nil, fmt.Errorf("offset: want 2 entries, got %d", len(l.Offset))
	}
	o, err := ParseScrollOffset(l.Offset[0], l.Offset[1])
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (l LayerConfig) build(sectionID string) (*ParallaxLayer, error) {
	layer := NewParallaxLayer(l.Name, sectionID)
	o, err := l.scrollOffset()
	if err != nil {
		return nil, fmt.Errorf("layer %q: %w", l.Name, err)
	}
	layer.Offset = o
	for _, b := range l.Bindings {
		in := b.Input
		if in == [2]float64{} {
			in = [2]float64{0, 1}
		}
		layer.Bind(b.Name, Binding{
			Input:  Range{in[0], in[1]},
			Output: Range{b.Output[0], b.Output[1]},
		})
	}
	return layer, nil
}

// NavItems returns the navigation entries declared by the sections.
func (c Config) NavItems() []NavItem {
	var items []NavItem
	for _, s := range c.Sections {
		if s.Nav != nil && !*s.Nav {
			continue
		}
		label := s.Label
		if label == "" {
			label = s.ID
		}
		items = append(items, NavItem{ID: s.ID, Label: label})
	}
	return items
}
