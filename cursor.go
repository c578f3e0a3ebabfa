package folio

import "github.com/tanema/gween/ease"

const (
	cursorDotRadius    = 5.0
	cursorPressScale   = 0.8
	cursorHoverRing    = 1.5
	cursorTweenSeconds = 0.15
)

// CursorVisual is the rendered custom cursor: a dot following the pointer
// and a ring that expands over interactive elements. It eases toward the
// pointer state unless motion is reduced, in which case it snaps.
type CursorVisual struct {
	X, Y      float64
	Scale     float64
	RingScale float64
	Alpha     float64

	target [maxTweenFields]float64
	tween  *TweenGroup
}

// NewCursorVisual returns a hidden cursor at the origin.
func NewCursorVisual() *CursorVisual {
	return &CursorVisual{Scale: 1, RingScale: 1}
}

// Visible reports whether anything should be drawn.
func (c *CursorVisual) Visible() bool {
	return c.Alpha > 0
}

func cursorTargets(st PointerState) [maxTweenFields]float64 {
	t := [maxTweenFields]float64{
		st.X - cursorDotRadius,
		st.Y - cursorDotRadius,
		1,
		1,
		1,
	}
	if st.IsDown {
		t[2] = cursorPressScale
	}
	if st.IsHoveringInteractive {
		t[3] = cursorHoverRing
	}
	if st.IsSuppressed {
		t[4] = 0
	}
	return t
}

func (c *CursorVisual) fields() []*float64 {
	return []*float64{&c.X, &c.Y, &c.Scale, &c.RingScale, &c.Alpha}
}

// Update moves the visual toward st by dt seconds.
func (c *CursorVisual) Update(st PointerState, reduced bool, dt float32) {
	target := cursorTargets(st)
	if reduced {
		c.tween = nil
		c.target = target
		for i, f := range c.fields() {
			*f = target[i]
		}
		return
	}
	if target != c.target || c.tween == nil {
		c.target = target
		c.tween = NewTweenGroup(c.fields(), target[:], cursorTweenSeconds, ease.OutQuad)
	}
	if !c.tween.Done {
		c.tween.Update(dt)
	}
}
