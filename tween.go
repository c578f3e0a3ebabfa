package folio

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const maxTweenFields = 5

// TweenGroup animates up to five float64 fields simultaneously. Call Update
// each frame; values are written straight into the fields.
//
// There is no global animation manager; owners call Update themselves.
type TweenGroup struct {
	tweens [maxTweenFields]*gween.Tween
	fields [maxTweenFields]*float64
	count  int
	Done   bool
}

// NewTweenGroup animates each field from its current value to the matching
// target. Extra fields or targets beyond the shorter list are ignored.
func NewTweenGroup(fields []*float64, targets []float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	n := min(len(fields), len(targets), maxTweenFields)
	for i := 0; i < n; i++ {
		g.tweens[i] = gween.New(float32(*fields[i]), float32(targets[i]), duration, fn)
		g.fields[i] = fields[i]
	}
	g.count = n
	return g
}

// Update advances all tweens by dt seconds and writes the values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}
