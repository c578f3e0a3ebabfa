package folio

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	ID     string  `json:"id,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	On     bool    `json:"on,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input, navigation clicks and platform
// signals across frames for scripted scenarios. Attach to an Engine via
// SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	log       []string
}

var validActions = map[string]bool{
	"move": true, "press": true, "release": true, "click": true,
	"leave": true, "enter": true, "wheel": true, "resize": true,
	"navigate": true, "reducedMotion": true, "wait": true, "mark": true,
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to an Engine via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !validActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the engine. The runner's step
// method is called from Engine.Update before injected input is processed.
func (e *Engine) SetTestRunner(runner *TestRunner) {
	e.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Log returns one line per "mark" step: the step id and the active section
// at that moment.
func (r *TestRunner) Log() []string {
	return r.log
}

// step advances the test runner by one frame. Called from Engine.Update.
func (r *TestRunner) step(e *Engine) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(e.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		e.InjectMove(st.X, st.Y)
	case "press":
		e.InjectPress(st.X, st.Y)
	case "release":
		e.InjectRelease(st.X, st.Y)
	case "click":
		e.InjectClick(st.X, st.Y)
	case "leave":
		e.InjectLeave()
	case "enter":
		e.InjectEnter(st.X, st.Y)
	case "wheel":
		e.InjectWheel(st.DY)
	case "resize":
		e.InjectResize(st.Width, st.Height)
	case "navigate":
		e.NavigateTo(st.ID)
	case "reducedMotion":
		e.win.SetMediaMatches(ReducedMotionQuery, st.On)
	case "mark":
		r.log = append(r.log, fmt.Sprintf("%s=%s", st.ID, e.resolver.ActiveID()))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
