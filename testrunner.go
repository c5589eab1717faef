package games

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one action in a test script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Key    string  `json:"key,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	// Ms is the extra time "advance" adds to the next frame's delta.
	Ms float64 `json:"ms,omitempty"`
}

type testScript struct {
	Steps []scriptStep `json:"steps"`
}

// TestRunner plays a scripted sequence of injected input, waits and
// screenshots, one step per frame.
//
//	{"steps": [
//	  {"action": "click", "x": 40, "y": 20},
//	  {"action": "wait", "frames": 10},
//	  {"action": "key", "key": "Space"},
//	  {"action": "advance", "ms": 500},
//	  {"action": "screenshot", "label": "menu"}
//	]}
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	extraMs   float64
	done      bool
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("games: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("games: parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "screenshot", "click", "drag", "key", "wait", "advance":
		default:
			return nil, fmt.Errorf("games: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches r; it steps at the start of every frame.
func (c *Context) SetTestRunner(r *TestRunner) {
	c.runner = r
}

// Done reports whether every step has run.
func (r *TestRunner) Done() bool {
	return r.done
}

// takeExtra returns and clears time queued by "advance" steps.
func (r *TestRunner) takeExtra() float64 {
	ms := r.extraMs
	r.extraMs = 0
	return ms
}

// step runs at most one script step.
func (r *TestRunner) step(c *Context) {
	if r.done {
		return
	}
	if len(c.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone(c)
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		c.Screenshot(st.Label)
	case "click":
		c.InjectClick(st.X, st.Y)
	case "drag":
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "key":
		c.InjectKey(st.Key)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	case "advance":
		r.extraMs += st.Ms
	}

	r.checkDone(c)
}

func (r *TestRunner) checkDone(c *Context) {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
