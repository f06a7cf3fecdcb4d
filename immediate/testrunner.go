package immediate

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one entry of a test script. Which fields matter depends on
// Action.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Text   string  `json:"text,omitempty"`
	Key    string  `json:"key,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptAction starts one step. Anything it injects is played out before
// the runner moves on.
type scriptAction func(r *TestRunner, c *Context, st scriptStep)

var scriptActions = map[string]scriptAction{
	"click": func(_ *TestRunner, c *Context, st scriptStep) {
		c.InjectClick(st.X, st.Y)
	},
	"drag": func(_ *TestRunner, c *Context, st scriptStep) {
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	},
	"type": func(_ *TestRunner, c *Context, st scriptStep) {
		c.InjectText(st.Text)
	},
	"key": func(_ *TestRunner, c *Context, st scriptStep) {
		c.InjectText(string(scriptKeys[st.Key]))
	},
	"wait": func(r *TestRunner, _ *Context, st scriptStep) {
		// The frame that starts the wait is the first waited frame.
		r.waitCount = max(st.Frames-1, 0)
	},
	"screenshot": func(_ *TestRunner, c *Context, st scriptStep) {
		c.Screenshot(st.Label)
	},
}

// scriptKeys names the control keys a "key" step can press.
var scriptKeys = map[string]rune{
	"enter":     KeyEnter,
	"backspace": KeyBackspace,
	"escape":    KeyEscape,
}

// TestRunner replays a test script against a Context, one step at a time,
// waiting for each step's injected input to be consumed before starting the
// next. Create one with LoadTestScript and attach it with SetTestRunner.
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON document of the form
//
//	{"steps": [{"action": "click", "x": 10, "y": 20}, ...]}
//
// Known actions are click, drag, type, key, wait and screenshot.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var doc struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range doc.Steps {
		if _, ok := scriptActions[st.Action]; !ok {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if _, ok := scriptKeys[st.Key]; st.Action == "key" && !ok {
			return nil, fmt.Errorf("parse test script: step %d: unknown key %q", i, st.Key)
		}
	}
	return &TestRunner{steps: doc.Steps}, nil
}

// SetTestRunner attaches runner to c. BeginFrame advances it before reading
// input, so a step's first injected event lands in the same frame.
func (c *Context) SetTestRunner(runner *TestRunner) {
	c.runner = runner
}

// Done reports whether every step has run and its input has been consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

func (r *TestRunner) step(c *Context) {
	switch {
	case r.done, len(c.injectQueue) > 0:
		return
	case r.waitCount > 0:
		r.waitCount--
		return
	}
	if r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++
		scriptActions[st.Action](r, c, st)
	}
	r.done = r.cursor == len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0
}
