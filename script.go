package sapling

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a playback script.
type scriptStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Seconds float64 `json:"seconds,omitempty"`
}

// script is the top-level JSON structure for a playback script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected clicks, waits and screenshots across
// frames so a run can be recorded unattended. Pass it to NewGame through
// GameOptions.Script.
//
// A script looks like:
//
//	{"steps": [
//	  {"action": "screenshot", "label": "heart"},
//	  {"action": "advance"},
//	  {"action": "wait", "seconds": 3},
//	  {"action": "screenshot", "label": "growing"}
//	]}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	tps       int
	done      bool
}

// LoadScript parses a JSON playback script. Waits given in seconds are
// converted to frames at tps ticks per second.
func LoadScript(jsonData []byte, tps int) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("sapling: parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("sapling: parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "advance", "click", "screenshot", "wait":
		default:
			return nil, fmt.Errorf("sapling: parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Frames < 0 || st.Seconds < 0 {
			return nil, fmt.Errorf("sapling: parse script: step %d: negative wait", i)
		}
	}
	if tps <= 0 {
		tps = 60
	}
	return &ScriptRunner{steps: sc.Steps, tps: tps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// waitFrames returns the number of frames a wait step lasts.
func (r *ScriptRunner) waitFrames(st scriptStep) int {
	if st.Frames > 0 {
		return st.Frames
	}
	return int(st.Seconds*float64(r.tps) + 0.5)
}

// step advances the runner by one frame. Called from Game.Update.
func (r *ScriptRunner) step(g *Game) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if g.input.pending() {
		return
	}
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
	case "screenshot":
		g.Screenshot(st.Label)
	case "advance":
		w, h := g.seq.width, g.seq.height
		g.InjectClick(w/2, h/2)
	case "click":
		g.InjectClick(st.X, st.Y)
	case "wait":
		if n := r.waitFrames(st); n > 0 {
			r.waitCount = n - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !g.input.pending() {
		r.done = true
	}
}
