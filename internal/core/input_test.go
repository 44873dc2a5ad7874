package core

import (
	"testing"
	"time"
)

func TestInputFrameActions(t *testing.T) {
	var f InputFrame
	if f.Has(ActionRestart) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionRestart)
	if !f.Has(ActionRestart) {
		t.Error("Restart should be set")
	}
	if f.Has(ActionQuit) {
		t.Error("Quit should not be set")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Press(10, 20)
	f.Press(30, 40)
	f.Elapsed = 16 * time.Millisecond

	if len(f.Presses) != 2 || f.Presses[1] != (Point{X: 30, Y: 40}) {
		t.Fatalf("Presses = %v, expected two points in order", f.Presses)
	}

	f.Clear()
	if f.Has(ActionPause) || len(f.Presses) != 0 || f.Elapsed != 0 {
		t.Errorf("Clear() left state behind: %+v", f)
	}
}

func TestActionString(t *testing.T) {
	if ActionRestart.String() != "Restart" {
		t.Errorf("ActionRestart.String() = %q", ActionRestart.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action String() = %q", Action(99).String())
	}
}
