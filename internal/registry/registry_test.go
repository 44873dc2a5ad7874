package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/find-luigi/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Snapshot() core.Snapshot              { return core.Snapshot{} }
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") || Exists("nope") {
		t.Fatal("Exists() gave the wrong answer")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q", g.ID())
	}

	if _, err := Create("nope"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Create(nope) error = %v, expected ErrUnknownMode", err)
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	ia, ib := indexOf(ids, "stub_a"), indexOf(ids, "stub_b")
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() should be sorted and contain both stubs, got %v", ids)
	}
	if list[ia].Title != "Stub stub_a" {
		t.Errorf("Title = %q", list[ia].Title)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
