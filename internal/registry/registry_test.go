package registry

import (
	"testing"

	"github.com/vovakirdan/tui-dots/internal/core"
)

type stubGame struct {
	id    string
	reset int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.reset++ }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") || Exists("stub_missing") {
		t.Error("Exists returned a wrong value")
	}

	g1, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	g2, _ := Create("stub_a")
	if g1 == g2 {
		t.Error("Create should return a fresh instance each time")
	}

	if _, err := Create("stub_missing"); err == nil {
		t.Error("Create of an unknown id should fail")
	}

	var idxA, idxB = -1, -1
	for i, info := range List() {
		switch info.ID {
		case "stub_a":
			idxA = i
			if info.Title != "Stub stub_a" {
				t.Errorf("title = %q", info.Title)
			}
		case "stub_b":
			idxB = i
		}
	}
	if idxA < 0 || idxB < 0 || idxA > idxB {
		t.Errorf("List() not sorted or incomplete: a=%d b=%d", idxA, idxB)
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"duplicate", "stub_dup"},
		{"empty", " "},
	}

	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%q) should panic", tc.id)
				}
			}()
			Register(tc.id, func() Game { return &stubGame{id: tc.id} })
		})
	}
}
