package agent_test

import (
	"context"
	"testing"

	"course-outline-planner/internal/agent"
)

type mockTool struct {
	name        string
	description string
	params      map[string]interface{}
}

func (m *mockTool) Name() string                       { return m.name }
func (m *mockTool) Description() string                { return m.description }
func (m *mockTool) Parameters() map[string]interface{} { return m.params }
func (m *mockTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return nil, nil
}

func TestToolRegistry(t *testing.T) {
	registry := agent.NewToolRegistry()

	registry.Register(&mockTool{name: "zeta", description: "desc1"})
	registry.Register(&mockTool{name: "alpha", description: "desc2"})
	registry.Register(&mockTool{name: "mid", description: "desc3"})

	t.Run("Get existing tool", func(t *testing.T) {
		got, ok := registry.Get("alpha")
		if !ok || got.Name() != "alpha" {
			t.Errorf("expected alpha to be found")
		}
	})

	t.Run("Get non-existing tool", func(t *testing.T) {
		if _, ok := registry.Get("missing"); ok {
			t.Errorf("expected 'missing' tool to not be found")
		}
	})

	t.Run("List keeps registration order", func(t *testing.T) {
		tools := registry.List()
		want := []string{"zeta", "alpha", "mid"}
		if len(tools) != len(want) {
			t.Fatalf("expected %d tools, got %d", len(want), len(tools))
		}
		for i, name := range want {
			if tools[i].Name() != name {
				t.Errorf("tools[%d] = %s, want %s", i, tools[i].Name(), name)
			}
		}
	})

	t.Run("Re-register replaces in place", func(t *testing.T) {
		registry.Register(&mockTool{name: "alpha", description: "replaced"})
		defs := registry.ToFunctionDefinitions()
		if len(defs) != 3 {
			t.Fatalf("expected 3 definitions, got %d", len(defs))
		}
		if defs[1].Name != "alpha" || defs[1].Description != "replaced" {
			t.Errorf("defs[1] = %+v", defs[1])
		}
	})
}

type flagResult struct{ ok bool }

func (r flagResult) Succeeded() bool { return r.ok }

func TestSucceeded(t *testing.T) {
	tests := []struct {
		name   string
		result interface{}
		want   bool
	}{
		{"reporter ok", flagResult{ok: true}, true},
		{"reporter failed", flagResult{ok: false}, false},
		{"map failed", map[string]interface{}{"ok": false, "error": "not found"}, false},
		{"map ok", map[string]interface{}{"ok": true}, true},
		{"map without flag", map[string]interface{}{"count": 2}, true},
		{"plain value", "done", true},
		{"nil", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := agent.Succeeded(tt.result); got != tt.want {
				t.Errorf("Succeeded(%v) = %v, want %v", tt.result, got, tt.want)
			}
		})
	}
}
