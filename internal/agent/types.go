package agent

import (
	"context"

	"course-outline-planner/pkg/llmprovider"
)

// Message is one turn of the client's chat transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Tool represents an agent tool that can be called by LLM.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for LLM).
	Description() string

	// Parameters returns JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool with given parameters.
	Execute(ctx context.Context, params map[string]interface{}) (interface{}, error)
}

// Reporter is implemented by tool results that carry an in-band success flag.
type Reporter interface {
	Succeeded() bool
}

// Succeeded reports whether a tool result is a success. Reporters and
// map results with an "ok" key decide for themselves; anything else counts
// as success.
func Succeeded(result interface{}) bool {
	switch r := result.(type) {
	case Reporter:
		return r.Succeeded()
	case map[string]interface{}:
		if ok, found := r["ok"].(bool); found {
			return ok
		}
	}
	return true
}

// ToolRegistry manages available tools. Tools are kept in registration
// order so the declarations sent to the model are stable.
type ToolRegistry struct {
	tools map[string]Tool
	order []string
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry. Registering a name twice replaces
// the earlier tool in place.
func (r *ToolRegistry) Register(tool Tool) {
	name := tool.Name()
	if _, ok := r.tools[name]; !ok {
		r.order = append(r.order, name)
	}
	r.tools[name] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// ToFunctionDefinitions converts tools to LLM function calling format.
func (r *ToolRegistry) ToFunctionDefinitions() []llmprovider.Tool {
	tools := make([]llmprovider.Tool, 0, len(r.order))
	for _, tool := range r.List() {
		tools = append(tools, llmprovider.Tool{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return tools
}
