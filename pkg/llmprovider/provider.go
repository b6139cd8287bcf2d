package llmprovider

import (
	"context"
	"strings"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Normalized message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Tools             []Tool
	Temperature       float64
	MaxTokens         int
	// JSONOutput asks the provider for a single JSON object as output.
	JSONOutput bool
}

// Message represents a conversation message
type Message struct {
	Role  string // RoleUser, RoleAssistant, RoleTool
	Parts []Part
}

// Part represents a message part. Exactly one field is set.
type Part struct {
	Text             string
	File             *File
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

// File is a document attached to a user message.
type File struct {
	Name     string
	MimeType string
	Data     []byte
}

// Tool represents a function declaration
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]interface{} // JSON Schema
}

// FunctionCall represents a model's function call request.
// ID pairs the call with its FunctionResponse. RawArgs keeps the arguments
// exactly as the provider sent them; Args is nil when they are not a JSON object.
type FunctionCall struct {
	ID      string
	Name    string
	Args    map[string]interface{}
	RawArgs string
}

// FunctionResponse represents a function execution result
type FunctionResponse struct {
	ID       string
	Name     string
	Response interface{}
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
	// FileIDs lists provider-side ids of files uploaded for this request.
	FileIDs []string
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text concatenates the text parts of the message.
func (m Message) Text() string {
	var sb strings.Builder
	for _, p := range m.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// FunctionCalls returns the function calls of the message in order.
func (m Message) FunctionCalls() []FunctionCall {
	var calls []FunctionCall
	for _, p := range m.Parts {
		if p.FunctionCall != nil {
			calls = append(calls, *p.FunctionCall)
		}
	}
	return calls
}
