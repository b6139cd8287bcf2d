package gemini

// Request is a generation request in client terms.
type Request struct {
	SystemInstruction *Content
	Messages          []Content
	Tools             []Tool
	Temperature       float64
	MaxTokens         int
	// ResponseMIMEType asks for a constrained output format, e.g. MimeTypeJSON.
	ResponseMIMEType string
}

// Content is one turn of the conversation.
type Content struct {
	Role  string
	Parts []Part
}

// Part holds exactly one of text, inline data, a function call or a function response.
type Part struct {
	Text             string
	InlineData       *InlineData
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

// InlineData is a binary attachment sent with the request, e.g. a PDF.
type InlineData struct {
	MimeType string
	Data     []byte
}

// FunctionCall represents a model's request to call a function.
type FunctionCall struct {
	Name string
	Args map[string]interface{}
}

// FunctionResponse represents the result of a function call executed by the client.
type FunctionResponse struct {
	Name     string
	Response interface{}
}

// Tool is a function declaration offered to the model.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]interface{}
}

// Response is the first candidate of a generation response.
type Response struct {
	Content      Content
	FinishReason string
	Usage        *Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
