package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"

	"course-outline-planner/pkg/gemini"
	"course-outline-planner/pkg/openai"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Tools:             convertToGeminiTools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	if req.JSONOutput {
		geminiReq.ResponseMIMEType = gemini.MimeTypeJSON
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.File != nil {
			parts[i].InlineData = &gemini.InlineData{
				MimeType: p.File.MimeType,
				Data:     p.File.Data,
			}
		}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &gemini.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &gemini.FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return &gemini.Content{Role: geminiRole(msg.Role), Parts: parts}
}

func geminiRole(role string) string {
	switch role {
	case RoleAssistant:
		return gemini.RoleModel
	case RoleTool:
		return gemini.RoleFunction
	default:
		return role
	}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

func convertToGeminiTools(tools []Tool) []gemini.Tool {
	geminiTools := make([]gemini.Tool, len(tools))
	for i, t := range tools {
		geminiTools[i] = gemini.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return geminiTools
}

// Gemini has no call ids; one is derived from the position so responses can be paired.
func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				ID:   fmt.Sprintf("%s_%d", p.FunctionCall.Name, i),
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
	}
	return Message{Role: RoleAssistant, Parts: parts}
}

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface.
// The same adapter serves every OpenAI-compatible vendor; name tells them apart.
type OpenAIAdapter struct {
	client openai.IOpenAI
	name   string
}

// NewOpenAIAdapter creates a new adapter for an OpenAI-compatible client
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages, fileIDs, err := a.convertToOpenAIMessages(ctx, req.Messages)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}

	oaReq := &openai.Request{
		Messages:    messages,
		Temperature: req.Temperature,
	}

	// Add system instruction as first message if present
	if req.SystemInstruction != nil {
		if text := req.SystemInstruction.Text(); text != "" {
			systemMsg := openai.Message{Role: openai.RoleSystem, Content: text}
			oaReq.Messages = append([]openai.Message{systemMsg}, oaReq.Messages...)
		}
	}

	if len(req.Tools) > 0 {
		oaReq.Tools = convertToOpenAITools(req.Tools)
	}
	if req.JSONOutput {
		oaReq.ResponseFormat = &openai.ResponseFormat{Type: openai.ResponseFormatJSONObject}
	}
	if req.MaxTokens > 0 {
		// OpenAI reasoning models reject max_tokens
		if a.name == "openai" {
			oaReq.MaxCompletionTokens = req.MaxTokens
		} else {
			oaReq.MaxTokens = req.MaxTokens
		}
	}

	resp, err := a.client.GenerateContent(ctx, oaReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}

	out := convertFromOpenAIResponse(resp)
	out.ProviderName = a.name
	if out.ModelName == "" {
		out.ModelName = a.client.Model()
	}
	out.FileIDs = fileIDs
	return out, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for OpenAI
func (a *OpenAIAdapter) convertToOpenAIMessages(ctx context.Context, msgs []Message) ([]openai.Message, []string, error) {
	messages := make([]openai.Message, 0, len(msgs))
	var fileIDs []string

	for _, msg := range msgs {
		switch msg.Role {
		case RoleTool:
			// one tool message per result, each bound to its call id
			for _, p := range msg.Parts {
				if p.FunctionResponse == nil {
					continue
				}
				responseJSON, _ := json.Marshal(p.FunctionResponse.Response)
				messages = append(messages, openai.Message{
					Role:       openai.RoleTool,
					ToolCallID: p.FunctionResponse.ID,
					Name:       p.FunctionResponse.Name,
					Content:    string(responseJSON),
				})
			}

		case RoleAssistant:
			oaMsg := openai.Message{Role: openai.RoleAssistant}
			if text := msg.Text(); text != "" {
				oaMsg.Content = text
			}
			for _, fc := range msg.FunctionCalls() {
				oaMsg.ToolCalls = append(oaMsg.ToolCalls, openai.ToolCall{
					ID:   fc.ID,
					Type: "function",
					Function: openai.FunctionCall{
						Name:      fc.Name,
						Arguments: callArguments(fc),
					},
				})
			}
			messages = append(messages, oaMsg)

		default:
			if !hasFile(msg) {
				messages = append(messages, openai.Message{Role: msg.Role, Content: msg.Text()})
				continue
			}

			var parts []openai.ContentPart
			for _, p := range msg.Parts {
				if p.File != nil {
					file, err := a.client.UploadFile(ctx, p.File.Name, p.File.Data, openai.PurposeUserData)
					if err != nil {
						return nil, nil, fmt.Errorf("upload %s: %w", p.File.Name, err)
					}
					fileIDs = append(fileIDs, file.ID)
					parts = append(parts, openai.ContentPart{Type: "file", File: &openai.FileRef{FileID: file.ID}})
					continue
				}
				if p.Text != "" {
					parts = append(parts, openai.ContentPart{Type: "text", Text: p.Text})
				}
			}
			messages = append(messages, openai.Message{Role: msg.Role, Content: parts})
		}
	}
	return messages, fileIDs, nil
}

// callArguments echoes the provider's own arguments string when there is one.
func callArguments(fc FunctionCall) string {
	if fc.RawArgs != "" {
		return fc.RawArgs
	}
	argsJSON, _ := json.Marshal(fc.Args)
	return string(argsJSON)
}

func hasFile(msg Message) bool {
	for _, p := range msg.Parts {
		if p.File != nil {
			return true
		}
	}
	return false
}

func convertToOpenAITools(tools []Tool) []openai.Tool {
	oaTools := make([]openai.Tool, len(tools))
	for i, t := range tools {
		oaTools[i] = openai.Tool{
			Type: "function",
			Function: openai.FunctionDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return oaTools
}

func convertFromOpenAIResponse(resp *openai.Response) *Response {
	out := &Response{
		Content: Message{
			Role:  RoleAssistant,
			Parts: []Part{},
		},
		ModelName: resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) == 0 {
		return out
	}

	choice := resp.Choices[0]

	if choice.Message.Content != "" {
		out.Content.Parts = append(out.Content.Parts, Part{Text: choice.Message.Content})
	}

	for _, tc := range choice.Message.ToolCalls {
		var args map[string]interface{}
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			args = nil
		}
		out.Content.Parts = append(out.Content.Parts, Part{
			FunctionCall: &FunctionCall{
				ID:      tc.ID,
				Name:    tc.Function.Name,
				Args:    args,
				RawArgs: tc.Function.Arguments,
			},
		})
	}

	return out
}
