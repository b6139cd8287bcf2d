package openai

import "context"

// IOpenAI defines the interface for OpenAI-compatible chat completion APIs.
// DeepSeek and other compatible vendors are reached through BaseURL.
type IOpenAI interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	UploadFile(ctx context.Context, filename string, data []byte, purpose string) (*File, error)
	Model() string
}
