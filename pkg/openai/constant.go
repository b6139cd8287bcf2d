package openai

import "time"

const (
	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "gpt-4.1-mini"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 120 * time.Second

	// PurposeUserData marks uploaded files used as model input.
	PurposeUserData = "user_data"

	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"

	ResponseFormatJSONObject = "json_object"
)
