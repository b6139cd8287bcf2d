package http

import "course-outline-planner/internal/agent"

// --- Request DTOs ---

type chatMessageReq struct {
	Role    string `json:"role"    binding:"required"`
	Content string `json:"content"`
}

type chatReq struct {
	Messages []chatMessageReq `json:"messages" binding:"required,min=1,dive"`
}

func (r chatReq) toInput() []agent.Message {
	messages := make([]agent.Message, len(r.Messages))
	for i, m := range r.Messages {
		messages[i] = agent.Message{Role: m.Role, Content: m.Content}
	}
	return messages
}

// --- Response DTOs ---

type chatResp struct {
	Reply string `json:"reply"`
}
