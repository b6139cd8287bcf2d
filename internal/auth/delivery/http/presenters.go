package http

import "course-outline-planner/internal/auth"

// --- Request DTOs ---

type callbackReq struct {
	Code  string `form:"code"`
	State string `form:"state"`
}

func (r callbackReq) toInput() auth.CallbackInput {
	return auth.CallbackInput{State: r.State, Code: r.Code}
}

// --- Response DTOs ---

type urlResp struct {
	URL string `json:"url"`
}

type statusResp = auth.StatusOutput

type logoutResp struct {
	OK bool `json:"ok"`
}
