package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"course-outline-planner/internal/middleware"
	"course-outline-planner/internal/model"
	"course-outline-planner/pkg/response"
)

const sessionCookieMaxAge = 30 * 24 * 60 * 60

// URL godoc
// @Summary     Get the Google consent URL
// @Tags        Auth
// @Produce     json
// @Success     200 {object} urlResp
// @Failure     500 {object} response.Resp "Client secrets missing"
// @Router      /api/auth/google/url [GET]
func (h *handler) URL(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	url, err := h.uc.AuthURL(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.AuthURL: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.Raw(c, urlResp{URL: url})
}

// Callback godoc
// @Summary     OAuth callback
// @Description Exchanges the authorization code, stores the credential and redirects to the frontend.
// @Tags        Auth
// @Param       code  query string true "Authorization code"
// @Param       state query string true "OAuth state"
// @Success     307
// @Failure     400 {object} response.Resp "Invalid state or code"
// @Failure     500 {object} response.Resp "Client secrets missing"
// @Router      /api/auth/google/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	var req callbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Callback(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Callback: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	// Pin the session that started the flow.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, output.SessionID, sessionCookieMaxAge, "/", "", h.secureCookie, true)
	c.Redirect(http.StatusTemporaryRedirect, output.RedirectURL)
}

// Status godoc
// @Summary     Google connection status
// @Tags        Auth
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/auth/status [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	output, err := h.uc.Status(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Status: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.Raw(c, output)
}

// Logout godoc
// @Summary     Disconnect Google Calendar
// @Tags        Auth
// @Produce     json
// @Success     200 {object} logoutResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	if err := h.uc.Logout(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.Raw(c, logoutResp{OK: true})
}
