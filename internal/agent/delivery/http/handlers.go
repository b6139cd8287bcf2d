package http

import (
	"github.com/gin-gonic/gin"

	"course-outline-planner/internal/model"
	"course-outline-planner/pkg/response"
)

// Calendar godoc
// @Summary     Chat with the calendar assistant
// @Description Runs one assistant turn over the transcript. The assistant may list, create, move or delete events in the connected Google Calendar.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat transcript"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Not connected"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat/calendar [POST]
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	reply, err := h.uc.Chat(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.Raw(c, chatResp{Reply: reply})
}
