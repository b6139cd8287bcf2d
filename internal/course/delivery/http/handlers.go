package http

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"course-outline-planner/internal/model"
	"course-outline-planner/pkg/ics"
	"course-outline-planner/pkg/response"
)

// Upload godoc
// @Summary     Upload a course outline
// @Description Extracts the course and its dated events from an outline PDF and stores them.
// @Tags        Courses
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Course outline PDF"
// @Success     200 {object} courseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/upload-syllabus [POST]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUploadReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Upload(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Upload: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.Raw(c, output)
}

// List godoc
// @Summary     List courses
// @Tags        Courses
// @Produce     json
// @Success     200 {array} courseResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/courses [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.Raw(c, newCourseListResp(output))
}

// Detail godoc
// @Summary     Get a course
// @Tags        Courses
// @Produce     json
// @Param       id path string true "Course ID"
// @Success     200 {object} courseResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/courses/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.Raw(c, output)
}

// Events godoc
// @Summary     List a course's events
// @Tags        Courses
// @Produce     json
// @Param       id path string true "Course ID"
// @Success     200 {array} eventResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/courses/{id}/events [GET]
func (h *handler) Events(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Events(ctx, c.Param("id"))
	if err != nil {
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.Raw(c, newEventListResp(output))
}

// AllEvents godoc
// @Summary     List all events
// @Description Returns the events of every uploaded course.
// @Tags        Courses
// @Produce     json
// @Success     200 {array} eventResp
// @Router      /api/events [GET]
func (h *handler) AllEvents(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.AllEvents(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.AllEvents: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.Raw(c, newEventListResp(output))
}

// Sync godoc
// @Summary     Sync a course to Google Calendar
// @Description Creates or updates one calendar event per occurrence. Weekly events are expanded to the end of term.
// @Tags        Courses
// @Produce     json
// @Param       id path string true "Course ID"
// @Success     200 {object} syncResp
// @Failure     401 {object} response.Resp "Not connected"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/courses/{id}/sync-google [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	output, err := h.uc.Sync(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Sync: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.Raw(c, newSyncResp(output))
}

// ExportICS godoc
// @Summary     Download a course as iCalendar
// @Tags        Courses
// @Produce     text/calendar
// @Param       id path string true "Course ID"
// @Success     200 {string} string "iCalendar document"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/courses/{id}/calendar.ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ExportICS(ctx, c.Param("id"))
	if err != nil {
		response.HTTPError(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": output.FileName}))
	c.Data(http.StatusOK, ics.ContentType, []byte(output.Content))
}
