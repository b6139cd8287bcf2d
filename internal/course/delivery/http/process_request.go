package http

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"course-outline-planner/internal/course"
)

const pdfContentType = "application/pdf"

// processUploadReq reads the multipart "file" part and checks it is a PDF.
func (h *handler) processUploadReq(c *gin.Context) (course.UploadInput, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return course.UploadInput{}, errFileTooLarge
		}
		return course.UploadInput{}, errMissingFile
	}

	mediaType, _, err := mime.ParseMediaType(fh.Header.Get("Content-Type"))
	if err != nil || mediaType != pdfContentType {
		return course.UploadInput{}, errNotPDF
	}

	f, err := fh.Open()
	if err != nil {
		return course.UploadInput{}, errReadUpload
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return course.UploadInput{}, errReadUpload
	}

	return course.UploadInput{FileName: fh.Filename, PDF: data}, nil
}
