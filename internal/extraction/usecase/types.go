package usecase

import (
	"strconv"
	"strings"
)

// outlineDoc is the JSON document the model returns.
type outlineDoc struct {
	CourseName *string      `json:"course_name"`
	CourseCode *string      `json:"course_code"`
	Term       *string      `json:"term"`
	Events     []outlineEvt `json:"events"`
}

type outlineEvt struct {
	Title      *string `json:"title"`
	Type       *string `json:"type"`
	Date       *string `json:"date"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	Location   *string `json:"location"`
	SourcePage pageRef `json:"source_page"`
}

// pageRef accepts a page as a number or a numeric string. Anything else is ignored.
type pageRef struct {
	n *int
}

func (p *pageRef) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if n, err := strconv.Atoi(s); err == nil {
		p.n = &n
	}
	return nil
}
