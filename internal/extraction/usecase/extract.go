package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"course-outline-planner/internal/extraction"
	"course-outline-planner/internal/model"
	"course-outline-planner/pkg/llmprovider"
)

// Extract sends the outline to the extraction chain and maps the JSON answer to a Course.
func (uc *implUseCase) Extract(ctx context.Context, input extraction.ExtractInput) (model.Course, error) {
	if len(input.PDF) == 0 {
		return model.Course{}, extraction.ErrEmptyInput
	}

	fileName := input.FileName
	if fileName == "" {
		fileName = defaultFileName
	}

	uc.l.Infof(ctx, "%s: file=%s size=%d", LogPrefixExtract, fileName, len(input.PDF))

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Parts: []llmprovider.Part{{Text: SystemPrompt}},
		},
		Messages: []llmprovider.Message{
			{
				Role: llmprovider.RoleUser,
				Parts: []llmprovider.Part{
					{File: &llmprovider.File{Name: fileName, MimeType: pdfMimeType, Data: input.PDF}},
					{Text: UserPrompt},
				},
			},
		},
		MaxTokens:  maxOutputTokens,
		JSONOutput: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: llm.GenerateContent: %v", LogPrefixExtract, err)
		return model.Course{}, fmt.Errorf("extraction request failed: %w", err)
	}

	raw := strings.TrimSpace(resp.Content.Text())
	if raw == "" {
		return model.Course{}, extraction.ErrEmptyOutput
	}

	cleaned := sanitizeJSONResponse(raw)

	var doc outlineDoc
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		uc.l.Errorf(ctx, "%s: failed to parse model output: %v", LogPrefixExtract, err)
		return model.Course{}, fmt.Errorf("%w: %v\nRaw: %s", extraction.ErrParseOutput, err, snippet(cleaned, rawSnippetLen))
	}

	course := model.Course{
		ID:     uuid.NewString(),
		Name:   deref(doc.CourseName),
		Code:   deref(doc.CourseCode),
		Term:   deref(doc.Term),
		Events: []model.Event{},
	}
	if len(resp.FileIDs) > 0 {
		course.RawOutlineFileID = resp.FileIDs[0]
	}

	for i, ev := range doc.Events {
		event, ok, err := uc.toEvent(course.ID, ev)
		if err != nil {
			uc.l.Warnf(ctx, "%s: dropping event %d %q: %v", LogPrefixExtract, i, deref(ev.Title), err)
			continue
		}
		if !ok {
			continue
		}
		course.Events = append(course.Events, event)
	}

	uc.l.Infof(ctx, "%s: course=%s events=%d/%d provider=%s", LogPrefixExtract, course.ID, len(course.Events), len(doc.Events), resp.ProviderName)

	return course, nil
}
