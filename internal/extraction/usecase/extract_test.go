package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"course-outline-planner/internal/extraction"
	"course-outline-planner/pkg/datemath"
	"course-outline-planner/pkg/llmprovider"
	"course-outline-planner/pkg/log"
)

type fakeProvider struct {
	text    string
	fileIDs []string
	err     error
	lastReq *llmprovider.Request
}

func (f *fakeProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  llmprovider.RoleAssistant,
			Parts: []llmprovider.Part{{Text: f.text}},
		},
		ProviderName: "fake",
		FileIDs:      f.fileIDs,
	}, nil
}

func (f *fakeProvider) Name() string  { return "fake" }
func (f *fakeProvider) Model() string { return "fake-model" }

func newTestUseCase(t *testing.T, p *fakeProvider) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("America/Toronto")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	manager := llmprovider.NewManager([]llmprovider.Provider{p}, llmprovider.Config{Purpose: llmprovider.PurposeExtraction}, nil, log.NewNop())
	return New(log.NewNop(), manager, parser)
}

const outlineJSON = `{
  "course_name": "Operating Systems",
  "course_code": "CS 350",
  "term": "Fall 2025",
  "events": [
    {"title": "Lecture", "type": "class", "date": "2025-09-02", "start_time": "15:30", "end_time": "16:50", "location": "MC 2065", "source_page": 2},
    {"title": "Midterm", "type": "midterm", "date": "2025-10-21", "start_time": null, "end_time": null, "location": null},
    {"title": "Reading week", "type": "holiday", "date": null},
    {"type": "quiz", "date": "2025-11-04", "start_time": "09:00", "source_page": "7"}
  ]
}`

func TestExtract(t *testing.T) {
	p := &fakeProvider{text: outlineJSON, fileIDs: []string{"file-abc"}}
	uc := newTestUseCase(t, p)

	course, err := uc.Extract(context.Background(), extraction.ExtractInput{FileName: "cs350.pdf", PDF: []byte("%PDF-1.7")})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if course.ID == "" {
		t.Error("course id should be set")
	}
	if course.Name != "Operating Systems" || course.Code != "CS 350" || course.Term != "Fall 2025" {
		t.Errorf("unexpected course header: %+v", course)
	}
	if course.RawOutlineFileID != "file-abc" {
		t.Errorf("RawOutlineFileID = %q", course.RawOutlineFileID)
	}
	if len(course.Events) != 3 {
		t.Fatalf("expected 3 events (dateless one dropped), got %d", len(course.Events))
	}

	loc, _ := time.LoadLocation("America/Toronto")

	lecture := course.Events[0]
	if !lecture.Start.Equal(time.Date(2025, 9, 2, 15, 30, 0, 0, loc)) {
		t.Errorf("lecture start = %v", lecture.Start)
	}
	if lecture.End == nil || !lecture.End.Equal(time.Date(2025, 9, 2, 16, 50, 0, 0, loc)) {
		t.Errorf("lecture end = %v", lecture.End)
	}
	if lecture.CourseID != course.ID {
		t.Errorf("event course id = %q, want %q", lecture.CourseID, course.ID)
	}
	if lecture.SourcePage == nil || *lecture.SourcePage != 2 {
		t.Errorf("source page = %v", lecture.SourcePage)
	}

	midterm := course.Events[1]
	if !midterm.Start.Equal(time.Date(2025, 10, 21, 0, 0, 0, 0, loc)) {
		t.Errorf("midterm should start at midnight, got %v", midterm.Start)
	}
	if midterm.End != nil {
		t.Errorf("midterm end should be nil, got %v", midterm.End)
	}

	quiz := course.Events[2]
	if quiz.Title != "Untitled" {
		t.Errorf("missing title should default to Untitled, got %q", quiz.Title)
	}
	if quiz.SourcePage == nil || *quiz.SourcePage != 7 {
		t.Errorf("string source page should be read, got %v", quiz.SourcePage)
	}

	if lecture.ID == midterm.ID {
		t.Error("event ids should be unique")
	}

	req := p.lastReq
	if req == nil {
		t.Fatal("provider was not called")
	}
	if !req.JSONOutput || req.MaxTokens != 4000 {
		t.Errorf("unexpected request options: json=%v max=%d", req.JSONOutput, req.MaxTokens)
	}
	parts := req.Messages[0].Parts
	if len(parts) != 2 || parts[0].File == nil || parts[0].File.MimeType != "application/pdf" || parts[0].File.Name != "cs350.pdf" {
		t.Errorf("expected PDF file part first, got %+v", parts)
	}
}

func TestExtract_MissingType(t *testing.T) {
	p := &fakeProvider{text: `{"events":[{"title":"Office hours","date":"2025-09-10"}]}`}
	uc := newTestUseCase(t, p)

	course, err := uc.Extract(context.Background(), extraction.ExtractInput{PDF: []byte("x")})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(course.Events) != 1 || course.Events[0].Type != "other" {
		t.Errorf("expected type other, got %+v", course.Events)
	}
	if course.Name != "" || course.RawOutlineFileID != "" {
		t.Errorf("expected empty optional fields, got %+v", course)
	}
}

func TestExtract_UnparseableEventDropped(t *testing.T) {
	p := &fakeProvider{text: `{"events":[{"title":"A","type":"class","date":"Sept 2"},{"title":"B","type":"lab","date":"2025-09-03","start_time":"25:99"},{"title":"C","type":"lab","date":"2025-09-04"}]}`}
	uc := newTestUseCase(t, p)

	course, err := uc.Extract(context.Background(), extraction.ExtractInput{PDF: []byte("x")})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(course.Events) != 1 || course.Events[0].Title != "C" {
		t.Errorf("expected only C to survive, got %+v", course.Events)
	}
}

func TestExtract_Errors(t *testing.T) {
	tests := []struct {
		name    string
		p       *fakeProvider
		pdf     []byte
		wantErr error
	}{
		{name: "empty pdf", p: &fakeProvider{text: "{}"}, pdf: nil, wantErr: extraction.ErrEmptyInput},
		{name: "empty output", p: &fakeProvider{text: "   "}, pdf: []byte("x"), wantErr: extraction.ErrEmptyOutput},
		{name: "invalid json", p: &fakeProvider{text: "not json at all"}, pdf: []byte("x"), wantErr: extraction.ErrParseOutput},
		{name: "provider failure", p: &fakeProvider{err: errors.New("boom")}, pdf: []byte("x"), wantErr: llmprovider.ErrAllProvidersFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(t, tt.p)
			_, err := uc.Extract(context.Background(), extraction.ExtractInput{PDF: tt.pdf})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestExtract_ParseErrorSnippet(t *testing.T) {
	raw := "{" + strings.Repeat("x", 900)
	uc := newTestUseCase(t, &fakeProvider{text: raw})

	_, err := uc.Extract(context.Background(), extraction.ExtractInput{PDF: []byte("x")})
	if !errors.Is(err, extraction.ErrParseOutput) {
		t.Fatalf("expected ErrParseOutput, got %v", err)
	}
	if strings.Contains(err.Error(), raw) {
		t.Error("error should carry only a snippet of the raw output")
	}
	if !strings.Contains(err.Error(), raw[:500]) {
		t.Error("error should carry the first 500 characters")
	}
}

func TestSanitizeJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "fenced json", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "prose around", in: "Here you go: {\"a\":1} hope it helps", want: `{"a":1}`},
		{name: "plain", in: `{"a":1}`, want: `{"a":1}`},
		{name: "no object", in: "nothing", want: "nothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeJSONResponse(tt.in); got != tt.want {
				t.Errorf("sanitizeJSONResponse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
