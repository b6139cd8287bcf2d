package usecase

const (
	LogPrefixExtract = "internal.extraction.usecase.Extract"

	maxOutputTokens = 4000
	rawSnippetLen   = 500

	defaultFileName = "outline.pdf"
	pdfMimeType     = "application/pdf"
	untitled        = "Untitled"
)

// SystemPrompt fixes the JSON document the model must return.
const SystemPrompt = `You read university course outline PDFs and extract ONLY the information needed
for a student calendar app.

Return ONLY a single valid JSON object with this schema:

{
  "course_name": string or null,
  "course_code": string or null,
  "term": string or null,
  "events": [
    {
      "title": string,
      "type": "class" | "lab" | "tutorial" | "midterm" | "final" | "quiz" | "test",
      "date": "YYYY-MM-DD",
      "start_time": "HH:MM" or null,
      "end_time": "HH:MM" or null,
      "location": string or null,
      "source_page": integer or null
    }
  ]
}

Interpretation rules:
- Focus ONLY on events students want in a personal calendar (weekly classes/labs/tutorials; assessments).
- Do NOT include administrative deadlines or generic holidays unless tied to an exam/quiz.
- Weekly patterns: create ONE representative event (first applicable date), not every week.
- Assessments: include explicit date/time; use null if time is missing; location null if TBA.
- Never invent dates/times/rooms. Omit events if details are not explicit.
- If name/code/term are not clear, set them to null.

Formatting: return only the JSON object; no notes or markdown.`

// UserPrompt accompanies the PDF in the user message.
const UserPrompt = `Read this course outline and extract ONLY:

- course_name, course_code, term
- weekly class / lab / tutorial time slots, one representative event each
- midterms, finals, quizzes, and tests as one-off events

Use the JSON schema described in the instructions.
Do not include administrative deadlines or generic holidays.
Return ONLY the JSON object.`
