package usecase

import (
	"context"
	"fmt"
	"strings"

	"course-outline-planner/internal/course"
	"course-outline-planner/pkg/ics"
)

// ExportICS renders the same occurrences sync would write.
func (uc *implUseCase) ExportICS(ctx context.Context, id string) (course.ExportICSOutput, error) {
	c, err := uc.Detail(ctx, id)
	if err != nil {
		return course.ExportICSOutput{}, err
	}

	occurrences := uc.calSync.Plan(c)
	entries := make([]ics.Entry, 0, len(occurrences))
	for _, occ := range occurrences {
		entries = append(entries, ics.Entry{
			UID:         occ.Tag + "@" + icsUIDDomain,
			Summary:     occ.Title,
			Description: fmt.Sprintf("%s (Course ID: %s)", strings.ToUpper(occ.Type), occ.CourseID),
			Location:    occ.Location,
			Start:       occ.Start,
			End:         occ.End,
		})
	}

	name := c.Name
	if c.Code != "" {
		name = c.Code + " " + c.Name
	}

	content := ics.Render(ics.Calendar{
		Name:     strings.TrimSpace(name),
		Timezone: uc.timezone,
		Entries:  entries,
	}, uc.now())

	uc.l.Infof(ctx, "%s: exported %d entries for course %s", LogPrefixExportICS, len(entries), id)
	return course.ExportICSOutput{
		FileName: icsFileName(c.Code, c.Name),
		Content:  content,
	}, nil
}

// icsFileName builds a filesystem-safe name from the course code or name.
func icsFileName(code, name string) string {
	base := code
	if base == "" {
		base = name
	}

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}

	out := strings.Trim(b.String(), "-")
	if out == "" {
		out = icsDefaultName
	}
	return out + icsFileExt
}
