package usecase

import (
	"strconv"
	"testing"
	"time"

	"course-outline-planner/internal/model"
)

func TestPlan_WeeklyExpansion(t *testing.T) {
	loc := toronto(t)
	uc := newTestUseCase(t, &fakeProvider{})

	course := model.Course{
		ID: "c1",
		Events: []model.Event{
			{ID: "lec", CourseID: "c1", Title: "Lecture", Type: "class", Start: time.Date(2025, 9, 2, 15, 30, 0, 0, loc)},
			{ID: "fin", CourseID: "c1", Title: "Final", Type: "final", Start: time.Date(2025, 12, 2, 0, 0, 0, 0, loc)},
		},
	}

	occ := uc.Plan(course)

	// 13 weekly lectures (Sep 2 .. Nov 25) plus the final.
	if len(occ) != 14 {
		t.Fatalf("expected 14 occurrences, got %d", len(occ))
	}

	for i := 0; i < 13; i++ {
		o := occ[i]
		wantStart := time.Date(2025, 9, 2+7*i, 15, 30, 0, 0, loc)
		if o.Tag != "lec_wk"+strconv.Itoa(i) {
			t.Errorf("occurrence %d tag = %q", i, o.Tag)
		}
		if !o.Start.Equal(wantStart) {
			t.Errorf("occurrence %d start = %v, want %v", i, o.Start, wantStart)
		}
		if o.End.Sub(o.Start) != time.Hour {
			t.Errorf("occurrence %d should last one hour, got %v", i, o.End.Sub(o.Start))
		}
		if h, m := o.Start.In(loc).Hour(), o.Start.In(loc).Minute(); h != 15 || m != 30 {
			t.Errorf("occurrence %d wall clock drifted to %02d:%02d", i, h, m)
		}
	}

	last := occ[12].Start
	if last.After(course.Events[1].Start) {
		t.Errorf("last occurrence %v is after the bound", last)
	}
	if occ[13].Tag != "fin" {
		t.Errorf("final should keep its id as tag, got %q", occ[13].Tag)
	}
}

func TestPlan_PreservesDuration(t *testing.T) {
	loc := toronto(t)
	uc := newTestUseCase(t, &fakeProvider{})

	start := time.Date(2025, 9, 3, 9, 0, 0, 0, loc)
	course := model.Course{ID: "c1", Events: []model.Event{
		{ID: "lab", Type: "Lab", Start: start, End: ptr(start.Add(170 * time.Minute))},
		{ID: "exam", Type: "Final Exam", Start: time.Date(2025, 9, 17, 9, 0, 0, 0, loc)},
	}}

	occ := uc.Plan(course)
	if len(occ) != 4 {
		t.Fatalf("expected 3 labs and 1 exam, got %d", len(occ))
	}
	for _, o := range occ[:3] {
		if o.End.Sub(o.Start) != 170*time.Minute {
			t.Errorf("%s duration = %v", o.Tag, o.End.Sub(o.Start))
		}
	}
}

func TestPlan_NoEvents(t *testing.T) {
	uc := newTestUseCase(t, &fakeProvider{})
	if occ := uc.Plan(model.Course{ID: "empty"}); len(occ) != 0 {
		t.Errorf("expected no occurrences, got %d", len(occ))
	}
}

func TestTermUpperBound(t *testing.T) {
	loc := toronto(t)
	d := func(m time.Month, day int) time.Time { return time.Date(2025, m, day, 10, 0, 0, 0, loc) }

	tests := []struct {
		name   string
		events []model.Event
		want   time.Time
		wantOK bool
	}{
		{name: "no events", wantOK: false},
		{
			name: "latest final or exam wins",
			events: []model.Event{
				{Type: "final", Start: d(12, 5)},
				{Type: "EXAM review", Start: d(12, 10)},
				{Type: "quiz", Start: d(12, 20)},
			},
			want: d(12, 10), wantOK: true,
		},
		{
			name: "latest event of any type",
			events: []model.Event{
				{Type: "class", Start: d(9, 2)},
				{Type: "midterm", Start: d(10, 21)},
			},
			want: d(10, 21), wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := termUpperBound(tt.events, DefaultTermWeeks)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("bound = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsRecurring(t *testing.T) {
	tests := map[string]bool{
		"class":        true,
		"Lab":          true,
		"TUTORIAL":     true,
		"lab_section":  true,
		"midterm":      false,
		"final":        false,
		"other":        false,
		"":             false,
		"study_block":  false,
		"classroom ex": true,
	}
	for in, want := range tests {
		if got := isRecurring(in); got != want {
			t.Errorf("isRecurring(%q) = %v, want %v", in, got, want)
		}
	}
}
