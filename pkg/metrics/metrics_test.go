package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func findFamily(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("%s metric not found", name)
	return nil
}

func TestRecordSync_CountsByStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordSync("created")
	c.RecordSync("created")
	c.RecordSync("error")

	mf := findFamily(t, reg, "course_planner_sync_results_total")
	if len(mf.GetMetric()) != 2 {
		t.Fatalf("expected 2 label combinations, got %d", len(mf.GetMetric()))
	}
	for _, m := range mf.GetMetric() {
		label := m.GetLabel()[0].GetValue()
		val := m.GetCounter().GetValue()
		switch label {
		case "created":
			if val != 2 {
				t.Errorf("created = %v, want 2", val)
			}
		case "error":
			if val != 1 {
				t.Errorf("error = %v, want 1", val)
			}
		default:
			t.Errorf("unexpected label %q", label)
		}
	}
}

func TestRecordLLMAndToolCalls(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordLLMCall("chat", "ok")
	c.RecordToolCall("delete_calendar_event", "error")

	if got := findFamily(t, reg, "course_planner_llm_calls_total").GetMetric()[0].GetCounter().GetValue(); got != 1 {
		t.Errorf("llm_calls_total = %v, want 1", got)
	}
	if got := findFamily(t, reg, "course_planner_tool_calls_total").GetMetric()[0].GetCounter().GetValue(); got != 1 {
		t.Errorf("tool_calls_total = %v, want 1", got)
	}
}

func TestObserveHTTPRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveHTTPRequest(http.MethodGet, "/api/courses", 200, 150*time.Millisecond)

	mf := findFamily(t, reg, "course_planner_http_request_duration_seconds")
	h := mf.GetMetric()[0].GetHistogram()
	if h.GetSampleCount() != 1 {
		t.Errorf("sample count = %d, want 1", h.GetSampleCount())
	}
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordSync("updated")

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "course_planner_sync_results_total") {
		t.Errorf("response does not contain sync metric:\n%s", body)
	}
}
