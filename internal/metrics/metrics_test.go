package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetricsRegistry_Independent(t *testing.T) {
	// Two registries must not collide on registration.
	a := NewMetricsRegistry(nil)
	b := NewMetricsRegistry(func() int { return 3 })

	a.MissionsSubmittedTotal.Inc()
	if got := testutil.ToFloat64(a.MissionsSubmittedTotal); got != 1 {
		t.Errorf("Expected 1 submission on a, got %v", got)
	}
	if got := testutil.ToFloat64(b.MissionsSubmittedTotal); got != 0 {
		t.Errorf("Expected 0 submissions on b, got %v", got)
	}
	if got := testutil.ToFloat64(b.MissionsTracked); got != 3 {
		t.Errorf("Expected tracked gauge 3, got %v", got)
	}
}

func TestHandler_ExposesMissionMetrics(t *testing.T) {
	m := NewMetricsRegistry(func() int { return 1 })
	m.MissionTransitionsTotal.WithLabelValues("completed").Inc()
	m.ImagesGeneratedTotal.Add(2)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rr.Body)
	for _, want := range []string{
		`drone_mission_transitions_total{status="completed"} 1`,
		"drone_images_generated_total 2",
		"drone_missions_tracked 1",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("Expected exposition to contain %q", want)
		}
	}
}
