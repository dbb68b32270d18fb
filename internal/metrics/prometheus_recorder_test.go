package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveStageDuration("unpack", 150*time.Millisecond)
	pr.IncStageResult("unpack", ResultSuccess)
	pr.ObserveTransformDuration("strip_comments", time.Millisecond)
	pr.AddTransformMatches("strip_comments", 3)
	pr.AddTransformMatches("strip_comments", 2)
	pr.ObserveRunDuration(500 * time.Millisecond)
	pr.IncRunOutcome(OutcomeSuccess)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(mfs) == 0 {
		t.Fatalf("expected metrics, got none")
	}

	if got := testutil.ToFloat64(pr.transformMatches.WithLabelValues("strip_comments")); got != 5 {
		t.Errorf("transform matches = %v, want 5", got)
	}
	if got := testutil.ToFloat64(pr.runOutcome.WithLabelValues("success")); got != 1 {
		t.Errorf("run outcome = %v, want 1", got)
	}
}

func TestNilPrometheusRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.ObserveStageDuration("pack", time.Second)
	pr.IncStageResult("pack", ResultFailed)
	pr.AddTransformMatches("x", 1)
	pr.IncRunOutcome(OutcomeFailed)
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.AddTransformMatches("resolve_revisions", 4)

	path := filepath.Join(t.TempDir(), "docxclean.prom")
	if err := WriteTextfile(path, reg); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), `docxclean_transform_matches_total{transform="resolve_revisions"} 4`) {
		t.Errorf("textfile missing counter:\n%s", data)
	}
}
