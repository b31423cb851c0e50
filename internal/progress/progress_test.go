package progress

import (
	"testing"

	"github.com/petrijr/guidepost/pkg/api"
)

func TestMemoryStoreSeen(t *testing.T) {
	s := NewMemoryStore()

	seen, err := s.Seen("onboarding", "step-0")
	if err != nil {
		t.Fatalf("Seen failed: %v", err)
	}
	if seen {
		t.Fatal("empty store should report unseen")
	}

	if err := s.MarkShown("onboarding", "run-1", "step-0"); err != nil {
		t.Fatalf("MarkShown failed: %v", err)
	}

	seen, err = s.Seen("onboarding", "step-0")
	if err != nil {
		t.Fatalf("Seen failed: %v", err)
	}
	if !seen {
		t.Fatal("shown step should be seen")
	}

	// Same step id in another tour stays unseen.
	seen, _ = s.Seen("other", "step-0")
	if seen {
		t.Fatal("seen must be scoped to the tour")
	}
}

func TestMemoryStoreListFilters(t *testing.T) {
	s := NewMemoryStore()

	mustMark := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("mark failed: %v", err)
		}
	}
	mustMark(s.MarkShown("a", "r1", "step-0"))
	mustMark(s.MarkCompleted("a", "r1", "step-0"))
	mustMark(s.MarkShown("a", "r2", "step-1"))
	mustMark(s.MarkShown("b", "r3", "step-0"))

	all, err := s.List(api.ProgressFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("len(all) = %d, want 4", len(all))
	}

	byTour, _ := s.List(api.ProgressFilter{Tour: "a"})
	if len(byTour) != 3 {
		t.Fatalf("tour filter returned %d records, want 3", len(byTour))
	}

	byRun, _ := s.List(api.ProgressFilter{Tour: "a", Run: "r2"})
	if len(byRun) != 1 || byRun[0].StepID != "step-1" {
		t.Fatalf("run filter returned %+v", byRun)
	}

	completed := true
	done, _ := s.List(api.ProgressFilter{Completed: &completed})
	if len(done) != 1 || !done[0].Completed || done[0].StepID != "step-0" {
		t.Fatalf("completed filter returned %+v", done)
	}
}

func TestMemoryStoreListPreservesOrder(t *testing.T) {
	s := NewMemoryStore()
	for _, id := range []string{"step-0", "step-1", "step-2"} {
		if err := s.MarkShown("a", "r", id); err != nil {
			t.Fatalf("MarkShown failed: %v", err)
		}
	}

	out, err := s.List(api.ProgressFilter{Tour: "a"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for i, r := range out {
		want := []string{"step-0", "step-1", "step-2"}[i]
		if r.StepID != want {
			t.Fatalf("record %d = %q, want %q", i, r.StepID, want)
		}
	}
}
