package analytics

import (
	"strings"
	"testing"
)

func TestCollectorCounts(t *testing.T) {
	c := NewCollector()
	c.Completion("hiteshSir")
	c.Completion("hiteshSir")
	c.Completion("piyushSir")
	c.Failure()
	c.Denied()
	c.Denied()

	u := c.Snapshot()
	if u.Total != 6 {
		t.Fatalf("total = %d, want 6", u.Total)
	}
	if u.Completed != 3 || u.Failed != 1 || u.RateLimited != 2 {
		t.Fatalf("unexpected counters: %+v", u)
	}
	if u.ByPersona["hiteshSir"] != 2 || u.ByPersona["piyushSir"] != 1 {
		t.Fatalf("unexpected per-persona counts: %+v", u.ByPersona)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	c := NewCollector()
	c.Completion("hiteshSir")
	u := c.Snapshot()
	u.ByPersona["hiteshSir"] = 99
	if c.Snapshot().ByPersona["hiteshSir"] != 1 {
		t.Fatalf("snapshot leaked internal map")
	}
}

func TestSummaryMentionsPersonas(t *testing.T) {
	c := NewCollector()
	c.Completion("piyushSir")
	s := c.Summary()
	if !strings.Contains(s, "piyushSir: 1") || !strings.Contains(s, "Requests: 1") {
		t.Fatalf("unexpected summary:\n%s", s)
	}
}
