package store

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestSaveAndRecent(t *testing.T) {
	h := openTestHistory(t)

	first := Exchange{
		AskedAt:  time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Backend:  "granite",
		Persona:  "student",
		Question: "How do I start an emergency fund?",
		Answer:   "Save three months of expenses.",
		Income:   30000,
	}
	second := Exchange{
		Backend:  "watson",
		Persona:  "professional",
		Question: "Index funds or bonds?",
		Answer:   "Depends on horizon.",
	}

	if err := h.SaveExchange(first); err != nil {
		t.Fatalf("SaveExchange: %v", err)
	}
	if err := h.SaveExchange(second); err != nil {
		t.Fatalf("SaveExchange: %v", err)
	}

	got, err := h.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent returned %d exchanges, want 2", len(got))
	}

	// Most recent first
	if got[0].Question != second.Question {
		t.Fatalf("Recent[0].Question = %q, want newest exchange", got[0].Question)
	}
	if got[1].Backend != "granite" || got[1].Income != 30000 {
		t.Fatalf("Recent[1] = %+v, want first exchange", got[1])
	}
	if !got[1].AskedAt.Equal(first.AskedAt) {
		t.Fatalf("AskedAt = %v, want %v", got[1].AskedAt, first.AskedAt)
	}
	if got[0].AskedAt.IsZero() {
		t.Fatal("zero AskedAt was not defaulted on save")
	}
}

func TestRecentLimit(t *testing.T) {
	h := openTestHistory(t)

	for i := 0; i < 5; i++ {
		if err := h.SaveExchange(Exchange{Backend: "granite", Persona: "student", Question: "q", Answer: "a"}); err != nil {
			t.Fatalf("SaveExchange: %v", err)
		}
	}

	got, err := h.Recent(3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Recent(3) returned %d exchanges", len(got))
	}

	count, err := h.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 5 {
		t.Fatalf("Count = %d, want 5", count)
	}
}
