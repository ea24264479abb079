package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRecorder_LogAndEvents(t *testing.T) {
	dir := t.TempDir()
	r := NewRecorder(dir)

	now := time.Now().Truncate(time.Millisecond)

	events := []Event{
		{Timestamp: now, Type: EventCreate, Project: "alpha"},
		{Timestamp: now.Add(time.Second), Type: EventEnvironment, Project: "alpha", Details: "python3.12"},
		{Timestamp: now.Add(2 * time.Second), Type: EventNavigate, Project: "alpha", Details: "existing"},
		{Timestamp: now.Add(3 * time.Second), Type: EventDelete, Project: "alpha"},
	}

	for _, e := range events {
		if err := r.Log(e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	result, err := r.Events("alpha")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}

	if len(result) != len(events) {
		t.Fatalf("got %d events, want %d", len(result), len(events))
	}

	for i, e := range result {
		if e.Type != events[i].Type {
			t.Errorf("event %d: type = %q, want %q", i, e.Type, events[i].Type)
		}
		if e.Details != events[i].Details {
			t.Errorf("event %d: details = %q, want %q", i, e.Details, events[i].Details)
		}
		if !e.Timestamp.Equal(events[i].Timestamp) {
			t.Errorf("event %d: timestamp = %v, want %v", i, e.Timestamp, events[i].Timestamp)
		}
	}
}

func TestRecorder_EventsEmpty(t *testing.T) {
	r := NewRecorder(t.TempDir())

	result, err := r.Events("")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("got %d events, want 0", len(result))
	}
}

func TestRecorder_FilterByProject(t *testing.T) {
	r := NewRecorder(t.TempDir())

	for _, name := range []string{"alpha", "beta", "alpha"} {
		if err := r.LogEvent(EventCreate, name, ""); err != nil {
			t.Fatalf("LogEvent failed: %v", err)
		}
	}

	all, _ := r.Events("")
	if len(all) != 3 {
		t.Errorf("all events = %d, want 3", len(all))
	}

	beta, _ := r.Events("beta")
	if len(beta) != 1 || beta[0].Project != "beta" {
		t.Errorf("beta events = %+v", beta)
	}
}

func TestRecorder_LogEventSetsTimestamp(t *testing.T) {
	r := NewRecorder(t.TempDir())
	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return fixed }

	if err := r.LogEvent(EventDelete, "gamma", ""); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}

	events, _ := r.Events("gamma")
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if !events[0].Timestamp.Equal(fixed) {
		t.Errorf("Timestamp = %v, want %v", events[0].Timestamp, fixed)
	}
}

func TestRecorder_SkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	r := NewRecorder(dir)

	if err := r.LogEvent(EventCreate, "alpha", ""); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	f.WriteString("not json\n\n")
	f.Close()

	if err := r.LogEvent(EventDelete, "alpha", ""); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}

	events, err := r.Events("alpha")
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("got %d events, want 2", len(events))
	}
}

func TestRecorder_CreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	r := NewRecorder(dir)

	if err := r.LogEvent(EventCreate, "alpha", ""); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}
	if _, err := os.Stat(r.Path()); err != nil {
		t.Errorf("history file not created: %v", err)
	}
}
