// Package history records project lifecycle events.
// Events are stored as JSON Lines (JSONL) in a single file under the state
// directory, one event per line.
package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName is the name of the history file inside the state directory.
const FileName = "history.jsonl"

// EventType classifies a lifecycle event.
type EventType string

const (
	EventCreate      EventType = "create"
	EventEnvironment EventType = "environment"
	EventDelete      EventType = "delete"
	EventNavigate    EventType = "navigate"
	EventError       EventType = "error"
)

// Event represents a single history entry.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Project   string    `json:"project"`
	Details   string    `json:"details,omitempty"`
}

// Recorder appends and reads lifecycle events.
type Recorder struct {
	stateDir string
	now      func() time.Time
}

// NewRecorder creates a Recorder rooted at stateDir.
func NewRecorder(stateDir string) *Recorder {
	return &Recorder{stateDir: stateDir, now: time.Now}
}

// Path returns the path of the history file.
func (r *Recorder) Path() string {
	return filepath.Join(r.stateDir, FileName)
}

// Log appends an event to the history file.
func (r *Recorder) Log(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = r.now()
	}

	path := r.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

// LogEvent is a convenience method that creates and logs an event.
func (r *Recorder) LogEvent(eventType EventType, project, details string) error {
	return r.Log(Event{
		Type:    eventType,
		Project: project,
		Details: details,
	})
}

// Events reads events in the order they were written. An empty project
// returns every event.
func (r *Recorder) Events(project string) ([]Event, error) {
	f, err := os.Open(r.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			continue // Skip malformed lines
		}
		if project != "" && event.Project != project {
			continue
		}
		events = append(events, event)
	}

	if err := scanner.Err(); err != nil {
		return events, fmt.Errorf("error reading history: %w", err)
	}

	return events, nil
}
