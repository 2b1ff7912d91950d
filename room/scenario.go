package room

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

// EventKind enumerates the scripted room events a scenario can contain.
type EventKind string

const (
	EventJoin       EventKind = "join"
	EventLeave      EventKind = "leave"
	EventCameraOn   EventKind = "camera_on"
	EventCameraOff  EventKind = "camera_off"
	EventMute       EventKind = "mute"
	EventUnmute     EventKind = "unmute"
	EventShareStart EventKind = "share_start"
	EventShareStop  EventKind = "share_stop"
)

func (k EventKind) valid() bool {
	switch k {
	case EventJoin, EventLeave, EventCameraOn, EventCameraOff,
		EventMute, EventUnmute, EventShareStart, EventShareStop:
		return true
	}
	return false
}

// Event is one timed room change.
type Event struct {
	// AtMillis is the offset from scenario start.
	AtMillis int64     `json:"at_ms"`
	Kind     EventKind `json:"kind"`
	Identity string    `json:"identity"`

	// Name is the display name, meaningful on join only.
	Name string `json:"name,omitempty"`

	// Preview is screen-share preview text, meaningful on share_start.
	Preview string `json:"preview,omitempty"`
}

// At returns the event offset as a duration.
func (e Event) At() time.Duration {
	return time.Duration(e.AtMillis) * time.Millisecond
}

// Scenario is a scripted sequence of room events replayed by a Room.
type Scenario struct {
	Name   string  `json:"name"`
	Events []Event `json:"events"`
}

// Validate checks event kinds and identities. Events need not be sorted in
// the file; Load sorts them by offset.
func (s *Scenario) Validate() error {
	for i, e := range s.Events {
		if !e.Kind.valid() {
			return fmt.Errorf("event %d: unknown kind %q", i, e.Kind)
		}
		if e.Identity == "" {
			return fmt.Errorf("event %d: missing identity", i)
		}
		if e.AtMillis < 0 {
			return fmt.Errorf("event %d: negative offset", i)
		}
	}
	return nil
}

// Load reads a scenario from a JSON file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	sort.SliceStable(s.Events, func(i, j int) bool {
		return s.Events[i].AtMillis < s.Events[j].AtMillis
	})
	return &s, nil
}

// Demo returns the built-in scenario: a meeting that grows to ten
// participants with mutes, a screen-share and a few departures, enough to
// exercise every grid shape and pagination on small viewports.
func Demo() *Scenario {
	names := []struct{ identity, name string }{
		{"alice", "Alice"},
		{"bob", "Bob"},
		{"carol", "Carol"},
		{"dave", "Dave"},
		{"erin", "Erin"},
		{"frank", "Frank"},
		{"grace", "Grace"},
		{"heidi", "Heidi"},
		{"ivan", "Ivan"},
		{"judy", "Judy"},
	}

	var events []Event
	at := int64(0)
	for _, n := range names {
		events = append(events, Event{AtMillis: at, Kind: EventJoin, Identity: n.identity, Name: n.name})
		at += 1500
	}

	events = append(events,
		Event{AtMillis: 2500, Kind: EventCameraOn, Identity: "alice"},
		Event{AtMillis: 3000, Kind: EventCameraOn, Identity: "bob"},
		Event{AtMillis: 5000, Kind: EventCameraOn, Identity: "carol"},
		Event{AtMillis: 6500, Kind: EventMute, Identity: "bob"},
		Event{AtMillis: 8000, Kind: EventCameraOn, Identity: "dave"},
		Event{AtMillis: 10000, Kind: EventShareStart, Identity: "carol",
			Preview: "Q3 roadmap\n- grid layouts\n- pagination\n- mobile swipe"},
		Event{AtMillis: 12000, Kind: EventUnmute, Identity: "bob"},
		Event{AtMillis: 16000, Kind: EventCameraOff, Identity: "alice"},
		Event{AtMillis: 20000, Kind: EventLeave, Identity: "ivan"},
		Event{AtMillis: 24000, Kind: EventShareStop, Identity: "carol"},
		Event{AtMillis: 28000, Kind: EventLeave, Identity: "judy"},
	)

	s := &Scenario{Name: "demo", Events: events}
	sort.SliceStable(s.Events, func(i, j int) bool {
		return s.Events[i].AtMillis < s.Events[j].AtMillis
	})
	return s
}
