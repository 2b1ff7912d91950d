// Package room replays scripted conference scenarios and maintains the
// ordered track list the layout layer consumes. It stands in for a real
// media client; no transport is involved.
package room

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"roomgrid/track"
)

// participant is the mutable per-identity state built up by replay.
type participant struct {
	identity string
	name     string

	camSID   string
	shareSID string

	cameraOn bool
	muted    bool
	sharing  bool
	preview  string

	joinedAt int
}

// Room replays a scenario deterministically: Advance applies every event
// scheduled at or before the given elapsed time, exactly once. All reads
// return snapshots, so callers never observe partial application.
type Room struct {
	mu sync.Mutex

	scenario *Scenario
	applied  int

	participants map[string]*participant
	joinSeq      int
}

// Open prepares a room that will replay the given scenario.
func Open(s *Scenario) *Room {
	return &Room{
		scenario:     s,
		participants: make(map[string]*participant),
	}
}

// Name returns the scenario name.
func (r *Room) Name() string {
	return r.scenario.Name
}

// Finished reports whether every scripted event has been applied.
func (r *Room) Finished() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.applied >= len(r.scenario.Events)
}

// Advance applies all events scheduled up to elapsed and reports whether
// anything changed. Events for unknown identities are skipped; a scenario
// bug must not take the viewer down.
func (r *Room) Advance(elapsed time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := false
	for r.applied < len(r.scenario.Events) {
		e := r.scenario.Events[r.applied]
		if e.At() > elapsed {
			break
		}
		if r.apply(e) {
			changed = true
		}
		r.applied++
	}
	return changed
}

func (r *Room) apply(e Event) bool {
	p, known := r.participants[e.Identity]

	switch e.Kind {
	case EventJoin:
		if known {
			return false
		}
		r.participants[e.Identity] = &participant{
			identity: e.Identity,
			name:     e.Name,
			camSID:   "TR_" + uuid.NewString(),
			joinedAt: r.joinSeq,
		}
		r.joinSeq++
		return true
	case EventLeave:
		if !known {
			return false
		}
		delete(r.participants, e.Identity)
		return true
	}

	if !known {
		return false
	}

	switch e.Kind {
	case EventCameraOn:
		p.cameraOn = true
	case EventCameraOff:
		p.cameraOn = false
	case EventMute:
		p.muted = true
	case EventUnmute:
		p.muted = false
	case EventShareStart:
		p.sharing = true
		p.preview = e.Preview
		p.shareSID = "TR_" + uuid.NewString()
	case EventShareStop:
		p.sharing = false
		p.preview = ""
		p.shareSID = ""
	default:
		return false
	}
	return true
}

// Tracks returns the ordered track list: screen-shares first, then cameras,
// then placeholders for participants with no active video, join order
// preserved within each group. Participants keep stable SIDs across calls,
// so tiles do not churn when unrelated state changes.
func (r *Room) Tracks() []track.Reference {
	r.mu.Lock()
	defer r.mu.Unlock()

	ordered := make([]*participant, 0, len(r.participants))
	for _, p := range r.participants {
		ordered = append(ordered, p)
	}
	// Join order before display grouping keeps the sort deterministic.
	sortByJoin(ordered)

	refs := make([]track.Reference, 0, len(ordered)+2)
	for _, p := range ordered {
		if p.sharing {
			refs = append(refs, track.Reference{
				SID:        p.shareSID,
				Identity:   p.identity,
				Name:       p.name,
				Source:     track.SourceScreenShare,
				Kind:       track.KindVideo,
				Subscribed: true,
			})
		}
		if p.cameraOn {
			refs = append(refs, track.Reference{
				SID:        p.camSID,
				Identity:   p.identity,
				Name:       p.name,
				Source:     track.SourceCamera,
				Kind:       track.KindVideo,
				Muted:      p.muted,
				Subscribed: true,
			})
		} else {
			refs = append(refs, track.Reference{
				SID:      "PH_" + p.identity,
				Identity: p.identity,
				Name:     p.name,
				Source:   track.SourcePlaceholder,
				Kind:     track.KindVideo,
				Muted:    p.muted,
			})
		}
	}

	track.SortForDisplay(refs)
	return refs
}

// Preview returns the share preview text for an identity, if it is sharing.
func (r *Room) Preview(identity string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.participants[identity]; ok && p.sharing {
		return p.preview, true
	}
	return "", false
}

// ParticipantCount returns the number of present participants.
func (r *Room) ParticipantCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.participants)
}

func sortByJoin(ps []*participant) {
	sort.Slice(ps, func(i, j int) bool {
		return ps[i].joinedAt < ps[j].joinedAt
	})
}
