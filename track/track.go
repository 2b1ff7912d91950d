// Package track defines read-only references to displayable media streams.
// The layout layer only ever reads identity, source and count; the lifecycle
// of the underlying media is owned by the room layer.
package track

import "sort"

// Source identifies where a track's media comes from.
type Source int

const (
	// SourceCamera is a participant's camera feed.
	SourceCamera Source = iota

	// SourceScreenShare is a shared screen or window.
	SourceScreenShare

	// SourcePlaceholder reserves a tile for a participant with no
	// active video track.
	SourcePlaceholder
)

// String returns the string representation of the source.
func (s Source) String() string {
	switch s {
	case SourceCamera:
		return "camera"
	case SourceScreenShare:
		return "screen-share"
	case SourcePlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Kind distinguishes media kinds on a reference.
type Kind int

const (
	KindVideo Kind = iota
	KindAudio
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// Reference is an opaque handle identifying one displayable stream.
// It is a value type; the layout layer never mutates it.
type Reference struct {
	// SID is the server-assigned stream identifier. Placeholders carry a
	// synthetic SID so every tile slot has a stable identity.
	SID string

	// Identity is the participant's unique identity in the room.
	Identity string

	// Name is the participant's display name. Falls back to Identity
	// when empty.
	Name string

	Source Source
	Kind   Kind

	// Muted reports whether the publisher muted the track.
	Muted bool

	// Subscribed reports whether media is actually flowing. Placeholder
	// references are never subscribed.
	Subscribed bool
}

// DisplayName returns the name to render on a tile.
func (r Reference) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Identity
}

// IsPlaceholder reports whether the reference reserves a slot without media.
func (r Reference) IsPlaceholder() bool {
	return r.Source == SourcePlaceholder
}

// SortForDisplay orders references the way conference UIs present them:
// screen-shares first, then cameras, then placeholders. The sort is stable,
// so join order is preserved within each group and repeated sorts do not
// shuffle tiles.
func SortForDisplay(refs []Reference) {
	sort.SliceStable(refs, func(i, j int) bool {
		return displayRank(refs[i].Source) < displayRank(refs[j].Source)
	})
}

func displayRank(s Source) int {
	switch s {
	case SourceScreenShare:
		return 0
	case SourceCamera:
		return 1
	default:
		return 2
	}
}
