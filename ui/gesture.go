package ui

// SwipeDirection is the outcome of one press/release pointer sequence.
type SwipeDirection int

const (
	SwipeNone SwipeDirection = iota

	// SwipeLeft is a drag toward the left edge: the user pulls the next
	// page into view.
	SwipeLeft

	// SwipeRight pulls the previous page into view.
	SwipeRight
)

// SwipeDetector translates pointer press/release pairs into horizontal
// swipes. It is a pure input adapter: the pagination core never sees
// pointer events.
type SwipeDetector struct {
	threshold int

	active bool
	startX int
	startY int
}

// NewSwipeDetector creates a detector. Drags shorter than threshold cells
// are taps, not swipes.
func NewSwipeDetector(threshold int) *SwipeDetector {
	if threshold < 1 {
		threshold = 1
	}
	return &SwipeDetector{threshold: threshold}
}

// Press records the start of a pointer gesture.
func (d *SwipeDetector) Press(x, y int) {
	d.active = true
	d.startX = x
	d.startY = y
}

// Release ends the gesture and classifies it. A release without a prior
// press is ignored, as is a drag that is more vertical than horizontal.
func (d *SwipeDetector) Release(x, y int) SwipeDirection {
	if !d.active {
		return SwipeNone
	}
	d.active = false

	dx := x - d.startX
	dy := y - d.startY
	if abs(dx) < d.threshold || abs(dx) <= abs(dy) {
		return SwipeNone
	}
	if dx < 0 {
		return SwipeLeft
	}
	return SwipeRight
}

// Cancel discards any gesture in progress.
func (d *SwipeDetector) Cancel() {
	d.active = false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
