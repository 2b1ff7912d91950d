package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwipeDetector(t *testing.T) {
	tests := []struct {
		name               string
		pressX, pressY     int
		releaseX, releaseY int
		threshold          int
		want               SwipeDirection
	}{
		{
			name:   "drag left past threshold",
			pressX: 40, releaseX: 30,
			threshold: 3,
			want:      SwipeLeft,
		},
		{
			name:   "drag right past threshold",
			pressX: 10, releaseX: 25,
			threshold: 3,
			want:      SwipeRight,
		},
		{
			name:   "short drag is a tap",
			pressX: 20, releaseX: 22,
			threshold: 3,
			want:      SwipeNone,
		},
		{
			name:   "mostly vertical drag is not a swipe",
			pressX: 20, pressY: 5, releaseX: 26, releaseY: 20,
			threshold: 3,
			want:      SwipeNone,
		},
		{
			name:   "exactly at threshold counts",
			pressX: 10, releaseX: 7,
			threshold: 3,
			want:      SwipeLeft,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewSwipeDetector(tt.threshold)
			d.Press(tt.pressX, tt.pressY)
			got := d.Release(tt.releaseX, tt.releaseY)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSwipeReleaseWithoutPress(t *testing.T) {
	d := NewSwipeDetector(3)
	assert.Equal(t, SwipeNone, d.Release(100, 0))
}

func TestSwipeCancel(t *testing.T) {
	d := NewSwipeDetector(3)
	d.Press(50, 0)
	d.Cancel()
	assert.Equal(t, SwipeNone, d.Release(10, 0))
}

func TestSwipeGestureDoesNotRepeat(t *testing.T) {
	d := NewSwipeDetector(3)
	d.Press(50, 0)
	assert.Equal(t, SwipeLeft, d.Release(10, 0))
	// The gesture was consumed; a stray second release is ignored.
	assert.Equal(t, SwipeNone, d.Release(0, 0))
}

func TestSwipeDetectorMinimumThreshold(t *testing.T) {
	d := NewSwipeDetector(0)
	d.Press(10, 0)
	assert.Equal(t, SwipeRight, d.Release(11, 0))
}
