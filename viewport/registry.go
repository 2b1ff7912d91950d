// Package viewport tracks the measured size of named render targets.
//
// A single process-wide Registry is shared by every consumer. Targets are
// reference-counted: the first Observe creates the target, the last
// Subscription.Close tears it down. Size publications arriving faster than
// the frame rate are coalesced so subscribers see at most one notification
// per frame.
package viewport

import (
	"sync"
	"time"
)

// Size is the latest measured box of a target.
type Size struct {
	Width  int
	Height int
}

// Scheduler defers a flush until "the next frame". The default schedules on
// a ~60fps timer; tests inject a synchronous scheduler instead.
type Scheduler func(flush func())

const frameInterval = time.Second / 60

func frameScheduler(flush func()) {
	time.AfterFunc(frameInterval, flush)
}

// Registry is a shared size-observation registry.
type Registry struct {
	mu      sync.Mutex
	targets map[string]*target
	sched   Scheduler
}

type target struct {
	refs    int
	size    Size
	sized   bool
	pending bool
	subs    map[*Subscription]struct{}
}

var (
	sharedOnce sync.Once
	shared     *Registry
)

// Shared returns the process-wide registry, creating it on first use.
func Shared() *Registry {
	sharedOnce.Do(func() {
		shared = NewRegistry(frameScheduler)
	})
	return shared
}

// NewRegistry creates a registry with the given scheduler. A nil scheduler
// uses the frame timer.
func NewRegistry(sched Scheduler) *Registry {
	if sched == nil {
		sched = frameScheduler
	}
	return &Registry{
		targets: make(map[string]*target),
		sched:   sched,
	}
}

// Observe subscribes to size changes of the named target, creating the
// target if this is its first observer. If the target already has a
// measured size, the subscription sees it immediately.
func (r *Registry) Observe(name string) *Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	tg, ok := r.targets[name]
	if !ok {
		tg = &target{subs: make(map[*Subscription]struct{})}
		r.targets[name] = tg
	}
	tg.refs++

	sub := &Subscription{
		registry: r,
		name:     name,
		sizes:    make(chan Size, 1),
	}
	tg.subs[sub] = struct{}{}

	if tg.sized {
		sub.push(tg.size)
	}
	return sub
}

// Publish records the latest size of a target and schedules one coalesced
// notification. Publishing against an unobserved target is a no-op; that is
// a normal transient state while components mount and unmount.
func (r *Registry) Publish(name string, width, height int) {
	if width < 0 || height < 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tg, ok := r.targets[name]
	if !ok {
		return
	}
	tg.size = Size{Width: width, Height: height}
	tg.sized = true
	if tg.pending {
		return
	}
	tg.pending = true
	r.sched(func() { r.flush(name) })
}

func (r *Registry) flush(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tg, ok := r.targets[name]
	if !ok || !tg.pending {
		return
	}
	tg.pending = false
	for sub := range tg.subs {
		sub.push(tg.size)
	}
}

// Refs returns the observer count for a target. Zero means torn down.
func (r *Registry) Refs(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tg, ok := r.targets[name]; ok {
		return tg.refs
	}
	return 0
}

func (r *Registry) release(name string, sub *Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tg, ok := r.targets[name]
	if !ok {
		return
	}
	delete(tg.subs, sub)
	tg.refs--
	if tg.refs <= 0 {
		delete(r.targets, name)
	}
}

// Subscription is one observer of one target.
type Subscription struct {
	registry *Registry
	name     string
	sizes    chan Size
	once     sync.Once
}

// Sizes delivers coalesced size updates. The channel holds only the latest
// value; a slow reader never sees stale intermediate sizes.
func (s *Subscription) Sizes() <-chan Size {
	return s.sizes
}

// Latest returns the most recently published size of the observed target
// and whether one has been published yet.
func (s *Subscription) Latest() (Size, bool) {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()
	if tg, ok := s.registry.targets[s.name]; ok && tg.sized {
		return tg.size, true
	}
	return Size{}, false
}

// Close unsubscribes. Safe to call more than once and on every exit path;
// the target is torn down when its last subscription closes.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.registry.release(s.name, s)
	})
}

// push delivers latest-wins: a pending unread value is replaced rather than
// blocking the publisher.
func (s *Subscription) push(size Size) {
	select {
	case s.sizes <- size:
	default:
		select {
		case <-s.sizes:
		default:
		}
		select {
		case s.sizes <- size:
		default:
		}
	}
}
