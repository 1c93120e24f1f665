package tilt

import (
	"cmp"
	"slices"
	"time"
)

// FrameFunc is a per-frame callback. now is the frame timestamp on the
// scheduler's monotonic clock.
type FrameFunc func(now time.Duration)

// FrameHandle identifies a scheduled frame or timer. The zero value is never
// issued and means "nothing scheduled".
type FrameHandle uint64

// Scheduler requests callbacks on the display's refresh signal.
type Scheduler interface {
	ScheduleFrame(fn FrameFunc) FrameHandle
	CancelFrame(h FrameHandle)
}

// Clock is a monotonic, non-decreasing time source with an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

type pendingFrame struct {
	id FrameHandle
	fn FrameFunc
}

type pendingTimer struct {
	id  FrameHandle
	due time.Duration
	fn  func()
}

// FrameLoop is a fixed-tick Scheduler and Clock. The host calls Tick once
// per display refresh (Board.Update does this with 1/TPS). Frames requested
// during a tick run on the following tick, so a callback that reschedules
// itself runs exactly once per tick.
//
// FrameLoop is not safe for concurrent use; all calls happen on the update
// goroutine.
type FrameLoop struct {
	now     time.Duration
	nextID  FrameHandle
	pending []pendingFrame
	running []pendingFrame
	timers  []pendingTimer
	due     []pendingTimer
}

// NewFrameLoop creates a FrameLoop whose clock starts at zero.
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{}
}

// Now returns the loop's current clock reading.
func (l *FrameLoop) Now() time.Duration {
	return l.now
}

// ScheduleFrame queues fn for the next Tick.
func (l *FrameLoop) ScheduleFrame(fn FrameFunc) FrameHandle {
	id := l.issue()
	l.pending = append(l.pending, pendingFrame{id: id, fn: fn})
	return id
}

// CancelFrame removes a queued frame. Unknown or already-run handles are
// ignored.
func (l *FrameLoop) CancelFrame(h FrameHandle) {
	if h == 0 {
		return
	}
	l.pending = removeFrame(l.pending, h)
	// A frame cancelled by an earlier callback in the same tick must not run.
	for i := range l.running {
		if l.running[i].id == h {
			l.running[i].fn = nil
		}
	}
}

// AfterFunc schedules fn to run once the clock has advanced by d.
func (l *FrameLoop) AfterFunc(d time.Duration, fn func()) FrameHandle {
	id := l.issue()
	l.timers = append(l.timers, pendingTimer{id: id, due: l.now + d, fn: fn})
	return id
}

// CancelTimer stops a timer created by AfterFunc. Unknown or already-fired
// handles are ignored.
func (l *FrameLoop) CancelTimer(h FrameHandle) {
	l.removeTimer(h)
}

func (l *FrameLoop) removeTimer(h FrameHandle) bool {
	for i := range l.timers {
		if l.timers[i].id == h {
			copy(l.timers[i:], l.timers[i+1:])
			l.timers[len(l.timers)-1] = pendingTimer{}
			l.timers = l.timers[:len(l.timers)-1]
			return true
		}
	}
	return false
}

// Pending returns the number of frames queued for the next tick.
func (l *FrameLoop) Pending() int {
	return len(l.pending)
}

// Timers returns the number of timers that have not yet fired.
func (l *FrameLoop) Timers() int {
	return len(l.timers)
}

// Tick advances the clock by dt, runs every frame queued before the call and
// then fires the timers that were due when the drain began, in due order.
func (l *FrameLoop) Tick(dt time.Duration) {
	if dt > 0 {
		l.now += dt
	}

	l.running, l.pending = l.pending, l.running[:0]
	for i := range l.running {
		if fn := l.running[i].fn; fn != nil {
			l.running[i].fn = nil
			fn(l.now)
		}
	}
	l.running = l.running[:0]

	// Timers armed by a callback wait for the next tick.
	l.due = l.due[:0]
	for _, t := range l.timers {
		if t.due <= l.now {
			l.due = append(l.due, t)
		}
	}
	slices.SortStableFunc(l.due, func(a, b pendingTimer) int { return cmp.Compare(a.due, b.due) })
	for i := range l.due {
		t := l.due[i]
		l.due[i] = pendingTimer{}
		// Skip timers cancelled by an earlier callback.
		if l.removeTimer(t.id) {
			t.fn()
		}
	}
	l.due = l.due[:0]
}

// Advance ticks the loop repeatedly in steps of step until total has elapsed.
// The final step is shortened so exactly total is simulated.
func (l *FrameLoop) Advance(total, step time.Duration) {
	if step <= 0 {
		return
	}
	for total > 0 {
		d := step
		if total < d {
			d = total
		}
		l.Tick(d)
		total -= d
	}
}

func (l *FrameLoop) issue() FrameHandle {
	l.nextID++
	return l.nextID
}

func removeFrame(s []pendingFrame, id FrameHandle) []pendingFrame {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pendingFrame{}
			return s[:len(s)-1]
		}
	}
	return s
}
