package tilt

// syntheticPointerEvent is a single injected pointer sample in board
// coordinates. inside is false for a pointer that has left the board.
type syntheticPointerEvent struct {
	x, y   float64
	inside bool
}

// InjectMove queues a pointer sample at (x, y). The event is consumed on the
// next Update, replacing real pointer input for that frame.
func (b *Board) InjectMove(x, y float64) {
	b.injectQueue = append(b.injectQueue, syntheticPointerEvent{x: x, y: y, inside: true})
}

// InjectLeave queues a pointer-left-the-board event.
func (b *Board) InjectLeave() {
	b.injectQueue = append(b.injectQueue, syntheticPointerEvent{
		x: b.pointer.x, y: b.pointer.y,
		inside: false,
	})
}

// InjectPath queues a straight pointer path from (fromX, fromY) to (toX, toY)
// spread over frames samples, both endpoints included. Minimum frames is 2.
func (b *Board) InjectPath(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		b.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// PendingInjected returns the number of queued synthetic events.
func (b *Board) PendingInjected() int {
	return len(b.injectQueue)
}

func (b *Board) popInjected() (syntheticPointerEvent, bool) {
	if len(b.injectQueue) == 0 {
		return syntheticPointerEvent{}, false
	}
	evt := b.injectQueue[0]
	copy(b.injectQueue, b.injectQueue[1:])
	b.injectQueue = b.injectQueue[:len(b.injectQueue)-1]
	return evt, true
}
