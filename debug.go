package tilt

import (
	"fmt"
	"os"
)

// debugLog prints the state of every animating card to stderr.
func (b *Board) debugLog() {
	for _, c := range b.cards {
		if !c.engine.Running() {
			continue
		}
		s := c.engine.Current()
		p := c.engine.Params()
		_, _ = fmt.Fprintf(os.Stderr,
			"[tilt] %s: pos (%.2f, %.2f) -> (%.2f, %.2f) | rotate (%.3f, %.3f) | glow %.2f | initial %v\n",
			c.Name, s.X, s.Y, s.TargetX, s.TargetY, p.RotateX, p.RotateY, c.glow, c.engine.InInitialPhase())
	}
	if n := b.loop.Pending(); n > len(b.cards) {
		_, _ = fmt.Fprintf(os.Stderr, "[tilt] warning: %d frames pending for %d cards\n", n, len(b.cards))
	}
}
