package tilt

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Card is an interactive surface on a Board. It owns one Engine and adapts
// hover events into engine targets. Create cards with Board.NewCard.
type Card struct {
	// Name identifies the card in published events and debug output.
	Name string
	// Bounds is the card's rectangle in board coordinates. Changing Width or
	// Height takes effect on the next frame.
	Bounds Rect
	// Color is the base tint passed to the renderer.
	Color Color

	// OnParams, if set, is called with every parameter set the card
	// publishes.
	OnParams func(Params)
	// OnPointer, if set, is called for every hover event with card-local
	// coordinates. Leave events carry the last known position.
	OnPointer func(ev EventType, x, y float64)

	board  *Board
	engine *Engine
	cfg    CardConfig

	hovered  bool
	active   bool
	entering bool
	leaving  bool

	enterTimer FrameHandle

	glow      float64
	glowTween *gween.Tween

	disposed bool
}

// Size implements Surface with the card's current dimensions.
func (c *Card) Size() (width, height float64) {
	return c.Bounds.Width, c.Bounds.Height
}

// Engine returns the card's tilt engine.
func (c *Card) Engine() *Engine {
	return c.engine
}

// Params returns the most recently published parameter set.
func (c *Card) Params() Params {
	return c.engine.Params()
}

// Hovered reports whether the pointer is over the card.
func (c *Card) Hovered() bool { return c.hovered }

// Active reports whether the card is interactive-highlighted: true from
// pointer enter until the card has settled back to rest after leave.
func (c *Card) Active() bool { return c.active }

// Entering reports whether the card is in its short post-enter window.
func (c *Card) Entering() bool { return c.entering }

// Glow returns the eased glare intensity in [0, 1].
func (c *Card) Glow() float64 { return c.glow }

// IsDisposed reports whether Dispose has been called.
func (c *Card) IsDisposed() bool { return c.disposed }

// Intro plays the entrance animation: the card jumps to the configured intro
// point, then settles to center with the slow initial time constant.
func (c *Card) Intro() {
	if c.disposed {
		return
	}
	c.engine.SetImmediate(c.cfg.IntroX, c.cfg.IntroY)
	c.engine.ToCenter()
	c.engine.BeginInitial(fromMs(c.cfg.IntroMs))
}

// Dispose cancels the engine loop and all pending timers and removes the
// card from its board. Safe to call more than once.
func (c *Card) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.engine.Cancel()
	c.clearEnterTimer()
	c.glowTween = nil
	if c.board != nil {
		c.board.removeCard(c)
	}
}

func (c *Card) pointerEnter(x, y float64) {
	c.hovered = true
	c.active = true
	c.leaving = false

	c.clearEnterTimer()
	c.entering = true
	c.enterTimer = c.board.loop.AfterFunc(fromMs(c.cfg.EnterMs), func() {
		c.enterTimer = 0
		c.entering = false
	})

	c.engine.SetTarget(x, y)
	c.tweenGlow(1)
	c.notify(EventPointerEnter, x, y)
}

func (c *Card) pointerMove(x, y float64) {
	c.engine.SetTarget(x, y)
	c.notify(EventPointerMove, x, y)
}

func (c *Card) pointerLeave() {
	last := c.engine.Current()
	c.hovered = false
	c.leaving = true
	c.engine.ToCenter()
	c.tweenGlow(0)
	c.notify(EventPointerLeave, last.TargetX, last.TargetY)
}

func (c *Card) notify(ev EventType, x, y float64) {
	if c.OnPointer != nil {
		c.OnPointer(ev, x, y)
	}
}

func (c *Card) clearEnterTimer() {
	if c.enterTimer != 0 {
		c.board.loop.CancelTimer(c.enterTimer)
		c.enterTimer = 0
	}
	c.entering = false
}

func (c *Card) tweenGlow(to float64) {
	d := float32(c.cfg.GlowMs / 1000)
	if d <= 0 {
		c.glow = to
		c.glowTween = nil
		return
	}
	c.glowTween = gween.New(float32(c.glow), float32(to), d, ease.OutQuad)
}

// update advances the glow tween by dt seconds.
func (c *Card) update(dt float32) {
	if c.glowTween == nil {
		return
	}
	val, finished := c.glowTween.Update(dt)
	c.glow = float64(val)
	if finished {
		c.glowTween = nil
	}
}

// published is the engine's publish hook.
func (c *Card) published(p Params) {
	// A converged engine may stop before reaching a tighter settle epsilon.
	if c.leaving && (c.engine.Current().Distance() <= c.cfg.SettleEpsilon || c.engine.Converged()) {
		c.leaving = false
		c.active = false
	}
	if c.OnParams != nil {
		c.OnParams(p)
	}
	if c.board != nil && c.board.sink != nil {
		c.board.sink.PublishParams(ParamsEvent{Card: c.Name, Params: p, Active: c.active})
	}
}
