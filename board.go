package tilt

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// PointerSource reports the pointer position in board coordinates. ok is
// false when no pointer is over the board.
type PointerSource interface {
	Pointer() (x, y float64, ok bool)
}

type pointerState struct {
	x, y   float64
	inside bool
	hover  *Card // card the pointer is currently over (for enter/leave)
}

// Board is the top-level object that owns the cards, the frame loop, the
// focus provider and pointer state. Call Update once per tick and Draw once
// per frame.
type Board struct {
	// ClearColor fills the screen before cards are drawn. Zero alpha skips
	// the fill.
	ClearColor Color
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool

	cfg   Config
	loop  *FrameLoop
	cards []*Card

	focus         FocusFunc
	focusOverride *bool
	sink          ParamsSink
	input         PointerSource

	pointer     pointerState
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
	updateFunc  func() error

	fps   fpsCounter
	debug bool
}

// NewBoard creates an empty board with the given tuning. The config is used
// as-is; validate it first when it comes from user input.
func NewBoard(cfg Config) *Board {
	return &Board{
		cfg:  cfg,
		loop: NewFrameLoop(),
	}
}

// Config returns the board's tuning.
func (b *Board) Config() Config {
	return b.cfg
}

// Loop returns the board's frame loop.
func (b *Board) Loop() *FrameLoop {
	return b.loop
}

// NewCard creates a card with the given bounds and adds it on top of the
// existing cards.
func (b *Board) NewCard(name string, bounds Rect) *Card {
	c := &Card{
		Name:   name,
		Bounds: bounds,
		Color:  Color{R: 0.22, G: 0.2, B: 0.32, A: 1},
		board:  b,
		cfg:    b.cfg.Card,
	}
	c.engine = NewEngine(EngineConfig{
		Surface:   c,
		Scheduler: b.loop,
		Clock:     b.loop,
		Focus:     b.Focused,
		Publish:   c.published,
		Smoothing: b.cfg.EngineSmoothing(),
	})
	w, h := c.Size()
	c.engine.SetImmediate(w/2, h/2)
	b.cards = append(b.cards, c)
	return c
}

// Cards returns the board's cards in draw order. The returned slice MUST NOT
// be mutated.
func (b *Board) Cards() []*Card {
	return b.cards
}

// Card returns the first card with the given name, or nil.
func (b *Board) Card(name string) *Card {
	for _, c := range b.cards {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (b *Board) removeCard(c *Card) {
	for i, cc := range b.cards {
		if cc == c {
			b.cards = append(b.cards[:i], b.cards[i+1:]...)
			break
		}
	}
	if b.pointer.hover == c {
		b.pointer.hover = nil
	}
}

// SetFocusFunc sets the focus provider consulted by every card's engine.
func (b *Board) SetFocusFunc(fn FocusFunc) {
	b.focus = fn
}

// Focused reports whether the board's host has input focus. A scripted
// focus or blur step takes precedence over the provider.
func (b *Board) Focused() bool {
	if b.focusOverride != nil {
		return *b.focusOverride
	}
	return b.focus != nil && b.focus()
}

// SetParamsSink sets the optional receiver of every published parameter set.
func (b *Board) SetParamsSink(sink ParamsSink) {
	b.sink = sink
}

// SetPointerSource sets where real pointer input is read from. Injected
// events take precedence.
func (b *Board) SetPointerSource(src PointerSource) {
	b.input = src
}

// SetUpdateFunc sets a callback invoked at the end of every Update.
func (b *Board) SetUpdateFunc(fn func() error) {
	b.updateFunc = fn
}

// SetDebugMode enables or disables per-frame diagnostics on stderr.
func (b *Board) SetDebugMode(enabled bool) {
	b.debug = enabled
}

// Update advances the board by one tick of 1/TPS.
func (b *Board) Update() error {
	return b.UpdateBy(time.Second / time.Duration(ebiten.TPS()))
}

// UpdateBy advances the board by dt: scripted steps, pointer input, glow
// tweens, then one frame loop tick.
func (b *Board) UpdateBy(dt time.Duration) error {
	if b.testRunner != nil {
		b.testRunner.step(b)
	}
	b.processInput()

	sec := float32(dt.Seconds())
	for _, c := range b.cards {
		c.update(sec)
	}
	b.loop.Tick(dt)

	if b.debug {
		b.debugLog()
	}
	if b.updateFunc != nil {
		return b.updateFunc()
	}
	return nil
}

func (b *Board) processInput() {
	if ev, ok := b.popInjected(); ok {
		b.processPointer(ev.x, ev.y, ev.inside)
		return
	}
	if b.input == nil {
		return
	}
	x, y, ok := b.input.Pointer()
	b.processPointer(x, y, ok)
}

// processPointer dispatches enter, move and leave to the topmost card under
// the pointer.
func (b *Board) processPointer(x, y float64, inside bool) {
	moved := inside != b.pointer.inside || x != b.pointer.x || y != b.pointer.y
	b.pointer.x, b.pointer.y, b.pointer.inside = x, y, inside

	var hit *Card
	if inside {
		hit = b.hitTest(x, y)
	}

	prev := b.pointer.hover
	if hit != prev {
		if prev != nil {
			prev.pointerLeave()
		}
		b.pointer.hover = hit
		if hit != nil {
			hit.pointerEnter(x-hit.Bounds.X, y-hit.Bounds.Y)
		}
		return
	}
	if hit != nil && moved {
		hit.pointerMove(x-hit.Bounds.X, y-hit.Bounds.Y)
	}
}

func (b *Board) hitTest(x, y float64) *Card {
	for i := len(b.cards) - 1; i >= 0; i-- {
		if b.cards[i].Bounds.Contains(x, y) {
			return b.cards[i]
		}
	}
	return nil
}

// Hovered returns the card under the pointer, or nil.
func (b *Board) Hovered() *Card {
	return b.pointer.hover
}
