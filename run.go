package tilt

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// TPS overrides the tick rate. Zero keeps Ebitengine's default.
	TPS int
}

// Run opens a window and drives board until the window is closed or an
// update callback returns an error. Pointer input comes from the mouse (or
// the first touch) and focus from the window, unless the board already has
// a source or provider set.
func Run(board *Board, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.ShowFPS {
		board.ShowFPS = true
	}
	if board.input == nil {
		board.SetPointerSource(&ebitenPointer{width: cfg.Width, height: cfg.Height})
	}
	if board.focus == nil {
		board.SetFocusFunc(ebiten.IsFocused)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{board: board, width: cfg.Width, height: cfg.Height})
}

type game struct {
	board         *Board
	width, height int
}

func (g *game) Update() error              { return g.board.Update() }
func (g *game) Draw(screen *ebiten.Image)  { g.board.Draw(screen) }
func (g *game) Layout(_, _ int) (int, int) { return g.width, g.height }

// ebitenPointer reads the mouse cursor, or the first active touch.
type ebitenPointer struct {
	width, height int
	touches       []ebiten.TouchID
}

func (p *ebitenPointer) Pointer() (float64, float64, bool) {
	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	var x, y int
	if len(p.touches) > 0 {
		x, y = ebiten.TouchPosition(p.touches[0])
	} else {
		x, y = ebiten.CursorPosition()
	}
	inside := x >= 0 && y >= 0 && x < p.width && y < p.height
	return float64(x), float64(y), inside
}
