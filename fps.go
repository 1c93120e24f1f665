package tilt

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsCounter caches the FPS/TPS overlay text, refreshed every ~0.5 seconds.
type fpsCounter struct {
	text       string
	lastUpdate time.Time
}

func (f *fpsCounter) draw(screen *ebiten.Image) {
	if now := time.Now(); f.text == "" || now.Sub(f.lastUpdate) >= 500*time.Millisecond {
		f.lastUpdate = now
		f.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	ebitenutil.DebugPrint(screen, f.text)
}
