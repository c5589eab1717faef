package games

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsWindow is how often the meter recomputes, in milliseconds.
const fpsWindow = 500

// FPSMeter measures frames per second from frame deltas.
type FPSMeter struct {
	elapsed float64
	frames  int
	fps     float64
}

// Tick records one frame that took dt milliseconds.
func (m *FPSMeter) Tick(dt float64) {
	m.elapsed += dt
	m.frames++
	if m.elapsed >= fpsWindow {
		m.fps = float64(m.frames) * 1000 / m.elapsed
		m.elapsed = 0
		m.frames = 0
	}
}

// FPS returns the rate over the last complete window.
func (m *FPSMeter) FPS() float64 {
	return m.fps
}

// drawFPS prints the measured frame rate and Ebitengine's tick rate in the
// top-left corner of screen.
func drawFPS(screen *ebiten.Image, m *FPSMeter) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", m.FPS(), ebiten.ActualTPS()))
}
