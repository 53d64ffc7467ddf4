package ph

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// FPSLayer displays the current FPS and TPS in the top-left corner. It never
// consumes ticks or input, so it belongs in the top band.
type FPSLayer struct {
	BaseLayer
	elapsed float64
	text    string
}

// NewFPSLayer creates an FPS overlay. The text refreshes every ~0.5 seconds.
func NewFPSLayer() *FPSLayer {
	return &FPSLayer{text: "FPS: --\nTPS: --"}
}

func (l *FPSLayer) Name() string { return "fps" }

func (l *FPSLayer) Update(dt float64) bool {
	l.elapsed += dt
	if l.elapsed >= 0.5 {
		l.elapsed = 0
		l.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	return true
}

func (l *FPSLayer) Draw(s Surface) {
	s.FillRect(0, 0, 100, 32, Color{0, 0, 0, 0.5})
	s.DebugText(l.text, 2, 2)
}
