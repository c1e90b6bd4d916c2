// Package debug draws the FPS and heap overlay in the top-right corner.
package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	lineHeight = fontSize + 4
	padding    = 12

	// Overlay text is recomputed every updateInterval frames so the
	// numbers are readable instead of flickering.
	updateInterval = 30
)

// Debug renders runtime stats. Both readouts start disabled.
type Debug struct {
	showFPS      bool
	showMemAlloc bool

	frameCount uint32
	fpsText    string
	memText    string
	memStats   runtime.MemStats
}

func New() *Debug {
	return &Debug{}
}

func (d *Debug) SetShowFPS(on bool) {
	d.showFPS = on
}

func (d *Debug) SetShowMemAlloc(on bool) {
	d.showMemAlloc = on
}

// Draw renders the enabled readouts. Call between BeginDrawing and
// EndDrawing, after the scene so the text stays on top.
func (d *Debug) Draw() {
	if !d.showFPS && !d.showMemAlloc {
		return
	}

	if d.frameCount%updateInterval == 0 {
		d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		runtime.ReadMemStats(&d.memStats)
		d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
	}
	d.frameCount++

	screenWidth := int32(rl.GetScreenWidth())
	y := int32(padding)
	if d.showFPS {
		width := rl.MeasureText(d.fpsText, fontSize)
		rl.DrawText(d.fpsText, screenWidth-width-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
	if d.showMemAlloc {
		width := rl.MeasureText(d.memText, fontSize)
		rl.DrawText(d.memText, screenWidth-width-padding, y, fontSize, rl.Green)
	}
}
