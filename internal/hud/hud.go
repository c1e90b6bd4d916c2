// Package hud draws the stats panel and control legend.
package hud

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gravisim/internal/sandbox"
)

const (
	fontSize   = 20
	lineHeight = fontSize + 4
	padding    = 8
	panelX     = 12
	panelY     = 12
	panelWidth = 260
)

var (
	panelColor  = rl.NewColor(24, 24, 24, 240)
	borderColor = rl.NewColor(80, 80, 80, 255)
)

var legend = []string{
	"Controls:",
	"R: Reset",
	"H: Toggle HUD",
	"E: Toggle Elastic",
	"WASD: Pan",
	"Scroll: Zoom",
	"Click-Drag: Spawn",
}

// Draw renders the HUD panel in the top-left corner. Hidden entirely
// while the HUD is toggled off.
func Draw(st *sandbox.State) {
	if !st.ShowHUD {
		return
	}

	stats := []string{
		fmt.Sprintf("Bodies: %d", len(st.World.Bodies)),
		fmt.Sprintf("Zoom: %.2f", st.Camera.Zoom),
		fmt.Sprintf("Elastic Collisions: %v", st.Elastic),
	}

	// Stats, a blank spacer line, then the legend.
	lines := len(stats) + 1 + len(legend)
	height := int32(lines*lineHeight + padding*2)

	rl.DrawRectangle(panelX, panelY, panelWidth, height, panelColor)
	rl.DrawRectangleLines(panelX, panelY, panelWidth, height, borderColor)

	y := int32(panelY + padding)
	for _, line := range stats {
		rl.DrawText(line, panelX+padding, y, fontSize, rl.White)
		y += lineHeight
	}
	y += lineHeight
	for _, line := range legend {
		rl.DrawText(line, panelX+padding, y, fontSize, rl.LightGray)
		y += lineHeight
	}
}
