// Package graphics owns the raylib window and the frame loop.
package graphics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	title        = "Gravisim"
	targetFPS    = 60

	// maxFrameDelta caps the per-frame timestep so a stalled frame
	// (window drag, suspend) cannot slingshot the simulation.
	maxFrameDelta = 0.1
)

// Run opens the window and drives the frame loop until the window is
// closed: update with the clamped frame delta, then draw between
// BeginDrawing and EndDrawing. ESC is unbound so it cannot quit the
// sandbox.
func Run(update func(dt float32), draw func()) error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(screenWidth, screenHeight, title)
	if !rl.IsWindowReady() {
		return errors.New("graphics: window creation failed")
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update(min(rl.GetFrameTime(), maxFrameDelta))

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}

	return nil
}
