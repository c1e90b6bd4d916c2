// Package input polls the keyboard and mouse once per frame and hands
// the result to the simulation as plain data, keeping raylib calls out
// of the update path.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frame is one frame's worth of user input.
type Frame struct {
	Reset         bool
	ToggleHUD     bool
	ToggleElastic bool

	// Pan holds -1/0/+1 per axis from WASD, unnormalized.
	Pan    rl.Vector2
	Scroll float32

	Pressed  bool
	Released bool

	Cursor         rl.Vector2
	CursorOnScreen bool
	ScreenCenter   rl.Vector2
}

// Poll reads the current input state. Call once per frame between
// window creation and shutdown.
func Poll() Frame {
	var f Frame

	f.Reset = rl.IsKeyPressed(rl.KeyR)
	f.ToggleHUD = rl.IsKeyPressed(rl.KeyH)
	f.ToggleElastic = rl.IsKeyPressed(rl.KeyE)

	if rl.IsKeyDown(rl.KeyW) {
		f.Pan.Y--
	}
	if rl.IsKeyDown(rl.KeyS) {
		f.Pan.Y++
	}
	if rl.IsKeyDown(rl.KeyA) {
		f.Pan.X--
	}
	if rl.IsKeyDown(rl.KeyD) {
		f.Pan.X++
	}

	f.Scroll = rl.GetMouseWheelMove()

	// Any mouse button starts or ends a spawn gesture.
	f.Pressed = rl.IsMouseButtonPressed(rl.MouseButtonLeft) ||
		rl.IsMouseButtonPressed(rl.MouseButtonRight) ||
		rl.IsMouseButtonPressed(rl.MouseButtonMiddle)
	f.Released = rl.IsMouseButtonReleased(rl.MouseButtonLeft) ||
		rl.IsMouseButtonReleased(rl.MouseButtonRight) ||
		rl.IsMouseButtonReleased(rl.MouseButtonMiddle)

	f.Cursor = rl.GetMousePosition()
	f.CursorOnScreen = rl.IsCursorOnScreen()
	f.ScreenCenter = rl.NewVector2(float32(rl.GetScreenWidth())/2, float32(rl.GetScreenHeight())/2)

	return f
}
