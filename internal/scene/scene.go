// Package scene renders the world-space view: the bodies and the spawn
// preview, both through the camera transform.
package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gravisim/internal/sandbox"
)

var previewColor = rl.NewColor(144, 238, 144, 255)

// Draw renders every body and, while a spawn gesture is pending, a
// preview ring of the body to come at the cursor. Call between
// BeginDrawing and EndDrawing.
func Draw(st *sandbox.State) {
	center := screenCenter()

	for _, b := range st.World.Bodies {
		pos := st.Camera.WorldToScreen(b.Pos, center)
		rl.DrawCircleV(pos, b.Radius*st.Camera.Zoom, b.Color)
	}

	if _, armed := st.Gesture.Pending(); armed {
		pos := st.Camera.WorldToScreen(st.CursorWorld, center)
		rl.DrawCircleLinesV(pos, st.SpawnSize*st.Camera.Zoom, previewColor)
	}
}

func screenCenter() rl.Vector2 {
	return rl.NewVector2(float32(rl.GetScreenWidth())/2, float32(rl.GetScreenHeight())/2)
}
