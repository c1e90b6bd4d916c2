// Package sandbox owns the simulation state and advances it one frame
// at a time from polled input.
package sandbox

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gravisim/internal/camera"
	"gravisim/internal/input"
	"gravisim/internal/logger"
	"gravisim/internal/physics"
	"gravisim/internal/settings"
	"gravisim/internal/spawn"
)

// State is the whole sandbox: the body world, the camera, the spawn
// gesture in progress, and the HUD flags.
type State struct {
	World   *physics.World
	Camera  camera.Camera
	Gesture spawn.Gesture

	SpawnDensity float32
	SpawnSize    float32

	ShowHUD bool
	Elastic bool

	// CursorWorld is the cursor position in world space as of the last
	// Step, falling back to the screen center when the cursor is off
	// screen.
	CursorWorld rl.Vector2

	Log *logger.Logger
}

// New builds a sandbox from loaded preferences.
func New(prefs settings.Prefs, log *logger.Logger) *State {
	w := physics.NewWorld()
	w.Symmetric = prefs.SymmetricGravity

	return &State{
		World:        w,
		Camera:       camera.New(),
		SpawnDensity: prefs.SpawnDensity,
		SpawnSize:    prefs.SpawnSize,
		ShowHUD:      prefs.ShowHUD,
		Log:          log,
	}
}

// Step advances the sandbox by one frame: reset and toggles first, then
// camera movement, then physics, then the spawn gesture. A gesture in
// progress survives a reset; only bodies and the camera are cleared.
func (s *State) Step(f input.Frame, dt float32) {
	if f.Reset {
		s.World.Reset()
		s.Camera.Reset()
		s.logf("reset")
	}
	if f.ToggleHUD {
		s.ShowHUD = !s.ShowHUD
	}
	if f.ToggleElastic {
		s.Elastic = !s.Elastic
	}

	s.Camera.Pan(f.Pan, dt)
	s.Camera.ZoomBy(f.Scroll)

	s.World.Step(dt)

	cursor := f.Cursor
	if !f.CursorOnScreen {
		cursor = f.ScreenCenter
	}
	s.CursorWorld = s.Camera.ScreenToWorld(cursor, f.ScreenCenter)

	if f.Pressed {
		s.Gesture.Press(s.CursorWorld)
	}
	if f.Released {
		if anchor, vel, ok := s.Gesture.Release(s.CursorWorld); ok {
			s.World.AddBody(physics.NewBody(anchor, vel, s.SpawnDensity, s.SpawnSize))
			s.logf("spawned body %d at (%.1f, %.1f)", len(s.World.Bodies), anchor.X, anchor.Y)
		}
	}
}

func (s *State) logf(format string, args ...any) {
	if s.Log != nil {
		s.Log.Logf(format, args...)
	}
}
