package sandbox

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gravisim/internal/input"
	"gravisim/internal/logger"
	"gravisim/internal/settings"
)

const dt = 1.0 / 60

// frame builds an input frame with the cursor on screen and the screen
// center at the origin, so screen and world coordinates coincide while
// the camera is at rest.
func frame(x, y float32) input.Frame {
	return input.Frame{
		Cursor:         rl.NewVector2(x, y),
		CursorOnScreen: true,
	}
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) <= 1e-6
}

func TestState_SpawnGesture(t *testing.T) {
	st := New(settings.Default(), nil)

	press := frame(100, 100)
	press.Pressed = true
	st.Step(press, dt)

	release := frame(200, 100)
	release.Released = true
	st.Step(release, dt)

	if len(st.World.Bodies) != 1 {
		t.Fatalf("got %d bodies, want 1", len(st.World.Bodies))
	}
	b := st.World.Bodies[0]
	if b.Pos.X != 100 || b.Pos.Y != 100 {
		t.Errorf("pos = %v, want the press point (100, 100)", b.Pos)
	}
	if b.Vel.X != 5 || b.Vel.Y != 0 {
		t.Errorf("vel = %v, want the drag over 20: (5, 0)", b.Vel)
	}
	if b.Mass != 2500 {
		t.Errorf("mass = %v, want 1.0 density x 50^2", b.Mass)
	}
	if b.Radius != 50 {
		t.Errorf("radius = %v, want the default spawn size", b.Radius)
	}
}

func TestState_ReleaseWithoutPress(t *testing.T) {
	st := New(settings.Default(), nil)

	release := frame(50, 50)
	release.Released = true
	st.Step(release, dt)

	if len(st.World.Bodies) != 0 {
		t.Errorf("got %d bodies from a bare release, want 0", len(st.World.Bodies))
	}
}

func TestState_Reset(t *testing.T) {
	st := New(settings.Default(), nil)

	move := frame(0, 0)
	move.Pan = rl.NewVector2(1, 0)
	move.Scroll = 1
	st.Step(move, 1)

	press := frame(10, 10)
	press.Pressed = true
	press.Released = true
	st.Step(press, dt)
	if len(st.World.Bodies) != 1 {
		t.Fatal("setup spawn failed")
	}

	reset := frame(0, 0)
	reset.Reset = true
	st.Step(reset, dt)

	if len(st.World.Bodies) != 0 {
		t.Errorf("got %d bodies after reset, want 0", len(st.World.Bodies))
	}
	if st.Camera.Offset != (rl.Vector2{}) || st.Camera.Zoom != 1 {
		t.Errorf("camera not reset: offset %v zoom %v", st.Camera.Offset, st.Camera.Zoom)
	}
}

func TestState_PendingGestureSurvivesReset(t *testing.T) {
	st := New(settings.Default(), nil)

	press := frame(100, 100)
	press.Pressed = true
	st.Step(press, dt)

	reset := frame(150, 100)
	reset.Reset = true
	st.Step(reset, dt)

	release := frame(200, 100)
	release.Released = true
	st.Step(release, dt)

	if len(st.World.Bodies) != 1 {
		t.Fatalf("got %d bodies, want the pre-reset gesture completed", len(st.World.Bodies))
	}
	b := st.World.Bodies[0]
	if b.Pos.X != 100 || b.Pos.Y != 100 {
		t.Errorf("pos = %v, want the original anchor kept across reset", b.Pos)
	}
}

func TestState_Toggles(t *testing.T) {
	st := New(settings.Default(), nil)

	f := frame(0, 0)
	f.ToggleHUD = true
	f.ToggleElastic = true

	st.Step(f, dt)
	if st.ShowHUD {
		t.Error("H did not hide the HUD")
	}
	if !st.Elastic {
		t.Error("E did not arm elastic collisions")
	}

	st.Step(f, dt)
	if !st.ShowHUD || st.Elastic {
		t.Error("second toggle did not restore the defaults")
	}
}

func TestState_CameraThroughStep(t *testing.T) {
	st := New(settings.Default(), nil)

	pan := frame(0, 0)
	pan.Pan = rl.NewVector2(1, 0)
	st.Step(pan, 1)
	if st.Camera.Offset.X != 300 {
		t.Errorf("offset = %v, want one second of pan: (300, 0)", st.Camera.Offset)
	}

	scroll := frame(0, 0)
	scroll.Scroll = 1
	st.Step(scroll, dt)
	if !approx(st.Camera.Zoom, 1.1) {
		t.Errorf("zoom = %v, want 1.1", st.Camera.Zoom)
	}
}

func TestState_CursorFallsBackToCenter(t *testing.T) {
	st := New(settings.Default(), nil)

	f := input.Frame{
		Cursor:         rl.NewVector2(9999, 9999),
		CursorOnScreen: false,
		ScreenCenter:   rl.NewVector2(640, 360),
		Pressed:        true,
		Released:       true,
	}
	st.Step(f, dt)

	if st.CursorWorld != (rl.Vector2{}) {
		t.Errorf("cursor world = %v, want the world origin under the center", st.CursorWorld)
	}
	if len(st.World.Bodies) != 1 {
		t.Fatalf("got %d bodies, want 1", len(st.World.Bodies))
	}
	if b := st.World.Bodies[0]; b.Pos != (rl.Vector2{}) || b.Vel != (rl.Vector2{}) {
		t.Errorf("body pos %v vel %v, want both at the origin", b.Pos, b.Vel)
	}
}

func TestState_PhysicsAdvances(t *testing.T) {
	st := New(settings.Default(), nil)

	press := frame(0, 0)
	press.Pressed = true
	st.Step(press, dt)

	release := frame(100, 0)
	release.Released = true
	st.Step(release, dt)

	st.Step(frame(0, 0), 0.5)
	b := st.World.Bodies[0]
	if b.Pos.X != 2.5 {
		t.Errorf("pos.X = %v, want 2.5 after half a second at speed 5", b.Pos.X)
	}

	st.Step(frame(0, 0), 0.5)
	if b.Pos.X != 5 {
		t.Errorf("pos.X = %v, want 5 after a full second", b.Pos.X)
	}
}

func TestState_PrefsPlumbing(t *testing.T) {
	prefs := settings.Prefs{
		SpawnDensity:     2,
		SpawnSize:        10,
		SymmetricGravity: true,
	}
	st := New(prefs, nil)

	if !st.World.Symmetric {
		t.Error("symmetric gravity preference not applied")
	}
	if st.ShowHUD {
		t.Error("HUD shown despite the preference")
	}

	press := frame(0, 0)
	press.Pressed = true
	press.Released = true
	st.Step(press, dt)

	b := st.World.Bodies[0]
	if b.Mass != 200 || b.Radius != 10 {
		t.Errorf("mass %v radius %v, want 2.0 density x 10^2 and size 10", b.Mass, b.Radius)
	}
}

func TestState_LogsEvents(t *testing.T) {
	log := logger.NewPath(filepath.Join(t.TempDir(), "events.txt"))
	st := New(settings.Default(), log)

	press := frame(100, 100)
	press.Pressed = true
	press.Released = true
	st.Step(press, dt)

	reset := frame(0, 0)
	reset.Reset = true
	st.Step(reset, dt)

	lines := log.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "spawned body 1 at (100.0, 100.0)") {
		t.Errorf("spawn line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "reset") {
		t.Errorf("reset line = %q", lines[1])
	}
}
