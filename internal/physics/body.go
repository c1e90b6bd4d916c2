package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// G is the gravitational constant. Tuned for on-screen scales, not SI.
const G = 0.0005

// minDistSq is the softening threshold: a pair closer than one world unit
// (squared distance below this) exerts no force, so overlapping or
// near-coincident bodies cannot blow up the integration.
const minDistSq = 1.0

// bodyColor is the display color given to every spawned body.
var bodyColor = rl.NewColor(200, 200, 255, 255)

// Body is a 2D point-mass disc: position and velocity in world units, a
// mass derived from density and size, and a display color fixed at creation.
type Body struct {
	Pos    rl.Vector2
	Vel    rl.Vector2
	Mass   float32
	Radius float32
	Color  rl.Color
}

// NewBody returns a body at pos with the given initial velocity. Mass uses
// the area-proportional model mass = density * size^2; radius = size and
// never changes afterwards. Non-positive density or size falls back to 1 so
// an existing body always has strictly positive mass and radius.
func NewBody(pos, vel rl.Vector2, density, size float32) *Body {
	if density <= 0 {
		density = 1
	}
	if size <= 0 {
		size = 1
	}
	return &Body{
		Pos:    pos,
		Vel:    vel,
		Mass:   density * size * size,
		Radius: size,
		Color:  bodyColor,
	}
}

// ApplyGravity adds one frame of Newtonian pull from other to b's velocity.
// Only b changes; other is read-only in this interaction. Pairs under the
// softening threshold are skipped entirely.
func (b *Body) ApplyGravity(other *Body) {
	dir := rl.Vector2Subtract(other.Pos, b.Pos)
	distSq := dir.X*dir.X + dir.Y*dir.Y
	if distSq < minDistSq {
		return
	}
	dist := math32.Sqrt(distSq)
	forceMag := G * b.Mass * other.Mass / distSq
	b.Vel = rl.Vector2Add(b.Vel, rl.Vector2Scale(dir, forceMag/(dist*b.Mass)))
}

// Update advances the body's position by vel * dt. Velocity is untouched;
// there is no clamping and no collision handling.
func (b *Body) Update(dt float32) {
	b.Pos = rl.Vector2Add(b.Pos, rl.Vector2Scale(b.Vel, dt))
}
