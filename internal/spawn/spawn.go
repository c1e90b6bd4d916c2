// Package spawn tracks the click-drag gesture that launches new bodies.
package spawn

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// dragDivisor scales the drag vector down to a launch velocity.
const dragDivisor = 20.0

// Gesture is a press-drag-release spawn gesture. A press anchors the
// gesture at a world position; the matching release yields that anchor
// and a velocity taken from the drag between the two points.
type Gesture struct {
	anchor rl.Vector2
	armed  bool
}

// Press anchors the gesture at a world position. Extra presses while a
// gesture is already armed keep the original anchor.
func (g *Gesture) Press(world rl.Vector2) {
	if g.armed {
		return
	}
	g.anchor = world
	g.armed = true
}

// Release completes the gesture. It reports the anchor position and the
// launch velocity, and whether a gesture was armed at all. A release
// without a matching press is ignored.
func (g *Gesture) Release(world rl.Vector2) (anchor, vel rl.Vector2, ok bool) {
	if !g.armed {
		return rl.Vector2{}, rl.Vector2{}, false
	}
	g.armed = false
	vel = rl.Vector2Scale(rl.Vector2Subtract(world, g.anchor), 1.0/dragDivisor)
	return g.anchor, vel, true
}

// Pending reports the anchor of the gesture in progress, if any.
func (g *Gesture) Pending() (rl.Vector2, bool) {
	return g.anchor, g.armed
}
