package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// panSpeed is the pan rate in screen pixels per second. Pan distance is
// divided by zoom so panning feels constant-speed on screen at any zoom.
const panSpeed = 300.0

// zoomStep scales one unit of wheel input into a zoom factor of 1 +/- 0.1.
const zoomStep = 0.1

// A single frame's wheel input may scale zoom by at most this factor range.
const (
	minZoomFactor = 0.1
	maxZoomFactor = 10.0
)

// Cumulative zoom bounds. The per-frame factor clamp alone lets zoom drift
// without limit over many frames, so the resulting value is bounded too.
const (
	MinZoom = 0.01
	MaxZoom = 100.0
)

// Camera maps world coordinates to screen coordinates: Offset is the world
// point shown at the middle of the screen, Zoom the positive scale factor.
// Pan and zoom input mutate it; the transform methods only read it.
type Camera struct {
	Offset rl.Vector2
	Zoom   float32
}

// New returns a camera centered on the origin at zoom 1.
func New() Camera {
	return Camera{Zoom: 1}
}

// Reset recenters the camera on the origin and restores zoom 1.
func (c *Camera) Reset() {
	c.Offset = rl.Vector2{}
	c.Zoom = 1
}

// WorldToScreen projects a world position to screen pixels:
// screen = (world - offset)*zoom + center.
func (c Camera) WorldToScreen(world, center rl.Vector2) rl.Vector2 {
	return rl.Vector2Add(rl.Vector2Scale(rl.Vector2Subtract(world, c.Offset), c.Zoom), center)
}

// ScreenToWorld is the inverse projection:
// world = (screen - center)/zoom + offset.
func (c Camera) ScreenToWorld(screen, center rl.Vector2) rl.Vector2 {
	return rl.Vector2Add(rl.Vector2Scale(rl.Vector2Subtract(screen, center), 1/c.Zoom), c.Offset)
}

// Pan translates the offset along dir (axis components -1, 0, or 1) by
// panSpeed*dt/zoom per axis.
func (c *Camera) Pan(dir rl.Vector2, dt float32) {
	c.Offset = rl.Vector2Add(c.Offset, rl.Vector2Scale(dir, panSpeed*dt/c.Zoom))
}

// ZoomBy applies one frame of wheel input. Zoom is scaled, not set: the
// factor 1 + scroll*zoomStep is clamped per event, and the cumulative zoom
// is then clamped to [MinZoom, MaxZoom] so it cannot drift unboundedly.
func (c *Camera) ZoomBy(scroll float32) {
	factor := 1 + scroll*zoomStep
	factor = min(max(factor, minZoomFactor), maxZoomFactor)
	c.Zoom = min(max(c.Zoom*factor, MinZoom), MaxZoom)
}
