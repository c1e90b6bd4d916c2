package physics

// World holds the ordered body collection and runs the per-frame simulation
// step: pairwise gravity accumulation, then explicit Euler integration.
type World struct {
	Bodies []*Body

	// Symmetric selects textbook pairwise accumulation: every ordered pair
	// (i, j), i != j, pulls on body i, so both sides of a pair feel the
	// interaction and momentum is conserved. The default (false) is the
	// one-sided partition walk: body i is pulled by bodies i+1..n-1 only,
	// and the last body feels nothing.
	Symmetric bool
}

// NewWorld returns an empty world using one-sided accumulation.
func NewWorld() *World {
	return &World{}
}

// AddBody appends a body to the world. Order is preserved; in one-sided
// mode it decides which body of a pair gets updated.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// Reset removes all bodies.
func (w *World) Reset() {
	w.Bodies = nil
}

// ApplyGravity accumulates one frame of gravitational pull into body
// velocities, visiting pairs according to the Symmetric mode. Positions are
// only read here, so iteration order cannot skew the result within a frame.
func (w *World) ApplyGravity() {
	if w.Symmetric {
		for i, b := range w.Bodies {
			for j, other := range w.Bodies {
				if i == j {
					continue
				}
				b.ApplyGravity(other)
			}
		}
		return
	}
	for i, b := range w.Bodies {
		for _, other := range w.Bodies[i+1:] {
			b.ApplyGravity(other)
		}
	}
}

// Integrate advances every body's position by its velocity over dt.
func (w *World) Integrate(dt float32) {
	for _, b := range w.Bodies {
		b.Update(dt)
	}
}

// Step runs one simulation frame: gravity first, then integration, so
// positions move with the velocities just updated.
func (w *World) Step(dt float32) {
	w.ApplyGravity()
	w.Integrate(dt)
}
