package object

import (
	"math"

	"github.com/tomz197/flxteroids/internal/physics"
)

// Kind identifies which variant of Entity a record is.
type Kind int

const (
	KindStar Kind = iota
	KindShip
	KindAsteroid
	KindBullet
)

func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindShip:
		return "ship"
	case KindAsteroid:
		return "asteroid"
	case KindBullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// boundingBoxScale is the fraction of the frame used for collisions by
// entities with a shrunk bounding box.
const boundingBoxScale = 0.75

// Entity is a movable, wrapping physics object.
// Pos is the top-left of the bounding box; the visual frame starts at Pos-Offset.
type Entity struct {
	Kind Kind

	Pos             physics.Vector // Position (top-left of bounding box)
	Vel             physics.Vector // Velocity (units/sec)
	Acc             physics.Vector // Acceleration (units/sec²)
	Angle           float64        // Rotation in degrees
	AngularVelocity float64        // Degrees per second

	Width       float64        // Bounding box width
	Height      float64        // Bounding box height
	FrameWidth  float64        // Full sprite width
	FrameHeight float64        // Full sprite height
	Offset      physics.Vector // Bounding box inset within the frame

	Mass       float64
	Elasticity float64

	Alive   bool // Participates in simulation and collision
	Visible bool // Drawn
	Active  bool // Receives per-frame update

	// Asteroid only
	Tier      AsteroidTier
	TouchedBy *Entity // Asteroid bounced off during the last collision pass
}

// SetFrame sets both the frame and bounding box to w x h with no offset.
func (e *Entity) SetFrame(w, h float64) {
	e.FrameWidth = w
	e.FrameHeight = h
	e.Width = w
	e.Height = h
	e.Offset = physics.Vector{}
}

// ShrinkBoundingBox reduces the collision box to 75% of the frame and
// centers it inside the frame.
func (e *Entity) ShrinkBoundingBox() {
	e.Width = e.FrameWidth * boundingBoxScale
	e.Height = e.FrameHeight * boundingBoxScale
	e.Offset = physics.Vector{
		X: (e.FrameWidth - e.Width) / 2,
		Y: (e.FrameHeight - e.Height) / 2,
	}
}

// Center returns the center of the bounding box.
func (e *Entity) Center() physics.Vector {
	return physics.Vector{X: e.Pos.X + e.Width/2, Y: e.Pos.Y + e.Height/2}
}

// Reset revives the entity at (x, y) with no motion.
func (e *Entity) Reset(x, y float64) {
	e.Pos = physics.Vector{X: x, Y: y}
	e.Vel = physics.Vector{}
	e.Acc = physics.Vector{}
	e.AngularVelocity = 0
	e.TouchedBy = nil
	e.Alive = true
	e.Visible = true
	e.Active = true
}

// Kill takes the entity out of the simulation. It stays in its pool for reuse.
func (e *Entity) Kill() {
	e.Alive = false
}

// Update advances the entity by one frame, dispatching on its kind.
func (e *Entity) Update(ctx UpdateContext) {
	switch e.Kind {
	case KindShip:
		updateShip(e, ctx)
	case KindAsteroid:
		updateAsteroid(e, ctx)
	default:
		e.Integrate(ctx.Delta.Seconds(), ctx.Screen)
	}
}

// Integrate applies acceleration, velocity and spin over elapsed seconds, then wraps.
// Returns true if the entity wrapped around a screen edge.
func (e *Entity) Integrate(elapsed float64, screen Screen) bool {
	if !e.Alive || !e.Active {
		return false
	}

	e.Vel = e.Vel.Add(e.Acc.Scale(elapsed))
	e.Pos = e.Pos.Add(e.Vel.Scale(elapsed))
	e.Angle += e.AngularVelocity * elapsed

	return e.Wrap(screen)
}

// Wrap teleports the entity to the opposite edge once its frame has fully left the screen.
// Uses the frame size rather than the bounding box so a partly visible sprite never vanishes.
func (e *Entity) Wrap(screen Screen) bool {
	w := float64(screen.Width)
	h := float64(screen.Height)
	wrapped := false

	if e.Pos.X < -e.FrameWidth+e.Offset.X {
		e.Pos.X = w + e.Offset.X
		wrapped = true
	} else if e.Pos.X > w+e.Offset.X {
		e.Pos.X = -e.FrameWidth + e.Offset.X
		wrapped = true
	}

	if e.Pos.Y < -e.FrameHeight+e.Offset.Y {
		e.Pos.Y = h + e.Offset.Y
		wrapped = true
	} else if e.Pos.Y > h+e.Offset.Y {
		e.Pos.Y = -e.FrameHeight + e.Offset.Y
		wrapped = true
	}

	return wrapped
}

// Overlaps reports whether the bounding boxes of two live entities intersect.
func (e *Entity) Overlaps(other *Entity) bool {
	if !e.Alive || !other.Alive {
		return false
	}
	return physics.Overlap(
		e.Pos.X, e.Pos.Y, e.Width, e.Height,
		other.Pos.X, other.Pos.Y, other.Width, other.Height,
	)
}

// spinFromVelocity couples tumbling speed to linear speed.
func (e *Entity) spinFromVelocity() {
	e.AngularVelocity = math.Abs(e.Vel.X) + math.Abs(e.Vel.Y)
}
