package object

import (
	"github.com/tomz197/flxteroids/internal/physics"
)

// Ship handling.
const (
	ShipSize          = 16.0  // Frame width and height
	ShipRotationSpeed = 240.0 // Degrees per second
	ShipThrust        = 90.0  // Acceleration when thrusting
)

// NewShip creates the player-controlled ship in the middle of the screen.
func NewShip(screen Screen) *Entity {
	e := &Entity{Kind: KindShip, Mass: 1}
	e.SetFrame(ShipSize, ShipSize)
	e.ShrinkBoundingBox()
	e.Reset(float64(screen.CenterX)-ShipSize/2, float64(screen.CenterY)-ShipSize/2)
	return e
}

// updateShip maps controls to spin and thrust, then moves the ship.
func updateShip(e *Entity, ctx UpdateContext) {
	e.AngularVelocity = 0
	if ctx.Controls.Left {
		e.AngularVelocity -= ShipRotationSpeed
	}
	if ctx.Controls.Right {
		e.AngularVelocity += ShipRotationSpeed
	}

	e.Acc = physics.Vector{}
	if ctx.Controls.Thrust {
		e.Acc = physics.RotatePoint(ShipThrust, 0, 0, 0, e.Angle)
	}

	e.Integrate(ctx.Delta.Seconds(), ctx.Screen)
}

// Fire launches the first free bullet from the ship's center along its facing,
// carrying the ship's momentum. Returns false if every bullet is in flight.
func Fire(ship *Entity, bullets *Group) bool {
	if !ship.Alive {
		return false
	}
	b, ok := bullets.FirstDead()
	if !ok {
		return false
	}

	b.Pos = physics.Vector{
		X: ship.Pos.X + (ship.Width-b.Width)/2,
		Y: ship.Pos.Y + (ship.Height-b.Height)/2,
	}
	b.Angle = ship.Angle
	b.Vel = physics.RotatePoint(BulletSpeed, 0, 0, 0, b.Angle).Add(ship.Vel)
	b.Acc = physics.Vector{}
	b.AngularVelocity = 0
	b.Alive = true
	b.Visible = true
	b.Active = true
	return true
}
