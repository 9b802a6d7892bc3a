package loop

import (
	"github.com/tomz197/flxteroids/internal/draw"
	"github.com/tomz197/flxteroids/internal/object"
	"github.com/tomz197/flxteroids/internal/physics"
)

// asteroidShape scales the radius of each asteroid vertex, giving a lumpy outline.
var asteroidShape = [...]float64{1, 0.85, 0.95, 0.8, 1, 0.9, 0.75, 0.95, 0.85, 1}

// canvasRenderer draws entities onto a canvas in logical coordinates.
type canvasRenderer struct {
	canvas *draw.Canvas
}

var _ object.Renderer = canvasRenderer{}

func (r canvasRenderer) DrawEntity(e *object.Entity) {
	switch e.Kind {
	case object.KindStar:
		r.canvas.SetFloat(e.Pos.X, e.Pos.Y)
	case object.KindShip:
		r.drawShip(e)
	case object.KindAsteroid:
		r.drawAsteroid(e)
	case object.KindBullet:
		r.drawBullet(e)
	}
}

// frameCenter returns the center of e's visual frame.
func frameCenter(e *object.Entity) physics.Vector {
	return physics.Vector{
		X: e.Pos.X - e.Offset.X + e.FrameWidth/2,
		Y: e.Pos.Y - e.Offset.Y + e.FrameHeight/2,
	}
}

// drawShip draws a triangle with its nose along the facing.
func (r canvasRenderer) drawShip(e *object.Entity) {
	c := frameCenter(e)
	radius := e.FrameWidth / 2

	points := r.canvas.BorrowPoints(3)
	points[0] = toPoint(physics.RotatePoint(c.X+radius, c.Y, c.X, c.Y, e.Angle))
	points[1] = toPoint(physics.RotatePoint(c.X+radius*0.7, c.Y, c.X, c.Y, e.Angle+140))
	points[2] = toPoint(physics.RotatePoint(c.X+radius*0.7, c.Y, c.X, c.Y, e.Angle-140))
	r.canvas.DrawPolygon(points, false)
}

func (r canvasRenderer) drawAsteroid(e *object.Entity) {
	c := frameCenter(e)
	radius := e.FrameWidth / 2
	step := 360.0 / float64(len(asteroidShape))

	points := r.canvas.BorrowPoints(len(asteroidShape))
	for i, scale := range asteroidShape {
		p := physics.RotatePoint(c.X+radius*scale, c.Y, c.X, c.Y, e.Angle+float64(i)*step)
		points[i] = toPoint(p)
	}
	r.canvas.DrawPolygon(points, false)
}

// drawBullet draws a filled rectangle rotated to the bullet's heading.
func (r canvasRenderer) drawBullet(e *object.Entity) {
	c := frameCenter(e)
	hw := e.FrameWidth / 2
	hh := e.FrameHeight / 2

	points := r.canvas.BorrowPoints(4)
	points[0] = toPoint(physics.RotatePoint(c.X-hw, c.Y-hh, c.X, c.Y, e.Angle))
	points[1] = toPoint(physics.RotatePoint(c.X+hw, c.Y-hh, c.X, c.Y, e.Angle))
	points[2] = toPoint(physics.RotatePoint(c.X+hw, c.Y+hh, c.X, c.Y, e.Angle))
	points[3] = toPoint(physics.RotatePoint(c.X-hw, c.Y+hh, c.X, c.Y, e.Angle))
	r.canvas.DrawPolygon(points, true)
}

func toPoint(v physics.Vector) draw.Point {
	return draw.Point{X: v.X, Y: v.Y}
}
