package object

// Bullet dimensions and speed.
const (
	BulletWidth  = 10.0
	BulletHeight = 4.0
	BulletSpeed  = 150.0
)

// NewBullet creates a parked, dead bullet ready to be fired.
func NewBullet() *Entity {
	e := &Entity{Kind: KindBullet, Mass: 1}
	e.SetFrame(BulletWidth, BulletHeight)
	e.Reset(-100, -100)
	e.Alive = false
	e.Visible = false
	e.Active = false
	return e
}

// NewStar creates a one-pixel background star. Stars are drawn but never updated.
func NewStar(x, y float64) *Entity {
	e := &Entity{Kind: KindStar}
	e.SetFrame(1, 1)
	e.Reset(x, y)
	e.Active = false
	return e
}
