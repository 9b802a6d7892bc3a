package object

import (
	"github.com/tomz197/flxteroids/internal/physics"
)

// AsteroidTier represents the size category of an asteroid.
type AsteroidTier int

const (
	AsteroidSmall  AsteroidTier = 1
	AsteroidMedium AsteroidTier = 2
	AsteroidLarge  AsteroidTier = 3
)

// AsteroidInitialVelocity is the base speed of asteroids entering from an edge.
const AsteroidInitialVelocity = 20.0

// Size properties for each asteroid tier.
var asteroidFrames = map[AsteroidTier]float64{
	AsteroidSmall:  32,
	AsteroidMedium: 48,
	AsteroidLarge:  64,
}

var asteroidMasses = map[AsteroidTier]float64{
	AsteroidSmall:  1,
	AsteroidMedium: 3,
	AsteroidLarge:  9,
}

// fragmentSpeeds is the per-axis velocity range of fragments, keyed by the fragment's tier.
var fragmentSpeeds = map[AsteroidTier]float64{
	AsteroidMedium: AsteroidInitialVelocity * 2,
	AsteroidSmall:  AsteroidInitialVelocity * 3,
}

func (t AsteroidTier) String() string {
	switch t {
	case AsteroidSmall:
		return "small"
	case AsteroidMedium:
		return "medium"
	case AsteroidLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Smaller returns the tier fragments of t are spawned as.
// Returns false for the smallest tier, which does not split.
func (t AsteroidTier) Smaller() (AsteroidTier, bool) {
	if t <= AsteroidSmall {
		return 0, false
	}
	return t - 1, true
}

// Mass returns the mass of an asteroid of tier t.
func (t AsteroidTier) Mass() float64 {
	return asteroidMasses[t]
}

// NewAsteroid allocates an asteroid record. It is dead until created.
func NewAsteroid() *Entity {
	return &Entity{Kind: KindAsteroid, Elasticity: 1}
}

// applyTier revives e as an asteroid of the given tier with a random facing.
func applyTier(e *Entity, tier AsteroidTier, r physics.Rand) {
	e.Kind = KindAsteroid
	e.Tier = tier
	e.Mass = tier.Mass()
	e.Elasticity = 1
	size := asteroidFrames[tier]
	e.SetFrame(size, size)
	e.ShrinkBoundingBox()
	e.Reset(e.Pos.X, e.Pos.Y)
	e.Angle = physics.Random(r, 360)
}

// CreateAsteroid revives e as an asteroid just outside a random screen edge,
// drifting into the screen.
func CreateAsteroid(e *Entity, tier AsteroidTier, screen Screen, r physics.Rand) {
	applyTier(e, tier, r)

	w := float64(screen.Width)
	h := float64(screen.Height)
	v := AsteroidInitialVelocity

	if physics.Random(r, 1) < 0.5 {
		// Left or right edge
		if physics.Random(r, 1) < 0.5 {
			e.Pos.X = -e.FrameWidth + e.Offset.X
			e.Vel.X = v/2 + physics.Random(r, v)
		} else {
			e.Pos.X = w + e.Offset.X
			e.Vel.X = -v/2 - physics.Random(r, v)
		}
		e.Pos.Y = physics.Random(r, h-e.Height)
		e.Vel.Y = physics.RandomRange(r, -v, v)
	} else {
		// Top or bottom edge
		if physics.Random(r, 1) < 0.5 {
			e.Pos.Y = -e.FrameHeight + e.Offset.Y
			e.Vel.Y = v/2 + physics.Random(r, v)
		} else {
			e.Pos.Y = h + e.Offset.Y
			e.Vel.Y = -v/2 - physics.Random(r, v)
		}
		e.Pos.X = physics.Random(r, w-e.Width)
		e.Vel.X = physics.RandomRange(r, -v, v)
	}

	e.spinFromVelocity()
}

// CreateFragment revives e as an asteroid centered on center with the given velocity.
func CreateFragment(e *Entity, tier AsteroidTier, center, vel physics.Vector, r physics.Rand) {
	applyTier(e, tier, r)
	e.Pos = center.Sub(physics.Vector{X: e.Width / 2, Y: e.Height / 2})
	e.Vel = vel
	e.spinFromVelocity()
}

// Fragment splits a destroyed asteroid into 2-4 asteroids of the next smaller tier.
// Fragments the pool has no room for are dropped. Returns the number spawned.
func Fragment(parent *Entity, ctx UpdateContext) int {
	tier, ok := parent.Tier.Smaller()
	if !ok || ctx.Asteroids == nil {
		return 0
	}

	center := parent.Center()
	v := fragmentSpeeds[tier]
	count := 2 + int(physics.Random(ctx.Rand, 3))

	spawned := 0
	for i := 0; i < count; i++ {
		vel := physics.Vector{
			X: physics.RandomRange(ctx.Rand, -v, v),
			Y: physics.RandomRange(ctx.Rand, -v, v),
		}

		child, ok := ctx.Asteroids.Recycle(NewAsteroid)
		if !ok {
			if ctx.Logger != nil {
				ctx.Logger.Debug("asteroid pool full, fragment dropped", "tier", tier)
			}
			continue
		}
		CreateFragment(child, tier, center, vel, ctx.Rand)
		spawned++
	}
	return spawned
}

// updateAsteroid moves and spins the asteroid. Spin is re-derived from velocity
// after a bounce and whenever the asteroid wraps.
func updateAsteroid(e *Entity, ctx UpdateContext) {
	if e.TouchedBy != nil {
		e.spinFromVelocity()
		e.TouchedBy = nil
	}

	if e.Integrate(ctx.Delta.Seconds(), ctx.Screen) {
		e.spinFromVelocity()
	}
}
