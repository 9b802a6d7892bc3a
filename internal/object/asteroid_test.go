package object

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/flxteroids/internal/physics"
)

func TestAsteroidTier_Properties(t *testing.T) {
	tests := []struct {
		tier    AsteroidTier
		mass    float64
		frame   float64
		smaller AsteroidTier
		splits  bool
	}{
		{AsteroidLarge, 9, 64, AsteroidMedium, true},
		{AsteroidMedium, 3, 48, AsteroidSmall, true},
		{AsteroidSmall, 1, 32, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			e := NewAsteroid()
			CreateAsteroid(e, tt.tier, testScreen(), fixedRand(0.5))

			if e.Mass != tt.mass {
				t.Errorf("Mass = %v, want %v", e.Mass, tt.mass)
			}
			if e.FrameWidth != tt.frame || e.Width != tt.frame*0.75 {
				t.Errorf("frame %v box %v, want frame %v box %v", e.FrameWidth, e.Width, tt.frame, tt.frame*0.75)
			}
			smaller, ok := tt.tier.Smaller()
			if ok != tt.splits || smaller != tt.smaller {
				t.Errorf("Smaller() = %v,%v want %v,%v", smaller, ok, tt.smaller, tt.splits)
			}
		})
	}
}

func TestCreateAsteroid_EdgeSpawn(t *testing.T) {
	screen := testScreen()

	t.Run("left_edge", func(t *testing.T) {
		e := NewAsteroid()
		CreateAsteroid(e, AsteroidLarge, screen, fixedRand(0.25))

		if e.Pos.X != -64+8 {
			t.Errorf("Pos.X = %v, want -56", e.Pos.X)
		}
		if e.Pos.Y != 0.25*(480-48) {
			t.Errorf("Pos.Y = %v, want %v", e.Pos.Y, 0.25*(480-48))
		}
		if e.Vel != (physics.Vector{X: 15, Y: -10}) {
			t.Errorf("Vel = %+v, want {15 -10}", e.Vel)
		}
		if e.AngularVelocity != 25 {
			t.Errorf("AngularVelocity = %v, want 25", e.AngularVelocity)
		}
		if e.Angle != 90 {
			t.Errorf("Angle = %v, want 90", e.Angle)
		}
		if !e.Alive || !e.Visible || !e.Active {
			t.Error("created asteroid should be alive, visible and active")
		}
	})

	t.Run("bottom_edge", func(t *testing.T) {
		e := NewAsteroid()
		CreateAsteroid(e, AsteroidLarge, screen, fixedRand(0.75))

		if e.Pos.Y != 480+8 {
			t.Errorf("Pos.Y = %v, want 488", e.Pos.Y)
		}
		if e.Vel != (physics.Vector{X: 10, Y: -25}) {
			t.Errorf("Vel = %+v, want {10 -25}", e.Vel)
		}
		if e.AngularVelocity != 35 {
			t.Errorf("AngularVelocity = %v, want 35", e.AngularVelocity)
		}
	})

	t.Run("moves_into_screen", func(t *testing.T) {
		r := rand.New(rand.NewSource(11))
		for i := 0; i < 200; i++ {
			e := NewAsteroid()
			CreateAsteroid(e, AsteroidLarge, screen, r)

			c := e.Center()
			toCenter := physics.Vector{X: float64(screen.CenterX) - c.X, Y: float64(screen.CenterY) - c.Y}
			switch {
			case e.Pos.X < 0:
				if e.Vel.X <= 0 {
					t.Fatalf("left spawn moving away: %+v", e.Vel)
				}
			case e.Pos.X >= float64(screen.Width):
				if e.Vel.X >= 0 {
					t.Fatalf("right spawn moving away: %+v", e.Vel)
				}
			case e.Pos.Y < 0:
				if e.Vel.Y <= 0 {
					t.Fatalf("top spawn moving away: %+v", e.Vel)
				}
			case e.Pos.Y >= float64(screen.Height):
				if e.Vel.Y >= 0 {
					t.Fatalf("bottom spawn moving away: %+v", e.Vel)
				}
			default:
				t.Fatalf("spawn at %+v is not outside an edge (toCenter %+v)", e.Pos, toCenter)
			}
			if e.AngularVelocity != math.Abs(e.Vel.X)+math.Abs(e.Vel.Y) {
				t.Fatalf("spin %v not derived from velocity %+v", e.AngularVelocity, e.Vel)
			}
		}
	})
}

func fragmentContext(pool *Group, r physics.Rand) UpdateContext {
	return UpdateContext{Screen: testScreen(), Rand: r, Asteroids: pool}
}

func TestFragment_Monotonic(t *testing.T) {
	tests := []struct {
		parent   AsteroidTier
		child    AsteroidTier
		min, max int
	}{
		{AsteroidLarge, AsteroidMedium, 2, 4},
		{AsteroidMedium, AsteroidSmall, 2, 4},
		{AsteroidSmall, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.parent.String(), func(t *testing.T) {
			for seed := int64(1); seed <= 50; seed++ {
				r := rand.New(rand.NewSource(seed))
				pool := NewGroup(0)
				parent, _ := pool.Recycle(NewAsteroid)
				CreateAsteroid(parent, tt.parent, testScreen(), r)
				parentWidth := parent.Width

				parent.Kill()
				n := Fragment(parent, fragmentContext(pool, r))

				if n < tt.min || n > tt.max {
					t.Fatalf("seed %d: %d fragments, want %d-%d", seed, n, tt.min, tt.max)
				}
				if alive := pool.CountAlive(); alive != n {
					t.Fatalf("seed %d: %d alive, want %d", seed, alive, n)
				}
				pool.ForEachAlive(func(_ int, e *Entity) {
					if e.Tier != tt.child {
						t.Fatalf("seed %d: fragment tier %v, want %v", seed, e.Tier, tt.child)
					}
					if e.Width >= parentWidth {
						t.Fatalf("seed %d: fragment box %v not smaller than parent %v", seed, e.Width, parentWidth)
					}
				})
			}
		})
	}
}

func TestFragment_PlacedAtParentCenter(t *testing.T) {
	pool := NewGroup(0)
	parent, _ := pool.Recycle(NewAsteroid)
	CreateFragment(parent, AsteroidLarge, physics.Vector{X: 200, Y: 150}, physics.Vector{}, fixedRand(0.5))

	parent.Kill()
	n := Fragment(parent, fragmentContext(pool, fixedRand(0.999)))

	if n != 4 {
		t.Fatalf("spawned %d fragments, want 4", n)
	}
	pool.ForEachAlive(func(_ int, e *Entity) {
		if c := e.Center(); math.Abs(c.X-200) > 1e-9 || math.Abs(c.Y-150) > 1e-9 {
			t.Errorf("fragment centered at %+v, want {200 150}", c)
		}
		v := fragmentSpeeds[AsteroidMedium]
		if e.Vel.X < -v || e.Vel.X >= v || e.Vel.Y < -v || e.Vel.Y >= v {
			t.Errorf("fragment velocity %+v outside [-%v,%v)", e.Vel, v, v)
		}
	})
}

func TestFragment_DropsWhenPoolFull(t *testing.T) {
	pool := NewGroup(2)
	parent, _ := pool.Recycle(NewAsteroid)
	CreateAsteroid(parent, AsteroidLarge, testScreen(), fixedRand(0.5))
	other, _ := pool.Recycle(NewAsteroid)
	CreateAsteroid(other, AsteroidLarge, testScreen(), fixedRand(0.5))

	parent.Kill()
	n := Fragment(parent, fragmentContext(pool, fixedRand(0.999)))

	if n != 1 {
		t.Errorf("spawned %d fragments into a full pool, want 1 (the parent's slot)", n)
	}
	if pool.Len() != 2 {
		t.Errorf("fixed pool grew to %d", pool.Len())
	}
}

func TestUpdateAsteroid_SpinRefresh(t *testing.T) {
	screen := testScreen()

	t.Run("after_bounce", func(t *testing.T) {
		a := NewAsteroid()
		CreateFragment(a, AsteroidSmall, physics.Vector{X: 300, Y: 200}, physics.Vector{X: 10, Y: 0}, fixedRand(0.5))
		other := NewAsteroid()
		a.Vel = physics.Vector{X: -30, Y: 40}
		a.TouchedBy = other

		a.Update(UpdateContext{Delta: 0, Screen: screen})

		if a.AngularVelocity != 70 {
			t.Errorf("AngularVelocity = %v, want 70", a.AngularVelocity)
		}
		if a.TouchedBy != nil {
			t.Error("TouchedBy should be cleared after update")
		}
	})

	t.Run("on_wrap", func(t *testing.T) {
		a := NewAsteroid()
		CreateFragment(a, AsteroidSmall, physics.Vector{X: 639, Y: 200}, physics.Vector{X: 10, Y: 0}, fixedRand(0.5))
		a.Vel = physics.Vector{X: 100, Y: 5}
		a.AngularVelocity = 0

		a.Update(UpdateContext{Delta: 1e9, Screen: screen})

		if a.Pos.X != -a.FrameWidth+a.Offset.X {
			t.Fatalf("asteroid did not wrap, Pos.X = %v", a.Pos.X)
		}
		if a.AngularVelocity != 105 {
			t.Errorf("AngularVelocity = %v, want 105", a.AngularVelocity)
		}
	})

	t.Run("no_refresh_mid_screen", func(t *testing.T) {
		a := NewAsteroid()
		CreateFragment(a, AsteroidSmall, physics.Vector{X: 300, Y: 200}, physics.Vector{X: 10, Y: 0}, fixedRand(0.5))
		a.Vel = physics.Vector{X: 100, Y: 5}
		a.AngularVelocity = 1

		a.Update(UpdateContext{Delta: 1e8, Screen: screen})

		if a.AngularVelocity != 1 {
			t.Errorf("AngularVelocity = %v, want 1", a.AngularVelocity)
		}
	})
}
