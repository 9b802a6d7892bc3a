package loop

import (
	"github.com/tomz197/flxteroids/internal/object"
)

// checkCollisions resolves all collisions for the frame in a fixed order.
func (s *PlayState) checkCollisions() {
	s.checkBulletAsteroidCollisions()
	s.checkAsteroidShipCollisions()
	s.checkAsteroidAsteroidCollisions()
}

// checkBulletAsteroidCollisions destroys each bullet together with the first
// asteroid it overlaps, in pool order.
// Pool lengths are re-read every step: fragments spawned by a hit can be hit
// by later bullets in the same frame.
func (s *PlayState) checkBulletAsteroidCollisions() {
	for i := 0; i < s.Bullets.Len(); i++ {
		b := s.Bullets.Member(i)
		if !b.Alive {
			continue
		}
		for j := 0; j < s.Asteroids.Len(); j++ {
			a := s.Asteroids.Member(j)
			if !a.Alive {
				continue
			}
			if b.Overlaps(a) {
				s.stuffHitStuff(b, a)
				break
			}
		}
	}
}

// checkAsteroidShipCollisions destroys the ship and the first asteroid touching it.
func (s *PlayState) checkAsteroidShipCollisions() {
	for i := 0; i < s.Asteroids.Len(); i++ {
		a := s.Asteroids.Member(i)
		if !a.Alive {
			continue
		}
		if a.Overlaps(s.Ship) {
			s.stuffHitStuff(a, s.Ship)
			return
		}
	}
}

// checkAsteroidAsteroidCollisions bounces every overlapping pair once.
func (s *PlayState) checkAsteroidAsteroidCollisions() {
	n := s.Asteroids.Len()
	for i := 0; i < n; i++ {
		a1 := s.Asteroids.Member(i)
		if !a1.Alive {
			continue
		}
		for j := i + 1; j < n; j++ {
			a2 := s.Asteroids.Member(j)
			if !a2.Alive {
				continue
			}
			if a1.Overlaps(a2) {
				bounceAsteroids(a1, a2)
			}
		}
	}
}

// bounceAsteroids swaps the velocities of two asteroids. Mass is ignored.
func bounceAsteroids(a1, a2 *object.Entity) {
	a1.TouchedBy = a2
	a2.TouchedBy = a1
	a1.Vel, a2.Vel = a2.Vel, a1.Vel
}

// stuffHitStuff destroys both entities of a collision.
func (s *PlayState) stuffHitStuff(e1, e2 *object.Entity) {
	s.destroy(e1)
	s.destroy(e2)
}

// destroy kills e; a destroyed asteroid breaks into fragments.
func (s *PlayState) destroy(e *object.Entity) {
	e.Kill()
	if e.Kind == object.KindAsteroid {
		tier := e.Tier // Fragment may reuse e's slot
		n := object.Fragment(e, s.updateContext(0, object.Controls{}))
		s.logger.Debug("asteroid destroyed", "tier", tier, "fragments", n)
	}
}
