// Package loop provides the play state, the game state switch and the terminal game loop.
package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/flxteroids/internal/loop/config"
	"github.com/tomz197/flxteroids/internal/object"
	"github.com/tomz197/flxteroids/internal/physics"
)

// PlayState owns every pool in a play session and advances them once per tick.
type PlayState struct {
	Screen    object.Screen
	Stars     *object.Group
	Asteroids *object.Group
	Bullets   *object.Group
	Ship      *object.Entity

	timer  float64 // Seconds until the next asteroid spawns
	rand   *rand.Rand
	logger *log.Logger
}

// NewPlayState creates a play session with its initial asteroids, ship and bullets.
func NewPlayState(screen object.Screen, r *rand.Rand, logger *log.Logger) *PlayState {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &PlayState{
		Screen: screen,
		rand:   r,
		logger: logger,
	}
	s.Reset()
	return s
}

// Reset replaces the whole session: new stars, asteroids, ship, bullets and spawn timer.
func (s *PlayState) Reset() {
	w := float64(s.Screen.Width)
	h := float64(s.Screen.Height)

	s.Stars = object.NewGroup(config.StarCount)
	for i := 0; i < config.StarCount; i++ {
		s.Stars.Add(object.NewStar(physics.Random(s.rand, w), physics.Random(s.rand, h)))
	}

	s.Asteroids = object.NewGroup(config.MaxAsteroids)
	for i := 0; i < config.InitialAsteroids; i++ {
		s.spawnAsteroid()
	}

	s.Ship = object.NewShip(s.Screen)

	s.Bullets = object.NewGroup(config.BulletCount)
	for i := 0; i < config.BulletCount; i++ {
		s.Bullets.Add(object.NewBullet())
	}

	s.resetTimer()
	s.logger.Debug("play state reset", "asteroids", s.Asteroids.CountAlive())
}

// Tick advances the session by delta: spawning, movement, collisions and restart on death.
func (s *PlayState) Tick(delta time.Duration, controls object.Controls) {
	s.timer -= delta.Seconds()
	if s.timer <= 0 {
		s.spawnAsteroid()
		s.resetTimer()
	}

	if controls.Fire && !object.Fire(s.Ship, s.Bullets) {
		s.logger.Debug("no bullets available")
	}

	ctx := s.updateContext(delta, controls)
	s.Ship.Update(ctx)
	s.Asteroids.Update(ctx)
	s.Bullets.Update(ctx)

	s.checkCollisions()

	if !s.Ship.Alive {
		s.logger.Info("ship destroyed, restarting")
		s.Reset()
	}
}

// Draw hands every live, visible entity to r, background first.
func (s *PlayState) Draw(r object.Renderer) {
	s.Stars.Draw(r)
	s.Asteroids.Draw(r)
	if s.Ship.Alive && s.Ship.Visible {
		r.DrawEntity(s.Ship)
	}
	s.Bullets.Draw(r)
}

// SpawnTimer returns the seconds left until the next asteroid spawns.
func (s *PlayState) SpawnTimer() float64 {
	return s.timer
}

func (s *PlayState) updateContext(delta time.Duration, controls object.Controls) object.UpdateContext {
	return object.UpdateContext{
		Delta:     delta,
		Controls:  controls,
		Screen:    s.Screen,
		Rand:      s.rand,
		Asteroids: s.Asteroids,
		Logger:    s.logger,
	}
}

// spawnAsteroid brings a large asteroid in from a random edge.
func (s *PlayState) spawnAsteroid() {
	a, ok := s.Asteroids.Recycle(object.NewAsteroid)
	if !ok {
		s.logger.Debug("asteroid pool full, spawn skipped")
		return
	}
	object.CreateAsteroid(a, object.AsteroidLarge, s.Screen, s.rand)
}

func (s *PlayState) resetTimer() {
	s.timer = config.SpawnDelayMin + physics.Random(s.rand, config.SpawnDelayRange)
}
