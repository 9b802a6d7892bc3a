// Package config centralizes all tunable game parameters.
package config

import "time"

// Screen - the logical playfield. Rendering scales it to the terminal.
const (
	ScreenWidth  = 640
	ScreenHeight = 480
)

// Pools
const (
	BulletCount  = 32 // Fixed bullet pool; firing is a no-op once all are in flight
	MaxAsteroids = 0  // Asteroid pool capacity, 0 for unbounded
	StarCount    = 100
)

// Spawning
const (
	InitialAsteroids = 3
	SpawnDelayMin    = 1.0 // Seconds until the next asteroid, at least
	SpawnDelayRange  = 4.0 // Extra random seconds on top of SpawnDelayMin
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	MaxElapsed      = 100 * time.Millisecond // Longer frames are clamped
)

// Environment variables read by the hosts.
const (
	EnvLogLevel = "FLXTEROIDS_LOG_LEVEL"
	EnvLogFile  = "FLXTEROIDS_LOG_FILE"
	EnvSeed     = "FLXTEROIDS_SEED"
)
