// Package object holds the game entities and the pools that recycle them.
package object

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/flxteroids/internal/physics"
)

// Screen represents the logical playfield dimensions.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen creates a screen of the given size with its center precomputed.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// Controls is the per-frame player intent derived from input.
// Left, Right and Thrust are held state; Fire is true only on the frame the key went down.
type Controls struct {
	Left   bool
	Right  bool
	Thrust bool
	Fire   bool
}

// UpdateContext provides all the information an entity needs during update.
type UpdateContext struct {
	Delta     time.Duration
	Controls  Controls
	Screen    Screen
	Rand      physics.Rand
	Asteroids *Group // Pool asteroid fragments are recycled from
	Logger    *log.Logger
}

// Renderer draws a single live entity. The play state decides what is visible;
// the renderer only decides how it looks.
type Renderer interface {
	DrawEntity(e *Entity)
}
