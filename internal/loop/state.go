package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/flxteroids/internal/input"
	"github.com/tomz197/flxteroids/internal/loop/config"
	"github.com/tomz197/flxteroids/internal/object"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateMenu    GameState = iota // Title screen
	GameStatePlaying                  // Active gameplay
)

func (s GameState) String() string {
	switch s {
	case GameStateMenu:
		return "menu"
	case GameStatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Game switches between the title screen and a play session.
type Game struct {
	State  GameState
	Play   *PlayState // nil until the first game starts
	Screen object.Screen

	rand   *rand.Rand
	logger *log.Logger
}

// NewGame creates a game sitting on the title screen.
func NewGame(r *rand.Rand, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		State:  GameStateMenu,
		Screen: object.NewScreen(config.ScreenWidth, config.ScreenHeight),
		rand:   r,
		logger: logger,
	}
}

// Step advances the game by delta, clamped to MaxElapsed.
func (g *Game) Step(delta time.Duration, in input.Input) {
	delta = ClampElapsed(delta)

	switch g.State {
	case GameStateMenu:
		if in.Pressed.Space || in.Pressed.Enter {
			g.start()
		}
	case GameStatePlaying:
		g.Play.Tick(delta, ControlsFromInput(in))
	}
}

// Draw hands the visible entities of the running session to r.
// Nothing is drawn on the title screen.
func (g *Game) Draw(r object.Renderer) {
	if g.State == GameStatePlaying {
		g.Play.Draw(r)
	}
}

func (g *Game) start() {
	g.Play = NewPlayState(g.Screen, g.rand, g.logger)
	g.State = GameStatePlaying
	g.logger.Info("game started")
}

// ClampElapsed limits a frame duration to [0, MaxElapsed].
func ClampElapsed(delta time.Duration) time.Duration {
	if delta < 0 {
		return 0
	}
	if delta > config.MaxElapsed {
		return config.MaxElapsed
	}
	return delta
}

// ControlsFromInput maps a key snapshot to ship controls.
// Steering and thrust follow held keys; fire triggers once per press.
func ControlsFromInput(in input.Input) object.Controls {
	return object.Controls{
		Left:   in.Held.Left,
		Right:  in.Held.Right,
		Thrust: in.Held.Up,
		Fire:   in.Pressed.Space,
	}
}
