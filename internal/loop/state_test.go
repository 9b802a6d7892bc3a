package loop

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/flxteroids/internal/input"
	"github.com/tomz197/flxteroids/internal/loop/config"
	"github.com/tomz197/flxteroids/internal/object"
)

func TestClampElapsed(t *testing.T) {
	tests := []struct {
		name  string
		delta time.Duration
		want  time.Duration
	}{
		{"negative", -5 * time.Millisecond, 0},
		{"zero", 0, 0},
		{"normal frame", 16 * time.Millisecond, 16 * time.Millisecond},
		{"at limit", config.MaxElapsed, config.MaxElapsed},
		{"stall", 2 * time.Second, config.MaxElapsed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampElapsed(tt.delta); got != tt.want {
				t.Errorf("ClampElapsed(%v) = %v, want %v", tt.delta, got, tt.want)
			}
		})
	}
}

func TestControlsFromInput(t *testing.T) {
	tests := []struct {
		name string
		in   input.Input
		want object.Controls
	}{
		{"nothing", input.Input{}, object.Controls{}},
		{
			"held steering and thrust",
			input.Input{Held: input.Keys{Left: true, Right: true, Up: true}},
			object.Controls{Left: true, Right: true, Thrust: true},
		},
		{
			"space pressed fires",
			input.Input{Held: input.Keys{Space: true}, Pressed: input.Keys{Space: true}},
			object.Controls{Fire: true},
		},
		{
			"space held does not fire",
			input.Input{Held: input.Keys{Space: true}},
			object.Controls{},
		},
		{
			"down is ignored",
			input.Input{Held: input.Keys{Down: true}, Pressed: input.Keys{Down: true}},
			object.Controls{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ControlsFromInput(tt.in); got != tt.want {
				t.Errorf("ControlsFromInput() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGame_MenuTransitions(t *testing.T) {
	tests := []struct {
		name string
		in   input.Input
		want GameState
	}{
		{"idle", input.Input{}, GameStateMenu},
		{"space pressed", input.Input{Pressed: input.Keys{Space: true}}, GameStatePlaying},
		{"enter pressed", input.Input{Pressed: input.Keys{Enter: true}}, GameStatePlaying},
		{"space only held", input.Input{Held: input.Keys{Space: true}}, GameStateMenu},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame(rand.New(rand.NewSource(1)), nil)
			g.Step(16*time.Millisecond, tt.in)
			if g.State != tt.want {
				t.Errorf("State = %v, want %v", g.State, tt.want)
			}
			if tt.want == GameStatePlaying && g.Play == nil {
				t.Error("starting a game should create a play session")
			}
		})
	}
}

func TestGame_StepClampsElapsed(t *testing.T) {
	g := NewGame(rand.New(rand.NewSource(1)), nil)
	g.Step(0, input.Input{Pressed: input.Keys{Enter: true}})

	g.Step(5*time.Second, input.Input{Held: input.Keys{Left: true}})

	want := -object.ShipRotationSpeed * config.MaxElapsed.Seconds()
	if got := g.Play.Ship.Angle; math.Abs(got-want) > 1e-9 {
		t.Errorf("ship angle = %v, want %v", got, want)
	}
}

func TestGame_DrawsNothingOnMenu(t *testing.T) {
	g := NewGame(rand.New(rand.NewSource(1)), nil)

	var r kindRecorder
	g.Draw(&r)
	if len(r.kinds) != 0 {
		t.Errorf("menu drew %d entities, want 0", len(r.kinds))
	}

	g.Step(0, input.Input{Pressed: input.Keys{Space: true}})
	g.Draw(&r)
	if len(r.kinds) == 0 {
		t.Error("playing state drew nothing")
	}
}
