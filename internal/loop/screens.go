package loop

import (
	"github.com/tomz197/flxteroids/internal/draw"
)

// drawUI draws the text overlay for the current game phase.
func drawUI(game *Game, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	if game.State != GameStateMenu {
		return
	}
	drawStartScreen(cw, canvas.TerminalWidth()/2, canvas.TerminalHeight()/2)
}

// drawStartScreen draws the title screen.
func drawStartScreen(cw *draw.ChunkWriter, centerX, centerY int) {
	title := "F L X T E R O I D S"
	writeCentered(cw, centerX, centerY-2, title)

	subtitle := "Press SPACE to Start"
	writeCentered(cw, centerX, centerY+1, subtitle)

	controls := "A/D or Arrows to rotate, W or Up to thrust, SPACE to shoot, Q to quit"
	if len(controls) > 2*centerX {
		controls = "SPACE shoot, Q quit"
	}
	writeCentered(cw, centerX, centerY+3, controls)
}

// writeCentered writes s centered on centerX. Positions are clamped to the
// first column and row, so text on a tiny terminal is cut off on the right
// rather than producing an invalid cursor sequence.
func writeCentered(cw *draw.ChunkWriter, centerX, row int, s string) {
	cw.WriteAt(max(centerX-len(s)/2, 1), max(row, 1), s)
}
