package loop

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/flxteroids/internal/draw"
	"github.com/tomz197/flxteroids/internal/input"
	"github.com/tomz197/flxteroids/internal/loop/config"
)

// Options configures Run.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
	Logger       *log.Logger       // Defaults to discarding everything
	Seed         int64             // 0 seeds from the clock
}

// view is the terminal area the playfield is rendered into.
type view struct {
	width, height int // Terminal cells
	col, row      int // 0-based offset
}

// fitView centers the largest 4:3 area that leaves room for a border.
// Cells are roughly twice as tall as wide, and each holds two sub-pixels,
// so a 4:3 playfield spans 8 columns for every 3 rows.
func fitView(termWidth, termHeight int) view {
	availW := max(termWidth-2, 1)
	availH := max(termHeight-2, 1)

	w := availW
	h := w * 3 / 8
	if h > availH {
		h = availH
		w = h * 8 / 3
	}
	w = max(w, 1)
	h = max(h, 1)

	return view{
		width:  w,
		height: h,
		col:    max((termWidth-w)/2, 0),
		row:    max((termHeight-h)/2, 0),
	}
}

// Run plays the game on a terminal until the player quits or r is exhausted,
// with the usual Input → Update → Draw cycle.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	termWidth, termHeight, err := termSize()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	game := NewGame(rand.New(rand.NewSource(seed)), logger)
	stream := input.StartStream(r)
	defer stream.Close()
	logger.Debug("loop started", "seed", seed, "width", termWidth, "height", termHeight)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	v := fitView(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(v.width, v.height, config.ScreenWidth, config.ScreenHeight)
	canvas.SetOffset(v.col, v.row)
	cw := draw.NewChunkWriter(w, v.col, v.row)
	renderer := canvasRenderer{canvas: canvas}

	lastTime := time.Now()
	for {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Held.Quit {
			break
		}

		// ===== UPDATE PHASE =====
		if tw, th, err := termSize(); err == nil && (tw != termWidth || th != termHeight) {
			termWidth, termHeight = tw, th
			v = fitView(termWidth, termHeight)
			canvas.Resize(v.width, v.height)
			canvas.SetOffset(v.col, v.row)
			cw.SetOffset(v.col, v.row)
			logger.Debug("terminal resized", "width", tw, "height", th)
		}

		prev := game.State
		game.Step(delta, in)
		if game.State != prev {
			stream.Reset()
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(game, cw, canvas, renderer); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// drawFrame composes a whole frame in cw and flushes it in one go.
func drawFrame(game *Game, cw *draw.ChunkWriter, canvas *draw.Canvas, renderer canvasRenderer) error {
	cw.WriteString("\033[H\033[2J")
	canvas.Clear()

	game.Draw(renderer)

	if err := canvas.Render(cw); err != nil {
		return err
	}
	if err := canvas.RenderBorder(cw); err != nil {
		return err
	}
	drawUI(game, cw, canvas)

	return cw.Flush()
}
