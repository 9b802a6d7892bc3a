package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/flxteroids/internal/config"
	"github.com/tomz197/flxteroids/internal/loop"
	loopconfig "github.com/tomz197/flxteroids/internal/loop/config"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	seed, err := config.GetEnvInt64(loopconfig.EnvSeed, 0)
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(reader, os.Stdout, loop.Options{
		Logger: logger,
		Seed:   seed,
	})
}

// newLogger logs to the file named by FLXTEROIDS_LOG_FILE, since stdout is the game.
// Without it, log output is discarded.
func newLogger() (*log.Logger, func(), error) {
	level, err := config.GetEnvLevel(loopconfig.EnvLogLevel, log.InfoLevel)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = io.Discard
	closeFn := func() {}
	if path := config.GetEnv(loopconfig.EnvLogFile, ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flxteroids",
		Level:           level,
	})
	return logger, closeFn, nil
}
