package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/boss"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Flags shared by play and menu.
var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
	flagLogFile    string
	flagLevel      int
)

// runtimeConfig sizes the surface from the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// configureGames hands the game flags to both games before creation.
func configureGames() error {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(preset)
	platformer.SetStartLevel(flagLevel)
	boss.SetConfigPath(flagConfig)
	boss.SetDifficultyPreset(preset)
	return nil
}

// openStore opens the history database. Failure only warns: games run
// without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return nil
	}
	return store
}

// newLogger returns a file-backed logger when --log-file is set; otherwise
// logs are discarded since the TUI owns the terminal.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }, nil
}

// modelOptions builds the logger and, with --watch, the config watcher.
// The returned cleanup releases both.
func modelOptions() ([]tui.Option, func(), error) {
	logger, cleanup, err := newLogger()
	if err != nil {
		return nil, nil, err
	}
	opts := []tui.Option{tui.WithLogger(logger)}

	if !flagWatch {
		return opts, cleanup, nil
	}
	if flagConfig == "" {
		logger.Warn("--watch needs --config, not watching")
		return opts, cleanup, nil
	}
	w, err := config.Watch(flagConfig)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	logger.Info("watching config", "path", w.Path())
	opts = append(opts, tui.WithConfigWatcher(w))
	return opts, func() {
		_ = w.Close()
		cleanup()
	}, nil
}

func addGameFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	fs.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	fs.BoolVar(&flagWatch, "watch", false, "Reload --config when it changes (applies from the next level)")
	fs.StringVar(&flagLogFile, "log-file", "", "Write game events to this file")
	fs.IntVar(&flagLevel, "level", 0, "Start the campaign at this level")
}
