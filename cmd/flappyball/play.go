package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappyball/internal/app"
	"github.com/vovakirdan/flappyball/internal/assets"
	"github.com/vovakirdan/flappyball/internal/audio"
	"github.com/vovakirdan/flappyball/internal/config"
	"github.com/vovakirdan/flappyball/internal/core"
	"github.com/vovakirdan/flappyball/internal/platform/tui"
	"github.com/vovakirdan/flappyball/internal/scene"
)

func runGame(_ *cobra.Command, _ []string) error {
	logger, logFile, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cat, err := assets.Load()
	if err != nil {
		return err
	}

	cols, rows, err := tui.OpenDisplay(os.Stdout)
	if err != nil {
		return err
	}

	rt := flagRuntime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger.Info("starting",
		"display", fmt.Sprintf("%dx%d", cfg.Display.Width, cfg.Display.Height),
		"cells", fmt.Sprintf("%dx%d", cols, rows),
		"fps", rt.TickRate,
		"seed", rt.Seed,
		"assets", len(cat.Keys()),
	)

	sound, err := openAudio(cat, rt, logger)
	if err != nil {
		return err
	}

	queue := core.NewEventQueue()
	canvas := tui.NewCanvas(cfg.Display.Width, cfg.Display.Height, cols, rows)
	game := app.NewGame(scene.Deps{
		Config:  cfg,
		Catalog: cat,
		Audio:   sound,
		Logger:  logger,
		Now:     time.Now,
		Rand:    rand.New(rand.NewSource(rt.Seed)),
	}, queue, canvas)
	defer func() {
		if closeErr := game.Close(); closeErr != nil {
			logger.Warn("closing audio", "error", closeErr)
		}
	}()

	if err := tui.Run(game, queue, canvas, rt.TickRate); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("exited", "frames", game.Frames())
	return nil
}

// openAudio returns the sound backend. A missing sound device is not fatal:
// the game runs silent.
func openAudio(cat *assets.Catalog, rt core.RuntimeConfig, logger *log.Logger) (core.Audio, error) {
	if rt.Muted {
		logger.Info("sound muted")
		return core.NopAudio{}, nil
	}

	bank, err := audio.Render(cat)
	if err != nil {
		return nil, err
	}

	mixer, err := audio.Open(bank)
	if err != nil {
		logger.Warn("no sound device, playing silent", "error", err)
		return core.NopAudio{}, nil
	}
	return mixer, nil
}
