package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/walkthedog/assets"
	"github.com/milk9111/walkthedog/common"
	"github.com/milk9111/walkthedog/config"
	"github.com/milk9111/walkthedog/prefabs"
	"github.com/milk9111/walkthedog/session"
)

func play(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	audio := newAudio(cfg.SampleRate, cfg.Volume)
	prompt := newNewGamePrompt()
	game := session.New(audio, prompt, session.Options{
		Seed:   cfg.Seed,
		Script: cfg.Script,
		Debug:  cfg.Debug,
		Logger: logger,
	})

	loader := assets.NewLoader(cfg.SampleRate)
	loader.ToTexture = newTexture
	if err := game.Initialize(ctx, loader); err != nil {
		return err
	}

	var watcher *prefabs.Watcher
	if cfg.Watch {
		w, err := prefabs.NewWatcher(cfg.PrefabsDir, cfg.PrefabsDir+"/scripts")
		if err != nil {
			logger.Error("hot reload disabled", "dir", cfg.PrefabsDir, "err", err)
		} else {
			watcher = w
			defer watcher.Close()
			logger.Info("watching for segment changes", "dir", cfg.PrefabsDir)
		}
	}

	ebiten.SetWindowTitle("Walk the Dog")
	ebiten.SetWindowSize(int(float64(common.BaseWidth)*cfg.Scale), int(float64(common.BaseHeight)*cfg.Scale))
	ebiten.SetTPS(60)

	driver := NewGame(game, prompt, watcher, cfg.Debug, logger)
	if err := ebiten.RunGame(driver); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
