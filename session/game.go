// Package session runs a game: loading, the Ready/Walking/GameOver cycle and
// drawing the scene.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/milk9111/walkthedog/assets"
	"github.com/milk9111/walkthedog/input"
	"github.com/milk9111/walkthedog/render"
	"github.com/milk9111/walkthedog/segment"
	"github.com/milk9111/walkthedog/sound"
	"golang.org/x/sync/errgroup"
)

var ErrAlreadyInitialized = errors.New("session: game already initialized")

// Loader fetches assets by file name.
type Loader interface {
	LoadSheet(name string) (render.Sheet, error)
	LoadImage(name string) (render.Texture, error)
	LoadSound(name string) (*sound.Sound, error)
}

// Prompt is the New Game control shown after a knock-out. Show returns a
// channel that receives a value each time the player asks for a new game.
type Prompt interface {
	Show() (<-chan struct{}, error)
	Hide() error
}

// NoPrompt never fires; the Enter key is the only way to restart.
type NoPrompt struct{}

func (NoPrompt) Show() (<-chan struct{}, error) { return nil, nil }
func (NoPrompt) Hide() error                    { return nil }

type Options struct {
	// Seed feeds the random segment selector.
	Seed int64
	// Selector overrides segment selection entirely.
	Selector segment.Selector
	// Script names a tengo selector script; failures fall back to random.
	Script string
	// Catalog overrides the segment catalog from prefabs.
	Catalog *segment.Catalog
	Debug   bool
	Logger  *log.Logger
}

// Game is the session state machine. It does nothing until Initialize has
// succeeded.
type Game struct {
	state  state
	audio  sound.Audio
	prompt Prompt
	opts   Options
	logger *log.Logger
	err    error
}

func New(audio sound.Audio, prompt Prompt, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if prompt == nil {
		prompt = NoPrompt{}
	}
	return &Game{audio: audio, prompt: prompt, opts: opts, logger: opts.Logger}
}

// Initialize loads every asset concurrently and builds the opening scene.
// The first failure cancels the remaining loads.
func (g *Game) Initialize(ctx context.Context, loader Loader) error {
	if g.state != nil {
		return ErrAlreadyInitialized
	}

	start := time.Now()
	a, err := loadAssets(ctx, loader)
	if err != nil {
		return err
	}
	g.logger.Info("assets loaded", "elapsed", time.Since(start))

	generator, err := g.newGenerator(a)
	if err != nil {
		return err
	}
	scene, err := newScene(a, g.audio, generator, g.opts)
	if err != nil {
		return fmt.Errorf("session: build scene: %w", err)
	}
	g.state = readyState{s: scene}
	return nil
}

func loadAssets(ctx context.Context, loader Loader) (Assets, error) {
	var a Assets
	eg, ctx := errgroup.WithContext(ctx)
	load := func(name string, fn func() error) {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(); err != nil {
				return fmt.Errorf("session: load %s: %w", name, err)
			}
			return nil
		})
	}

	load(assets.CharacterSheet, func() (err error) {
		a.CharacterSheet, err = loader.LoadSheet(assets.CharacterSheet)
		return err
	})
	load(assets.CharacterImage, func() (err error) {
		a.CharacterImage, err = loader.LoadImage(assets.CharacterImage)
		return err
	})
	load(assets.TilesSheet, func() (err error) {
		a.TilesSheet, err = loader.LoadSheet(assets.TilesSheet)
		return err
	})
	load(assets.TilesImage, func() (err error) {
		a.TilesImage, err = loader.LoadImage(assets.TilesImage)
		return err
	})
	load(assets.Background, func() (err error) {
		a.Background, err = loader.LoadImage(assets.Background)
		return err
	})
	load(assets.Stone, func() (err error) {
		a.Stone, err = loader.LoadImage(assets.Stone)
		return err
	})
	load(assets.JumpSound, func() (err error) {
		a.Jump, err = loader.LoadSound(assets.JumpSound)
		return err
	})
	load(assets.BackgroundSong, func() (err error) {
		a.Music, err = loader.LoadSound(assets.BackgroundSong)
		return err
	})

	if err := eg.Wait(); err != nil {
		return Assets{}, err
	}
	return a, nil
}

func (g *Game) newGenerator(a Assets) (*segment.Generator, error) {
	catalog := g.opts.Catalog
	if catalog == nil {
		c, err := segment.LoadCatalog()
		if err != nil {
			return nil, fmt.Errorf("session: segment catalog: %w", err)
		}
		catalog = c
	}

	selector := g.opts.Selector
	if selector == nil {
		selector = segment.NewRandom(g.opts.Seed)
		if g.opts.Script != "" {
			s, err := segment.LoadScript(g.opts.Script, selector, g.logger)
			if err != nil {
				g.logger.Error("segment script unavailable, selecting at random", "script", g.opts.Script, "err", err)
			} else {
				selector = s
			}
		}
	}

	tiles := render.NewSpriteSheet(a.TilesSheet, a.TilesImage)
	return segment.NewGenerator(catalog, a.Stone, tiles, segment.GeneratorOptions{
		Selector: selector,
		Script:   g.opts.Script,
		Logger:   g.logger,
	}), nil
}

// Update advances one frame. It returns the first playback, prompt or
// generation failure; after that the game should stop.
func (g *Game) Update(keys input.KeyState) error {
	if g.state == nil {
		return nil
	}
	if g.err != nil {
		return g.err
	}
	if keys == nil {
		keys = input.Func(func(string) bool { return false })
	}

	prev := g.state.id()
	g.state = g.state.update(g, keys)
	if next := g.state.id(); next != prev {
		g.logger.Info("session state changed", "from", prev, "to", next, "distance", g.state.scene().Distance())
	}

	if err := g.state.scene().Err(); err != nil {
		g.fail(err)
	}
	return g.err
}

func (g *Game) Draw(r render.Renderer) {
	if g.state == nil {
		return
	}
	g.state.scene().Draw(r)
}

func (g *Game) State() StateID {
	if g.state == nil {
		return Uninitialized
	}
	return g.state.id()
}

// Scene is the current scene, nil before Initialize.
func (g *Game) Scene() *Scene {
	if g.state == nil {
		return nil
	}
	return g.state.scene()
}

// Reload forwards a changed prefab file to the segment generator. Failures
// are logged and the previous catalog or script stays in use.
func (g *Game) Reload(path string) {
	scene := g.Scene()
	if scene == nil {
		return
	}
	if err := scene.generator.Reload(path); err != nil {
		g.logger.Error("reload failed, keeping previous segments", "path", path, "err", err)
	}
}

func (g *Game) fail(err error) {
	if g.err == nil {
		g.err = err
	}
}
