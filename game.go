package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/walkthedog/common"
	"github.com/milk9111/walkthedog/input"
	"github.com/milk9111/walkthedog/prefabs"
	"github.com/milk9111/walkthedog/render"
	"github.com/milk9111/walkthedog/session"
)

// Game adapts a session to ebiten's fixed-step loop.
type Game struct {
	session  *session.Game
	keys     *input.Keys
	keyboard *keyboard
	prompt   *newGamePrompt
	watcher  *prefabs.Watcher
	renderer *screenRenderer
	debug    bool
	logger   *log.Logger

	frameRate render.FrameRate
	lastDraw  time.Time
}

func NewGame(s *session.Game, prompt *newGamePrompt, watcher *prefabs.Watcher, debug bool, logger *log.Logger) *Game {
	return &Game{
		session:  s,
		keys:     input.NewKeys(),
		keyboard: newKeyboard(),
		prompt:   prompt,
		watcher:  watcher,
		renderer: newScreenRenderer(),
		debug:    debug,
		logger:   logger,
	}
}

func (g *Game) Update() error {
	g.drainReloads()

	if ebiten.IsFocused() {
		g.keyboard.poll()
		g.keys.Drain(g.keyboard.events)
	} else {
		g.keys.Clear()
	}

	g.prompt.Update()
	return g.session.Update(g.keys)
}

// drainReloads applies every pending file change without blocking.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Changes():
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Info("prefab changed", "path", path)
			g.session.Reload(path)
		case err, ok := <-g.watcher.Errors():
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Error("watch error", "err", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	now := time.Now()
	if !g.lastDraw.IsZero() {
		g.frameRate.Observe(now.Sub(g.lastDraw))
	}
	g.lastDraw = now

	g.renderer.target(screen)
	g.session.Draw(g.renderer)
	g.prompt.Draw(screen)

	if g.debug {
		if err := g.frameRate.Draw(g.renderer); err != nil {
			g.logger.Error("frame rate overlay", "err", err)
		}
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
