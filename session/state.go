package session

import (
	"github.com/milk9111/walkthedog/input"
	"github.com/milk9111/walkthedog/player"
)

// StateID names a session state.
type StateID int

const (
	Uninitialized StateID = iota
	Ready
	Walking
	GameOver
)

func (s StateID) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Walking:
		return "walking"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// state owns the scene while it is current and hands it to whichever state
// it returns.
type state interface {
	id() StateID
	scene() *Scene
	update(g *Game, keys input.KeyState) state
}

type readyState struct {
	s *Scene
}

type walkingState struct {
	s *Scene
}

type gameOverState struct {
	s       *Scene
	newGame <-chan struct{}
}

func (st readyState) id() StateID     { return Ready }
func (st readyState) scene() *Scene   { return st.s }
func (st walkingState) id() StateID   { return Walking }
func (st walkingState) scene() *Scene { return st.s }
func (st gameOverState) id() StateID  { return GameOver }
func (st gameOverState) scene() *Scene {
	return st.s
}

func (st readyState) update(_ *Game, keys input.KeyState) state {
	st.s.player.Update()
	if keys.IsPressed(input.ArrowRight) {
		st.s.player.RunRight()
		return walkingState{s: st.s}
	}
	return st
}

func (st walkingState) update(g *Game, keys input.KeyState) state {
	st.s.walk(keys)
	if st.s.player.State() != player.KnockedOut {
		return st
	}
	events, err := g.prompt.Show()
	if err != nil {
		g.fail(err)
	}
	return gameOverState{s: st.s, newGame: events}
}

func (st gameOverState) update(g *Game, keys input.KeyState) state {
	if !st.newGamePressed() && !keys.IsPressed(input.Enter) {
		return st
	}
	if err := g.prompt.Hide(); err != nil {
		g.fail(err)
	}
	if err := st.s.Reset(); err != nil {
		g.fail(err)
		return st
	}
	return readyState{s: st.s}
}

// newGamePressed polls the prompt without blocking.
func (st gameOverState) newGamePressed() bool {
	select {
	case _, ok := <-st.newGame:
		return ok
	default:
		return false
	}
}
