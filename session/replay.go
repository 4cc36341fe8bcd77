package session

import (
	"github.com/milk9111/walkthedog/input"
	"github.com/milk9111/walkthedog/render"
)

// Result summarizes a replay.
type Result struct {
	State    StateID
	Frames   int
	Distance int
}

// JumpPlan is a key plan that starts running on the first frame and presses
// Up every jumpEvery frames after that. A jumpEvery of 0 never jumps.
func JumpPlan(frames, jumpEvery int) *input.Scripted {
	steps := make([]input.Step, max(frames, 1))
	steps[0] = input.Step{input.ArrowRight}
	if jumpEvery > 0 {
		for i := jumpEvery; i < len(steps); i += jumpEvery {
			steps[i] = input.Step{input.ArrowUp}
		}
	}
	return input.NewScripted(steps...)
}

// Replay drives an initialized game with keys for up to frames updates,
// drawing each one into r. It stops early at the first game over.
func Replay(g *Game, keys *input.Scripted, r render.Renderer, frames int) (Result, error) {
	var res Result
	for res.Frames < frames {
		err := g.Update(keys)
		res.Frames++
		if err != nil {
			return res, err
		}
		g.Draw(r)
		keys.Advance()
		if g.State() == GameOver {
			break
		}
	}
	res.State = g.State()
	if s := g.Scene(); s != nil {
		res.Distance = s.Distance()
	}
	return res, nil
}
