package session

import (
	"testing"

	"github.com/milk9111/walkthedog/input"
	"github.com/milk9111/walkthedog/render"
	"github.com/milk9111/walkthedog/segment"
	"github.com/milk9111/walkthedog/sound"
)

func TestJumpPlan(t *testing.T) {
	plan := JumpPlan(7, 3)
	want := []struct{ right, up bool }{
		{true, false}, {false, false}, {false, false},
		{false, true}, {false, false}, {false, false},
		{false, true},
	}
	for i, w := range want {
		if plan.IsPressed(input.ArrowRight) != w.right || plan.IsPressed(input.ArrowUp) != w.up {
			t.Fatalf("frame %d: unexpected keys", i)
		}
		plan.Advance()
	}
}

func TestReplayWithoutJumpingCrashes(t *testing.T) {
	g := newTestGame(t, &sound.Silent{}, nil, Options{})
	res, err := Replay(g, JumpPlan(1000, 0), render.Null{}, 1000)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if res.State != GameOver {
		t.Fatalf("expected to crash into the first stone, ended %v", res.State)
	}
	if res.Frames >= 1000 || res.Distance <= 0 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	run := func() Result {
		g := newTestGame(t, &sound.Silent{}, nil, Options{Selector: segment.NewRandom(3)})
		res, err := Replay(g, JumpPlan(1500, 40), render.Null{}, 1500)
		if err != nil {
			t.Fatalf("Replay: %v", err)
		}
		return res
	}
	a, b := run(), run()
	if a != b {
		t.Fatalf("replays differ: %+v vs %+v", a, b)
	}
}

func TestReplayStopsAtFrameLimit(t *testing.T) {
	g := newTestGame(t, &sound.Silent{}, nil, Options{})
	res, err := Replay(g, JumpPlan(10, 0), render.Null{}, 10)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if res.Frames != 10 || res.State != Walking {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Distance != 9*3 {
		t.Fatalf("expected 27 pixels scrolled, got %d", res.Distance)
	}
}
