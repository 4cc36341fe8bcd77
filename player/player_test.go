package player

import (
	"errors"
	"fmt"
	"image/color"
	"testing"

	"github.com/milk9111/walkthedog/common"
	"github.com/milk9111/walkthedog/render"
)

type recordedEffects struct {
	started, jumped, stopped int
}

func (r *recordedEffects) StartMusic() { r.started++ }
func (r *recordedEffects) PlayJump()   { r.jumped++ }
func (r *recordedEffects) StopMusic()  { r.stopped++ }

// testSheet holds every animation cell, each 120x121 with no trim.
func testSheet() *render.SpriteSheet {
	frames := map[string]render.Cell{}
	for _, prefix := range []string{IdleFrameName, RunFrameName, JumpFrameName, SlidingFrameName, FallingFrameName} {
		for i := 1; i <= 12; i++ {
			frames[fmt.Sprintf("%s (%d).png", prefix, i)] = render.Cell{
				Frame:            render.SheetRect{X: int16(i) * 120, W: 120, H: 121},
				SpriteSourceSize: render.SheetRect{W: 120, H: 121},
			}
		}
	}
	return render.NewSpriteSheet(render.Sheet{Frames: frames}, render.Size{W: 1440, H: 121})
}

func TestContextUpdate(t *testing.T) {
	tests := []struct {
		name  string
		start Context
		limit uint8
		want  Context
	}{
		{
			name:  "rest_on_floor",
			start: NewContext(),
			limit: IdleFrames,
			want: Context{
				Frame:    1,
				Position: common.Point{X: StartingPoint, Y: Floor},
				Velocity: common.Point{Y: Gravity},
			},
		},
		{
			name:  "frame_wraps_past_limit",
			start: Context{Frame: SlidingFrames, Position: common.Point{Y: Floor}},
			limit: SlidingFrames,
			want:  Context{Frame: 0, Position: common.Point{Y: Floor}, Velocity: common.Point{Y: Gravity}},
		},
		{
			name:  "position_moves_before_gravity",
			start: Context{Position: common.Point{Y: 300}},
			limit: JumpingFrames,
			want:  Context{Frame: 1, Position: common.Point{Y: 300}, Velocity: common.Point{Y: 1}},
		},
		{
			name:  "terminal_velocity",
			start: Context{Position: common.Point{Y: 100}, Velocity: common.Point{Y: TerminalVelocity}},
			limit: JumpingFrames,
			want:  Context{Frame: 1, Position: common.Point{Y: 120}, Velocity: common.Point{Y: TerminalVelocity}},
		},
		{
			name:  "clamped_to_floor",
			start: Context{Position: common.Point{Y: 470}, Velocity: common.Point{Y: 15}},
			limit: JumpingFrames,
			want:  Context{Frame: 1, Position: common.Point{Y: Floor}, Velocity: common.Point{Y: Gravity}},
		},
		{
			name:  "horizontal_velocity_untouched",
			start: Context{Position: common.Point{X: StartingPoint, Y: Floor}, Velocity: common.Point{X: RunningSpeed}},
			limit: RunningFrames,
			want:  Context{Frame: 1, Position: common.Point{X: StartingPoint, Y: Floor}, Velocity: common.Point{X: RunningSpeed, Y: Gravity}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.start.Update(tc.limit); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

// machineIn drives a fresh machine into the requested state.
func machineIn(t *testing.T, id StateID, fx Effects) Machine {
	t.Helper()
	m := NewMachine(fx)
	switch id {
	case Idle:
	case Running:
		m.Transition(Run())
	case Jumping:
		m.Transition(Run())
		m.Transition(Jump())
	case Sliding:
		m.Transition(Run())
		m.Transition(Slide())
	case Falling:
		m.Transition(Run())
		m.Transition(KnockOut())
	case KnockedOut:
		m.Transition(Run())
		m.Transition(KnockOut())
		for i := 0; i < int(FallingFrames); i++ {
			m.Transition(Update())
		}
	}
	if m.State() != id {
		t.Fatalf("setup: expected %v, got %v", id, m.State())
	}
	return m
}

func TestTransitionTable(t *testing.T) {
	events := []Event{Update(), Run(), Jump(), Slide(), Land(400), KnockOut()}
	allowed := map[StateID]map[EventKind]StateID{
		Idle:       {EventUpdate: Idle, EventRun: Running, EventLand: Running},
		Running:    {EventUpdate: Running, EventJump: Jumping, EventSlide: Sliding, EventLand: Running, EventKnockOut: Falling},
		Jumping:    {EventUpdate: Jumping, EventLand: Running, EventKnockOut: Falling},
		Sliding:    {EventUpdate: Sliding, EventLand: Sliding, EventKnockOut: Falling},
		Falling:    {EventUpdate: Falling},
		KnockedOut: {},
	}

	for _, from := range []StateID{Idle, Running, Jumping, Sliding, Falling, KnockedOut} {
		for _, ev := range events {
			t.Run(from.String()+"_"+ev.Kind.String(), func(t *testing.T) {
				m := machineIn(t, from, nil)
				before := m.Context()
				got := m.Transition(ev)

				want, ok := allowed[from][ev.Kind]
				if !ok {
					if got != from {
						t.Fatalf("ignored event moved %v to %v", from, got)
					}
					if m.Context() != before {
						t.Fatalf("ignored event changed context %+v -> %+v", before, m.Context())
					}
					return
				}
				if got != want {
					t.Fatalf("expected %v, got %v", want, got)
				}
			})
		}
	}
}

func TestKnockedOutIsTerminal(t *testing.T) {
	fx := &recordedEffects{}
	m := machineIn(t, KnockedOut, fx)
	before := m.Context()
	stopped := fx.stopped

	for _, ev := range []Event{Jump(), Slide(), Run(), Land(200), Update(), KnockOut()} {
		if got := m.Transition(ev); got != KnockedOut {
			t.Fatalf("%v moved knocked out character to %v", ev.Kind, got)
		}
	}
	if m.Context() != before {
		t.Fatalf("context changed: %+v -> %+v", before, m.Context())
	}
	if fx.stopped != stopped || fx.started != 1 {
		t.Fatalf("unexpected effects after knock out: %+v", fx)
	}
}

func TestJumpLandsOnceOnFloor(t *testing.T) {
	fx := &recordedEffects{}
	m := machineIn(t, Running, fx)
	m.Transition(Jump())
	if fx.jumped != 1 {
		t.Fatalf("expected one jump sound, got %d", fx.jumped)
	}
	if m.Context().Velocity.Y != JumpSpeed || m.Context().Frame != 0 {
		t.Fatalf("unexpected launch context %+v", m.Context())
	}

	landings := 0
	prev := m.State()
	apex := Floor
	for i := 0; i < 200; i++ {
		got := m.Transition(Update())
		if y := m.Context().Position.Y; y < apex {
			apex = y
		}
		if m.Context().Position.Y > Floor {
			t.Fatalf("frame %d: position %d below floor", i, m.Context().Position.Y)
		}
		if prev == Jumping && got == Running {
			landings++
			if m.Context().Position.Y != Floor {
				t.Fatalf("landed at %d, expected %d", m.Context().Position.Y, Floor)
			}
			if m.Context().Velocity.Y != 0 || m.Context().Frame != 0 {
				t.Fatalf("landing should zero velocity and frame, got %+v", m.Context())
			}
		}
		prev = got
	}
	if landings != 1 {
		t.Fatalf("expected exactly one landing, got %d", landings)
	}
	if m.State() != Running {
		t.Fatalf("expected running after landing, got %v", m.State())
	}
	if apex >= Floor-200 {
		t.Fatalf("jump apex %d is too low", apex)
	}
}

func TestSlideStandsAtTerminalFrame(t *testing.T) {
	m := machineIn(t, Sliding, nil)
	for i := 1; i < int(SlidingFrames); i++ {
		if got := m.Transition(Update()); got != Sliding {
			t.Fatalf("update %d: stood up early (%v)", i, got)
		}
		if m.Context().Frame != uint8(i) {
			t.Fatalf("update %d: frame %d", i, m.Context().Frame)
		}
	}
	if got := m.Transition(Update()); got != Running {
		t.Fatalf("expected running at frame %d, got %v", SlidingFrames, got)
	}
	if m.Context().Frame != 0 {
		t.Fatalf("standing should reset the frame, got %d", m.Context().Frame)
	}
}

func TestFallingBecomesKnockedOut(t *testing.T) {
	fx := &recordedEffects{}
	m := machineIn(t, Running, fx)
	m.Transition(KnockOut())
	if fx.stopped != 1 {
		t.Fatalf("expected music to stop once, got %d", fx.stopped)
	}
	if v := m.Context().Velocity; v != (common.Point{}) {
		t.Fatalf("knock out should stop the character, velocity %+v", v)
	}
	for i := 1; i < int(FallingFrames); i++ {
		if got := m.Transition(Update()); got != Falling {
			t.Fatalf("update %d: %v", i, got)
		}
	}
	if got := m.Transition(Update()); got != KnockedOut {
		t.Fatalf("expected knocked out, got %v", got)
	}
}

func TestRunSetsSpeedAndStartsMusic(t *testing.T) {
	fx := &recordedEffects{}
	m := NewMachine(fx)
	m.Transition(Update())
	m.Transition(Run())
	if m.Context().Velocity.X != RunningSpeed {
		t.Fatalf("velocity.x = %d, expected %d", m.Context().Velocity.X, RunningSpeed)
	}
	if m.Context().Frame != 0 {
		t.Fatalf("run should reset frame, got %d", m.Context().Frame)
	}
	if fx.started != 1 {
		t.Fatalf("expected music to start once, got %d", fx.started)
	}
}

func TestLandSnapsToSurface(t *testing.T) {
	tests := []struct {
		from StateID
		want StateID
	}{
		{Idle, Running},
		{Running, Running},
		{Jumping, Running},
		{Sliding, Sliding},
	}
	for _, tc := range tests {
		t.Run(tc.from.String(), func(t *testing.T) {
			m := machineIn(t, tc.from, nil)
			if got := m.Transition(Land(420)); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			if y := m.Context().Position.Y; y != 420-Height {
				t.Fatalf("position.y = %d, expected %d", y, 420-Height)
			}
			if m.Context().Velocity.Y != 0 {
				t.Fatalf("landing should zero vertical velocity")
			}
		})
	}
}

func TestPlayerBoxes(t *testing.T) {
	p, err := New(testSheet(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := p.DestinationBox(); got != common.NewRectXY(StartingPoint, Floor, 120, 121) {
		t.Fatalf("unexpected destination box %+v", got)
	}
	if got := p.BoundingBox(); got != common.NewRectXY(StartingPoint+18, Floor+14, 92, 107) {
		t.Fatalf("unexpected bounding box %+v", got)
	}
}

func TestNewRejectsIncompleteSheet(t *testing.T) {
	frames := map[string]render.Cell{"Idle (1).png": {}}
	sheet := render.NewSpriteSheet(render.Sheet{Frames: frames}, render.Size{})
	_, err := New(sheet, nil)
	if !errors.Is(err, ErrMissingCell) {
		t.Fatalf("expected ErrMissingCell, got %v", err)
	}
}

type drawRecorder struct {
	render.Null
	sources []common.Rect
	rects   []common.Rect
}

func (d *drawRecorder) DrawImage(_ render.Texture, frame, _ common.Rect) {
	d.sources = append(d.sources, frame)
}

func (d *drawRecorder) DrawRect(r common.Rect, _ color.Color) {
	d.rects = append(d.rects, r)
}

func TestPlayerDrawUsesCurrentCell(t *testing.T) {
	p, err := New(testSheet(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 3; i++ {
		p.Update()
	}
	rec := &drawRecorder{}
	p.Draw(rec)
	p.DrawBounds(rec)
	if len(rec.sources) != 1 || rec.sources[0].X() != 240 {
		t.Fatalf("expected cell Idle (2).png, drew %+v", rec.sources)
	}
	if len(rec.rects) != 1 || rec.rects[0] != p.BoundingBox() {
		t.Fatalf("expected bounding box outline, got %+v", rec.rects)
	}
}

func TestResetKeepsSheet(t *testing.T) {
	p, err := New(testSheet(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p.RunRight()
	p.KnockOut()
	fresh := p.Reset()
	if fresh.State() != Idle || fresh.Context() != NewContext() {
		t.Fatalf("reset player should be idle at the start line, got %v %+v", fresh.State(), fresh.Context())
	}
	if fresh.sheet != p.sheet {
		t.Fatalf("reset must share the sprite sheet")
	}
}
