// Package player implements the runner character: a finite-state machine
// over Idle, Running, Jumping, Sliding, Falling and KnockedOut, the per-frame
// physics it drives, and the sprite and bounding box derived from it.
package player

import "github.com/milk9111/walkthedog/common"

// StateID names a character state.
type StateID int

const (
	Idle StateID = iota
	Running
	Jumping
	Sliding
	Falling
	KnockedOut
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Jumping:
		return "jumping"
	case Sliding:
		return "sliding"
	case Falling:
		return "falling"
	case KnockedOut:
		return "knocked_out"
	default:
		return "unknown"
	}
}

// EventKind enumerates what can happen to the character.
type EventKind int

const (
	EventUpdate EventKind = iota
	EventRun
	EventJump
	EventSlide
	EventLand
	EventKnockOut
)

func (k EventKind) String() string {
	switch k {
	case EventUpdate:
		return "update"
	case EventRun:
		return "run"
	case EventJump:
		return "jump"
	case EventSlide:
		return "slide"
	case EventLand:
		return "land"
	case EventKnockOut:
		return "knock_out"
	default:
		return "unknown"
	}
}

// Event is delivered to the state machine. Y is used by EventLand only and
// is the top edge of the surface landed on.
type Event struct {
	Kind EventKind
	Y    int16
}

func Update() Event      { return Event{Kind: EventUpdate} }
func Run() Event         { return Event{Kind: EventRun} }
func Jump() Event        { return Event{Kind: EventJump} }
func Slide() Event       { return Event{Kind: EventSlide} }
func KnockOut() Event    { return Event{Kind: EventKnockOut} }
func Land(y int16) Event { return Event{Kind: EventLand, Y: y} }

// Effects receives the audible side effects of transitions.
type Effects interface {
	StartMusic()
	PlayJump()
	StopMusic()
}

type noEffects struct{}

func (noEffects) StartMusic() {}
func (noEffects) PlayJump()   {}
func (noEffects) StopMusic()  {}

// Animation frame limits. Each sprite cell is shown for three frames, so a
// limit is three times the cell count minus one.
const (
	IdleFrames    uint8 = 29
	RunningFrames uint8 = 23
	JumpingFrames uint8 = 35
	SlidingFrames uint8 = 14
	FallingFrames uint8 = 29
)

// Sprite name prefixes in the character sheet.
const (
	IdleFrameName    = "Idle"
	RunFrameName     = "Run"
	JumpFrameName    = "Jump"
	SlidingFrameName = "Slide"
	FallingFrameName = "Dead"
)

// state is one node of the machine. handle returns the next state; any event
// a state does not list leaves the machine untouched and returns itself.
type state interface {
	id() StateID
	frameName() string
	frameLimit() uint8
	handle(m *Machine, ev Event) state
}

// State singletons (no allocation on transitions).
var (
	stateIdle       state = idleState{}
	stateRunning    state = runningState{}
	stateJumping    state = jumpingState{}
	stateSliding    state = slidingState{}
	stateFalling    state = fallingState{}
	stateKnockedOut state = knockedOutState{}
)

type idleState struct{}

type runningState struct{}

type jumpingState struct{}

type slidingState struct{}

type fallingState struct{}

type knockedOutState struct{}

func (idleState) id() StateID       { return Idle }
func (idleState) frameName() string { return IdleFrameName }
func (idleState) frameLimit() uint8 { return IdleFrames }
func (s idleState) handle(m *Machine, ev Event) state {
	switch ev.Kind {
	case EventUpdate:
		m.context = m.context.Update(s.frameLimit())
		return s
	case EventRun:
		m.effects.StartMusic()
		m.context = m.context.resetFrame().runRight()
		return stateRunning
	case EventLand:
		m.context = m.context.setOn(ev.Y)
		return stateRunning
	}
	return s
}

func (runningState) id() StateID       { return Running }
func (runningState) frameName() string { return RunFrameName }
func (runningState) frameLimit() uint8 { return RunningFrames }
func (s runningState) handle(m *Machine, ev Event) state {
	switch ev.Kind {
	case EventUpdate:
		m.context = m.context.Update(s.frameLimit())
		return s
	case EventJump:
		m.effects.PlayJump()
		m.context = m.context.setVerticalVelocity(JumpSpeed).resetFrame()
		return stateJumping
	case EventSlide:
		m.context = m.context.resetFrame()
		return stateSliding
	case EventLand:
		m.context = m.context.setOn(ev.Y)
		return s
	case EventKnockOut:
		return knockOut(m)
	}
	return s
}

func (jumpingState) id() StateID       { return Jumping }
func (jumpingState) frameName() string { return JumpFrameName }
func (jumpingState) frameLimit() uint8 { return JumpingFrames }
func (s jumpingState) handle(m *Machine, ev Event) state {
	switch ev.Kind {
	case EventUpdate:
		m.context = m.context.Update(s.frameLimit())
		if m.context.Position.Y >= Floor {
			return s.land(m, common.CanvasSize)
		}
		return s
	case EventLand:
		return s.land(m, ev.Y)
	case EventKnockOut:
		return knockOut(m)
	}
	return s
}

func (jumpingState) land(m *Machine, y int16) state {
	m.context = m.context.resetFrame().setOn(y)
	return stateRunning
}

func (slidingState) id() StateID       { return Sliding }
func (slidingState) frameName() string { return SlidingFrameName }
func (slidingState) frameLimit() uint8 { return SlidingFrames }
func (s slidingState) handle(m *Machine, ev Event) state {
	switch ev.Kind {
	case EventUpdate:
		m.context = m.context.Update(s.frameLimit())
		if m.context.Frame >= s.frameLimit() {
			m.context = m.context.resetFrame()
			return stateRunning
		}
		return s
	case EventLand:
		m.context = m.context.setOn(ev.Y)
		return s
	case EventKnockOut:
		return knockOut(m)
	}
	return s
}

func (fallingState) id() StateID       { return Falling }
func (fallingState) frameName() string { return FallingFrameName }
func (fallingState) frameLimit() uint8 { return FallingFrames }
func (s fallingState) handle(m *Machine, ev Event) state {
	if ev.Kind != EventUpdate {
		return s
	}
	m.context = m.context.Update(s.frameLimit())
	if m.context.Frame >= s.frameLimit() {
		return stateKnockedOut
	}
	return s
}

func (knockedOutState) id() StateID       { return KnockedOut }
func (knockedOutState) frameName() string { return FallingFrameName }
func (knockedOutState) frameLimit() uint8 { return FallingFrames }
func (s knockedOutState) handle(*Machine, Event) state {
	return s
}

func knockOut(m *Machine) state {
	m.effects.StopMusic()
	m.context = m.context.resetFrame().stop()
	return stateFalling
}

// Machine is the character state machine together with its physics context.
type Machine struct {
	state   state
	context Context
	effects Effects
}

// NewMachine returns an Idle machine at the start line. A nil fx is silent.
func NewMachine(fx Effects) Machine {
	if fx == nil {
		fx = noEffects{}
	}
	return Machine{state: stateIdle, context: NewContext(), effects: fx}
}

// Transition applies ev and returns the resulting state. Events the current
// state does not accept are ignored.
func (m *Machine) Transition(ev Event) StateID {
	if m.state == nil {
		*m = NewMachine(m.effects)
	}
	m.state = m.state.handle(m, ev)
	return m.state.id()
}

func (m *Machine) State() StateID {
	if m.state == nil {
		return Idle
	}
	return m.state.id()
}

func (m *Machine) Context() Context {
	return m.context
}

// FrameName is the sprite prefix of the current state.
func (m *Machine) FrameName() string {
	if m.state == nil {
		return IdleFrameName
	}
	return m.state.frameName()
}
