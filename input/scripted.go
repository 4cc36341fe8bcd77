package input

// Step holds the keys pressed on one frame of a script.
type Step []string

// Scripted replays a per-frame key plan. Frames past the end of the plan
// repeat its last step.
type Scripted struct {
	steps []Step
	frame int
}

func NewScripted(steps ...Step) *Scripted {
	return &Scripted{steps: steps}
}

// Advance moves to the next frame of the plan.
func (s *Scripted) Advance() {
	s.frame++
}

func (s *Scripted) IsPressed(code string) bool {
	if len(s.steps) == 0 {
		return false
	}
	i := s.frame
	if i >= len(s.steps) {
		i = len(s.steps) - 1
	}
	for _, c := range s.steps[i] {
		if c == code {
			return true
		}
	}
	return false
}

// Func adapts a per-frame function into a KeyState.
type Func func(code string) bool

func (f Func) IsPressed(code string) bool {
	return f(code)
}
