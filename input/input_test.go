package input

import "testing"

func TestKeysDrain(t *testing.T) {
	events := make(chan Press, 8)
	keys := NewKeys()

	events <- Press{Code: ArrowRight, Down: true}
	events <- Press{Code: ArrowUp, Down: true}
	events <- Press{Code: ArrowUp, Down: false}

	if keys.IsPressed(ArrowRight) {
		t.Fatalf("events must not be visible before Drain")
	}
	if n := keys.Drain(events); n != 3 {
		t.Fatalf("Drain applied %d events, expected 3", n)
	}

	tests := []struct {
		code string
		want bool
	}{
		{ArrowRight, true},
		{ArrowUp, false},
		{Enter, false},
	}
	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			if got := keys.IsPressed(tc.code); got != tc.want {
				t.Fatalf("IsPressed(%q) = %v, expected %v", tc.code, got, tc.want)
			}
		})
	}

	if n := keys.Drain(events); n != 0 {
		t.Fatalf("empty queue drained %d events", n)
	}
	keys.Clear()
	if keys.IsPressed(ArrowRight) {
		t.Fatalf("Clear should release every key")
	}
}

func TestKeysDrainClosedChannel(t *testing.T) {
	events := make(chan Press, 1)
	events <- Press{Code: Enter, Down: true}
	close(events)

	keys := NewKeys()
	if n := keys.Drain(events); n != 1 {
		t.Fatalf("Drain applied %d events, expected 1", n)
	}
	if !keys.IsPressed(Enter) {
		t.Fatalf("expected Enter to be held")
	}
}

func TestScriptedRepeatsLastStep(t *testing.T) {
	s := NewScripted(Step{ArrowRight}, Step{ArrowUp})
	if !s.IsPressed(ArrowRight) || s.IsPressed(ArrowUp) {
		t.Fatalf("frame 0 should hold only ArrowRight")
	}
	s.Advance()
	s.Advance()
	s.Advance()
	if !s.IsPressed(ArrowUp) || s.IsPressed(ArrowRight) {
		t.Fatalf("frames past the plan should repeat the last step")
	}

	var nilKeys *Keys
	if nilKeys.IsPressed(Enter) {
		t.Fatalf("nil Keys must report nothing held")
	}
}
