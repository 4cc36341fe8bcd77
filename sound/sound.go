// Package sound is the audio contract of the game: decoded sounds, a playback
// service, and the named handles used to stop looping tracks later.
package sound

import (
	"errors"
	"fmt"
	"sync"
)

// Looping selects one-shot or endless playback.
type Looping int

const (
	LoopingNo Looping = iota
	LoopingYes
)

func (l Looping) String() string {
	if l == LoopingYes {
		return "yes"
	}
	return "no"
}

// Sound is a decoded clip. It is read-only after loading and shared by pointer.
type Sound struct {
	Name string
	// PCM holds the clip in the output format of the audio backend.
	PCM []byte
}

// Handle controls one playing instance of a sound.
type Handle interface {
	Stop() error
}

// Audio plays sounds.
type Audio interface {
	PlaySound(s *Sound, looping Looping) (Handle, error)
}

// ErrNilSound is returned when asked to play a sound that was never loaded.
var ErrNilSound = errors.New("sound: nil sound")

// Nodes keeps playing handles by name, e.g. the background music, so a later
// event can stop them.
type Nodes map[string]Handle

// Stop stops and forgets the named handle. It reports whether one was found.
func (n Nodes) Stop(name string) (bool, error) {
	h, ok := n[name]
	if !ok {
		return false, nil
	}
	delete(n, name)
	if err := h.Stop(); err != nil {
		return true, fmt.Errorf("sound: stop %q: %w", name, err)
	}
	return true, nil
}

// Names lists the tracked handles, for diagnostics.
func (n Nodes) Names() []string {
	names := make([]string, 0, len(n))
	for name := range n {
		names = append(names, name)
	}
	return names
}

// Silent is an Audio that plays nothing. It records what was asked of it so
// headless runs and tests can inspect playback.
type Silent struct {
	mu     sync.Mutex
	played []Played
}

// Played is one PlaySound call seen by Silent.
type Played struct {
	Name    string
	Looping Looping
	handle  *silentHandle
}

// Stopped reports whether the handle returned for this call was stopped.
func (p Played) Stopped() bool {
	return p.handle != nil && p.handle.stopped
}

func (s *Silent) PlaySound(snd *Sound, looping Looping) (Handle, error) {
	if snd == nil {
		return nil, ErrNilSound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	h := &silentHandle{}
	s.played = append(s.played, Played{Name: snd.Name, Looping: looping, handle: h})
	return h, nil
}

// Played returns a copy of every PlaySound call so far.
func (s *Silent) Played() []Played {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Played(nil), s.played...)
}

type silentHandle struct {
	stopped bool
}

func (h *silentHandle) Stop() error {
	h.stopped = true
	return nil
}
