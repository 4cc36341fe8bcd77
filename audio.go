package main

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/walkthedog/sound"
)

// ebitenAudio plays decoded PCM through ebiten's audio context. Sounds must
// have been decoded at the context's sample rate.
type ebitenAudio struct {
	ctx    *audio.Context
	volume float64
}

func newAudio(sampleRate int, volume float64) *ebitenAudio {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &ebitenAudio{ctx: ctx, volume: volume}
}

func (a *ebitenAudio) PlaySound(s *sound.Sound, looping sound.Looping) (sound.Handle, error) {
	if s == nil {
		return nil, sound.ErrNilSound
	}

	var player *audio.Player
	if looping == sound.LoopingYes {
		loop := audio.NewInfiniteLoop(bytes.NewReader(s.PCM), int64(len(s.PCM)))
		p, err := a.ctx.NewPlayer(loop)
		if err != nil {
			return nil, fmt.Errorf("audio: play %q: %w", s.Name, err)
		}
		player = p
	} else {
		player = a.ctx.NewPlayerFromBytes(s.PCM)
	}
	player.SetVolume(a.volume)
	player.Play()
	return playerHandle{player: player}, nil
}

type playerHandle struct {
	player *audio.Player
}

func (h playerHandle) Stop() error {
	h.player.Pause()
	return h.player.Close()
}
