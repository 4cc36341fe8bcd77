package session

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/walkthedog/sound"
)

// BackgroundMusicNode names the handle of the looping music track.
const BackgroundMusicNode = "background_music"

// soundBoard turns character effects into playback. Playback errors cannot
// be returned from an effect, so the first one is kept for Game.Update.
type soundBoard struct {
	audio  sound.Audio
	jump   *sound.Sound
	music  *sound.Sound
	nodes  sound.Nodes
	logger *log.Logger
	err    error
}

func newSoundBoard(audio sound.Audio, jump, music *sound.Sound, logger *log.Logger) *soundBoard {
	return &soundBoard{
		audio:  audio,
		jump:   jump,
		music:  music,
		nodes:  sound.Nodes{},
		logger: logger,
	}
}

func (b *soundBoard) StartMusic() {
	if _, err := b.nodes.Stop(BackgroundMusicNode); err != nil {
		b.fail(err)
	}
	h, err := b.audio.PlaySound(b.music, sound.LoopingYes)
	if err != nil {
		b.fail(err)
		return
	}
	b.nodes[BackgroundMusicNode] = h
}

func (b *soundBoard) PlayJump() {
	if _, err := b.audio.PlaySound(b.jump, sound.LoopingNo); err != nil {
		b.fail(err)
	}
}

func (b *soundBoard) StopMusic() {
	found, err := b.nodes.Stop(BackgroundMusicNode)
	if err != nil {
		b.fail(err)
		return
	}
	if !found {
		b.logger.Warn("no background music to stop", "playing", b.nodes.Names())
	}
}

func (b *soundBoard) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
