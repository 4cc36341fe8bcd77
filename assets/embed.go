// Package assets embeds the game's images, sprite sheets and sounds and
// decodes them into the forms the core packages consume.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/walkthedog/render"
	"github.com/milk9111/walkthedog/sound"
)

// Embedded file names.
const (
	CharacterSheet = "rhb.json"
	CharacterImage = "rhb.png"
	TilesSheet     = "tiles.json"
	TilesImage     = "tiles.png"
	Background     = "BG.png"
	Stone          = "Stone.png"
	JumpSound      = "jump.wav"
	BackgroundSong = "background_song.wav"
)

// SampleRate is the rate sounds are resampled to when none is given.
const SampleRate = 44100

//go:embed *.png *.json *.wav
var assetsFS embed.FS

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	return assetsFS.ReadFile(clean)
}

// DecodeImage loads and decodes an embedded image.
func DecodeImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	return img, nil
}

// LoadSheet parses an embedded sprite-sheet description.
func LoadSheet(path string) (render.Sheet, error) {
	b, err := LoadFile(path)
	if err != nil {
		return render.Sheet{}, err
	}
	sheet, err := render.ParseSheet(b)
	if err != nil {
		return render.Sheet{}, fmt.Errorf("sheet %q: %w", path, err)
	}
	return sheet, nil
}

// DecodeSound decodes an embedded WAV into 16-bit stereo PCM at sampleRate.
func DecodeSound(path string, sampleRate int) (*sound.Sound, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(path), ".wav") {
		return nil, fmt.Errorf("decode sound %q: only wav is supported", path)
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read wav %q: %w", path, err)
	}
	return &sound.Sound{Name: cleanAssetPath(path), PCM: pcm}, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
