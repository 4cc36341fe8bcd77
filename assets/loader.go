package assets

import (
	"image"

	"github.com/milk9111/walkthedog/render"
	"github.com/milk9111/walkthedog/sound"
)

// Picture is a decoded image used as a texture where nothing is drawn to a
// screen.
type Picture struct {
	image.Image
}

func (p Picture) Width() int  { return p.Bounds().Dx() }
func (p Picture) Height() int { return p.Bounds().Dy() }

// Loader serves the embedded assets. Images become textures through
// ToTexture, so the window can upload them to the GPU while headless runs
// keep plain pictures.
type Loader struct {
	SampleRate int
	ToTexture  func(image.Image) render.Texture
}

// NewLoader returns a loader producing Picture textures.
func NewLoader(sampleRate int) *Loader {
	return &Loader{SampleRate: sampleRate}
}

func (l *Loader) LoadSheet(name string) (render.Sheet, error) {
	return LoadSheet(name)
}

func (l *Loader) LoadImage(name string) (render.Texture, error) {
	img, err := DecodeImage(name)
	if err != nil {
		return nil, err
	}
	if l.ToTexture == nil {
		return Picture{img}, nil
	}
	return l.ToTexture(img), nil
}

func (l *Loader) LoadSound(name string) (*sound.Sound, error) {
	rate := l.SampleRate
	if rate <= 0 {
		rate = SampleRate
	}
	return DecodeSound(name, rate)
}
