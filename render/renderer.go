// Package render holds the drawing contract the game draws through, plus the
// sprite-sheet, image and collider types shared by every drawable object.
package render

import (
	"image/color"

	"github.com/milk9111/walkthedog/common"
)

// Texture is a loaded bitmap. Textures are immutable once loaded and may be
// shared by any number of images, obstacles and sheets.
type Texture interface {
	Width() int
	Height() int
}

// Renderer draws onto an external surface. Implementations panic when handed
// arguments they cannot draw; that is a programming error, not a runtime one.
type Renderer interface {
	Clear(area common.Rect)
	DrawImage(tex Texture, frame, destination common.Rect)
	DrawEntireImage(tex Texture, position common.Point)
	DrawRect(r common.Rect, c color.Color)
	DrawText(text string, location common.Point) error
}

// Debug colors for bounding boxes.
var (
	PlayerBoundsColor   = color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	BarrierBoundsColor  = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	PlatformBoundsColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Null discards everything. It backs headless runs.
type Null struct{}

func (Null) Clear(common.Rect)                           {}
func (Null) DrawImage(Texture, common.Rect, common.Rect) {}
func (Null) DrawEntireImage(Texture, common.Point)       {}
func (Null) DrawRect(common.Rect, color.Color)           {}
func (Null) DrawText(string, common.Point) error         { return nil }

// Size is a bare Texture with dimensions only, for headless runs and tests.
type Size struct {
	W, H int
}

func (s Size) Width() int  { return s.W }
func (s Size) Height() int { return s.H }
