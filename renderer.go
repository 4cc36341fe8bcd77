package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/walkthedog/common"
	"github.com/milk9111/walkthedog/render"
	"golang.org/x/image/font/basicfont"
)

var errNoScreen = errors.New("renderer: no screen to draw on")

// texture is a GPU image.
type texture struct {
	img *ebiten.Image
}

func newTexture(img image.Image) render.Texture {
	return texture{img: ebiten.NewImageFromImage(img)}
}

func (t texture) Width() int  { return t.img.Bounds().Dx() }
func (t texture) Height() int { return t.img.Bounds().Dy() }

func mustImage(tex render.Texture) *ebiten.Image {
	t, ok := tex.(texture)
	if !ok {
		panic(fmt.Sprintf("renderer: %T is not an ebiten texture", tex))
	}
	return t.img
}

// screenRenderer draws onto the frame ebiten hands to Draw.
type screenRenderer struct {
	screen *ebiten.Image
	face   text.Face
}

func newScreenRenderer() *screenRenderer {
	return &screenRenderer{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (r *screenRenderer) target(screen *ebiten.Image) {
	r.screen = screen
}

func toImageRect(rect common.Rect) image.Rectangle {
	return image.Rect(int(rect.X()), int(rect.Y()), int(rect.Right()), int(rect.Bottom()))
}

func (r *screenRenderer) Clear(area common.Rect) {
	if sub, ok := r.screen.SubImage(toImageRect(area)).(*ebiten.Image); ok {
		sub.Clear()
	}
}

func (r *screenRenderer) DrawImage(tex render.Texture, frame, destination common.Rect) {
	src, ok := mustImage(tex).SubImage(toImageRect(frame)).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if frame.Width > 0 && frame.Height > 0 {
		op.GeoM.Scale(
			float64(destination.Width)/float64(frame.Width),
			float64(destination.Height)/float64(frame.Height),
		)
	}
	op.GeoM.Translate(float64(destination.X()), float64(destination.Y()))
	r.screen.DrawImage(src, op)
}

func (r *screenRenderer) DrawEntireImage(tex render.Texture, position common.Point) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(position.X), float64(position.Y))
	r.screen.DrawImage(mustImage(tex), op)
}

func (r *screenRenderer) DrawRect(rect common.Rect, c color.Color) {
	vector.StrokeRect(r.screen, float32(rect.X()), float32(rect.Y()), float32(rect.Width), float32(rect.Height), 1.0, c, false)
}

func (r *screenRenderer) DrawText(s string, location common.Point) error {
	if r.screen == nil {
		return errNoScreen
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(location.X), float64(location.Y))
	op.ColorScale.ScaleWithColor(color.Black)
	text.Draw(r.screen, s, r.face, op)
	return nil
}
