package obstacle

import (
	"fmt"

	"github.com/milk9111/walkthedog/common"
	"github.com/milk9111/walkthedog/player"
	"github.com/milk9111/walkthedog/render"
)

// Sprite is one sheet cell drawn at an offset from the platform position.
type Sprite struct {
	Cell   render.Cell
	Offset common.Point
}

// Platform is a floating surface built from several sheet cells. Its collision
// boxes are stored in canvas space.
type Platform struct {
	sheet         *render.SpriteSheet
	boundingBoxes []common.Rect
	sprites       []Sprite
	position      common.Point
}

// NewPlatform places a platform at position. boxes are relative to position.
// Each name is paired with the offset at the same index; names missing from
// the sheet are an error.
func NewPlatform(sheet *render.SpriteSheet, boxes []common.Rect, names []string, offsets []common.Point, position common.Point) (*Platform, error) {
	if len(names) != len(offsets) {
		return nil, fmt.Errorf("platform: %d cells but %d offsets", len(names), len(offsets))
	}

	p := &Platform{
		sheet:         sheet,
		boundingBoxes: make([]common.Rect, 0, len(boxes)),
		sprites:       make([]Sprite, 0, len(names)),
		position:      position,
	}
	for _, b := range boxes {
		p.boundingBoxes = append(p.boundingBoxes, common.NewRectXY(
			b.X()+position.X,
			b.Y()+position.Y,
			b.Width,
			b.Height,
		))
	}
	for i, name := range names {
		cell, ok := sheet.Cell(name)
		if !ok {
			return nil, fmt.Errorf("platform: cell %q not found", name)
		}
		p.sprites = append(p.sprites, Sprite{Cell: cell, Offset: offsets[i]})
	}
	return p, nil
}

// CheckIntersection lands a falling player on the first box it overlaps, as
// long as the player's top is still above the platform.
func (p *Platform) CheckIntersection(pl *player.Player) {
	bounds := pl.BoundingBox()
	for _, box := range p.boundingBoxes {
		if !bounds.Intersects(box) {
			continue
		}
		if pl.VelocityY() > 0 && pl.PosY() < p.position.Y {
			pl.LandOn(box.Y())
		}
		return
	}
}

func (p *Platform) Draw(r render.Renderer) {
	for _, s := range p.sprites {
		p.sheet.Draw(r, s.Cell.Rect(), s.Cell.RectAt(
			p.position.X+s.Offset.X,
			p.position.Y+s.Offset.Y,
		))
	}
}

func (p *Platform) DrawBounds(r render.Renderer) {
	for _, box := range p.boundingBoxes {
		r.DrawRect(box, render.PlatformBoundsColor)
	}
}

func (p *Platform) MoveHorizontally(dx int16) {
	p.position.X += dx
	for i := range p.boundingBoxes {
		p.boundingBoxes[i].SetX(p.boundingBoxes[i].X() + dx)
	}
}

// Right is the furthest right edge of any box, 0 when there are none.
func (p *Platform) Right() int16 {
	var right int16
	for i, box := range p.boundingBoxes {
		if i == 0 || box.Right() > right {
			right = box.Right()
		}
	}
	return right
}

// Left is the smallest left edge of any box, or the position when there are
// none.
func (p *Platform) Left() int16 {
	if len(p.boundingBoxes) == 0 {
		return p.position.X
	}
	left := p.boundingBoxes[0].X()
	for _, box := range p.boundingBoxes[1:] {
		left = min(left, box.X())
	}
	return left
}

func (p *Platform) Position() common.Point {
	return p.position
}

func (p *Platform) BoundingBoxes() []common.Rect {
	return p.boundingBoxes
}
