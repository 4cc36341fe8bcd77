// Package obstacle holds the things the runner can land on or crash into.
package obstacle

import (
	"github.com/milk9111/walkthedog/common"
	"github.com/milk9111/walkthedog/player"
	"github.com/milk9111/walkthedog/render"
)

// Obstacle is anything scrolled past the player.
type Obstacle interface {
	CheckIntersection(p *player.Player)
	Draw(r render.Renderer)
	MoveHorizontally(dx int16)
	Right() int16
}

// Debuggable obstacles can outline their collision boxes.
type Debuggable interface {
	DrawBounds(r render.Renderer)
}

// Spanned obstacles report their left edge.
type Spanned interface {
	Left() int16
}

// Retain drops every obstacle that has scrolled fully off the left edge. The
// slice is filtered in place.
func Retain(list []Obstacle) []Obstacle {
	kept := list[:0]
	for _, o := range list {
		if o.Right() > 0 {
			kept = append(kept, o)
		}
	}
	clear(list[len(kept):])
	return kept
}

// Rightmost is the furthest right edge in list, or 0 when list is empty.
func Rightmost(list []Obstacle) int16 {
	var right int16
	for i, o := range list {
		if r := o.Right(); i == 0 || r > right {
			right = r
		}
	}
	return right
}

// Leftmost is the smallest left edge among the Spanned obstacles in list.
func Leftmost(list []Obstacle) (int16, bool) {
	var (
		left  int16
		found bool
	)
	for _, o := range list {
		s, ok := o.(Spanned)
		if !ok {
			continue
		}
		if l := s.Left(); !found || l < left {
			left, found = l, true
		}
	}
	return left, found
}

// DrawBounds outlines every obstacle that supports it.
func DrawBounds(r render.Renderer, list []Obstacle) {
	for _, o := range list {
		if d, ok := o.(Debuggable); ok {
			d.DrawBounds(r)
		}
	}
}

// Barrier is a solid image. Touching it knocks the player out.
type Barrier struct {
	collider render.Collider
}

func NewBarrier(image render.Image) *Barrier {
	return &Barrier{collider: render.NewCollider(image)}
}

func (b *Barrier) CheckIntersection(p *player.Player) {
	if p.BoundingBox().Intersects(b.collider.BoundingBox()) {
		p.KnockOut()
	}
}

func (b *Barrier) Draw(r render.Renderer) {
	b.collider.Draw(r)
}

func (b *Barrier) DrawBounds(r render.Renderer) {
	b.collider.DrawBounds(r)
}

func (b *Barrier) MoveHorizontally(dx int16) {
	b.collider.MoveHorizontally(dx)
}

func (b *Barrier) Right() int16 {
	return b.collider.BoundingBox().Right()
}

func (b *Barrier) Left() int16 {
	return b.collider.BoundingBox().X()
}

func (b *Barrier) BoundingBox() common.Rect {
	return b.collider.BoundingBox()
}
