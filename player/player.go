package player

import (
	"errors"
	"fmt"

	"github.com/milk9111/walkthedog/common"
	"github.com/milk9111/walkthedog/render"
)

// ErrMissingCell is returned when the character sheet lacks an animation cell.
var ErrMissingCell = errors.New("player: missing animation cell")

// Bounding box inset from the sprite's destination box.
const (
	boundsXOffset     int16 = 18
	boundsYOffset     int16 = 14
	boundsWidthOffset int16 = 28
)

// Player is the runner: its state machine plus the sheet it is drawn from.
type Player struct {
	machine Machine
	sheet   *render.SpriteSheet
}

// New creates an Idle player. It fails if the sheet does not hold every cell
// of every animation.
func New(sheet *render.SpriteSheet, fx Effects) (*Player, error) {
	if err := ValidateSheet(sheet); err != nil {
		return nil, err
	}
	return &Player{machine: NewMachine(fx), sheet: sheet}, nil
}

// ValidateSheet checks that every animation cell exists.
func ValidateSheet(sheet *render.SpriteSheet) error {
	animations := []struct {
		name  string
		limit uint8
	}{
		{IdleFrameName, IdleFrames},
		{RunFrameName, RunningFrames},
		{JumpFrameName, JumpingFrames},
		{SlidingFrameName, SlidingFrames},
		{FallingFrameName, FallingFrames},
	}
	var missing []error
	for _, a := range animations {
		for frame := uint8(0); frame <= a.limit; frame += 3 {
			name := CellName(a.name, frame)
			if _, ok := sheet.Cell(name); !ok {
				missing = append(missing, fmt.Errorf("%w: %q", ErrMissingCell, name))
			}
		}
	}
	return errors.Join(missing...)
}

// CellName is the sheet key for an animation prefix at a frame counter.
func CellName(prefix string, frame uint8) string {
	return fmt.Sprintf("%s (%d).png", prefix, frame/3+1)
}

// Reset returns a fresh Idle player that shares this player's sheet.
func (p *Player) Reset() *Player {
	return &Player{machine: NewMachine(p.machine.effects), sheet: p.sheet}
}

func (p *Player) State() StateID {
	return p.machine.State()
}

func (p *Player) Context() Context {
	return p.machine.Context()
}

func (p *Player) PosY() int16 {
	return p.machine.context.Position.Y
}

func (p *Player) VelocityY() int16 {
	return p.machine.context.Velocity.Y
}

// WalkingSpeed is the horizontal speed the rest of the world scrolls at.
func (p *Player) WalkingSpeed() int16 {
	return p.machine.context.Velocity.X
}

func (p *Player) Update()           { p.machine.Transition(Update()) }
func (p *Player) RunRight()         { p.machine.Transition(Run()) }
func (p *Player) Jump()             { p.machine.Transition(Jump()) }
func (p *Player) Slide()            { p.machine.Transition(Slide()) }
func (p *Player) LandOn(y int16)    { p.machine.Transition(Land(y)) }
func (p *Player) KnockOut()         { p.machine.Transition(KnockOut()) }

// CurrentSprite is the sheet cell for the current state and frame.
func (p *Player) CurrentSprite() (render.Cell, bool) {
	name := CellName(p.machine.FrameName(), p.machine.context.Frame)
	return p.sheet.Cell(name)
}

func (p *Player) mustSprite() render.Cell {
	cell, ok := p.CurrentSprite()
	if !ok {
		panic(fmt.Sprintf("player: cell %q not found", CellName(p.machine.FrameName(), p.machine.context.Frame)))
	}
	return cell
}

// DestinationBox is where the current sprite lands on the canvas.
func (p *Player) DestinationBox() common.Rect {
	pos := p.machine.context.Position
	return p.mustSprite().RectAtTrimmed(pos.X, pos.Y)
}

// BoundingBox is the collision box: the destination box trimmed of the
// sprite's transparent margins.
func (p *Player) BoundingBox() common.Rect {
	dst := p.DestinationBox()
	return common.NewRectXY(
		dst.X()+boundsXOffset,
		dst.Y()+boundsYOffset,
		dst.Width-boundsWidthOffset,
		dst.Height-boundsYOffset,
	)
}

func (p *Player) Draw(r render.Renderer) {
	cell := p.mustSprite()
	p.sheet.Draw(r, cell.Rect(), p.DestinationBox())
}

// DrawBounds outlines the collision box for the debug overlay.
func (p *Player) DrawBounds(r render.Renderer) {
	r.DrawRect(p.BoundingBox(), render.PlayerBoundsColor)
}
