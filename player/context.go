package player

import "github.com/milk9111/walkthedog/common"

const (
	// Floor is the lowest y the character's top edge may reach.
	Floor int16 = 479
	// Height is the distance from the character's top edge to its feet.
	Height = common.CanvasSize - Floor
	// StartingPoint is the character's fixed x on the canvas.
	StartingPoint int16 = -20

	RunningSpeed     int16 = 3
	JumpSpeed        int16 = -25
	Gravity          int16 = 1
	TerminalVelocity int16 = 20
)

// Context is the physical state every character state carries.
type Context struct {
	Frame    uint8
	Position common.Point
	Velocity common.Point
}

// NewContext places a resting character at the start line.
func NewContext() Context {
	return Context{
		Position: common.Point{X: StartingPoint, Y: Floor},
	}
}

// Update advances one frame: the animation counter wraps past frameLimit,
// velocity moves the character, the floor stops it, and only then does
// gravity act. Applying gravity last gives one frame of hang time at the top
// of a jump.
func (c Context) Update(frameLimit uint8) Context {
	if c.Frame < frameLimit {
		c.Frame++
	} else {
		c.Frame = 0
	}

	c.Position.Y += c.Velocity.Y
	if c.Position.Y > Floor {
		c.Position.Y = Floor
		c.Velocity.Y = 0
	}

	c.Velocity.Y = min(c.Velocity.Y+Gravity, TerminalVelocity)
	return c
}

func (c Context) resetFrame() Context {
	c.Frame = 0
	return c
}

func (c Context) stop() Context {
	c.Velocity = common.Point{}
	return c
}

func (c Context) runRight() Context {
	c.Velocity.X += RunningSpeed
	return c
}

func (c Context) setVerticalVelocity(y int16) Context {
	c.Velocity.Y = y
	return c
}

// setOn stands the character on a surface whose top is at y.
func (c Context) setOn(y int16) Context {
	c.Position.Y = y - Height
	c.Velocity.Y = 0
	return c
}
