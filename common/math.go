package common

// CanvasSize is the width and height of the square play field in pixels.
const CanvasSize int16 = 600

// BaseWidth and BaseHeight are the logical screen size handed to ebiten.
const (
	BaseWidth  = int(CanvasSize)
	BaseHeight = int(CanvasSize)
)
