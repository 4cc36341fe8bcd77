package render

import (
	"encoding/json"
	"fmt"

	"github.com/milk9111/walkthedog/common"
)

// Sheet is the frame table of a packed sprite sheet, keyed by cell name.
type Sheet struct {
	Frames map[string]Cell `json:"frames"`
}

// SheetRect is a rectangle as written by the sheet packer.
type SheetRect struct {
	X int16 `json:"x"`
	Y int16 `json:"y"`
	W int16 `json:"w"`
	H int16 `json:"h"`
}

// Cell locates one sprite inside the sheet image. SpriteSourceSize is the
// offset of the trimmed sprite inside its original untrimmed frame.
type Cell struct {
	Frame            SheetRect `json:"frame"`
	SpriteSourceSize SheetRect `json:"spriteSourceSize"`
}

// ParseSheet decodes a packed sheet description.
func ParseSheet(data []byte) (Sheet, error) {
	var sheet Sheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return Sheet{}, fmt.Errorf("render: parse sheet: %w", err)
	}
	if sheet.Frames == nil {
		sheet.Frames = map[string]Cell{}
	}
	return sheet, nil
}

// Cell looks up a cell by name.
func (s Sheet) Cell(name string) (Cell, bool) {
	c, ok := s.Frames[name]
	return c, ok
}

// Rect is the cell's source rectangle inside the sheet image.
func (c Cell) Rect() common.Rect {
	return common.NewRectXY(c.Frame.X, c.Frame.Y, c.Frame.W, c.Frame.H)
}

// RectAt is a cell-sized rectangle with its corner at (x, y).
func (c Cell) RectAt(x, y int16) common.Rect {
	return common.NewRectXY(x, y, c.Frame.W, c.Frame.H)
}

// RectAtTrimmed is like RectAt but shifted by the trim offset, so trimmed
// frames line up with their untrimmed neighbours.
func (c Cell) RectAtTrimmed(x, y int16) common.Rect {
	return common.NewRectXY(
		x+c.SpriteSourceSize.X,
		y+c.SpriteSourceSize.Y,
		c.Frame.W,
		c.Frame.H,
	)
}

// SpriteSheet pairs a sheet with its image. It is immutable and shared by
// pointer between all obstacles that draw from it.
type SpriteSheet struct {
	sheet   Sheet
	texture Texture
}

func NewSpriteSheet(sheet Sheet, texture Texture) *SpriteSheet {
	return &SpriteSheet{sheet: sheet, texture: texture}
}

func (s *SpriteSheet) Cell(name string) (Cell, bool) {
	if s == nil {
		return Cell{}, false
	}
	return s.sheet.Cell(name)
}

func (s *SpriteSheet) Draw(r Renderer, source, destination common.Rect) {
	r.DrawImage(s.texture, source, destination)
}
