// Package segment assembles batches of obstacles from the layout catalog.
package segment

import (
	"errors"
	"fmt"

	"github.com/milk9111/walkthedog/common"
	"github.com/milk9111/walkthedog/obstacle"
	"github.com/milk9111/walkthedog/prefabs"
	"github.com/milk9111/walkthedog/render"
)

var (
	ErrUnknownLayout = errors.New("segment: unknown layout")
	ErrEmptyCatalog  = errors.New("segment: catalog has no layouts")
)

// PlatformShape is the cell and box arrangement of a floating platform,
// relative to the platform position.
type PlatformShape struct {
	Names   []string
	Offsets []common.Point
	Boxes   []common.Rect
}

// Layout is one segment: barriers and platforms whose x is relative to the
// segment offset and whose y is absolute.
type Layout struct {
	Name      string
	Barriers  []common.Point
	Platforms []common.Point
	shape     *PlatformShape
}

// Place builds the layout's obstacles with its left edge at offset.
func (l Layout) Place(offset int16, stone render.Texture, sheet *render.SpriteSheet) ([]obstacle.Obstacle, error) {
	batch := make([]obstacle.Obstacle, 0, len(l.Barriers)+len(l.Platforms))
	for _, b := range l.Barriers {
		image := render.NewImage(stone, common.Point{X: offset + b.X, Y: b.Y})
		batch = append(batch, obstacle.NewBarrier(image))
	}
	for _, p := range l.Platforms {
		platform, err := obstacle.NewPlatform(
			sheet,
			l.shape.Boxes,
			l.shape.Names,
			l.shape.Offsets,
			common.Point{X: offset + p.X, Y: p.Y},
		)
		if err != nil {
			return nil, fmt.Errorf("segment %s: %w", l.Name, err)
		}
		batch = append(batch, platform)
	}
	return batch, nil
}

// Catalog is the ordered set of layouts a generator picks from.
type Catalog struct {
	layouts []Layout
}

// NewCatalog validates spec and converts it.
func NewCatalog(spec prefabs.SegmentsSpec) (*Catalog, error) {
	if len(spec.Layouts) == 0 {
		return nil, ErrEmptyCatalog
	}

	shape := &PlatformShape{}
	for _, c := range spec.Platform.Cells {
		shape.Names = append(shape.Names, c.Name)
		shape.Offsets = append(shape.Offsets, common.Point{X: c.X, Y: c.Y})
	}
	for _, b := range spec.Platform.Boxes {
		if b.W < 0 || b.H < 0 {
			return nil, fmt.Errorf("segment: platform box %+v has negative size", b)
		}
		shape.Boxes = append(shape.Boxes, common.NewRectXY(b.X, b.Y, b.W, b.H))
	}

	seen := make(map[string]struct{}, len(spec.Layouts))
	c := &Catalog{layouts: make([]Layout, 0, len(spec.Layouts))}
	for i, ls := range spec.Layouts {
		if ls.Name == "" {
			return nil, fmt.Errorf("segment: layout %d has no name", i)
		}
		if _, dup := seen[ls.Name]; dup {
			return nil, fmt.Errorf("segment: duplicate layout %q", ls.Name)
		}
		seen[ls.Name] = struct{}{}

		layout := Layout{Name: ls.Name, shape: shape}
		for _, b := range ls.Barriers {
			if b.X < 0 {
				return nil, fmt.Errorf("segment %s: barrier x %d is left of the offset", ls.Name, b.X)
			}
			layout.Barriers = append(layout.Barriers, common.Point{X: b.X, Y: b.Y})
		}
		for _, p := range ls.Platforms {
			if p.X < 0 || p.X+leftmostBox(shape) < 0 {
				return nil, fmt.Errorf("segment %s: platform x %d is left of the offset", ls.Name, p.X)
			}
			layout.Platforms = append(layout.Platforms, common.Point{X: p.X, Y: p.Y})
		}
		c.layouts = append(c.layouts, layout)
	}
	return c, nil
}

func leftmostBox(shape *PlatformShape) int16 {
	var left int16
	for i, b := range shape.Boxes {
		if i == 0 || b.X() < left {
			left = b.X()
		}
	}
	return left
}

// LoadCatalog reads the catalog from prefabs, preferring an on-disk copy.
func LoadCatalog() (*Catalog, error) {
	spec, err := prefabs.LoadSegmentsSpec()
	if err != nil {
		return nil, err
	}
	return NewCatalog(spec)
}

func (c *Catalog) Len() int {
	return len(c.layouts)
}

func (c *Catalog) At(i int) Layout {
	return c.layouts[i]
}

func (c *Catalog) Layout(name string) (Layout, error) {
	for _, l := range c.layouts {
		if l.Name == name {
			return l, nil
		}
	}
	return Layout{}, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
}

func (c *Catalog) Names() []string {
	names := make([]string, len(c.layouts))
	for i, l := range c.layouts {
		names[i] = l.Name
	}
	return names
}
