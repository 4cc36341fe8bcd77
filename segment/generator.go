package segment

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/milk9111/walkthedog/obstacle"
	"github.com/milk9111/walkthedog/prefabs"
	"github.com/milk9111/walkthedog/render"
)

const (
	// TimelineMinimum is how far right the last segment must reach before
	// no new one is needed.
	TimelineMinimum int16 = 500
	// ObstacleBuffer is the gap left between consecutive segments.
	ObstacleBuffer int16 = 20
)

// Generator places randomly chosen layouts. Its assets are shared with every
// obstacle it creates.
type Generator struct {
	catalog  *Catalog
	selector Selector
	stone    render.Texture
	sheet    *render.SpriteSheet
	script   string
	logger   *log.Logger
}

type GeneratorOptions struct {
	Selector Selector
	// Script is the selector script Reload recompiles, if any.
	Script string
	Logger *log.Logger
}

func NewGenerator(catalog *Catalog, stone render.Texture, sheet *render.SpriteSheet, opts GeneratorOptions) *Generator {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Selector == nil {
		opts.Selector = NewRandom(0)
	}
	return &Generator{
		catalog:  catalog,
		selector: opts.Selector,
		stone:    stone,
		sheet:    sheet,
		script:   opts.Script,
		logger:   opts.Logger,
	}
}

// Generate places the next selected layout with its left edge at offset.
func (g *Generator) Generate(offset int16) ([]obstacle.Obstacle, error) {
	i := g.selector.Next(g.catalog.Len())
	if i < 0 || i >= g.catalog.Len() {
		return nil, fmt.Errorf("segment: selector picked %d of %d layouts", i, g.catalog.Len())
	}
	layout := g.catalog.At(i)
	g.logger.Debug("placing segment", "layout", layout.Name, "offset", offset)
	return layout.Place(offset, g.stone, g.sheet)
}

// Starting places the first layout of the catalog, the one every run opens
// with.
func (g *Generator) Starting(offset int16) ([]obstacle.Obstacle, error) {
	return g.catalog.At(0).Place(offset, g.stone, g.sheet)
}

func (g *Generator) Catalog() *Catalog {
	return g.catalog
}

func (g *Generator) SetCatalog(c *Catalog) {
	g.catalog = c
}

func (g *Generator) SetSelector(s Selector) {
	g.selector = s
}

// Reload re-reads the file at path if it is the catalog or the selector
// script. On failure the generator keeps what it had.
func (g *Generator) Reload(path string) error {
	base := filepath.Base(path)
	switch {
	case prefabs.IsSpecFile(path) && base == prefabs.SegmentsFile:
		c, err := LoadCatalog()
		if err != nil {
			return fmt.Errorf("segment: reload catalog: %w", err)
		}
		g.SetCatalog(c)
		g.logger.Info("reloaded segment catalog", "layouts", c.Len())
	case prefabs.IsScriptFile(path) && g.script != "" && base == filepath.Base(g.script):
		fallback := g.selector
		if s, ok := fallback.(*Script); ok {
			fallback = s.fallback
		}
		s, err := LoadScript(g.script, fallback, g.logger)
		if err != nil {
			return fmt.Errorf("segment: reload script: %w", err)
		}
		g.SetSelector(s)
		g.logger.Info("reloaded segment script", "script", s.Name())
	}
	return nil
}
