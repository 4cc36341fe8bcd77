package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SegmentsFile is the catalog of obstacle segments.
const SegmentsFile = "segments.yaml"

// DefaultScript is the segment selector script shipped with the game.
const DefaultScript = "select.tengo"

type SegmentsSpec struct {
	Platform PlatformSpec `yaml:"platform"`
	Layouts  []LayoutSpec `yaml:"layouts"`
}

// PlatformSpec is the shape shared by every floating platform.
type PlatformSpec struct {
	Cells []CellSpec `yaml:"cells"`
	Boxes []BoxSpec  `yaml:"boxes"`
}

type CellSpec struct {
	Name string `yaml:"name"`
	X    int16  `yaml:"x"`
	Y    int16  `yaml:"y"`
}

type BoxSpec struct {
	X int16 `yaml:"x"`
	Y int16 `yaml:"y"`
	W int16 `yaml:"w"`
	H int16 `yaml:"h"`
}

type LayoutSpec struct {
	Name      string      `yaml:"name"`
	Barriers  []PointSpec `yaml:"barriers"`
	Platforms []PointSpec `yaml:"platforms"`
}

type PointSpec struct {
	X int16 `yaml:"x"`
	Y int16 `yaml:"y"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ParseSegmentsSpec decodes a catalog from raw YAML.
func ParseSegmentsSpec(data []byte) (SegmentsSpec, error) {
	var spec SegmentsSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return SegmentsSpec{}, fmt.Errorf("prefabs: unmarshal segments: %w", err)
	}
	return spec, nil
}

func LoadSegmentsSpec() (SegmentsSpec, error) {
	return LoadSpec[SegmentsSpec](SegmentsFile)
}
