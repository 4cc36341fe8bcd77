// Package config resolves runtime settings. Later layers win: Default, then
// an optional YAML file, then WALKTHEDOG_* environment variables. Command
// line flags are applied by the caller on top.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Scale multiplies the 600x600 canvas to get the window size.
	Scale float64 `yaml:"scale" env:"WALKTHEDOG_SCALE"`
	// Debug draws bounding boxes and the frame rate and logs at debug level.
	Debug bool `yaml:"debug" env:"WALKTHEDOG_DEBUG"`
	// Seed feeds the random segment selector. Zero picks a fresh seed.
	Seed int64 `yaml:"seed" env:"WALKTHEDOG_SEED"`
	// Volume is applied to every sound, 0 to 1.
	Volume     float64 `yaml:"volume" env:"WALKTHEDOG_VOLUME"`
	SampleRate int     `yaml:"sample_rate" env:"WALKTHEDOG_SAMPLE_RATE"`
	// Script names a tengo selector under prefabs/scripts. Empty selects
	// segments uniformly at random.
	Script string `yaml:"script" env:"WALKTHEDOG_SCRIPT"`
	// Watch reloads the segment catalog and script when they change on disk.
	Watch      bool   `yaml:"watch" env:"WALKTHEDOG_WATCH"`
	PrefabsDir string `yaml:"prefabs_dir" env:"WALKTHEDOG_PREFABS_DIR"`
}

func Default() Config {
	return Config{
		Scale:      1,
		Volume:     0.5,
		SampleRate: 44100,
		PrefabsDir: "prefabs",
	}
}

// Load layers path (if not empty) and the environment over Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv overrides fields whose environment variable is set.
func ParseEnv(target *Config) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

var (
	ErrScale      = errors.New("config: scale must be positive")
	ErrVolume     = errors.New("config: volume must be between 0 and 1")
	ErrSampleRate = errors.New("config: sample rate must be positive")
)

func (c Config) Validate() error {
	var errs []error
	if c.Scale <= 0 {
		errs = append(errs, ErrScale)
	}
	if c.Volume < 0 || c.Volume > 1 {
		errs = append(errs, ErrVolume)
	}
	if c.SampleRate <= 0 {
		errs = append(errs, ErrSampleRate)
	}
	return errors.Join(errs...)
}
