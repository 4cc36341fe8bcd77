// walkthedog is a side-scrolling runner: run, jump and slide past stones and
// floating platforms until you crash, then start again.
//
// Usage:
//
//	walkthedog                         - open the window and play
//	walkthedog sim --frames 600        - run a session headless and print the result
//
// Controls: Right arrow starts running, Up jumps, Down slides, Enter (or the
// New Game button) restarts after a crash.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/milk9111/walkthedog/config"
	"github.com/milk9111/walkthedog/prefabs"
	"github.com/spf13/cobra"
)

var (
	flagConfig     string
	flagDebug      bool
	flagSeed       int64
	flagScript     string
	flagScale      float64
	flagVolume     float64
	flagWatch      bool
	flagPrefabsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "walkthedog",
	Short:         "Run, jump and slide past obstacles",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return play(cmd.Context(), cfg, logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Draw bounding boxes and the frame rate, log at debug level")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Segment RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagScript, "script", "", "Tengo segment selector under prefabs/scripts (e.g. select.tengo)")
	rootCmd.PersistentFlags().StringVar(&flagPrefabsDir, "prefabs", "", "Directory with segment catalog and script overrides")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window scale")
	rootCmd.Flags().Float64Var(&flagVolume, "volume", 0, "Sound volume, 0 to 1")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the segment catalog and script when they change")

	rootCmd.AddCommand(simCmd)
}

// resolveConfig layers explicitly set flags over the config file and
// environment, and builds the logger.
func resolveConfig(cmd *cobra.Command) (config.Config, *log.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = flagDebug
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("script") {
		cfg.Script = flagScript
	}
	if flags.Changed("prefabs") {
		cfg.PrefabsDir = flagPrefabsDir
	}
	if flags.Changed("scale") {
		cfg.Scale = flagScale
	}
	if flags.Changed("volume") {
		cfg.Volume = flagVolume
	}
	if flags.Changed("watch") {
		cfg.Watch = flagWatch
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	prefabs.DiskDir = cfg.PrefabsDir

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "walkthedog",
	})
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}
	return cfg, logger, nil
}
