package main

import (
	"fmt"

	"github.com/milk9111/walkthedog/assets"
	"github.com/milk9111/walkthedog/render"
	"github.com/milk9111/walkthedog/session"
	"github.com/milk9111/walkthedog/sound"
	"github.com/spf13/cobra"
)

var (
	flagFrames    int
	flagJumpEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a session headless and print where it ended",
	Long: `Run the game without a window, audio or keyboard. The runner starts
on the first frame and jumps every --jump-every frames. The run stops at the
first crash or after --frames updates. Pass --seed for a repeatable run.

Examples:
  walkthedog sim --frames 600
  walkthedog sim --frames 5000 --jump-every 45 --seed 7`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 600, "Maximum number of updates")
	simCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Press Up every N frames (0 = never)")
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagFrames <= 0 {
		return fmt.Errorf("sim: --frames must be positive, got %d", flagFrames)
	}
	cfg, logger, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	game := session.New(&sound.Silent{}, session.NoPrompt{}, session.Options{
		Seed:   cfg.Seed,
		Script: cfg.Script,
		Debug:  cfg.Debug,
		Logger: logger,
	})
	if err := game.Initialize(cmd.Context(), assets.NewLoader(cfg.SampleRate)); err != nil {
		return err
	}

	res, err := session.Replay(game, session.JumpPlan(flagFrames, flagJumpEvery), render.Null{}, flagFrames)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "state=%s frames=%d distance=%d seed=%d\n", res.State, res.Frames, res.Distance, cfg.Seed)
	return nil
}
