package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/niriutils/nirictl/internal/nav"
	"github.com/niriutils/nirictl/internal/niri"
)

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "Decide one navigation keypress against live compositor state",
	Long: `Run the primary niri action for a navigation keypress, observe whether
it changed focus or layout, and run the fallback action when it did
not. Meant to be bound directly to keys:

  Mod+Down { spawn "nirictl" "nav" "--direction" "down"
             "--primary-action" "focus-window-down"
             "--fallback-action" "focus-workspace-down"; }

The command never prints to stdout and reports its decision through the
exit code alone: 0 when the keypress was resolved by either action, 1
when the primary action failed, the compositor state could not be
observed, or the fallback failed. Pass --debug for a trace on stderr.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runNav,
}

func init() {
	rootCmd.AddCommand(navCmd)
	navCmd.Flags().String("direction", "", "Direction of the keypress: up, down, left, right")
	navCmd.Flags().String("primary-action", "", "niri action to try first")
	navCmd.Flags().String("fallback-action", "", "niri action to run when the primary changed nothing")
	navCmd.Flags().String("overview-action", "", "Action to run instead while the overview is open (default: the fallback action)")
}

var validDirections = map[string]bool{"up": true, "down": true, "left": true, "right": true}

func runNav(cmd *cobra.Command, args []string) error {
	direction, _ := cmd.Flags().GetString("direction")
	primary, _ := cmd.Flags().GetString("primary-action")
	fallback, _ := cmd.Flags().GetString("fallback-action")
	overview, _ := cmd.Flags().GetString("overview-action")

	// Misuse stays as quiet as failure: a keybinding has nowhere to
	// show a usage message.
	if !validDirections[direction] {
		logger.Debugf("invalid --direction %q, want up, down, left or right", direction)
		return fmt.Errorf("invalid direction %q", direction)
	}
	if primary == "" || fallback == "" {
		logger.Debugf("--primary-action and --fallback-action are required")
		return fmt.Errorf("missing required action flags")
	}

	engine := nav.New(niri.NewClient(), logger)
	res, err := engine.Run(context.Background(), nav.Request{
		Direction: direction,
		Primary:   primary,
		Fallback:  fallback,
		Overview:  overview,
	})
	if err != nil {
		logger.Debugf("nav failed: %v", err)
		return err
	}
	logger.Debugf("nav resolved: outcome=%s fallback_ran=%t", res.Outcome, res.FallbackRan)
	return nil
}
