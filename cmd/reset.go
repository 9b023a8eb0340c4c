package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset [lesson id]",
	Short: "Reset progress for a lesson, or everything with --all",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		all, _ := cmd.Flags().GetBool("all")

		if all == (len(args) == 1) {
			return fmt.Errorf("pass exactly one of a lesson id or --all")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		sess, err := buildSession(ctx, cmd, st, cfg)
		if err != nil {
			return err
		}

		if all {
			if err := sess.Tracker.ResetAll(ctx); err != nil {
				return err
			}
			fmt.Printf("Cleared all progress for %s.\n", sess.DisplayName())
			return nil
		}

		if err := sess.Tracker.ResetLesson(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("Cleared completion and quiz records for lesson %q.\n", args[0])
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Wipe every progress record for the active profile")
}
