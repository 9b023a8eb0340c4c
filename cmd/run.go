package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mviorel/learninghub/internal/app"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive lesson browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds the active session, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	loader, err := loadContent(cfg)
	if err != nil {
		return err
	}
	sess, err := buildSession(ctx, cmd, st, cfg)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Session:      sess,
		Loader:       loader,
		ReviewerMode: cfg.ReviewerMode,
	})
}
