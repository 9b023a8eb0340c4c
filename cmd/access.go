package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mviorel/learninghub/internal/content"
)

var accessCmd = &cobra.Command{
	Use:   "access [module id]",
	Short: "Show which lessons are reachable for the active profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		modules := loader.Modules()
		if len(args) == 1 {
			mod, ok := loader.Module(args[0])
			if !ok {
				return fmt.Errorf("unknown module %q", args[0])
			}
			modules = []content.Module{mod}
		}

		for _, mod := range modules {
			acc, err := sess.Resolver.Resolve(ctx, mod.Chain())
			if err != nil {
				return err
			}

			fmt.Printf("%s  %s\n", mod.Module, mod.Title)
			for i, lesson := range mod.Lessons {
				marker := "locked"
				switch {
				case acc.Completed[i]:
					marker = "done"
				case acc.Accessible(i):
					marker = "open"
				}
				fmt.Printf("  [%-6s] %s  %s\n", marker, lesson.ID, lesson.Title)
			}
			if acc.ReviewerMode {
				fmt.Println("  (reviewer mode: all locks bypassed)")
			}
		}
		return nil
	},
}
