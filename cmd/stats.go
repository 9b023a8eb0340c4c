package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress and export history for the active profile",
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

		fmt.Printf("Profile: %s\n\n", sess.DisplayName())

		if _, recovered, err := sess.Tracker.Completions(ctx); err == nil && recovered {
			fmt.Println("  note: checkpoint history was unreadable and has been reset")
		}
		if _, recovered, err := sess.Tracker.Quiz(ctx); err == nil && recovered {
			fmt.Println("  note: quiz history was unreadable and has been reset")
		}

		for _, mod := range loader.Modules() {
			acc, err := sess.Resolver.Resolve(ctx, mod.Chain())
			if err != nil {
				return err
			}
			done := 0
			for _, c := range acc.Completed {
				if c {
					done++
				}
			}
			fmt.Printf("  %-24s %d/%d lessons complete\n", mod.Title, done, len(mod.Lessons))
		}

		limit, _ := cmd.Flags().GetInt("exports")
		records, err := st.ExportRepo().List(ctx, sess.ProfileID, limit)
		if err != nil {
			return err
		}

		fmt.Println()
		if len(records) == 0 {
			fmt.Println("No grade exports yet.")
			return nil
		}
		fmt.Println("Recent exports:")
		for _, rec := range records {
			fmt.Printf("  %s  %-16s grade %2d  %s\n",
				rec.ExportedAt.Format("2006-01-02 15:04"), rec.LessonID, rec.Grade, rec.Fingerprint)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("exports", 10, "How many export events to list (0 for all)")
}
