package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mviorel/learninghub/internal/checkpoint"
)

var submitCmd = &cobra.Command{
	Use:   "submit <module id> <lesson id>",
	Short: "Submit a lesson checkpoint from the command line",
	Long: "Submit answers for a lesson's checkpoint fields without opening the TUI.\n" +
		"Field values are passed as repeated --field name=value flags.",
	Args: cobra.ExactArgs(2),
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

		mod, lesson, err := lookupLesson(loader, args[0], args[1])
		if err != nil {
			return err
		}

		decision, err := sess.Enforcer.Enter(ctx, mod.Chain(), lesson.ID)
		if err != nil {
			return err
		}
		if !decision.Allowed {
			return fmt.Errorf("lesson %q is not reachable yet (%s); continue with %q",
				lesson.ID, decision.Reason, decision.Target)
		}

		pairs, _ := cmd.Flags().GetStringSlice("field")
		values := make(map[string]string, len(pairs))
		for _, pair := range pairs {
			name, value, ok := strings.Cut(pair, "=")
			if !ok {
				return fmt.Errorf("invalid --field %q, expected name=value", pair)
			}
			values[name] = value
		}

		outcome, err := sess.Engine.Submit(ctx, lesson.ID, values, lesson.Checkpoint)
		if err != nil {
			return err
		}

		switch outcome.Status {
		case checkpoint.StatusCompleted:
			fmt.Printf("Checkpoint passed. Lesson %q is complete.\n", lesson.ID)
		case checkpoint.StatusAlreadyCompleted:
			fmt.Printf("Lesson %q was already complete; nothing changed.\n", lesson.ID)
		case checkpoint.StatusInvalid:
			fmt.Println("Checkpoint not passed:")
			printFieldErrors(outcome.Result.FieldErrors)
			return fmt.Errorf("checkpoint validation failed for %q", lesson.ID)
		}
		return nil
	},
}

func init() {
	submitCmd.Flags().StringSlice("field", nil, "Checkpoint field as name=value (repeatable)")
}

func printFieldErrors(errs map[string][]string) {
	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, msg := range errs[name] {
			fmt.Printf("  %s: %s\n", name, msg)
		}
	}
}
