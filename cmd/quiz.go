package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mviorel/learninghub/internal/attempts"
	"github.com/mviorel/learninghub/internal/content"
	"github.com/mviorel/learninghub/internal/session"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer quiz questions from the command line",
}

var quizAnswerCmd = &cobra.Command{
	Use:   "answer <module id> <lesson id> <question id> <option index>",
	Short: "Submit a graded answer to a multiple-choice question",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withQuizLesson(cmd, args[0], args[1], func(sess *session.Session, lesson content.Lesson) error {
			ctx := cmd.Context()

			q, ok := lesson.Question(args[2])
			if !ok {
				return fmt.Errorf("unknown question %q in lesson %q", args[2], lesson.ID)
			}
			if q.Written() {
				return fmt.Errorf("question %q is free-text, it is answered in the checkpoint", q.ID)
			}

			idx, err := strconv.Atoi(args[3])
			if err != nil || idx < 0 || idx >= len(q.Options) {
				return fmt.Errorf("option index must be 0..%d", len(q.Options)-1)
			}

			rec, err := sess.Gate.RecordAttempt(ctx, lesson.ID, q.ID, q.Options[idx] == q.Answer)
			if errors.Is(err, attempts.ErrLocked) {
				fmt.Printf("Question %q is locked. Unlock it with: learninghub quiz unlock\n", q.ID)
				return nil
			}
			if err != nil {
				return err
			}

			switch {
			case rec.Correct:
				fmt.Printf("Correct, after %d attempt(s).\n", rec.Attempts)
			case rec.Locked:
				fmt.Printf("Wrong. Attempt %d spent the budget; the question is now locked.\n", rec.Attempts)
			default:
				remaining := sess.Gate.Config().LockThreshold - rec.Attempts
				fmt.Printf("Wrong. Attempt %d recorded, %d remaining before lock.\n", rec.Attempts, remaining)
			}
			return nil
		})
	},
}

var quizUnlockCmd = &cobra.Command{
	Use:   "unlock <module id> <lesson id> <question id> <explanation>",
	Short: "Unlock a locked question with a written explanation",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withQuizLesson(cmd, args[0], args[1], func(sess *session.Session, lesson content.Lesson) error {
			rec, err := sess.Gate.Unlock(cmd.Context(), lesson.ID, args[2], args[3])

			var short *attempts.ExplanationTooShortError
			if errors.As(err, &short) {
				return fmt.Errorf("explanation too short: %d of %d characters", short.Got, short.Min)
			}
			if err != nil {
				return err
			}

			if rec.Locked {
				fmt.Println("Question is still locked.")
				return nil
			}
			fmt.Printf("Question %q unlocked, attempt budget restored.\n", args[2])
			return nil
		})
	},
}

var quizStatusCmd = &cobra.Command{
	Use:   "status <module id> <lesson id>",
	Short: "Show attempt records for a lesson's questions",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withQuizLesson(cmd, args[0], args[1], func(sess *session.Session, lesson content.Lesson) error {
			ctx := cmd.Context()

			records, err := sess.Gate.Lesson(ctx, lesson.ID)
			if err != nil {
				return err
			}

			for _, q := range lesson.Questions {
				if q.Written() {
					continue
				}
				rec := records[q.ID]
				state := "open"
				switch {
				case rec.Correct:
					state = "solved"
				case rec.Locked:
					state = "locked"
				}
				fmt.Printf("  [%-6s] %s  attempts: %d, unlocks: %d\n",
					state, q.ID, rec.Attempts, len(rec.UnlockHistory))
			}

			xp, err := sess.Gate.XPMultiplier(ctx, lesson.ID)
			if err != nil {
				return err
			}
			fmt.Printf("  XP multiplier: %.1fx\n", xp)
			return nil
		})
	},
}

// withQuizLesson opens the store, checks the lesson is reachable and hands
// the session and lesson to fn.
func withQuizLesson(cmd *cobra.Command, moduleID, lessonID string, fn func(*session.Session, content.Lesson) error) error {
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

	mod, lesson, err := lookupLesson(loader, moduleID, lessonID)
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

	return fn(sess, lesson)
}

func init() {
	quizCmd.AddCommand(quizAnswerCmd)
	quizCmd.AddCommand(quizUnlockCmd)
	quizCmd.AddCommand(quizStatusCmd)
}
