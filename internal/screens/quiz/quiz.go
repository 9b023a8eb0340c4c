// Package quiz runs a lesson's scored questions through the attempt gate.
// Wrong answers count toward the lock threshold; a locked question demands a
// written explanation before it can be retried.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mviorel/learninghub/internal/attempts"
	"github.com/mviorel/learninghub/internal/content"
	"github.com/mviorel/learninghub/internal/grading"
	"github.com/mviorel/learninghub/internal/router"
	"github.com/mviorel/learninghub/internal/screen"
	"github.com/mviorel/learninghub/internal/session"
	"github.com/mviorel/learninghub/internal/ui/components"
	"github.com/mviorel/learninghub/internal/ui/layout"
	"github.com/mviorel/learninghub/internal/ui/theme"
)

type phase int

const (
	phaseAsking phase = iota
	phaseSolved
	phaseLocked
	phaseSummary
)

// QuizScreen asks one scored question at a time.
type QuizScreen struct {
	sess   *session.Session
	lesson content.Lesson

	questions []content.Question
	index     int
	phase     phase

	choice    components.MultiChoice
	unlock    components.TextInput
	feedback  string
	breakdown grading.Breakdown
	xp        float64
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates the quiz screen over the lesson's auto-graded questions.
// Written questions are teacher-evaluated and never appear here.
func New(sess *session.Session, lesson content.Lesson) *QuizScreen {
	q := &QuizScreen{sess: sess, lesson: lesson}
	for _, question := range lesson.Questions {
		if !question.Written() {
			q.questions = append(q.questions, question)
		}
	}
	q.loadQuestion()
	return q
}

// loadQuestion prepares the current question, reflecting any prior attempts.
func (q *QuizScreen) loadQuestion() {
	if q.index >= len(q.questions) {
		q.enterSummary()
		return
	}

	question := q.questions[q.index]
	q.choice = components.NewMultiChoice(question.Text, question.Options, q.correctIndex(question))
	q.feedback = ""

	rec, err := q.sess.Gate.Record(context.Background(), q.lesson.ID, question.ID)
	if err != nil {
		q.phase = phaseAsking
		return
	}
	switch {
	case rec.Correct:
		q.phase = phaseSolved
		q.choice.Reveal(q.choice.CorrectIndex)
		q.feedback = "Already solved."
	case rec.Locked:
		q.enterLocked()
	default:
		q.phase = phaseAsking
		if rec.Attempts > 0 {
			q.feedback = fmt.Sprintf("%d attempt(s) so far.", rec.Attempts)
		}
	}
}

func (q *QuizScreen) correctIndex(question content.Question) int {
	for i, opt := range question.Options {
		if opt == question.Answer {
			return i
		}
	}
	return -1
}

func (q *QuizScreen) enterLocked() {
	q.phase = phaseLocked
	q.unlock = components.NewTextInput("Explain what went wrong and what you will try")
	q.feedback = "Question locked. Write an explanation to try again."
}

func (q *QuizScreen) enterSummary() {
	q.phase = phaseSummary
	ctx := context.Background()

	in, err := q.sess.Report(ctx, q.lesson)
	if err != nil {
		q.feedback = "could not compute grade: " + err.Error()
		return
	}
	q.breakdown = grading.Compile(in.Atomic, in.Practice)
	q.xp = in.XPMultiplier
	q.feedback = ""
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	switch q.phase {
	case phaseAsking:
		if isKey && kmsg.String() == "enter" {
			q.answer()
			return q, nil
		}
		q.choice, _ = q.choice.Update(msg)

	case phaseSolved:
		if isKey && kmsg.String() == "enter" {
			q.index++
			q.loadQuestion()
		}

	case phaseLocked:
		if isKey && kmsg.String() == "enter" {
			q.tryUnlock()
			return q, nil
		}
		var cmd tea.Cmd
		q.unlock, cmd = q.unlock.Update(msg)
		return q, cmd

	case phaseSummary:
		if isKey && kmsg.String() == "enter" {
			return q, leaveCmd()
		}
	}
	return q, nil
}

// answer grades the current selection through the attempt gate. A wrong
// answer never reveals the correct option; the learner retries until the
// gate locks the question.
func (q *QuizScreen) answer() {
	question := q.questions[q.index]
	correct := q.choice.Cursor == q.choice.CorrectIndex

	rec, err := q.sess.Gate.RecordAttempt(context.Background(), q.lesson.ID, question.ID, correct)
	if errors.Is(err, attempts.ErrLocked) {
		q.enterLocked()
		return
	}
	if err != nil {
		q.feedback = "progress not saved: " + err.Error()
		return
	}

	switch {
	case rec.Correct:
		q.phase = phaseSolved
		q.choice.Reveal(q.choice.Cursor)
		q.feedback = "Correct!"
	case rec.Locked:
		q.enterLocked()
	default:
		q.feedback = fmt.Sprintf("Not quite. Attempt %d recorded, try again.", rec.Attempts)
	}
}

func (q *QuizScreen) tryUnlock() {
	question := q.questions[q.index]
	rec, err := q.sess.Gate.Unlock(context.Background(), q.lesson.ID, question.ID, q.unlock.Value())

	var tooShort *attempts.ExplanationTooShortError
	switch {
	case errors.As(err, &tooShort):
		q.feedback = fmt.Sprintf("Explanation too short: %d of %d characters.", tooShort.Got, tooShort.Min)
	case err != nil:
		q.feedback = "unlock failed: " + err.Error()
	case rec.Locked:
		q.feedback = "Still locked."
	default:
		q.loadQuestion()
		q.feedback = "Unlocked. Try the question again."
	}
}

func leaveCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (q *QuizScreen) View(width, height int) string {
	var b strings.Builder

	if q.phase == phaseSummary {
		return q.summaryView(width)
	}

	b.WriteString(theme.Hint.Render(fmt.Sprintf("  Question %d of %d", q.index+1, len(q.questions))) + "\n\n")
	b.WriteString(q.choice.View() + "\n")

	if q.phase == phaseLocked {
		b.WriteString(theme.Incorrect.Render("  🔒 "+q.feedback) + "\n\n")
		b.WriteString("  " + q.unlock.View() + "\n")
	} else if q.feedback != "" {
		style := theme.Hint
		if q.phase == phaseSolved {
			style = theme.Correct
		}
		b.WriteString(style.Render("  "+q.feedback) + "\n")
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (q *QuizScreen) summaryView(width int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Lesson complete") + "\n\n")
	if q.feedback != "" {
		b.WriteString(theme.Hint.Render("  "+q.feedback) + "\n")
		return lipgloss.NewStyle().Width(width).Render(b.String())
	}

	b.WriteString(theme.Body.Render(fmt.Sprintf("  Din oficiu      %d", q.breakdown.DinOficiu)) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("  Theory points   %d", q.breakdown.AtomicPoints)) + "\n")
	if q.breakdown.PracticePoints != nil {
		b.WriteString(theme.Body.Render(fmt.Sprintf("  Practice points %d", *q.breakdown.PracticePoints)) + "\n")
	} else {
		b.WriteString(theme.Hint.Render("  Practice        not attempted") + "\n")
	}
	b.WriteString("\n" + theme.Correct.Render(fmt.Sprintf("  Grade: %d / 10", q.breakdown.Grade)) + "\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  XP multiplier: %.2g", q.xp)) + "\n\n")
	b.WriteString(theme.Hint.Render("  Press Enter to go back. Use `learninghub export` to share with your teacher.") + "\n")

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

// KeyHints implements screen.KeyHintProvider.
func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseLocked:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit explanation"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseSummary:
		return []layout.KeyHint{{Key: "Enter", Description: "Back"}}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	}
}
