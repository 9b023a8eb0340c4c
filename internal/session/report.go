package session

import (
	"context"
	"fmt"
	"sort"

	"github.com/mviorel/learninghub/internal/content"
	"github.com/mviorel/learninghub/internal/grading"
)

// Report assembles the export input for one lesson from the profile's quiz
// records and checkpoint answers. Scored questions feed the sub-scores;
// checkpoint free-text answers ride along as written items for the teacher
// to evaluate by hand.
func (s *Session) Report(ctx context.Context, lesson content.Lesson) (grading.Input, error) {
	quiz, _, err := s.Tracker.Quiz(ctx)
	if err != nil {
		return grading.Input{}, err
	}
	completion, err := s.Tracker.Completion(ctx, lesson.ID)
	if err != nil {
		return grading.Input{}, err
	}

	var atomic, practice grading.SubScore
	practiceAttempted := false
	var atomicItems, practiceItems []grading.AnswerItem

	for _, q := range lesson.Questions {
		rec := quiz.Record(lesson.ID, q.ID)
		answered := rec.Attempts > 0
		item := grading.AnswerItem{
			QuestionID:    q.ID,
			Question:      q.Text,
			Answered:      answered,
			IsCorrect:     rec.Correct,
			CorrectAnswer: q.Answer,
		}

		if q.ScoreKind() == content.KindPractice {
			practice.Total++
			if rec.Correct {
				practice.Correct++
			}
			if answered {
				practiceAttempted = true
			}
			practiceItems = append(practiceItems, item)
		} else {
			atomic.Total++
			if rec.Correct {
				atomic.Correct++
			}
			atomicItems = append(atomicItems, item)
		}
	}

	if completion.Completed {
		names := make([]string, 0, len(completion.Fields))
		for name := range completion.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			practiceItems = append(practiceItems, grading.AnswerItem{
				QuestionID:                name,
				Question:                  fieldLabel(lesson, name),
				Answered:                  true,
				UserAnswer:                completion.Fields[name],
				RequiresTeacherEvaluation: true,
			})
		}
	}

	multiplier, err := s.Gate.XPMultiplier(ctx, lesson.ID)
	if err != nil {
		return grading.Input{}, fmt.Errorf("compute multiplier: %w", err)
	}

	in := grading.Input{
		Student:       grading.StudentInfo{ProfileID: s.ProfileID, Name: s.DisplayName()},
		Lesson:        grading.LessonInfo{ID: lesson.ID, Title: lesson.Title},
		Atomic:        atomic,
		XPMultiplier:  multiplier,
		AtomicItems:   atomicItems,
		PracticeItems: practiceItems,
	}
	if practiceAttempted {
		p := practice
		in.Practice = &p
	}
	return in, nil
}

func fieldLabel(lesson content.Lesson, name string) string {
	for _, f := range lesson.Checkpoint.Fields {
		if f.Name == name {
			if f.Label != "" {
				return f.Label
			}
			break
		}
	}
	return name
}
