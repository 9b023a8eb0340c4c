package grading

import "testing"

func intPtr(v int) *int { return &v }

func TestCompile(t *testing.T) {
	tests := []struct {
		name     string
		atomic   SubScore
		practice *SubScore
		want     Breakdown
	}{
		{
			// Scenario: perfect theory, practice never attempted. The
			// practice points are absent, not zero, capping the grade at 7.
			"perfect theory without practice",
			SubScore{Correct: 6, Total: 6},
			nil,
			Breakdown{DinOficiu: 1, AtomicPoints: 6, Grade: 7},
		},
		{
			"perfect theory and practice",
			SubScore{Correct: 6, Total: 6},
			&SubScore{Correct: 3, Total: 3},
			Breakdown{DinOficiu: 1, AtomicPoints: 6, PracticePoints: intPtr(3), Grade: 10},
		},
		{
			"nothing correct still earns the din oficiu point",
			SubScore{Correct: 0, Total: 6},
			&SubScore{Correct: 0, Total: 3},
			Breakdown{DinOficiu: 1, AtomicPoints: 0, PracticePoints: intPtr(0), Grade: 1},
		},
		{
			"half theory rounds to nearest point",
			SubScore{Correct: 3, Total: 6},
			nil,
			Breakdown{DinOficiu: 1, AtomicPoints: 3, Grade: 4},
		},
		{
			"rounding is half away from zero",
			SubScore{Correct: 5, Total: 12}, // 2.5 points
			nil,
			Breakdown{DinOficiu: 1, AtomicPoints: 3, Grade: 4},
		},
		{
			// Total 0 means the category never ran; same as unattempted.
			"zero-total practice treated as unattempted",
			SubScore{Correct: 4, Total: 6},
			&SubScore{},
			Breakdown{DinOficiu: 1, AtomicPoints: 4, Grade: 5},
		},
		{
			"zero-total atomic contributes nothing",
			SubScore{},
			&SubScore{Correct: 2, Total: 3},
			Breakdown{DinOficiu: 1, AtomicPoints: 0, PracticePoints: intPtr(2), Grade: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compile(tt.atomic, tt.practice)
			if got.DinOficiu != tt.want.DinOficiu ||
				got.AtomicPoints != tt.want.AtomicPoints ||
				got.Grade != tt.want.Grade {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
			switch {
			case tt.want.PracticePoints == nil:
				if got.PracticePoints != nil {
					t.Errorf("practicePoints = %d, want omitted", *got.PracticePoints)
				}
			case got.PracticePoints == nil:
				t.Errorf("practicePoints omitted, want %d", *tt.want.PracticePoints)
			case *got.PracticePoints != *tt.want.PracticePoints:
				t.Errorf("practicePoints = %d, want %d", *got.PracticePoints, *tt.want.PracticePoints)
			}
		})
	}
}

func TestCompileGradeNeverLeavesScale(t *testing.T) {
	for correct := 0; correct <= 6; correct++ {
		for pc := 0; pc <= 3; pc++ {
			b := Compile(SubScore{Correct: correct, Total: 6}, &SubScore{Correct: pc, Total: 3})
			if b.Grade < 1 || b.Grade > 10 {
				t.Errorf("grade %d out of scale for %d/6 theory, %d/3 practice", b.Grade, correct, pc)
			}
		}
	}
}
