package generator

import (
	"math"

	"alcyxob/fitplan/internal/domain"
)

const (
	minExercisesPerDay = 4
	maxExercisesPerDay = 12
	// Sessions in very low frequency plans carry at least this many exercises.
	lowFrequencyFloor = 8
	// Sessions in very high frequency plans carry at most this many exercises.
	highFrequencyCap = 5
)

// VolumePlan is the weekly volume split into per-session work.
type VolumePlan struct {
	WeeklySets      int
	SetsPerDay      float64
	ExercisesPerDay int
	Programming     GoalProgramming
}

// ProgramVolume converts the negotiated day count, goal and tier into weekly set volume,
// the goal's per-exercise prescription and a per-session exercise count.
func ProgramVolume(t Tables, days int, goal domain.FitnessGoal, tier domain.Tier) VolumePlan {
	if days < 1 {
		days = 1
	}
	row, ok := t.WeeklySets[goal]
	if !ok {
		row = t.WeeklySets[domain.GoalGeneralFitness]
	}
	weekly := row[tier]
	prog := t.programmingFor(goal)

	setsPerDay := float64(weekly) / float64(days)
	perDay := int(math.Floor(setsPerDay / prog.SetsPerExercise))

	switch {
	case days <= 2 && perDay < lowFrequencyFloor:
		perDay = lowFrequencyFloor
	case days >= 6 && perDay > highFrequencyCap:
		perDay = highFrequencyCap
	}
	perDay = max(minExercisesPerDay, min(perDay, maxExercisesPerDay))

	return VolumePlan{
		WeeklySets:      weekly,
		SetsPerDay:      setsPerDay,
		ExercisesPerDay: perDay,
		Programming:     prog,
	}
}

// Notes renders the plan-level programming summary.
func (v VolumePlan) Notes() domain.ProgrammingNotes {
	return domain.ProgrammingNotes{
		RepRange:       repRange(v.Programming),
		RestSeconds:    v.Programming.RestSeconds,
		LoadPercentage: v.Programming.LoadPercentage,
	}
}
