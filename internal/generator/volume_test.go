package generator

import (
	"testing"

	"alcyxob/fitplan/internal/domain"
)

func TestProgramVolume(t *testing.T) {
	tables := DefaultTables()
	tests := []struct {
		name   string
		days   int
		goal   domain.FitnessGoal
		tier   domain.Tier
		weekly int
		perDay int
	}{
		{"low frequency floor", 2, domain.GoalStrength, beg, 40, 8},
		{"high frequency cap", 6, domain.GoalEndurance, adv, 120, 5},
		{"plain floor division", 3, domain.GoalGeneralFitness, beg, 50, 5},
		{"muscle building five days", 5, domain.GoalMuscleBuilding, adv, 90, 6},
		{"global minimum", 4, domain.GoalStrength, beg, 40, 4},
		{"global maximum", 1, domain.GoalWeightLoss, adv, 100, 12},
		{"unknown goal uses general fitness", 3, domain.FitnessGoal("yoga"), mid, 65, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ProgramVolume(tables, tt.days, tt.goal, tt.tier)
			if v.WeeklySets != tt.weekly {
				t.Errorf("WeeklySets = %d, want %d", v.WeeklySets, tt.weekly)
			}
			if v.ExercisesPerDay != tt.perDay {
				t.Errorf("ExercisesPerDay = %d, want %d", v.ExercisesPerDay, tt.perDay)
			}
		})
	}
}

func TestVolumeNotes(t *testing.T) {
	n := ProgramVolume(DefaultTables(), 4, domain.GoalStrength, mid).Notes()
	want := domain.ProgrammingNotes{RepRange: "3-6", RestSeconds: 180, LoadPercentage: "85-90%"}
	if n != want {
		t.Errorf("Notes() = %+v, want %+v", n, want)
	}
}

func TestProgramExercise(t *testing.T) {
	tables := DefaultTables()
	tests := []struct {
		goal domain.FitnessGoal
		want Prescription
	}{
		{domain.GoalEndurance, Prescription{Sets: 2, Reps: 20, RepsRange: "15-25", RestSeconds: 40}},
		{domain.GoalGeneralFitness, Prescription{Sets: 3, Reps: 11, RepsRange: "10-12", RestSeconds: 75}},
		{domain.GoalStrength, Prescription{Sets: 4, Reps: 4, RepsRange: "3-6", RestSeconds: 180}},
		{domain.GoalWeightLoss, Prescription{Sets: 3, Reps: 12, RepsRange: "10-15", RestSeconds: 45}},
		{domain.GoalMuscleBuilding, Prescription{Sets: 3, Reps: 10, RepsRange: "8-12", RestSeconds: 75}},
	}
	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			if got := ProgramExercise(tables.programmingFor(tt.goal)); got != tt.want {
				t.Errorf("ProgramExercise = %+v, want %+v", got, tt.want)
			}
		})
	}
}
