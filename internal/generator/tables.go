package generator

import "alcyxob/fitplan/internal/domain"

// GoalProgramming is the per-goal prescription applied to every exercise of a plan.
type GoalProgramming struct {
	SetsPerExercise float64
	RepsMin         int
	RepsMax         int
	RestSeconds     int
	LoadPercentage  string
}

// Tables holds every lookup table the pipeline consults. DefaultTables returns a fresh
// copy, so callers may mutate the result (tests do) without affecting other generators.
type Tables struct {
	// PreferenceRanges maps a schedule preference code to the day counts it allows.
	PreferenceRanges map[int][]int
	// DefaultPreference is used for unknown preference codes.
	DefaultPreference int

	GoalIdealDays    map[domain.FitnessGoal]int
	DefaultIdealDays int

	TierMaxDays map[domain.Tier]int
	// SeniorAge and SeniorMaxDays cap training frequency for older users.
	SeniorAge     int
	SeniorMaxDays int

	WeeklySets      map[domain.FitnessGoal]map[domain.Tier]int
	GoalProgramming map[domain.FitnessGoal]GoalProgramming

	CompoundRatio map[domain.FitnessGoal]float64

	// EquipmentAliases maps questionnaire equipment names to catalog vocabulary.
	EquipmentAliases map[string]string

	// Fallback calorie rates when the catalog has none for the tier.
	CompoundCalories  map[domain.Tier]float64
	IsolationCalories map[domain.Tier]float64

	RecoveryMinutes  float64
	RecoveryCalories float64
}

// DefaultTables returns the planner's standard tables.
func DefaultTables() Tables {
	return Tables{
		PreferenceRanges: map[int][]int{
			1: {1, 2},
			3: {3, 4},
			5: {5, 6},
			7: {7},
		},
		DefaultPreference: 3,
		GoalIdealDays: map[domain.FitnessGoal]int{
			domain.GoalWeightLoss:     5,
			domain.GoalStrength:       4,
			domain.GoalMuscleBuilding: 5,
			domain.GoalEndurance:      6,
			domain.GoalGeneralFitness: 3,
			domain.GoalMaintenance:    3,
		},
		DefaultIdealDays: 3,
		TierMaxDays: map[domain.Tier]int{
			domain.TierBeginner:     5,
			domain.TierIntermediate: 6,
			domain.TierAdvanced:     7,
		},
		SeniorAge:     60,
		SeniorMaxDays: 5,
		WeeklySets: map[domain.FitnessGoal]map[domain.Tier]int{
			domain.GoalWeightLoss:     {domain.TierBeginner: 70, domain.TierIntermediate: 85, domain.TierAdvanced: 100},
			domain.GoalStrength:       {domain.TierBeginner: 40, domain.TierIntermediate: 55, domain.TierAdvanced: 70},
			domain.GoalMuscleBuilding: {domain.TierBeginner: 60, domain.TierIntermediate: 75, domain.TierAdvanced: 90},
			domain.GoalEndurance:      {domain.TierBeginner: 75, domain.TierIntermediate: 95, domain.TierAdvanced: 120},
			domain.GoalGeneralFitness: {domain.TierBeginner: 50, domain.TierIntermediate: 65, domain.TierAdvanced: 80},
			domain.GoalMaintenance:    {domain.TierBeginner: 45, domain.TierIntermediate: 60, domain.TierAdvanced: 75},
		},
		GoalProgramming: map[domain.FitnessGoal]GoalProgramming{
			domain.GoalStrength:       {SetsPerExercise: 4, RepsMin: 3, RepsMax: 6, RestSeconds: 180, LoadPercentage: "85-90%"},
			domain.GoalMuscleBuilding: {SetsPerExercise: 3, RepsMin: 8, RepsMax: 12, RestSeconds: 75, LoadPercentage: "70-85%"},
			domain.GoalWeightLoss:     {SetsPerExercise: 3, RepsMin: 10, RepsMax: 15, RestSeconds: 45, LoadPercentage: "60-75%"},
			domain.GoalEndurance:      {SetsPerExercise: 2.5, RepsMin: 15, RepsMax: 25, RestSeconds: 40, LoadPercentage: "50-65%"},
			domain.GoalGeneralFitness: {SetsPerExercise: 3, RepsMin: 10, RepsMax: 12, RestSeconds: 75, LoadPercentage: "65-75%"},
			domain.GoalMaintenance:    {SetsPerExercise: 3, RepsMin: 8, RepsMax: 12, RestSeconds: 90, LoadPercentage: "65-75%"},
		},
		CompoundRatio: map[domain.FitnessGoal]float64{
			domain.GoalStrength:       0.70,
			domain.GoalMuscleBuilding: 0.50,
			domain.GoalWeightLoss:     0.60,
			domain.GoalEndurance:      0.50,
			domain.GoalGeneralFitness: 0.55,
			domain.GoalMaintenance:    0.50,
		},
		EquipmentAliases: map[string]string{
			"bodyweight":       domain.EquipmentBodyOnly,
			"dumbbells":        "dumbbell",
			"resistance_bands": "bands",
			"kettlebells":      "kettlebells",
			"barbell":          "barbell",
			"pull_up_bar":      "cable",
			"exercise_ball":    "exercise ball",
			"yoga_mat":         domain.EquipmentBodyOnly,
		},
		CompoundCalories: map[domain.Tier]float64{
			domain.TierBeginner:     5.0,
			domain.TierIntermediate: 6.0,
			domain.TierAdvanced:     7.0,
		},
		IsolationCalories: map[domain.Tier]float64{
			domain.TierBeginner:     3.5,
			domain.TierIntermediate: 4.5,
			domain.TierAdvanced:     5.5,
		},
		RecoveryMinutes:  20,
		RecoveryCalories: 80,
	}
}

// programmingFor returns the goal's prescription, falling back to general fitness.
func (t *Tables) programmingFor(goal domain.FitnessGoal) GoalProgramming {
	if p, ok := t.GoalProgramming[goal]; ok {
		return p
	}
	return t.GoalProgramming[domain.GoalGeneralFitness]
}
