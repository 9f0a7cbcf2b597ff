package generator

import (
	"math"

	"alcyxob/fitplan/internal/domain"
)

// secondsPerRep models one concentric plus eccentric phase.
const secondsPerRep = 3

// Estimate is the unrounded time and energy cost of one programmed exercise.
type Estimate struct {
	Minutes  float64
	Calories float64
}

// EstimateExercise computes the exercise's working time and calorie burn. The calorie rate
// comes from the catalog for the tier when present, otherwise from the mechanic defaults.
func EstimateExercise(t Tables, ex domain.Exercise, tier domain.Tier, p Prescription) Estimate {
	rate, ok := ex.CaloriesPerMinute(tier)
	if !ok {
		if ex.Mechanic == domain.MechanicCompound {
			rate = t.CompoundCalories[tier]
		} else {
			rate = t.IsolationCalories[tier]
		}
	}

	perSet := float64(p.Reps*secondsPerRep+p.RestSeconds) / 60
	minutes := perSet * float64(p.Sets)
	return Estimate{Minutes: minutes, Calories: rate * minutes}
}

// round1 rounds half away from zero to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
