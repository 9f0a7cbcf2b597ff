package generator

import "alcyxob/fitplan/internal/domain"

// Weekdays in canonical plan order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DaySlot is one scheduled day of a split template. Recovery slots carry a description
// and no target muscles.
type DaySlot struct {
	Day           string
	Focus         string
	TargetMuscles []string
	Recovery      bool
	Description   string
}

func train(day, focus string, muscles ...string) DaySlot {
	return DaySlot{Day: day, Focus: focus, TargetMuscles: muscles}
}

func recovery(day, description string) DaySlot {
	return DaySlot{Day: day, Focus: "Active Recovery", Recovery: true, Description: description}
}

// SelectSplit returns the ordered day slots for a resolved training frequency. Day
// counts outside 1..7 fall back to the three-day template.
func SelectSplit(days int, tier domain.Tier, goal domain.FitnessGoal) []DaySlot {
	beginner := tier == domain.TierBeginner

	switch days {
	case 1:
		return []DaySlot{
			train("Wednesday", "Total Body Blast", "chest", "back", "quadriceps", "shoulders", "biceps", "triceps"),
		}

	case 2:
		if beginner {
			return []DaySlot{
				train("Monday", "Full Body A", "chest", "back", "quadriceps", "shoulders"),
				train("Thursday", "Full Body B", "chest", "back", "quadriceps", "shoulders"),
			}
		}
		return []DaySlot{
			train("Monday", "Upper Body", "chest", "back", "shoulders", "biceps", "triceps"),
			train("Thursday", "Lower Body", "quadriceps", "hamstrings", "glutes", "calves", "abdominals"),
		}

	case 3:
		if beginner {
			return []DaySlot{
				train("Monday", "Full Body A", "chest", "back", "quadriceps"),
				train("Wednesday", "Full Body B", "shoulders", "biceps", "triceps", "abdominals"),
				train("Friday", "Full Body C", "chest", "back", "quadriceps"),
			}
		}
		return []DaySlot{
			train("Monday", "Push", "chest", "shoulders", "triceps"),
			train("Wednesday", "Pull", "back", "lats", "biceps", "forearms"),
			train("Friday", "Legs & Core", "quadriceps", "hamstrings", "glutes", "abdominals", "calves"),
		}

	case 4:
		if goal == domain.GoalStrength || goal == domain.GoalMuscleBuilding {
			return []DaySlot{
				train("Monday", "Upper Body A", "chest", "shoulders", "triceps"),
				train("Tuesday", "Lower Body A", "quadriceps", "hamstrings", "glutes"),
				train("Thursday", "Upper Body B", "back", "lats", "biceps", "forearms"),
				train("Saturday", "Lower Body B", "quadriceps", "calves", "abdominals"),
			}
		}
		return []DaySlot{
			train("Monday", "Full Body Circuit", "chest", "back", "quadriceps"),
			train("Tuesday", "Cardio & Core", "abdominals", "cardio"),
			train("Thursday", "Full Body Strength", "shoulders", "quadriceps", "biceps", "triceps"),
			train("Saturday", "HIIT & Conditioning", "chest", "back", "quadriceps"),
		}

	case 5:
		if beginner {
			return []DaySlot{
				train("Monday", "Upper Push", "chest", "shoulders", "triceps"),
				train("Tuesday", "Lower Body", "quadriceps", "hamstrings", "glutes"),
				train("Thursday", "Upper Pull", "back", "biceps"),
				train("Friday", "Core & Cardio", "abdominals", "lower back"),
				train("Saturday", "Full Body", "chest", "back", "quadriceps", "shoulders"),
			}
		}
		return []DaySlot{
			train("Monday", "Chest & Triceps", "chest", "triceps"),
			train("Tuesday", "Back & Biceps", "back", "lats", "biceps"),
			train("Wednesday", "Legs", "quadriceps", "hamstrings", "glutes", "calves"),
			train("Thursday", "Shoulders & Core", "shoulders", "abdominals", "traps"),
			train("Saturday", "Full Body", "chest", "back", "quadriceps", "shoulders"),
		}

	case 6:
		return []DaySlot{
			train("Monday", "Push A", "chest", "shoulders", "triceps"),
			train("Tuesday", "Pull A", "back", "lats", "biceps"),
			train("Wednesday", "Legs A", "quadriceps", "hamstrings", "glutes"),
			train("Thursday", "Push B", "chest", "shoulders", "triceps"),
			train("Friday", "Pull B", "back", "lats", "biceps", "forearms"),
			train("Saturday", "Legs B & Core", "quadriceps", "calves", "abdominals"),
		}

	case 7:
		return []DaySlot{
			train("Monday", "Chest & Triceps", "chest", "triceps"),
			train("Tuesday", "Back & Biceps", "back", "lats", "biceps"),
			recovery("Wednesday", "Light yoga, stretching, or 20-min walk at easy pace"),
			train("Thursday", "Shoulders & Core", "shoulders", "abdominals", "traps"),
			train("Friday", "Legs", "quadriceps", "hamstrings", "glutes", "calves"),
			train("Saturday", "Arms & Abs", "biceps", "triceps", "forearms", "abdominals"),
			recovery("Sunday", "Swimming, easy cycling, or mobility work"),
		}
	}

	return SelectSplit(3, tier, goal)
}
