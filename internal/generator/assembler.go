package generator

import (
	"sort"

	"alcyxob/fitplan/internal/domain"
)

const (
	restDayFocus       = "Rest Day"
	restDayDescription = "Complete rest. Your muscles grow during recovery, not during workouts."
)

// BuildTrainingDay programs and estimates the selected exercises of one training slot.
// Assignment values are rounded individually; day totals round the unrounded sums.
func BuildTrainingDay(t Tables, slot DaySlot, selected []Candidate, tier domain.Tier, p Prescription, warnings []string) domain.DayPlan {
	day := domain.DayPlan{
		Day:           slot.Day,
		Focus:         slot.Focus,
		Type:          domain.DayTraining,
		TargetMuscles: slot.TargetMuscles,
		Exercises:     make([]domain.ExerciseAssignment, 0, len(selected)),
		Warnings:      warnings,
	}

	var minutes, calories float64
	for i, c := range selected {
		est := EstimateExercise(t, c.Exercise, tier, p)
		minutes += est.Minutes
		calories += est.Calories

		day.Exercises = append(day.Exercises, domain.ExerciseAssignment{
			Order:             i + 1,
			ID:                c.ID,
			Name:              c.Name,
			Sets:              p.Sets,
			Reps:              p.Reps,
			RepsRange:         p.RepsRange,
			RestSeconds:       p.RestSeconds,
			EstimatedTimeMin:  round1(est.Minutes),
			EstimatedCalories: round1(est.Calories),
			Instructions:      nonNil(c.Instructions),
			PrimaryMuscles:    nonNil(c.PrimaryMuscles),
			Equipment:         c.Equipment,
			Images:            nonNil(c.Images),
			Modifications:     c.Modifications,
		})
	}
	day.DurationMinutes = round1(minutes)
	day.EstimatedCalories = round1(calories)
	return day
}

// AssemblePlan merges the training days with recovery days from the split and rest days
// for every uncovered weekday, orders them Monday to Sunday and totals training calories.
// The first day seen for a weekday wins.
func AssemblePlan(t Tables, header domain.WeeklyPlan, slots []DaySlot, training []domain.DayPlan) *domain.WeeklyPlan {
	plan := header
	plan.Days = make([]domain.DayPlan, 0, len(Weekdays))

	covered := map[string]bool{}
	add := func(d domain.DayPlan) bool {
		if covered[d.Day] || weekdayIndex(d.Day) < 0 {
			return false
		}
		covered[d.Day] = true
		plan.Days = append(plan.Days, d)
		return true
	}

	var total float64
	for _, d := range training {
		if add(d) {
			total += d.EstimatedCalories
		}
	}
	for _, s := range slots {
		if s.Recovery {
			add(domain.DayPlan{
				Day:               s.Day,
				Focus:             s.Focus,
				Type:              domain.DayRecovery,
				DurationMinutes:   t.RecoveryMinutes,
				EstimatedCalories: t.RecoveryCalories,
				Description:       s.Description,
			})
		}
	}
	for _, wd := range Weekdays {
		add(domain.DayPlan{
			Day:         wd,
			Focus:       restDayFocus,
			Type:        domain.DayRest,
			Description: restDayDescription,
		})
	}

	sort.SliceStable(plan.Days, func(i, j int) bool {
		return weekdayIndex(plan.Days[i].Day) < weekdayIndex(plan.Days[j].Day)
	})
	plan.TotalWeeklyCalories = round1(total)
	return &plan
}

func weekdayIndex(day string) int {
	for i, wd := range Weekdays {
		if wd == day {
			return i
		}
	}
	return -1
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
