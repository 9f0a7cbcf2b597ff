package generator

import (
	"fmt"
	"strings"

	"alcyxob/fitplan/internal/domain"
)

// ScheduleDecision is the negotiated training frequency plus at most one advisory.
type ScheduleDecision struct {
	Days        int
	IdealDays   int
	MaxSafeDays int
	Preference  []int
	Flag        string // empty when no advisory applies
	Message     string
}

// NegotiateSchedule resolves training days per week from the user's preference code, the
// goal's ideal frequency and the tier's safety cap. Advisories are evaluated in priority
// order: safety override, suboptimal frequency, active recovery.
func NegotiateSchedule(t Tables, prefCode int, goal domain.FitnessGoal, tier domain.Tier, age int) ScheduleDecision {
	prefRange, ok := t.PreferenceRanges[prefCode]
	if !ok || len(prefRange) == 0 {
		prefRange = t.PreferenceRanges[t.DefaultPreference]
	}

	ideal, ok := t.GoalIdealDays[goal]
	if !ok {
		ideal = t.DefaultIdealDays
	}

	maxSafe := t.TierMaxDays[tier]
	if age > t.SeniorAge && maxSafe > t.SeniorMaxDays {
		maxSafe = t.SeniorMaxDays
	}

	d := ScheduleDecision{
		Days:        closestInRange(prefRange, ideal),
		IdealDays:   ideal,
		MaxSafeDays: maxSafe,
		Preference:  prefRange,
	}

	switch {
	case d.Days > maxSafe:
		d.Flag = domain.FlagSafetyOverride
		d.Message = fmt.Sprintf(
			"We've adjusted your plan to %d days per week for optimal recovery as a %s level athlete. "+
				"Training %d days without proper rest can lead to overtraining and injury. "+
				"Your body needs time to repair and grow stronger.",
			maxSafe, tier, d.Days)
		d.Days = maxSafe
	case d.Days < ideal && d.Days == maxOf(prefRange):
		d.Flag = domain.FlagSuboptimalFrequency
		d.Message = fmt.Sprintf(
			"For optimal %s results, we recommend %d days per week. You're currently training %d days. "+
				"Consider increasing your workout frequency in your profile settings for better results.",
			goalDisplayName(goal), ideal, d.Days)
	case d.Days == 7:
		d.Flag = domain.FlagActiveRecoveryNeeded
		d.Message = "Your plan includes daily training. We've included active recovery days with light " +
			"work (yoga, walking, stretching) to prevent burnout while keeping you active."
	}
	return d
}

// closestInRange returns ideal if the range contains it, otherwise the member closest to
// ideal, preferring the lower value when two members are equally close.
func closestInRange(r []int, ideal int) int {
	best := r[0]
	for _, v := range r {
		if v == ideal {
			return v
		}
		dv, db := abs(v-ideal), abs(best-ideal)
		if dv < db || (dv == db && v < best) {
			best = v
		}
	}
	return best
}

func maxOf(r []int) int {
	m := r[0]
	for _, v := range r[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// goalDisplayName turns "muscle-building" into "Muscle Building".
func goalDisplayName(goal domain.FitnessGoal) string {
	words := strings.FieldsFunc(string(goal), func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
