package generator

import (
	"fmt"
	"strings"

	"alcyxob/fitplan/internal/domain"
)

// Profile is the canonical form of a user profile, produced by NormalizeProfile.
// All enum fields hold known values and the tag sets used for generation are lowercased
// and deduplicated.
type Profile struct {
	UserID       string
	Age          int
	Gender       domain.Gender
	WeightLbs    float64
	Goal         domain.FitnessGoal
	Activity     domain.ActivityLevel
	SchedulePref int
	Equipment    []string
	Limitations  []string

	// ReportedLimitations is the user's list as entered, echoed on the plan.
	ReportedLimitations []string
}

var knownGoals = map[domain.FitnessGoal]bool{
	domain.GoalWeightLoss:     true,
	domain.GoalStrength:       true,
	domain.GoalMuscleBuilding: true,
	domain.GoalEndurance:      true,
	domain.GoalGeneralFitness: true,
	domain.GoalMaintenance:    true,
}

var knownActivity = map[domain.ActivityLevel]bool{
	domain.ActivitySedentary:        true,
	domain.ActivityLightlyActive:    true,
	domain.ActivityModeratelyActive: true,
	domain.ActivityVeryActive:       true,
	domain.ActivityExtraActive:      true,
}

// NormalizeProfile validates the fields generation cannot default and resolves every
// other field to a canonical value. Unknown goals become general fitness and unknown
// activity levels become sedentary. A limitation set containing "none" is emptied.
func NormalizeProfile(userID string, raw domain.UserProfile) (Profile, error) {
	if raw.Age <= 0 {
		return Profile{}, fmt.Errorf("%w: age must be positive, got %d", ErrInvalidProfile, raw.Age)
	}
	if raw.WeightLbs <= 0 {
		return Profile{}, fmt.Errorf("%w: weight must be positive, got %.1f", ErrInvalidProfile, raw.WeightLbs)
	}

	goal := domain.FitnessGoal(strings.ToLower(strings.TrimSpace(raw.FitnessGoal)))
	if !knownGoals[goal] {
		goal = domain.GoalGeneralFitness
	}
	activity := domain.ActivityLevel(strings.ToLower(strings.TrimSpace(raw.ActivityLevel)))
	if !knownActivity[activity] {
		activity = domain.ActivitySedentary
	}

	gender := domain.Gender(strings.ToLower(strings.TrimSpace(string(raw.Gender))))
	switch gender {
	case domain.GenderMale, domain.GenderFemale:
	default:
		gender = domain.GenderOther
	}

	limitations := normalizeTags(raw.PhysicalLimitations)
	for _, l := range limitations {
		if l == domain.LimitationNone {
			limitations = []string{}
			break
		}
	}

	return Profile{
		UserID:       userID,
		Age:          raw.Age,
		Gender:       gender,
		WeightLbs:    raw.WeightLbs,
		Goal:         goal,
		Activity:     activity,
		SchedulePref: raw.WorkoutSchedule,
		Equipment:    normalizeTags(raw.AvailableEquipment),
		Limitations:  limitations,

		ReportedLimitations: append(make([]string, 0, len(raw.PhysicalLimitations)), raw.PhysicalLimitations...),
	}, nil
}

// normalizeTags lowercases, trims and deduplicates tags, keeping first-seen order.
// The result is never nil.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
