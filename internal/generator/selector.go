package generator

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"unicode"

	"alcyxob/fitplan/internal/domain"
)

// UsedSet is the set of exercise ids already programmed earlier in the week. It is a
// value: With returns a new set and never mutates the receiver.
type UsedSet struct {
	ids map[string]struct{}
}

// Has reports whether id was already programmed.
func (u UsedSet) Has(id string) bool {
	_, ok := u.ids[id]
	return ok
}

// Len is the number of distinct ids in the set.
func (u UsedSet) Len() int { return len(u.ids) }

// With returns a copy of the set extended by ids.
func (u UsedSet) With(ids ...string) UsedSet {
	next := make(map[string]struct{}, len(u.ids)+len(ids))
	for id := range u.ids {
		next[id] = struct{}{}
	}
	for _, id := range ids {
		next[id] = struct{}{}
	}
	return UsedSet{ids: next}
}

// --- Scoring ---

const (
	scoreBase             = 100.0
	scoreSafe             = 50.0
	scoreModified         = 25.0
	scorePerMuscle        = 25.0
	scoreCompound         = 30.0
	scoreCompoundForGoal  = 20.0
	scoreWeightLossCardio = 20.0
	scoreStrengthCategory = 15.0
	scoreEnduranceCardio  = 15.0
	scoreBodyOnly         = 8.0
	scoreRepeatPenalty    = 100.0
	scoreJitter           = 3.0
)

// ScoreExercise rates a candidate for a day's target muscles. rng supplies the tie-breaking
// jitter in [-3, 3]; a nil rng scores without jitter.
func ScoreExercise(c Candidate, targets []string, goal domain.FitnessGoal, used UsedSet, rng *rand.Rand) float64 {
	score := scoreBase

	switch c.Status {
	case StatusSafe:
		score += scoreSafe
	case StatusModified:
		score += scoreModified
	}

	score += scorePerMuscle * float64(muscleMatches(c.PrimaryMuscles, targets))

	heavyGoal := goal == domain.GoalMuscleBuilding || goal == domain.GoalStrength
	if c.Mechanic == domain.MechanicCompound {
		score += scoreCompound
		if heavyGoal {
			score += scoreCompoundForGoal
		}
	}

	cardioLike := c.Category == domain.CategoryCardio || c.Category == domain.CategoryPlyometrics
	switch {
	case goal == domain.GoalWeightLoss && cardioLike:
		score += scoreWeightLossCardio
	case heavyGoal && c.Category == domain.CategoryStrength:
		score += scoreStrengthCategory
	case goal == domain.GoalEndurance && cardioLike:
		score += scoreEnduranceCardio
	}

	if c.Equipment == domain.EquipmentBodyOnly || c.Equipment == "" {
		score += scoreBodyOnly
	}

	if used.Has(c.ID) {
		score -= scoreRepeatPenalty
	}

	if rng != nil {
		score += (rng.Float64()*2 - 1) * scoreJitter
	}
	return score
}

// muscleMatches counts the distinct primary muscles that are also targets.
func muscleMatches(primary, targets []string) int {
	n := 0
	seen := map[string]bool{}
	for _, m := range primary {
		if seen[m] {
			continue
		}
		seen[m] = true
		if containsString(targets, m) {
			n++
		}
	}
	return n
}

// --- Day selection ---

type scored struct {
	Candidate
	score float64
}

// SelectDay picks up to target exercises for a training slot. It returns the chosen
// candidates in programming order (compounds first) and one advisory warning per target
// muscle that no eligible exercise trains. Each candidate is scored once per call.
func SelectDay(pool []Candidate, slot DaySlot, goal domain.FitnessGoal, target int, used UsedSet, t Tables, rng *rand.Rand) ([]Candidate, []string) {
	if slot.Recovery {
		return nil, nil
	}

	warnings := missingMuscleWarnings(pool, slot.TargetMuscles)

	var relevant []scored
	for _, c := range pool {
		if muscleMatches(c.PrimaryMuscles, slot.TargetMuscles) > 0 {
			relevant = append(relevant, scored{
				Candidate: c,
				score:     ScoreExercise(c, slot.TargetMuscles, goal, used, rng),
			})
		}
	}
	if len(relevant) == 0 || target <= 0 {
		return nil, warnings
	}

	byScore := func(s []scored) {
		sort.SliceStable(s, func(i, j int) bool { return s[i].score > s[j].score })
	}

	var compound, isolation []scored
	for _, s := range relevant {
		switch s.Mechanic {
		case domain.MechanicCompound:
			compound = append(compound, s)
		case domain.MechanicIsolation:
			isolation = append(isolation, s)
		}
	}
	byScore(compound)
	byScore(isolation)

	ratio, ok := t.CompoundRatio[goal]
	if !ok {
		ratio = t.CompoundRatio[domain.GoalGeneralFitness]
	}
	numCompound := max(1, int(math.Round(float64(target)*ratio)))
	numIsolation := max(0, target-numCompound)

	picked := map[string]bool{}
	var selected []Candidate
	take := func(from []scored, n int) {
		for _, s := range from {
			if n == 0 || len(selected) == target {
				return
			}
			if picked[s.ID] {
				continue
			}
			picked[s.ID] = true
			selected = append(selected, s.Candidate)
			n--
		}
	}
	take(compound, numCompound)
	take(isolation, numIsolation)

	if len(selected) < target {
		byScore(relevant)
		take(relevant, target-len(selected))
	}
	return selected, warnings
}

// missingMuscleWarnings lists, in target order, muscles no pool exercise trains.
func missingMuscleWarnings(pool []Candidate, targets []string) []string {
	available := map[string]bool{}
	for _, c := range pool {
		for _, m := range c.PrimaryMuscles {
			available[m] = true
		}
	}
	var warnings []string
	seen := map[string]bool{}
	for _, m := range targets {
		if available[m] || seen[m] {
			continue
		}
		seen[m] = true
		warnings = append(warnings, MissingMuscleWarning(m))
	}
	return warnings
}

// MissingMuscleWarning is the advisory attached to a day for an untrainable muscle.
func MissingMuscleWarning(muscle string) string {
	return fmt.Sprintf("%s: To exercise this muscle group, consult your doctor or physical therapist for appropriate exercises that fit your needs.", titleCase(muscle))
}

func titleCase(s string) string {
	prev := ' '
	return strings.Map(func(r rune) rune {
		out := r
		if unicode.IsSpace(prev) {
			out = unicode.ToUpper(r)
		}
		prev = r
		return out
	}, s)
}

func containsString(vs []string, s string) bool {
	for _, v := range vs {
		if v == s {
			return true
		}
	}
	return false
}
