package generator

import (
	"context"
	"errors"

	"alcyxob/fitplan/internal/domain"
)

func exercise(id string, level domain.Tier, equipment, category, mechanic string, muscles ...string) domain.Exercise {
	return domain.Exercise{
		ID:             id,
		Name:           id,
		Level:          level,
		Equipment:      equipment,
		Category:       category,
		Mechanic:       mechanic,
		Instructions:   []string{"do " + id},
		PrimaryMuscles: muscles,
	}
}

const (
	beg = domain.TierBeginner
	mid = domain.TierIntermediate
	adv = domain.TierAdvanced

	body = domain.EquipmentBodyOnly
	str  = domain.CategoryStrength
	comp = domain.MechanicCompound
	iso  = domain.MechanicIsolation
)

func fixtureExercises() []domain.Exercise {
	return []domain.Exercise{
		exercise("pushup", beg, body, str, comp, "chest", "triceps"),
		exercise("incline-pushup", beg, body, str, comp, "chest"),
		exercise("decline-pushup", beg, body, str, comp, "chest", "shoulders"),
		exercise("db-fly", beg, "dumbbell", str, iso, "chest"),
		exercise("chest-squeeze", beg, body, str, iso, "chest"),

		exercise("inverted-row", beg, body, str, comp, "back", "biceps"),
		exercise("towel-row", beg, body, str, comp, "back"),
		exercise("db-row", beg, "dumbbell", str, comp, "back", "lats"),
		exercise("pullup", mid, body, str, comp, "lats", "biceps"),
		exercise("reverse-fly", beg, body, str, iso, "back"),
		exercise("superman", beg, body, str, iso, "lower back"),

		exercise("squat", beg, body, str, comp, "quadriceps", "glutes"),
		exercise("lunge", beg, body, str, comp, "quadriceps", "hamstrings"),
		exercise("step-up", beg, body, str, comp, "quadriceps"),
		exercise("wall-sit", beg, body, str, iso, "quadriceps"),
		exercise("leg-extension", beg, body, str, iso, "quadriceps"),
		exercise("pistol-squat", adv, body, str, comp, "quadriceps"),

		exercise("pike-pushup", beg, body, str, comp, "shoulders", "triceps"),
		exercise("arm-circle", beg, body, str, iso, "shoulders"),
		exercise("db-curl", beg, "dumbbell", str, iso, "biceps"),
		exercise("towel-curl", beg, body, str, iso, "biceps"),
		exercise("bench-dip", beg, body, str, comp, "triceps", "chest"),
		exercise("kickback", beg, body, str, iso, "triceps"),
		exercise("crunch", beg, body, str, iso, "abdominals"),
		exercise("plank", beg, body, str, iso, "abdominals"),
		exercise("glute-bridge", beg, body, str, iso, "hamstrings", "glutes"),
		exercise("calf-raise", beg, body, str, iso, "calves"),

		exercise("burpee", beg, body, domain.CategoryPlyometrics, comp, "quadriceps", "chest"),
		exercise("jog", beg, body, domain.CategoryCardio, "", "quadriceps"),
		exercise("foam-roll", beg, body, "stretching", iso, "quadriceps"),
	}
}

func fixtureCatalog() *StaticCatalog {
	return &StaticCatalog{
		Exercises: fixtureExercises(),
		Rules: []domain.ContraindicationRule{
			{ExerciseID: "pushup", Category: "shoulder"},
			{ExerciseID: "pike-pushup", Category: "shoulder"},
			{ExerciseID: "squat", Category: "knee"},
		},
		Modifications: []domain.Modification{
			{ExerciseID: "pushup", Category: "shoulder", Text: "Perform on knees with a narrow hand position."},
		},
	}
}

type failingCatalog struct{ err error }

func (f failingCatalog) FindExercises(context.Context, domain.CatalogQuery) ([]domain.Exercise, error) {
	return nil, f.err
}

func (f failingCatalog) FindContraindications(context.Context, []string) ([]domain.ContraindicationRule, []domain.Modification, error) {
	return nil, nil, f.err
}

var errCatalogDown = errors.New("catalog down")

func candidates(exs ...domain.Exercise) []Candidate {
	out := make([]Candidate, len(exs))
	for i, e := range exs {
		out[i] = Candidate{Exercise: e, Status: StatusSafe}
	}
	return out
}

func planIDs(p *domain.WeeklyPlan) map[string]bool {
	ids := map[string]bool{}
	for _, d := range p.Days {
		for _, a := range d.Exercises {
			ids[a.ID] = true
		}
	}
	return ids
}
