package generator

import (
	"context"
	"strings"

	"alcyxob/fitplan/internal/domain"
)

// Catalog is the read contract the generator needs from the exercise store.
// Implementations must be safe for concurrent read-only use.
type Catalog interface {
	// FindExercises returns every exercise matching the query, muscles and per-tier
	// defaults already joined.
	FindExercises(ctx context.Context, q domain.CatalogQuery) ([]domain.Exercise, error)
	// FindContraindications returns the rules and modifications in any of the categories.
	FindContraindications(ctx context.Context, categories []string) ([]domain.ContraindicationRule, []domain.Modification, error)
}

// StaticCatalog is an in-memory Catalog over fixed slices.
type StaticCatalog struct {
	Exercises     []domain.Exercise
	Rules         []domain.ContraindicationRule
	Modifications []domain.Modification
}

var _ Catalog = (*StaticCatalog)(nil)

func (c *StaticCatalog) FindExercises(_ context.Context, q domain.CatalogQuery) ([]domain.Exercise, error) {
	var out []domain.Exercise
	for i := range c.Exercises {
		if MatchesQuery(q, &c.Exercises[i]) {
			out = append(out, c.Exercises[i])
		}
	}
	return out, nil
}

func (c *StaticCatalog) FindContraindications(_ context.Context, categories []string) ([]domain.ContraindicationRule, []domain.Modification, error) {
	want := map[string]bool{}
	for _, cat := range categories {
		want[strings.ToLower(cat)] = true
	}
	var rules []domain.ContraindicationRule
	for _, r := range c.Rules {
		if want[strings.ToLower(r.Category)] {
			rules = append(rules, r)
		}
	}
	var mods []domain.Modification
	for _, m := range c.Modifications {
		if want[strings.ToLower(m.Category)] {
			mods = append(mods, m)
		}
	}
	return rules, mods, nil
}

// MatchesQuery applies a catalog query to one exercise in memory.
func MatchesQuery(q domain.CatalogQuery, e *domain.Exercise) bool {
	if len(q.Levels) > 0 && !containsTier(q.Levels, e.Level) {
		return false
	}
	if len(q.Equipment) > 0 && !containsFold(q.Equipment, e.Equipment) {
		return false
	}
	if len(q.Categories) > 0 && !containsFold(q.Categories, e.Category) {
		return false
	}
	for _, id := range q.ExcludedIDs {
		if id == e.ID {
			return false
		}
	}
	return true
}

func containsTier(ts []domain.Tier, t domain.Tier) bool {
	for _, v := range ts {
		if v == t {
			return true
		}
	}
	return false
}

func containsFold(vs []string, s string) bool {
	for _, v := range vs {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
