package generator

import (
	"context"
	"fmt"

	"alcyxob/fitplan/internal/domain"
)

// EligibleCategories are the only catalog categories the planner programs.
var EligibleCategories = []string{domain.CategoryStrength, domain.CategoryCardio, domain.CategoryPlyometrics}

// Candidate is an eligible exercise annotated with its contraindication status.
type Candidate struct {
	domain.Exercise
	Status        ContraindicationStatus
	Modifications []domain.ModificationNote
}

// CatalogEquipment maps questionnaire equipment names to catalog vocabulary. Unknown names
// pass through unchanged and "body only" is always included.
func CatalogEquipment(t Tables, available []string) []string {
	out := []string{}
	seen := map[string]bool{}
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			out = append(out, tag)
		}
	}
	for _, name := range available {
		if alias, ok := t.EquipmentAliases[name]; ok {
			add(alias)
			continue
		}
		add(name)
	}
	add(domain.EquipmentBodyOnly)
	return out
}

// EligibilityQuery builds the catalog query for a tier, equipment list and exclusions.
func EligibilityQuery(t Tables, tier domain.Tier, equipment []string, c Contraindications) domain.CatalogQuery {
	return domain.CatalogQuery{
		Levels:      allowedLevels(tier),
		Equipment:   CatalogEquipment(t, equipment),
		Categories:  EligibleCategories,
		ExcludedIDs: c.ExcludedIDs(),
	}
}

// FilterCatalog fetches every exercise the user may perform and annotates it. Excluded
// exercises are dropped even if the store ignores the exclusion list.
func FilterCatalog(ctx context.Context, catalog Catalog, t Tables, tier domain.Tier, equipment []string, c Contraindications) ([]Candidate, error) {
	exercises, err := catalog.FindExercises(ctx, EligibilityQuery(t, tier, equipment, c))
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}

	out := make([]Candidate, 0, len(exercises))
	for _, ex := range exercises {
		if c.IsExcluded(ex.ID) {
			continue
		}
		cand := Candidate{Exercise: ex, Status: StatusSafe}
		if mods, ok := c.Modified[ex.ID]; ok {
			cand.Status = StatusModified
			cand.Modifications = mods
		}
		out = append(out, cand)
	}
	if len(out) == 0 {
		return nil, ErrNoEligibleExercises
	}
	return out, nil
}
