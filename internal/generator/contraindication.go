package generator

import (
	"sort"
	"strings"

	"alcyxob/fitplan/internal/domain"
)

// ContraindicationStatus marks how an eligible exercise relates to the user's limitations.
type ContraindicationStatus string

const (
	StatusSafe     ContraindicationStatus = "safe"
	StatusModified ContraindicationStatus = "modified"
)

// Contraindications partitions the catalog for one limitation set. Exercises absent from
// both maps are unrestricted.
type Contraindications struct {
	Excluded map[string]struct{}
	Modified map[string][]domain.ModificationNote
}

// IsExcluded reports whether the exercise must never be programmed.
func (c Contraindications) IsExcluded(id string) bool {
	_, ok := c.Excluded[id]
	return ok
}

// ExcludedIDs returns the excluded set in a stable order.
func (c Contraindications) ExcludedIDs() []string {
	ids := make([]string, 0, len(c.Excluded))
	for id := range c.Excluded {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ResolveContraindications applies the catalog's rules to a limitation set. Every exercise
// with a rule in one of the categories is contraindicated; a contraindicated exercise that
// also has a modification in one of the categories is "modified" and carries every such
// modification, otherwise it is excluded. An empty set, or one containing "none", restricts
// nothing.
func ResolveContraindications(limitations []string, rules []domain.ContraindicationRule, mods []domain.Modification) Contraindications {
	out := Contraindications{
		Excluded: map[string]struct{}{},
		Modified: map[string][]domain.ModificationNote{},
	}

	categories := limitationSet(limitations)
	if len(categories) == 0 {
		return out
	}

	contraindicated := map[string]bool{}
	var order []string
	for _, r := range rules {
		if r.ExerciseID == "" || !categories[strings.ToLower(r.Category)] {
			continue
		}
		if !contraindicated[r.ExerciseID] {
			contraindicated[r.ExerciseID] = true
			order = append(order, r.ExerciseID)
		}
	}

	for _, m := range mods {
		cat := strings.ToLower(m.Category)
		if !contraindicated[m.ExerciseID] || !categories[cat] {
			continue
		}
		out.Modified[m.ExerciseID] = append(out.Modified[m.ExerciseID], domain.ModificationNote{
			Category: m.Category,
			Text:     m.Text,
		})
	}

	for _, id := range order {
		if _, ok := out.Modified[id]; !ok {
			out.Excluded[id] = struct{}{}
		}
	}
	return out
}

// limitationSet returns the lowercased categories, or nil when nothing is restricted.
func limitationSet(limitations []string) map[string]bool {
	set := map[string]bool{}
	for _, l := range limitations {
		l = strings.ToLower(strings.TrimSpace(l))
		if l == domain.LimitationNone {
			return nil
		}
		if l != "" {
			set[l] = true
		}
	}
	return set
}
