package generator

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"alcyxob/fitplan/internal/domain"
)

func TestCatalogEquipment(t *testing.T) {
	tables := DefaultTables()
	tests := []struct {
		name      string
		available []string
		want      []string
	}{
		{"empty always admits body only", nil, []string{"body only"}},
		{"aliases", []string{"dumbbells", "resistance_bands", "pull_up_bar"}, []string{"dumbbell", "bands", "cable", "body only"}},
		{"unknown passes through", []string{"rowing machine"}, []string{"rowing machine", "body only"}},
		{"duplicates collapse", []string{"bodyweight", "yoga_mat"}, []string{"body only"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CatalogEquipment(tables, tt.available); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CatalogEquipment(%v) = %v, want %v", tt.available, got, tt.want)
			}
		})
	}
}

func TestFilterCatalog_BodyOnlyWithoutEquipment(t *testing.T) {
	pool, err := FilterCatalog(context.Background(), fixtureCatalog(), DefaultTables(), beg, nil, ResolveContraindications(nil, nil, nil))
	if err != nil {
		t.Fatalf("FilterCatalog: %v", err)
	}
	for _, c := range pool {
		if c.Equipment != domain.EquipmentBodyOnly {
			t.Errorf("%s uses %q without any equipment available", c.ID, c.Equipment)
		}
		if c.Level != beg {
			t.Errorf("%s is %s, beginner pool must only hold beginner exercises", c.ID, c.Level)
		}
		if c.Category == "stretching" {
			t.Errorf("%s is not a programmable category", c.ID)
		}
	}
	if len(pool) == 0 {
		t.Fatal("body only exercises must be admitted")
	}
}

func TestFilterCatalog_AnnotatesAndExcludes(t *testing.T) {
	c := fixtureCatalog()
	ci := ResolveContraindications([]string{"shoulder"}, c.Rules, c.Modifications)
	pool, err := FilterCatalog(context.Background(), c, DefaultTables(), adv, []string{"dumbbells"}, ci)
	if err != nil {
		t.Fatalf("FilterCatalog: %v", err)
	}
	byID := map[string]Candidate{}
	for _, cand := range pool {
		byID[cand.ID] = cand
	}
	if _, ok := byID["pike-pushup"]; ok {
		t.Error("excluded exercise in pool")
	}
	if got := byID["pushup"]; got.Status != StatusModified || len(got.Modifications) != 1 {
		t.Errorf("pushup = %+v, want modified with one note", got)
	}
	if got := byID["db-row"]; got.Status != StatusSafe {
		t.Errorf("db-row status = %q, want safe", got.Status)
	}
	if _, ok := byID["pistol-squat"]; !ok {
		t.Error("advanced users must see advanced exercises")
	}
}

type ignoringCatalog struct{ StaticCatalog }

func (c *ignoringCatalog) FindExercises(ctx context.Context, q domain.CatalogQuery) ([]domain.Exercise, error) {
	q.ExcludedIDs = nil
	return c.StaticCatalog.FindExercises(ctx, q)
}

func TestFilterCatalog_DropsExcludedEvenIfStoreDoesNot(t *testing.T) {
	c := &ignoringCatalog{StaticCatalog: *fixtureCatalog()}
	ci := ResolveContraindications([]string{"shoulder"}, c.Rules, c.Modifications)
	pool, err := FilterCatalog(context.Background(), c, DefaultTables(), beg, nil, ci)
	if err != nil {
		t.Fatalf("FilterCatalog: %v", err)
	}
	for _, cand := range pool {
		if cand.ID == "pike-pushup" {
			t.Fatal("excluded exercise leaked from store")
		}
	}
}

func TestFilterCatalog_Errors(t *testing.T) {
	ci := ResolveContraindications(nil, nil, nil)

	_, err := FilterCatalog(context.Background(), &StaticCatalog{}, DefaultTables(), beg, nil, ci)
	if !errors.Is(err, ErrNoEligibleExercises) {
		t.Errorf("empty catalog: err = %v, want ErrNoEligibleExercises", err)
	}

	_, err = FilterCatalog(context.Background(), failingCatalog{err: errCatalogDown}, DefaultTables(), beg, nil, ci)
	if !errors.Is(err, errCatalogDown) {
		t.Errorf("failing catalog: err = %v, want wrapped errCatalogDown", err)
	}
}
