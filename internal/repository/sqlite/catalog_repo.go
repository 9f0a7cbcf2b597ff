package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"alcyxob/fitplan/internal/domain"
	"alcyxob/fitplan/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogEntry is one exercise with its safety metadata, as written by Upsert.
type CatalogEntry struct {
	Exercise          domain.Exercise
	Contraindications []string
	Modifications     []domain.ModificationNote
}

// CatalogStore reads and seeds the exercise catalog. Rows are normalized into domain
// types here: muscle lists, instructions and images become string slices and the "expert"
// level reads as advanced.
type CatalogStore struct {
	db *gorm.DB
}

var _ repository.ExerciseCatalogRepository = (*CatalogStore)(nil)

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// FindExercises returns the exercises matching every non-empty constraint of q, ordered by id.
// Equipment and category match case-insensitively.
func (s *CatalogStore) FindExercises(ctx context.Context, q domain.CatalogQuery) ([]domain.Exercise, error) {
	tx := s.db.WithContext(ctx).Model(&ExerciseRecord{})
	if len(q.Levels) > 0 {
		tx = tx.Where("LOWER(level) IN ?", storeLevels(q.Levels))
	}
	if equipment := uniqueLower(q.Equipment); len(equipment) > 0 {
		tx = tx.Where("LOWER(equipment) IN ?", equipment)
	}
	if categories := uniqueLower(q.Categories); len(categories) > 0 {
		tx = tx.Where("LOWER(category) IN ?", categories)
	}
	if len(q.ExcludedIDs) > 0 {
		tx = tx.Where("id NOT IN ?", q.ExcludedIDs)
	}

	var recs []ExerciseRecord
	if err := tx.Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}
	return s.hydrate(ctx, recs)
}

// GetByID returns one exercise or repository.ErrNotFound.
func (s *CatalogStore) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	var rec ExerciseRecord
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	out, err := s.hydrate(ctx, []ExerciseRecord{rec})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// FindContraindications returns the rules and modifications filed under any of the
// categories, compared case-insensitively.
func (s *CatalogStore) FindContraindications(ctx context.Context, categories []string) ([]domain.ContraindicationRule, []domain.Modification, error) {
	if len(categories) == 0 {
		return nil, nil, nil
	}
	cats := make([]string, len(categories))
	for i, c := range categories {
		cats[i] = strings.ToLower(strings.TrimSpace(c))
	}

	var ruleRecs []ContraindicationRecord
	if err := s.db.WithContext(ctx).
		Where("LOWER(category) IN ?", cats).
		Order("exercise_id, category").
		Find(&ruleRecs).Error; err != nil {
		return nil, nil, fmt.Errorf("find contraindications: %w", err)
	}
	var modRecs []ModificationRecord
	if err := s.db.WithContext(ctx).
		Where("LOWER(category) IN ?", cats).
		Order("id").
		Find(&modRecs).Error; err != nil {
		return nil, nil, fmt.Errorf("find modifications: %w", err)
	}

	rules := make([]domain.ContraindicationRule, len(ruleRecs))
	for i, r := range ruleRecs {
		rules[i] = domain.ContraindicationRule{ExerciseID: r.ExerciseID, Category: r.Category}
	}
	mods := make([]domain.Modification, len(modRecs))
	for i, m := range modRecs {
		mods[i] = domain.Modification{ExerciseID: m.ExerciseID, Category: m.Category, Text: m.Text}
	}
	return rules, mods, nil
}

type muscleRow struct {
	ExerciseID string
	Role       string
	Name       string
}

func (s *CatalogStore) hydrate(ctx context.Context, recs []ExerciseRecord) ([]domain.Exercise, error) {
	if len(recs) == 0 {
		return []domain.Exercise{}, nil
	}
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}

	var rows []muscleRow
	if err := s.db.WithContext(ctx).
		Table("exercise_muscles AS em").
		Select("em.exercise_id AS exercise_id, em.role AS role, m.muscle_name AS name").
		Joins("JOIN muscles AS m ON m.muscle_id = em.muscle_id").
		Where("em.exercise_id IN ?", ids).
		Order("em.exercise_id, m.muscle_name").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("load muscles: %w", err)
	}
	primary := map[string][]string{}
	secondary := map[string][]string{}
	for _, row := range rows {
		if row.Role == RolePrimary {
			primary[row.ExerciseID] = append(primary[row.ExerciseID], row.Name)
		} else {
			secondary[row.ExerciseID] = append(secondary[row.ExerciseID], row.Name)
		}
	}

	var progs []ProgrammingRecord
	if err := s.db.WithContext(ctx).Where("exercise_id IN ?", ids).Find(&progs).Error; err != nil {
		return nil, fmt.Errorf("load programming: %w", err)
	}
	progByID := make(map[string]ProgrammingRecord, len(progs))
	for _, p := range progs {
		progByID[p.ExerciseID] = p
	}

	out := make([]domain.Exercise, len(recs))
	for i, r := range recs {
		ex := domain.Exercise{
			ID:               r.ID,
			Name:             r.Name,
			Level:            normalizeLevel(r.Level),
			Equipment:        r.Equipment,
			Category:         r.Category,
			Mechanic:         r.Mechanic,
			Force:            r.Force,
			Instructions:     decodeList(r.Instructions),
			Images:           decodeList(r.Images),
			PrimaryMuscles:   orEmpty(primary[r.ID]),
			SecondaryMuscles: orEmpty(secondary[r.ID]),
		}
		if p, ok := progByID[r.ID]; ok {
			ex.Reps = domain.RepSchemes{Strength: p.RepsStrength, Hypertrophy: p.RepsHypertrophy, Endurance: p.RepsEndurance}
			ex.Defaults = map[domain.Tier]domain.TierDefaults{
				domain.TierBeginner:     {Sets: p.SetsBeginner, RestSeconds: p.RestBeginner, CaloriesPerMinute: p.CaloriesBeginner, TimeMinutes: p.TimeBeginner},
				domain.TierIntermediate: {Sets: p.SetsIntermediate, RestSeconds: p.RestIntermediate, CaloriesPerMinute: p.CaloriesIntermediate, TimeMinutes: p.TimeIntermediate},
				domain.TierAdvanced:     {Sets: p.SetsAdvanced, RestSeconds: p.RestAdvanced, CaloriesPerMinute: p.CaloriesAdvanced, TimeMinutes: p.TimeAdvanced},
			}
		}
		out[i] = ex
	}
	return out, nil
}

// --- Seeding ---

// Upsert writes the entries, replacing every row previously stored for their ids.
func (s *CatalogStore) Upsert(ctx context.Context, entries []CatalogEntry) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		muscleIDs := map[string]uint{}
		for _, e := range entries {
			if err := upsertEntry(tx, e, muscleIDs); err != nil {
				return fmt.Errorf("upsert %s: %w", e.Exercise.ID, err)
			}
		}
		return nil
	})
}

func upsertEntry(tx *gorm.DB, e CatalogEntry, muscleIDs map[string]uint) error {
	ex := e.Exercise
	if ex.ID == "" {
		return errors.New("exercise id is required")
	}

	rec := ExerciseRecord{
		ID:           ex.ID,
		Name:         ex.Name,
		Level:        string(ex.Level),
		Equipment:    ex.Equipment,
		Category:     ex.Category,
		Mechanic:     ex.Mechanic,
		Force:        ex.Force,
		Instructions: encodeList(ex.Instructions),
		Images:       encodeList(ex.Images),
	}
	if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
		return err
	}

	for _, model := range []interface{}{&ExerciseMuscle{}, &ProgrammingRecord{}, &ContraindicationRecord{}, &ModificationRecord{}} {
		if err := tx.Where("exercise_id = ?", ex.ID).Delete(model).Error; err != nil {
			return err
		}
	}

	links := []ExerciseMuscle{}
	seen := map[string]bool{}
	addLinks := func(role string, names []string) error {
		for _, name := range names {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" || seen[role+"/"+name] {
				continue
			}
			seen[role+"/"+name] = true
			id, err := muscleID(tx, name, muscleIDs)
			if err != nil {
				return err
			}
			links = append(links, ExerciseMuscle{ExerciseID: ex.ID, MuscleID: id, Role: role})
		}
		return nil
	}
	if err := addLinks(RolePrimary, ex.PrimaryMuscles); err != nil {
		return err
	}
	if err := addLinks(RoleSecondary, ex.SecondaryMuscles); err != nil {
		return err
	}
	if len(links) > 0 {
		if err := tx.Create(&links).Error; err != nil {
			return err
		}
	}

	if len(ex.Defaults) > 0 || ex.Reps != (domain.RepSchemes{}) {
		b, i, a := ex.Defaults[domain.TierBeginner], ex.Defaults[domain.TierIntermediate], ex.Defaults[domain.TierAdvanced]
		prog := ProgrammingRecord{
			ExerciseID:           ex.ID,
			SetsBeginner:         b.Sets,
			SetsIntermediate:     i.Sets,
			SetsAdvanced:         a.Sets,
			RepsStrength:         ex.Reps.Strength,
			RepsHypertrophy:      ex.Reps.Hypertrophy,
			RepsEndurance:        ex.Reps.Endurance,
			RestBeginner:         b.RestSeconds,
			RestIntermediate:     i.RestSeconds,
			RestAdvanced:         a.RestSeconds,
			CaloriesBeginner:     b.CaloriesPerMinute,
			CaloriesIntermediate: i.CaloriesPerMinute,
			CaloriesAdvanced:     a.CaloriesPerMinute,
			TimeBeginner:         b.TimeMinutes,
			TimeIntermediate:     i.TimeMinutes,
			TimeAdvanced:         a.TimeMinutes,
		}
		if err := tx.Create(&prog).Error; err != nil {
			return err
		}
	}

	for _, cat := range uniqueLower(e.Contraindications) {
		if err := tx.Create(&ContraindicationRecord{ExerciseID: ex.ID, Category: cat}).Error; err != nil {
			return err
		}
	}
	for _, m := range e.Modifications {
		rec := ModificationRecord{ExerciseID: ex.ID, Category: strings.ToLower(strings.TrimSpace(m.Category)), Text: m.Text}
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
	}
	return nil
}

func muscleID(tx *gorm.DB, name string, cache map[string]uint) (uint, error) {
	if id, ok := cache[name]; ok {
		return id, nil
	}
	m := MuscleRecord{Name: name}
	if err := tx.Where(MuscleRecord{Name: name}).FirstOrCreate(&m).Error; err != nil {
		return 0, err
	}
	cache[name] = m.ID
	return m.ID, nil
}

// --- Normalization helpers ---

func storeLevels(levels []domain.Tier) []string {
	out := make([]string, 0, len(levels)+1)
	for _, l := range levels {
		out = append(out, string(l))
		if l == domain.TierAdvanced {
			out = append(out, LevelExpert)
		}
	}
	return out
}

func normalizeLevel(level string) domain.Tier {
	switch l := strings.ToLower(strings.TrimSpace(level)); l {
	case LevelExpert:
		return domain.TierAdvanced
	default:
		return domain.Tier(l)
	}
}

func decodeList(raw datatypes.JSON) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

func encodeList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func uniqueLower(items []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, it := range items {
		it = strings.ToLower(strings.TrimSpace(it))
		if it == "" || seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	return out
}
