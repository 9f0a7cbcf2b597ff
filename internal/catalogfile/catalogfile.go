// Package catalogfile reads exercise catalog seed files.
//
// A seed file is YAML with a top-level "exercises" list. Each entry carries the catalog
// record (id, name, level, equipment, category, mechanic, force, muscles, instructions,
// images), optional per-tier programming defaults and rep schemes, and the limitation
// categories it is unsafe for together with any modification notes.
package catalogfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"alcyxob/fitplan/internal/domain"
	"alcyxob/fitplan/internal/repository/sqlite"

	"gopkg.in/yaml.v3"
)

type file struct {
	Exercises []exercise `yaml:"exercises"`
}

type tierDefaults struct {
	Sets              int     `yaml:"sets"`
	RestSeconds       int     `yaml:"rest_seconds"`
	CaloriesPerMinute float64 `yaml:"calories_per_minute"`
	TimeMinutes       float64 `yaml:"time_minutes"`
}

type modification struct {
	Category string `yaml:"category"`
	Text     string `yaml:"text"`
}

type exercise struct {
	ID                string                  `yaml:"id"`
	Name              string                  `yaml:"name"`
	Level             string                  `yaml:"level"`
	Equipment         string                  `yaml:"equipment"`
	Category          string                  `yaml:"category"`
	Mechanic          string                  `yaml:"mechanic"`
	Force             string                  `yaml:"force"`
	PrimaryMuscles    []string                `yaml:"primary_muscles"`
	SecondaryMuscles  []string                `yaml:"secondary_muscles"`
	Instructions      []string                `yaml:"instructions"`
	Images            []string                `yaml:"images"`
	Reps              map[string]string       `yaml:"reps"`
	Defaults          map[string]tierDefaults `yaml:"defaults"`
	Contraindications []string                `yaml:"contraindications"`
	Modifications     []modification          `yaml:"modifications"`
}

var validLevels = map[string]bool{"beginner": true, "intermediate": true, "advanced": true, sqlite.LevelExpert: true}

// ErrInvalidEntry marks a seed entry that cannot be stored.
var ErrInvalidEntry = errors.New("invalid catalog entry")

// Load decodes a seed file. Unknown keys and invalid entries are errors; nothing is
// returned unless the whole file is valid.
func Load(r io.Reader) ([]sqlite.CatalogEntry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]bool, len(f.Exercises))
	entries := make([]sqlite.CatalogEntry, 0, len(f.Exercises))
	for i, e := range f.Exercises {
		entry, err := e.toEntry()
		if err != nil {
			return nil, fmt.Errorf("exercise %d (%s): %w", i, e.ID, err)
		}
		if seen[entry.Exercise.ID] {
			return nil, fmt.Errorf("exercise %d: %w: duplicate id %q", i, ErrInvalidEntry, entry.Exercise.ID)
		}
		seen[entry.Exercise.ID] = true
		entries = append(entries, entry)
	}
	return entries, nil
}

// LoadFile is Load over the file at path.
func LoadFile(path string) ([]sqlite.CatalogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func (e exercise) toEntry() (sqlite.CatalogEntry, error) {
	id := strings.TrimSpace(e.ID)
	level := strings.ToLower(strings.TrimSpace(e.Level))
	switch {
	case id == "":
		return sqlite.CatalogEntry{}, fmt.Errorf("%w: id is required", ErrInvalidEntry)
	case strings.TrimSpace(e.Name) == "":
		return sqlite.CatalogEntry{}, fmt.Errorf("%w: name is required", ErrInvalidEntry)
	case !validLevels[level]:
		return sqlite.CatalogEntry{}, fmt.Errorf("%w: unknown level %q", ErrInvalidEntry, e.Level)
	case strings.TrimSpace(e.Category) == "":
		return sqlite.CatalogEntry{}, fmt.Errorf("%w: category is required", ErrInvalidEntry)
	}

	var defaults map[domain.Tier]domain.TierDefaults
	for tier, d := range e.Defaults {
		t := domain.Tier(strings.ToLower(tier))
		switch t {
		case domain.TierBeginner, domain.TierIntermediate, domain.TierAdvanced:
		default:
			return sqlite.CatalogEntry{}, fmt.Errorf("%w: unknown defaults tier %q", ErrInvalidEntry, tier)
		}
		if defaults == nil {
			defaults = map[domain.Tier]domain.TierDefaults{}
		}
		defaults[t] = domain.TierDefaults(d)
	}

	mods := make([]domain.ModificationNote, 0, len(e.Modifications))
	for _, m := range e.Modifications {
		if strings.TrimSpace(m.Category) == "" || strings.TrimSpace(m.Text) == "" {
			return sqlite.CatalogEntry{}, fmt.Errorf("%w: modification needs a category and text", ErrInvalidEntry)
		}
		mods = append(mods, domain.ModificationNote{Category: m.Category, Text: m.Text})
	}

	return sqlite.CatalogEntry{
		Exercise: domain.Exercise{
			ID:               id,
			Name:             strings.TrimSpace(e.Name),
			Level:            domain.Tier(level),
			Equipment:        strings.ToLower(strings.TrimSpace(e.Equipment)),
			Category:         strings.ToLower(strings.TrimSpace(e.Category)),
			Mechanic:         strings.ToLower(strings.TrimSpace(e.Mechanic)),
			Force:            strings.ToLower(strings.TrimSpace(e.Force)),
			Instructions:     e.Instructions,
			Images:           e.Images,
			PrimaryMuscles:   e.PrimaryMuscles,
			SecondaryMuscles: e.SecondaryMuscles,
			Reps: domain.RepSchemes{
				Strength:    e.Reps["strength"],
				Hypertrophy: e.Reps["hypertrophy"],
				Endurance:   e.Reps["endurance"],
			},
			Defaults: defaults,
		},
		Contraindications: e.Contraindications,
		Modifications:     mods,
	}, nil
}
