// internal/domain/exercise.go
package domain

// Exercise categories the planner can program.
const (
	CategoryStrength    = "strength"
	CategoryCardio      = "cardio"
	CategoryPlyometrics = "plyometrics"
)

// Mechanic values.
const (
	MechanicCompound  = "compound"
	MechanicIsolation = "isolation"
)

// EquipmentBodyOnly is the catalog's bodyweight equipment tag.
const EquipmentBodyOnly = "body only"

// TierDefaults are the per-level programming defaults stored with a catalog exercise.
type TierDefaults struct {
	Sets              int     `json:"sets,omitempty"`
	RestSeconds       int     `json:"rest_seconds,omitempty"`
	CaloriesPerMinute float64 `json:"calories_per_minute,omitempty"`
	TimeMinutes       float64 `json:"time_minutes,omitempty"`
}

// RepSchemes are the catalog's suggested rep strings per training quality.
type RepSchemes struct {
	Strength    string `json:"strength,omitempty"`
	Hypertrophy string `json:"hypertrophy,omitempty"`
	Endurance   string `json:"endurance,omitempty"`
}

// Exercise is a read-only catalog entry, already normalized at the store boundary.
type Exercise struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	Level            Tier                  `json:"level"`
	Equipment        string                `json:"equipment"`
	Category         string                `json:"category"`
	Mechanic         string                `json:"mechanic,omitempty"`
	Force            string                `json:"force,omitempty"`
	Instructions     []string              `json:"instructions"`
	Images           []string              `json:"images"`
	PrimaryMuscles   []string              `json:"primary_muscles"`
	SecondaryMuscles []string              `json:"secondary_muscles"`
	Reps             RepSchemes            `json:"reps,omitempty"`
	Defaults         map[Tier]TierDefaults `json:"defaults,omitempty"`
}

// CaloriesPerMinute returns the catalog calorie rate for a tier, if one is recorded.
func (e *Exercise) CaloriesPerMinute(t Tier) (float64, bool) {
	d, ok := e.Defaults[t]
	if !ok || d.CaloriesPerMinute <= 0 {
		return 0, false
	}
	return d.CaloriesPerMinute, true
}

// ContraindicationRule marks an exercise as unsafe for a limitation category.
type ContraindicationRule struct {
	ExerciseID string `json:"exercise_id"`
	Category   string `json:"category"`
}

// Modification is replacement instruction text that makes a contraindicated exercise safe
// for one limitation category.
type Modification struct {
	ExerciseID string `json:"exercise_id"`
	Category   string `json:"category"`
	Text       string `json:"text"`
}

// CatalogQuery is the catalog read contract. Empty slices mean "no constraint".
type CatalogQuery struct {
	Levels      []Tier
	Equipment   []string
	Categories  []string
	ExcludedIDs []string
}
