// internal/domain/plan.go
package domain

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DayType distinguishes the three kinds of day in a weekly plan.
type DayType string

const (
	DayTraining DayType = "training"
	DayRest     DayType = "rest"
	DayRecovery DayType = "recovery"
)

// Warning flags; a plan carries at most one.
const (
	FlagSafetyOverride       = "safety_override"
	FlagSuboptimalFrequency  = "suboptimal_frequency"
	FlagActiveRecoveryNeeded = "active_recovery_needed"
)

// ModificationNote is a contraindication-driven substitution attached to an assignment.
type ModificationNote struct {
	Category string `bson:"category" json:"category"`
	Text     string `bson:"text" json:"text"`
}

// ExerciseAssignment is one programmed exercise within a training day.
type ExerciseAssignment struct {
	Order             int                `bson:"order" json:"order"`
	ID                string             `bson:"id" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Sets              int                `bson:"sets" json:"sets"`
	Reps              int                `bson:"reps" json:"reps"`
	RepsRange         string             `bson:"reps_range" json:"reps_range"`
	RestSeconds       int                `bson:"rest_seconds" json:"rest_seconds"`
	EstimatedTimeMin  float64            `bson:"estimated_time_min" json:"estimated_time_min"`
	EstimatedCalories float64            `bson:"estimated_calories" json:"estimated_calories"`
	Instructions      []string           `bson:"instructions" json:"instructions"`
	PrimaryMuscles    []string           `bson:"primary_muscles" json:"primary_muscles"`
	Equipment         string             `bson:"equipment" json:"equipment"`
	Images            []string           `bson:"images,omitempty" json:"images"`
	Modifications     []ModificationNote `bson:"modifications,omitempty" json:"modifications,omitempty"`
}

// DayPlan is a single weekday of a weekly plan.
type DayPlan struct {
	Day               string               `bson:"day" json:"day"`
	Focus             string               `bson:"focus" json:"focus"`
	Type              DayType              `bson:"type" json:"type"`
	TargetMuscles     []string             `bson:"target_muscles,omitempty" json:"target_muscles,omitempty"`
	DurationMinutes   float64              `bson:"duration_minutes" json:"duration_minutes"`
	EstimatedCalories float64              `bson:"estimated_calories" json:"estimated_calories"`
	Exercises         []ExerciseAssignment `bson:"exercises,omitempty" json:"exercises,omitempty"`
	Warnings          []string             `bson:"warnings,omitempty" json:"warnings,omitempty"`
	Description       string               `bson:"description,omitempty" json:"description,omitempty"`
}

// MarshalJSON always emits the exercises list of a training day, empty when nothing
// could be selected. Rest and recovery days carry no exercises key.
func (d DayPlan) MarshalJSON() ([]byte, error) {
	type plain DayPlan
	if d.Type != DayTraining {
		return json.Marshal(plain(d))
	}
	exercises := d.Exercises
	if exercises == nil {
		exercises = []ExerciseAssignment{}
	}
	return json.Marshal(struct {
		plain
		Exercises []ExerciseAssignment `json:"exercises"`
	}{plain(d), exercises})
}

// ProgrammingNotes summarizes the goal's rep range, rest and load.
type ProgrammingNotes struct {
	RepRange       string `bson:"rep_range" json:"rep_range"`
	RestSeconds    int    `bson:"rest_seconds" json:"rest_seconds"`
	LoadPercentage string `bson:"load_percentage" json:"load_percentage"`
}

// WeeklyPlan is the generator's output: exactly seven days, Monday first.
type WeeklyPlan struct {
	UserID              string           `bson:"user_id" json:"user_id"`
	WeekOf              string           `bson:"week_of" json:"week_of"`
	FitnessLevel        Tier             `bson:"fitness_level" json:"fitness_level"`
	WorkoutDaysPerWeek  int              `bson:"workout_days_per_week" json:"workout_days_per_week"`
	UserPreference      int              `bson:"user_preference" json:"user_preference"`
	PhysicalLimitations []string         `bson:"physical_limitations" json:"physical_limitations"`
	WarningFlag         *string          `bson:"warning_flag" json:"warning_flag"`
	WarningMessage      *string          `bson:"warning_message" json:"warning_message"`
	ProgrammingNotes    ProgrammingNotes `bson:"programming_notes" json:"programming_notes"`
	TotalWeeklyCalories float64          `bson:"total_weekly_calories" json:"total_weekly_calories"`
	Days                []DayPlan        `bson:"days" json:"days"`
}

// WorkoutPlan is a generated plan as persisted for one user and week.
type WorkoutPlan struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	WeekOf    string             `bson:"weekOf" json:"weekOf"` // YYYY-MM-DD generation date
	Plan      WeeklyPlan         `bson:"plan" json:"plan"`
	ExportKey string             `bson:"exportKey,omitempty" json:"-"` // S3 object key of the last export
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
