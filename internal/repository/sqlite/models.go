package sqlite

import "gorm.io/datatypes"

// Muscle roles in ExerciseMuscle.
const (
	RolePrimary   = "primary"
	RoleSecondary = "secondary"
)

// LevelExpert is the catalog's spelling of the advanced tier.
const LevelExpert = "expert"

type ExerciseRecord struct {
	ID           string         `gorm:"primaryKey;column:id"`
	Name         string         `gorm:"column:name;not null"`
	Level        string         `gorm:"column:level;not null;index"`
	Equipment    string         `gorm:"column:equipment;index"`
	Category     string         `gorm:"column:category;not null;index"`
	Mechanic     string         `gorm:"column:mechanic"`
	Force        string         `gorm:"column:force"`
	Instructions datatypes.JSON `gorm:"column:instructions"`
	Images       datatypes.JSON `gorm:"column:images"`
}

func (ExerciseRecord) TableName() string { return "exercises" }

type MuscleRecord struct {
	ID   uint   `gorm:"primaryKey;column:muscle_id"`
	Name string `gorm:"column:muscle_name;not null;uniqueIndex"`
}

func (MuscleRecord) TableName() string { return "muscles" }

// ExerciseMuscle links an exercise to a muscle as primary or secondary mover.
type ExerciseMuscle struct {
	ExerciseID string `gorm:"primaryKey;column:exercise_id"`
	MuscleID   uint   `gorm:"primaryKey;column:muscle_id"`
	Role       string `gorm:"primaryKey;column:role"`
}

func (ExerciseMuscle) TableName() string { return "exercise_muscles" }

// ProgrammingRecord holds the per-tier defaults of one exercise.
type ProgrammingRecord struct {
	ExerciseID           string  `gorm:"primaryKey;column:exercise_id"`
	SetsBeginner         int     `gorm:"column:sets_beginner"`
	SetsIntermediate     int     `gorm:"column:sets_intermediate"`
	SetsAdvanced         int     `gorm:"column:sets_advanced"`
	RepsStrength         string  `gorm:"column:reps_strength"`
	RepsHypertrophy      string  `gorm:"column:reps_hypertrophy"`
	RepsEndurance        string  `gorm:"column:reps_endurance"`
	RestBeginner         int     `gorm:"column:rest_beginner"`
	RestIntermediate     int     `gorm:"column:rest_intermediate"`
	RestAdvanced         int     `gorm:"column:rest_advanced"`
	CaloriesBeginner     float64 `gorm:"column:calories_beginner"`
	CaloriesIntermediate float64 `gorm:"column:calories_intermediate"`
	CaloriesAdvanced     float64 `gorm:"column:calories_advanced"`
	TimeBeginner         float64 `gorm:"column:time_beginner"`
	TimeIntermediate     float64 `gorm:"column:time_intermediate"`
	TimeAdvanced         float64 `gorm:"column:time_advanced"`
}

func (ProgrammingRecord) TableName() string { return "exercise_programming" }

type ContraindicationRecord struct {
	ExerciseID string `gorm:"primaryKey;column:exercise_id"`
	Category   string `gorm:"primaryKey;column:category;index"`
}

func (ContraindicationRecord) TableName() string { return "exercise_contraindications" }

type ModificationRecord struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	ExerciseID string `gorm:"column:exercise_id;not null;index"`
	Category   string `gorm:"column:category;not null;index"`
	Text       string `gorm:"column:text;not null"`
}

func (ModificationRecord) TableName() string { return "exercise_modifications" }

func allModels() []interface{} {
	return []interface{}{
		&ExerciseRecord{},
		&MuscleRecord{},
		&ExerciseMuscle{},
		&ProgrammingRecord{},
		&ContraindicationRecord{},
		&ModificationRecord{},
	}
}
