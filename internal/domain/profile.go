// internal/domain/profile.go
package domain

// FitnessGoal is the user's primary training objective.
type FitnessGoal string

const (
	GoalWeightLoss     FitnessGoal = "weight-loss"
	GoalStrength       FitnessGoal = "strength"
	GoalMuscleBuilding FitnessGoal = "muscle-building"
	GoalEndurance      FitnessGoal = "endurance"
	GoalGeneralFitness FitnessGoal = "general_fitness"
	GoalMaintenance    FitnessGoal = "maintenance"
)

// ActivityLevel describes how active the user currently is.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtraActive      ActivityLevel = "extra_active"
)

// Gender only affects metabolic calculations, which live outside the planner.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Tier is the skill classification driving exercise eligibility and volume.
type Tier string

const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

// LimitationNone is the questionnaire's "no limitations" tag.
const LimitationNone = "none"

// UserProfile is the questionnaire a user fills in before a plan can be generated.
// Values are stored as entered; unknown enum values are resolved by the generator.
type UserProfile struct {
	Age                 int      `bson:"age" json:"age"`
	Gender              Gender   `bson:"gender,omitempty" json:"gender,omitempty"`
	WeightLbs           float64  `bson:"weightLbs" json:"weight_lbs"`
	HeightInches        float64  `bson:"heightInches,omitempty" json:"height_inches,omitempty"`
	FitnessGoal         string   `bson:"fitnessGoal,omitempty" json:"fitness_goal,omitempty"`
	ActivityLevel       string   `bson:"activityLevel,omitempty" json:"activity_level,omitempty"`
	WorkoutSchedule     int      `bson:"workoutSchedule,omitempty" json:"workout_schedule,omitempty"` // preference code: 1, 3, 5 or 7
	PhysicalLimitations []string `bson:"physicalLimitations,omitempty" json:"physical_limitations,omitempty"`
	AvailableEquipment  []string `bson:"availableEquipment,omitempty" json:"available_equipment,omitempty"`
}

// IsComplete reports whether the profile carries the fields generation cannot default.
func (p *UserProfile) IsComplete() bool {
	return p != nil && p.Age > 0 && p.WeightLbs > 0
}
