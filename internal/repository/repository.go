package repository

import (
	"context"

	"alcyxob/fitplan/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
	ErrDuplicate    = RepositoryError("already exists")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, profile *domain.UserProfile) error
	// ListWithCompleteProfile returns every user a plan can be generated for.
	ListWithCompleteProfile(ctx context.Context) ([]domain.User, error)
}

// WorkoutPlanRepository stores generated weekly plans, one per user and week_of date.
type WorkoutPlanRepository interface {
	// Upsert replaces the plan stored for (plan.UserID, plan.WeekOf) or inserts it.
	// plan.ID is set to the stored document's id.
	Upsert(ctx context.Context, plan *domain.WorkoutPlan) error
	GetByUserAndWeek(ctx context.Context, userID primitive.ObjectID, weekOf string) (*domain.WorkoutPlan, error)
	// GetLatestBetween returns the newest plan whose week_of lies in [from, to], both YYYY-MM-DD.
	GetLatestBetween(ctx context.Context, userID primitive.ObjectID, from, to string) (*domain.WorkoutPlan, error)
	SetExportKey(ctx context.Context, id primitive.ObjectID, key string) error
}

// ExerciseCatalogRepository is the read side of the exercise catalog.
type ExerciseCatalogRepository interface {
	FindExercises(ctx context.Context, q domain.CatalogQuery) ([]domain.Exercise, error)
	FindContraindications(ctx context.Context, categories []string) ([]domain.ContraindicationRule, []domain.Modification, error)
	GetByID(ctx context.Context, id string) (*domain.Exercise, error)
}
