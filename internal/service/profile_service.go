package service

import (
	"context"
	"errors"
	"fmt"

	"alcyxob/fitplan/internal/domain"
	"alcyxob/fitplan/internal/logger"
	"alcyxob/fitplan/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrProfileIncomplete = errors.New("profile is incomplete: age and weight are required")
	ErrInvalidProfile    = errors.New("invalid profile")
)

// ProfileService reads and stores the fitness questionnaire of a user.
type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, profile domain.UserProfile) (*domain.UserProfile, error)
}

type profileService struct {
	log      *logger.Logger
	userRepo repository.UserRepository
}

func NewProfileService(log *logger.Logger, userRepo repository.UserRepository) ProfileService {
	return &profileService{
		log:      log.With("service", "ProfileService"),
		userRepo: userRepo,
	}
}

// GetProfile returns ErrProfileIncomplete when the user has not filled in the questionnaire yet.
func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Profile == nil {
		return nil, ErrProfileIncomplete
	}
	return user.Profile, nil
}

// UpdateProfile stores the questionnaire as entered. Enum fields are not checked here;
// the generator resolves unknown values to its defaults.
func (s *profileService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, profile domain.UserProfile) (*domain.UserProfile, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdateProfile(ctx, userID, &profile); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	s.log.Info("Profile updated", "userID", userID.Hex(), "goal", profile.FitnessGoal, "schedule", profile.WorkoutSchedule)
	return &profile, nil
}

func validateProfile(p domain.UserProfile) error {
	switch {
	case p.Age <= 0 || p.Age > 120:
		return fmt.Errorf("%w: age must be between 1 and 120", ErrInvalidProfile)
	case p.WeightLbs <= 0:
		return fmt.Errorf("%w: weight must be positive", ErrInvalidProfile)
	case p.HeightInches < 0:
		return fmt.Errorf("%w: height cannot be negative", ErrInvalidProfile)
	case p.WorkoutSchedule < 0 || p.WorkoutSchedule > 7:
		return fmt.Errorf("%w: workout schedule must be between 0 and 7 days", ErrInvalidProfile)
	}
	return nil
}
