package service

import (
	"context"
	"errors"
	"testing"

	"alcyxob/fitplan/internal/domain"
	"alcyxob/fitplan/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProfileService(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Email: "p@example.com"}
	svc := NewProfileService(logger.Nop(), newFakeUserRepo(user))
	ctx := context.Background()

	if _, err := svc.GetProfile(ctx, user.ID); !errors.Is(err, ErrProfileIncomplete) {
		t.Errorf("empty profile: err = %v", err)
	}

	in := domain.UserProfile{Age: 45, WeightLbs: 180, FitnessGoal: "zumba", WorkoutSchedule: 5, PhysicalLimitations: []string{"none"}}
	if _, err := svc.UpdateProfile(ctx, user.ID, in); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	got, err := svc.GetProfile(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.FitnessGoal != "zumba" || got.WorkoutSchedule != 5 {
		t.Errorf("stored profile = %+v, want values as entered", got)
	}

	if _, err := svc.UpdateProfile(ctx, primitive.NewObjectID(), in); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user: err = %v", err)
	}
}

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		p       domain.UserProfile
		wantErr bool
	}{
		{"valid", domain.UserProfile{Age: 30, WeightLbs: 150}, false},
		{"zero age", domain.UserProfile{WeightLbs: 150}, true},
		{"negative weight", domain.UserProfile{Age: 30, WeightLbs: -1}, true},
		{"implausible age", domain.UserProfile{Age: 200, WeightLbs: 150}, true},
		{"schedule out of range", domain.UserProfile{Age: 30, WeightLbs: 150, WorkoutSchedule: 9}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateProfile(tt.p)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidProfile) {
				t.Errorf("err = %v, want ErrInvalidProfile", err)
			}
		})
	}
}
