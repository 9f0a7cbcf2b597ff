package service

import (
	"context"
	"errors"
	"strings"

	"alcyxob/fitplan/internal/domain"
	"alcyxob/fitplan/internal/repository"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// ExerciseFilter narrows a catalog listing. Empty fields do not constrain.
type ExerciseFilter struct {
	Level     string
	Equipment string
	Category  string
}

// CatalogService exposes the exercise catalog for browsing.
type CatalogService interface {
	ListExercises(ctx context.Context, f ExerciseFilter) ([]domain.Exercise, error)
	GetExercise(ctx context.Context, id string) (*domain.Exercise, error)
}

type catalogService struct {
	catalog repository.ExerciseCatalogRepository
}

func NewCatalogService(catalog repository.ExerciseCatalogRepository) CatalogService {
	return &catalogService{catalog: catalog}
}

func (s *catalogService) ListExercises(ctx context.Context, f ExerciseFilter) ([]domain.Exercise, error) {
	var q domain.CatalogQuery
	if level := strings.ToLower(strings.TrimSpace(f.Level)); level != "" {
		q.Levels = []domain.Tier{domain.Tier(level)}
	}
	if eq := strings.ToLower(strings.TrimSpace(f.Equipment)); eq != "" {
		q.Equipment = []string{eq}
	}
	if cat := strings.ToLower(strings.TrimSpace(f.Category)); cat != "" {
		q.Categories = []string{cat}
	}
	exercises, err := s.catalog.FindExercises(ctx, q)
	if err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	return exercises, nil
}

func (s *catalogService) GetExercise(ctx context.Context, id string) (*domain.Exercise, error) {
	ex, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return ex, nil
}
