package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"alcyxob/fitplan/internal/cache"
	"alcyxob/fitplan/internal/domain"
	"alcyxob/fitplan/internal/generator"
	"alcyxob/fitplan/internal/logger"
	"alcyxob/fitplan/internal/observability"
	"alcyxob/fitplan/internal/repository"
	"alcyxob/fitplan/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const dateLayout = "2006-01-02"

// --- Error Definitions ---
var (
	ErrPlanNotFound        = errors.New("workout plan not found")
	ErrExportUnavailable   = errors.New("plan export is not configured")
	ErrInvalidWeek         = errors.New("week must be a YYYY-MM-DD date")
	ErrNoEligibleExercises = generator.ErrNoEligibleExercises
)

// PlanGenerator builds a weekly plan from a normalized profile.
type PlanGenerator interface {
	Generate(ctx context.Context, p generator.Profile) (*domain.WeeklyPlan, error)
}

// CurrentPlan is the plan of the current Monday-anchored week with its display label.
type CurrentPlan struct {
	Plan      *domain.WorkoutPlan
	WeekRange string // "Oct 27 to Nov 2", or "Oct 20 to 26" within one month
}

// PlanExport locates an exported plan document in object storage.
type PlanExport struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}

// RegenerationResult counts the outcome of a batch regeneration.
type RegenerationResult struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

type WorkoutService interface {
	// GeneratePlan builds and stores a plan for the user's current profile.
	GeneratePlan(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutPlan, error)
	GetCurrentPlan(ctx context.Context, userID primitive.ObjectID) (*CurrentPlan, error)
	GetPlanByWeek(ctx context.Context, userID primitive.ObjectID, weekOf string) (*domain.WorkoutPlan, error)
	// ExportPlan uploads the stored plan as JSON and returns a presigned download link.
	ExportPlan(ctx context.Context, userID primitive.ObjectID, weekOf string) (*PlanExport, error)
	// RegenerateAll generates a fresh plan for every user with a complete profile.
	// Per-user failures are logged and counted; only a failure to list users is returned.
	RegenerateAll(ctx context.Context) (RegenerationResult, error)
}

// WorkoutServiceConfig carries the optional collaborators and knobs of NewWorkoutService.
type WorkoutServiceConfig struct {
	Cache       cache.PlanCache     // nil disables caching
	Storage     storage.FileStorage // nil disables export
	PresignTTL  time.Duration
	Concurrency int // batch regeneration fan-out; defaults to 4
	Now         func() time.Time
}

type workoutService struct {
	log         *logger.Logger
	users       repository.UserRepository
	plans       repository.WorkoutPlanRepository
	gen         PlanGenerator
	cache       cache.PlanCache
	files       storage.FileStorage
	presignTTL  time.Duration
	concurrency int
	now         func() time.Time
	tracer      trace.Tracer
}

func NewWorkoutService(log *logger.Logger, users repository.UserRepository, plans repository.WorkoutPlanRepository, gen PlanGenerator, cfg WorkoutServiceConfig) WorkoutService {
	s := &workoutService{
		log:         log.With("service", "WorkoutService"),
		users:       users,
		plans:       plans,
		gen:         gen,
		cache:       cfg.Cache,
		files:       cfg.Storage,
		presignTTL:  cfg.PresignTTL,
		concurrency: cfg.Concurrency,
		now:         cfg.Now,
		tracer:      otel.Tracer(observability.TracerName),
	}
	if s.cache == nil {
		s.cache = cache.NoopPlanCache{}
	}
	if s.presignTTL <= 0 {
		s.presignTTL = storage.DefaultPresignedURLExpiry
	}
	if s.concurrency <= 0 {
		s.concurrency = 4
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *workoutService) GeneratePlan(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutPlan, error) {
	ctx, span := s.tracer.Start(ctx, "WorkoutService.GeneratePlan",
		trace.WithAttributes(attribute.String("user.id", userID.Hex())))
	defer span.End()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			err = ErrUserNotFound
		}
		recordSpanError(span, err)
		return nil, err
	}
	plan, err := s.generateFor(ctx, user)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("plan.week_of", plan.WeekOf),
		attribute.String("plan.fitness_level", string(plan.Plan.FitnessLevel)),
		attribute.Int("plan.workout_days", plan.Plan.WorkoutDaysPerWeek),
		attribute.Float64("plan.total_weekly_calories", plan.Plan.TotalWeeklyCalories),
	)
	if plan.Plan.WarningFlag != nil {
		span.SetAttributes(attribute.String("plan.warning_flag", *plan.Plan.WarningFlag))
	}
	return plan, nil
}

// generateFor runs the generator for a loaded user, stores the result and refreshes the cache.
func (s *workoutService) generateFor(ctx context.Context, user *domain.User) (*domain.WorkoutPlan, error) {
	if !user.HasCompleteProfile() {
		return nil, ErrProfileIncomplete
	}
	profile, err := generator.NormalizeProfile(user.ID.Hex(), *user.Profile)
	if err != nil {
		if errors.Is(err, generator.ErrInvalidProfile) {
			return nil, fmt.Errorf("%w: %v", ErrProfileIncomplete, err)
		}
		return nil, err
	}

	weekly, err := s.gen.Generate(ctx, profile)
	if err != nil {
		return nil, err
	}

	plan := &domain.WorkoutPlan{
		UserID: user.ID,
		WeekOf: weekly.WeekOf,
		Plan:   *weekly,
	}
	if err := s.plans.Upsert(ctx, plan); err != nil {
		return nil, fmt.Errorf("store plan: %w", err)
	}
	if err := s.cache.Set(ctx, plan); err != nil {
		s.log.Warn("Failed to cache plan", "userID", user.ID.Hex(), "error", err)
	}

	s.log.Info("Workout plan generated",
		"userID", user.ID.Hex(),
		"weekOf", plan.WeekOf,
		"level", weekly.FitnessLevel,
		"days", weekly.WorkoutDaysPerWeek,
	)
	return plan, nil
}

func (s *workoutService) GetCurrentPlan(ctx context.Context, userID primitive.ObjectID) (*CurrentPlan, error) {
	monday := weekStart(s.now())
	sunday := monday.AddDate(0, 0, 6)
	from, to := monday.Format(dateLayout), sunday.Format(dateLayout)
	label := WeekRangeLabel(monday)

	if cached, err := s.cache.Get(ctx, userID.Hex()); err == nil {
		if cached.WeekOf >= from && cached.WeekOf <= to {
			return &CurrentPlan{Plan: cached, WeekRange: label}, nil
		}
	} else if !errors.Is(err, cache.ErrMiss) {
		s.log.Warn("Plan cache read failed", "userID", userID.Hex(), "error", err)
	}

	plan, err := s.plans.GetLatestBetween(ctx, userID, from, to)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if err := s.cache.Set(ctx, plan); err != nil {
		s.log.Warn("Failed to cache plan", "userID", userID.Hex(), "error", err)
	}
	return &CurrentPlan{Plan: plan, WeekRange: label}, nil
}

func (s *workoutService) GetPlanByWeek(ctx context.Context, userID primitive.ObjectID, weekOf string) (*domain.WorkoutPlan, error) {
	if _, err := time.Parse(dateLayout, weekOf); err != nil {
		return nil, ErrInvalidWeek
	}
	plan, err := s.plans.GetByUserAndWeek(ctx, userID, weekOf)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *workoutService) ExportPlan(ctx context.Context, userID primitive.ObjectID, weekOf string) (*PlanExport, error) {
	if s.files == nil {
		return nil, ErrExportUnavailable
	}
	plan, err := s.GetPlanByWeek(ctx, userID, weekOf)
	if err != nil {
		return nil, err
	}

	body, err := json.MarshalIndent(plan.Plan, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode plan: %w", err)
	}
	key := storage.PlanExportKey(userID.Hex(), weekOf)
	if err := s.files.PutObject(ctx, key, storage.ContentTypeJSON, body); err != nil {
		return nil, fmt.Errorf("upload plan: %w", err)
	}
	if err := s.plans.SetExportKey(ctx, plan.ID, key); err != nil {
		return nil, fmt.Errorf("record export: %w", err)
	}
	url, err := s.files.GeneratePresignedDownloadURL(ctx, key, s.presignTTL)
	if err != nil {
		return nil, fmt.Errorf("presign export: %w", err)
	}
	// Only the latest export is tracked; the previous object is removed best-effort.
	if plan.ExportKey != "" && plan.ExportKey != key {
		if err := s.files.DeleteObject(ctx, plan.ExportKey); err != nil {
			s.log.Warn("Failed to delete previous export", "key", plan.ExportKey, "error", err)
		}
	}

	s.log.Info("Workout plan exported", "userID", userID.Hex(), "weekOf", weekOf, "key", key)
	return &PlanExport{Key: key, URL: url, ExpiresAt: s.now().Add(s.presignTTL)}, nil
}

func (s *workoutService) RegenerateAll(ctx context.Context) (RegenerationResult, error) {
	ctx, span := s.tracer.Start(ctx, "WorkoutService.RegenerateAll")
	defer span.End()

	users, err := s.users.ListWithCompleteProfile(ctx)
	if err != nil {
		recordSpanError(span, err)
		return RegenerationResult{}, fmt.Errorf("list users: %w", err)
	}

	var succeeded, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range users {
		user := &users[i]
		g.Go(func() error {
			if gctx.Err() != nil {
				failed.Add(1)
				return nil
			}
			if _, err := s.generateFor(gctx, user); err != nil {
				failed.Add(1)
				s.log.Warn("Plan regeneration failed", "userID", user.ID.Hex(), "error", err)
				return nil
			}
			succeeded.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	res := RegenerationResult{
		Total:     len(users),
		Succeeded: int(succeeded.Load()),
		Failed:    int(failed.Load()),
	}
	span.SetAttributes(
		attribute.Int("regeneration.total", res.Total),
		attribute.Int("regeneration.failed", res.Failed),
	)
	s.log.Info("Plan regeneration finished", "total", res.Total, "succeeded", res.Succeeded, "failed", res.Failed)
	return res, nil
}

// weekStart returns midnight of the Monday on or before t, in t's location.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

// WeekRangeLabel formats the Monday-to-Sunday span starting at monday.
func WeekRangeLabel(monday time.Time) string {
	sunday := monday.AddDate(0, 0, 6)
	if monday.Month() == sunday.Month() {
		return fmt.Sprintf("%s to %d", monday.Format("Jan 2"), sunday.Day())
	}
	return fmt.Sprintf("%s to %s", monday.Format("Jan 2"), sunday.Format("Jan 2"))
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
