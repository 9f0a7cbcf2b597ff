package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"alcyxob/fitplan/internal/cache"
	"alcyxob/fitplan/internal/domain"
	"alcyxob/fitplan/internal/generator"
	"alcyxob/fitplan/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Users ---

type fakeUserRepo struct {
	mu      sync.Mutex
	byID    map[primitive.ObjectID]*domain.User
	listErr error
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	r := &fakeUserRepo{byID: map[primitive.ObjectID]*domain.User{}}
	for _, u := range users {
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		r.byID[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	cp := *user
	cp.ID = primitive.NewObjectID()
	r.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id primitive.ObjectID, profile *domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	cp := *profile
	u.Profile = &cp
	return nil
}

func (r *fakeUserRepo) ListWithCompleteProfile(context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []domain.User
	for _, u := range r.byID {
		if u.HasCompleteProfile() {
			out = append(out, *u)
		}
	}
	return out, nil
}

// --- Plans ---

type fakePlanRepo struct {
	mu        sync.Mutex
	plans     map[string]*domain.WorkoutPlan // userID|weekOf
	upsertErr error
	latest    int // GetLatestBetween calls
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[string]*domain.WorkoutPlan{}}
}

func planKey(userID primitive.ObjectID, weekOf string) string { return userID.Hex() + "|" + weekOf }

func (r *fakePlanRepo) Upsert(_ context.Context, plan *domain.WorkoutPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.upsertErr != nil {
		return r.upsertErr
	}
	k := planKey(plan.UserID, plan.WeekOf)
	if old, ok := r.plans[k]; ok {
		plan.ID = old.ID
	} else {
		plan.ID = primitive.NewObjectID()
	}
	cp := *plan
	cp.ExportKey = ""
	r.plans[k] = &cp
	return nil
}

func (r *fakePlanRepo) GetByUserAndWeek(_ context.Context, userID primitive.ObjectID, weekOf string) (*domain.WorkoutPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[planKey(userID, weekOf)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePlanRepo) GetLatestBetween(_ context.Context, userID primitive.ObjectID, from, to string) (*domain.WorkoutPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.latest++
	var best *domain.WorkoutPlan
	for _, p := range r.plans {
		if p.UserID != userID || p.WeekOf < from || p.WeekOf > to {
			continue
		}
		if best == nil || p.WeekOf > best.WeekOf {
			best = p
		}
	}
	if best == nil {
		return nil, repository.ErrNotFound
	}
	cp := *best
	return &cp, nil
}

func (r *fakePlanRepo) SetExportKey(_ context.Context, id primitive.ObjectID, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.plans {
		if p.ID == id {
			p.ExportKey = key
			return nil
		}
	}
	return repository.ErrNotFound
}

// --- Generator ---

type fakeGenerator struct {
	weekOf string
	err    error
	// failFor makes generation fail for these user ids.
	failFor map[string]bool
}

func (g *fakeGenerator) Generate(_ context.Context, p generator.Profile) (*domain.WeeklyPlan, error) {
	if g.err != nil {
		return nil, g.err
	}
	if g.failFor[p.UserID] {
		return nil, generator.ErrNoEligibleExercises
	}
	return &domain.WeeklyPlan{
		UserID:              p.UserID,
		WeekOf:              g.weekOf,
		FitnessLevel:        domain.TierBeginner,
		WorkoutDaysPerWeek:  3,
		UserPreference:      p.SchedulePref,
		PhysicalLimitations: p.Limitations,
		TotalWeeklyCalories: 120.5,
		Days:                []domain.DayPlan{{Day: "Monday", Type: domain.DayTraining}},
	}, nil
}

// --- Cache ---

type memCache struct {
	mu    sync.Mutex
	plans map[string]*domain.WorkoutPlan
	sets  int
}

func newMemCache() *memCache { return &memCache{plans: map[string]*domain.WorkoutPlan{}} }

func (c *memCache) Get(_ context.Context, userID string) (*domain.WorkoutPlan, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.plans[userID]
	if !ok {
		return nil, cache.ErrMiss
	}
	cp := *p
	return &cp, nil
}

func (c *memCache) Set(_ context.Context, plan *domain.WorkoutPlan) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *plan
	c.plans[plan.UserID.Hex()] = &cp
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.plans, userID)
	return nil
}

func (c *memCache) Close() error { return nil }

// --- Storage ---

type fakeStorage struct {
	objects map[string][]byte
	deleted []string
	putErr  error
}

func newFakeStorage() *fakeStorage { return &fakeStorage{objects: map[string][]byte{}} }

func (s *fakeStorage) PutObject(_ context.Context, key, _ string, body []byte) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.objects[key] = body
	return nil
}

func (s *fakeStorage) GeneratePresignedDownloadURL(_ context.Context, key string, expires time.Duration) (string, error) {
	return "https://files.example.com/" + key + "?expires=" + expires.String(), nil
}

func (s *fakeStorage) DeleteObject(_ context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	delete(s.objects, key)
	return nil
}

var errStoreDown = errors.New("store down")

func completeUser(name string) *domain.User {
	return &domain.User{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Email: name + "@example.com",
		Role:  domain.RoleMember,
		Profile: &domain.UserProfile{
			Age: 30, WeightLbs: 160, FitnessGoal: "strength", ActivityLevel: "moderately_active",
			WorkoutSchedule: 3, PhysicalLimitations: []string{"Knee"},
		},
	}
}
