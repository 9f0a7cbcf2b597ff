package cache

import (
	"context"
	"sort"
	"strings"
	"time"

	"alcyxob/fitplan/internal/domain"
	"alcyxob/fitplan/internal/repository"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type contraindicationEntry struct {
	rules []domain.ContraindicationRule
	mods  []domain.Modification
}

// CachedCatalog memoizes catalog reads in a size-bounded LRU whose entries expire after
// ttl. The catalog is read-only while the server runs, so entries are never invalidated
// explicitly; reseeding requires a restart or Purge.
type CachedCatalog struct {
	next      repository.ExerciseCatalogRepository
	exercises *expirable.LRU[string, []domain.Exercise]
	contras   *expirable.LRU[string, contraindicationEntry]
}

var _ repository.ExerciseCatalogRepository = (*CachedCatalog)(nil)

// NewCachedCatalog wraps next. A non-positive size falls back to 128 entries.
func NewCachedCatalog(next repository.ExerciseCatalogRepository, size int, ttl time.Duration) *CachedCatalog {
	if size <= 0 {
		size = 128
	}
	return &CachedCatalog{
		next:      next,
		exercises: expirable.NewLRU[string, []domain.Exercise](size, nil, ttl),
		contras:   expirable.NewLRU[string, contraindicationEntry](size, nil, ttl),
	}
}

func (c *CachedCatalog) FindExercises(ctx context.Context, q domain.CatalogQuery) ([]domain.Exercise, error) {
	key := queryKey(q)
	if hit, ok := c.exercises.Get(key); ok {
		return hit, nil
	}
	out, err := c.next.FindExercises(ctx, q)
	if err != nil {
		return nil, err
	}
	c.exercises.Add(key, out)
	return out, nil
}

func (c *CachedCatalog) FindContraindications(ctx context.Context, categories []string) ([]domain.ContraindicationRule, []domain.Modification, error) {
	key := setKey(categories)
	if hit, ok := c.contras.Get(key); ok {
		return hit.rules, hit.mods, nil
	}
	rules, mods, err := c.next.FindContraindications(ctx, categories)
	if err != nil {
		return nil, nil, err
	}
	c.contras.Add(key, contraindicationEntry{rules: rules, mods: mods})
	return rules, mods, nil
}

// GetByID is not cached; it only serves the browsing endpoints.
func (c *CachedCatalog) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	return c.next.GetByID(ctx, id)
}

// Purge drops every cached entry.
func (c *CachedCatalog) Purge() {
	c.exercises.Purge()
	c.contras.Purge()
}

// queryKey is order-insensitive within each constraint.
func queryKey(q domain.CatalogQuery) string {
	levels := make([]string, len(q.Levels))
	for i, l := range q.Levels {
		levels[i] = string(l)
	}
	return strings.Join([]string{
		setKey(levels),
		setKey(q.Equipment),
		setKey(q.Categories),
		setKey(q.ExcludedIDs),
	}, "|")
}

func setKey(values []string) string {
	s := append([]string(nil), values...)
	sort.Strings(s)
	return strings.Join(s, ",")
}
