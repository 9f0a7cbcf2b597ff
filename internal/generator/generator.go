// Package generator turns a user profile and the exercise catalog into a seven-day
// workout plan. Generation is a pure pipeline apart from catalog reads and the scoring
// jitter: classify the user, negotiate the schedule, size the volume, pick a split,
// resolve contraindications, filter the catalog and then fill each day in turn.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"alcyxob/fitplan/internal/domain"
)

// Generator builds weekly plans. It keeps no state between calls and is safe for
// concurrent use when its Catalog is.
type Generator struct {
	catalog Catalog
	tables  Tables
	seed    int64
	now     func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed fixes the scoring jitter source. Every call with the same seed and inputs
// produces the same plan. Zero keeps the default time-based seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.seed = seed }
}

// WithTables replaces the lookup tables.
func WithTables(t Tables) Option {
	return func(g *Generator) { g.tables = t }
}

// WithClock sets the clock used for week_of.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New returns a Generator reading from catalog.
func New(catalog Catalog, opts ...Option) *Generator {
	g := &Generator{
		catalog: catalog,
		tables:  DefaultTables(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Tables returns the generator's lookup tables.
func (g *Generator) Tables() Tables { return g.tables }

func (g *Generator) newRand() *rand.Rand {
	seed := g.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// dayState is the accumulator threaded through the training slots.
type dayState struct {
	used UsedSet
	days []domain.DayPlan
}

// Generate builds the weekly plan for a normalized profile. It fails with
// ErrNoEligibleExercises when the catalog offers nothing the user can perform, and with
// the catalog's error when a read fails; no partial plan is returned.
func (g *Generator) Generate(ctx context.Context, p Profile) (*domain.WeeklyPlan, error) {
	tier := ClassifyFitnessLevel(p.Activity, p.Age)
	sched := NegotiateSchedule(g.tables, p.SchedulePref, p.Goal, tier, p.Age)
	volume := ProgramVolume(g.tables, sched.Days, p.Goal, tier)
	slots := SelectSplit(sched.Days, tier, p.Goal)

	var ci Contraindications
	if len(p.Limitations) > 0 {
		rules, mods, err := g.catalog.FindContraindications(ctx, p.Limitations)
		if err != nil {
			return nil, fmt.Errorf("load contraindications: %w", err)
		}
		ci = ResolveContraindications(p.Limitations, rules, mods)
	} else {
		ci = ResolveContraindications(nil, nil, nil)
	}

	pool, err := FilterCatalog(ctx, g.catalog, g.tables, tier, p.Equipment, ci)
	if err != nil {
		return nil, err
	}

	rng := g.newRand()
	prescription := ProgramExercise(volume.Programming)

	state := dayState{used: UsedSet{}}
	for _, slot := range slots {
		state = g.fillDay(state, slot, pool, p.Goal, tier, volume.ExercisesPerDay, prescription, rng)
	}

	limitations := p.ReportedLimitations
	if limitations == nil {
		limitations = []string{}
	}
	header := domain.WeeklyPlan{
		UserID:              p.UserID,
		WeekOf:              g.now().Format("2006-01-02"),
		FitnessLevel:        tier,
		WorkoutDaysPerWeek:  sched.Days,
		UserPreference:      p.SchedulePref,
		PhysicalLimitations: limitations,
		ProgrammingNotes:    volume.Notes(),
	}
	if sched.Flag != "" {
		flag, msg := sched.Flag, sched.Message
		header.WarningFlag = &flag
		header.WarningMessage = &msg
	}
	return AssemblePlan(g.tables, header, slots, state.days), nil
}

// fillDay is one step of the fold over the split: recovery slots pass through, training
// slots select against the used set and extend it.
func (g *Generator) fillDay(s dayState, slot DaySlot, pool []Candidate, goal domain.FitnessGoal, tier domain.Tier, target int, p Prescription, rng *rand.Rand) dayState {
	if slot.Recovery {
		return s
	}
	selected, warnings := SelectDay(pool, slot, goal, target, s.used, g.tables, rng)
	ids := make([]string, len(selected))
	for i, c := range selected {
		ids[i] = c.ID
	}
	day := BuildTrainingDay(g.tables, slot, selected, tier, p, warnings)
	return dayState{
		used: s.used.With(ids...),
		days: append(s.days[:len(s.days):len(s.days)], day),
	}
}
