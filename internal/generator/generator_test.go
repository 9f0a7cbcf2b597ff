package generator

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"alcyxob/fitplan/internal/domain"
)

var fixedNow = func() time.Time { return time.Date(2025, time.October, 29, 9, 0, 0, 0, time.UTC) }

func mustProfile(t *testing.T, raw domain.UserProfile) Profile {
	t.Helper()
	p, err := NormalizeProfile("user-1", raw)
	if err != nil {
		t.Fatalf("NormalizeProfile: %v", err)
	}
	return p
}

func newTestGenerator(opts ...Option) *Generator {
	return New(fixtureCatalog(), append([]Option{WithSeed(42), WithClock(fixedNow)}, opts...)...)
}

func TestGenerate_SedentaryWeightLoss(t *testing.T) {
	p := mustProfile(t, domain.UserProfile{
		Age: 30, WeightLbs: 170, ActivityLevel: "sedentary", FitnessGoal: "weight-loss", WorkoutSchedule: 3,
	})
	plan, err := newTestGenerator().Generate(context.Background(), p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.FitnessLevel != domain.TierBeginner {
		t.Errorf("FitnessLevel = %q", plan.FitnessLevel)
	}
	if plan.WorkoutDaysPerWeek != 4 || plan.UserPreference != 3 {
		t.Errorf("days = %d, preference = %d", plan.WorkoutDaysPerWeek, plan.UserPreference)
	}
	if plan.WarningFlag == nil || *plan.WarningFlag != domain.FlagSuboptimalFrequency {
		t.Errorf("WarningFlag = %v, want suboptimal_frequency", plan.WarningFlag)
	}
	if plan.WarningMessage == nil || *plan.WarningMessage == "" {
		t.Error("WarningMessage missing")
	}
	if plan.WeekOf != "2025-10-29" || plan.UserID != "user-1" {
		t.Errorf("WeekOf = %q, UserID = %q", plan.WeekOf, plan.UserID)
	}
	want := domain.ProgrammingNotes{RepRange: "10-15", RestSeconds: 45, LoadPercentage: "60-75%"}
	if plan.ProgrammingNotes != want {
		t.Errorf("ProgrammingNotes = %+v", plan.ProgrammingNotes)
	}
	for _, d := range plan.Days {
		if d.Day == "Tuesday" && len(d.Warnings) == 0 {
			t.Error("Cardio & Core day must warn that no exercise trains \"cardio\"")
		}
	}
}

func TestGenerate_SeniorIsClamped(t *testing.T) {
	p := mustProfile(t, domain.UserProfile{
		Age: 70, WeightLbs: 150, ActivityLevel: "extra_active", FitnessGoal: "endurance", WorkoutSchedule: 7,
	})
	plan, err := newTestGenerator().Generate(context.Background(), p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.FitnessLevel != domain.TierBeginner || plan.WorkoutDaysPerWeek != 5 {
		t.Errorf("level %q, days %d, want beginner on 5 days", plan.FitnessLevel, plan.WorkoutDaysPerWeek)
	}
	if plan.WarningFlag == nil || *plan.WarningFlag != domain.FlagSafetyOverride {
		t.Errorf("WarningFlag = %v, want safety_override", plan.WarningFlag)
	}
}

func TestGenerate_NoFlag(t *testing.T) {
	p := mustProfile(t, domain.UserProfile{Age: 30, WeightLbs: 150, WorkoutSchedule: 3})
	plan, err := newTestGenerator().Generate(context.Background(), p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.WarningFlag != nil || plan.WarningMessage != nil {
		t.Errorf("unexpected warning %v / %v", plan.WarningFlag, plan.WarningMessage)
	}
	raw, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"warning_flag", "warning_message", "physical_limitations", "programming_notes", "total_weekly_calories"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("serialized plan lacks %q", key)
		}
	}
	if fields["warning_flag"] != nil {
		t.Errorf("warning_flag = %v, want null", fields["warning_flag"])
	}
}

func TestGenerate_SevenDaysForEveryFrequency(t *testing.T) {
	for days := 1; days <= 7; days++ {
		tables := DefaultTables()
		tables.PreferenceRanges = map[int][]int{days: {days}}
		g := newTestGenerator(WithTables(tables))
		p := mustProfile(t, domain.UserProfile{
			Age: 30, WeightLbs: 180, ActivityLevel: "extra_active", FitnessGoal: "general_fitness",
			WorkoutSchedule: days, AvailableEquipment: []string{"dumbbells"},
		})
		plan, err := g.Generate(context.Background(), p)
		if err != nil {
			t.Fatalf("%d days: %v", days, err)
		}

		if len(plan.Days) != 7 {
			t.Fatalf("%d days: plan has %d entries", days, len(plan.Days))
		}
		seen := map[string]bool{}
		trainingDays := 0
		var sum float64
		for i, d := range plan.Days {
			if d.Day != Weekdays[i] || seen[d.Day] {
				t.Errorf("%d days: entry %d is %s", days, i, d.Day)
			}
			seen[d.Day] = true
			if d.Type == domain.DayTraining {
				trainingDays++
				sum += d.EstimatedCalories
			}
		}

		wantTraining := 0
		for _, s := range SelectSplit(plan.WorkoutDaysPerWeek, plan.FitnessLevel, p.Goal) {
			if !s.Recovery {
				wantTraining++
			}
		}
		if trainingDays != wantTraining {
			t.Errorf("%d days: %d training days, want %d", days, trainingDays, wantTraining)
		}
		if plan.TotalWeeklyCalories != round1(sum) {
			t.Errorf("%d days: total %v, want %v", days, plan.TotalWeeklyCalories, round1(sum))
		}
	}
}

func TestGenerate_DoesNotRepeatWhenAlternativesExist(t *testing.T) {
	p := mustProfile(t, domain.UserProfile{Age: 30, WeightLbs: 150, ActivityLevel: "sedentary", WorkoutSchedule: 3})
	plan, err := newTestGenerator().Generate(context.Background(), p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	monday := map[string]bool{}
	for _, a := range plan.Days[0].Exercises {
		monday[a.ID] = true
	}
	if len(monday) == 0 {
		t.Fatal("Monday has no exercises")
	}
	for _, a := range plan.Days[4].Exercises {
		if monday[a.ID] {
			t.Errorf("%s repeated on Friday", a.ID)
		}
	}
}

func TestGenerate_Contraindications(t *testing.T) {
	p := mustProfile(t, domain.UserProfile{
		Age: 35, WeightLbs: 160, ActivityLevel: "moderately_active", FitnessGoal: "strength",
		WorkoutSchedule: 3, PhysicalLimitations: []string{"shoulder"},
	})
	for seed := int64(1); seed <= 20; seed++ {
		plan, err := newTestGenerator(WithSeed(seed)).Generate(context.Background(), p)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if planIDs(plan)["pike-pushup"] {
			t.Fatalf("seed %d: excluded exercise in plan", seed)
		}
		if !reflect.DeepEqual(plan.PhysicalLimitations, []string{"shoulder"}) {
			t.Fatalf("PhysicalLimitations = %v", plan.PhysicalLimitations)
		}
		for _, d := range plan.Days {
			for _, a := range d.Exercises {
				if a.ID == "pushup" && len(a.Modifications) == 0 {
					t.Fatalf("seed %d: modified exercise without modifications", seed)
				}
				if a.ID != "pushup" && len(a.Modifications) != 0 {
					t.Fatalf("seed %d: %s carries modifications", seed, a.ID)
				}
			}
		}
	}
}

func TestGenerate_EchoesReportedLimitations(t *testing.T) {
	tests := []struct {
		name    string
		entered []string
		want    []string
	}{
		{"mixed case", []string{"Shoulder"}, []string{"Shoulder"}},
		{"none", []string{"None"}, []string{"None"}},
		{"nothing entered", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustProfile(t, domain.UserProfile{
				Age: 35, WeightLbs: 160, FitnessGoal: "strength", WorkoutSchedule: 3, PhysicalLimitations: tt.entered,
			})
			plan, err := newTestGenerator(WithSeed(1)).Generate(context.Background(), p)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if !reflect.DeepEqual(plan.PhysicalLimitations, tt.want) {
				t.Errorf("PhysicalLimitations = %#v, want %#v", plan.PhysicalLimitations, tt.want)
			}
		})
	}
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	p := mustProfile(t, domain.UserProfile{Age: 28, WeightLbs: 140, ActivityLevel: "very_active", FitnessGoal: "muscle-building", WorkoutSchedule: 5})
	a, err := newTestGenerator(WithSeed(99)).Generate(context.Background(), p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := newTestGenerator(WithSeed(99)).Generate(context.Background(), p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different plans")
	}
}

func TestGenerate_NoEligibleExercises(t *testing.T) {
	p := mustProfile(t, domain.UserProfile{Age: 30, WeightLbs: 150})
	g := New(&StaticCatalog{Exercises: []domain.Exercise{
		exercise("barbell-only", beg, "barbell", str, comp, "chest"),
	}}, WithSeed(1))
	plan, err := g.Generate(context.Background(), p)
	if !errors.Is(err, ErrNoEligibleExercises) || plan != nil {
		t.Errorf("plan=%v err=%v, want nil plan and ErrNoEligibleExercises", plan, err)
	}
}

func TestGenerate_CatalogFailure(t *testing.T) {
	p := mustProfile(t, domain.UserProfile{Age: 30, WeightLbs: 150, PhysicalLimitations: []string{"knee"}})
	_, err := New(failingCatalog{err: errCatalogDown}).Generate(context.Background(), p)
	if !errors.Is(err, errCatalogDown) {
		t.Errorf("err = %v, want errCatalogDown", err)
	}
}
