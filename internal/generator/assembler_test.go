package generator

import (
	"encoding/json"
	"strings"
	"testing"

	"alcyxob/fitplan/internal/domain"
)

func TestEstimateExercise(t *testing.T) {
	tables := DefaultTables()
	p := ProgramExercise(tables.programmingFor(domain.GoalGeneralFitness)) // 3 x 11, 75s rest

	rated := exercise("rated", mid, body, str, iso, "chest")
	rated.Defaults = map[domain.Tier]domain.TierDefaults{mid: {CaloriesPerMinute: 8}}

	tests := []struct {
		name     string
		ex       domain.Exercise
		tier     domain.Tier
		minutes  float64
		calories float64
	}{
		{"compound fallback", exercise("c", beg, body, str, comp, "chest"), beg, 5.4, 27.0},
		{"isolation fallback", exercise("i", adv, body, str, iso, "chest"), adv, 5.4, 29.7},
		{"missing mechanic uses isolation rate", exercise("m", mid, body, str, "", "chest"), mid, 5.4, 24.3},
		{"catalog rate wins", rated, mid, 5.4, 43.2},
		{"catalog rate for another tier ignored", rated, beg, 5.4, 18.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateExercise(tables, tt.ex, tt.tier, p)
			if round1(got.Minutes) != tt.minutes || round1(got.Calories) != tt.calories {
				t.Errorf("estimate = %+v, want %.1f min / %.1f kcal", got, tt.minutes, tt.calories)
			}
		})
	}
}

func TestBuildTrainingDay(t *testing.T) {
	tables := DefaultTables()
	p := ProgramExercise(tables.programmingFor(domain.GoalEndurance)) // 2 x 20, 40s rest
	selected := candidates(
		exercise("a", beg, body, str, comp, "chest"),
		exercise("b", beg, body, str, iso, "chest"),
	)
	selected[1].Status = StatusModified
	selected[1].Modifications = []domain.ModificationNote{{Category: "wrist", Text: "Use fists."}}

	day := BuildTrainingDay(tables, train("Monday", "Push", "chest"), selected, beg, p, []string{"warn"})

	if day.Type != domain.DayTraining || day.Focus != "Push" || len(day.Warnings) != 1 {
		t.Errorf("day header = %+v", day)
	}
	if len(day.Exercises) != 2 || day.Exercises[0].Order != 1 || day.Exercises[1].Order != 2 {
		t.Fatalf("exercises = %+v", day.Exercises)
	}
	a := day.Exercises[0]
	if a.Sets != 2 || a.Reps != 20 || a.RepsRange != "15-25" || a.RestSeconds != 40 {
		t.Errorf("assignment programming = %+v", a)
	}
	// (20*3 + 40)/60 * 2 = 3.333 min per exercise
	if a.EstimatedTimeMin != 3.3 || a.EstimatedCalories != 16.7 {
		t.Errorf("compound estimate = %v min / %v kcal", a.EstimatedTimeMin, a.EstimatedCalories)
	}
	if day.DurationMinutes != 6.7 {
		t.Errorf("duration = %v, want rounded sum 6.7", day.DurationMinutes)
	}
	if day.EstimatedCalories != 28.3 {
		t.Errorf("calories = %v, want round(16.667+11.667) = 28.3", day.EstimatedCalories)
	}
	if len(day.Exercises[1].Modifications) != 1 {
		t.Errorf("modifications not carried: %+v", day.Exercises[1])
	}
}

func TestAssemblePlan(t *testing.T) {
	tables := DefaultTables()
	slots := SelectSplit(7, adv, domain.GoalStrength)
	var training []domain.DayPlan
	for i, s := range slots {
		if !s.Recovery {
			training = append(training, domain.DayPlan{
				Day:               s.Day,
				Focus:             s.Focus,
				Type:              domain.DayTraining,
				EstimatedCalories: 100.1 + float64(i)*0.1,
			})
		}
	}
	// Reverse to prove ordering does not depend on input order.
	for i, j := 0, len(training)-1; i < j; i, j = i+1, j-1 {
		training[i], training[j] = training[j], training[i]
	}

	plan := AssemblePlan(tables, domain.WeeklyPlan{UserID: "u"}, slots, training)

	if len(plan.Days) != 7 {
		t.Fatalf("len(Days) = %d", len(plan.Days))
	}
	var sum float64
	for i, d := range plan.Days {
		if d.Day != Weekdays[i] {
			t.Errorf("Days[%d] = %s, want %s", i, d.Day, Weekdays[i])
		}
		switch d.Type {
		case domain.DayTraining:
			sum += d.EstimatedCalories
		case domain.DayRecovery:
			if d.DurationMinutes != 20 || d.EstimatedCalories != 80 || d.Description == "" {
				t.Errorf("recovery day %+v", d)
			}
		default:
			t.Errorf("unexpected %s day on %s", d.Type, d.Day)
		}
	}
	if plan.TotalWeeklyCalories != round1(sum) {
		t.Errorf("TotalWeeklyCalories = %v, want %v", plan.TotalWeeklyCalories, round1(sum))
	}
	if plan.UserID != "u" {
		t.Errorf("header not carried")
	}
}

func TestAssemblePlan_FillsRestDays(t *testing.T) {
	slots := SelectSplit(1, beg, domain.GoalGeneralFitness)
	training := []domain.DayPlan{{Day: "Wednesday", Type: domain.DayTraining, EstimatedCalories: 42.25}}
	plan := AssemblePlan(DefaultTables(), domain.WeeklyPlan{}, slots, training)

	rest := 0
	for _, d := range plan.Days {
		if d.Type == domain.DayRest {
			rest++
			if d.Focus != "Rest Day" || d.DurationMinutes != 0 || d.EstimatedCalories != 0 || d.Description == "" {
				t.Errorf("rest day %+v", d)
			}
			if d.Exercises != nil {
				t.Errorf("rest day carries exercises")
			}
		}
	}
	if rest != 6 {
		t.Errorf("rest days = %d, want 6", rest)
	}
	if plan.TotalWeeklyCalories != 42.3 {
		t.Errorf("TotalWeeklyCalories = %v, want 42.3", plan.TotalWeeklyCalories)
	}
}

func TestDayPlanJSON_ExercisesKey(t *testing.T) {
	tables := DefaultTables()
	p := ProgramExercise(tables.programmingFor(domain.GoalGeneralFitness))
	empty := BuildTrainingDay(tables, train("Monday", "Lower Body", "calves"), nil, beg, p, []string{"Calves: missing"})
	plan := AssemblePlan(tables, domain.WeeklyPlan{}, SelectSplit(1, beg, domain.GoalGeneralFitness), []domain.DayPlan{empty})

	tests := []struct {
		name string
		day  domain.DayPlan
		want string // "" means the key must be absent
	}{
		{"empty training day", plan.Days[0], `"exercises":[]`},
		{"training day built by hand", domain.DayPlan{Day: "Friday", Type: domain.DayTraining}, `"exercises":[]`},
		{"rest day", plan.Days[6], ""},
		{"recovery day", domain.DayPlan{Day: "Sunday", Type: domain.DayRecovery}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.day)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			got := string(raw)
			if tt.want == "" {
				if strings.Contains(got, `"exercises"`) {
					t.Errorf("%s carries an exercises key: %s", tt.day.Type, got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("json = %s, want %s", got, tt.want)
			}
			if !strings.Contains(got, `"day":"`+tt.day.Day+`"`) {
				t.Errorf("embedded fields lost: %s", got)
			}
		})
	}

	var back domain.DayPlan
	raw, _ := json.Marshal(plan.Days[0])
	if err := json.Unmarshal(raw, &back); err != nil || back.Exercises == nil || len(back.Warnings) != 1 {
		t.Errorf("round trip = %+v, %v", back, err)
	}
}

func TestBuildTrainingDay_ImagesNeverNull(t *testing.T) {
	tables := DefaultTables()
	p := ProgramExercise(tables.programmingFor(domain.GoalGeneralFitness))
	day := BuildTrainingDay(tables, train("Monday", "Push", "chest"), candidates(exercise("a", beg, body, str, comp, "chest")), beg, p, nil)
	raw, err := json.Marshal(day.Exercises[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"images":[]`) {
		t.Errorf("json = %s, want images:[]", raw)
	}
}
