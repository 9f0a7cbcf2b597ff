package generator

import "fmt"

// Prescription is the sets/reps/rest applied to one selected exercise.
type Prescription struct {
	Sets        int
	Reps        int
	RepsRange   string
	RestSeconds int
}

// ProgramExercise derives the prescription from the goal's programming. Fractional
// sets-per-exercise values are truncated for display and reps take the floor of the
// range midpoint.
func ProgramExercise(prog GoalProgramming) Prescription {
	return Prescription{
		Sets:        int(prog.SetsPerExercise),
		Reps:        (prog.RepsMin + prog.RepsMax) / 2,
		RepsRange:   repRange(prog),
		RestSeconds: prog.RestSeconds,
	}
}

func repRange(prog GoalProgramming) string {
	return fmt.Sprintf("%d-%d", prog.RepsMin, prog.RepsMax)
}
