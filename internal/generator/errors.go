package generator

import "errors"

var (
	// ErrNoEligibleExercises is returned when the catalog has nothing the user can perform
	// for their tier, equipment and limitations. No partial plan is produced.
	ErrNoEligibleExercises = errors.New("no eligible exercises found with current filters")
	ErrInvalidProfile      = errors.New("invalid profile")
)
