package workouts

import (
	"time"

	"github.com/iquadra-Harsh/wellness-wizard/pkg"
)

type WorkoutType string

const (
	WorkoutTypeStrength WorkoutType = "strength"
	WorkoutTypeCardio   WorkoutType = "cardio"
)

func (t WorkoutType) Valid() bool {
	return t == WorkoutTypeStrength || t == WorkoutTypeCardio
}

type Workout struct {
	ID             int         `json:"id"`
	UserID         int         `json:"userId"`
	PlanID         *int        `json:"planId,omitempty"`
	PlanDayID      *int        `json:"planDayId,omitempty"`
	Type           string      `json:"type"`
	WorkoutType    WorkoutType `json:"workoutType"`
	Duration       int         `json:"duration"`
	Distance       *float64    `json:"distance,omitempty"`
	CaloriesBurned *int        `json:"caloriesBurned,omitempty"`
	Notes          string      `json:"notes"`
	Tags           []string    `json:"tags"`
	Date           time.Time   `json:"date"`
	CreatedAt      time.Time   `json:"createdAt"`
	// only set for strength workouts
	Exercises []Exercise `json:"exercises,omitempty"`
}

type Exercise struct {
	ID        int     `json:"id"`
	WorkoutID int     `json:"workoutId"`
	Name      string  `json:"name"`
	Category  *string `json:"category,omitempty"`
	Notes     string  `json:"notes"`
	Sets      []Set   `json:"sets"`
}

type Set struct {
	ID         int      `json:"id"`
	ExerciseID int      `json:"exerciseId"`
	SetNumber  int      `json:"setNumber"`
	Reps       int      `json:"reps"`
	Weight     *float64 `json:"weight,omitempty"`
	IsWarmup   bool     `json:"isWarmup"`
	RestTime   *int     `json:"restTime,omitempty"`
	RPE        *float64 `json:"rpe,omitempty"`
}

type WorkoutInput struct {
	PlanID         *int            `json:"planId"`
	PlanDayID      *int            `json:"planDayId"`
	Type           string          `json:"type"`
	WorkoutType    WorkoutType     `json:"workoutType"`
	Duration       int             `json:"duration"`
	Distance       *float64        `json:"distance"`
	CaloriesBurned *int            `json:"caloriesBurned"`
	Notes          string          `json:"notes"`
	Tags           []string        `json:"tags"`
	Date           time.Time       `json:"date"`
	Exercises      []ExerciseInput `json:"exercises"`
}

type ExerciseInput struct {
	Name     string     `json:"name"`
	Category *string    `json:"category"`
	Notes    string     `json:"notes"`
	Sets     []SetInput `json:"sets"`
}

// SetInput describes one set. The stored set number is always the position
// within the exercise, so any SetNumber sent by the client is ignored.
type SetInput struct {
	SetNumber int      `json:"setNumber"`
	Reps      int      `json:"reps"`
	Weight    *float64 `json:"weight"`
	IsWarmup  *bool    `json:"isWarmup"`
	RestTime  *int     `json:"restTime"`
	RPE       *float64 `json:"rpe"`
}

// WorkoutPatch holds the optional fields of a workout update. Exercises are
// only applied together with workoutType strength, and then replace all
// exercises and sets of the workout.
type WorkoutPatch struct {
	Type           *string         `json:"type"`
	WorkoutType    *WorkoutType    `json:"workoutType"`
	Duration       *int            `json:"duration"`
	Distance       *float64        `json:"distance"`
	CaloriesBurned *int            `json:"caloriesBurned"`
	Notes          *string         `json:"notes"`
	Tags           []string        `json:"tags"`
	Date           *time.Time      `json:"date"`
	Exercises      []ExerciseInput `json:"exercises"`
}

type ListParams struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

func (in *WorkoutInput) Validate() error {
	if in.Type == "" {
		return pkg.NewValidationError("type", "must not be empty")
	}
	if !in.WorkoutType.Valid() {
		return pkg.NewValidationError("workoutType", "must be one of [strength, cardio]")
	}
	if in.Duration <= 0 {
		return pkg.NewValidationError("duration", "must be greater than 0")
	}
	if in.Distance != nil && *in.Distance < 0 {
		return pkg.NewValidationError("distance", "must not be negative")
	}
	if in.CaloriesBurned != nil && *in.CaloriesBurned < 0 {
		return pkg.NewValidationError("caloriesBurned", "must not be negative")
	}
	if (in.PlanID == nil) != (in.PlanDayID == nil) {
		return pkg.NewValidationError("planDayId", "planId and planDayId must be set together")
	}
	return validateExercises(in.Exercises)
}

// ReplacesExercises reports whether the patch carries a new set of exercises
// for a strength workout.
func (p *WorkoutPatch) ReplacesExercises() bool {
	return p.WorkoutType != nil && *p.WorkoutType == WorkoutTypeStrength && p.Exercises != nil
}

func (p *WorkoutPatch) Validate() error {
	if p.Type != nil && *p.Type == "" {
		return pkg.NewValidationError("type", "must not be empty")
	}
	if p.WorkoutType != nil && !p.WorkoutType.Valid() {
		return pkg.NewValidationError("workoutType", "must be one of [strength, cardio]")
	}
	if p.Duration != nil && *p.Duration <= 0 {
		return pkg.NewValidationError("duration", "must be greater than 0")
	}
	if p.Distance != nil && *p.Distance < 0 {
		return pkg.NewValidationError("distance", "must not be negative")
	}
	if p.CaloriesBurned != nil && *p.CaloriesBurned < 0 {
		return pkg.NewValidationError("caloriesBurned", "must not be negative")
	}
	return validateExercises(p.Exercises)
}

func validateExercises(exercises []ExerciseInput) error {
	for _, e := range exercises {
		if e.Name == "" {
			return pkg.NewValidationError("exercises.name", "must not be empty")
		}
		for _, s := range e.Sets {
			if s.Reps < 0 {
				return pkg.NewValidationError("exercises.sets.reps", "must not be negative")
			}
			if s.Weight != nil && *s.Weight < 0 {
				return pkg.NewValidationError("exercises.sets.weight", "must not be negative")
			}
			if s.RestTime != nil && *s.RestTime < 0 {
				return pkg.NewValidationError("exercises.sets.restTime", "must not be negative")
			}
			if s.RPE != nil && (*s.RPE < 0 || *s.RPE > 10) {
				return pkg.NewValidationError("exercises.sets.rpe", "must be between 0 and 10")
			}
		}
	}
	return nil
}

func (p ListParams) limit() int {
	switch {
	case p.Limit <= 0:
		return DefaultListLimit
	case p.Limit > MaxListLimit:
		return MaxListLimit
	default:
		return p.Limit
	}
}
