package goals

import (
	"errors"
	"time"

	"github.com/iquadra-Harsh/wellness-wizard/pkg"
)

var ErrGoalsNotFound = errors.New("goals not found")

const (
	DefaultWeeklyWorkoutGoal = 3
	DefaultDailyCalorieGoal  = 2000
	DefaultHydrationGoal     = 8
)

type Goals struct {
	ID                int        `json:"id,omitempty"`
	UserID            int        `json:"userId"`
	WeeklyWorkoutGoal int        `json:"weeklyWorkoutGoal"`
	DailyCalorieGoal  int        `json:"dailyCalorieGoal"`
	HydrationGoal     int        `json:"hydrationGoal"`
	WeightGoal        *float64   `json:"weightGoal,omitempty"`
	TargetBodyFat     *float64   `json:"targetBodyFat,omitempty"`
	CreatedAt         *time.Time `json:"createdAt,omitempty"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
}

// Defaults are served to users that never stored goals.
func Defaults(userID int) *Goals {
	return &Goals{
		UserID:            userID,
		WeeklyWorkoutGoal: DefaultWeeklyWorkoutGoal,
		DailyCalorieGoal:  DefaultDailyCalorieGoal,
		HydrationGoal:     DefaultHydrationGoal,
	}
}

type GoalsInput struct {
	WeeklyWorkoutGoal int      `json:"weeklyWorkoutGoal"`
	DailyCalorieGoal  int      `json:"dailyCalorieGoal"`
	HydrationGoal     int      `json:"hydrationGoal"`
	WeightGoal        *float64 `json:"weightGoal"`
	TargetBodyFat     *float64 `json:"targetBodyFat"`
}

func (in *GoalsInput) Validate() error {
	if in.WeeklyWorkoutGoal < 0 {
		return pkg.NewValidationError("weeklyWorkoutGoal", "must not be negative")
	}
	if in.DailyCalorieGoal < 0 {
		return pkg.NewValidationError("dailyCalorieGoal", "must not be negative")
	}
	if in.HydrationGoal < 0 {
		return pkg.NewValidationError("hydrationGoal", "must not be negative")
	}
	if in.WeightGoal != nil && *in.WeightGoal < 0 {
		return pkg.NewValidationError("weightGoal", "must not be negative")
	}
	if in.TargetBodyFat != nil && (*in.TargetBodyFat < 0 || *in.TargetBodyFat > 100) {
		return pkg.NewValidationError("targetBodyFat", "must be between 0 and 100")
	}
	return nil
}
