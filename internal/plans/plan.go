package plans

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/iquadra-Harsh/wellness-wizard/pkg"
)

var (
	ErrPlanNotFound  = errors.New("workout plan not found")
	ErrPlanHasNoDays = errors.New("workout plan has no days")
)

type Plan struct {
	ID              int        `json:"id"`
	UserID          int        `json:"userId"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	DaysPerWeek     int        `json:"daysPerWeek"`
	CurrentDayIndex int        `json:"currentDayIndex"`
	LastWorkoutDate *time.Time `json:"lastWorkoutDate,omitempty"`
	IsActive        bool       `json:"isActive"`
	CreatedAt       time.Time  `json:"createdAt"`
	Days            []PlanDay  `json:"days"`
}

type PlanDay struct {
	ID           int             `json:"id"`
	PlanID       int             `json:"planId"`
	DayIndex     int             `json:"dayIndex"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	MuscleGroups []string        `json:"muscleGroups"`
	Exercises    json.RawMessage `json:"exercises,omitempty"`
	RestDay      bool            `json:"restDay"`
}

type PlanInput struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	DaysPerWeek int            `json:"daysPerWeek"`
	Days        []PlanDayInput `json:"days"`
}

// PlanDayInput describes one plan day. Days are indexed by their position in the plan,
// DayIndex is accepted on the wire but never stored.
type PlanDayInput struct {
	DayIndex     int             `json:"dayIndex"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	MuscleGroups []string        `json:"muscleGroups"`
	Exercises    json.RawMessage `json:"exercises"`
	RestDay      bool            `json:"restDay"`
}

// PlanPatch holds the optional fields of a plan update. A non nil Days slice
// replaces all days of the plan.
type PlanPatch struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	DaysPerWeek *int           `json:"daysPerWeek"`
	IsActive    *bool          `json:"isActive"`
	Days        []PlanDayInput `json:"days"`
}

func (in *PlanInput) Validate() error {
	if in.Name == "" {
		return pkg.NewValidationError("name", "must not be empty")
	}
	if in.DaysPerWeek < 0 || in.DaysPerWeek > 7 {
		return pkg.NewValidationError("daysPerWeek", "must be between 0 and 7")
	}
	if len(in.Days) == 0 {
		return pkg.NewValidationError("days", "plan must have at least one day")
	}
	return validateDays(in.Days)
}

func (p *PlanPatch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return pkg.NewValidationError("name", "must not be empty")
	}
	if p.DaysPerWeek != nil && (*p.DaysPerWeek < 0 || *p.DaysPerWeek > 7) {
		return pkg.NewValidationError("daysPerWeek", "must be between 0 and 7")
	}
	if p.Days != nil && len(p.Days) == 0 {
		return pkg.NewValidationError("days", "plan must have at least one day")
	}
	return validateDays(p.Days)
}

func validateDays(days []PlanDayInput) error {
	for _, d := range days {
		if d.Name == "" {
			return pkg.NewValidationError("days.name", "must not be empty")
		}
		if len(d.Exercises) > 0 && !json.Valid(d.Exercises) {
			return pkg.NewValidationError("days.exercises", "must be valid json")
		}
	}
	return nil
}

// NextDayIndex returns the day cursor after completing the day at current.
func NextDayIndex(current, dayCount int) (int, error) {
	if dayCount <= 0 {
		return 0, ErrPlanHasNoDays
	}
	if current < 0 {
		current = 0
	}
	return (current + 1) % dayCount, nil
}

// dayAt resolves the cursor against the days of a plan ordered by day index.
// A cursor past the last day wraps around.
func dayAt(days []PlanDay, current int) (*PlanDay, error) {
	if len(days) == 0 {
		return nil, ErrPlanHasNoDays
	}
	for i := range days {
		if days[i].DayIndex == current {
			return &days[i], nil
		}
	}
	idx := current % len(days)
	if idx < 0 {
		idx = 0
	}
	return &days[idx], nil
}
