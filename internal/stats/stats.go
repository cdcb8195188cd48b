package stats

import (
	"fmt"
	"math"

	"github.com/iquadra-Harsh/wellness-wizard/pkg"
)

const (
	DefaultDays = 7
	// MaxDays caps the window at roughly a century.
	MaxDays = 36500
)

type WorkoutStats struct {
	Days          int `json:"days"`
	TotalWorkouts int `json:"totalWorkouts"`
	TotalDuration int `json:"totalDuration"`
	TotalCalories int `json:"totalCalories"`
	AvgDuration   int `json:"avgDuration"`
}

type MealStats struct {
	Days           int            `json:"days"`
	TotalMeals     int            `json:"totalMeals"`
	TotalCalories  int            `json:"totalCalories"`
	AvgCalories    int            `json:"avgCalories"`
	TotalProtein   float64        `json:"totalProtein"`
	TotalCarbs     float64        `json:"totalCarbs"`
	TotalFat       float64        `json:"totalFat"`
	MacroBreakdown MacroBreakdown `json:"macroBreakdown"`
}

// MacroBreakdown holds whole number percentages of protein, carbs and fat grams.
type MacroBreakdown struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// NewMacroBreakdown computes the share of each macro in the total macro grams.
// The rounded values are not forced to add up to 100.
func NewMacroBreakdown(protein, carbs, fat float64) MacroBreakdown {
	total := protein + carbs + fat
	if total <= 0 {
		return MacroBreakdown{}
	}
	return MacroBreakdown{
		Protein: int(math.Round(100 * protein / total)),
		Carbs:   int(math.Round(100 * carbs / total)),
		Fat:     int(math.Round(100 * fat / total)),
	}
}

func validateDays(days int) error {
	if days <= 0 {
		return pkg.NewValidationError("days", "must be greater than 0")
	}
	if days > MaxDays {
		return pkg.NewValidationError("days", fmt.Sprintf("must be at most %d", MaxDays))
	}
	return nil
}
