package meals

import (
	"errors"
	"time"

	"github.com/iquadra-Harsh/wellness-wizard/pkg"
)

var ErrMealNotFound = errors.New("meal not found")

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

type Meal struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Type      string    `json:"type"`
	FoodItems string    `json:"foodItems"`
	Calories  int       `json:"calories"`
	Protein   *float64  `json:"protein,omitempty"`
	Carbs     *float64  `json:"carbs,omitempty"`
	Fat       *float64  `json:"fat,omitempty"`
	Notes     string    `json:"notes"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

type MealInput struct {
	Type      string    `json:"type"`
	FoodItems string    `json:"foodItems"`
	Calories  int       `json:"calories"`
	Protein   *float64  `json:"protein"`
	Carbs     *float64  `json:"carbs"`
	Fat       *float64  `json:"fat"`
	Notes     string    `json:"notes"`
	Date      time.Time `json:"date"`
}

type MealPatch struct {
	Type      *string    `json:"type"`
	FoodItems *string    `json:"foodItems"`
	Calories  *int       `json:"calories"`
	Protein   *float64   `json:"protein"`
	Carbs     *float64   `json:"carbs"`
	Fat       *float64   `json:"fat"`
	Notes     *string    `json:"notes"`
	Date      *time.Time `json:"date"`
}

type ListParams struct {
	From  *time.Time
	To    *time.Time
	Limit int
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

func (in *MealInput) Validate() error {
	if in.Type == "" {
		return pkg.NewValidationError("type", "must not be empty")
	}
	if in.FoodItems == "" {
		return pkg.NewValidationError("foodItems", "must not be empty")
	}
	if in.Calories < 0 {
		return pkg.NewValidationError("calories", "must not be negative")
	}
	return validateMacros(in.Protein, in.Carbs, in.Fat)
}

func (p *MealPatch) Validate() error {
	if p.Type != nil && *p.Type == "" {
		return pkg.NewValidationError("type", "must not be empty")
	}
	if p.FoodItems != nil && *p.FoodItems == "" {
		return pkg.NewValidationError("foodItems", "must not be empty")
	}
	if p.Calories != nil && *p.Calories < 0 {
		return pkg.NewValidationError("calories", "must not be negative")
	}
	return validateMacros(p.Protein, p.Carbs, p.Fat)
}

func validateMacros(protein, carbs, fat *float64) error {
	macros := []struct {
		field string
		value *float64
	}{
		{"protein", protein},
		{"carbs", carbs},
		{"fat", fat},
	}
	for _, m := range macros {
		if m.value != nil && *m.value < 0 {
			return pkg.NewValidationError(m.field, "must not be negative")
		}
	}
	return nil
}
