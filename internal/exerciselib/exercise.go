package exerciselib

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrExerciseNotFound = errors.New("exercise not found")

const (
	DefaultSearchLimit = 50
	MaxSearchLimit     = 500
)

// Exercise is an entry of the reference catalog, in the free-exercise-db format.
type Exercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Force            *string  `json:"force"`
	Level            *string  `json:"level"`
	Mechanic         *string  `json:"mechanic"`
	Equipment        *string  `json:"equipment"`
	PrimaryMuscles   []string `json:"primaryMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Instructions     []string `json:"instructions"`
	Category         string   `json:"category"`
	Images           []string `json:"images"`
}

type SearchParams struct {
	Search        string
	PrimaryMuscle string
	Equipment     string
	Level         string
	Limit         int
}

func (p SearchParams) limit() int {
	switch {
	case p.Limit <= 0:
		return DefaultSearchLimit
	case p.Limit > MaxSearchLimit:
		return MaxSearchLimit
	default:
		return p.Limit
	}
}

// DecodeCatalog reads a JSON array of exercises. Entries without id or name
// are skipped.
func DecodeCatalog(r io.Reader) ([]Exercise, error) {
	var raw []Exercise
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode exercise catalog: %w", err)
	}

	exercises := make([]Exercise, 0, len(raw))
	for _, e := range raw {
		if e.ID == "" || e.Name == "" {
			continue
		}
		e.PrimaryMuscles = nonNil(e.PrimaryMuscles)
		e.SecondaryMuscles = nonNil(e.SecondaryMuscles)
		e.Instructions = nonNil(e.Instructions)
		e.Images = nonNil(e.Images)
		exercises = append(exercises, e)
	}
	return exercises, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
