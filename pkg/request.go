package pkg

import (
	"net/url"
	"strconv"
	"time"
)

const DateLayout = "2006-01-02"

// ParseTimeQueryParam reads an optional RFC3339 or YYYY-MM-DD query param.
// Missing param yields nil.
func ParseTimeQueryParam(query url.Values, name string) (*time.Time, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, NewValidationError(name, "must be RFC3339 or YYYY-MM-DD")
	}
	return &t, nil
}

// ParseIntQueryParam reads an optional integer query param, falling back to def.
func ParseIntQueryParam(query url.Values, name string, def int) (int, error) {
	raw := query.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewValidationError(name, "must be an integer")
	}
	return v, nil
}
