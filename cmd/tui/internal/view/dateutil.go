package view

import (
	"errors"
	"strings"
	"time"

	"github.com/shineart/studiopos/internal/timeutil"
)

// ParseDay reads the report day typed into a form. Besides YYYY-MM-DD it
// accepts "today", "yesterday" and an empty string for today.
func ParseDay(input string, now time.Time) (time.Time, error) {
	switch s := strings.ToLower(strings.TrimSpace(input)); s {
	case "", "today":
		return timeutil.StartOfDay(now), nil
	case "yesterday":
		return timeutil.StartOfDay(now).AddDate(0, 0, -1), nil
	default:
		day, err := timeutil.ParseDate(s)
		if err != nil {
			return time.Time{}, errors.New("use YYYY-MM-DD, today or yesterday")
		}

		return day, nil
	}
}
