// Package timeutil holds the studio's local time zone and day boundaries.
package timeutil

import (
	"time"
)

// DefaultZone is the IANA name of the studio's time zone.
const DefaultZone = "Asia/Colombo"

// Location is the zone used for day boundaries and printed timestamps.
var Location = loadLocation(DefaultZone)

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		// tzdata may be missing on minimal hosts.
		return time.FixedZone("+0530", 5*60*60+30*60)
	}

	return loc
}

// SetZone switches Location to the named zone, falling back to +05:30.
func SetZone(name string) {
	if name == "" {
		name = DefaultZone
	}

	Location = loadLocation(name)
}

// Now returns the current time in the studio zone.
func Now() time.Time {
	return time.Now().In(Location)
}

// Local converts t into the studio zone.
func Local(t time.Time) time.Time {
	return t.In(Location)
}

// StartOfDay returns 00:00:00 of t's day in the studio zone.
func StartOfDay(t time.Time) time.Time {
	l := t.In(Location)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, Location)
}

// EndOfDay returns the last nanosecond of t's day in the studio zone.
func EndOfDay(t time.Time) time.Time {
	l := t.In(Location)
	return time.Date(l.Year(), l.Month(), l.Day(), 23, 59, 59, 999999999, Location)
}

// ParseDate parses a YYYY-MM-DD date in the studio zone.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, Location)
}

const (
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04"
	DateTimeLayout = "2006-01-02 15:04:05"
	StampLayout    = "20060102150405"
)
