package app

import (
	"strconv"
	"strings"
	"time"
)

// birthdayLayouts lists the textual date representations accepted in the
// birthday column, tried in order.
var birthdayLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02.01.2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// excelEpoch is day zero of the 1900 date system used by xlsx serial values.
// December 30, 1899 absorbs the spreadsheet lineage's fictitious 1900 leap day.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseBirthday extracts the calendar date from a raw cell value. It accepts
// the layouts above as well as raw Excel serial day numbers, and returns nil
// for empty or unrecognizable input. It never fails to the caller; a contact
// without a parseable birthday is simply skipped.
func ParseBirthday(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range birthdayLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial > 0 {
		d := excelEpoch.AddDate(0, 0, int(serial))
		return &d
	}
	return nil
}

// IsBirthdayToday reports whether the birthday's month and day match the
// given instant as seen in the named timezone. An empty or unrecognized zone
// name silently resolves to UTC. The year component of the birthday is
// ignored, so a Feb 29 birthday only matches in leap years.
func IsBirthdayToday(bday time.Time, tzName string, now time.Time) bool {
	loc := time.UTC
	if tzName != "" {
		if parsed, err := time.LoadLocation(tzName); err == nil {
			loc = parsed
		}
	}
	local := now.In(loc)
	return bday.Month() == local.Month() && bday.Day() == local.Day()
}
