package timeutil

import (
	"time"
)

// MSK is the Moscow Standard Time location (UTC+3)
var MSK *time.Location

func init() {
	var err error
	MSK, err = time.LoadLocation("Europe/Moscow")
	if err != nil {
		// Fallback: create fixed zone if Europe/Moscow not available
		MSK = time.FixedZone("MSK", 3*60*60)
	}
}

// Now returns the current time in MSK
func Now() time.Time {
	return time.Now().In(MSK)
}

// FormatRU renders t the way the ru locale prints a date-time: 23.02.2026, 09:14:00
func FormatRU(t time.Time) string {
	return t.In(MSK).Format(RULayout)
}

// Today returns the current MSK date as YYYY-MM-DD
func Today() string {
	return Now().Format(DateLayout)
}

// StartOfDay returns the start of day (00:00:00) in MSK for the given time
func StartOfDay(t time.Time) time.Time {
	m := t.In(MSK)
	return time.Date(m.Year(), m.Month(), m.Day(), 0, 0, 0, 0, MSK)
}

// Common layouts for MSK formatting
const (
	DateLayout = "2006-01-02"
	RULayout   = "02.01.2006, 15:04:05"
)
