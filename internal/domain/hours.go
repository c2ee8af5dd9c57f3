package domain

import "fmt"

// Clock12 is an hour on a 12-hour dial.
type Clock12 struct {
	Hour   int    `json:"hour"`   // 1..12
	Period string `json:"period"` // "AM" or "PM"
}

// To12Hour converts a 24-hour clock hour (0..23) to its 12-hour form.
func To12Hour(hour24 int) Clock12 {
	switch {
	case hour24 == 0:
		return Clock12{Hour: 12, Period: "AM"}
	case hour24 == 12:
		return Clock12{Hour: 12, Period: "PM"}
	case hour24 < 12:
		return Clock12{Hour: hour24, Period: "AM"}
	default:
		return Clock12{Hour: hour24 - 12, Period: "PM"}
	}
}

// To24Hour is the exact inverse of To12Hour for every hour in [0,23].
func To24Hour(hour12 int, period string) int {
	if period == "PM" && hour12 < 12 {
		return hour12 + 12
	}
	if period == "AM" && hour12 == 12 {
		return 0
	}
	return hour12
}

// String renders the hour the way the settings screen shows it, e.g. "8 AM".
func (c Clock12) String() string {
	return fmt.Sprintf("%d %s", c.Hour, c.Period)
}
