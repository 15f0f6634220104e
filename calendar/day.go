package calendar

import "time"

// NormalizeDay returns a copy of t with the time of day zeroed,
// keeping the same calendar day and location.
func NormalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey collapses t to a comparable key for its calendar day
// (yyyymmdd as an int). Skip-list membership is tested with this key,
// never with Time equality, so stored values do not need to share a
// location or monotonic reading.
func DayKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// StartOfWeek returns the Monday of the week containing t, normalized
// to midnight. Weeks start on Monday, so a Sunday maps 6 days back.
func StartOfWeek(t time.Time) time.Time {
	day := int(t.Weekday()) // Sunday=0 .. Saturday=6
	diff := 1 - day
	if day == 0 {
		diff = -6
	}
	return NormalizeDay(t.AddDate(0, 0, diff))
}

// DaysInWeek returns the 7 normalized days of the week containing t,
// Monday through Sunday.
func DaysInWeek(t time.Time) []time.Time {
	monday := StartOfWeek(t)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// atTimeOfDay combines the calendar date of day with the clock time of tod.
func atTimeOfDay(day, tod time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), tod.Nanosecond(), tod.Location())
}

// containsDay reports whether days holds the calendar day identified by key.
func containsDay(days []time.Time, key int) bool {
	for _, d := range days {
		if DayKey(d) == key {
			return true
		}
	}
	return false
}
