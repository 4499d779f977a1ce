package progress

import "time"

// CalendarDay is one cell of the monthly activity calendar.
type CalendarDay struct {
	Date    time.Time
	Day     int
	Minutes int
	InMonth bool
}

// BuildCalendar lays out a month as full weeks of day cells, Monday first.
// Cells belonging to the previous or next month are padding and marked with
// InMonth=false. The minutes map comes from the per-date aggregation.
func BuildCalendar(year int, month time.Month, minutes map[time.Time]int) [][]CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	// rewind to the Monday on or before the first of the month
	cursor := first.AddDate(0, 0, -mondayOffset(first.Weekday()))

	var weeks [][]CalendarDay
	for cursor.Before(first.AddDate(0, 1, 0)) {
		week := make([]CalendarDay, 7)
		for i := range week {
			week[i] = CalendarDay{
				Date:    cursor,
				Day:     cursor.Day(),
				Minutes: minutes[cursor],
				InMonth: cursor.Month() == month && cursor.Year() == year,
			}
			cursor = cursor.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

func mondayOffset(d time.Weekday) int {
	if d == time.Sunday {
		return 6
	}
	return int(d - time.Monday)
}
