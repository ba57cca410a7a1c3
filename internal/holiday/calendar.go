package holiday

import "time"

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Calendar answers working-day questions for a fixed set of public holidays.
// Saturdays and Sundays are never working days.
type Calendar struct {
	holidays map[string]struct{}
}

func NewCalendar(dates ...time.Time) Calendar {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[DateOnly(d).Format(DateLayout)] = struct{}{}
	}
	return Calendar{holidays: set}
}

func (c Calendar) IsWorkingDay(d time.Time) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	_, holiday := c.holidays[DateOnly(d).Format(DateLayout)]
	return !holiday
}

// WorkingDays counts working days in the inclusive range [start, end].
func (c Calendar) WorkingDays(start, end time.Time) int {
	start, end = DateOnly(start), DateOnly(end)
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if c.IsWorkingDay(d) {
			count++
		}
	}
	return count
}

// WorkingDateOffset returns the date of the days-th working day counted from
// start, start included when it is a working day. days <= 0 returns start.
func (c Calendar) WorkingDateOffset(start time.Time, days int) time.Time {
	d := DateOnly(start)
	if days <= 0 {
		return d
	}
	for !c.IsWorkingDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	for counted := 1; counted < days; {
		d = d.AddDate(0, 0, 1)
		if c.IsWorkingDay(d) {
			counted++
		}
	}
	return d
}
