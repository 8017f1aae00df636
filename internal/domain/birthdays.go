package domain

import (
	"slices"
	"strings"
	"time"
)

const (
	// UpcomingWindowDays is how far ahead UpcomingBirthdays looks.
	UpcomingWindowDays = 7

	// NoBirthdaysMessage is the rendering of an empty upcoming-birthday result.
	NoBirthdaysMessage = "No birthdays in the next week."

	day = 24 * time.Hour
)

// BirthdayGroup is the set of contacts congratulated on the same date.
type BirthdayGroup struct {
	Date  time.Time
	Names []string
}

// String renders "<Weekday>: <name1, name2>".
func (g BirthdayGroup) String() string {
	return g.Date.Weekday().String() + ": " + strings.Join(g.Names, ", ")
}

// FormatBirthdays renders groups one per line, or NoBirthdaysMessage when there are none.
func FormatBirthdays(groups []BirthdayGroup) string {
	if len(groups) == 0 {
		return NoBirthdaysMessage
	}

	lines := make([]string, len(groups))
	for i, g := range groups {
		lines[i] = g.String()
	}

	return strings.Join(lines, "\n")
}

// UpcomingBirthdays lists who to congratulate within the next UpcomingWindowDays days after today.
//
// Each birthday is projected onto today's year, or the next year if it has already passed.
// A projection landing on a weekend moves to the following Monday. Only dates strictly after
// today and at most UpcomingWindowDays away are kept. Groups come back in ascending date order;
// within a group names follow the book's name order.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []BirthdayGroup {
	today = calendarDate(today)

	var groups []BirthdayGroup

	index := make(map[time.Time]int)

	for _, r := range b.Records() {
		if r.Birthday == nil {
			continue
		}

		next := congratulationDate(*r.Birthday, today)

		delta := int(next.Sub(today) / day)
		if delta <= 0 || delta > UpcomingWindowDays {
			continue
		}

		i, ok := index[next]
		if !ok {
			i = len(groups)
			index[next] = i
			groups = append(groups, BirthdayGroup{Date: next})
		}

		groups[i].Names = append(groups[i].Names, r.Name.String())
	}

	sortGroups(groups)

	return groups
}

// congratulationDate applies the year rollover and then the weekend rollover.
// 29 February becomes 1 March in non-leap years.
func congratulationDate(birthday Birthday, today time.Time) time.Time {
	next := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	}

	switch next.Weekday() {
	case time.Saturday:
		next = next.AddDate(0, 0, 2)
	case time.Sunday:
		next = next.AddDate(0, 0, 1)
	}

	return next
}

// calendarDate drops the clock and zone from t, keeping its local calendar date.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sortGroups(groups []BirthdayGroup) {
	slices.SortFunc(groups, func(a, b BirthdayGroup) int { return a.Date.Compare(b.Date) })
}
