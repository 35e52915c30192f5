package service

import (
	"sort"
	"time"
)

// dayOf truncates t to midnight of its calendar day in loc.
func dayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// distinctDays returns the calendar days that have at least one timestamp, newest first.
func distinctDays(timestamps []time.Time, loc *time.Location) []time.Time {
	seen := make(map[time.Time]struct{}, len(timestamps))
	days := make([]time.Time, 0, len(timestamps))
	for _, ts := range timestamps {
		day := dayOf(ts, loc)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}

// CurrentStreak counts consecutive calendar days with entries, ending on now's day.
// No entry today means no streak.
func CurrentStreak(timestamps []time.Time, now time.Time) int {
	loc := now.Location()
	days := distinctDays(timestamps, loc)
	expected := dayOf(now, loc)
	streak := 0
	for _, day := range days {
		if day.After(expected) {
			// entries dated in the future don't break or extend the walk
			continue
		}
		if !day.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak is the longest run of consecutive calendar days with entries.
func LongestStreak(timestamps []time.Time, loc *time.Location) int {
	days := distinctDays(timestamps, loc)
	if len(days) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, -1)) {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}
