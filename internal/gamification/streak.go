package gamification

import (
	"sort"
	"time"
)

// civilDay maps a local calendar date to a day number so that day gaps are
// immune to DST shifts.
func civilDay(t time.Time, loc *time.Location) int64 {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// Streak counts consecutive calendar days with activity, ending today or
// yesterday in loc. A gap of more than one day before the latest activity
// resets the streak to zero.
func Streak(timestamps []time.Time, now time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}

	seen := make(map[int64]bool, len(timestamps))
	days := make([]int64, 0, len(timestamps))
	for _, ts := range timestamps {
		if ts.IsZero() {
			continue
		}
		d := civilDay(ts, loc)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i] > days[j] })

	today := civilDay(now, loc)
	if days[0] != today && days[0] != today-1 {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if days[i-1]-days[i] != 1 {
			break
		}
		streak++
	}
	return streak
}
