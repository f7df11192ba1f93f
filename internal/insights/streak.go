package insights

import (
	"sort"
	"time"

	"memorycompanion/internal/model"
)

const (
	dateLayout   = "2006-01-02"
	calendarDays = 365
	maxIntensity = 4
)

// Day truncates t to its UTC calendar date.
func Day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DailyActivity buckets reflections by the UTC date of created_at.
func DailyActivity(reflections []model.Reflection) map[string]int {
	activity := make(map[string]int)
	for _, r := range reflections {
		activity[Day(r.CreatedAt).Format(dateLayout)]++
	}
	return activity
}

// Streaks derives current and longest streaks plus the trailing-year calendar
// ending at today (inclusive).
func Streaks(activity map[string]int, today time.Time) model.StreakStats {
	today = Day(today)
	return model.StreakStats{
		CurrentStreak:   currentStreak(activity, today),
		LongestStreak:   longestStreak(activity),
		TotalActiveDays: len(activity),
		CalendarData:    calendar(activity, today),
	}
}

func currentStreak(activity map[string]int, today time.Time) int {
	start := today
	if activity[today.Format(dateLayout)] == 0 {
		start = today.AddDate(0, 0, -1)
		if activity[start.Format(dateLayout)] == 0 {
			return 0
		}
	}

	streak := 1
	for d := start.AddDate(0, 0, -1); activity[d.Format(dateLayout)] > 0; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

func longestStreak(activity map[string]int) int {
	if len(activity) == 0 {
		return 0
	}

	dates := make([]time.Time, 0, len(activity))
	for k := range activity {
		d, err := time.Parse(dateLayout, k)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return 0
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if dates[i].Sub(dates[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func calendar(activity map[string]int, today time.Time) []model.CalendarDay {
	days := make([]model.CalendarDay, 0, calendarDays)
	for i := calendarDays - 1; i >= 0; i-- {
		key := today.AddDate(0, 0, -i).Format(dateLayout)
		count := activity[key]
		days = append(days, model.CalendarDay{
			Date:      key,
			Count:     count,
			Intensity: min(count, maxIntensity),
		})
	}
	return days
}
