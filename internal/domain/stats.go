package domain

import (
	"strings"
	"time"
)

// ChartDays is the number of day slots in the activity histogram
const ChartDays = 7

// Difficulty bucket indexes in ChartData.DifficultyData
const (
	BucketEasy = iota
	BucketMedium
	BucketHard
	BucketUnspecified
)

// Stats holds word counts over several windows
type Stats struct {
	TotalWords int64 `json:"totalWords"`
	TodayWords int64 `json:"todayWords"`
	Last7Days  int64 `json:"last7Days"`
	LastMonth  int64 `json:"lastMonth"`
	LastYear   int64 `json:"lastYear"`
}

// ChartData holds histogram data for the dashboard charts
type ChartData struct {
	TimeData       [ChartDays]int `json:"timeData"`
	DifficultyData [4]int         `json:"difficultyData"`
}

// DifficultyBucket maps a free-form difficulty level to a bucket index
func DifficultyBucket(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "easy":
		return BucketEasy
	case "medium":
		return BucketMedium
	case "hard":
		return BucketHard
	default:
		return BucketUnspecified
	}
}

// LastDays returns one Day per slot, oldest first; the last slot is today.
// Words older than ChartDays-1 days or dated in the future are not counted.
func LastDays(words []Word, now time.Time) []Day {
	today := StartOfDay(now)
	days := make([]Day, ChartDays)
	for i := range days {
		days[i].Date = today.AddDate(0, 0, i-(ChartDays-1))
	}

	for _, w := range words {
		diff := DaysBetween(w.AddedDate.In(now.Location()), now)
		if diff >= 0 && diff < ChartDays {
			days[ChartDays-1-diff].WordCount++
		}
	}
	return days
}

// BuildChart computes the activity and difficulty histograms for words
func BuildChart(words []Word, now time.Time) ChartData {
	var chart ChartData
	for i, d := range LastDays(words, now) {
		chart.TimeData[i] = d.WordCount
	}
	for _, w := range words {
		chart.DifficultyData[DifficultyBucket(w.DifficultyLevel)]++
	}
	return chart
}
