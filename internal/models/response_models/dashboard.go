package response_models

import "time"

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type MoodPoint struct {
	WeekOf  string  `json:"week_of"`
	AvgMood float64 `json:"avg_mood"`
	Count   int64   `json:"count"`
}

type CompletionPoint struct {
	WeekOf    string  `json:"week_of"`
	Submitted int64   `json:"submitted"`
	Expected  int64   `json:"expected"`
	Rate      float64 `json:"rate"`
}

type DashboardReport struct {
	Range          TimeRange         `json:"range"`
	MoodTrend      []MoodPoint       `json:"mood_trend"`
	Completion     []CompletionPoint `json:"completion"`
	PendingReviews int64             `json:"pending_reviews"`
	WinsPosted     int64             `json:"wins_posted"`
	ActiveMembers  int64             `json:"active_members"`
}
