package response_models

// OpenWeek is one still-submittable reporting week. Dates are YYYY-MM-DD.
type OpenWeek struct {
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`
	WeekOf    string `json:"week_of"`
	Label     string `json:"label"`
}

// SubmissionWindow is what the check-in form renders from: the current week as
// the primary call-to-action plus any missed weeks still inside the lookback.
type SubmissionWindow struct {
	CurrentWeek *OpenWeek  `json:"current_week,omitempty"`
	LateWeeks   []OpenWeek `json:"late_weeks"`
	OnVacation  bool       `json:"on_vacation"`
}
