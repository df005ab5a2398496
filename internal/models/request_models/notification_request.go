package request_models

// UpdatePreferencesRequest carries the full toggle matrix; every field must be
// present so a partial update can never silently reset a toggle.
type UpdatePreferencesRequest struct {
	CheckinReminderEmail *bool `json:"checkin_reminder_email" binding:"required"`
	CheckinReminderInApp *bool `json:"checkin_reminder_in_app" binding:"required"`
	CheckinReviewedEmail *bool `json:"checkin_reviewed_email" binding:"required"`
	CheckinReviewedInApp *bool `json:"checkin_reviewed_in_app" binding:"required"`
	NewCommentEmail      *bool `json:"new_comment_email" binding:"required"`
	NewCommentInApp      *bool `json:"new_comment_in_app" binding:"required"`
	NewWinEmail          *bool `json:"new_win_email" binding:"required"`
	NewWinInApp          *bool `json:"new_win_in_app" binding:"required"`
	KRAAssignedEmail     *bool `json:"kra_assigned_email" binding:"required"`
	KRAAssignedInApp     *bool `json:"kra_assigned_in_app" binding:"required"`
}
