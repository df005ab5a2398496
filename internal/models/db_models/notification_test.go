package db_models

import "testing"

func TestPreferenceAllows(t *testing.T) {
	pref := &NotificationPreference{
		CheckinReviewedEmail: true,
		CheckinReviewedInApp: false,
		NewCommentEmail:      false,
		NewCommentInApp:      true,
		NewWinInApp:          true,
	}

	cases := []struct {
		name  string
		kind  NotificationKind
		email bool
		want  bool
	}{
		{"reviewed on email", NotifyCheckinReviewed, true, true},
		{"reviewed in app", NotifyCheckinReviewed, false, false},
		{"comment on email", NotifyNewComment, true, false},
		{"comment in app", NotifyNewComment, false, true},
		{"win on email", NotifyNewWin, true, false},
		{"win in app", NotifyNewWin, false, true},
		{"kra on either channel", NotifyKRAAssigned, true, false},
		{"unknown kind", NotificationKind("promo"), true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := pref.Allows(tc.kind, tc.email); got != tc.want {
				t.Fatalf("Allows(%s, email=%v) = %v, want %v", tc.kind, tc.email, got, tc.want)
			}
		})
	}
}
