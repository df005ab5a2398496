package response_models

type LoginResponse struct {
	Token string `json:"token"`
}

type AccountResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	OrgID     string  `json:"org_id"`
	ManagerID *string `json:"manager_id,omitempty"`
}

type OrgStatsResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Status        string `json:"status"`
	MemberCount  int64  `json:"member_count"`
	CheckinCount int64  `json:"checkin_count"`
	PendingCount int64  `json:"pending_count"`
}
