package request_models

type SubmitCheckinRequest struct {
	WeekOf      string            `json:"week_of" binding:"required"`
	OverallMood int               `json:"overall_mood" binding:"required"`
	Responses   map[string]string `json:"responses" binding:"required"`
}

type ReviewCheckinRequest struct {
	Outcome          string            `json:"outcome" binding:"required,oneof=approve reject"`
	Comments         string            `json:"comments"`
	ResponseComments map[string]string `json:"response_comments"`
	ResponseFlags    map[string]ResponseFlagsInput `json:"response_flags"`
}

type ResponseFlagsInput struct {
	AddToOneOnOne   bool `json:"add_to_one_on_one"`
	FlagForFollowUp bool `json:"flag_for_follow_up"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
