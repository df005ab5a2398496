package request_models

type CreateQuestionRequest struct {
	Text      string `json:"text" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

type UpdateQuestionRequest struct {
	Text     *string `json:"text"`
	IsActive *bool   `json:"is_active"`
}

type ReorderQuestionsRequest struct {
	QuestionIDs []string `json:"question_ids" binding:"required,min=1"`
}
