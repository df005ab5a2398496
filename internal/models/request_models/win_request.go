package request_models

type CreateWinRequest struct {
	RecipientID string   `json:"recipient_id" binding:"required,uuid4"`
	Content     string   `json:"content" binding:"required"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

type ReactToWinRequest struct {
	Emoji string `json:"emoji" binding:"required,max=16"`
}
