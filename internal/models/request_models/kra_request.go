package request_models

type KRAItemInput struct {
	Title  string `json:"title" binding:"required"`
	Weight int    `json:"weight" binding:"required,min=1,max=100"`
}

type CreateKRATemplateRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Items       []KRAItemInput `json:"items" binding:"required,min=1,dive"`
}

type UpdateKRATemplateRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Items       []KRAItemInput `json:"items" binding:"omitempty,min=1,dive"`
}

type AssignKRARequest struct {
	UserID  string `json:"user_id" binding:"required,uuid4"`
	DueDate string `json:"due_date"`
}

type UpdateKRAStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=assigned in_progress completed"`
}
