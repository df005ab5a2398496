package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignUpRequest struct {
	DisplayName string `json:"display_name" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	OrgSlug     string `json:"org_slug" binding:"required"`
}

type RequestForgotPassword struct {
	Email string `json:"email" binding:"required,email"`
}

type ForgotPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
	Token       string `json:"token" binding:"required"`
}

type SetManagerRequest struct {
	AccountID string `json:"account_id" binding:"required,uuid4"`
	ManagerID string `json:"manager_id" binding:"omitempty,uuid4"`
}

type SetRoleRequest struct {
	AccountID string `json:"account_id" binding:"required,uuid4"`
	Role      string `json:"role" binding:"required,oneof=member manager admin"`
}
