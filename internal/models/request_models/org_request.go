package request_models

type CreateOrganizationRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Slug       string `json:"slug" binding:"required,min=2,max=50,lowercase"`
	AdminName  string `json:"admin_name" binding:"required,min=3,max=50"`
	AdminEmail string `json:"admin_email" binding:"required,email"`
	AdminPass  string `json:"admin_password" binding:"required,min=6"`
}
