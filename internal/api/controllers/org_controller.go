package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"whirkplace/internal/models/request_models"
	"whirkplace/internal/services"
	"whirkplace/pkg/utils"
)

type OrgController struct {
	orgService services.OrgServiceInterface
}

func NewOrgController(orgService services.OrgServiceInterface) *OrgController {
	return &OrgController{orgService: orgService}
}

func (ctl *OrgController) Create(c *gin.Context) {
	var req request_models.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	org, err := ctl.orgService.CreateOrganization(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, org, "Organization created successfully")
}

func (ctl *OrgController) List(c *gin.Context) {
	orgs, err := ctl.orgService.ListOrganizations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, orgs, "Organizations fetched successfully")
}

func (ctl *OrgController) Suspend(c *gin.Context) {
	orgID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.orgService.Suspend(c.Request.Context(), orgID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Organization suspended")
}

func (ctl *OrgController) Activate(c *gin.Context) {
	orgID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.orgService.Activate(c.Request.Context(), orgID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Organization activated")
}
