package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"whirkplace/internal/models/db_models"
	"whirkplace/internal/models/request_models"
	"whirkplace/internal/services"
	"whirkplace/pkg/utils"
)

type KRAController struct {
	kraService services.KRAServiceInterface
}

func NewKRAController(kraService services.KRAServiceInterface) *KRAController {
	return &KRAController{kraService: kraService}
}

func (ctl *KRAController) CreateTemplate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	orgID, ok := currentOrgID(c)
	if !ok {
		return
	}

	var req request_models.CreateKRATemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	template, err := ctl.kraService.CreateTemplate(c.Request.Context(), orgID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, template, "KRA template created successfully")
}

func (ctl *KRAController) UpdateTemplate(c *gin.Context) {
	orgID, ok := currentOrgID(c)
	if !ok {
		return
	}
	templateID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateKRATemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	template, err := ctl.kraService.UpdateTemplate(c.Request.Context(), orgID, templateID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, template, "KRA template updated successfully")
}

func (ctl *KRAController) DeleteTemplate(c *gin.Context) {
	orgID, ok := currentOrgID(c)
	if !ok {
		return
	}
	templateID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.kraService.DeleteTemplate(c.Request.Context(), orgID, templateID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "KRA template deleted successfully")
}

func (ctl *KRAController) ListTemplates(c *gin.Context) {
	orgID, ok := currentOrgID(c)
	if !ok {
		return
	}

	templates, err := ctl.kraService.ListTemplates(c.Request.Context(), orgID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, templates, "KRA templates fetched successfully")
}

func (ctl *KRAController) Assign(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	orgID, ok := currentOrgID(c)
	if !ok {
		return
	}
	templateID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.AssignKRARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	assignment, err := ctl.kraService.Assign(c.Request.Context(), orgID, userID, templateID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, assignment, "KRA assigned successfully")
}

func (ctl *KRAController) UpdateStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	assignmentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateKRAStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	assignment, err := ctl.kraService.UpdateStatus(c.Request.Context(), userID, assignmentID, db_models.KRAAssignmentStatus(req.Status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, assignment, "KRA status updated successfully")
}

func (ctl *KRAController) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	assignments, err := ctl.kraService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, assignments, "KRA assignments fetched successfully")
}
