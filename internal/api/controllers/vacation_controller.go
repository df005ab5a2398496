package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"whirkplace/internal/models/request_models"
	"whirkplace/internal/services"
	"whirkplace/pkg/utils"
)

type VacationController struct {
	vacationService services.VacationServiceInterface
}

func NewVacationController(vacationService services.VacationServiceInterface) *VacationController {
	return &VacationController{vacationService: vacationService}
}

func (ctl *VacationController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateVacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	vacation, err := ctl.vacationService.CreateVacation(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vacation, "Vacation created successfully")
}

func (ctl *VacationController) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	vacations, err := ctl.vacationService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vacations, "Vacations fetched successfully")
}

func (ctl *VacationController) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	vacationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.vacationService.DeleteVacation(c.Request.Context(), vacationID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Vacation deleted successfully")
}
