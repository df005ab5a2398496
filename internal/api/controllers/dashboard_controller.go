package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	resp "whirkplace/internal/models/response_models"
	"whirkplace/internal/services"
	"whirkplace/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Get godoc
// @Summary Organization dashboard
// @Description Mood trend, completion rates and headline counts for a date range
// @Tags Dashboard
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} utils.APIResponse
// @Router /dashboard [get]
func (ctl *DashboardController) Get(c *gin.Context) {
	orgID, ok := currentOrgID(c)
	if !ok {
		return
	}

	var rng resp.TimeRange
	if startStr := c.Query("start"); startStr != "" {
		start, err := utils.ParseWeekOf(startStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid start date")
			return
		}
		rng.Start = start
	}
	if endStr := c.Query("end"); endStr != "" {
		end, err := utils.ParseWeekOf(endStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid end date")
			return
		}
		rng.End = end
	}
	report, err := ctl.dashboardService.BuildDashboard(c.Request.Context(), orgID, rng)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard fetched successfully")
}
