package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"whirkplace/internal/services"
	"whirkplace/pkg/utils"
)

type InsightController struct {
	insightService services.InsightServiceInterface
}

func NewInsightController(insightService services.InsightServiceInterface) *InsightController {
	return &InsightController{insightService: insightService}
}

func (ctl *InsightController) WeeklyDigest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	weekOf := utils.CanonicalWeekOf(time.Now())
	if weekStr := c.Query("week_of"); weekStr != "" {
		parsed, err := utils.ParseWeekOf(weekStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid week_of date")
			return
		}
		weekOf = parsed
	}

	digest, err := ctl.insightService.WeeklyDigest(c.Request.Context(), userID, weekOf)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"digest": digest}, "Digest generated successfully")
}
