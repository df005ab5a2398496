package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"whirkplace/internal/models/request_models"
	"whirkplace/internal/services"
	"whirkplace/pkg/utils"
)

type WinController struct {
	winService services.WinServiceInterface
}

func NewWinController(winService services.WinServiceInterface) *WinController {
	return &WinController{winService: winService}
}

// Create godoc
// @Summary Post a win
// @Description Recognize a teammate with a shoutout
// @Tags Wins
// @Accept json
// @Produce json
// @Param request body request_models.CreateWinRequest true "Win payload"
// @Success 200 {object} utils.APIResponse
// @Router /wins [post]
func (ctl *WinController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateWinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	win, err := ctl.winService.CreateWin(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, win, "Win posted successfully")
}

func (ctl *WinController) Feed(c *gin.Context) {
	orgID, ok := currentOrgID(c)
	if !ok {
		return
	}
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	wins, err := ctl.winService.ListFeed(c.Request.Context(), orgID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, wins, "Wins fetched successfully")
}

func (ctl *WinController) React(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	winID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.ReactToWinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := ctl.winService.React(c.Request.Context(), userID, winID, req.Emoji); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Reaction added successfully")
}

func (ctl *WinController) Unreact(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	winID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.ReactToWinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := ctl.winService.Unreact(c.Request.Context(), userID, winID, req.Emoji); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Reaction removed successfully")
}
