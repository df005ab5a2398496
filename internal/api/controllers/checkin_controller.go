package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"whirkplace/internal/models/request_models"
	"whirkplace/internal/services"
	"whirkplace/pkg/utils"
)

type CheckinController struct {
	checkinService services.CheckinServiceInterface
}

func NewCheckinController(checkinService services.CheckinServiceInterface) *CheckinController {
	return &CheckinController{checkinService: checkinService}
}

// GetWindow godoc
// @Summary Get the submission window
// @Description List the current week plus any missed weeks still open for late submission
// @Tags Checkins
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /checkins/window [get]
func (ctl *CheckinController) GetWindow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	window, err := ctl.checkinService.OpenWeeks(c.Request.Context(), userID, time.Now(), utils.DefaultLookbackWeeks)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, window, "Submission window fetched successfully")
}

// Submit godoc
// @Summary Submit a check-in
// @Tags Checkins
// @Accept json
// @Produce json
// @Param request body request_models.SubmitCheckinRequest true "Check-in payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /checkins [post]
func (ctl *CheckinController) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.SubmitCheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	checkin, err := ctl.checkinService.SubmitCheckin(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkin, "Check-in submitted successfully")
}

func (ctl *CheckinController) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	checkins, err := ctl.checkinService.History(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkins, "History fetched successfully")
}

func (ctl *CheckinController) ReportHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	reportID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	checkins, err := ctl.checkinService.HistoryForReport(c.Request.Context(), userID, reportID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkins, "History fetched successfully")
}

func (ctl *CheckinController) Pending(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	checkins, err := ctl.checkinService.PendingForManager(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkins, "Pending check-ins fetched successfully")
}

// Review godoc
// @Summary Review a pending check-in
// @Description Approve or reject a check-in; rejections require a comment
// @Tags Checkins
// @Accept json
// @Produce json
// @Param id path string true "Check-in ID"
// @Param request body request_models.ReviewCheckinRequest true "Review payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /checkins/{id}/review [post]
func (ctl *CheckinController) Review(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	checkinID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.ReviewCheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	checkin, err := ctl.checkinService.Review(c.Request.Context(), userID, checkinID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkin, "Check-in reviewed successfully")
}

func (ctl *CheckinController) AddComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	checkinID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	comment, err := ctl.checkinService.AddComment(c.Request.Context(), userID, checkinID, req.Content)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comment, "Comment added successfully")
}

func (ctl *CheckinController) ListComments(c *gin.Context) {
	checkinID, ok := pathID(c, "id")
	if !ok {
		return
	}

	comments, err := ctl.checkinService.ListComments(c.Request.Context(), checkinID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comments, "Comments fetched successfully")
}

func (ctl *CheckinController) UpdateComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	var req request_models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	comment, err := ctl.checkinService.UpdateComment(c.Request.Context(), userID, commentID, req.Content)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comment, "Comment updated successfully")
}

func (ctl *CheckinController) DeleteComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	if err := ctl.checkinService.DeleteComment(c.Request.Context(), userID, commentID, isAdmin(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Comment deleted successfully")
}
