package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"whirkplace/internal/models/request_models"
	"whirkplace/internal/services"
	"whirkplace/pkg/utils"
)

type QuestionController struct {
	questionService services.QuestionServiceInterface
}

func NewQuestionController(questionService services.QuestionServiceInterface) *QuestionController {
	return &QuestionController{questionService: questionService}
}

func (ctl *QuestionController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	orgID, ok := currentOrgID(c)
	if !ok {
		return
	}

	var req request_models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	question, err := ctl.questionService.CreateQuestion(c.Request.Context(), orgID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, question, "Question created successfully")
}

func (ctl *QuestionController) Update(c *gin.Context) {
	orgID, ok := currentOrgID(c)
	if !ok {
		return
	}
	questionID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	question, err := ctl.questionService.UpdateQuestion(c.Request.Context(), orgID, questionID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, question, "Question updated successfully")
}

func (ctl *QuestionController) Reorder(c *gin.Context) {
	orgID, ok := currentOrgID(c)
	if !ok {
		return
	}

	var req request_models.ReorderQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := ctl.questionService.Reorder(c.Request.Context(), orgID, req.QuestionIDs); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Questions reordered successfully")
}

func (ctl *QuestionController) ListActive(c *gin.Context) {
	orgID, ok := currentOrgID(c)
	if !ok {
		return
	}

	questions, err := ctl.questionService.ListActive(c.Request.Context(), orgID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, questions, "Questions fetched successfully")
}

func (ctl *QuestionController) ListAll(c *gin.Context) {
	orgID, ok := currentOrgID(c)
	if !ok {
		return
	}

	questions, err := ctl.questionService.ListAll(c.Request.Context(), orgID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, questions, "Questions fetched successfully")
}
