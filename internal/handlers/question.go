package handlers

import (
	"net/http"

	"lms-backend/internal/models"
	"lms-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	catalog *services.CatalogService
}

func NewQuestionHandler(catalog *services.CatalogService) *QuestionHandler {
	return &QuestionHandler{catalog: catalog}
}

// AddQuestion godoc
// @Summary      Add a question to a quiz
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quiz ID"
// @Param        request body Question true "Question data"
// @Success      201 {object} Question
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id}/questions [post]
func (h *QuestionHandler) AddQuestion(c *gin.Context) {
	var question models.Question
	if err := c.ShouldBindJSON(&question); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := question.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.catalog.FetchQuizzes()
	created, err := h.catalog.AddQuestion(c.Param("id"), question)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateQuestion godoc
// @Summary      Update a question
// @Description  Replaces the question content, keeping its id
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quiz ID"
// @Param        questionId path string true "Question ID"
// @Param        request body Question true "Question data"
// @Success      200 {object} Question
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id}/questions/{questionId} [put]
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var question models.Question
	if err := c.ShouldBindJSON(&question); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := question.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.catalog.FetchQuizzes()
	updated, err := h.catalog.UpdateQuestion(c.Param("id"), c.Param("questionId"), question)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quiz ID"
// @Param        questionId path string true "Question ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id}/questions/{questionId} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	h.catalog.FetchQuizzes()
	if err := h.catalog.DeleteQuestion(c.Param("id"), c.Param("questionId")); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "question deleted"})
}
