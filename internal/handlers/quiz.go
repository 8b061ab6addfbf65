package handlers

import (
	"net/http"

	"lms-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	catalog  *services.CatalogService
	attempts *services.AttemptService
}

func NewQuizHandler(catalog *services.CatalogService, attempts *services.AttemptService) *QuizHandler {
	return &QuizHandler{catalog: catalog, attempts: attempts}
}

// ListQuizzes godoc
// @Summary      List all quizzes
// @Description  Load the full quiz catalog from durable storage
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Quiz
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/quizzes [get]
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.FetchQuizzes())
}

// CreateQuiz godoc
// @Summary      Create a quiz
// @Description  Create a quiz with defaults applied to unset settings
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.CreateQuizInput true "Quiz data"
// @Success      201 {object} Quiz
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/quizzes [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var input services.CreateQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if input.Title == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "title is required"})
		return
	}
	for _, q := range input.Questions {
		if err := q.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	c.JSON(http.StatusCreated, h.catalog.CreateQuiz(input))
}

// GetQuiz godoc
// @Summary      Get a quiz
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quiz ID"
// @Success      200 {object} Quiz
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	h.catalog.FetchQuizzes()
	quiz, err := h.catalog.FetchQuizByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// UpdateQuiz godoc
// @Summary      Update a quiz
// @Description  Field-by-field merge; partial settings patches touch only the named fields
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quiz ID"
// @Param        request body services.UpdateQuizInput true "Fields to update"
// @Success      200 {object} Quiz
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id} [put]
func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	var input services.UpdateQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if input.Questions != nil {
		for _, q := range *input.Questions {
			if err := q.Validate(); err != nil {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
				return
			}
		}
	}

	h.catalog.FetchQuizzes()
	quiz, err := h.catalog.UpdateQuiz(c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// DeleteQuiz godoc
// @Summary      Delete a quiz
// @Description  Removes the quiz; stored results keep their snapshots
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quiz ID"
// @Success      200 {object} MessageResponse
// @Router       /api/v1/quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	h.catalog.FetchQuizzes()
	h.catalog.DeleteQuiz(c.Param("id"))
	c.JSON(http.StatusOK, MessageResponse{Message: "quiz deleted"})
}

// GetQuizResults godoc
// @Summary      List results for a quiz
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quiz ID"
// @Success      200 {array} Result
// @Router       /api/v1/quizzes/{id}/results [get]
func (h *QuizHandler) GetQuizResults(c *gin.Context) {
	c.JSON(http.StatusOK, h.attempts.FetchQuizResults(c.Param("id")))
}
