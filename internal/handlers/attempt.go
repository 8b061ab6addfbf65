package handlers

import (
	"errors"
	"net/http"

	"lms-backend/internal/services"
	"lms-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	catalog  *services.CatalogService
	attempts *services.AttemptService
	hub      *ws.Hub
}

func NewAttemptHandler(catalog *services.CatalogService, attempts *services.AttemptService, hub *ws.Hub) *AttemptHandler {
	return &AttemptHandler{catalog: catalog, attempts: attempts, hub: hub}
}

type StartAttemptRequest struct {
	QuizID string `json:"quiz_id" binding:"required"`
}

type RecordAnswerRequest struct {
	QuestionID string      `json:"question_id" binding:"required"`
	Answer     interface{} `json:"answer"`
}

// StartAttempt godoc
// @Summary      Start a quiz attempt
// @Description  Opens an attempt for the authenticated student; an attempt already in progress is discarded
// @Tags         attempts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body StartAttemptRequest true "Quiz to attempt"
// @Success      201 {object} Attempt
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/attempts/start [post]
func (h *AttemptHandler) StartAttempt(c *gin.Context) {
	studentID := c.GetString("user_id")

	var req StartAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.catalog.FetchQuizzes()

	remaining, unlimited, err := h.attempts.AttemptsRemaining(req.QuizID, studentID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	if !unlimited && remaining == 0 {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "no attempts remaining for this quiz"})
		return
	}

	attempt, err := h.attempts.StartAttempt(req.QuizID, studentID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, attempt)
}

// RecordAnswer godoc
// @Summary      Record an answer
// @Description  Upserts the answer for a question in the live attempt; last write wins
// @Tags         attempts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body RecordAnswerRequest true "Answer"
// @Success      200 {object} MessageResponse
// @Router       /api/v1/attempts/answer [post]
func (h *AttemptHandler) RecordAnswer(c *gin.Context) {
	studentID := c.GetString("user_id")

	var req RecordAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.attempts.RecordAnswer(studentID, req.QuestionID, req.Answer)
	c.JSON(http.StatusOK, MessageResponse{Message: "answer recorded"})
}

// SubmitQuiz godoc
// @Summary      Submit the live attempt
// @Description  Scores the attempt, persists the result and updates quiz stats
// @Tags         attempts
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Result
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/attempts/submit [post]
func (h *AttemptHandler) SubmitQuiz(c *gin.Context) {
	studentID := c.GetString("user_id")

	h.catalog.FetchQuizzes()
	result, err := h.attempts.SubmitQuiz(studentID)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveAttempt) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(result.QuizID, ws.WSMessage{Type: "result.submitted", Data: result})
	c.JSON(http.StatusOK, result)
}

// GetMyResults godoc
// @Summary      List the authenticated student's results
// @Tags         attempts
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Result
// @Router       /api/v1/attempts/results [get]
func (h *AttemptHandler) GetMyResults(c *gin.Context) {
	c.JSON(http.StatusOK, h.attempts.FetchStudentResults(c.GetString("user_id")))
}
