package handlers

import (
	"net/http"

	"lms-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type GenerateHandler struct {
	generateService *services.GenerateService
}

func NewGenerateHandler(generateService *services.GenerateService) *GenerateHandler {
	return &GenerateHandler{generateService: generateService}
}

type GenerateRequest struct {
	Topic string `json:"topic" binding:"required,min=3" example:"Basics of Go concurrency"`
	Count int    `json:"count" example:"5"`
}

type GenerateStatusResponse struct {
	Available bool `json:"available"`
}

// CheckGenerate godoc
// @Summary      Check whether question generation is configured
// @Tags         generate
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} GenerateStatusResponse
// @Router       /api/v1/generate/status [get]
func (h *GenerateHandler) CheckGenerate(c *gin.Context) {
	c.JSON(http.StatusOK, GenerateStatusResponse{Available: h.generateService.IsAvailable()})
}

// Generate godoc
// @Summary      Draft quiz questions from a topic
// @Description  Returns draft multiple-choice questions for instructor review; nothing is saved
// @Tags         generate
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GenerateRequest true "Topic"
// @Success      200 {array} Question
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/generate [post]
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	questions, err := h.generateService.DraftQuestions(c.Request.Context(), req.Topic, req.Count)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, questions)
}
