package handlers

import (
	"net/http"

	"lms-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseService *services.CourseService
}

func NewCourseHandler(courseService *services.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

type SetCourseStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected" example:"approved"`
}

// ListCourses godoc
// @Summary      List approved courses
// @Description  Browse the approved catalog with optional search/category/level filters
// @Tags         courses
// @Produce      json
// @Param        search query string false "Search in title and description"
// @Param        category query string false "Category filter"
// @Param        level query string false "Level filter"
// @Success      200 {array} Course
// @Router       /api/v1/courses [get]
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseService.ListCourses(services.CourseFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Level:    c.Query("level"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetCourse godoc
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Param        id path string true "Course ID"
// @Success      200 {object} Course
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/courses/{id} [get]
func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.courseService.GetCourse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, course)
}

// ListMyCourses godoc
// @Summary      List the instructor's own courses
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Course
// @Router       /api/v1/courses/my [get]
func (h *CourseHandler) ListMyCourses(c *gin.Context) {
	courses, err := h.courseService.ListInstructorCourses(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, courses)
}

// CreateCourse godoc
// @Summary      Create a course
// @Description  New courses start in pending state until an admin approves them
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.CreateCourseInput true "Course data"
// @Success      201 {object} Course
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/courses [post]
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var input services.CreateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	course, err := h.courseService.CreateCourse(c.GetString("user_id"), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, course)
}

// UpdateCourse godoc
// @Summary      Update a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Param        request body services.UpdateCourseInput true "Fields to update"
// @Success      200 {object} Course
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/courses/{id} [put]
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var input services.UpdateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	course, err := h.courseService.UpdateCourse(c.Param("id"), c.GetString("user_id"), input)
	if err != nil {
		status := http.StatusNotFound
		if err == services.ErrAccessDenied {
			status = http.StatusForbidden
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, course)
}

// ListPendingCourses godoc
// @Summary      List courses awaiting approval
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Course
// @Router       /api/v1/courses/pending [get]
func (h *CourseHandler) ListPendingCourses(c *gin.Context) {
	courses, err := h.courseService.ListPendingCourses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, courses)
}

// SetCourseStatus godoc
// @Summary      Approve or reject a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Param        request body SetCourseStatusRequest true "New status"
// @Success      200 {object} Course
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/courses/{id}/status [put]
func (h *CourseHandler) SetCourseStatus(c *gin.Context) {
	var req SetCourseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	course, err := h.courseService.SetCourseStatus(c.Param("id"), req.Status)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, course)
}

// Enroll godoc
// @Summary      Enroll in a course
// @Description  Enrolling twice is a no-op
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Success      201 {object} models.Enrollment
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/courses/{id}/enroll [post]
func (h *CourseHandler) Enroll(c *gin.Context) {
	enrollment, err := h.courseService.Enroll(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, enrollment)
}

// ListMyEnrollments godoc
// @Summary      List the student's enrollments
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Enrollment
// @Router       /api/v1/courses/my/enrollments [get]
func (h *CourseHandler) ListMyEnrollments(c *gin.Context) {
	enrollments, err := h.courseService.ListEnrollments(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, enrollments)
}
