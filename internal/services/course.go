package services

import (
	"errors"
	"time"

	"lms-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseService struct {
	db *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{db: db}
}

type CourseFilter struct {
	Search   string
	Category string
	Level    string
}

type CreateCourseInput struct {
	Title       string `json:"title" binding:"required,min=5,max=100"`
	Description string `json:"description" binding:"required,min=20,max=1000"`
	Category    string `json:"category"`
	Level       string `json:"level"`
}

type UpdateCourseInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Level       *string `json:"level"`
}

// ListCourses returns approved courses matching the filter, newest first.
func (s *CourseService) ListCourses(filter CourseFilter) ([]models.Course, error) {
	q := s.db.Where("status = ?", models.CourseStatusApproved)
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Level != "" {
		q = q.Where("level = ?", filter.Level)
	}

	var courses []models.Course
	if err := q.Order("created_at DESC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// ListInstructorCourses returns all of one instructor's courses, any status.
func (s *CourseService) ListInstructorCourses(instructorID string) ([]models.Course, error) {
	var courses []models.Course
	err := s.db.Where("instructor_id = ?", instructorID).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// ListPendingCourses returns courses awaiting admin approval.
func (s *CourseService) ListPendingCourses() ([]models.Course, error) {
	var courses []models.Course
	err := s.db.Where("status = ?", models.CourseStatusPending).
		Order("created_at ASC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CourseService) GetCourse(id string) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

// CreateCourse creates a course in pending state; an admin approves it
// before it shows up in the public listing.
func (s *CourseService) CreateCourse(instructorID string, input CreateCourseInput) (*models.Course, error) {
	course := models.Course{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Level:        input.Level,
		InstructorID: instructorID,
		Status:       models.CourseStatusPending,
	}
	if err := s.db.Create(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CourseService) UpdateCourse(id, instructorID string, input UpdateCourseInput) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, "id = ?", id).Error; err != nil {
		return nil, ErrCourseNotFound
	}
	if course.InstructorID != instructorID {
		return nil, ErrAccessDenied
	}

	if input.Title != nil {
		course.Title = *input.Title
	}
	if input.Description != nil {
		course.Description = *input.Description
	}
	if input.Category != nil {
		course.Category = *input.Category
	}
	if input.Level != nil {
		course.Level = *input.Level
	}
	if err := s.db.Save(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// SetCourseStatus is the admin approve/reject operation.
func (s *CourseService) SetCourseStatus(id, status string) (*models.Course, error) {
	if status != models.CourseStatusApproved && status != models.CourseStatusRejected {
		return nil, errors.New("invalid course status")
	}

	var course models.Course
	if err := s.db.First(&course, "id = ?", id).Error; err != nil {
		return nil, ErrCourseNotFound
	}
	course.Status = status
	if err := s.db.Save(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// Enroll adds the student to the course; enrolling twice is a no-op.
func (s *CourseService) Enroll(courseID, userID string) (*models.Enrollment, error) {
	var course models.Course
	if err := s.db.First(&course, "id = ?", courseID).Error; err != nil {
		return nil, ErrCourseNotFound
	}

	var existing models.Enrollment
	err := s.db.Where("course_id = ? AND user_id = ?", courseID, userID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}

	enrollment := models.Enrollment{
		ID:         uuid.NewString(),
		CourseID:   courseID,
		UserID:     userID,
		EnrolledAt: time.Now(),
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		return nil, err
	}

	s.db.Model(&course).Update("students", gorm.Expr("students + 1"))
	return &enrollment, nil
}

func (s *CourseService) IsEnrolled(courseID, userID string) bool {
	var count int64
	s.db.Model(&models.Enrollment{}).
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Count(&count)
	return count > 0
}

// ListEnrollments returns the student's enrollments, newest first.
func (s *CourseService) ListEnrollments(userID string) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.db.Where("user_id = ?", userID).
		Order("enrolled_at DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}
