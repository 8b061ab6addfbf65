package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	CourseLevelBeginner     = "beginner"
	CourseLevelIntermediate = "intermediate"
	CourseLevelAdvanced     = "advanced"

	CourseStatusPending  = "pending"
	CourseStatusApproved = "approved"
	CourseStatusRejected = "rejected"
)

type Course struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Category     string         `gorm:"size:100;index" json:"category"`
	Level        string         `gorm:"size:20" json:"level"`
	InstructorID string         `gorm:"size:36;not null;index" json:"instructor_id"`
	Instructor   User           `gorm:"foreignKey:InstructorID" json:"-"`
	Status       string         `gorm:"size:20;not null;default:'pending'" json:"status"`
	Students     int            `gorm:"not null;default:0" json:"students"`
	Rating       float64        `gorm:"not null;default:0" json:"rating"`
	Lectures     datatypes.JSON `json:"lectures,omitempty"`
	Materials    datatypes.JSON `json:"materials,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type Enrollment struct {
	ID                string         `gorm:"primaryKey;size:36" json:"id"`
	CourseID          string         `gorm:"size:36;not null;uniqueIndex:idx_course_user" json:"course_id"`
	UserID            string         `gorm:"size:36;not null;uniqueIndex:idx_course_user" json:"user_id"`
	Progress          int            `gorm:"not null;default:0" json:"progress"`
	CompletedLectures datatypes.JSON `json:"completed_lectures,omitempty"`
	EnrolledAt        time.Time      `json:"enrolled_at"`
}
