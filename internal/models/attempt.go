package models

import "time"

// Attempt is one student's in-progress trial of a quiz. It lives only in
// memory inside the attempt engine; submission turns it into a Result.
type Attempt struct {
	ID             string                 `json:"id"`
	QuizID         string                 `json:"quizId"`
	StudentID      string                 `json:"studentId"`
	StartedAt      time.Time              `json:"startedAt"`
	Answers        map[string]interface{} `json:"answers"`
	TotalQuestions int                    `json:"totalQuestions"`
}
