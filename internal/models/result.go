package models

import "time"

// NotAnswered is the student-answer snapshot recorded for questions that had
// no answer at submission time.
const NotAnswered = "not answered"

// Result is the immutable record of a completed attempt. It is appended to
// the durable results collection and never mutated or deleted.
type Result struct {
	ID              string           `json:"id"`
	AttemptID       string           `json:"attemptId"`
	QuizID          string           `json:"quizId"`
	StudentID       string           `json:"studentId"`
	Score           int              `json:"score"` // integer percentage 0-100
	TotalPoints     int              `json:"totalPoints"`
	CorrectAnswers  int              `json:"correctAnswers"`
	TotalQuestions  int              `json:"totalQuestions"`
	DetailedResults []QuestionResult `json:"detailedResults"`
	StartedAt       time.Time        `json:"startedAt"`
	CompletedAt     time.Time        `json:"completedAt"`
	TimeTaken       string           `json:"timeTaken"`
	Passed          bool             `json:"passed"`
}

// QuestionResult snapshots one question's outcome at submission time, so the
// record stays meaningful even if the quiz is later edited or deleted.
type QuestionResult struct {
	QuestionID    string      `json:"questionId"`
	QuestionText  string      `json:"questionText"`
	StudentAnswer interface{} `json:"studentAnswer"`
	CorrectAnswer interface{} `json:"correctAnswer"`
	IsCorrect     bool        `json:"isCorrect"`
	Explanation   string      `json:"explanation"`
	Points        int         `json:"points"`
}
