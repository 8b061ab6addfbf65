package services

import (
	"errors"
	"sync"
	"time"

	"lms-backend/internal/logger"
	"lms-backend/internal/models"
	"lms-backend/internal/store"

	"github.com/google/uuid"
)

// AttemptService runs the attempt lifecycle: start, answer recording,
// submission and scoring. It holds at most one live attempt per student;
// starting again replaces the previous attempt (last-start-wins).
type AttemptService struct {
	catalog *CatalogService
	store   store.Store
	log     *logger.Logger

	mu       sync.Mutex
	attempts map[string]*models.Attempt // keyed by student id
}

func NewAttemptService(catalog *CatalogService, st store.Store, log *logger.Logger) *AttemptService {
	return &AttemptService{
		catalog:  catalog,
		store:    st,
		log:      log,
		attempts: make(map[string]*models.Attempt),
	}
}

// StartAttempt opens a new attempt against a quiz from the currently loaded
// catalog. An attempt already in progress for this student is discarded.
func (s *AttemptService) StartAttempt(quizID, studentID string) (*models.Attempt, error) {
	quiz, err := s.catalog.FetchQuizByID(quizID)
	if err != nil {
		return nil, err
	}

	attempt := &models.Attempt{
		ID:             uuid.NewString(),
		QuizID:         quizID,
		StudentID:      studentID,
		StartedAt:      time.Now(),
		Answers:        make(map[string]interface{}),
		TotalQuestions: len(quiz.Questions),
	}

	s.mu.Lock()
	s.attempts[studentID] = attempt
	s.mu.Unlock()

	copied := *attempt
	return &copied, nil
}

// RecordAnswer upserts the student's answer for a question; last write wins.
// Without a live attempt it is a silent no-op. The answer shape is not
// checked here; mismatches fold into "incorrect" at scoring time.
func (s *AttemptService) RecordAnswer(studentID, questionID string, answer interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.attempts[studentID]
	if !ok {
		s.log.Debug("answer recorded without live attempt", "student_id", studentID)
		return
	}
	attempt.Answers[questionID] = answer
}

// SubmitQuiz scores the live attempt, persists the result, updates the
// quiz's aggregate stats and clears the attempt. The attempt is cleared even
// when the quiz has been deleted mid-attempt, so a broken reference cannot
// be resubmitted.
func (s *AttemptService) SubmitQuiz(studentID string) (*models.Result, error) {
	s.mu.Lock()
	attempt, ok := s.attempts[studentID]
	if ok {
		delete(s.attempts, studentID)
	}
	s.mu.Unlock()

	if !ok {
		return nil, ErrNoActiveAttempt
	}

	quiz, err := s.catalog.FetchQuizByID(attempt.QuizID)
	if err != nil {
		return nil, err
	}

	correct := 0
	totalPoints := 0
	details := make([]models.QuestionResult, 0, len(quiz.Questions))

	for _, q := range quiz.Questions {
		answer, answered := attempt.Answers[q.ID]

		isCorrect := answered && scoreAnswer(q, answer)
		points := q.Points
		if points <= 0 {
			points = 1
		}
		awarded := 0
		if isCorrect {
			correct++
			awarded = points
			totalPoints += points
		}

		studentAnswer := answer
		if !answered {
			studentAnswer = models.NotAnswered
		}

		details = append(details, models.QuestionResult{
			QuestionID:    q.ID,
			QuestionText:  q.Text,
			StudentAnswer: studentAnswer,
			CorrectAnswer: q.CorrectAnswerValue(),
			IsCorrect:     isCorrect,
			Explanation:   q.Explanation,
			Points:        awarded,
		})
	}

	now := time.Now()
	score := roundPercent(correct, len(quiz.Questions))
	result := models.Result{
		ID:              uuid.NewString(),
		AttemptID:       attempt.ID,
		QuizID:          attempt.QuizID,
		StudentID:       attempt.StudentID,
		Score:           score,
		TotalPoints:     totalPoints,
		CorrectAnswers:  correct,
		TotalQuestions:  len(quiz.Questions),
		DetailedResults: details,
		StartedAt:       attempt.StartedAt,
		CompletedAt:     now,
		TimeTaken:       formatTimeTaken(now.Sub(attempt.StartedAt)),
		Passed:          score >= quiz.Settings.PassingScore,
	}

	s.appendResult(result)

	if err := s.catalog.RecordScore(attempt.QuizID, score); err != nil {
		s.log.Warn("recording quiz stats failed", "quiz_id", attempt.QuizID, "error", err)
	}

	return &result, nil
}

// FetchStudentResults returns all stored results for a student, oldest
// first. Store failures degrade to an empty slice.
func (s *AttemptService) FetchStudentResults(studentID string) []models.Result {
	out := make([]models.Result, 0)
	for _, r := range s.loadResults() {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out
}

// FetchQuizResults returns all stored results for a quiz, oldest first.
func (s *AttemptService) FetchQuizResults(quizID string) []models.Result {
	out := make([]models.Result, 0)
	for _, r := range s.loadResults() {
		if r.QuizID == quizID {
			out = append(out, r)
		}
	}
	return out
}

// AttemptsRemaining reports how many more attempts the student may make
// under the quiz's settings. The engine itself never enforces this;
// enforcement is the caller's choice.
func (s *AttemptService) AttemptsRemaining(quizID, studentID string) (remaining int, unlimited bool, err error) {
	quiz, err := s.catalog.FetchQuizByID(quizID)
	if err != nil {
		return 0, false, err
	}

	limit := 0
	switch {
	case !quiz.Settings.AllowMultipleAttempts:
		limit = 1
	case quiz.Settings.MaxAttempts == nil:
		return 0, true, nil
	default:
		limit = *quiz.Settings.MaxAttempts
	}

	used := 0
	for _, r := range s.loadResults() {
		if r.QuizID == quizID && r.StudentID == studentID {
			used++
		}
	}
	if used >= limit {
		return 0, false, nil
	}
	return limit - used, false, nil
}

func (s *AttemptService) loadResults() []models.Result {
	var results []models.Result
	if err := s.store.Load(store.KeyQuizResults, &results); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Error("loading quiz results failed", "error", err)
		}
		return nil
	}
	return results
}

// appendResult does a read-modify-write on the durable results list. A
// failed write is logged; the result is still returned to the caller.
func (s *AttemptService) appendResult(result models.Result) {
	results := append(s.loadResults(), result)
	if err := s.store.Save(store.KeyQuizResults, results); err != nil {
		s.log.Error("persisting quiz result failed", "result_id", result.ID, "error", err)
	}
}
