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

// CatalogService owns the quiz collection: CRUD plus durable load/save.
// The in-memory list stays authoritative for the session when the store
// misbehaves; store failures are logged, never propagated.
type CatalogService struct {
	store store.Store
	log   *logger.Logger

	mu      sync.Mutex
	quizzes []models.Quiz
}

func NewCatalogService(st store.Store, log *logger.Logger) *CatalogService {
	return &CatalogService{store: st, log: log}
}

type CreateQuizInput struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	CourseID    string             `json:"courseId"`
	Questions   []models.Question  `json:"questions"`
	Settings    *QuizSettingsInput `json:"settings"`
}

type UpdateQuizInput struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	CourseID    *string            `json:"courseId"`
	Questions   *[]models.Question `json:"questions"`
	Settings    *QuizSettingsInput `json:"settings"`
}

// QuizSettingsInput is a per-field settings patch. Nil fields keep their
// current (or default) value, so an explicit false is distinguishable from
// "not sent".
type QuizSettingsInput struct {
	TimeLimit             *int  `json:"timeLimit"`
	ShuffleQuestions      *bool `json:"shuffleQuestions"`
	ShuffleOptions        *bool `json:"shuffleOptions"`
	ShowCorrectAnswers    *bool `json:"showCorrectAnswers"`
	PassingScore          *int  `json:"passingScore"`
	AllowReview           *bool `json:"allowReview"`
	AllowMultipleAttempts *bool `json:"allowMultipleAttempts"`
	MaxAttempts           *int  `json:"maxAttempts"`
}

// FetchQuizzes loads the full quiz collection from the store and returns it
// in creation order. A read failure degrades to an empty catalog.
func (s *CatalogService) FetchQuizzes() []models.Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()

	var quizzes []models.Quiz
	if err := s.store.Load(store.KeyQuizzes, &quizzes); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Error("loading quizzes failed", "error", err)
		}
		quizzes = nil
	}
	s.quizzes = quizzes
	return s.snapshotLocked()
}

// FetchQuizByID returns the quiz from the currently loaded collection. It
// does not re-read the store; call FetchQuizzes first.
func (s *CatalogService) FetchQuizByID(id string) (*models.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.quizzes {
		if s.quizzes[i].ID == id {
			q := s.quizzes[i]
			return &q, nil
		}
	}
	return nil, ErrQuizNotFound
}

// CreateQuiz builds a new quiz with defaults applied, appends it to the
// catalog and persists. Field-level validation (required title, answer
// completeness) belongs to the authoring layer, not here.
func (s *CatalogService) CreateQuiz(input CreateQuizInput) *models.Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	quiz := models.Quiz{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		CourseID:    input.CourseID,
		Questions:   input.Questions,
		Settings:    models.DefaultQuizSettings(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if quiz.Questions == nil {
		quiz.Questions = []models.Question{}
	}
	applySettings(&quiz.Settings, input.Settings)
	for i := range quiz.Questions {
		if quiz.Questions[i].ID == "" {
			quiz.Questions[i].ID = uuid.NewString()
		}
	}

	s.quizzes = append(s.quizzes, quiz)
	s.persistLocked()
	return &quiz
}

// UpdateQuiz merges the patch onto the stored quiz field by field. Partial
// settings patches touch only the named settings fields.
func (s *CatalogService) UpdateQuiz(id string, input UpdateQuizInput) (*models.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quiz := s.findLocked(id)
	if quiz == nil {
		return nil, ErrQuizNotFound
	}

	if input.Title != nil {
		quiz.Title = *input.Title
	}
	if input.Description != nil {
		quiz.Description = *input.Description
	}
	if input.CourseID != nil {
		quiz.CourseID = *input.CourseID
	}
	if input.Questions != nil {
		quiz.Questions = *input.Questions
		for i := range quiz.Questions {
			if quiz.Questions[i].ID == "" {
				quiz.Questions[i].ID = uuid.NewString()
			}
		}
	}
	applySettings(&quiz.Settings, input.Settings)
	quiz.UpdatedAt = time.Now()

	s.persistLocked()
	updated := *quiz
	return &updated, nil
}

// DeleteQuiz removes the quiz and persists the remaining list. Deleting an
// unknown id is a no-op. Stored results referencing the quiz are left in
// place; they carry their own snapshots.
func (s *CatalogService) DeleteQuiz(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.quizzes[:0]
	for _, q := range s.quizzes {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	s.quizzes = kept
	s.persistLocked()
}

// AddQuestion appends a question to the quiz, assigning a fresh id.
func (s *CatalogService) AddQuestion(quizID string, question models.Question) (*models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quiz := s.findLocked(quizID)
	if quiz == nil {
		return nil, ErrQuizNotFound
	}

	question.ID = uuid.NewString()
	quiz.Questions = append(quiz.Questions, question)
	quiz.UpdatedAt = time.Now()
	s.persistLocked()
	return &question, nil
}

// UpdateQuestion replaces the question's content in place, keeping its id.
func (s *CatalogService) UpdateQuestion(quizID, questionID string, question models.Question) (*models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quiz := s.findLocked(quizID)
	if quiz == nil {
		return nil, ErrQuizNotFound
	}

	for i := range quiz.Questions {
		if quiz.Questions[i].ID == questionID {
			question.ID = questionID
			quiz.Questions[i] = question
			quiz.UpdatedAt = time.Now()
			s.persistLocked()
			return &question, nil
		}
	}
	return nil, ErrQuestionNotFound
}

// DeleteQuestion removes the question from the quiz. Unknown question ids
// are a no-op, matching DeleteQuiz.
func (s *CatalogService) DeleteQuestion(quizID, questionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	quiz := s.findLocked(quizID)
	if quiz == nil {
		return ErrQuizNotFound
	}

	kept := quiz.Questions[:0]
	for _, q := range quiz.Questions {
		if q.ID != questionID {
			kept = append(kept, q)
		}
	}
	quiz.Questions = kept
	quiz.UpdatedAt = time.Now()
	s.persistLocked()
	return nil
}

// RecordScore folds a submission score into the quiz's aggregate stats and
// persists. Called by the attempt engine on submit.
func (s *CatalogService) RecordScore(quizID string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	quiz := s.findLocked(quizID)
	if quiz == nil {
		return ErrQuizNotFound
	}

	quiz.Stats.Record(score)
	quiz.UpdatedAt = time.Now()
	s.persistLocked()
	return nil
}

func (s *CatalogService) findLocked(id string) *models.Quiz {
	for i := range s.quizzes {
		if s.quizzes[i].ID == id {
			return &s.quizzes[i]
		}
	}
	return nil
}

func (s *CatalogService) snapshotLocked() []models.Quiz {
	out := make([]models.Quiz, len(s.quizzes))
	copy(out, s.quizzes)
	return out
}

// persistLocked writes the whole collection. A write failure leaves the
// in-memory list as the source of truth for the rest of the session.
func (s *CatalogService) persistLocked() {
	if err := s.store.Save(store.KeyQuizzes, s.quizzes); err != nil {
		s.log.Error("persisting quizzes failed", "error", err)
	}
}

func applySettings(settings *models.QuizSettings, input *QuizSettingsInput) {
	if input == nil {
		return
	}
	if input.TimeLimit != nil {
		settings.TimeLimit = input.TimeLimit
	}
	if input.ShuffleQuestions != nil {
		settings.ShuffleQuestions = *input.ShuffleQuestions
	}
	if input.ShuffleOptions != nil {
		settings.ShuffleOptions = *input.ShuffleOptions
	}
	if input.ShowCorrectAnswers != nil {
		settings.ShowCorrectAnswers = *input.ShowCorrectAnswers
	}
	if input.PassingScore != nil {
		settings.PassingScore = *input.PassingScore
	}
	if input.AllowReview != nil {
		settings.AllowReview = *input.AllowReview
	}
	if input.AllowMultipleAttempts != nil {
		settings.AllowMultipleAttempts = *input.AllowMultipleAttempts
	}
	if input.MaxAttempts != nil {
		settings.MaxAttempts = input.MaxAttempts
	}
}
