package services

import (
	"encoding/json"
	"errors"

	"lms-backend/internal/logger"
	"lms-backend/internal/models"
	"lms-backend/internal/store"
)

// memStore is an in-memory Store for service tests. It round-trips values
// through JSON the way the database-backed store does, so marshal behavior
// (polymorphic answer keys included) is exercised too.
type memStore struct {
	data    map[string]json.RawMessage
	loadErr error
	saveErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]json.RawMessage)}
}

func (m *memStore) Load(key string, dest interface{}) error {
	if m.loadErr != nil {
		return m.loadErr
	}
	raw, ok := m.data[key]
	if !ok {
		return store.ErrNotFound
	}
	return json.Unmarshal(raw, dest)
}

func (m *memStore) Save(key string, value interface{}) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	m.saves++
	return nil
}

var errStoreBroken = errors.New("store broken")

func newTestCatalog(st store.Store) *CatalogService {
	return NewCatalogService(st, logger.NewNop())
}

func newTestAttempts(catalog *CatalogService, st store.Store) *AttemptService {
	return NewAttemptService(catalog, st, logger.NewNop())
}

// twoQuestionQuiz seeds a catalog with one quiz holding a multiple-choice and
// a true-false question with known ids.
func twoQuestionQuiz(catalog *CatalogService, settings *QuizSettingsInput) *models.Quiz {
	return catalog.CreateQuiz(CreateQuizInput{
		Title: "Geography basics",
		Questions: []models.Question{
			{
				ID:            "q1",
				Type:          models.QuestionTypeMultipleChoice,
				Text:          "Capital of France?",
				Options:       []string{"London", "Paris", "Berlin"},
				CorrectChoice: intPtr(1),
			},
			{
				ID:          "q2",
				Type:        models.QuestionTypeTrueFalse,
				Text:        "The Nile is in Europe.",
				CorrectBool: boolPtr(false),
				Explanation: "It flows through northeastern Africa.",
			},
		},
		Settings: settings,
	})
}
