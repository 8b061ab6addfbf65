package services

import (
	"testing"

	"lms-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartAttemptUnknownQuiz(t *testing.T) {
	catalog := newTestCatalog(newMemStore())
	catalog.FetchQuizzes()
	attempts := newTestAttempts(catalog, newMemStore())

	_, err := attempts.StartAttempt("missing", "student-1")
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestStartAttemptSnapshotsQuestionCount(t *testing.T) {
	st := newMemStore()
	catalog := newTestCatalog(st)
	quiz := twoQuestionQuiz(catalog, nil)
	attempts := newTestAttempts(catalog, st)

	attempt, err := attempts.StartAttempt(quiz.ID, "student-1")
	require.NoError(t, err)

	assert.NotEmpty(t, attempt.ID)
	assert.Equal(t, quiz.ID, attempt.QuizID)
	assert.Equal(t, "student-1", attempt.StudentID)
	assert.Equal(t, 2, attempt.TotalQuestions)
	assert.Empty(t, attempt.Answers)
	assert.False(t, attempt.StartedAt.IsZero())
}

func TestSubmitQuizFullScore(t *testing.T) {
	st := newMemStore()
	catalog := newTestCatalog(st)
	quiz := twoQuestionQuiz(catalog, nil)
	attempts := newTestAttempts(catalog, st)

	_, err := attempts.StartAttempt(quiz.ID, "student-1")
	require.NoError(t, err)
	attempts.RecordAnswer("student-1", "q1", 1)
	attempts.RecordAnswer("student-1", "q2", false)

	result, err := attempts.SubmitQuiz("student-1")
	require.NoError(t, err)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 2, result.CorrectAnswers)
	assert.Equal(t, 2, result.TotalQuestions)
	assert.Equal(t, 2, result.TotalPoints) // unset points default to 1 each
	assert.True(t, result.Passed)
	assert.NotEmpty(t, result.TimeTaken)

	require.Len(t, result.DetailedResults, 2)
	assert.True(t, result.DetailedResults[0].IsCorrect)
	assert.Equal(t, 1, result.DetailedResults[0].CorrectAnswer)
	assert.True(t, result.DetailedResults[1].IsCorrect)
	assert.Equal(t, false, result.DetailedResults[1].CorrectAnswer)
	assert.Equal(t, "It flows through northeastern Africa.", result.DetailedResults[1].Explanation)
}

func TestSubmitQuizPartialScore(t *testing.T) {
	st := newMemStore()
	catalog := newTestCatalog(st)
	quiz := twoQuestionQuiz(catalog, nil)
	attempts := newTestAttempts(catalog, st)

	_, err := attempts.StartAttempt(quiz.ID, "student-1")
	require.NoError(t, err)
	attempts.RecordAnswer("student-1", "q1", 1)
	// q2 never answered

	result, err := attempts.SubmitQuiz("student-1")
	require.NoError(t, err)

	assert.Equal(t, 50, result.Score)
	assert.Equal(t, 1, result.CorrectAnswers)
	assert.False(t, result.Passed) // 50 < default passing score 60

	require.Len(t, result.DetailedResults, 2)
	assert.Equal(t, models.NotAnswered, result.DetailedResults[1].StudentAnswer)
	assert.False(t, result.DetailedResults[1].IsCorrect)
	assert.Zero(t, result.DetailedResults[1].Points)
}

func TestSubmitQuizPassingBoundary(t *testing.T) {
	st := newMemStore()
	catalog := newTestCatalog(st)
	quiz := twoQuestionQuiz(catalog, &QuizSettingsInput{PassingScore: intPtr(50)})
	attempts := newTestAttempts(catalog, st)

	_, err := attempts.StartAttempt(quiz.ID, "student-1")
	require.NoError(t, err)
	attempts.RecordAnswer("student-1", "q1", 1)

	result, err := attempts.SubmitQuiz("student-1")
	require.NoError(t, err)
	assert.Equal(t, 50, result.Score)
	assert.True(t, result.Passed) // score equal to the threshold passes
}

func TestSubmitQuizWeightedPoints(t *testing.T) {
	st := newMemStore()
	catalog := newTestCatalog(st)
	quiz := catalog.CreateQuiz(CreateQuizInput{
		Title: "Weighted",
		Questions: []models.Question{
			{ID: "q1", Type: models.QuestionTypeTrueFalse, Points: 5, CorrectBool: boolPtr(true)},
			{ID: "q2", Type: models.QuestionTypeTrueFalse, Points: 0, CorrectBool: boolPtr(true)},
			{ID: "q3", Type: models.QuestionTypeTrueFalse, Points: 3, CorrectBool: boolPtr(true)},
		},
	})
	attempts := newTestAttempts(catalog, st)

	_, err := attempts.StartAttempt(quiz.ID, "student-1")
	require.NoError(t, err)
	attempts.RecordAnswer("student-1", "q1", true)
	attempts.RecordAnswer("student-1", "q2", true)
	attempts.RecordAnswer("student-1", "q3", false)

	result, err := attempts.SubmitQuiz("student-1")
	require.NoError(t, err)

	// 5 for q1 plus the zero-points default of 1 for q2; q3 is wrong.
	assert.Equal(t, 6, result.TotalPoints)
	assert.Equal(t, 2, result.CorrectAnswers)
	assert.Equal(t, 67, result.Score)
	assert.Equal(t, 5, result.DetailedResults[0].Points)
	assert.Equal(t, 1, result.DetailedResults[1].Points)
	assert.Zero(t, result.DetailedResults[2].Points)
}

func TestSubmitQuizZeroQuestions(t *testing.T) {
	st := newMemStore()
	catalog := newTestCatalog(st)
	quiz := catalog.CreateQuiz(CreateQuizInput{Title: "Empty"})
	attempts := newTestAttempts(catalog, st)

	_, err := attempts.StartAttempt(quiz.ID, "student-1")
	require.NoError(t, err)

	result, err := attempts.SubmitQuiz("student-1")
	require.NoError(t, err)
	assert.Zero(t, result.Score)
	assert.Empty(t, result.DetailedResults)
}

func TestRecordAnswerLastWriteWins(t *testing.T) {
	st := newMemStore()
	catalog := newTestCatalog(st)
	quiz := twoQuestionQuiz(catalog, nil)
	attempts := newTestAttempts(catalog, st)

	_, err := attempts.StartAttempt(quiz.ID, "student-1")
	require.NoError(t, err)
	attempts.RecordAnswer("student-1", "q1", 0)
	attempts.RecordAnswer("student-1", "q1", 1)

	result, err := attempts.SubmitQuiz("student-1")
	require.NoError(t, err)
	assert.True(t, result.DetailedResults[0].IsCorrect)
}

func TestRecordAnswerWithoutAttemptIsNoOp(t *testing.T) {
	catalog := newTestCatalog(newMemStore())
	attempts := newTestAttempts(catalog, newMemStore())

	attempts.RecordAnswer("student-1", "q1", 1)

	_, err := attempts.SubmitQuiz("student-1")
	assert.ErrorIs(t, err, ErrNoActiveAttempt)
}

func TestStartAttemptDiscardsPrevious(t *testing.T) {
	st := newMemStore()
	catalog := newTestCatalog(st)
	quiz := twoQuestionQuiz(catalog, nil)
	attempts := newTestAttempts(catalog, st)

	first, err := attempts.StartAttempt(quiz.ID, "student-1")
	require.NoError(t, err)
	attempts.RecordAnswer("student-1", "q1", 1)

	second, err := attempts.StartAttempt(quiz.ID, "student-1")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// Answers from the discarded attempt are gone.
	result, err := attempts.SubmitQuiz("student-1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, result.AttemptID)
	assert.Equal(t, models.NotAnswered, result.DetailedResults[0].StudentAnswer)
}

func TestAttemptsAreIsolatedPerStudent(t *testing.T) {
	st := newMemStore()
	catalog := newTestCatalog(st)
	quiz := twoQuestionQuiz(catalog, nil)
	attempts := newTestAttempts(catalog, st)

	_, err := attempts.StartAttempt(quiz.ID, "alice")
	require.NoError(t, err)
	_, err = attempts.StartAttempt(quiz.ID, "bob")
	require.NoError(t, err)

	attempts.RecordAnswer("alice", "q1", 1)
	attempts.RecordAnswer("bob", "q1", 0)

	aliceResult, err := attempts.SubmitQuiz("alice")
	require.NoError(t, err)
	bobResult, err := attempts.SubmitQuiz("bob")
	require.NoError(t, err)

	assert.True(t, aliceResult.DetailedResults[0].IsCorrect)
	assert.False(t, bobResult.DetailedResults[0].IsCorrect)
}

func TestSubmitQuizClearsAttempt(t *testing.T) {
	st := newMemStore()
	catalog := newTestCatalog(st)
	quiz := twoQuestionQuiz(catalog, nil)
	attempts := newTestAttempts(catalog, st)

	_, err := attempts.StartAttempt(quiz.ID, "student-1")
	require.NoError(t, err)
	_, err = attempts.SubmitQuiz("student-1")
	require.NoError(t, err)

	_, err = attempts.SubmitQuiz("student-1")
	assert.ErrorIs(t, err, ErrNoActiveAttempt)
}

func TestSubmitQuizAgainstDeletedQuiz(t *testing.T) {
	st := newMemStore()
	catalog := newTestCatalog(st)
	quiz := twoQuestionQuiz(catalog, nil)
	attempts := newTestAttempts(catalog, st)

	_, err := attempts.StartAttempt(quiz.ID, "student-1")
	require.NoError(t, err)
	catalog.DeleteQuiz(quiz.ID)

	_, err = attempts.SubmitQuiz("student-1")
	assert.ErrorIs(t, err, ErrQuizNotFound)

	// The broken attempt is cleared, not left resubmittable.
	_, err = attempts.SubmitQuiz("student-1")
	assert.ErrorIs(t, err, ErrNoActiveAttempt)
}

func TestSubmitQuizUpdatesQuizStats(t *testing.T) {
	st := newMemStore()
	catalog := newTestCatalog(st)
	quiz := twoQuestionQuiz(catalog, nil)
	attempts := newTestAttempts(catalog, st)

	scores := []int{100, 0, 50}
	answers := [][2]interface{}{
		{1, false}, // both correct
		{0, true},  // both wrong
		{1, true},  // one correct
	}
	for _, a := range answers {
		_, err := attempts.StartAttempt(quiz.ID, "student-1")
		require.NoError(t, err)
		attempts.RecordAnswer("student-1", "q1", a[0])
		attempts.RecordAnswer("student-1", "q2", a[1])
		_, err = attempts.SubmitQuiz("student-1")
		require.NoError(t, err)
	}

	got, err := catalog.FetchQuizByID(quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stats.TotalAttempts)
	assert.Equal(t, 50, got.Stats.AverageScore)
	assert.Equal(t, 100, got.Stats.HighestScore)
	assert.Equal(t, 0, got.Stats.LowestScore)
	assert.Equal(t, scores, got.Stats.AllScores)
}

func TestFetchResultsFiltering(t *testing.T) {
	st := newMemStore()
	catalog := newTestCatalog(st)
	quizA := twoQuestionQuiz(catalog, nil)
	quizB := catalog.CreateQuiz(CreateQuizInput{
		Title: "Other",
		Questions: []models.Question{
			{ID: "b1", Type: models.QuestionTypeTrueFalse, CorrectBool: boolPtr(true)},
		},
	})
	attempts := newTestAttempts(catalog, st)

	submit := func(quizID, studentID string) {
		_, err := attempts.StartAttempt(quizID, studentID)
		require.NoError(t, err)
		_, err = attempts.SubmitQuiz(studentID)
		require.NoError(t, err)
	}
	submit(quizA.ID, "alice")
	submit(quizB.ID, "alice")
	submit(quizA.ID, "bob")

	aliceResults := attempts.FetchStudentResults("alice")
	require.Len(t, aliceResults, 2)
	assert.Equal(t, quizA.ID, aliceResults[0].QuizID)
	assert.Equal(t, quizB.ID, aliceResults[1].QuizID)

	quizAResults := attempts.FetchQuizResults(quizA.ID)
	require.Len(t, quizAResults, 2)
	assert.Equal(t, "alice", quizAResults[0].StudentID)
	assert.Equal(t, "bob", quizAResults[1].StudentID)

	assert.Empty(t, attempts.FetchStudentResults("nobody"))
}

func TestAttemptsRemaining(t *testing.T) {
	st := newMemStore()
	catalog := newTestCatalog(st)
	unlimited := twoQuestionQuiz(catalog, nil)
	single := catalog.CreateQuiz(CreateQuizInput{
		Title:    "One shot",
		Settings: &QuizSettingsInput{AllowMultipleAttempts: boolPtr(false)},
	})
	capped := catalog.CreateQuiz(CreateQuizInput{
		Title:    "Two tries",
		Settings: &QuizSettingsInput{MaxAttempts: intPtr(2)},
	})
	attempts := newTestAttempts(catalog, st)

	submit := func(quizID string) {
		_, err := attempts.StartAttempt(quizID, "student-1")
		require.NoError(t, err)
		_, err = attempts.SubmitQuiz("student-1")
		require.NoError(t, err)
	}

	_, isUnlimited, err := attempts.AttemptsRemaining(unlimited.ID, "student-1")
	require.NoError(t, err)
	assert.True(t, isUnlimited)

	remaining, isUnlimited, err := attempts.AttemptsRemaining(single.ID, "student-1")
	require.NoError(t, err)
	assert.False(t, isUnlimited)
	assert.Equal(t, 1, remaining)

	submit(single.ID)
	remaining, _, err = attempts.AttemptsRemaining(single.ID, "student-1")
	require.NoError(t, err)
	assert.Zero(t, remaining)

	remaining, _, err = attempts.AttemptsRemaining(capped.ID, "student-1")
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)
	submit(capped.ID)
	remaining, _, err = attempts.AttemptsRemaining(capped.ID, "student-1")
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
	submit(capped.ID)
	remaining, _, err = attempts.AttemptsRemaining(capped.ID, "student-1")
	require.NoError(t, err)
	assert.Zero(t, remaining)

	// Other students are unaffected by student-1's usage.
	remaining, _, err = attempts.AttemptsRemaining(capped.ID, "student-2")
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)

	_, _, err = attempts.AttemptsRemaining("missing", "student-1")
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestResultSurvivesStoreReload(t *testing.T) {
	st := newMemStore()
	catalog := newTestCatalog(st)
	quiz := twoQuestionQuiz(catalog, nil)
	attempts := newTestAttempts(catalog, st)

	_, err := attempts.StartAttempt(quiz.ID, "student-1")
	require.NoError(t, err)
	attempts.RecordAnswer("student-1", "q1", 1)
	submitted, err := attempts.SubmitQuiz("student-1")
	require.NoError(t, err)

	// A fresh attempt service over the same store reads the same results.
	reloaded := newTestAttempts(newTestCatalog(st), st)
	results := reloaded.FetchStudentResults("student-1")
	require.Len(t, results, 1)
	assert.Equal(t, submitted.ID, results[0].ID)
	assert.Equal(t, submitted.Score, results[0].Score)
	require.Len(t, results[0].DetailedResults, 2)
	assert.Equal(t, models.NotAnswered, results[0].DetailedResults[1].StudentAnswer)
}
