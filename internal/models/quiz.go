package models

import "time"

// Quiz and its nested documents are persisted as JSON inside the key-value
// store, not as relational rows. Field names mirror the legacy client data so
// existing stored collections stay readable.
type Quiz struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	CourseID    string       `json:"courseId,omitempty"`
	Questions   []Question   `json:"questions"`
	Settings    QuizSettings `json:"settings"`
	Stats       QuizStats    `json:"stats"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type QuizSettings struct {
	TimeLimit             *int `json:"timeLimit"` // minutes, nil = unlimited
	ShuffleQuestions      bool `json:"shuffleQuestions"`
	ShuffleOptions        bool `json:"shuffleOptions"`
	ShowCorrectAnswers    bool `json:"showCorrectAnswers"`
	PassingScore          int  `json:"passingScore"`
	AllowReview           bool `json:"allowReview"`
	AllowMultipleAttempts bool `json:"allowMultipleAttempts"`
	MaxAttempts           *int `json:"maxAttempts"` // nil = unlimited
}

const DefaultPassingScore = 60

func DefaultQuizSettings() QuizSettings {
	return QuizSettings{
		ShowCorrectAnswers:    true,
		PassingScore:          DefaultPassingScore,
		AllowReview:           true,
		AllowMultipleAttempts: true,
	}
}

// QuizStats is derived state, recomputed from AllScores on every submission.
type QuizStats struct {
	TotalAttempts int   `json:"totalAttempts"`
	AverageScore  int   `json:"averageScore"`
	HighestScore  int   `json:"highestScore"`
	LowestScore   int   `json:"lowestScore"`
	AllScores     []int `json:"allScores,omitempty"`
}

// Record folds a new score into the stats and recomputes the aggregates.
func (s *QuizStats) Record(score int) {
	s.AllScores = append(s.AllScores, score)
	s.TotalAttempts = len(s.AllScores)

	sum := 0
	highest := s.AllScores[0]
	lowest := s.AllScores[0]
	for _, v := range s.AllScores {
		sum += v
		if v > highest {
			highest = v
		}
		if v < lowest {
			lowest = v
		}
	}
	s.AverageScore = roundDiv(sum, s.TotalAttempts)
	s.HighestScore = highest
	s.LowestScore = lowest
}

// roundDiv rounds a/b to the nearest integer, half away from zero.
func roundDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	return (a*2 + b) / (b * 2)
}
