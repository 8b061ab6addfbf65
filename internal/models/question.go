package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	QuestionTypeMultipleChoice = "multiple-choice"
	QuestionTypeTrueFalse      = "true-false"
	QuestionTypeMultipleSelect = "multiple-select"
	QuestionTypeShortAnswer    = "short-answer"
)

// Question is a tagged union over the four supported variants. Exactly one of
// the answer-key fields is populated, selected by Type:
//
//	multiple-choice  CorrectChoice (index into Options)
//	true-false       CorrectBool
//	multiple-select  CorrectChoices (set of indices into Options)
//	short-answer     AcceptedAnswers (acceptable strings)
type Question struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Text        string   `json:"question"`
	Points      int      `json:"points"`
	Explanation string   `json:"explanation,omitempty"`
	Options     []string `json:"options,omitempty"`

	CorrectChoice   *int     `json:"-"`
	CorrectBool     *bool    `json:"-"`
	CorrectChoices  []int    `json:"-"`
	AcceptedAnswers []string `json:"-"`
}

// questionJSON is the legacy wire shape: the answer key travels in the
// polymorphic correctAnswer / correctAnswers fields depending on Type.
type questionJSON struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Text           string          `json:"question"`
	Points         int             `json:"points"`
	Explanation    string          `json:"explanation,omitempty"`
	Options        []string        `json:"options,omitempty"`
	CorrectAnswer  json.RawMessage `json:"correctAnswer,omitempty"`
	CorrectAnswers json.RawMessage `json:"correctAnswers,omitempty"`
}

func (q Question) MarshalJSON() ([]byte, error) {
	out := questionJSON{
		ID:          q.ID,
		Type:        q.Type,
		Text:        q.Text,
		Points:      q.Points,
		Explanation: q.Explanation,
		Options:     q.Options,
	}

	var err error
	switch q.Type {
	case QuestionTypeMultipleChoice:
		if q.CorrectChoice != nil {
			out.CorrectAnswer, err = json.Marshal(*q.CorrectChoice)
		}
	case QuestionTypeTrueFalse:
		if q.CorrectBool != nil {
			out.CorrectAnswer, err = json.Marshal(*q.CorrectBool)
		}
	case QuestionTypeMultipleSelect:
		if q.CorrectChoices != nil {
			out.CorrectAnswers, err = json.Marshal(q.CorrectChoices)
		}
	case QuestionTypeShortAnswer:
		if q.AcceptedAnswers != nil {
			out.CorrectAnswers, err = json.Marshal(q.AcceptedAnswers)
		}
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

func (q *Question) UnmarshalJSON(data []byte) error {
	var in questionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*q = Question{
		ID:          in.ID,
		Type:        in.Type,
		Text:        in.Text,
		Points:      in.Points,
		Explanation: in.Explanation,
		Options:     in.Options,
	}

	switch in.Type {
	case QuestionTypeMultipleChoice:
		if len(in.CorrectAnswer) > 0 {
			var idx int
			if err := json.Unmarshal(in.CorrectAnswer, &idx); err != nil {
				return fmt.Errorf("multiple-choice correctAnswer: %w", err)
			}
			q.CorrectChoice = &idx
		}
	case QuestionTypeTrueFalse:
		if len(in.CorrectAnswer) > 0 {
			var b bool
			if err := json.Unmarshal(in.CorrectAnswer, &b); err != nil {
				return fmt.Errorf("true-false correctAnswer: %w", err)
			}
			q.CorrectBool = &b
		}
	case QuestionTypeMultipleSelect:
		if len(in.CorrectAnswers) > 0 {
			if err := json.Unmarshal(in.CorrectAnswers, &q.CorrectChoices); err != nil {
				return fmt.Errorf("multiple-select correctAnswers: %w", err)
			}
		}
	case QuestionTypeShortAnswer:
		if len(in.CorrectAnswers) > 0 {
			if err := json.Unmarshal(in.CorrectAnswers, &q.AcceptedAnswers); err != nil {
				return fmt.Errorf("short-answer correctAnswers: %w", err)
			}
		}
	}
	return nil
}

// CorrectAnswerValue returns the answer key in the shape the legacy result
// records carry: an index, a bool, a slice of indices or a slice of strings.
func (q Question) CorrectAnswerValue() interface{} {
	switch q.Type {
	case QuestionTypeMultipleChoice:
		if q.CorrectChoice != nil {
			return *q.CorrectChoice
		}
	case QuestionTypeTrueFalse:
		if q.CorrectBool != nil {
			return *q.CorrectBool
		}
	case QuestionTypeMultipleSelect:
		return q.CorrectChoices
	case QuestionTypeShortAnswer:
		return q.AcceptedAnswers
	}
	return nil
}

// Validate checks answer-key completeness per question type. Choice-based
// types need at least 2 non-empty options before a quiz is publishable.
func (q Question) Validate() error {
	switch q.Type {
	case QuestionTypeMultipleChoice:
		if err := validateOptions(q.Options); err != nil {
			return err
		}
		if q.CorrectChoice == nil {
			return errors.New("multiple-choice question must have a correct answer")
		}
		if *q.CorrectChoice < 0 || *q.CorrectChoice >= len(q.Options) {
			return errors.New("correct answer index out of range")
		}

	case QuestionTypeTrueFalse:
		if q.CorrectBool == nil {
			return errors.New("true-false question must have a correct answer")
		}

	case QuestionTypeMultipleSelect:
		if err := validateOptions(q.Options); err != nil {
			return err
		}
		if len(q.CorrectChoices) == 0 {
			return errors.New("multiple-select question must have at least one correct answer")
		}
		seen := make(map[int]bool)
		for _, idx := range q.CorrectChoices {
			if idx < 0 || idx >= len(q.Options) {
				return errors.New("correct answer index out of range")
			}
			if seen[idx] {
				return errors.New("correct answer indices must be unique")
			}
			seen[idx] = true
		}

	case QuestionTypeShortAnswer:
		if len(q.AcceptedAnswers) == 0 {
			return errors.New("short-answer question must have at least one accepted answer")
		}

	default:
		return errors.New("unknown question type: " + q.Type)
	}

	if q.Points < 0 {
		return errors.New("points must not be negative")
	}
	return nil
}

func validateOptions(options []string) error {
	if len(options) < 2 {
		return errors.New("question must have at least 2 options")
	}
	for _, o := range options {
		if o == "" {
			return errors.New("options must not be empty")
		}
	}
	return nil
}
