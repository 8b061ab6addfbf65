package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"lms-backend/internal/models"
)

// scoreAnswer reports whether the recorded answer is correct for the
// question. Comparison is strict per variant: a value of the wrong type is
// simply incorrect, never an error.
func scoreAnswer(q models.Question, answer interface{}) bool {
	switch q.Type {
	case models.QuestionTypeMultipleChoice:
		idx, ok := answerIndex(answer)
		return ok && q.CorrectChoice != nil && idx == *q.CorrectChoice

	case models.QuestionTypeTrueFalse:
		b, ok := answer.(bool)
		return ok && q.CorrectBool != nil && b == *q.CorrectBool

	case models.QuestionTypeMultipleSelect:
		picked, ok := answerIndexSet(answer)
		if !ok || len(picked) != len(q.CorrectChoices) {
			return false
		}
		correct := make(map[int]bool, len(q.CorrectChoices))
		for _, idx := range q.CorrectChoices {
			correct[idx] = true
		}
		for _, idx := range picked {
			if !correct[idx] {
				return false
			}
		}
		return true

	case models.QuestionTypeShortAnswer:
		text, ok := answer.(string)
		if !ok {
			return false
		}
		text = strings.TrimSpace(text)
		for _, accepted := range q.AcceptedAnswers {
			if strings.EqualFold(text, strings.TrimSpace(accepted)) {
				return true
			}
		}
		return false
	}
	return false
}

// answerIndex accepts an option index as int or as a whole JSON number.
// Anything else (strings included) is not an index.
func answerIndex(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
	}
	return 0, false
}

// answerIndexSet accepts a slice of option indices, either typed ([]int) or
// as decoded JSON ([]interface{}).
func answerIndexSet(v interface{}) ([]int, bool) {
	switch list := v.(type) {
	case []int:
		return list, true
	case []interface{}:
		out := make([]int, 0, len(list))
		for _, item := range list {
			idx, ok := answerIndex(item)
			if !ok {
				return nil, false
			}
			out = append(out, idx)
		}
		return out, true
	}
	return nil, false
}

// roundPercent computes round(correct/total*100), guarding the zero-question
// case.
func roundPercent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// formatTimeTaken renders a duration using its two coarsest non-zero units.
func formatTimeTaken(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
