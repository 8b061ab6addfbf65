package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestQuestionUnmarshalPolymorphicAnswerKey(t *testing.T) {
	tests := []struct {
		name string
		json string
		want Question
	}{
		{
			name: "multiple choice index",
			json: `{"id":"q1","type":"multiple-choice","question":"Pick one","points":2,
				"options":["a","b","c"],"correctAnswer":1}`,
			want: Question{
				ID: "q1", Type: QuestionTypeMultipleChoice, Text: "Pick one", Points: 2,
				Options: []string{"a", "b", "c"}, CorrectChoice: intPtr(1),
			},
		},
		{
			name: "true false bool",
			json: `{"id":"q2","type":"true-false","question":"Yes?","points":1,"correctAnswer":false}`,
			want: Question{
				ID: "q2", Type: QuestionTypeTrueFalse, Text: "Yes?", Points: 1,
				CorrectBool: boolPtr(false),
			},
		},
		{
			name: "multiple select indices",
			json: `{"id":"q3","type":"multiple-select","question":"Pick all","points":1,
				"options":["a","b","c"],"correctAnswers":[0,2]}`,
			want: Question{
				ID: "q3", Type: QuestionTypeMultipleSelect, Text: "Pick all", Points: 1,
				Options: []string{"a", "b", "c"}, CorrectChoices: []int{0, 2},
			},
		},
		{
			name: "short answer strings",
			json: `{"id":"q4","type":"short-answer","question":"Name it","points":1,
				"correctAnswers":["Nile","The Nile"]}`,
			want: Question{
				ID: "q4", Type: QuestionTypeShortAnswer, Text: "Name it", Points: 1,
				AcceptedAnswers: []string{"Nile", "The Nile"},
			},
		},
		{
			name: "missing answer key",
			json: `{"id":"q5","type":"multiple-choice","question":"Draft","points":1,"options":["a","b"]}`,
			want: Question{
				ID: "q5", Type: QuestionTypeMultipleChoice, Text: "Draft", Points: 1,
				Options: []string{"a", "b"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Question
			require.NoError(t, json.Unmarshal([]byte(tt.json), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuestionUnmarshalWrongAnswerShape(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"bool for multiple choice", `{"type":"multiple-choice","correctAnswer":true}`},
		{"number for true false", `{"type":"true-false","correctAnswer":1}`},
		{"strings for multiple select", `{"type":"multiple-select","correctAnswers":["a"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Question
			assert.Error(t, json.Unmarshal([]byte(tt.json), &got))
		})
	}
}

func TestQuestionMarshalRoundTrip(t *testing.T) {
	questions := []Question{
		{
			ID: "q1", Type: QuestionTypeMultipleChoice, Text: "Pick", Points: 1,
			Options: []string{"a", "b"}, CorrectChoice: intPtr(0),
		},
		{
			ID: "q2", Type: QuestionTypeTrueFalse, Text: "Really?", Points: 3,
			Explanation: "Because.", CorrectBool: boolPtr(true),
		},
		{
			ID: "q3", Type: QuestionTypeMultipleSelect, Text: "Pick all", Points: 1,
			Options: []string{"a", "b", "c"}, CorrectChoices: []int{1, 2},
		},
		{
			ID: "q4", Type: QuestionTypeShortAnswer, Text: "Say it", Points: 1,
			AcceptedAnswers: []string{"yes"},
		},
	}

	for _, q := range questions {
		t.Run(q.Type, func(t *testing.T) {
			raw, err := json.Marshal(q)
			require.NoError(t, err)

			var got Question
			require.NoError(t, json.Unmarshal(raw, &got))
			assert.Equal(t, q, got)
		})
	}
}

func TestQuestionMarshalUsesLegacyFieldNames(t *testing.T) {
	q := Question{
		ID: "q1", Type: QuestionTypeTrueFalse, Text: "Yes?", Points: 1,
		CorrectBool: boolPtr(false),
	}
	raw, err := json.Marshal(q)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "Yes?", m["question"])
	assert.Equal(t, false, m["correctAnswer"])
	assert.NotContains(t, m, "correctAnswers")
	assert.NotContains(t, m, "options")
}

func TestCorrectAnswerValue(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want interface{}
	}{
		{"multiple choice", Question{Type: QuestionTypeMultipleChoice, CorrectChoice: intPtr(2)}, 2},
		{"true false", Question{Type: QuestionTypeTrueFalse, CorrectBool: boolPtr(true)}, true},
		{"multiple select", Question{Type: QuestionTypeMultipleSelect, CorrectChoices: []int{0, 1}}, []int{0, 1}},
		{"short answer", Question{Type: QuestionTypeShortAnswer, AcceptedAnswers: []string{"x"}}, []string{"x"}},
		{"missing key", Question{Type: QuestionTypeMultipleChoice}, nil},
		{"unknown type", Question{Type: "essay"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.CorrectAnswerValue())
		})
	}
}

func TestQuestionValidate(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		wantErr string
	}{
		{
			name: "valid multiple choice",
			q:    Question{Type: QuestionTypeMultipleChoice, Options: []string{"a", "b"}, CorrectChoice: intPtr(1)},
		},
		{
			name:    "too few options",
			q:       Question{Type: QuestionTypeMultipleChoice, Options: []string{"a"}, CorrectChoice: intPtr(0)},
			wantErr: "at least 2 options",
		},
		{
			name:    "empty option",
			q:       Question{Type: QuestionTypeMultipleChoice, Options: []string{"a", ""}, CorrectChoice: intPtr(0)},
			wantErr: "must not be empty",
		},
		{
			name:    "missing choice",
			q:       Question{Type: QuestionTypeMultipleChoice, Options: []string{"a", "b"}},
			wantErr: "must have a correct answer",
		},
		{
			name:    "choice out of range",
			q:       Question{Type: QuestionTypeMultipleChoice, Options: []string{"a", "b"}, CorrectChoice: intPtr(2)},
			wantErr: "out of range",
		},
		{
			name: "valid true false",
			q:    Question{Type: QuestionTypeTrueFalse, CorrectBool: boolPtr(false)},
		},
		{
			name:    "missing bool",
			q:       Question{Type: QuestionTypeTrueFalse},
			wantErr: "must have a correct answer",
		},
		{
			name: "valid multiple select",
			q:    Question{Type: QuestionTypeMultipleSelect, Options: []string{"a", "b", "c"}, CorrectChoices: []int{0, 2}},
		},
		{
			name:    "empty choice set",
			q:       Question{Type: QuestionTypeMultipleSelect, Options: []string{"a", "b"}},
			wantErr: "at least one correct answer",
		},
		{
			name:    "duplicate choices",
			q:       Question{Type: QuestionTypeMultipleSelect, Options: []string{"a", "b"}, CorrectChoices: []int{0, 0}},
			wantErr: "must be unique",
		},
		{
			name:    "select choice out of range",
			q:       Question{Type: QuestionTypeMultipleSelect, Options: []string{"a", "b"}, CorrectChoices: []int{0, 5}},
			wantErr: "out of range",
		},
		{
			name: "valid short answer",
			q:    Question{Type: QuestionTypeShortAnswer, AcceptedAnswers: []string{"yes"}},
		},
		{
			name:    "no accepted answers",
			q:       Question{Type: QuestionTypeShortAnswer},
			wantErr: "at least one accepted answer",
		},
		{
			name:    "unknown type",
			q:       Question{Type: "essay"},
			wantErr: "unknown question type",
		},
		{
			name:    "negative points",
			q:       Question{Type: QuestionTypeTrueFalse, Points: -1, CorrectBool: boolPtr(true)},
			wantErr: "points must not be negative",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
