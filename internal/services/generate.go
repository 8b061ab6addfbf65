package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"lms-backend/internal/models"

	openai "github.com/sashabaranov/go-openai"
)

// GenerateService drafts quiz questions from a topic prompt using a chat
// model. Drafts go back to the instructor for review; nothing is saved to
// the catalog here.
type GenerateService struct {
	client *openai.Client
	model  string
}

func NewGenerateService(apiKey, model string) *GenerateService {
	s := &GenerateService{model: model}
	if apiKey != "" {
		s.client = openai.NewClient(apiKey)
	}
	if s.model == "" {
		s.model = openai.GPT4oMini
	}
	return s
}

func (s *GenerateService) IsAvailable() bool {
	return s.client != nil
}

const generateSystemPrompt = `You are a quiz author for a learning platform. The user describes a topic. Respond with ONLY valid JSON (no markdown, no code fences) in this format:

{
  "questions": [
    {
      "question": "Question text?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": 0,
      "explanation": "Why this answer is correct.",
      "points": 1
    }
  ]
}

Rules:
- Each question has 2 to 4 options and exactly one correctAnswer index.
- Make questions factually accurate and varied in difficulty.
- Write in the same language as the user's prompt.
- Return ONLY the JSON object.`

type generatedQuiz struct {
	Questions []struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer int      `json:"correctAnswer"`
		Explanation   string   `json:"explanation"`
		Points        int      `json:"points"`
	} `json:"questions"`
}

// DraftQuestions asks the model for count multiple-choice questions on the
// topic and validates each draft before returning it.
func (s *GenerateService) DraftQuestions(ctx context.Context, topic string, count int) ([]models.Question, error) {
	if !s.IsAvailable() {
		return nil, errors.New("question generation is not configured")
	}
	if count <= 0 {
		count = 5
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: generateSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Generate %d questions about: %s", count, topic)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("empty model response")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var parsed generatedQuiz
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("parsing model response: %w", err)
	}

	questions := make([]models.Question, 0, len(parsed.Questions))
	for _, g := range parsed.Questions {
		idx := g.CorrectAnswer
		q := models.Question{
			Type:          models.QuestionTypeMultipleChoice,
			Text:          g.Question,
			Points:        g.Points,
			Explanation:   g.Explanation,
			Options:       g.Options,
			CorrectChoice: &idx,
		}
		if q.Points <= 0 {
			q.Points = 1
		}
		if err := q.Validate(); err != nil {
			continue
		}
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return nil, errors.New("model produced no usable questions")
	}
	return questions, nil
}
