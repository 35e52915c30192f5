package companion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/pkg/entity"
	"github.com/sashabaranov/go-openai"
)

const (
	therapyPrompt = `You are a compassionate AI mental health companion. Provide empathetic, supportive responses that:
- Show understanding and validation
- Ask thoughtful follow-up questions
- Suggest healthy coping strategies when appropriate
- Encourage professional help for serious concerns
- Keep responses concise but meaningful (2-3 sentences)
- Use a warm, non-judgmental tone

Important: If the user expresses thoughts of self-harm or suicide, immediately encourage them to contact emergency services or a crisis hotline.`

	moodPrompt = `Analyze the emotional tone of the user's text and respond with ONLY a JSON object in this exact format:
{"mood": "excellent|good|okay|low|terrible", "intensity": 1-10, "tags": ["brief supportive observation"]}`

	defaultModel = openai.GPT4oMini
)

type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// OpenAIClient talks to any OpenAI compatible chat completion endpoint.
// It serves both as the companion responder and as the notes classifier.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(cfg *LLMConfig) *OpenAIClient {
	oconfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oconfig.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(oconfig),
		model:  model,
	}
}

func (c *OpenAIClient) Reply(ctx context.Context, prompt string, history []string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: therapyPrompt},
	}
	if len(history) > 0 {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: "Previous context: " + strings.Join(history, " "),
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})
	text, err := c.complete(ctx, messages, 0.7, 200)
	if err != nil {
		return "", err
	}
	return text, nil
}

func (c *OpenAIClient) Classify(ctx context.Context, text string) (entity.MoodAnalysis, error) {
	raw, err := c.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: moodPrompt},
		{Role: openai.ChatMessageRoleUser, Content: text},
	}, 0.3, 100)
	if err != nil {
		return entity.MoodAnalysis{}, err
	}
	return parseMoodAnalysis(raw)
}

func (c *OpenAIClient) complete(ctx context.Context, messages []openai.ChatCompletionMessage, temperature float32, maxTokens int) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: chat completion: %w", errorvalues.ErrCollaboratorFailed, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: empty completion", errorvalues.ErrCollaboratorFailed)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

type moodAnalysisResponse struct {
	Mood      string   `json:"mood"`
	Intensity float64  `json:"intensity"`
	Tags      []string `json:"tags"`
}

func parseMoodAnalysis(resp string) (entity.MoodAnalysis, error) {
	// Models like to wrap JSON into markdown code blocks
	resp = strings.TrimSpace(resp)
	resp = strings.TrimPrefix(resp, "```json")
	resp = strings.TrimPrefix(resp, "```")
	resp = strings.TrimSuffix(resp, "```")
	resp = strings.TrimSpace(resp)

	var parsed moodAnalysisResponse
	if err := sonic.UnmarshalString(resp, &parsed); err != nil {
		return entity.MoodAnalysis{}, fmt.Errorf("%w: parse json: %w", errorvalues.ErrCollaboratorFailed, err)
	}
	mood := entity.MoodType(strings.ToLower(parsed.Mood))
	if !mood.Valid() {
		return entity.MoodAnalysis{}, errors.Join(errorvalues.ErrCollaboratorFailed, fmt.Errorf("unknown mood %q", parsed.Mood))
	}
	intensity := int(parsed.Intensity)
	if intensity == 0 {
		intensity = 5
	}
	tags := parsed.Tags
	if len(tags) == 0 {
		tags = []string{"Thank you for sharing your thoughts with me."}
	}
	return entity.MoodAnalysis{
		Mood:      mood,
		Intensity: max(1, min(10, intensity)),
		Tags:      tags,
	}, nil
}
