package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/littlesous/backend/internal/config"
	"github.com/littlesous/backend/internal/models"
)

const (
	minQuestions = 6
	maxQuestions = 8
)

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat *respFormat   `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type respFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type imageRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// OpenAIClient talks to an OpenAI-compatible API. One attempt per call, no
// automatic retry; the request deadline comes from cfg.AITimeout.
type OpenAIClient struct {
	cfg    *config.Config
	client *http.Client
}

func NewOpenAIClient(cfg *config.Config) *OpenAIClient {
	timeout := cfg.AITimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OpenAIClient{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *OpenAIClient) GenerateQuestions(ctx context.Context, name string, age int, theme string) ([]models.QuestionSpec, error) {
	content, err := c.chat(ctx, questionsSystemPrompt, questionsPrompt(name, age, theme))
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Questions []models.QuestionSpec `json:"questions"`
	}
	if err := json.Unmarshal([]byte(extractJSON(content)), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse question list: %w", err)
	}

	if len(parsed.Questions) < minQuestions || len(parsed.Questions) > maxQuestions {
		return nil, fmt.Errorf("provider returned %d questions, want %d-%d", len(parsed.Questions), minQuestions, maxQuestions)
	}
	for i, q := range parsed.Questions {
		if q.ID == "" || q.Question == "" {
			return nil, fmt.Errorf("question %d is missing id or prompt", i)
		}
		switch q.Type {
		case models.QuestionSingleChoice, models.QuestionMultipleChoice:
			if len(q.Options) == 0 {
				return nil, fmt.Errorf("choice question %q has no options", q.ID)
			}
		case models.QuestionText, models.QuestionNumber:
		default:
			return nil, fmt.Errorf("question %q has unknown type %q", q.ID, q.Type)
		}
	}

	return parsed.Questions, nil
}

func (c *OpenAIClient) GenerateRecipe(ctx context.Context, req RecipeRequest) (*GeneratedRecipe, error) {
	content, err := c.chat(ctx, recipeSystemPrompt, recipePrompt(req))
	if err != nil {
		return nil, err
	}

	var recipe GeneratedRecipe
	if err := json.Unmarshal([]byte(extractJSON(content)), &recipe); err != nil {
		return nil, fmt.Errorf("failed to parse recipe: %w", err)
	}
	if recipe.Title == "" || len(recipe.Ingredients) == 0 || len(recipe.Instructions) == 0 {
		return nil, errors.New("provider returned an incomplete recipe")
	}

	switch recipe.Difficulty {
	case models.DifficultyBeginner, models.DifficultyIntermediate, models.DifficultyAdvanced:
	default:
		recipe.Difficulty = models.DifficultyBeginner
	}

	return &recipe, nil
}

func (c *OpenAIClient) GenerateImage(ctx context.Context, title string, age int, theme string) (string, error) {
	body := imageRequest{
		Model:   c.cfg.ImageModel,
		Prompt:  imagePrompt(title, age, theme),
		N:       1,
		Size:    "1024x1024",
		Quality: "standard",
	}

	respBody, err := c.post(ctx, c.cfg.OpenAIImageURL, body)
	if err != nil {
		return "", err
	}

	var parsed imageResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse image response: %w", err)
	}
	if len(parsed.Data) == 0 || parsed.Data[0].URL == "" {
		return "", errors.New("no image in response")
	}

	return parsed.Data[0].URL, nil
}

func (c *OpenAIClient) chat(ctx context.Context, system, user string) (string, error) {
	body := chatRequest{
		Model: c.cfg.OpenAIModel,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: &respFormat{Type: "json_object"},
	}

	respBody, err := c.post(ctx, c.cfg.OpenAIAPIURL, body)
	if err != nil {
		return "", err
	}

	var completion chatResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", fmt.Errorf("failed to parse completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("no response from provider")
	}

	return completion.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) post(ctx context.Context, url string, body interface{}) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.OpenAIAPIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("provider error: status %d", resp.StatusCode)
	}

	return respBody, nil
}

// extractJSON strips markdown fences some providers wrap around JSON output
// and, failing that, cuts out the outermost object literal.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
		return strings.TrimSpace(content)
	}
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		return strings.TrimSpace(content)
	}
	if json.Valid([]byte(content)) {
		return content
	}
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		return content[start : end+1]
	}
	return content
}
