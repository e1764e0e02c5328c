package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"lms_backend/internal/config"
	"lms_backend/internal/util"
	"net/http"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// AIService wraps an OpenAI-compatible chat-completions endpoint for content
// generation. Failures are typed (util.ErrAINotConfigured, ErrAIRequestFailed,
// ErrAIParseFailed) so callers branch with errors.Is rather than matching
// message strings. One request per call, no retry.
type AIService struct {
	config config.AIConfig
	client *http.Client
	rdb    *redis.Client
}

func NewAIService(cfg config.AIConfig, rdb *redis.Client) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{},
		rdb:    rdb,
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *AIService) Enabled() bool {
	return s.config.APIKey != ""
}

// GenerateText answers a prompt with free text.
func (s *AIService) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.complete(ctx, "You are a course-authoring assistant for a learning management system. Answer concisely.", prompt)
}

// GenerateStructured asks for a JSON array of strings and parses it. The
// model occasionally wraps JSON in a code fence, so fences are stripped
// before parsing.
func (s *AIService) GenerateStructured(ctx context.Context, prompt string) ([]string, error) {
	system := "You are a course-authoring assistant. Respond with a JSON array of strings only, no prose, no markdown."
	raw, err := s.complete(ctx, system, prompt)
	if err != nil {
		return nil, err
	}

	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var items []string
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrAIParseFailed, err)
	}
	return items, nil
}

// Summarize produces a short summary of extracted document text.
func (s *AIService) Summarize(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf("Summarize the following course material in a short paragraph:\n\n%s", text)
	return s.complete(ctx, "You are a course-authoring assistant. Summaries are plain text.", prompt)
}

func (s *AIService) complete(ctx context.Context, system, prompt string) (string, error) {
	if !s.Enabled() {
		return "", util.ErrAINotConfigured
	}

	cacheKey := s.cacheKey(system, prompt)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			return cached, nil
		}
	}

	reqBody := ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []AIChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrAIRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrAIRequestFailed, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrAIRequestFailed, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", util.ErrAIRequestFailed, resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrAIParseFailed, err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("%w: %s", util.ErrAIRequestFailed, result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", util.ErrAIParseFailed)
	}

	text := result.Choices[0].Message.Content
	if s.rdb != nil {
		s.rdb.Set(ctx, cacheKey, text, time.Hour)
	}
	return text, nil
}

func (s *AIService) cacheKey(system, prompt string) string {
	sum := sha256.Sum256([]byte(s.config.Model + "\x00" + system + "\x00" + prompt))
	return "ai:completion:" + hex.EncodeToString(sum[:])
}
