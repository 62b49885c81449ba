package openrouter

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
)

type client struct {
	api         *openai.Client
	textModel   string
	visionModel string
	timeout     time.Duration
}

// NewClient creates a completion client against an OpenAI-compatible
// API. baseURL selects the provider (OpenRouter by default); a hung
// call is cut off after timeout and surfaces as a plain error.
func NewClient(token, baseURL, textModel, visionModel string, timeout time.Duration) (*client, error) {
	if token == "" {
		return nil, fmt.Errorf("token is empty")
	}

	cfg := openai.DefaultConfig(token)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &client{
		api:         openai.NewClientWithConfig(cfg),
		textModel:   textModel,
		visionModel: visionModel,
		timeout:     timeout,
	}, nil
}

// CreateCompletion issues a single non-streaming chat completion with
// an optional system instruction and returns the trimmed-by-caller
// assistant text.
func (c *client) CreateCompletion(ctx context.Context, system, user string, temperature float32, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := []openai.ChatCompletionMessage{}
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: user,
	})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.textModel,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Stream:      false,
	})
	if err != nil {
		return "", fmt.Errorf("creating chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}

// DescribeImage issues one multimodal completion: an instruction plus
// an inlined base64 image data URL.
func (c *client) DescribeImage(ctx context.Context, instruction, imageDataURL string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.visionModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: instruction,
					},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: imageDataURL},
					},
				},
			},
		},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("creating vision completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}
