package utils

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// ChatClientInterface is the seam the insight service talks to, so tests can
// swap the real OpenAI client for a canned one.
type ChatClientInterface interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

type OpenAIChatClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIChatClient(apiKey string) *OpenAIChatClient {
	return &OpenAIChatClient{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

func (c *OpenAIChatClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrInsightsDisabled
	}
	return resp.Choices[0].Message.Content, nil
}
