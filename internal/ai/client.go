package ai

import (
	"context"
	"os"

	"github.com/myrjola/whodunit/internal/errors"
	"github.com/sashabaranov/go-openai"
)

type Client struct {
	client *openai.Client
}

func NewClient() Client {
	return Client{
		client: openai.NewClient(os.Getenv("OPENAI_API_KEY")),
	}
}

const MaxTokens = 1024

// Complete sends a single-prompt chat completion and returns the model's reply text.
func (c Client) Complete(ctx context.Context, prompt string) (string, error) {
	completion, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{ //nolint:exhaustruct // this is better for readability
			Model:     openai.GPT3Dot5Turbo1106,
			MaxTokens: MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		return "", errors.Wrap(err, "create chat completion")
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
