package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"tfidfsum/internal/tokenizer"
)

const claudeMaxTokens = 4096

// ClaudeSummarizer asks Anthropic's Messages API to pick the summary sentences.
type ClaudeSummarizer struct {
	client    anthropic.Client
	tokenizer *tokenizer.Tokenizer
}

func NewClaudeSummarizer(apiKey string, tok *tokenizer.Tokenizer, opts ...option.RequestOption) (*ClaudeSummarizer, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("api key is empty")
	}

	return &ClaudeSummarizer{
		client:    anthropic.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...),
		tokenizer: tok,
	}, nil
}

func (s *ClaudeSummarizer) Summarize(ctx context.Context, input Input) (string, error) {
	if err := ValidateRatio(input.Ratio); err != nil {
		return "", err
	}

	if !utf8.ValidString(input.Text) {
		return "", ErrInvalidUTF8
	}

	if strings.TrimSpace(input.Text) == "" {
		return "", errors.New("input is empty")
	}

	prompt, budget := extractivePrompt(s.tokenizer, input)
	if budget == 0 {
		return "", nil
	}

	message, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.ModelClaudeSonnet4_5_20250929,
		MaxTokens: claudeMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}

	if len(message.Content) == 0 {
		return "", errors.New("response is empty")
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", fmt.Errorf("unexpected content block type %q", message.Content[0].Type)
	}

	summary := strings.TrimSpace(textBlock.Text)
	if summary == "" {
		return "", fmt.Errorf("output text is missing (stopReason = %s)", message.StopReason)
	}

	return summary, nil
}
