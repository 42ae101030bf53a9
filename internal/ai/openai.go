package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/emilythestrangee/qa-forum/backend/internal/profile"
)

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// OpenAI calls a chat-completions endpoint with the profile's prompts.
type OpenAI struct {
	client  *openai.Client
	model   string
	profile profile.Profile
}

func NewOpenAI(cfg OpenAIConfig, p profile.Profile) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4o
	}

	return &OpenAI{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   model,
		profile: p,
	}, nil
}

func (o *OpenAI) Chat(ctx context.Context, in ChatInput) (Reply, error) {
	text, err := o.complete(ctx, o.profile.ChatSystemPrompt, in.Message, in.SessionID)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Text: text, Source: SourceRemote}, nil
}

func (o *OpenAI) FactCheck(ctx context.Context, in FactCheckInput) (Verdict, error) {
	prompt := o.profile.FactCheckPrompt(in.QuestionTitle, in.AnswerContent)
	text, err := o.complete(ctx, o.profile.FactCheckSystemPrompt, prompt, "fact_check_"+in.AnswerID)
	if err != nil {
		return Verdict{}, err
	}
	v := ParseVerdict(text)
	v.Source = SourceRemote
	return v, nil
}

func (o *OpenAI) complete(ctx context.Context, system, user, session string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		User: session,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty completion", ErrUpstreamUnavailable)
	}

	slog.DebugContext(ctx, "assistant completion received",
		"model", o.model,
		"finish_reason", resp.Choices[0].FinishReason,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	return resp.Choices[0].Message.Content, nil
}

// ParseVerdict reads STATUS:, CONFIDENCE: and FEEDBACK: lines. Without a
// FEEDBACK line the whole text is the feedback; without a parseable
// confidence it is 0.5.
func ParseVerdict(text string) Verdict {
	v := Verdict{Confidence: 0.5, Feedback: text}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "STATUS:"):
			status := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "STATUS:")))
			verified := status == "verified"
			v.Verified = &verified
		case strings.HasPrefix(line, "CONFIDENCE:"):
			raw := strings.TrimSpace(strings.TrimPrefix(line, "CONFIDENCE:"))
			if f, err := strconv.ParseFloat(raw, 64); err == nil && f >= 0 && f <= 1 {
				v.Confidence = f
			} else {
				v.Confidence = 0.5
			}
		case strings.HasPrefix(line, "FEEDBACK:"):
			v.Feedback = strings.TrimSpace(strings.TrimPrefix(line, "FEEDBACK:"))
		}
	}
	return v
}
