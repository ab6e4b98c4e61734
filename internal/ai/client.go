// Package ai adapts an OpenAI-compatible chat-completions API to the abuse
// classification and growth-tip ports. Gemini's compatibility endpoint is
// the default provider.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openaigo "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"group-analytics-service/internal/analytics/core/ports"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultModel   = "gemini-2.5-flash"
	DefaultTimeout = 4 * time.Second

	maxRetries = 2
)

const abusePromptFormat = `Analyze the following message for abusive language, hate speech, or excessive spam. Respond ONLY with a single JSON object. If abusive/spam, use: {"flagged": true, "reason": "[Brief reason]"}. If clean, use: {"flagged": false}.

Message: %q`

const tipPromptFormat = `Based on the following group data summary, provide one concise, actionable tip for the group owner to improve engagement or health. The tone should be highly professional and direct. Summary: %s`

type Client struct {
	api     openaigo.Client
	model   string
	timeout time.Duration
}

var (
	_ ports.AbuseClassifierPort = (*Client)(nil)
	_ ports.GrowthTipPort       = (*Client)(nil)
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("ai: api key is required")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = strings.TrimRight(DefaultBaseURL, "/")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	api := openaigo.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
		option.WithMaxRetries(maxRetries),
		option.WithRequestTimeout(timeout),
	)

	return &Client{api: api, model: model, timeout: timeout}, nil
}

func (c *Client) ClassifyAbuse(ctx context.Context, text string) (ports.AbuseVerdict, error) {
	reply, err := c.complete(ctx, fmt.Sprintf(abusePromptFormat, text))
	if err != nil {
		return ports.AbuseVerdict{}, err
	}
	return parseVerdict(reply)
}

func (c *Client) GrowthTip(ctx context.Context, summary string) (string, error) {
	reply, err := c.complete(ctx, fmt.Sprintf(tipPromptFormat, summary))
	if err != nil {
		return "", err
	}
	return cleanTip(reply), nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.Chat.Completions.New(cctx, openaigo.ChatCompletionNewParams{
		Model: openaigo.ChatModel(c.model),
		Messages: []openaigo.ChatCompletionMessageParamUnion{
			openaigo.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("ai: empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}

// parseVerdict reads the model's JSON verdict, tolerating markdown fencing
// around it.
func parseVerdict(reply string) (ports.AbuseVerdict, error) {
	body := strings.TrimSpace(reply)
	body = strings.TrimPrefix(body, "```json")
	body = strings.TrimPrefix(body, "```")
	body = strings.TrimSuffix(body, "```")
	body = strings.TrimSpace(body)

	var v struct {
		Flagged bool   `json:"flagged"`
		Reason  string `json:"reason"`
	}
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return ports.AbuseVerdict{}, fmt.Errorf("ai: unparsable verdict %q: %w", reply, err)
	}
	return ports.AbuseVerdict{Flagged: v.Flagged, Reason: v.Reason}, nil
}

func cleanTip(reply string) string {
	return strings.TrimSpace(strings.ReplaceAll(reply, "*", ""))
}
