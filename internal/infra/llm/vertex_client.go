package llm

import (
	"context"
	"strings"
	"time"

	"fitplan/config"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/service"

	"cloud.google.com/go/vertexai/genai"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const vertexService = "vertex"

// vertexClient calls Gemini models on Vertex AI.
type vertexClient struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
}

// NewVertexClient creates a Vertex AI backed LLMClient. Close must be called on shutdown.
func NewVertexClient(ctx context.Context, cfg *config.LLMConfig) (*vertexClient, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create vertex client")
	}

	return &vertexClient{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     cfg.Timeout,
	}, nil
}

func (c *vertexClient) Complete(ctx context.Context, req service.CompletionRequest) (string, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(pick(req.Temperature, c.temperature))
	if maxTokens := pick(req.MaxTokens, c.maxTokens); maxTokens > 0 {
		model.SetMaxOutputTokens(int32(maxTokens))
	}
	if req.SystemPrompt != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.SystemPrompt)}}
	}
	if req.JSON {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.UserPrompt))
	if err != nil {
		return "", domainerrors.NewUpstreamError(vertexService, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", domainerrors.NewUpstreamError(vertexService, errors.New("response has no candidates"))
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	if strings.TrimSpace(b.String()) == "" {
		return "", domainerrors.NewUpstreamError(vertexService, errors.New("response has no text parts"))
	}

	return b.String(), nil
}

func (c *vertexClient) Close() error {
	return c.client.Close()
}
