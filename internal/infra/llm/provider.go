// Package llm adapts text generation providers to service.LLMClient.
package llm

import (
	"context"
	"log/slog"

	"fitplan/config"
	"fitplan/internal/domain/constants"
	"fitplan/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for NewLLMClient, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewLLMClient selects the provider configured in llm.provider.
func NewLLMClient(params Params) (service.LLMClient, error) {
	cfg := params.Config.LLM

	switch cfg.Provider {
	case constants.LLMProviderOpenAI, "":
		if cfg.APIKey == "" {
			return nil, errors.New("llm.apiKey is required for the openai provider")
		}
		params.Logger.Info("Using OpenAI LLM provider", slog.String("model", cfg.Model))

		return NewOpenAIClient(cfg), nil

	case constants.LLMProviderVertex:
		if cfg.ProjectID == "" || cfg.Location == "" {
			return nil, errors.New("llm.projectId and llm.location are required for the vertex provider")
		}

		client, err := NewVertexClient(params.Ctx, cfg)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using Vertex AI LLM provider",
			slog.String("model", cfg.Model),
			slog.String("location", cfg.Location),
		)

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})

		return client, nil

	default:
		return nil, errors.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}

// Module provides the LLM FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewLLMClient),
)
