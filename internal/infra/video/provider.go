// Package video finds embeddable YouTube demonstrations for exercises.
package video

import (
	"context"
	"log/slog"

	"fitplan/config"
	"fitplan/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for the video providers, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewVideoSearcher uses the YouTube Data API when an API key is configured.
func NewVideoSearcher(params Params) (service.VideoSearcher, error) {
	cfg := params.Config.Video
	if cfg.APIKey == "" {
		params.Logger.Warn("video.apiKey is empty, video search is disabled")

		return noopSearcher{}, nil
	}

	return NewYouTubeSearcher(params.Ctx, cfg.APIKey)
}

// NewEmbedChecker creates the oEmbed based checker.
func NewEmbedChecker(params Params) service.EmbedChecker {
	cfg := params.Config.Video

	return NewOEmbedChecker(cfg.OEmbedEndpoint, cfg.Timeout)
}

type resolverParams struct {
	fx.In

	Searcher service.VideoSearcher
	Checker  service.EmbedChecker
	Config   *config.Config
	Logger   *slog.Logger
}

func newVideoResolver(params resolverParams) service.VideoResolver {
	cfg := params.Config.Video

	return NewResolver(params.Searcher, params.Checker, params.Logger, cfg.CandidatesPerQuery, cfg.Concurrency)
}

// Module provides the video FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewVideoSearcher,
		NewEmbedChecker,
		newVideoResolver,
	),
)
