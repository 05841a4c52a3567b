package service

import (
	"context"

	"fitplan/internal/domain/entity"
)

// VideoSearcher returns candidate video URLs for a free-text query.
type VideoSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]string, error)
}

// EmbedChecker reports whether a video URL can be played in an inline player.
type EmbedChecker interface {
	Embeddable(ctx context.Context, videoURL string) (bool, error)
}

// VideoResolver attaches demonstration videos to exercises. It never fails:
// an exercise ends up with a validated URL or with a nil URL.
type VideoResolver interface {
	Resolve(ctx context.Context, exercise *entity.Exercise)
	ResolveAll(ctx context.Context, exercises []*entity.Exercise)
}
