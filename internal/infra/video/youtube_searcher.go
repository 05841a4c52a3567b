package video

import (
	"context"

	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const watchURLPrefix = "https://www.youtube.com/watch?v="

// youTubeSearcher queries the YouTube Data API search.list endpoint.
type youTubeSearcher struct {
	svc *youtube.Service
}

// NewYouTubeSearcher creates a searcher restricted to embeddable videos.
func NewYouTubeSearcher(ctx context.Context, apiKey string, opts ...option.ClientOption) (service.VideoSearcher, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)

	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create youtube service")
	}

	return &youTubeSearcher{svc: svc}, nil
}

func (s *youTubeSearcher) Search(ctx context.Context, query string, limit int) ([]string, error) {
	resp, err := s.svc.Search.List([]string{"id"}).
		Q(query).
		Type("video").
		VideoEmbeddable("true").
		SafeSearch("strict").
		MaxResults(int64(limit)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, domainerrors.NewUpstreamError("youtube", err)
	}

	urls := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		urls = append(urls, watchURLPrefix+item.Id.VideoId)
	}

	return urls, nil
}

// noopSearcher is used when no API key is configured.
type noopSearcher struct{}

func (noopSearcher) Search(context.Context, string, int) ([]string, error) {
	return nil, nil
}
