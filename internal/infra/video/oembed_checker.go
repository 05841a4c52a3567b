package video

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/service"

	"github.com/pkg/errors"
)

// DefaultOEmbedEndpoint is YouTube's public oEmbed endpoint.
const DefaultOEmbedEndpoint = "https://www.youtube.com/oembed"

var youTubeHosts = map[string]bool{
	"youtube.com":     true,
	"www.youtube.com": true,
	"m.youtube.com":   true,
	"youtu.be":        true,
}

// oEmbedChecker asks YouTube's oEmbed endpoint whether a video may be embedded.
type oEmbedChecker struct {
	endpoint   string
	httpClient *http.Client
}

// NewOEmbedChecker creates an EmbedChecker. A 200 answer means embeddable.
func NewOEmbedChecker(endpoint string, timeout time.Duration) service.EmbedChecker {
	if endpoint == "" {
		endpoint = DefaultOEmbedEndpoint
	}

	return &oEmbedChecker{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Embeddable returns false without a request for anything that is not a YouTube video URL.
// 401, 403 and 404 mean the video exists but is private, restricted or gone.
func (c *oEmbedChecker) Embeddable(ctx context.Context, videoURL string) (bool, error) {
	if !IsYouTubeURL(videoURL) {
		return false, nil
	}

	query := url.Values{}
	query.Set("url", videoURL)
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return false, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, domainerrors.NewUpstreamError("oembed", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusOK:
		return true, nil
	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden,
		resp.StatusCode == http.StatusNotFound,
		resp.StatusCode == http.StatusBadRequest:
		return false, nil
	default:
		return false, domainerrors.NewUpstreamError("oembed", errors.Errorf("unexpected status %d", resp.StatusCode))
	}
}

// IsYouTubeURL reports whether raw is an http(s) URL on a YouTube host.
func IsYouTubeURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return youTubeHosts[strings.ToLower(u.Hostname())]
}
