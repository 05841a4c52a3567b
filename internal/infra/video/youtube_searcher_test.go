package video

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func TestYouTubeSearcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "squat tutorial", q.Get("q"))
		assert.Equal(t, "video", q.Get("type"))
		assert.Equal(t, "true", q.Get("videoEmbeddable"))
		assert.Equal(t, "3", q.Get("maxResults"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":{"kind":"youtube#video","videoId":"abc"}},{"id":{"kind":"youtube#channel"}},{"id":{"videoId":"def"}}]}`))
	}))
	defer server.Close()

	searcher, err := NewYouTubeSearcher(context.Background(), "test-key",
		option.WithEndpoint(server.URL+"/"),
		option.WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)

	urls, err := searcher.Search(context.Background(), "squat tutorial", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://www.youtube.com/watch?v=abc",
		"https://www.youtube.com/watch?v=def",
	}, urls)
}

func TestNoopSearcher(t *testing.T) {
	urls, err := noopSearcher{}.Search(context.Background(), "anything", 3)
	require.NoError(t, err)
	assert.Empty(t, urls)
}
