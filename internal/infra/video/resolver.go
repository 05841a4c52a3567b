package video

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"fitplan/internal/domain/entity"
	"fitplan/internal/domain/service"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// queryPhrasings are tried in order for every query subject.
var queryPhrasings = []string{
	"%s tutorial wikiHow",
	"how to do %s",
	"%s fitness tutorial",
	"%s",
}

const (
	defaultCandidates  = 3
	defaultConcurrency = 4
)

type resolver struct {
	searcher    service.VideoSearcher
	checker     service.EmbedChecker
	logger      *slog.Logger
	candidates  int
	concurrency int
}

// NewResolver creates a VideoResolver that validates existing links and searches for replacements.
func NewResolver(
	searcher service.VideoSearcher,
	checker service.EmbedChecker,
	logger *slog.Logger,
	candidates, concurrency int,
) service.VideoResolver {
	if candidates <= 0 {
		candidates = defaultCandidates
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &resolver{
		searcher:    searcher,
		checker:     checker,
		logger:      logger,
		candidates:  candidates,
		concurrency: concurrency,
	}
}

// Resolve sets exercise.YoutubeURL to an embeddable video or nil.
func (r *resolver) Resolve(ctx context.Context, exercise *entity.Exercise) {
	r.resolve(ctx, exercise, newBatchCache())
}

// ResolveAll resolves a batch with bounded concurrency. Exercises that share
// query subjects are searched once.
func (r *resolver) ResolveAll(ctx context.Context, exercises []*entity.Exercise) {
	cache := newBatchCache()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, exercise := range exercises {
		if exercise == nil {
			continue
		}
		g.Go(func() error {
			r.resolve(gctx, exercise, cache)

			return nil
		})
	}

	_ = g.Wait()
}

func (r *resolver) resolve(ctx context.Context, exercise *entity.Exercise, cache *batchCache) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Video resolution panicked",
				slog.String("exercise", exercise.Name),
				slog.Any("panic", rec),
			)
			exercise.YoutubeURL = nil
		}
	}()

	if exercise.YoutubeURL != nil && *exercise.YoutubeURL != "" {
		ok, err := r.checker.Embeddable(ctx, *exercise.YoutubeURL)
		if err != nil {
			r.logger.Debug("Existing video check failed",
				slog.String("url", *exercise.YoutubeURL),
				slog.Any("error", err),
			)
		}
		if ok {
			return
		}
	}

	subjects := querySubjects(exercise)
	if len(subjects) == 0 {
		exercise.YoutubeURL = nil

		return
	}

	found := cache.do(strings.Join(subjects, "|"), func() string {
		return r.search(ctx, subjects)
	})
	if found == "" {
		exercise.YoutubeURL = nil

		return
	}
	exercise.YoutubeURL = &found
}

func (r *resolver) search(ctx context.Context, subjects []string) string {
	for _, subject := range subjects {
		for _, phrasing := range queryPhrasings {
			if ctx.Err() != nil {
				return ""
			}

			query := fmt.Sprintf(phrasing, subject)
			candidates, err := r.searcher.Search(ctx, query, r.candidates)
			if err != nil {
				r.logger.Debug("Video search failed",
					slog.String("query", query),
					slog.Any("error", err),
				)

				continue
			}

			for i, candidate := range candidates {
				if i >= r.candidates {
					break
				}
				ok, err := r.checker.Embeddable(ctx, candidate)
				if err != nil {
					r.logger.Debug("Video embed check failed",
						slog.String("url", candidate),
						slog.Any("error", err),
					)

					continue
				}
				if ok {
					return candidate
				}
			}
		}
	}

	return ""
}

// querySubjects lists the English name, the dictionary translation and the
// raw localized name in that order, skipping blanks and repeats.
func querySubjects(exercise *entity.Exercise) []string {
	raw := []string{
		exercise.EnglishName,
		TranslateExerciseName(exercise.Name),
		exercise.Name,
	}

	seen := make(map[string]bool, len(raw))
	subjects := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		subjects = append(subjects, s)
	}

	return subjects
}

// batchCache memoizes search results for the lifetime of one batch.
type batchCache struct {
	group   singleflight.Group
	mu      sync.Mutex
	results map[string]string
}

func newBatchCache() *batchCache {
	return &batchCache{results: make(map[string]string)}
}

func (c *batchCache) do(key string, fn func() string) string {
	c.mu.Lock()
	if v, ok := c.results[key]; ok {
		c.mu.Unlock()

		return v
	}
	c.mu.Unlock()

	v, _, _ := c.group.Do(key, func() (any, error) {
		c.mu.Lock()
		if cached, ok := c.results[key]; ok {
			c.mu.Unlock()

			return cached, nil
		}
		c.mu.Unlock()

		result := fn()
		c.mu.Lock()
		c.results[key] = result
		c.mu.Unlock()

		return result, nil
	})

	return v.(string)
}
