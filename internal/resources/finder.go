// Package resources looks up tutorial videos and articles for a study topic.
package resources

import (
	"context"
	"fmt"

	"github.com/akolanti/StudyGuideAPI/internal/config"
	"github.com/akolanti/StudyGuideAPI/internal/customHttpClient"
	"github.com/akolanti/StudyGuideAPI/internal/metrics"
	"github.com/akolanti/StudyGuideAPI/internal/pacing"
	"github.com/akolanti/StudyGuideAPI/pkg/logger_i"
)

// MissingKeysMessage is the single entry returned for every topic when the
// search credentials are incomplete.
const MissingKeysMessage = "Error: API keys are not configured correctly."

type Kind string

const (
	KindVideo   Kind = "Video"
	KindArticle Kind = "Article"
)

type Resource struct {
	Kind  Kind
	Title string
	URL   string
}

// String is the display form, e.g. "[Video] Sorting Explained: https://www.youtube.com/watch?v=abc".
func (r Resource) String() string {
	return fmt.Sprintf("[%s] %s: %s", r.Kind, r.Title, r.URL)
}

type VideoSearcher interface {
	SearchVideos(ctx context.Context, query string, maxResults int) ([]Resource, error)
}

type ArticleSearcher interface {
	SearchArticles(ctx context.Context, query string, maxResults int) ([]Resource, error)
}

type Finder struct {
	creds    config.Credentials
	videos   VideoSearcher
	articles ArticleSearcher
	backoff  pacing.Backoff
	logger   *logger_i.Logger
}

type Option func(*Finder)

// WithBackoff replaces the failure policy applied to each backend call.
func WithBackoff(policy pacing.Backoff) Option {
	return func(f *Finder) {
		f.backoff = policy
	}
}

func NewFinder(creds config.Credentials, videos VideoSearcher, articles ArticleSearcher, opts ...Option) *Finder {
	f := &Finder{
		creds:    creds,
		videos:   videos,
		articles: articles,
		backoff:  pacing.NoRetry{},
		logger:   logger_i.NewLogger("ResourceFinder"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewGoogleFinder wires the YouTube and Custom Search backends over the pooled
// HTTP client.
func NewGoogleFinder(ctx context.Context, creds config.Credentials, opts ...Option) (*Finder, error) {
	client := customHttpClient.NewPooledClient(config.BackendTimeout)

	videos, err := NewYouTubeSearcher(ctx, client, creds.YouTubeAPIKey)
	if err != nil {
		return nil, err
	}
	articles, err := NewCustomSearchSearcher(ctx, client, creds.SearchAPIKey, creds.SearchEngineID)
	if err != nil {
		return nil, err
	}
	return NewFinder(creds, videos, articles, opts...), nil
}

// FindResources returns videos then articles for topic. A failing backend only
// costs its own half of the result.
func (f *Finder) FindResources(ctx context.Context, topic string) []string {
	if !f.creds.Complete() {
		return []string{MissingKeysMessage}
	}

	var found []string
	for _, r := range f.searchVideos(ctx, topic) {
		found = append(found, r.String())
	}
	for _, r := range f.searchArticles(ctx, topic) {
		found = append(found, r.String())
	}
	return found
}

func (f *Finder) searchVideos(ctx context.Context, topic string) []Resource {
	var results []Resource
	query := fmt.Sprintf(config.VideoQueryTemplate, topic)
	err := pacing.Do(ctx, f.backoff, func(ctx context.Context) error {
		var err error
		results, err = f.videos.SearchVideos(ctx, query, config.MaxVideoResults)
		return err
	})
	if err != nil {
		f.logFailure(youtubeBackend, topic, err)
		return nil
	}
	return results
}

func (f *Finder) searchArticles(ctx context.Context, topic string) []Resource {
	var results []Resource
	query := fmt.Sprintf(config.ArticleQueryTemplate, topic)
	err := pacing.Do(ctx, f.backoff, func(ctx context.Context) error {
		var err error
		results, err = f.articles.SearchArticles(ctx, query, config.MaxArticleResults)
		return err
	})
	if err != nil {
		f.logFailure(customSearchBackend, topic, err)
		return nil
	}
	return results
}

func (f *Finder) logFailure(backend string, topic string, err error) {
	reason := failureReason(err)
	metrics.CaptureBackendFailure(backend, reason)
	f.logger.Warn("Resource lookup failed", "backend", backend, "topic", topic, "reason", reason, "error", err)
}
