package resources

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/akolanti/StudyGuideAPI/internal/config"
	"github.com/akolanti/StudyGuideAPI/internal/metrics"
)

// youtubeEndpoint overrides the YouTube Data API base URL when set. Tests point
// it at an httptest server.
var youtubeEndpoint = ""

const youtubeBackend = "youtube"

// YouTubeSearcher finds tutorial videos through the YouTube Data API v3.
type YouTubeSearcher struct {
	service *youtube.Service
}

// NewYouTubeSearcher builds the search.list client over client, signing every
// request with apiKey.
func NewYouTubeSearcher(ctx context.Context, client *http.Client, apiKey string) (*YouTubeSearcher, error) {
	opts := []option.ClientOption{option.WithHTTPClient(withAPIKey(client, apiKey))}
	if youtubeEndpoint != "" {
		opts = append(opts, option.WithEndpoint(youtubeEndpoint))
	}

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating YouTube client: %w", err)
	}
	return &YouTubeSearcher{service: service}, nil
}

func (y *YouTubeSearcher) SearchVideos(ctx context.Context, query string, maxResults int) ([]Resource, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("video_search", time.Since(start)) }()

	resp, err := y.service.Search.List([]string{"snippet"}).
		Q(query).
		MaxResults(int64(maxResults)).
		Type("video").
		RelevanceLanguage(config.VideoRelevanceLanguage).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapSearchError("YouTube search", err)
	}

	var results []Resource
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		results = append(results, Resource{
			Kind:  KindVideo,
			Title: html.UnescapeString(item.Snippet.Title),
			URL:   config.YouTubeWatchURL + url.QueryEscape(item.Id.VideoId),
		})
	}
	return results, nil
}
