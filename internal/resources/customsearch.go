package resources

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/akolanti/StudyGuideAPI/internal/metrics"
)

// customSearchEndpoint overrides the Custom Search JSON API base URL when set.
// Tests point it at an httptest server.
var customSearchEndpoint = ""

const customSearchBackend = "custom_search"

// CustomSearchSearcher finds articles through Google Programmable Search.
type CustomSearchSearcher struct {
	service  *customsearch.Service
	engineID string
}

func NewCustomSearchSearcher(ctx context.Context, client *http.Client, apiKey string, engineID string) (*CustomSearchSearcher, error) {
	opts := []option.ClientOption{option.WithHTTPClient(withAPIKey(client, apiKey))}
	if customSearchEndpoint != "" {
		opts = append(opts, option.WithEndpoint(customSearchEndpoint))
	}

	service, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating Custom Search client: %w", err)
	}
	return &CustomSearchSearcher{service: service, engineID: engineID}, nil
}

func (c *CustomSearchSearcher) SearchArticles(ctx context.Context, query string, maxResults int) ([]Resource, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("article_search", time.Since(start)) }()

	resp, err := c.service.Cse.List().
		Cx(c.engineID).
		Q(query).
		Num(int64(maxResults)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapSearchError("Custom Search", err)
	}

	// no "items" key at all means zero hits, not an error
	var results []Resource
	for _, item := range resp.Items {
		if item == nil || item.Link == "" {
			continue
		}
		results = append(results, Resource{
			Kind:  KindArticle,
			Title: item.Title,
			URL:   item.Link,
		})
	}
	return results, nil
}
