// Package jsonfeed provides a newsfeed.Client implementation for JSON Feed
// endpoints (a top-level document with an items array) and for endpoints
// that serve a plain JSON array of articles.
package jsonfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/serrors"
)

// Client fetches JSON array feeds over HTTP and fulfills the newsfeed.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs the feed requests
	userAgent  string       // userAgent identifies the platform to feed hosts
}

// New creates a feed client using the provided HTTP client and User-Agent.
func New(httpClient *http.Client, userAgent string) *Client {
	return &Client{
		httpClient: httpClient,
		userAgent:  userAgent,
	}
}

// feedItem is a single entry of either feed shape. JSON Feed items carry the
// article link in external_url (url then points at the feed's own page for
// the item) and the abstract in summary or content_text.
type feedItem struct {
	Source      string `json:"source"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	ExternalURL string `json:"external_url"`
	Summary     string `json:"summary"`
	ContentText string `json:"content_text"`
}

// feedDocument is a JSON Feed top-level object.
type feedDocument struct {
	Title string     `json:"title"`
	Items []feedItem `json:"items"`
}

// Fetch retrieves the feed and decodes up to limit entries. The endpoint may
// return either a JSON Feed document or a bare JSON array of objects with
// title, url and optional source and summary fields.
func (c *Client) Fetch(ctx context.Context, feedURL string, limit int) ([]domain.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("feed fetch failed: %s", strings.TrimSpace(string(b)))
	}

	var (
		items     []feedItem
		feedTitle string
	)
	if body := strings.TrimSpace(string(b)); strings.HasPrefix(body, "[") {
		if err := json.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("could not decode feed: %w", err)
		}
	} else {
		var doc feedDocument
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("could not decode feed: %w", err)
		}
		items = doc.Items
		feedTitle = doc.Title
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		article := domain.Article{
			Source:  item.Source,
			Title:   item.Title,
			URL:     item.ExternalURL,
			Summary: item.Summary,
		}
		if article.URL == "" {
			article.URL = item.URL
		}
		if article.Summary == "" {
			article.Summary = item.ContentText
		}
		if article.Source == "" {
			article.Source = feedTitle
		}
		if article.Source == "" {
			article.Source = "Unknown"
		}
		if article.Title == "" {
			article.Title = "Untitled"
		}

		articles = append(articles, article)
	}

	return articles, nil
}
