// Package newsfeed defines the abstraction used to pull recent articles from
// external feeds feeding issue generation.
package newsfeed

import (
	"context"

	"github.com/aboldguess/Nichifier/pkg/domain"
)

// Client is the abstraction for article feeds. Implementations fetch the
// newest entries from a backing provider.
//
//go:generate mockgen -package mocknewsfeed -source=interface.go -destination=mock/mocknewsfeed.go *
type Client interface {
	// Fetch returns up to limit articles from the given feed URL, newest
	// first as served by the provider.
	Fetch(ctx context.Context, feedURL string, limit int) ([]domain.Article, error)
}
