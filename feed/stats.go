package feed

import (
	"context"

	cache "github.com/patrickmn/go-cache"

	"feedsync/content"
)

const statsCacheKey = "feed-stats"

// Stats returns the aggregate item counts, cached for the configured
// TTL so that tab headers do not hammer the stats endpoint on every
// render.
func (s *Store) Stats(ctx context.Context) (content.Stats, error) {
	if cached, ok := s.statsCache.Get(statsCacheKey); ok {
		return cached.(content.Stats), nil
	}

	stats, err := s.client.Stats(ctx)
	if err != nil {
		s.notifier.APIError(err, "Could not load the feed overview.")
		return content.Stats{}, err
	}

	s.statsCache.Set(statsCacheKey, stats, cache.DefaultExpiration)

	return stats, nil
}
