package remote

import (
	"context"

	"feedsync/content"
)

//go:generate mockgen -destination=mock_remote/client.go -package=mock_remote feedsync/remote Client

// FeedOptions are the query parameters of a feed page request.
type FeedOptions struct {
	Page  int
	Limit int
	Sort  string
	Order string
}

// LikeResult is the authoritative like state reported by the server
// after a toggle.
type LikeResult struct {
	Liked      bool   `json:"liked"`
	LikesCount int    `json:"likesCount"`
	Message    string `json:"message"`
}

// CommentResult is the server response to a comment creation.
type CommentResult struct {
	ID            content.CommentID `json:"id"`
	CommentsCount int               `json:"commentsCount"`
	Message       string            `json:"message"`
}

// Client is the network collaborator of the feed engine. Implementations
// are expected to enforce their own request timeouts; a timeout surfaces
// here as a network error.
type Client interface {
	// Feed fetches one page of the aggregate feed, or of a category
	// feed when the tab carries a category.
	Feed(ctx context.Context, tab content.TabID, opts FeedOptions) ([]content.Item, content.Pagination, error)

	Stats(ctx context.Context) (content.Stats, error)

	// ToggleLike flips the viewer's like state of an item. On a
	// duplicate-action conflict the returned result still carries the
	// resolved final state, alongside the conflict error.
	ToggleLike(ctx context.Context, id content.ItemID) (LikeResult, error)

	Comments(ctx context.Context, id content.ItemID) ([]content.Comment, error)
	CreateComment(ctx context.Context, id content.ItemID, text string) (CommentResult, error)

	ItemByOriginalID(ctx context.Context, typ content.ItemType, originalID int64) (content.Item, error)
	ItemByFeedID(ctx context.Context, typ content.ItemType, id content.ItemID) (content.Item, error)
}
