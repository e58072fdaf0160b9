package content

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// ItemID is the identifier of an item within the unified feed namespace.
// It is stable across tabs; the same id may show up in more than one tab.
type ItemID int64

// CommentID is the identifier of a single comment.
type CommentID int64

// ItemType discriminates the originating post type of a feed item and
// routes detail-view lookups to the right source table.
type ItemType string

const (
	TypeNews      ItemType = "news"
	TypeCommunity ItemType = "community"
)

// TabID names one of the mutually exclusive feed views.
type TabID string

const (
	TabAll       TabID = "all"
	TabNews      TabID = "news"
	TabCommunity TabID = "community"
)

// Tabs lists all known tabs in presentation order.
var Tabs = []TabID{TabAll, TabNews, TabCommunity}

func (t TabID) Valid() bool {
	switch t {
	case TabAll, TabNews, TabCommunity:
		return true
	}

	return false
}

// Category returns the item type a tab is restricted to. The aggregate
// tab carries no restriction.
func (t TabID) Category() (ItemType, bool) {
	switch t {
	case TabNews:
		return TypeNews, true
	case TabCommunity:
		return TypeCommunity, true
	}

	return "", false
}

// Item is a normalized content record, regardless of originating post
// type. OriginalID is the identifier in the source-specific table and is
// only used for deep-linking.
type Item struct {
	ID            ItemID    `json:"id"`
	Type          ItemType  `json:"type"`
	OriginalID    int64     `json:"originalId"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Author        string    `json:"author,omitempty"`
	LikesCount    int       `json:"likesCount"`
	CommentsCount int       `json:"commentsCount"`
	IsLiked       bool      `json:"isLiked"`
	PublishedAt   time.Time `json:"publishedAt"`
}

func (i Item) String() string {
	return fmt.Sprintf("Item %d (%s): %s", i.ID, i.Type, i.Title)
}

func (i Item) Validate() error {
	if i.ID == 0 {
		return NewValidationError(errors.New("item has no id"))
	}

	if i.Type != TypeNews && i.Type != TypeCommunity {
		return NewValidationError(errors.Errorf("item %d has unknown type %q", i.ID, i.Type))
	}

	if i.LikesCount < 0 || i.CommentsCount < 0 {
		return NewValidationError(errors.Errorf("item %d has negative counters", i.ID))
	}

	return nil
}

// Comment is a single comment on a feed item.
type Comment struct {
	ID        CommentID `json:"id"`
	ItemID    ItemID    `json:"itemId"`
	Author    string    `json:"author,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c Comment) String() string {
	return fmt.Sprintf("Comment %d on item %d", c.ID, c.ItemID)
}

// Pagination mirrors the server pagination envelope. Page numbering
// starts at 1.
type Pagination struct {
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total"`
}

// HasMore reports whether pages beyond the current one exist.
func (p Pagination) HasMore() bool {
	return p.Page < p.TotalPages
}

// Stats is the aggregate item count breakdown reported by the server.
type Stats struct {
	Total  int              `json:"total"`
	ByType map[ItemType]int `json:"byType"`
}
