package feed

import (
	"context"
	"fmt"

	"feedsync/content"
	"feedsync/notify"
	"feedsync/remote"
)

// ToggleLike flips the viewer's like state of an item and applies the
// server-confirmed count to every copy of that item in every tab. The
// counters are only touched after the round-trip resolves; nothing is
// updated optimistically. A duplicate-action conflict means the toggle
// had already been applied, so the resolved state from its payload is
// committed as if the call had succeeded.
func (s *Store) ToggleLike(ctx context.Context, id content.ItemID) error {
	result, err := s.client.ToggleLike(ctx, id)

	if err != nil {
		if !remote.IsDuplicateAction(err) {
			s.notifier.APIError(err, "Could not update the like.")
			return err
		}

		s.log.Debugf("Like toggle of item %d resolved as duplicate: %s", id, result.Message)
	}

	s.mu.Lock()
	updated := s.propagate(id, func(item *content.Item) {
		item.IsLiked = result.Liked
		item.LikesCount = result.LikesCount
	})
	s.mu.Unlock()

	s.log.Debugf("Applied like state of item %d to %d copies", id, updated)

	return nil
}

// Comments fetches the comment list of an item.
func (s *Store) Comments(ctx context.Context, id content.ItemID) ([]content.Comment, error) {
	comments, err := s.client.Comments(ctx, id)
	if err != nil {
		s.notifier.APIError(err, "Could not load the comments.")
		return nil, err
	}

	return comments, nil
}

// CreateComment posts a comment and propagates the authoritative
// comment count across all tabs.
func (s *Store) CreateComment(ctx context.Context, id content.ItemID, text string) (remote.CommentResult, error) {
	result, err := s.client.CreateComment(ctx, id, text)
	if err != nil {
		s.notifier.APIError(err, "Could not post the comment.")
		return remote.CommentResult{}, err
	}

	s.SetCommentsCount(id, result.CommentsCount)
	s.notifier.Add(notify.Success, "Comment posted", "")

	return result, nil
}

// SetCommentsCount applies an externally observed comment count to
// every copy of the item.
func (s *Store) SetCommentsCount(id content.ItemID, count int) {
	if count < 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.propagate(id, func(item *content.Item) {
		item.CommentsCount = count
	})
}

// propagate applies an update to every copy of the item across all
// tabs. The caller holds the store lock.
func (s *Store) propagate(id content.ItemID, update func(*content.Item)) int {
	updated := 0

	for _, t := range s.tabs {
		if _, ok := t.idSet[id]; !ok {
			continue
		}

		for i := range t.items {
			if t.items[i].ID == id {
				update(&t.items[i])
				updated++
			}
		}
	}

	return updated
}

// ItemByOriginalID resolves an item through any tab's cache first,
// falling back to a detail-view lookup against the collaborator.
func (s *Store) ItemByOriginalID(ctx context.Context, typ content.ItemType, originalID int64) (content.Item, error) {
	s.mu.Lock()
	for _, t := range s.tabs {
		for i := range t.items {
			if t.items[i].Type == typ && t.items[i].OriginalID == originalID {
				item := t.items[i]
				s.mu.Unlock()

				return item, nil
			}
		}
	}
	s.mu.Unlock()

	item, err := s.client.ItemByOriginalID(ctx, typ, originalID)
	if err != nil {
		s.notifier.APIError(err, fmt.Sprintf("Could not load the %s post.", typ))
		return content.Item{}, err
	}

	return item, nil
}

// ItemByFeedID resolves an item by its unified feed id, preferring the
// cached copy from any tab.
func (s *Store) ItemByFeedID(ctx context.Context, typ content.ItemType, id content.ItemID) (content.Item, error) {
	s.mu.Lock()
	for _, t := range s.tabs {
		if _, ok := t.idSet[id]; !ok {
			continue
		}

		for i := range t.items {
			if t.items[i].ID == id {
				item := t.items[i]
				s.mu.Unlock()

				return item, nil
			}
		}
	}
	s.mu.Unlock()

	item, err := s.client.ItemByFeedID(ctx, typ, id)
	if err != nil {
		s.notifier.APIError(err, fmt.Sprintf("Could not load the %s post.", typ))
		return content.Item{}, err
	}

	return item, nil
}
