package feed

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"

	"feedsync/content"
	"feedsync/notify"
	"feedsync/remote"
)

// seedTabs fills the aggregate and news tabs so that item 42 is present
// in both, as happens when a post belongs to "all" and to its category.
func seedTabs(t *testing.T, s *Store) {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.tab(content.TabAll)
	all.merge(makeItems(content.TypeNews, 41, 42, 43))
	all.initialized = true

	news := s.tab(content.TabNews)
	news.merge(makeItems(content.TypeNews, 42, 44))
	news.initialized = true
}

func likeState(s *Store, tab content.TabID, id content.ItemID) (int, bool, bool) {
	for _, item := range s.Items(tab) {
		if item.ID == id {
			return item.LikesCount, item.IsLiked, true
		}
	}

	return 0, false, false
}

func TestToggleLikeCrossTabConvergence(t *testing.T) {
	s, client, notifier, done := newTestStore(t)
	defer done()

	seedTabs(t, s)

	client.EXPECT().
		ToggleLike(gomock.Any(), content.ItemID(42)).
		Return(remote.LikeResult{Liked: true, LikesCount: 5, Message: "Like added"}, nil)

	if err := s.ToggleLike(context.Background(), 42); err != nil {
		t.Fatalf("ToggleLike() error = %v", err)
	}

	for _, tab := range []content.TabID{content.TabAll, content.TabNews} {
		count, liked, ok := likeState(s, tab, 42)
		if !ok {
			t.Fatalf("item 42 missing from tab %s", tab)
		}

		if count != 5 || !liked {
			t.Errorf("tab %s: likesCount = %d, isLiked = %v; want 5, true", tab, count, liked)
		}
	}

	// Unrelated items stay untouched.
	if count, _, _ := likeState(s, content.TabAll, 41); count != 0 {
		t.Errorf("item 41 likesCount = %d, want 0", count)
	}

	if got := notificationTypes(notifier)[notify.Error]; got != 0 {
		t.Errorf("error notifications = %d, want 0", got)
	}
}

func TestToggleLikeFailureLeavesCounters(t *testing.T) {
	s, client, notifier, done := newTestStore(t)
	defer done()

	seedTabs(t, s)

	client.EXPECT().
		ToggleLike(gomock.Any(), content.ItemID(42)).
		Return(remote.LikeResult{}, remote.Error{
			Kind: remote.KindNetwork,
			Op:   "toggling like of item 42",
			Err:  errors.New("timeout"),
		})

	if err := s.ToggleLike(context.Background(), 42); err == nil {
		t.Fatal("ToggleLike() error = nil, want network failure")
	}

	for _, tab := range []content.TabID{content.TabAll, content.TabNews} {
		count, liked, ok := likeState(s, tab, 42)
		if !ok {
			t.Fatalf("item 42 missing from tab %s", tab)
		}

		if count != 0 || liked {
			t.Errorf("tab %s: counters changed on failure: %d, %v", tab, count, liked)
		}
	}

	if got := notificationTypes(notifier)[notify.Error]; got != 1 {
		t.Errorf("error notifications = %d, want 1", got)
	}
}

func TestToggleLikeDuplicateResolves(t *testing.T) {
	s, client, notifier, done := newTestStore(t)
	defer done()

	seedTabs(t, s)

	// The viewer double-clicked; the server had already applied the
	// like. The conflict payload carries the resolved state.
	client.EXPECT().
		ToggleLike(gomock.Any(), content.ItemID(42)).
		Return(
			remote.LikeResult{Liked: true, LikesCount: 7, Message: "Post already liked"},
			remote.Error{Kind: remote.KindDuplicateAction, Op: "toggling like of item 42", Err: errors.New("Post already liked")},
		)

	if err := s.ToggleLike(context.Background(), 42); err != nil {
		t.Fatalf("ToggleLike() error = %v, want resolved duplicate", err)
	}

	for _, tab := range []content.TabID{content.TabAll, content.TabNews} {
		count, liked, ok := likeState(s, tab, 42)
		if !ok {
			t.Fatalf("item 42 missing from tab %s", tab)
		}

		if count != 7 || !liked {
			t.Errorf("tab %s: likesCount = %d, isLiked = %v; want 7, true", tab, count, liked)
		}
	}

	if got := notificationTypes(notifier)[notify.Error]; got != 0 {
		t.Errorf("error notifications = %d, want 0; a duplicate is not a failure", got)
	}
}

func TestCreateCommentPropagatesCount(t *testing.T) {
	s, client, notifier, done := newTestStore(t)
	defer done()

	seedTabs(t, s)

	client.EXPECT().
		CreateComment(gomock.Any(), content.ItemID(42), "nice post").
		Return(remote.CommentResult{ID: 9, CommentsCount: 4, Message: "Comment created"}, nil)

	result, err := s.CreateComment(context.Background(), 42, "nice post")
	if err != nil {
		t.Fatalf("CreateComment() error = %v", err)
	}

	if result.ID != 9 {
		t.Errorf("comment id = %d, want 9", result.ID)
	}

	for _, tab := range []content.TabID{content.TabAll, content.TabNews} {
		for _, item := range s.Items(tab) {
			if item.ID == 42 && item.CommentsCount != 4 {
				t.Errorf("tab %s: commentsCount = %d, want 4", tab, item.CommentsCount)
			}
		}
	}

	if got := notificationTypes(notifier)[notify.Success]; got != 1 {
		t.Errorf("success notifications = %d, want 1", got)
	}
}

func TestItemLookupPrefersCache(t *testing.T) {
	s, _, _, done := newTestStore(t)
	defer done()

	seedTabs(t, s)

	// No client expectation: a cached item must not hit the network.
	item, err := s.ItemByFeedID(context.Background(), content.TypeNews, 42)
	if err != nil {
		t.Fatalf("ItemByFeedID() error = %v", err)
	}

	if item.ID != 42 {
		t.Errorf("item id = %d, want 42", item.ID)
	}

	item, err = s.ItemByOriginalID(context.Background(), content.TypeNews, 44)
	if err != nil {
		t.Fatalf("ItemByOriginalID() error = %v", err)
	}

	if item.ID != 44 {
		t.Errorf("item id = %d, want 44", item.ID)
	}
}

func TestItemLookupFallsBackToRemote(t *testing.T) {
	s, client, _, done := newTestStore(t)
	defer done()

	want := makeItems(content.TypeCommunity, 77)[0]

	client.EXPECT().
		ItemByFeedID(gomock.Any(), content.TypeCommunity, content.ItemID(77)).
		Return(want, nil)

	item, err := s.ItemByFeedID(context.Background(), content.TypeCommunity, 77)
	if err != nil {
		t.Fatalf("ItemByFeedID() error = %v", err)
	}

	if item.ID != want.ID {
		t.Errorf("item id = %d, want %d", item.ID, want.ID)
	}
}
