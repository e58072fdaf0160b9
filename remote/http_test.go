package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"

	"feedsync/config"
	"feedsync/content"
	"feedsync/log"
	"feedsync/token"
)

func newTestClient(handler http.Handler, tokens token.Source) (Client, *httptest.Server) {
	server := httptest.NewServer(handler)

	var cfg config.Config
	cfg.Remote.URL = server.URL
	cfg.Remote.Sort = "publishedAt"
	cfg.Remote.Order = "desc"
	cfg.Timeout.Converted.Connect = time.Second
	cfg.Timeout.Converted.ReadWrite = 5 * time.Second

	return New(cfg, tokens, log.Discard()), server
}

func TestFeedRequestAndDecoding(t *testing.T) {
	r := chi.NewRouter()

	r.Get("/feed/news", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		if q.Get("page") != "2" || q.Get("limit") != "10" {
			t.Errorf("query = %s, want page=2 limit=10", req.URL.RawQuery)
		}

		if q.Get("sort") != "publishedAt" || q.Get("order") != "desc" {
			t.Errorf("sort/order = %s/%s, want publishedAt/desc", q.Get("sort"), q.Get("order"))
		}

		if got := req.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q, want bearer credential", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{"id": 11, "type": "news", "originalId": 4, "title": "first",
				 "likesCount": 2, "commentsCount": 1, "isLiked": true,
				 "publishedAt": "2024-03-05T10:00:00Z"},
				{"id": 12, "type": "news", "originalId": 5, "title": "second",
				 "publishedAt": "Tue, 05 Mar 2024 09:00:00 GMT"}
			],
			"pagination": {"page": 2, "totalPages": 3, "total": 25}
		}`))
	})

	client, server := newTestClient(r, token.Static("secret"))
	defer server.Close()

	items, pagination, err := client.Feed(context.Background(), content.TabNews, FeedOptions{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}

	if items[0].ID != 11 || !items[0].IsLiked || items[0].LikesCount != 2 {
		t.Errorf("first item decoded wrong: %+v", items[0])
	}

	want := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	if !items[0].PublishedAt.Equal(want) {
		t.Errorf("publishedAt = %v, want %v", items[0].PublishedAt, want)
	}

	// The second timestamp uses a different format; decoding is
	// tolerant about that.
	if items[1].PublishedAt.IsZero() {
		t.Error("second publishedAt not parsed")
	}

	if pagination.Page != 2 || pagination.TotalPages != 3 || pagination.Total != 25 {
		t.Errorf("pagination = %+v", pagination)
	}

	if !pagination.HasMore() {
		t.Error("HasMore() = false, want true")
	}
}

func TestFeedAnonymousRequest(t *testing.T) {
	r := chi.NewRouter()

	r.Get("/feed", func(w http.ResponseWriter, req *http.Request) {
		if got := req.Header.Get("Authorization"); got != "" {
			t.Errorf("Authorization = %q, want none", got)
		}

		w.Write([]byte(`{"items": [], "pagination": {"page": 1, "totalPages": 0, "total": 0}}`))
	})

	client, server := newTestClient(r, token.Anonymous())
	defer server.Close()

	items, _, err := client.Feed(context.Background(), content.TabAll, FeedOptions{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}

	if len(items) != 0 {
		t.Errorf("items = %d, want 0", len(items))
	}
}

func TestFeedMalformedPayload(t *testing.T) {
	r := chi.NewRouter()

	r.Get("/feed", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"items": "not-an-array"`))
	})

	client, server := newTestClient(r, token.Anonymous())
	defer server.Close()

	_, _, err := client.Feed(context.Background(), content.TabAll, FeedOptions{Page: 1, Limit: 10})
	if !IsValidation(err) {
		t.Errorf("error = %v, want validation kind", err)
	}
}

func TestFeedInvalidItem(t *testing.T) {
	r := chi.NewRouter()

	r.Get("/feed", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{
			"items": [{"id": 3, "type": "podcast", "title": "odd one"}],
			"pagination": {"page": 1, "totalPages": 1, "total": 1}
		}`))
	})

	client, server := newTestClient(r, token.Anonymous())
	defer server.Close()

	_, _, err := client.Feed(context.Background(), content.TabAll, FeedOptions{Page: 1, Limit: 10})
	if !IsValidation(err) {
		t.Errorf("error = %v, want validation kind", err)
	}
}

func TestFeedServerFailure(t *testing.T) {
	r := chi.NewRouter()

	r.Get("/feed", func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, `{"message": "database exploded"}`, http.StatusInternalServerError)
	})

	client, server := newTestClient(r, token.Anonymous())
	defer server.Close()

	_, _, err := client.Feed(context.Background(), content.TabAll, FeedOptions{Page: 1, Limit: 10})
	if !IsNetwork(err) {
		t.Errorf("error = %v, want network kind", err)
	}
}

func TestFeedConnectionRefused(t *testing.T) {
	client, server := newTestClient(http.NotFoundHandler(), token.Anonymous())
	server.Close()

	_, _, err := client.Feed(context.Background(), content.TabAll, FeedOptions{Page: 1, Limit: 10})
	if !IsNetwork(err) {
		t.Errorf("error = %v, want network kind", err)
	}
}

func TestStats(t *testing.T) {
	r := chi.NewRouter()

	r.Get("/feed/stats", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"total": 42, "byType": {"news": {"count": 30}, "community": {"count": 12}}}`))
	})

	client, server := newTestClient(r, token.Anonymous())
	defer server.Close()

	stats, err := client.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if stats.Total != 42 {
		t.Errorf("total = %d, want 42", stats.Total)
	}

	if stats.ByType[content.TypeNews] != 30 || stats.ByType[content.TypeCommunity] != 12 {
		t.Errorf("byType = %v", stats.ByType)
	}
}

func TestToggleLike(t *testing.T) {
	r := chi.NewRouter()

	r.Post("/feed/42/like", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"liked": true, "likesCount": 5, "message": "Like added"}`))
	})

	client, server := newTestClient(r, token.Static("secret"))
	defer server.Close()

	result, err := client.ToggleLike(context.Background(), 42)
	if err != nil {
		t.Fatalf("ToggleLike() error = %v", err)
	}

	if !result.Liked || result.LikesCount != 5 {
		t.Errorf("result = %+v, want liked with 5 likes", result)
	}
}

func TestToggleLikeDuplicate(t *testing.T) {
	r := chi.NewRouter()

	// The backend reports the duplicate through message text, with the
	// same status code it uses for real failures.
	r.Post("/feed/42/like", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"liked": false, "likesCount": 7, "message": "Post already liked"}`))
	})

	client, server := newTestClient(r, token.Static("secret"))
	defer server.Close()

	result, err := client.ToggleLike(context.Background(), 42)
	if !IsDuplicateAction(err) {
		t.Fatalf("error = %v, want duplicate-action kind", err)
	}

	// The implied final state wins over the payload's liked flag.
	if !result.Liked || result.LikesCount != 7 {
		t.Errorf("result = %+v, want resolved to liked with 7 likes", result)
	}
}

func TestToggleLikeNotFound(t *testing.T) {
	r := chi.NewRouter()

	r.Post("/feed/42/like", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "post not found"}`))
	})

	client, server := newTestClient(r, token.Static("secret"))
	defer server.Close()

	if _, err := client.ToggleLike(context.Background(), 42); !IsNotFound(err) {
		t.Errorf("error = %v, want not-found kind", err)
	}
}

func TestCommentsRoundTrip(t *testing.T) {
	r := chi.NewRouter()

	r.Get("/feed/42/comments", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "itemId": 42, "author": "ann", "content": "first",
			 "createdAt": "2024-03-05T10:00:00Z"}
		]`))
	})

	r.Post("/feed/42/comments", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 2, "commentsCount": 2, "message": "Comment created"}`))
	})

	client, server := newTestClient(r, token.Static("secret"))
	defer server.Close()

	comments, err := client.Comments(context.Background(), 42)
	if err != nil {
		t.Fatalf("Comments() error = %v", err)
	}

	if len(comments) != 1 || comments[0].Author != "ann" {
		t.Errorf("comments = %+v", comments)
	}

	result, err := client.CreateComment(context.Background(), 42, "second")
	if err != nil {
		t.Fatalf("CreateComment() error = %v", err)
	}

	if result.ID != 2 || result.CommentsCount != 2 {
		t.Errorf("result = %+v", result)
	}
}

func TestItemLookups(t *testing.T) {
	r := chi.NewRouter()

	item := `{"id": 7, "type": "community", "originalId": 3, "title": "deep link",
		"publishedAt": "2024-03-05T10:00:00Z"}`

	r.Get("/items/community/origin/3", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(item))
	})

	r.Get("/items/community/7", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(item))
	})

	client, server := newTestClient(r, token.Anonymous())
	defer server.Close()

	byOrigin, err := client.ItemByOriginalID(context.Background(), content.TypeCommunity, 3)
	if err != nil {
		t.Fatalf("ItemByOriginalID() error = %v", err)
	}

	if byOrigin.ID != 7 || byOrigin.OriginalID != 3 {
		t.Errorf("item = %+v", byOrigin)
	}

	byID, err := client.ItemByFeedID(context.Background(), content.TypeCommunity, 7)
	if err != nil {
		t.Fatalf("ItemByFeedID() error = %v", err)
	}

	if byID.ID != 7 {
		t.Errorf("item = %+v", byID)
	}
}
