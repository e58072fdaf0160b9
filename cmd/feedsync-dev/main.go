// feedsync-dev is an in-memory stub of the feed backend, implementing
// the collaborator contract for local development. It reproduces the
// backend's duplicate-toggle behavior, reporting the condition through
// message text instead of a distinct status code, so the translation
// path can be exercised end to end.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"feedsync/content"
)

func main() {
	port := flag.Int("port", 8283, "listen port")
	items := flag.Int("items", 35, "number of seeded feed items")
	flag.Parse()

	s := newServer(*items)

	fmt.Printf("feedsync-dev listening on :%d with %d items\n", *port, *items)

	if err := http.ListenAndServe(fmt.Sprintf(":%d", *port), s.routes()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (s *server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/feed", s.feed)
		r.Get("/feed/stats", s.stats)
		r.Get("/feed/{category}", s.feed)
		r.Post("/feed/{id}/like", s.toggleLike)
		r.Get("/feed/{id}/comments", s.listComments)
		r.Post("/feed/{id}/comments", s.createComment)
		r.Get("/items/{type}/origin/{originalID}", s.itemByOriginalID)
		r.Get("/items/{type}/{id}", s.itemByFeedID)
	})

	return r
}

type server struct {
	mu          sync.Mutex
	items       []content.Item
	comments    map[content.ItemID][]content.Comment
	nextComment content.CommentID
}

func newServer(count int) *server {
	s := &server{comments: map[content.ItemID][]content.Comment{}}

	originals := map[content.ItemType]int64{}
	now := time.Now()

	for i := 0; i < count; i++ {
		typ := content.TypeNews
		if i%3 == 0 {
			typ = content.TypeCommunity
		}

		originals[typ]++

		s.items = append(s.items, content.Item{
			ID:          content.ItemID(i + 1),
			Type:        typ,
			OriginalID:  originals[typ],
			Title:       fmt.Sprintf("Seeded %s post %d", typ, originals[typ]),
			Author:      "dev",
			LikesCount:  i % 7,
			PublishedAt: now.Add(-time.Duration(i) * time.Hour),
		})
	}

	return s
}

type args map[string]interface{}

func (a args) WriteJSON(w http.ResponseWriter, status int) {
	b, err := json.Marshal(a)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

func (s *server) feed(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if category != "" && category != string(content.TypeNews) && category != string(content.TypeCommunity) {
		args{"message": "unknown category"}.WriteJSON(w, http.StatusNotFound)
		return
	}

	page := intQuery(r, "page", 1)
	limit := intQuery(r, "limit", 10)

	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]content.Item, 0, len(s.items))
	for _, item := range s.items {
		if category == "" || string(item.Type) == category {
			filtered = append(filtered, item)
		}
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	args{
		"items": filtered[start:end],
		"pagination": content.Pagination{
			Page:       page,
			TotalPages: totalPages,
			Total:      total,
		},
	}.WriteJSON(w, http.StatusOK)
}

func (s *server) stats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := map[content.ItemType]int{}
	for _, item := range s.items {
		counts[item.Type]++
	}

	args{
		"total": len(s.items),
		"byType": map[string]args{
			string(content.TypeNews):      {"count": counts[content.TypeNews]},
			string(content.TypeCommunity): {"count": counts[content.TypeCommunity]},
		},
	}.WriteJSON(w, http.StatusOK)
}

func (s *server) toggleLike(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.lookupByID(chi.URLParam(r, "id"))
	if item == nil {
		args{"message": "post not found"}.WriteJSON(w, http.StatusNotFound)
		return
	}

	// The X-Duplicate-Toggle header replays the backend's race
	// behavior: the toggle was already applied by an earlier request.
	if r.Header.Get("X-Duplicate-Toggle") != "" {
		message := "Like already removed"
		if item.IsLiked {
			message = "Post already liked"
		}

		args{
			"liked":      item.IsLiked,
			"likesCount": item.LikesCount,
			"message":    message,
		}.WriteJSON(w, http.StatusBadRequest)

		return
	}

	if item.IsLiked {
		item.IsLiked = false
		item.LikesCount--
	} else {
		item.IsLiked = true
		item.LikesCount++
	}

	message := "Like removed"
	if item.IsLiked {
		message = "Like added"
	}

	args{
		"liked":      item.IsLiked,
		"likesCount": item.LikesCount,
		"message":    message,
	}.WriteJSON(w, http.StatusOK)
}

func (s *server) listComments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.lookupByID(chi.URLParam(r, "id"))
	if item == nil {
		args{"message": "post not found"}.WriteJSON(w, http.StatusNotFound)
		return
	}

	comments := s.comments[item.ID]
	if comments == nil {
		comments = []content.Comment{}
	}

	b, err := json.Marshal(comments)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}

func (s *server) createComment(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Content string `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Content == "" {
		args{"message": "comment content is required"}.WriteJSON(w, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.lookupByID(chi.URLParam(r, "id"))
	if item == nil {
		args{"message": "post not found"}.WriteJSON(w, http.StatusNotFound)
		return
	}

	s.nextComment++
	comment := content.Comment{
		ID:        s.nextComment,
		ItemID:    item.ID,
		Author:    "dev",
		Content:   payload.Content,
		CreatedAt: time.Now(),
	}

	s.comments[item.ID] = append(s.comments[item.ID], comment)
	item.CommentsCount = len(s.comments[item.ID])

	args{
		"id":            comment.ID,
		"commentsCount": item.CommentsCount,
		"message":       "Comment created",
	}.WriteJSON(w, http.StatusCreated)
}

func (s *server) itemByFeedID(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.lookupByID(chi.URLParam(r, "id"))
	if item == nil || string(item.Type) != chi.URLParam(r, "type") {
		args{"message": "post not found"}.WriteJSON(w, http.StatusNotFound)
		return
	}

	writeItem(w, *item)
}

func (s *server) itemByOriginalID(w http.ResponseWriter, r *http.Request) {
	originalID, err := strconv.ParseInt(chi.URLParam(r, "originalID"), 10, 64)
	if err != nil {
		args{"message": "invalid original id"}.WriteJSON(w, http.StatusNotFound)
		return
	}

	typ := chi.URLParam(r, "type")

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if string(s.items[i].Type) == typ && s.items[i].OriginalID == originalID {
			writeItem(w, s.items[i])
			return
		}
	}

	args{"message": "post not found"}.WriteJSON(w, http.StatusNotFound)
}

func (s *server) lookupByID(raw string) *content.Item {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}

	for i := range s.items {
		if s.items[i].ID == content.ItemID(id) {
			return &s.items[i]
		}
	}

	return nil
}

func writeItem(w http.ResponseWriter, item content.Item) {
	b, err := json.Marshal(item)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}

func intQuery(r *http.Request, name string, def int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(name)); err == nil && v > 0 {
		return v
	}

	return def
}
