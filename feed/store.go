package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"feedsync/config"
	"feedsync/content"
	"feedsync/log"
	"feedsync/notify"
	"feedsync/remote"
)

// tabState is the cached content of one tab. Tabs are independent:
// items holding the same id in two tabs are separate copies, kept in
// lock-step only by the counter propagation in counters.go.
type tabState struct {
	items       []content.Item
	idSet       map[content.ItemID]struct{}
	pagination  content.Pagination
	initialized bool
	lastFetch   time.Time
}

func newTabState() *tabState {
	return &tabState{
		idSet:      map[content.ItemID]struct{}{},
		pagination: content.Pagination{Page: 1},
	}
}

// merge appends items that are not yet present in the tab. The server
// may legitimately return overlapping items across fast successive
// requests, when concurrent writes shift page boundaries; those are
// dropped silently. The id set is updated together with the items slice
// and never after it.
func (t *tabState) merge(items []content.Item) (added int) {
	for _, item := range items {
		if _, ok := t.idSet[item.ID]; ok {
			continue
		}

		t.idSet[item.ID] = struct{}{}
		t.items = append(t.items, item)
		added++
	}

	return added
}

func (t *tabState) clear() {
	t.items = nil
	t.idSet = map[content.ItemID]struct{}{}
	t.pagination = content.Pagination{Page: 1}
}

// Store holds the per-tab paginated collections and drives every load
// against the network collaborator. All state is guarded by a single
// mutex; the in-flight flags are set under it before a network call and
// cleared when the call commits, which is what makes top-level loads
// single-flight store-wide.
type Store struct {
	client   remote.Client
	notifier *notify.Dispatcher
	cfg      config.Feed
	log      log.Log

	mu              sync.Mutex
	tabs            map[content.TabID]*tabState
	currentTab      content.TabID
	loading         bool
	infiniteLoading bool
	lastErr         error

	statsCache *cache.Cache
}

func NewStore(client remote.Client, notifier *notify.Dispatcher, cfg config.Feed, log log.Log) *Store {
	return &Store{
		client:     client,
		notifier:   notifier,
		cfg:        cfg,
		log:        log,
		tabs:       emptyTabs(),
		currentTab: content.TabAll,
		statsCache: cache.New(cfg.Converted.StatsTTL, 10*time.Minute),
	}
}

func emptyTabs() map[content.TabID]*tabState {
	tabs := make(map[content.TabID]*tabState, len(content.Tabs))
	for _, id := range content.Tabs {
		tabs[id] = newTabState()
	}

	return tabs
}

func (s *Store) tab(id content.TabID) *tabState {
	if t, ok := s.tabs[id]; ok {
		return t
	}

	t := newTabState()
	s.tabs[id] = t

	return t
}

// Load fetches the tab's current page. At most one top-level load runs
// across the whole store at any instant; a call that arrives while one
// is in flight is a no-op. With refresh, the tab is reset to page 1 and
// its collection cleared before the fetch, and the response replaces the
// content; without it, the response is appended, minus any item already
// present.
func (s *Store) Load(ctx context.Context, tab content.TabID, refresh bool) error {
	_, err := s.load(ctx, tab, refresh)
	return err
}

// load reports whether the fetch was actually performed, so that
// LoadMore can undo its page increment when the call was elided.
func (s *Store) load(ctx context.Context, tab content.TabID, refresh bool) (bool, error) {
	if !tab.Valid() {
		return false, errors.Errorf("unknown tab %q", tab)
	}

	s.mu.Lock()

	if s.loading {
		s.mu.Unlock()
		s.log.Debugf("Skipping load of tab %s, another load is in flight", tab)

		return false, nil
	}

	s.loading = true
	t := s.tab(tab)

	if refresh {
		t.clear()
	}

	firstLoad := !t.initialized
	opts := remote.FeedOptions{Page: t.pagination.Page, Limit: s.cfg.PageSize}

	s.mu.Unlock()

	items, pagination, err := s.client.Feed(ctx, tab, opts)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false

	if err != nil {
		// No partial mutation: the page number and content stay as
		// they were.
		s.lastErr = err
		s.notifier.APIError(err, fmt.Sprintf("Could not load the %s feed.", tab))

		return true, err
	}

	added := t.merge(items)
	t.pagination = pagination
	t.initialized = true
	t.lastFetch = time.Now()
	s.lastErr = nil

	s.log.Debugf("Loaded page %d of tab %s: %d items, %d new", pagination.Page, tab, len(items), added)

	if firstLoad && len(t.items) == 0 {
		s.notifier.Add(notify.Info, "Nothing to show", "There are no posts in this feed yet.")
	}

	return true, nil
}

// LoadMore appends the next page to the current tab. It is a no-op when
// the tab has no further pages or another page-append is in flight. The
// page number is incremented up front and rolled back if the load does
// not commit, so a retry targets the same page instead of skipping it.
func (s *Store) LoadMore(ctx context.Context) error {
	s.mu.Lock()

	tab := s.currentTab
	t := s.tab(tab)

	if s.infiniteLoading || !t.pagination.HasMore() {
		s.mu.Unlock()
		return nil
	}

	s.infiniteLoading = true
	t.pagination.Page++
	next := t.pagination.Page

	s.mu.Unlock()

	performed, err := s.load(ctx, tab, false)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.infiniteLoading = false

	if err != nil || !performed {
		// Undo the optimistic increment, but only if it is still in
		// place; a refresh or reset in the meantime already replaced the
		// pagination and must not be pushed below page 1.
		if t := s.tab(tab); t.pagination.Page == next {
			t.pagination.Page--
		}
	}

	return err
}

// SwitchTab makes the tab the active one, lazily loading it the first
// time around. Other tabs keep their cached content, so returning to a
// previously visited tab shows it instantly.
func (s *Store) SwitchTab(ctx context.Context, tab content.TabID) error {
	if !tab.Valid() {
		return errors.Errorf("unknown tab %q", tab)
	}

	s.mu.Lock()

	s.currentTab = tab
	t := s.tab(tab)
	needsLoad := !t.initialized || len(t.items) == 0

	s.mu.Unlock()

	if needsLoad {
		return s.Load(ctx, tab, true)
	}

	return nil
}

// ResetAll returns the store to its constructed state. A load still in
// flight commits into a discarded tab state and is effectively dropped.
func (s *Store) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tabs = emptyTabs()
	s.currentTab = content.TabAll
	s.lastErr = nil
	s.statsCache.Flush()

	s.log.Infoln("Feed store reset")
}

func (s *Store) CurrentTab() content.TabID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currentTab
}

// Items returns a copy of a tab's collection.
func (s *Store) Items(tab content.TabID) []content.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tab(tab)
	items := make([]content.Item, len(t.items))
	copy(items, t.items)

	return items
}

func (s *Store) CurrentItems() []content.Item {
	return s.Items(s.CurrentTab())
}

func (s *Store) Pagination(tab content.TabID) content.Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tab(tab).pagination
}

func (s *Store) CurrentPagination() content.Pagination {
	return s.Pagination(s.CurrentTab())
}

func (s *Store) HasContent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tab(s.currentTab).items) > 0
}

func (s *Store) Initialized(tab content.TabID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tab(tab).initialized
}

func (s *Store) LastFetchTime(tab content.TabID) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tab(tab).lastFetch
}

func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

func (s *Store) IsInfiniteLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.infiniteLoading
}

// ReadyForInfiniteScroll reports whether a sentinel trigger should be
// allowed to request the next page of the current tab.
func (s *Store) ReadyForInfiniteScroll() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tab(s.currentTab)

	return t.initialized && !s.loading && !s.infiniteLoading && t.pagination.HasMore()
}

// LastError returns the error recorded by the most recent failed load,
// if a successful one has not cleared it since.
func (s *Store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastErr
}
