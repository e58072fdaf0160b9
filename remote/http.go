package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"

	"feedsync/config"
	"feedsync/content"
	"feedsync/log"
	"feedsync/token"
)

type httpClient struct {
	base   string
	sort   string
	order  string
	client *http.Client
	tokens token.Source
	log    log.Log
}

// New creates the HTTP implementation of the collaborator. The bearer
// credential is read from the token source on every request; its absence
// produces an anonymous request.
func New(cfg config.Config, tokens token.Source, log log.Log) Client {
	return &httpClient{
		base:   strings.TrimRight(cfg.Remote.URL, "/"),
		sort:   cfg.Remote.Sort,
		order:  cfg.Remote.Order,
		client: NewTimeoutClient(cfg.Timeout.Converted.Connect, cfg.Timeout.Converted.ReadWrite),
		tokens: tokens,
		log:    log,
	}
}

// NewTimeoutClient creates an http client with separate connect and
// read-write timeouts.
func NewTimeoutClient(connectTimeout, readWriteTimeout time.Duration) *http.Client {
	dialer := &net.Dialer{Timeout: connectTimeout}

	return &http.Client{
		Timeout: readWriteTimeout,
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, netw, addr string) (net.Conn, error) {
				conn, err := dialer.DialContext(ctx, netw, addr)
				if err != nil {
					return nil, err
				}

				conn.SetDeadline(time.Now().Add(readWriteTimeout))
				return conn, nil
			},
		},
	}
}

func (c *httpClient) Feed(ctx context.Context, tab content.TabID, opts FeedOptions) ([]content.Item, content.Pagination, error) {
	op := fmt.Sprintf("fetching %s feed page %d", tab, opts.Page)

	path := "/feed"
	if category, ok := tab.Category(); ok {
		path += "/" + url.PathEscape(string(category))
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(opts.Page))
	query.Set("limit", strconv.Itoa(opts.Limit))
	query.Set("sort", valueOr(opts.Sort, c.sort))
	query.Set("order", valueOr(opts.Order, c.order))

	var envelope struct {
		Items      []wireItem         `json:"items"`
		Pagination content.Pagination `json:"pagination"`
	}

	if err := c.get(ctx, op, path, query, &envelope); err != nil {
		return nil, content.Pagination{}, err
	}

	if envelope.Pagination.Page < 1 {
		return nil, content.Pagination{}, validationErr(op, errors.Errorf(
			"server reported page %d", envelope.Pagination.Page))
	}

	items := make([]content.Item, 0, len(envelope.Items))
	for _, w := range envelope.Items {
		item, err := w.convert(op)
		if err != nil {
			return nil, content.Pagination{}, err
		}

		items = append(items, item)
	}

	return items, envelope.Pagination, nil
}

func (c *httpClient) Stats(ctx context.Context) (content.Stats, error) {
	op := "fetching feed stats"

	var envelope struct {
		Total  int `json:"total"`
		ByType map[string]struct {
			Count int `json:"count"`
		} `json:"byType"`
	}

	if err := c.get(ctx, op, "/feed/stats", nil, &envelope); err != nil {
		return content.Stats{}, err
	}

	stats := content.Stats{Total: envelope.Total, ByType: map[content.ItemType]int{}}
	for typ, counts := range envelope.ByType {
		stats.ByType[content.ItemType(typ)] = counts.Count
	}

	return stats, nil
}

func (c *httpClient) ToggleLike(ctx context.Context, id content.ItemID) (LikeResult, error) {
	op := fmt.Sprintf("toggling like of item %d", id)

	status, body, err := c.request(ctx, op, http.MethodPost, fmt.Sprintf("/feed/%d/like", id), nil, nil)
	if err != nil {
		return LikeResult{}, err
	}

	return translateLikeResponse(op, status, body)
}

func (c *httpClient) Comments(ctx context.Context, id content.ItemID) ([]content.Comment, error) {
	op := fmt.Sprintf("fetching comments of item %d", id)

	var wire []wireComment
	if err := c.get(ctx, op, fmt.Sprintf("/feed/%d/comments", id), nil, &wire); err != nil {
		return nil, err
	}

	comments := make([]content.Comment, 0, len(wire))
	for _, w := range wire {
		comment, err := w.convert(op)
		if err != nil {
			return nil, err
		}

		comments = append(comments, comment)
	}

	return comments, nil
}

func (c *httpClient) CreateComment(ctx context.Context, id content.ItemID, text string) (CommentResult, error) {
	op := fmt.Sprintf("creating comment on item %d", id)

	var result CommentResult
	payload := map[string]string{"content": text}

	if err := c.post(ctx, op, fmt.Sprintf("/feed/%d/comments", id), payload, &result); err != nil {
		return CommentResult{}, err
	}

	return result, nil
}

func (c *httpClient) ItemByOriginalID(ctx context.Context, typ content.ItemType, originalID int64) (content.Item, error) {
	op := fmt.Sprintf("fetching %s item by original id %d", typ, originalID)

	path := fmt.Sprintf("/items/%s/origin/%d", url.PathEscape(string(typ)), originalID)
	return c.item(ctx, op, path)
}

func (c *httpClient) ItemByFeedID(ctx context.Context, typ content.ItemType, id content.ItemID) (content.Item, error) {
	op := fmt.Sprintf("fetching %s item %d", typ, id)

	path := fmt.Sprintf("/items/%s/%d", url.PathEscape(string(typ)), id)
	return c.item(ctx, op, path)
}

func (c *httpClient) item(ctx context.Context, op, path string) (content.Item, error) {
	var wire wireItem
	if err := c.get(ctx, op, path, nil, &wire); err != nil {
		return content.Item{}, err
	}

	return wire.convert(op)
}

func (c *httpClient) get(ctx context.Context, op, path string, query url.Values, out interface{}) error {
	status, body, err := c.request(ctx, op, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}

	return decode(op, status, body, out)
}

func (c *httpClient) post(ctx context.Context, op, path string, payload, out interface{}) error {
	status, body, err := c.request(ctx, op, http.MethodPost, path, nil, payload)
	if err != nil {
		return err
	}

	return decode(op, status, body, out)
}

func (c *httpClient) request(ctx context.Context, op, method, path string, query url.Values, payload interface{}) (int, []byte, error) {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, validationErr(op, errors.Wrap(err, "marshaling request payload"))
		}

		reqBody = bytes.NewReader(b)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return 0, nil, networkErr(op, errors.Wrap(err, "constructing request"))
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if tok, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	c.log.Debugf("%s %s", method, target)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, networkErr(op, err)
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, networkErr(op, errors.Wrap(err, "reading response body"))
	}

	return resp.StatusCode, body, nil
}

func decode(op string, status int, body []byte, out interface{}) error {
	switch {
	case status == http.StatusNotFound:
		return Error{Kind: KindNotFound, Op: op, Message: serverMessage(body), Err: errors.New("not found")}
	case status < 200 || status > 299:
		return Error{
			Kind:    KindNetwork,
			Op:      op,
			Message: serverMessage(body),
			Err:     errors.Errorf("unexpected status %d", status),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return validationErr(op, errors.Wrap(err, "decoding response body"))
	}

	return nil
}

func serverMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}

	return envelope.Message
}

func valueOr(value, def string) string {
	if value != "" {
		return value
	}

	return def
}

type wireItem struct {
	ID            content.ItemID   `json:"id"`
	Type          content.ItemType `json:"type"`
	OriginalID    int64            `json:"originalId"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Author        string           `json:"author"`
	LikesCount    int              `json:"likesCount"`
	CommentsCount int              `json:"commentsCount"`
	IsLiked       bool             `json:"isLiked"`
	PublishedAt   string           `json:"publishedAt"`
}

func (w wireItem) convert(op string) (content.Item, error) {
	item := content.Item{
		ID:            w.ID,
		Type:          w.Type,
		OriginalID:    w.OriginalID,
		Title:         w.Title,
		Description:   w.Description,
		Author:        w.Author,
		LikesCount:    w.LikesCount,
		CommentsCount: w.CommentsCount,
		IsLiked:       w.IsLiked,
	}

	if w.PublishedAt != "" {
		published, err := dateparse.ParseAny(w.PublishedAt)
		if err != nil {
			return content.Item{}, validationErr(op, errors.Wrapf(err,
				"parsing published time of item %d", w.ID))
		}

		item.PublishedAt = published
	}

	if err := item.Validate(); err != nil {
		return content.Item{}, validationErr(op, err)
	}

	return item, nil
}

type wireComment struct {
	ID        content.CommentID `json:"id"`
	ItemID    content.ItemID    `json:"itemId"`
	Author    string            `json:"author"`
	Content   string            `json:"content"`
	CreatedAt string            `json:"createdAt"`
}

func (w wireComment) convert(op string) (content.Comment, error) {
	comment := content.Comment{
		ID:      w.ID,
		ItemID:  w.ItemID,
		Author:  w.Author,
		Content: w.Content,
	}

	if w.CreatedAt != "" {
		created, err := dateparse.ParseAny(w.CreatedAt)
		if err != nil {
			return content.Comment{}, validationErr(op, errors.Wrapf(err,
				"parsing creation time of comment %d", w.ID))
		}

		comment.CreatedAt = created
	}

	return comment, nil
}
