package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"feedsync/content"
)

func runStats() error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.close()

	stats, err := e.store.Stats(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Total posts: %d\n", stats.Total)
	for _, typ := range []content.ItemType{content.TypeNews, content.TypeCommunity} {
		fmt.Printf("  %s: %d\n", typ, stats.ByType[typ])
	}

	return nil
}

func runList(tab content.TabID, pages int) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.close()

	ctx := context.Background()

	if err := e.store.SwitchTab(ctx, tab); err != nil {
		return err
	}

	for p := 1; p < pages && e.store.ReadyForInfiniteScroll(); p++ {
		if err := e.store.LoadMore(ctx); err != nil {
			break
		}
	}

	items := e.store.Items(tab)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Type", "Title", "Author", "Likes", "Comments", "Published"})

	for _, item := range items {
		table.Append([]string{
			strconv.FormatInt(int64(item.ID), 10),
			string(item.Type),
			item.Title,
			item.Author,
			strconv.Itoa(item.LikesCount),
			strconv.Itoa(item.CommentsCount),
			item.PublishedAt.Format("2006-01-02 15:04"),
		})
	}

	table.Render()

	pagination := e.store.Pagination(tab)
	fmt.Printf("Page %d of %d, %d posts total\n", pagination.Page, pagination.TotalPages, pagination.Total)

	return nil
}

func runLike(id content.ItemID) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.close()

	if err := e.store.ToggleLike(context.Background(), id); err != nil {
		return err
	}

	fmt.Printf("Toggled like of item %d\n", id)

	return nil
}

func runComments(id content.ItemID) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.close()

	comments, err := e.store.Comments(context.Background(), id)
	if err != nil {
		return err
	}

	if len(comments) == 0 {
		fmt.Println("No comments yet")
		return nil
	}

	for _, c := range comments {
		author := c.Author
		if author == "" {
			author = "anonymous"
		}

		fmt.Printf("%s (%s):\n  %s\n", author, c.CreatedAt.Format("2006-01-02 15:04"), c.Content)
	}

	return nil
}

func runComment(id content.ItemID, text string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.close()

	result, err := e.store.CreateComment(context.Background(), id, text)
	if err != nil {
		return err
	}

	fmt.Printf("Comment %d posted, item %d now has %d comments\n", result.ID, id, result.CommentsCount)

	return nil
}

func runLogin(tok string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.close()

	if err := e.tokens.Store(tok); err != nil {
		return err
	}

	fmt.Println("Credential stored")

	return nil
}

func runLogout() error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.close()

	if err := e.tokens.Remove(); err != nil {
		return err
	}

	e.store.ResetAll()
	fmt.Println("Credential removed")

	return nil
}
