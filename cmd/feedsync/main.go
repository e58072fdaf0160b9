package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"feedsync/content"
)

var cfgPath string

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "feedsync",
		Short:        "Browse and interact with the categorized content feed",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (toml)")

	root.AddCommand(statsCmd())
	root.AddCommand(listCmd())
	root.AddCommand(likeCmd())
	root.AddCommand(commentsCmd())
	root.AddCommand(commentCmd())
	root.AddCommand(loginCmd())
	root.AddCommand(logoutCmd())

	return root
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the feed item counts per category",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
}

func listCmd() *cobra.Command {
	var pages int

	cmd := &cobra.Command{
		Use:   "list [tab]",
		Short: "List feed items of a tab (all, news, community)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tab := content.TabAll
			if len(args) > 0 {
				tab = content.TabID(args[0])
			}

			return runList(tab, pages)
		},
	}

	cmd.Flags().IntVar(&pages, "pages", 1, "number of pages to load")

	return cmd
}

func likeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <item-id>",
		Short: "Toggle the like of a feed item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}

			return runLike(content.ItemID(id))
		},
	}
}

func commentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comments <item-id>",
		Short: "Show the comments of a feed item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}

			return runComments(content.ItemID(id))
		},
	}
}

func commentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment <item-id> <text>",
		Short: "Post a comment on a feed item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}

			return runComment(content.ItemID(id), args[1])
		},
	}
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <token>",
		Short: "Store the bearer credential used for requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(args[0])
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored bearer credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout()
		},
	}
}
