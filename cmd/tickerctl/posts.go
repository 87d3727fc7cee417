package main

import (
	"context"
	"ticker/cache"
	"ticker/db"
	"ticker/page"
	"ticker/user"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Print a page of posts",
	Long: `Print a page of posts as the reader would see it.

Kinds are all_posts, posts_by_source, posts_by_category, similar_posts and
bookmarked_posts. --arg names the source or category slug, or the post id
for similar_posts. --user applies that user's exclusions and is required
for bookmarked_posts.

Example:
  tickerctl posts --sort latest
  tickerctl posts --kind posts_by_source --arg bbc --page 2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		kind, _ := flags.GetString("kind")
		arg, _ := flags.GetString("arg")
		sortName, _ := flags.GetString("sort")
		pageNum, _ := flags.GetInt("page")
		perPage, _ := flags.GetInt("per-page")
		email, _ := flags.GetString("user")

		sort, err := db.ParseSort(sortName)
		if err != nil {
			return err
		}

		c, err := cache.New(cfg.Redis.URL)
		if err != nil {
			return err
		}

		return withDB(func(adb db.DB) error {
			var u *user.User
			if email != "" {
				u, err = adb.UserByEmail(email)
				if err != nil {
					return err
				}
				if u == nil {
					return errors.Errorf("no user with email %q", email)
				}
			}

			pg, err := page.New(context.Background(), adb, c, page.Request{
				Kind:    page.Kind(kind),
				Arg:     arg,
				Sort:    sort,
				Page:    pageNum,
				PerPage: perPage,
				User:    u,
			})
			if err != nil {
				return err
			}

			return printJSON(pg)
		})
	},
}

func init() {
	flags := postsCmd.Flags()
	flags.String("kind", string(page.All), "page kind")
	flags.String("arg", "", "source or category slug, or post id")
	flags.String("sort", string(db.Popular), "popular or latest")
	flags.Int("page", 1, "page number")
	flags.Int("per-page", db.DefaultPerPage, "posts per page")
	flags.String("user", "", "email of the reading user")

	rootCmd.AddCommand(postsCmd)
}
