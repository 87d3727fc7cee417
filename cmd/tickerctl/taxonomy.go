package main

import (
	"ticker/db"
	"ticker/feed"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

var categoryAddCmd = &cobra.Command{
	Use:     "add <slug> <title>",
	Short:   "Add a category",
	Example: `  tickerctl category add tech "Technology"`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(adb db.DB) error {
			c := &feed.Category{Slug: args[0], Title: args[1]}
			err := adb.Create(c)
			if err != nil {
				return err
			}

			return printJSON(c)
		})
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(adb db.DB) error {
			cats, err := adb.Categories()
			if err != nil {
				return err
			}

			for _, c := range cats {
				if err := printJSON(c); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Manage sources",
}

var sourceAddCmd = &cobra.Command{
	Use:     "add <slug> <title>",
	Short:   "Add a source",
	Example: `  tickerctl source add bbc "BBC News"`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(adb db.DB) error {
			s := &feed.Source{Slug: args[0], Title: args[1]}
			err := adb.Create(s)
			if err != nil {
				return err
			}

			return printJSON(s)
		})
	},
}

var sourceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sources",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(adb db.DB) error {
			srcs, err := adb.Sources()
			if err != nil {
				return err
			}

			for _, s := range srcs {
				if err := printJSON(s); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Manage feeds",
}

var feedAddCmd = &cobra.Command{
	Use:     "add <source-slug> <category-slug> <url>",
	Short:   "Subscribe to a feed",
	Example: `  tickerctl feed add bbc tech http://feeds.bbci.co.uk/news/technology/rss.xml`,
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(adb db.DB) error {
			src, err := adb.SourceBySlug(args[0])
			if err != nil {
				return err
			}
			if src == nil {
				return errors.Errorf("no source with slug %q", args[0])
			}

			cat, err := adb.CategoryBySlug(args[1])
			if err != nil {
				return err
			}
			if cat == nil {
				return errors.Errorf("no category with slug %q", args[1])
			}

			f := &feed.Feed{SourceID: src.ID, CategoryID: cat.ID, URL: args[2]}
			existing, err := adb.MatchingFeed(f)
			if err != nil {
				return err
			}
			if existing != nil {
				return errors.Errorf("feed %s already exists", existing.URL)
			}

			err = adb.Create(f)
			if err != nil {
				return err
			}

			f.Source = src
			f.Category = cat
			return printJSON(f)
		})
	},
}

var feedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List feeds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(adb db.DB) error {
			feeds, err := adb.Feeds()
			if err != nil {
				return err
			}

			for _, f := range feeds {
				if err := printJSON(f); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

func init() {
	categoryCmd.AddCommand(categoryAddCmd, categoryListCmd)
	sourceCmd.AddCommand(sourceAddCmd, sourceListCmd)
	feedCmd.AddCommand(feedAddCmd, feedListCmd)

	rootCmd.AddCommand(categoryCmd, sourceCmd, feedCmd)
}
