package main

import (
	"fmt"
	"ticker/auth"
	"ticker/db"
	"ticker/user"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	resetToken   = "reset"
	confirmToken = "confirm"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

func requireUser(adb db.DB, email string) (*user.User, error) {
	u, err := adb.UserByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.Errorf("no user with email %q", email)
	}

	return u, nil
}

var userCreateCmd = &cobra.Command{
	Use:     "create <email>",
	Short:   "Create a user, reading the password from stdin",
	Example: `  echo 's3cret' | tickerctl user create alice@example.com`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := scanLine()
		if err != nil {
			return err
		}

		return withDB(func(adb db.DB) error {
			u := user.New(args[0])
			err := u.SetPassword(password)
			if err != nil {
				return err
			}

			err = adb.Create(u)
			if db.IsDuplicate(err) {
				return errors.Errorf("user %s already exists", args[0])
			}
			if err != nil {
				return err
			}

			return printJSON(u)
		})
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(adb db.DB) error {
			users, err := adb.Users()
			if err != nil {
				return err
			}

			for _, u := range users {
				if err := printJSON(u); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var userPasswordCmd = &cobra.Command{
	Use:   "password <email>",
	Short: "Set a user's password, reading it from stdin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := scanLine()
		if err != nil {
			return err
		}

		return withDB(func(adb db.DB) error {
			u, err := requireUser(adb, args[0])
			if err != nil {
				return err
			}

			return adb.SetPassword(u, password)
		})
	},
}

var userTokenCmd = &cobra.Command{
	Use:   "token <email>",
	Short: "Issue a password reset or email confirmation token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")

		return withDB(func(adb db.DB) error {
			u, err := requireUser(adb, args[0])
			if err != nil {
				return err
			}

			var token string
			switch kind {
			case resetToken:
				token, err = u.ResetPasswordToken(cfg.SecretKey)
			case confirmToken:
				token, err = u.EmailConfirmToken(cfg.SecretKey)
			default:
				return errors.Errorf("unknown token kind: %q", kind)
			}
			if err != nil {
				return err
			}

			fmt.Println(token)
			return nil
		})
	},
}

var userVerifyCmd = &cobra.Command{
	Use:   "verify <token>",
	Short: "Verify a token and print its user",
	Long: `Verify a token and print its user. Verifying a confirmation token marks
the user's email as confirmed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")

		return withDB(func(adb db.DB) error {
			var (
				u   *user.User
				err error
			)
			switch kind {
			case resetToken:
				u, err = adb.UserFromResetPasswordToken(cfg.SecretKey, args[0])
			case confirmToken:
				u, err = adb.UserFromEmailConfirmToken(cfg.SecretKey, args[0])
			default:
				return errors.Errorf("unknown token kind: %q", kind)
			}
			if err != nil {
				return err
			}
			if u == nil {
				return errors.New("invalid or expired token")
			}

			if kind == confirmToken && !u.Confirmed {
				err = adb.Update(u, map[string]interface{}{"confirmed": true})
				if err != nil {
					return err
				}
			}

			return printJSON(u)
		})
	},
}

var userExcludeCmd = &cobra.Command{
	Use:   "exclude <email>",
	Short: "Replace the sources and categories hidden from a user",
	Long: `Replace the sources and categories hidden from a user. Only the lists
named by a flag are replaced; pass an empty value to clear one.`,
	Example: `  tickerctl user exclude alice@example.com --sources bbc,cnn --categories ""`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		sourceSlugs, _ := flags.GetStringSlice("sources")
		categorySlugs, _ := flags.GetStringSlice("categories")

		return withDB(func(adb db.DB) error {
			u, err := requireUser(adb, args[0])
			if err != nil {
				return err
			}

			if flags.Changed("sources") {
				var ids []uint
				for _, slug := range sourceSlugs {
					s, err := adb.SourceBySlug(slug)
					if err != nil {
						return err
					}
					if s == nil {
						return errors.Errorf("no source with slug %q", slug)
					}
					ids = append(ids, s.ID)
				}

				err = adb.UpdateExcludedSources(u, ids)
				if err != nil {
					return err
				}
			}

			if flags.Changed("categories") {
				var ids []uint
				for _, slug := range categorySlugs {
					c, err := adb.CategoryBySlug(slug)
					if err != nil {
						return err
					}
					if c == nil {
						return errors.Errorf("no category with slug %q", slug)
					}
					ids = append(ids, c.ID)
				}

				err = adb.UpdateExcludedCategories(u, ids)
				if err != nil {
					return err
				}
			}

			return printJSON(u)
		})
	},
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete <email>",
	Short: "Delete a user along with their bookmarks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(adb db.DB) error {
			u, err := requireUser(adb, args[0])
			if err != nil {
				return err
			}

			return adb.Delete(u)
		})
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print the bcrypt hash of the given password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.Hash(args[0])
		if err != nil {
			return err
		}

		fmt.Println(hash)
		return nil
	},
}

func init() {
	userTokenCmd.Flags().String("kind", resetToken, "reset or confirm")
	userVerifyCmd.Flags().String("kind", resetToken, "reset or confirm")
	userExcludeCmd.Flags().StringSlice("sources", nil, "source slugs to hide")
	userExcludeCmd.Flags().StringSlice("categories", nil, "category slugs to hide")

	userCmd.AddCommand(
		userCreateCmd,
		userListCmd,
		userPasswordCmd,
		userTokenCmd,
		userVerifyCmd,
		userExcludeCmd,
		userDeleteCmd)

	rootCmd.AddCommand(userCmd, hashPasswordCmd)
}
