package db

import (
	"ticker/feed"
	"ticker/job"
	"ticker/process"
	"ticker/user"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"gopkg.in/gormigrate.v1"
)

type foreignKey struct {
	model    interface{}
	field    string
	dest     string
	onDelete string
}

// Foreign keys are only added on postgres; gorm cannot alter sqlite tables to
// add them
var foreignKeys = []foreignKey{
	{&feed.Feed{}, "source_id", "sources(id)", "RESTRICT"},
	{&feed.Feed{}, "category_id", "categories(id)", "RESTRICT"},
	{&feed.Status{}, "feed_id", "feeds(id)", "CASCADE"},
	{&feed.Post{}, "feed_id", "feeds(id)", "RESTRICT"},
	{&process.EntityQueue{}, "post_id", "posts(id)", "CASCADE"},
	{&process.Entity{}, "post_id", "posts(id)", "CASCADE"},
	{&process.SimilarityQueue{}, "post_id", "posts(id)", "CASCADE"},
	{&process.Similarity{}, "source_id", "posts(id)", "CASCADE"},
	{&process.Similarity{}, "related_id", "posts(id)", "CASCADE"},
	{&user.Click{}, "user_id", "users(id)", "SET NULL"},
	{&user.Click{}, "post_id", "posts(id)", "CASCADE"},
	{&user.Bookmark{}, "user_id", "users(id)", "CASCADE"},
	{&user.Bookmark{}, "post_id", "posts(id)", "CASCADE"},
}

func migrations() []*gormigrate.Migration {
	var migrations []*gormigrate.Migration
	migrations = append(migrations, &gormigrate.Migration{
		ID: "201912011200",
		Migrate: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&feed.Category{},
				&feed.Source{},
				&feed.Feed{},
				&feed.Status{},
				&feed.Post{}).Error
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.DropTableIfExists(
				"posts",
				"feed_statuses",
				"feeds",
				"sources",
				"categories").Error
		},
	})

	migrations = append(migrations, &gormigrate.Migration{
		ID: "201912031830",
		Migrate: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&process.EntityQueue{},
				&process.Entity{},
				&process.SimilarityQueue{},
				&process.Similarity{}).Error
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.DropTableIfExists(
				"similarities",
				"similarity_queue",
				"entities",
				"entity_queue").Error
		},
	})

	migrations = append(migrations, &gormigrate.Migration{
		ID: "201912102115",
		Migrate: func(tx *gorm.DB) error {
			err := tx.AutoMigrate(
				&user.User{},
				&user.Click{},
				&user.Bookmark{}).Error
			if err != nil {
				return err
			}

			return tx.Model(&user.Bookmark{}).AddIndex(
				"ix_user_bookmark",
				"user_id",
				"post_id").Error
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.DropTableIfExists(
				"bookmarks",
				"clicks",
				"user_excluded_categories",
				"user_excluded_sources",
				"users").Error
		},
	})

	migrations = append(migrations, &gormigrate.Migration{
		ID: "202001142040",
		Migrate: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&job.JobLock{}).Error
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.DropTableIfExists("joblock").Error
		},
	})

	migrations = append(migrations, &gormigrate.Migration{
		ID: "202002221005",
		Migrate: func(tx *gorm.DB) error {
			if tx.Dialect().GetName() != "postgres" {
				return nil
			}

			for _, fk := range foreignKeys {
				err := tx.Model(fk.model).AddForeignKey(
					fk.field,
					fk.dest,
					fk.onDelete,
					"CASCADE").Error
				if err != nil {
					return err
				}
			}

			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			if tx.Dialect().GetName() != "postgres" {
				return nil
			}

			for _, fk := range foreignKeys {
				err := tx.Model(fk.model).RemoveForeignKey(fk.field, fk.dest).Error
				if err != nil {
					return err
				}
			}

			return nil
		},
	})

	return migrations
}

func migrator(db DB) (*gormigrate.Gormigrate, error) {
	gdb, ok := db.(*gormDB)
	if !ok {
		return nil, errors.Errorf("db type: (%T), expected gorm.DB", db)
	}

	return gormigrate.New(gdb.db, gormigrate.DefaultOptions, migrations()), nil
}

// Migrate applies migrations to the given database
func Migrate(db DB) error {
	m, err := migrator(db)
	if err != nil {
		return err
	}

	return errors.Wrap(m.Migrate(), "failed to migrate gorm DB")
}

// Rollback undoes the most recently applied migration
func Rollback(db DB) error {
	m, err := migrator(db)
	if err != nil {
		return err
	}

	return errors.Wrap(m.RollbackLast(), "failed to roll back gorm DB")
}
