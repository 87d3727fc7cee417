package db

import (
	"ticker/config"
	"ticker/feed"
	"ticker/job"
	"ticker/process"
	"ticker/user"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

var (
	// ErrMissingID is returned when updating or deleting a record that was
	// never saved
	ErrMissingID = errors.New("record has no primary key")

	// ErrNotFound is returned when a write refers to a record that does not
	// exist
	ErrNotFound = errors.New("record not found")

	// ErrInUse is returned when deleting a source or category that feeds
	// still refer to
	ErrInUse = errors.New("record is referenced by feeds")
)

// Locker contains the methods needed to hold a job lock
type Locker interface {
	MatchingJobLock(job.Job) (*job.JobLock, error)
	SaveJobLock(*job.JobLock) error
	DeleteJobLock(*job.JobLock) error
}

// PostLister contains the methods needed to build post listing pages
type PostLister interface {
	Post(id uint) (*feed.Post, error)
	Posts(*PostQuery) (*PostResult, error)
	SimilarPostIDs(postID uint) ([]uint, error)
	BookmarkedPostIDs(userID uint) ([]uint, error)
	SourceBySlug(string) (*feed.Source, error)
	CategoryBySlug(string) (*feed.Category, error)
}

// Collector contains the methods needed to ingest posts from feeds
type Collector interface {
	Locker
	Feeds() ([]*feed.Feed, error)
	FeedStatus(feedID uint) (*feed.Status, error)
	SaveFeedStatus(*feed.Status) error
	MatchingPost(*feed.Post) (*feed.Post, error)
	IngestPost(*feed.Post) error
}

// Purger contains the methods needed to delete expired posts
type Purger interface {
	Locker
	ExpiredPostIDs(before time.Time, limit int) ([]uint, error)
	DeletePosts(ids []uint) (int, error)
}

// DB contains the methods needed to store and read data from the underlying
// database
type DB interface {
	PostLister
	Collector
	Purger

	Ping() error
	Close() error

	Create(model interface{}) error
	Save(model interface{}) error
	Update(model interface{}, fields map[string]interface{}) error
	Delete(model interface{}) error

	Categories() ([]*feed.Category, error)
	CategoriesByID(ids []uint) ([]*feed.Category, error)
	Sources() ([]*feed.Source, error)
	SourcesByID(ids []uint) ([]*feed.Source, error)
	Feed(id uint) (*feed.Feed, error)
	MatchingFeed(*feed.Feed) (*feed.Feed, error)

	EnqueuedEntities(limit int) ([]*process.EntityQueue, error)
	SaveEntities(postID uint, entities []string) error
	EnqueuedSimilarities(limit int) ([]*process.SimilarityQueue, error)
	SaveSimilarities(postID uint, relatedIDs []uint) error

	RecordClick(postID uint, userID *uint) (*user.Click, error)
	AddBookmark(userID, postID uint) (*user.Bookmark, error)
	RemoveBookmark(userID, postID uint) error

	Users() ([]*user.User, error)
	User(id uint) (*user.User, error)
	UserByEmail(email string) (*user.User, error)
	SetPassword(u *user.User, password string) error
	Authenticate(email, password string) (*user.User, error)
	UserFromResetPasswordToken(secret, token string) (*user.User, error)
	UserFromEmailConfirmToken(secret, token string) (*user.User, error)
	UpdateExcludedCategories(u *user.User, categoryIDs []uint) error
	UpdateExcludedSources(u *user.User, sourceIDs []uint) error
	TouchUser(*user.User) error
}

// New opens the database described by the given config
func New(cfg *config.DBConfig) (DB, error) {
	gdb, err := gorm.Open(cfg.Dialect, cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open DB")
	}

	// sqlite serializes writers; a single connection avoids "database is
	// locked" errors
	if cfg.Dialect == "sqlite3" {
		gdb.DB().SetMaxOpenConns(1)
	}

	gdb.LogMode(cfg.LogMode)

	return FromGorm(gdb), nil
}

// FromGorm wraps an open gorm connection
func FromGorm(gdb *gorm.DB) DB {
	return &gormDB{db: gdb}
}

type gormDB struct {
	db *gorm.DB
}

// IsDuplicate reports whether err was caused by a unique constraint
// violation
func IsDuplicate(err error) bool {
	switch e := errors.Cause(err).(type) {
	case sqlite3.Error:
		return e.ExtendedCode == sqlite3.ErrConstraintUnique ||
			e.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	case *pq.Error:
		return e.Code.Name() == "unique_violation"
	}

	return false
}

func (gdb *gormDB) transaction(fn func(tx *gorm.DB) error) error {
	tx := gdb.db.Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	err := fn(tx)
	if err != nil {
		tx.Rollback()
		return err
	}

	return errors.Wrap(tx.Commit().Error, "failed to commit transaction")
}

// first loads the first record matching the conditions into out. found is
// false when nothing matched
func first(q *gorm.DB, out interface{}, where ...interface{}) (found bool, err error) {
	err = q.First(out, where...).Error
	if gorm.IsRecordNotFoundError(err) {
		return false, nil
	}

	return err == nil, err
}

func (gdb *gormDB) Ping() error {
	return errors.Wrap(gdb.db.DB().Ping(), "failed to ping DB")
}

func (gdb *gormDB) Close() error {
	return errors.Wrap(gdb.db.Close(), "failed to close DB")
}

func (gdb *gormDB) Create(model interface{}) error {
	return errors.Wrap(gdb.db.Create(model).Error, "failed to create record")
}

func (gdb *gormDB) Save(model interface{}) error {
	return errors.Wrap(gdb.db.Save(model).Error, "failed to save record")
}

func (gdb *gormDB) Update(model interface{}, fields map[string]interface{}) error {
	if gdb.db.NewScope(model).PrimaryKeyZero() {
		return ErrMissingID
	}

	err := gdb.db.Model(model).Updates(fields).Error
	return errors.Wrap(err, "failed to update record")
}

func (gdb *gormDB) Delete(model interface{}) error {
	if gdb.db.NewScope(model).PrimaryKeyZero() {
		return ErrMissingID
	}

	var err error
	switch m := model.(type) {
	case *feed.Post:
		_, err = gdb.DeletePosts([]uint{m.ID})
	case *feed.Feed:
		err = gdb.deleteFeed(m)
	case *feed.Source:
		err = gdb.deleteTaxonomy(m, "source_id", "user_excluded_sources", m.ID)
	case *feed.Category:
		err = gdb.deleteTaxonomy(m, "category_id", "user_excluded_categories", m.ID)
	case *user.User:
		err = gdb.deleteUser(m)
	default:
		err = errors.Wrap(gdb.db.Delete(model).Error, "failed to delete record")
	}

	return err
}

func (gdb *gormDB) deleteFeed(f *feed.Feed) error {
	return gdb.transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		err := tx.Model(&feed.Post{}).Where("feed_id = ?", f.ID).Pluck("id", &postIDs).Error
		if err != nil {
			return errors.Wrap(err, "failed to get feed posts")
		}

		_, err = deletePosts(tx, postIDs)
		if err != nil {
			return err
		}

		err = tx.Where("feed_id = ?", f.ID).Delete(&feed.Status{}).Error
		if err != nil {
			return errors.Wrap(err, "failed to delete feed status")
		}

		return errors.Wrap(tx.Delete(f).Error, "failed to delete feed")
	})
}

func (gdb *gormDB) deleteTaxonomy(model interface{}, column, joinTable string, id uint) error {
	var n int
	err := gdb.db.Model(&feed.Feed{}).Where(column+" = ?", id).Count(&n).Error
	if err != nil {
		return errors.Wrap(err, "failed to count feeds")
	}
	if n > 0 {
		return ErrInUse
	}

	return gdb.transaction(func(tx *gorm.DB) error {
		err := tx.Exec("DELETE FROM "+joinTable+" WHERE "+column+" = ?", id).Error
		if err != nil {
			return errors.Wrap(err, "failed to delete exclusions")
		}

		return errors.Wrap(tx.Delete(model).Error, "failed to delete record")
	})
}

func (gdb *gormDB) deleteUser(u *user.User) error {
	return gdb.transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", u.ID).Delete(&user.Bookmark{}).Error
		if err != nil {
			return errors.Wrap(err, "failed to delete bookmarks")
		}

		err = tx.Model(&user.Click{}).Where("user_id = ?", u.ID).UpdateColumn("user_id", gorm.Expr("NULL")).Error
		if err != nil {
			return errors.Wrap(err, "failed to detach clicks")
		}

		for _, table := range []string{"user_excluded_sources", "user_excluded_categories"} {
			err = tx.Exec("DELETE FROM "+table+" WHERE user_id = ?", u.ID).Error
			if err != nil {
				return errors.Wrap(err, "failed to delete exclusions")
			}
		}

		return errors.Wrap(tx.Delete(u).Error, "failed to delete user")
	})
}
