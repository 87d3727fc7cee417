package db

import (
	"ticker/feed"
	"ticker/user"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

func (gdb *gormDB) withExclusions() *gorm.DB {
	return gdb.db.Preload("ExcludedSources").Preload("ExcludedCategories")
}

func (gdb *gormDB) Users() ([]*user.User, error) {
	var users []*user.User
	err := gdb.db.Order("id").Find(&users).Error
	return users, errors.Wrap(err, "failed to get users")
}

func (gdb *gormDB) User(id uint) (*user.User, error) {
	var u user.User
	found, err := first(gdb.withExclusions(), &u, "id = ?", id)
	if !found {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return &u, nil
}

func (gdb *gormDB) UserByEmail(email string) (*user.User, error) {
	if email == "" {
		return nil, nil
	}

	var u user.User
	found, err := first(gdb.withExclusions(), &u, "email = ?", email)
	if !found {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return &u, nil
}

func (gdb *gormDB) SetPassword(u *user.User, password string) error {
	if u.ID == 0 {
		return ErrMissingID
	}

	err := u.SetPassword(password)
	if err != nil {
		return err
	}

	err = gdb.db.Model(u).UpdateColumn("password", u.Password).Error
	return errors.Wrap(err, "failed to save password")
}

// Authenticate returns the active user with the given credentials, or nil
// when they do not match
func (gdb *gormDB) Authenticate(email, password string) (*user.User, error) {
	u, err := gdb.UserByEmail(email)
	if err != nil || u == nil {
		return nil, err
	}

	ok, err := u.CheckPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check password")
	}
	if !ok || !u.IsActive() {
		return nil, nil
	}

	return u, nil
}

func (gdb *gormDB) UserFromResetPasswordToken(secret, token string) (*user.User, error) {
	id, ok := user.VerifyResetPasswordToken(secret, token)
	if !ok {
		return nil, nil
	}

	return gdb.User(id)
}

func (gdb *gormDB) UserFromEmailConfirmToken(secret, token string) (*user.User, error) {
	id, ok := user.VerifyEmailConfirmToken(secret, token)
	if !ok {
		return nil, nil
	}

	return gdb.User(id)
}

// UpdateExcludedCategories replaces the categories hidden from the user
func (gdb *gormDB) UpdateExcludedCategories(u *user.User, categoryIDs []uint) error {
	if u.ID == 0 {
		return ErrMissingID
	}

	categories, err := gdb.CategoriesByID(categoryIDs)
	if err != nil {
		return err
	}
	if len(categories) != len(unique(categoryIDs)) {
		return errors.Wrap(ErrNotFound, "failed to get excluded categories")
	}

	err = gdb.transaction(func(tx *gorm.DB) error {
		err := tx.Model(u).Association("ExcludedCategories").Replace(categories).Error
		return errors.Wrap(err, "failed to replace excluded categories")
	})
	if err != nil {
		return err
	}

	u.ExcludedCategories = categories
	return nil
}

// UpdateExcludedSources replaces the sources hidden from the user
func (gdb *gormDB) UpdateExcludedSources(u *user.User, sourceIDs []uint) error {
	if u.ID == 0 {
		return ErrMissingID
	}

	sources, err := gdb.SourcesByID(sourceIDs)
	if err != nil {
		return err
	}
	if len(sources) != len(unique(sourceIDs)) {
		return errors.Wrap(ErrNotFound, "failed to get excluded sources")
	}

	err = gdb.transaction(func(tx *gorm.DB) error {
		err := tx.Model(u).Association("ExcludedSources").Replace(sources).Error
		return errors.Wrap(err, "failed to replace excluded sources")
	})
	if err != nil {
		return err
	}

	u.ExcludedSources = sources
	return nil
}

// TouchUser records the user as seen now
func (gdb *gormDB) TouchUser(u *user.User) error {
	if u.ID == 0 {
		return ErrMissingID
	}

	now := time.Now().UTC()
	err := gdb.db.Model(u).UpdateColumn("last_seen", now).Error
	if err != nil {
		return errors.Wrap(err, "failed to update last seen")
	}

	u.LastSeen = &now
	return nil
}

// RecordClick stores a view of the post, attributed to the user when userID
// is non-nil
func (gdb *gormDB) RecordClick(postID uint, userID *uint) (*user.Click, error) {
	err := gdb.requirePost(postID)
	if err != nil {
		return nil, err
	}

	c := &user.Click{PostID: postID, UserID: userID}
	err = gdb.db.Create(c).Error
	return c, errors.Wrap(err, "failed to record click")
}

// AddBookmark bookmarks the post for the user. Bookmarking twice returns the
// existing bookmark
func (gdb *gormDB) AddBookmark(userID, postID uint) (*user.Bookmark, error) {
	err := gdb.requireUser(userID)
	if err != nil {
		return nil, err
	}

	err = gdb.requirePost(postID)
	if err != nil {
		return nil, err
	}

	var b user.Bookmark
	err = gdb.db.
		Where("user_id = ? AND post_id = ?", userID, postID).
		Attrs(user.Bookmark{UserID: userID, PostID: postID}).
		FirstOrCreate(&b).Error
	return &b, errors.Wrap(err, "failed to add bookmark")
}

func (gdb *gormDB) RemoveBookmark(userID, postID uint) error {
	err := gdb.db.
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&user.Bookmark{}).Error
	return errors.Wrap(err, "failed to remove bookmark")
}

func (gdb *gormDB) BookmarkedPostIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := gdb.db.Model(&user.Bookmark{}).
		Where("user_id = ?", userID).
		Order("id").
		Pluck("post_id", &ids).Error
	return ids, errors.Wrap(err, "failed to get bookmarks")
}

func (gdb *gormDB) requirePost(postID uint) error {
	var n int
	err := gdb.db.Model(&feed.Post{}).Where("id = ?", postID).Count(&n).Error
	if err != nil {
		return errors.Wrap(err, "failed to get post")
	}
	if n == 0 {
		return errors.Wrapf(ErrNotFound, "post %d", postID)
	}

	return nil
}

func (gdb *gormDB) requireUser(userID uint) error {
	var n int
	err := gdb.db.Model(&user.User{}).Where("id = ?", userID).Count(&n).Error
	if err != nil {
		return errors.Wrap(err, "failed to get user")
	}
	if n == 0 {
		return errors.Wrapf(ErrNotFound, "user %d", userID)
	}

	return nil
}

func unique(ids []uint) map[uint]struct{} {
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}
