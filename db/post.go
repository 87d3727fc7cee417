package db

import (
	"ticker/feed"
	"ticker/process"
	"ticker/user"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

const (
	popularOrder = "(SELECT COUNT(*) FROM clicks WHERE clicks.post_id = posts.id) DESC, " +
		"(SELECT COUNT(*) FROM bookmarks WHERE bookmarks.post_id = posts.id) DESC, " +
		"posts.published_datetime DESC, posts.id DESC"
	latestOrder = "posts.published_datetime DESC, posts.id DESC"
)

func (gdb *gormDB) Post(id uint) (*feed.Post, error) {
	var post feed.Post
	found, err := first(gdb.db.Preload("Feed.Source").Preload("Feed.Category"), &post, "id = ?", id)
	if !found {
		return nil, errors.Wrap(err, "failed to get post")
	}

	err = gdb.fillCounts([]*feed.Post{&post})
	return &post, err
}

func (gdb *gormDB) MatchingPost(p *feed.Post) (*feed.Post, error) {
	var match feed.Post
	found, err := first(gdb.db, &match, "link = ?", p.Link)
	if !found {
		return nil, errors.Wrap(err, "failed to get matching post")
	}

	return &match, nil
}

// IngestPost stores a new post and queues it for entity extraction and
// similarity detection
func (gdb *gormDB) IngestPost(p *feed.Post) error {
	return gdb.transaction(func(tx *gorm.DB) error {
		err := tx.Create(p).Error
		if err != nil {
			return errors.Wrap(err, "failed to create post")
		}

		err = tx.Create(&process.EntityQueue{PostID: p.ID}).Error
		if err != nil {
			return errors.Wrap(err, "failed to enqueue post for entity extraction")
		}

		err = tx.Create(&process.SimilarityQueue{PostID: p.ID}).Error
		return errors.Wrap(err, "failed to enqueue post for similarity detection")
	})
}

func (gdb *gormDB) Posts(q *PostQuery) (*PostResult, error) {
	q.Normalize()

	if q.IDs != nil && len(q.IDs) == 0 {
		return newPostResult(q, 0), nil
	}

	scope := gdb.db.Model(&feed.Post{})
	if !q.Since.IsZero() {
		scope = scope.Where("posts.published_datetime >= ?", q.Since)
	}
	if q.IDs != nil {
		scope = scope.Where("posts.id IN (?)", q.IDs)
	}
	if q.SourceID != 0 {
		scope = scope.Where("posts.feed_id IN (SELECT id FROM feeds WHERE source_id = ?)", q.SourceID)
	}
	if q.CategoryID != 0 {
		scope = scope.Where("posts.feed_id IN (SELECT id FROM feeds WHERE category_id = ?)", q.CategoryID)
	}
	if len(q.ExcludedSourceIDs) > 0 {
		scope = scope.Where("posts.feed_id NOT IN (SELECT id FROM feeds WHERE source_id IN (?))", q.ExcludedSourceIDs)
	}
	if len(q.ExcludedCategoryIDs) > 0 {
		scope = scope.Where("posts.feed_id NOT IN (SELECT id FROM feeds WHERE category_id IN (?))", q.ExcludedCategoryIDs)
	}

	var total int
	err := scope.Count(&total).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count posts")
	}

	res := newPostResult(q, total)
	if q.offset() >= total {
		return res, nil
	}

	order := popularOrder
	if q.Sort == Latest {
		order = latestOrder
	}

	err = scope.
		Preload("Feed.Source").
		Preload("Feed.Category").
		Order(order).
		Offset(q.offset()).
		Limit(q.PerPage).
		Find(&res.Posts).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to get posts")
	}

	return res, gdb.fillCounts(res.Posts)
}

type postCount struct {
	PostID uint
	N      int
}

func (gdb *gormDB) countBy(table, column string, ids []uint) (map[uint]int, error) {
	var rows []postCount
	err := gdb.db.Table(table).
		Select(column+" AS post_id, COUNT(*) AS n").
		Where(column+" IN (?)", ids).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int, len(rows))
	for _, r := range rows {
		counts[r.PostID] = r.N
	}

	return counts, nil
}

// fillCounts sets the derived engagement counts on the given posts
func (gdb *gormDB) fillCounts(posts []*feed.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uint, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	clicks, err := gdb.countBy("clicks", "post_id", ids)
	if err != nil {
		return errors.Wrap(err, "failed to count clicks")
	}

	bookmarks, err := gdb.countBy("bookmarks", "post_id", ids)
	if err != nil {
		return errors.Wrap(err, "failed to count bookmarks")
	}

	similar, err := gdb.countBy("similarities", "source_id", ids)
	if err != nil {
		return errors.Wrap(err, "failed to count similar posts")
	}

	for _, p := range posts {
		p.ClickCount = clicks[p.ID]
		p.BookmarkCount = bookmarks[p.ID]
		p.SimilarCount = similar[p.ID]
	}

	return nil
}

func (gdb *gormDB) SimilarPostIDs(postID uint) ([]uint, error) {
	var ids []uint
	err := gdb.db.Model(&process.Similarity{}).
		Where("source_id = ?", postID).
		Order("id").
		Pluck("related_id", &ids).Error
	return ids, errors.Wrap(err, "failed to get similar posts")
}

// ExpiredPostIDs returns up to limit ids of posts published before the given
// time, oldest first
func (gdb *gormDB) ExpiredPostIDs(before time.Time, limit int) ([]uint, error) {
	var ids []uint
	err := gdb.db.Model(&feed.Post{}).
		Where("published_datetime < ?", before).
		Order("published_datetime, id").
		Limit(limit).
		Pluck("id", &ids).Error
	return ids, errors.Wrap(err, "failed to get expired posts")
}

// DeletePosts removes the given posts along with their queue entries,
// entities, similarities and engagement
func (gdb *gormDB) DeletePosts(ids []uint) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var n int
	err := gdb.transaction(func(tx *gorm.DB) error {
		var err error
		n, err = deletePosts(tx, ids)
		return err
	})

	return n, err
}

func deletePosts(tx *gorm.DB, ids []uint) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	dependents := []struct {
		model interface{}
		where string
	}{
		{&process.EntityQueue{}, "post_id IN (?)"},
		{&process.Entity{}, "post_id IN (?)"},
		{&process.SimilarityQueue{}, "post_id IN (?)"},
		{&process.Similarity{}, "source_id IN (?)"},
		{&process.Similarity{}, "related_id IN (?)"},
		{&user.Click{}, "post_id IN (?)"},
		{&user.Bookmark{}, "post_id IN (?)"},
	}

	for _, d := range dependents {
		err := tx.Where(d.where, ids).Delete(d.model).Error
		if err != nil {
			return 0, errors.Wrapf(err, "failed to delete %T", d.model)
		}
	}

	res := tx.Where("id IN (?)", ids).Delete(&feed.Post{})
	return int(res.RowsAffected), errors.Wrap(res.Error, "failed to delete posts")
}
