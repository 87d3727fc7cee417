package db

import (
	"ticker/feed"

	"github.com/pkg/errors"
)

func (gdb *gormDB) Categories() ([]*feed.Category, error) {
	var categories []*feed.Category
	err := gdb.db.Order("id").Find(&categories).Error
	return categories, errors.Wrap(err, "failed to get categories")
}

func (gdb *gormDB) CategoryBySlug(slug string) (*feed.Category, error) {
	var category feed.Category
	found, err := first(gdb.db, &category, "slug = ?", slug)
	if !found {
		return nil, errors.Wrap(err, "failed to get category")
	}

	return &category, nil
}

func (gdb *gormDB) CategoriesByID(ids []uint) ([]*feed.Category, error) {
	categories := []*feed.Category{}
	if len(ids) == 0 {
		return categories, nil
	}

	err := gdb.db.Where("id IN (?)", ids).Order("id").Find(&categories).Error
	return categories, errors.Wrap(err, "failed to get categories")
}

func (gdb *gormDB) Sources() ([]*feed.Source, error) {
	var sources []*feed.Source
	err := gdb.db.Order("title").Find(&sources).Error
	return sources, errors.Wrap(err, "failed to get sources")
}

func (gdb *gormDB) SourceBySlug(slug string) (*feed.Source, error) {
	var source feed.Source
	found, err := first(gdb.db, &source, "slug = ?", slug)
	if !found {
		return nil, errors.Wrap(err, "failed to get source")
	}

	return &source, nil
}

func (gdb *gormDB) SourcesByID(ids []uint) ([]*feed.Source, error) {
	sources := []*feed.Source{}
	if len(ids) == 0 {
		return sources, nil
	}

	err := gdb.db.Where("id IN (?)", ids).Order("id").Find(&sources).Error
	return sources, errors.Wrap(err, "failed to get sources")
}

func (gdb *gormDB) Feeds() ([]*feed.Feed, error) {
	var feeds []*feed.Feed
	err := gdb.db.Preload("Source").Preload("Category").Order("id").Find(&feeds).Error
	return feeds, errors.Wrap(err, "failed to get feeds")
}

func (gdb *gormDB) Feed(id uint) (*feed.Feed, error) {
	var f feed.Feed
	found, err := first(gdb.db.Preload("Source").Preload("Category"), &f, "id = ?", id)
	if !found {
		return nil, errors.Wrap(err, "failed to get feed")
	}

	return &f, nil
}

func (gdb *gormDB) MatchingFeed(f *feed.Feed) (*feed.Feed, error) {
	var match feed.Feed
	found, err := first(gdb.db, &match, "url = ?", f.URL)
	if !found {
		return nil, errors.Wrap(err, "failed to get matching feed")
	}

	return &match, nil
}

func (gdb *gormDB) FeedStatus(feedID uint) (*feed.Status, error) {
	var status feed.Status
	found, err := first(gdb.db, &status, "feed_id = ?", feedID)
	if !found {
		return nil, errors.Wrap(err, "failed to get feed status")
	}

	return &status, nil
}

func (gdb *gormDB) SaveFeedStatus(s *feed.Status) error {
	return errors.Wrap(gdb.db.Save(s).Error, "failed to save feed status")
}
