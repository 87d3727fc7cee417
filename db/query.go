package db

import (
	"ticker/feed"
	"time"

	"github.com/pkg/errors"
)

// Sort selects the ordering of a post listing
type Sort string

const (
	// Popular orders by clicks, then bookmarks, then newest first
	Popular Sort = "popular"

	// Latest orders newest first
	Latest Sort = "latest"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// ParseSort returns the sort with the given name; an empty name means Popular
func ParseSort(name string) (Sort, error) {
	switch Sort(name) {
	case "", Popular:
		return Popular, nil
	case Latest:
		return Latest, nil
	}

	return "", errors.Errorf("unknown sort: %q", name)
}

// PostQuery filters, orders and paginates a post listing. Zero values leave
// the corresponding filter off
type PostQuery struct {
	Since      time.Time
	SourceID   uint
	CategoryID uint

	// IDs restricts the listing to the given posts when non-nil. An empty,
	// non-nil slice matches nothing
	IDs []uint

	ExcludedSourceIDs   []uint
	ExcludedCategoryIDs []uint

	Sort    Sort
	Page    int
	PerPage int
}

// Normalize fills in the default sort and page bounds
func (q *PostQuery) Normalize() {
	if q.Sort == "" {
		q.Sort = Popular
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
}

func (q *PostQuery) offset() int {
	return (q.Page - 1) * q.PerPage
}

// PostResult is one page of a post listing
type PostResult struct {
	Posts      []*feed.Post `json:"items"`
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
	TotalPages int          `json:"total_pages"`
	TotalItems int          `json:"total_items"`
}

func newPostResult(q *PostQuery, total int) *PostResult {
	return &PostResult{
		Posts:      []*feed.Post{},
		Page:       q.Page,
		PerPage:    q.PerPage,
		TotalPages: (total + q.PerPage - 1) / q.PerPage,
		TotalItems: total,
	}
}
