package page

import (
	"context"
	"fmt"
	"strconv"
	"ticker/cache"
	"ticker/db"
	"ticker/user"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Kind selects which posts a page lists
type Kind string

const (
	All       Kind = "all_posts"
	Source    Kind = "posts_by_source"
	Category  Kind = "posts_by_category"
	Similar   Kind = "similar_posts"
	Bookmarks Kind = "bookmarked_posts"
)

const (
	// Window bounds how far back the front, source and category pages reach
	Window = 48 * time.Hour

	ListingTTL = 60 * time.Second
	SimilarTTL = 180 * time.Second
)

var (
	// ErrNotFound is returned when the requested source, category or post
	// does not exist
	ErrNotFound = errors.New("page not found")

	// ErrNoUser is returned when requesting bookmarks anonymously
	ErrNoUser = errors.New("bookmarks require a user")
)

var now = time.Now

// Request describes the page to build. Arg is the source or category slug,
// or the post id for similar posts. User is nil for anonymous readers
type Request struct {
	Kind    Kind
	Arg     string
	Sort    db.Sort
	Page    int
	PerPage int
	User    *user.User
}

// Page contains the data needed to render a listing
type Page struct {
	Title string `json:"title"`
	*db.PostResult
}

func (r *Request) identity() string {
	if r.User == nil {
		return "anon"
	}

	return r.User.Email
}

// New builds the requested page, reading it from the cache when possible
func New(ctx context.Context, store db.PostLister, c cache.Cache, req Request) (*Page, error) {
	q := &db.PostQuery{Sort: req.Sort, Page: req.Page, PerPage: req.PerPage}
	if req.Kind == Similar || req.Kind == Bookmarks {
		q.Sort = db.Latest
	}
	q.Normalize()

	ttl := ListingTTL
	switch req.Kind {
	case Similar:
		ttl = SimilarTTL
	case Bookmarks:
		ttl = 0
	}

	key := cache.Key(req.Kind, req.identity(), q.Page, q.PerPage, q.Sort, req.Arg)

	var p Page
	if ttl > 0 {
		found, err := c.Get(ctx, key, &p)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Failed to read cached page")
		}
		if found {
			return &p, nil
		}
	}

	built, err := build(store, &req, q)
	if err != nil {
		return nil, err
	}

	if ttl > 0 {
		err = c.Set(ctx, key, built, ttl)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Failed to cache page")
		}
	}

	return built, nil
}

func build(store db.PostLister, req *Request, q *db.PostQuery) (*Page, error) {
	var title string
	switch req.Kind {
	case All:
		title = sortTitle(q.Sort)
		q.Since = now().UTC().Add(-Window)
		if req.User != nil {
			q.ExcludedSourceIDs = req.User.ExcludedSourceIDs()
			q.ExcludedCategoryIDs = req.User.ExcludedCategoryIDs()
		}

	case Source:
		src, err := store.SourceBySlug(req.Arg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get source")
		}
		if src == nil {
			return nil, ErrNotFound
		}

		title = fmt.Sprintf("%s by %s", sortTitle(q.Sort), src.Title)
		q.Since = now().UTC().Add(-Window)
		q.SourceID = src.ID
		if req.User != nil {
			q.ExcludedCategoryIDs = req.User.ExcludedCategoryIDs()
		}

	case Category:
		cat, err := store.CategoryBySlug(req.Arg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get category")
		}
		if cat == nil {
			return nil, ErrNotFound
		}

		title = fmt.Sprintf("%s in %s", sortTitle(q.Sort), cat.Title)
		q.Since = now().UTC().Add(-Window)
		q.CategoryID = cat.ID
		if req.User != nil {
			q.ExcludedSourceIDs = req.User.ExcludedSourceIDs()
		}

	case Similar:
		id, err := strconv.ParseUint(req.Arg, 10, 32)
		if err != nil {
			return nil, ErrNotFound
		}

		post, err := store.Post(uint(id))
		if err != nil {
			return nil, errors.Wrap(err, "failed to get post")
		}
		if post == nil {
			return nil, ErrNotFound
		}

		related, err := store.SimilarPostIDs(post.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get similar posts")
		}

		title = "Similar Posts"
		q.IDs = append(related, post.ID)

	case Bookmarks:
		if req.User == nil {
			return nil, ErrNoUser
		}

		ids, err := store.BookmarkedPostIDs(req.User.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get bookmarks")
		}

		title = "Bookmarked Posts"
		q.IDs = ids
		if q.IDs == nil {
			q.IDs = []uint{}
		}

	default:
		return nil, errors.Errorf("unknown page kind: %q", req.Kind)
	}

	res, err := store.Posts(q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get posts")
	}

	return &Page{Title: title, PostResult: res}, nil
}

func sortTitle(s db.Sort) string {
	if s == db.Latest {
		return "Latest Posts"
	}

	return "Popular Posts"
}
