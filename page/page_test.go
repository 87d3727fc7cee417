package page

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"ticker/cache"
	"ticker/db"
	"ticker/feed"
	"ticker/mock_cache"
	"ticker/mock_db"
	"ticker/user"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestNewReturnsCachedPage(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mock_db.NewMockDB(ctrl)
	c := mock_cache.NewMockCache(ctrl)
	c.EXPECT().
		Get(gomock.Any(), "ticker:all_posts:anon:1:20:popular:", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, v interface{}) (bool, error) {
			v.(*Page).Title = "Cached"
			return true, nil
		})

	pg, err := New(context.Background(), store, c, Request{Kind: All})
	assert.NoError(t, err)
	assert.Equal(t, "Cached", pg.Title)
}

func TestNewBuildsAndCachesFrontPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixNow(t)

	mockUser := randUser()
	mockResult := randResult(3)

	store := mock_db.NewMockDB(ctrl)
	store.EXPECT().Posts(gomock.Any()).DoAndReturn(func(q *db.PostQuery) (*db.PostResult, error) {
		assert.Equal(t, db.Latest, q.Sort)
		assert.Equal(t, fixedNow.Add(-Window), q.Since)
		assert.Equal(t, []uint{11}, q.ExcludedSourceIDs)
		assert.Equal(t, []uint{22}, q.ExcludedCategoryIDs)
		assert.Equal(t, 2, q.Page)
		assert.Equal(t, 5, q.PerPage)
		return mockResult, nil
	})

	key := fmt.Sprintf("ticker:all_posts:%s:2:5:latest:", mockUser.Email)
	c := mock_cache.NewMockCache(ctrl)
	c.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(false, nil)
	c.EXPECT().Set(gomock.Any(), key, gomock.Any(), ListingTTL).Return(nil)

	pg, err := New(context.Background(), store, c, Request{
		Kind:    All,
		Sort:    db.Latest,
		Page:    2,
		PerPage: 5,
		User:    mockUser,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Latest Posts", pg.Title)
	assert.Equal(t, mockResult.Posts, pg.Posts)
}

func TestNewIgnoresCacheFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockErr := mockError()

	store := mock_db.NewMockDB(ctrl)
	store.EXPECT().Posts(gomock.Any()).Return(randResult(1), nil)

	c := mock_cache.NewMockCache(ctrl)
	c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, mockErr)
	c.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(mockErr)

	pg, err := New(context.Background(), store, c, Request{Kind: All})
	assert.NoError(t, err)
	assert.Equal(t, "Popular Posts", pg.Title)
}

func TestNewReturnsErrorWhenUnableToGetPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockErr := mockError()

	store := mock_db.NewMockDB(ctrl)
	store.EXPECT().Posts(gomock.Any()).Return(nil, mockErr)

	pg, err := New(context.Background(), store, cache.Nop(), Request{Kind: All})
	assert.Nil(t, pg)
	expectedErrMsg := fmt.Sprintf(
		"failed to get posts: %v",
		mockErr.Error())
	assert.EqualError(t, err, expectedErrMsg)
}

func TestNewSourcePage(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockUser := randUser()
	mockSource := &feed.Source{ID: 7, Slug: "wire", Title: "The Wire"}

	store := mock_db.NewMockDB(ctrl)
	store.EXPECT().SourceBySlug("wire").Return(mockSource, nil)
	store.EXPECT().Posts(gomock.Any()).DoAndReturn(func(q *db.PostQuery) (*db.PostResult, error) {
		assert.Equal(t, mockSource.ID, q.SourceID)
		assert.Empty(t, q.ExcludedSourceIDs)
		assert.Equal(t, []uint{22}, q.ExcludedCategoryIDs)
		assert.False(t, q.Since.IsZero())
		return randResult(1), nil
	})

	pg, err := New(context.Background(), store, cache.Nop(), Request{Kind: Source, Arg: "wire", User: mockUser})
	assert.NoError(t, err)
	assert.Equal(t, "Popular Posts by The Wire", pg.Title)
}

func TestNewCategoryPage(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockUser := randUser()
	mockCategory := &feed.Category{ID: 3, Slug: "tech", Title: "Technology"}

	store := mock_db.NewMockDB(ctrl)
	store.EXPECT().CategoryBySlug("tech").Return(mockCategory, nil)
	store.EXPECT().Posts(gomock.Any()).DoAndReturn(func(q *db.PostQuery) (*db.PostResult, error) {
		assert.Equal(t, mockCategory.ID, q.CategoryID)
		assert.Equal(t, []uint{11}, q.ExcludedSourceIDs)
		assert.Empty(t, q.ExcludedCategoryIDs)
		return randResult(1), nil
	})

	pg, err := New(context.Background(), store, cache.Nop(), Request{Kind: Category, Arg: "tech", Sort: db.Latest, User: mockUser})
	assert.NoError(t, err)
	assert.Equal(t, "Latest Posts in Technology", pg.Title)
}

func TestNewReturnsNotFoundForUnknownTaxonomy(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mock_db.NewMockDB(ctrl)
	store.EXPECT().SourceBySlug("nope").Return(nil, nil)
	store.EXPECT().CategoryBySlug("nope").Return(nil, nil)

	_, err := New(context.Background(), store, cache.Nop(), Request{Kind: Source, Arg: "nope"})
	assert.Equal(t, ErrNotFound, err)

	_, err = New(context.Background(), store, cache.Nop(), Request{Kind: Category, Arg: "nope"})
	assert.Equal(t, ErrNotFound, err)
}

func TestNewReturnsErrorWhenSourceLookupFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockErr := mockError()

	store := mock_db.NewMockDB(ctrl)
	store.EXPECT().SourceBySlug(gomock.Any()).Return(nil, mockErr)

	_, err := New(context.Background(), store, cache.Nop(), Request{Kind: Source, Arg: "wire"})
	expectedErrMsg := fmt.Sprintf(
		"failed to get source: %v",
		mockErr.Error())
	assert.EqualError(t, err, expectedErrMsg)
}

func TestNewSimilarPageIncludesSourcePost(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mock_db.NewMockDB(ctrl)
	store.EXPECT().Post(uint(5)).Return(&feed.Post{ID: 5}, nil)
	store.EXPECT().SimilarPostIDs(uint(5)).Return([]uint{8, 9}, nil)
	store.EXPECT().Posts(gomock.Any()).DoAndReturn(func(q *db.PostQuery) (*db.PostResult, error) {
		assert.ElementsMatch(t, []uint{5, 8, 9}, q.IDs)
		assert.Equal(t, db.Latest, q.Sort)
		assert.True(t, q.Since.IsZero())
		return randResult(3), nil
	})

	c := mock_cache.NewMockCache(ctrl)
	c.EXPECT().Get(gomock.Any(), "ticker:similar_posts:anon:1:20:latest:5", gomock.Any()).Return(false, nil)
	c.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), SimilarTTL).Return(nil)

	pg, err := New(context.Background(), store, c, Request{Kind: Similar, Arg: "5", Sort: db.Popular})
	assert.NoError(t, err)
	assert.Equal(t, "Similar Posts", pg.Title)
}

func TestNewSimilarPageReturnsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mock_db.NewMockDB(ctrl)
	store.EXPECT().Post(uint(404)).Return(nil, nil)

	_, err := New(context.Background(), store, cache.Nop(), Request{Kind: Similar, Arg: "404"})
	assert.Equal(t, ErrNotFound, err)

	_, err = New(context.Background(), store, cache.Nop(), Request{Kind: Similar, Arg: "abc"})
	assert.Equal(t, ErrNotFound, err)
}

func TestNewBookmarksPageIsNeverCached(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockUser := randUser()

	store := mock_db.NewMockDB(ctrl)
	store.EXPECT().BookmarkedPostIDs(mockUser.ID).Return(nil, nil)
	store.EXPECT().Posts(gomock.Any()).DoAndReturn(func(q *db.PostQuery) (*db.PostResult, error) {
		assert.NotNil(t, q.IDs)
		assert.Empty(t, q.IDs)
		return randResult(0), nil
	})

	// Any cache call fails the test
	c := mock_cache.NewMockCache(ctrl)

	pg, err := New(context.Background(), store, c, Request{Kind: Bookmarks, User: mockUser})
	assert.NoError(t, err)
	assert.Equal(t, "Bookmarked Posts", pg.Title)
}

func TestNewBookmarksPageRequiresUser(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mock_db.NewMockDB(ctrl)

	_, err := New(context.Background(), store, cache.Nop(), Request{Kind: Bookmarks})
	assert.Equal(t, ErrNoUser, err)
}

func TestNewRejectsUnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mock_db.NewMockDB(ctrl)

	_, err := New(context.Background(), store, cache.Nop(), Request{Kind: "nope"})
	assert.EqualError(t, err, `unknown page kind: "nope"`)
}

var fixedNow = time.Date(2020, 3, 1, 12, 0, 0, 0, time.UTC)

func fixNow(t *testing.T) {
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() { now = time.Now })
}

func randUser() *user.User {
	u := user.New(fmt.Sprintf("user%d@example.com", rand.Int()))
	u.ID = uint(rand.Intn(1000) + 1)
	u.ExcludedSources = []*feed.Source{{ID: 11}}
	u.ExcludedCategories = []*feed.Category{{ID: 22}}

	return u
}

func randResult(n int) *db.PostResult {
	now := time.Now()

	posts := make([]*feed.Post, n)
	for i := 0; i < len(posts); i++ {
		posts[i] = &feed.Post{
			ID:                uint(rand.Intn(1000) + 1),
			Title:             fmt.Sprintf("title %d", rand.Int()),
			Link:              fmt.Sprintf("link %d", rand.Int()),
			PublishedDatetime: now,
		}
	}

	return &db.PostResult{
		Posts:      posts,
		Page:       1,
		PerPage:    db.DefaultPerPage,
		TotalPages: 1,
		TotalItems: n,
	}
}

func mockError() error {
	return errors.New("mock error")
}
