package lib

import (
	"context"
	"net/http/httptest"
	"testing"
	"ticker/feed"
	"ticker/job"
	"ticker/parser"
	"ticker/rss"
	"ticker/test"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCollectIngestsServedFeed(t *testing.T) {
	_, db := test.InitDB(t)

	// The sample items were published at 12:00
	collectedAt := time.Date(2004, time.October, 19, 13, 0, 0, 0, time.UTC)
	now = func() time.Time { return collectedAt }
	t.Cleanup(func() { now = time.Now })

	srv := httptest.NewServer(rss.Handler(rss.Sample))
	defer srv.Close()

	f := test.SeedFeed(t, db)
	assert.NoError(t, db.Update(f, map[string]interface{}{"url": srv.URL}))

	res, err := Collect(context.Background(), db, parser.New(""), CollectOptions{})
	assert.NoError(t, err)
	assert.Equal(t, &CollectResult{Feeds: 1, Ingested: 2, Skipped: 1}, res)

	post, err := db.MatchingPost(&feed.Post{Link: "http://www.feedforall.com/restaurant.htm"})
	assert.NoError(t, err)
	if assert.NotNil(t, post) {
		assert.Equal(t, f.ID, post.FeedID)
		assert.Equal(t, "RSS Solutions for Restaurants", post.Desc)
		assert.Equal(t,
			time.Date(2004, time.October, 19, 12, 0, 0, 0, time.UTC),
			post.PublishedDatetime.UTC())
	}

	status, err := db.FeedStatus(f.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, status) {
		assert.Equal(t, feed.MinUpdateFrequency, status.UpdateFrequency)
		assert.Equal(t, collectedAt, status.UpdateDatetime.UTC())
	}

	lock, err := db.MatchingJobLock(job.Collect)
	assert.NoError(t, err)
	assert.Nil(t, lock)

	// Not due again for 2 minutes
	collectedAt = collectedAt.Add(time.Minute)
	res, err = Collect(context.Background(), db, parser.New(""), CollectOptions{})
	assert.NoError(t, err)
	assert.Equal(t, &CollectResult{Idle: 1}, res)

	// Due, but nothing new
	collectedAt = collectedAt.Add(time.Minute)
	res, err = Collect(context.Background(), db, parser.New(""), CollectOptions{})
	assert.NoError(t, err)
	assert.Equal(t, &CollectResult{Feeds: 1, Skipped: 3}, res)

	status, err = db.FeedStatus(f.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, status) {
		assert.Equal(t, feed.MinUpdateFrequency+1, status.UpdateFrequency)
		assert.Equal(t, collectedAt, status.UpdateDatetime.UTC())
	}
}

func TestCollectSkipsStaleServedItems(t *testing.T) {
	_, db := test.InitDB(t)

	// Two days after the sample items were published
	now = func() time.Time { return time.Date(2004, time.October, 21, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	srv := httptest.NewServer(rss.Handler(rss.Sample))
	defer srv.Close()

	f := test.SeedFeed(t, db)
	assert.NoError(t, db.Update(f, map[string]interface{}{"url": srv.URL}))

	res, err := Collect(context.Background(), db, parser.New(""), CollectOptions{})
	assert.NoError(t, err)
	assert.Equal(t, &CollectResult{Feeds: 1, Skipped: 3}, res)

	post, err := db.MatchingPost(&feed.Post{Link: "http://www.feedforall.com/restaurant.htm"})
	assert.NoError(t, err)
	assert.Nil(t, post)

	status, err := db.FeedStatus(f.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, status) {
		assert.Equal(t, feed.MinUpdateFrequency, status.UpdateFrequency)
	}
}

func TestPurgeRemovesExpiredPosts(t *testing.T) {
	_, db := test.InitDB(t)

	f := test.SeedFeed(t, db)
	old := test.SeedPost(t, db, f, time.Now().Add(-30*24*time.Hour))
	fresh := test.SeedPost(t, db, f, time.Now())

	n, err := Purge(db, PurgeOptions{BatchSize: 1})
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	p, err := db.Post(old.ID)
	assert.NoError(t, err)
	assert.Nil(t, p)

	p, err = db.Post(fresh.ID)
	assert.NoError(t, err)
	assert.NotNil(t, p)

	lock, err := db.MatchingJobLock(job.Purge)
	assert.NoError(t, err)
	assert.Nil(t, lock)
}
