package feed_test

import (
	"strings"
	"testing"
	"ticker/feed"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
)

func mockItem() *gofeed.Item {
	published := time.Date(2019, 9, 1, 12, 0, 0, 0, time.FixedZone("EST", -5*60*60))
	return &gofeed.Item{
		Title:           "  Mock Title ",
		Link:            " https://example.com/a ",
		Description:     "<p>Some <b>bold</b>\n text</p>",
		PublishedParsed: &published,
	}
}

func TestPostFromGofeedItemNormalizesFields(t *testing.T) {
	p, err := feed.PostFromGofeedItem(mockItem())
	assert.NoError(t, err)
	assert.Equal(t, "Mock Title", p.Title)
	assert.Equal(t, "https://example.com/a", p.Link)
	assert.Equal(t, "Some bold text", p.Desc)
	assert.Equal(t, time.UTC, p.PublishedDatetime.Location())
	assert.Equal(t, 17, p.PublishedDatetime.Hour())
}

func TestPostFromGofeedItemRejectsIncompleteItems(t *testing.T) {
	_, err := feed.PostFromGofeedItem(nil)
	assert.Equal(t, feed.ErrNilItem, err)

	item := mockItem()
	item.Title = " "
	_, err = feed.PostFromGofeedItem(item)
	assert.Equal(t, feed.ErrTitleRequired, err)

	item = mockItem()
	item.Link = ""
	_, err = feed.PostFromGofeedItem(item)
	assert.Equal(t, feed.ErrLinkRequired, err)

	item = mockItem()
	item.PublishedParsed = nil
	_, err = feed.PostFromGofeedItem(item)
	assert.Equal(t, feed.ErrNoPublished, err)
}

func TestPostFromGofeedItemRejectsOverlongItems(t *testing.T) {
	item := mockItem()
	item.Title = strings.Repeat("t", feed.MaxTitleLength+45)
	_, err := feed.PostFromGofeedItem(item)
	assert.Equal(t, feed.ErrTitleTooLong, err)

	item = mockItem()
	item.Link = "http://x/" + strings.Repeat("l", feed.MaxLinkLength)
	_, err = feed.PostFromGofeedItem(item)
	assert.Equal(t, feed.ErrLinkTooLong, err)

	item = mockItem()
	item.Title = strings.Repeat("é", feed.MaxTitleLength)
	p, err := feed.PostFromGofeedItem(item)
	assert.NoError(t, err)
	assert.NotNil(t, p)
}

func TestPostBeforeSaveRejectsOverlongFields(t *testing.T) {
	p := &feed.Post{Title: strings.Repeat("t", 300), Link: "https://example.com"}
	assert.Equal(t, feed.ErrTitleTooLong, p.BeforeSave())

	p = &feed.Post{Title: "title", Link: strings.Repeat("l", 300)}
	assert.Equal(t, feed.ErrLinkTooLong, p.BeforeSave())
}

func TestStatusDue(t *testing.T) {
	now := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)

	s := &feed.Status{UpdateFrequency: 3, UpdateDatetime: now.Add(-7 * time.Minute)}
	assert.Equal(t, 8*time.Minute, s.Interval())
	assert.False(t, s.Due(now))

	s.UpdateDatetime = now.Add(-8 * time.Minute)
	assert.True(t, s.Due(now))

	s = &feed.Status{UpdateDatetime: now}
	assert.Equal(t, time.Minute, s.Interval())
	assert.False(t, s.Due(now.Add(59*time.Second)))
	assert.True(t, s.Due(now.Add(time.Minute)))
}

func TestStatusReschedule(t *testing.T) {
	now := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)

	s := &feed.Status{UpdateFrequency: 4}
	s.Reschedule(3, now)
	assert.Equal(t, 3, s.UpdateFrequency)
	assert.Equal(t, now, s.UpdateDatetime)

	s.Reschedule(0, now)
	assert.Equal(t, 4, s.UpdateFrequency)

	s = &feed.Status{}
	s.Reschedule(1, now)
	assert.Equal(t, feed.MinUpdateFrequency, s.UpdateFrequency)

	s = &feed.Status{UpdateFrequency: feed.MaxUpdateFrequency}
	s.Reschedule(0, now)
	assert.Equal(t, feed.MaxUpdateFrequency, s.UpdateFrequency)
}

func TestStripMarkup(t *testing.T) {
	cases := map[string]string{
		"":                                 "",
		"   ":                              "",
		"plain text":                       "plain text",
		"<div><p>one</p><p>two</p></div>":  "one two",
		"a &amp; b":                        "a & b",
		"<img src=\"x.png\"/>caption here": "caption here",
	}

	for in, expected := range cases {
		out, err := feed.StripMarkup(in)
		assert.NoError(t, err)
		assert.Equal(t, expected, out, in)
	}
}

func TestBeforeSaveValidation(t *testing.T) {
	assert.Equal(t, feed.ErrSlugRequired, (&feed.Category{Title: "News"}).BeforeSave())
	assert.Equal(t, feed.ErrTitleRequired, (&feed.Category{Slug: "news"}).BeforeSave())
	assert.NoError(t, (&feed.Category{Slug: "news", Title: "News"}).BeforeSave())

	assert.Equal(t, feed.ErrSlugRequired, (&feed.Source{Title: "Wire"}).BeforeSave())
	assert.NoError(t, (&feed.Source{Slug: "wire", Title: "Wire"}).BeforeSave())

	assert.Equal(t, feed.ErrURLRequired, (&feed.Feed{}).BeforeSave())

	assert.Equal(t, feed.ErrTitleRequired, (&feed.Post{Link: "l"}).BeforeSave())
	assert.Equal(t, feed.ErrLinkRequired, (&feed.Post{Title: "t"}).BeforeSave())
}

func TestPostBeforeCreateDefaultsTimes(t *testing.T) {
	p := &feed.Post{Title: "t", Link: "l"}
	assert.NoError(t, p.BeforeCreate())
	assert.False(t, p.PublishedDatetime.IsZero())
	assert.False(t, p.IngestedDatetime.IsZero())
}
