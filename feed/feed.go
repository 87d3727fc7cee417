package feed

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"github.com/pkg/errors"
)

const (
	MaxTitleLength = 255
	MaxLinkLength  = 255

	// MinUpdateFrequency and MaxUpdateFrequency bound Status.UpdateFrequency,
	// the base 2 logarithm of the minutes between collections of a feed
	MinUpdateFrequency = 1
	MaxUpdateFrequency = 8
)

var (
	ErrSlugRequired  = errors.New("slug is required")
	ErrTitleRequired = errors.New("title is required")
	ErrURLRequired   = errors.New("url is required")
	ErrLinkRequired  = errors.New("link is required")
	ErrTitleTooLong  = errors.Errorf("title is longer than %d characters", MaxTitleLength)
	ErrLinkTooLong   = errors.Errorf("link is longer than %d characters", MaxLinkLength)
	ErrNoPublished   = errors.New("no published datetime provided")
	ErrNilItem       = errors.New("item pointer is nil")
)

// Category contains the data associated with a post category stored in the
// database
type Category struct {
	ID    uint   `gorm:"primary_key" json:"id"`
	Slug  string `gorm:"size:32;unique;not null" json:"slug"`
	Title string `gorm:"size:140;unique;not null" json:"title"`
}

// TableName overrides the gorm table name
func (Category) TableName() string {
	return "categories"
}

// BeforeSave rejects categories without a slug or title
func (c *Category) BeforeSave() error {
	return validateTaxonomy(c.Slug, c.Title)
}

func (c *Category) String() string {
	return c.Title
}

// Source contains the data associated with a publisher stored in the database
type Source struct {
	ID    uint   `gorm:"primary_key" json:"id"`
	Slug  string `gorm:"size:32;unique;not null" json:"slug"`
	Title string `gorm:"size:140;not null" json:"title"`
}

// TableName overrides the gorm table name
func (Source) TableName() string {
	return "sources"
}

// BeforeSave rejects sources without a slug or title
func (s *Source) BeforeSave() error {
	return validateTaxonomy(s.Slug, s.Title)
}

func (s *Source) String() string {
	return s.Title
}

func validateTaxonomy(slug, title string) error {
	if slug == "" {
		return ErrSlugRequired
	}
	if title == "" {
		return ErrTitleRequired
	}

	return nil
}

// Feed contains the data associated with a subscribed feed stored in the
// database
type Feed struct {
	ID         uint      `gorm:"primary_key" json:"id"`
	SourceID   uint      `json:"source_id"`
	CategoryID uint      `json:"category_id"`
	URL        string    `gorm:"column:url;size:255;not null" json:"url"`
	Source     *Source   `gorm:"association_autoupdate:false;association_autocreate:false" json:"source,omitempty"`
	Category   *Category `gorm:"association_autoupdate:false;association_autocreate:false" json:"category,omitempty"`
}

// TableName overrides the gorm table name
func (Feed) TableName() string {
	return "feeds"
}

// BeforeSave rejects feeds without a URL
func (f *Feed) BeforeSave() error {
	if f.URL == "" {
		return ErrURLRequired
	}

	return nil
}

func (f *Feed) String() string {
	if f.Source == nil || f.Category == nil {
		return fmt.Sprintf("<%s>", f.URL)
	}

	return fmt.Sprintf("<%s, %s>", f.Source.Title, f.Category.Title)
}

// Status tracks when a feed was last collected
type Status struct {
	ID              uint      `gorm:"primary_key" json:"id"`
	FeedID          uint      `gorm:"unique" json:"feed_id"`
	UpdateDatetime  time.Time `gorm:"not null" json:"update_datetime"`
	UpdateFrequency int       `gorm:"not null" json:"update_frequency"`
}

// TableName overrides the gorm table name
func (Status) TableName() string {
	return "feed_statuses"
}

// BeforeCreate defaults the update time to now
func (s *Status) BeforeCreate() error {
	if s.UpdateDatetime.IsZero() {
		s.UpdateDatetime = time.Now().UTC()
	}

	return nil
}

// Interval is the time to wait between collections of the feed
func (s *Status) Interval() time.Duration {
	freq := s.UpdateFrequency
	if freq < 0 {
		freq = 0
	}

	return time.Duration(1<<uint(freq)) * time.Minute
}

// Due reports whether the feed should be collected at now
func (s *Status) Due(now time.Time) bool {
	return !s.UpdateDatetime.After(now.Add(-s.Interval()))
}

// Reschedule records a collection at now. Feeds that produced new posts are
// collected more often, the rest less often
func (s *Status) Reschedule(newPosts int, now time.Time) {
	if newPosts > 0 {
		s.UpdateFrequency--
	} else {
		s.UpdateFrequency++
	}

	if s.UpdateFrequency < MinUpdateFrequency {
		s.UpdateFrequency = MinUpdateFrequency
	}
	if s.UpdateFrequency > MaxUpdateFrequency {
		s.UpdateFrequency = MaxUpdateFrequency
	}

	s.UpdateDatetime = now.UTC()
}

func (s *Status) String() string {
	return fmt.Sprintf(
		"<%d last updated at %s (interval %d)>",
		s.FeedID,
		s.UpdateDatetime.Format(time.RFC3339),
		s.UpdateFrequency)
}

// Post contains the data associated with an ingested feed item stored in the
// database
type Post struct {
	ID                uint      `gorm:"primary_key" json:"id"`
	FeedID            uint      `json:"feed_id"`
	Title             string    `gorm:"size:255;not null" json:"title"`
	Desc              string    `gorm:"type:text" json:"desc"`
	Link              string    `gorm:"size:255;not null" json:"link"`
	PublishedDatetime time.Time `gorm:"not null;index" json:"published_datetime"`
	IngestedDatetime  time.Time `gorm:"not null" json:"ingested_datetime"`
	Feed              *Feed     `gorm:"association_autoupdate:false;association_autocreate:false" json:"feed,omitempty"`

	// Filled by the store on reads; never persisted
	ClickCount    int `gorm:"-" json:"click_count"`
	BookmarkCount int `gorm:"-" json:"bookmark_count"`
	SimilarCount  int `gorm:"-" json:"similar_count"`
}

// TableName overrides the gorm table name
func (Post) TableName() string {
	return "posts"
}

// BeforeSave rejects posts without a title or link, or with either too long
func (p *Post) BeforeSave() error {
	return validatePost(p.Title, p.Link)
}

func validatePost(title, link string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if link == "" {
		return ErrLinkRequired
	}
	if utf8.RuneCountInString(link) > MaxLinkLength {
		return ErrLinkTooLong
	}

	return nil
}

// BeforeCreate defaults the published and ingested times to now
func (p *Post) BeforeCreate() error {
	now := time.Now().UTC()
	if p.PublishedDatetime.IsZero() {
		p.PublishedDatetime = now
	}
	if p.IngestedDatetime.IsZero() {
		p.IngestedDatetime = now
	}

	return nil
}

func (p *Post) String() string {
	return fmt.Sprintf("%d: %s", p.ID, p.Title)
}

// PostFromGofeedItem normalizes a parsed feed item for ingestion. Items
// without a title, link or published date, or with an over-long title or
// link, are rejected
func PostFromGofeedItem(gfi *gofeed.Item) (*Post, error) {
	if gfi == nil {
		return nil, ErrNilItem
	}

	title := strings.TrimSpace(gfi.Title)
	link := strings.TrimSpace(gfi.Link)
	err := validatePost(title, link)
	if err != nil {
		return nil, err
	}

	if gfi.PublishedParsed == nil {
		return nil, ErrNoPublished
	}

	desc, err := StripMarkup(gfi.Description)
	if err != nil {
		return nil, errors.Wrap(err, "failed to strip description markup")
	}

	return &Post{
		Title:             title,
		Link:              link,
		Desc:              desc,
		PublishedDatetime: gfi.PublishedParsed.UTC(),
	}, nil
}

// StripMarkup returns the text content of an HTML fragment with runs of
// whitespace collapsed to single spaces
func StripMarkup(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}

	var parts []string
	doc.Find("body").Contents().Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, textNodes(s)...)
	})

	return strings.Join(parts, " "), nil
}

func textNodes(s *goquery.Selection) []string {
	if goquery.NodeName(s) == "#text" {
		return strings.Fields(s.Text())
	}

	var parts []string
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		parts = append(parts, textNodes(c)...)
	})

	return parts
}
