package test

import (
	"fmt"
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"ticker/auth"
	"ticker/config"
	"ticker/db"
	"ticker/feed"
	"ticker/user"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	// Keep password hashing fast under test
	_ = auth.SetCost(bcrypt.MinCost)
}

func tmpDB(t *testing.T) string {
	dir, err := ioutil.TempDir("", "ticker-test")
	assert.NoError(t, err)

	return filepath.Join(dir, "db.sqlite3")
}

// InitDB creates a migrated sqlite database in a temporary directory. The
// database is closed and removed when the test ends
func InitDB(t *testing.T) (*config.DBConfig, db.DB) {
	tmpDB := tmpDB(t)
	log.Info().Msgf("Initializing test DB: %s", tmpDB)

	dbCfg := &config.DBConfig{
		Dialect: "sqlite3",
		DSN:     fmt.Sprintf("file:%s", tmpDB),
	}
	adb, err := db.New(dbCfg)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	err = db.Migrate(adb)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	t.Cleanup(func() {
		adb.Close()
		os.RemoveAll(filepath.Dir(tmpDB))
	})

	return dbCfg, adb
}

func MockEmail() string {
	return fmt.Sprintf("user%d@example.com", rand.Int())
}

func MockPassword() string {
	return "mock_password"
}

func MockSecret() string {
	return "mock_secret"
}

func MockUser(t *testing.T) *user.User {
	u := user.New(MockEmail())
	assert.NoError(t, u.SetPassword(MockPassword()))

	return u
}

func MockCategory() *feed.Category {
	n := rand.Int()
	return &feed.Category{
		Slug:  fmt.Sprintf("category-%d", n),
		Title: fmt.Sprintf("Category %d", n),
	}
}

func MockSource() *feed.Source {
	n := rand.Int()
	return &feed.Source{
		Slug:  fmt.Sprintf("source-%d", n),
		Title: fmt.Sprintf("Source %d", n),
	}
}

func MockFeed() *feed.Feed {
	return &feed.Feed{
		URL: fmt.Sprintf("https://duckduckgo.com?q=%d", rand.Int()),
	}
}

func MockPost(feedID uint) *feed.Post {
	return &feed.Post{
		FeedID:            feedID,
		Title:             fmt.Sprintf("Title %d", rand.Int()),
		Desc:              fmt.Sprintf("Description %d", rand.Int()),
		Link:              fmt.Sprintf("https://example.com/%d", rand.Int()),
		PublishedDatetime: time.Now().UTC().Truncate(time.Second),
	}
}

func MockPosts(feedID uint, n int) []*feed.Post {
	posts := make([]*feed.Post, n)
	for i := 0; i < len(posts); i++ {
		posts[i] = MockPost(feedID)
	}

	return posts
}

// SeedFeed saves a feed along with a new source and category
func SeedFeed(t *testing.T, adb db.DB) *feed.Feed {
	s := MockSource()
	assert.NoError(t, adb.Create(s))

	c := MockCategory()
	assert.NoError(t, adb.Create(c))

	f := MockFeed()
	f.SourceID = s.ID
	f.CategoryID = c.ID
	assert.NoError(t, adb.Create(f))

	f.Source = s
	f.Category = c
	return f
}

// SeedPost ingests a post into the given feed, published at the given time
func SeedPost(t *testing.T, adb db.DB, f *feed.Feed, published time.Time) *feed.Post {
	p := MockPost(f.ID)
	p.PublishedDatetime = published.UTC().Truncate(time.Second)
	assert.NoError(t, adb.IngestPost(p))

	return p
}

// SeedUser saves a user with a password
func SeedUser(t *testing.T, adb db.DB) *user.User {
	u := MockUser(t)
	assert.NoError(t, adb.Create(u))

	return u
}
