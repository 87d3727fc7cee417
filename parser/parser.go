package parser

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/pkg/errors"
)

// DefaultTimeout bounds a single feed fetch
const DefaultTimeout = 30 * time.Second

// Parser contains the method needed to parse a gofeed.Feed from a given URL
type Parser interface {
	ParseURL(ctx context.Context, url string) (*gofeed.Feed, error)
}

// New creates a new instance of a struct compatible with the Parser
// interface
func New(userAgent string) Parser {
	fp := gofeed.NewParser()
	if userAgent != "" {
		fp.UserAgent = userAgent
	}

	return &gofeedParser{fp: fp, timeout: DefaultTimeout}
}

type gofeedParser struct {
	fp      *gofeed.Parser
	timeout time.Duration
}

func (gp *gofeedParser) ParseURL(ctx context.Context, url string) (*gofeed.Feed, error) {
	ctx, cancel := context.WithTimeout(ctx, gp.timeout)
	defer cancel()

	f, err := gp.fp.ParseURLWithContext(url, ctx)
	return f, errors.Wrapf(err, "failed to parse %s", url)
}
