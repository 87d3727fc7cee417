package parser_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"ticker/parser"
	"ticker/rss"

	"github.com/stretchr/testify/assert"
)

func TestParseURL(t *testing.T) {
	srv := httptest.NewServer(rss.Handler(rss.Sample))
	defer srv.Close()

	f, err := parser.New("ticker-test").ParseURL(context.Background(), srv.URL)
	assert.NoError(t, err)
	assert.Equal(t, "Sample Feed", f.Title)
	assert.Len(t, f.Items, 3)
	assert.Equal(t, "http://www.feedforall.com/restaurant.htm", f.Items[0].Link)
	assert.NotNil(t, f.Items[0].PublishedParsed)
}

func TestParseURLReturnsErrorOnHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := parser.New("").ParseURL(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestParseURLRespectsCancellation(t *testing.T) {
	srv := httptest.NewServer(rss.Handler(rss.Sample))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := parser.New("").ParseURL(ctx, srv.URL)
	assert.Error(t, err)
}
