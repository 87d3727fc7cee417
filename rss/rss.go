package rss

import (
	"io"
	"net/http"
)

// Sample is a small RSS 2.0 document. The last item has no link and is
// rejected on ingestion
const Sample = `<?xml version="1.0" encoding="utf-8"?>
<rss version="2.0">
  <channel>
    <title>Sample Feed</title>
    <link>http://www.feedforall.com/industry-solutions.htm</link>
    <description>RSS solutions</description>
    <item>
      <title>RSS Solutions for Restaurants</title>
      <description>&lt;b&gt;RSS Solutions&lt;/b&gt; for Restaurants</description>
      <link>http://www.feedforall.com/restaurant.htm</link>
      <pubDate>Tue, 19 Oct 2004 12:00:00 GMT</pubDate>
    </item>
    <item>
      <title>RSS Solutions for Schools and Colleges</title>
      <description>RSS Solutions for Schools and Colleges</description>
      <link>http://www.feedforall.com/schools.htm</link>
      <pubDate>Tue, 19 Oct 2004 12:00:00 GMT</pubDate>
    </item>
    <item>
      <title>RSS Solutions for Computer Service Companies</title>
      <description>RSS Solutions for Computer Service Companies</description>
      <pubDate>Tue, 19 Oct 2004 12:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>
`

// Handler serves doc as an RSS feed on every path
func Handler(doc string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		_, _ = io.WriteString(w, doc)
	})
}
