package feeds

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Example Security News</title>
<link>https://example.com</link>
<item>
<title><![CDATA[Critical Citrix Bleed flaw exploited in the wild]]></title>
<link>https://example.com/citrix-bleed</link>
<pubDate>Mon, 17 Aug 2026 08:00:00 GMT</pubDate>
</item>
<item>
<title>Ransomware gang abuses MOVEit &amp; GoAnywhere</title>
<link>https://example.com/moveit</link>
<pubDate>Tue, 18 Aug 2026 09:30:00 GMT</pubDate>
</item>
</channel></rss>`

func TestExtractItems(t *testing.T) {
	items := extractItems(sampleFeed, "Example", 10)
	require.Len(t, items, 2)

	require.Equal(t, "Critical Citrix Bleed flaw exploited in the wild", items[0].Title)
	require.Equal(t, "https://example.com/citrix-bleed", items[0].Link)
	require.Equal(t, "Mon, 17 Aug 2026 08:00:00 GMT", items[0].PubDate)
	require.Equal(t, "Example", items[0].Source)

	// Entities are unescaped, the channel title is not mistaken for an
	// item.
	require.Equal(t, "Ransomware gang abuses MOVEit & GoAnywhere", items[1].Title)
}

func TestExtractItemsMalformed(t *testing.T) {
	truncated := `<rss version="2.0"><channel><item><title>Broken feed`
	require.Empty(t, extractItems(truncated, "x", 10))

	notXML := `<html><body>503 Service Unavailable</body></html>`
	require.Empty(t, extractItems(notXML, "x", 10))

	require.Empty(t, extractItems("", "x", 10))
}

func TestExtractItemsLimit(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&b, "<item><title>story %d</title><link>https://example.com/%d</link></item>", i, i)
	}

	require.Len(t, extractItems(b.String(), "x", 10), 10)
	require.Len(t, extractItems(b.String(), "x", 0), 25)
}

func TestExtractItemsRequiresTitleAndLink(t *testing.T) {
	raw := `<item><title>No link here</title></item>
<item><link>https://example.com/untitled</link></item>
<item><title>Complete</title><link>https://example.com/ok</link></item>`

	items := extractItems(raw, "x", 10)
	require.Len(t, items, 1)
	require.Equal(t, "Complete", items[0].Title)
	require.Empty(t, items[0].PubDate)
}
