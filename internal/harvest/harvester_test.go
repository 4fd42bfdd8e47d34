package harvest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobscout/internal/harvest"
)

const listingHTML = `
<html>
<body>
  <nav><a href="/careers">All openings</a></nav>
  <div class="results">
    <a href="/job/12345?src=feed">
      Analyst,
      New York
    </a>
    <a href="https://acme.tal.net/opp/678-trader">Trader</a>
    <a name="no-href-anchor">Not a link</a>
    <a href="#top"></a>
  </div>
</body>
</html>`

func TestLinksExtractsAnchorsInOrder(t *testing.T) {
	links, err := harvest.Links("https://acme.tal.net/careers", strings.NewReader(listingHTML))
	require.NoError(t, err)
	require.Len(t, links, 4)

	assert.Equal(t, "/careers", links[0].Href)
	assert.Equal(t, "All openings", links[0].AnchorText)
	assert.Equal(t, "https://acme.tal.net/careers", links[0].SourcePage)

	assert.Equal(t, "/job/12345?src=feed", links[1].Href)
	// Inner whitespace is the normalizer's problem; only the edges are trimmed.
	assert.Contains(t, links[1].AnchorText, "Analyst,")
	assert.Contains(t, links[1].AnchorText, "New York")

	assert.Equal(t, "https://acme.tal.net/opp/678-trader", links[2].Href)
	assert.Equal(t, "Trader", links[2].AnchorText)

	// Anchors with an href are kept even when empty; filtering is the
	// pipeline's job.
	assert.Equal(t, "#top", links[3].Href)
	assert.Empty(t, links[3].AnchorText)
}

func TestLinksEmptyPage(t *testing.T) {
	links, err := harvest.Links("https://acme.example.com/careers", strings.NewReader("<html><body></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, links)
}
