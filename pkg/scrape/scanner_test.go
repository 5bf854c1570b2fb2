package scrape_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ebun22/baxus-price-checker/pkg/scrape"
	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func findCandidate(listings []domain.CandidateListing, title string) (domain.CandidateListing, bool) {
	for _, l := range listings {
		if l.Title == title {
			return l, true
		}
	}
	return domain.CandidateListing{}, false
}

func TestScanPriceInParent(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `
		<div class="card">
			<h2>Macallan 18 Year Old Sherry Oak</h2>
			<span class="price">$249.99</span>
		</div>`)

	got := scrape.Scan(doc)

	c, ok := findCandidate(got, "Macallan 18 Year Old Sherry Oak")
	require.True(t, ok)
	assert.InDelta(t, 249.99, c.Price, 0.001)
	assert.Equal(t, "$", c.Currency)
	assert.False(t, c.IsSoldOut)
}

func TestScanPriceInParentSibling(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `
		<div class="listing">
			<div class="info">
				<h3>Springbank 10 Year</h3>
			</div>
			<div class="meta">
				<span class="item-price">£85</span>
			</div>
		</div>`)

	got := scrape.Scan(doc)

	c, ok := findCandidate(got, "Springbank 10 Year")
	require.True(t, ok)
	assert.InDelta(t, 85.0, c.Price, 0.001)
	assert.Equal(t, "£", c.Currency)
}

func TestScanFallbackSpanPrice(t *testing.T) {
	t.Parallel()

	// No price-classed element anywhere, the first span under the parent
	// carries a contextual bare number.
	doc := parseDoc(t, `
		<div>
			<h2>Glenfiddich 21 Reserva</h2>
			<span>Price: 240</span>
		</div>`)

	got := scrape.Scan(doc)

	c, ok := findCandidate(got, "Glenfiddich 21 Reserva")
	require.True(t, ok)
	assert.InDelta(t, 240.0, c.Price, 0.001)
	assert.Equal(t, "$", c.Currency)
}

func TestScanNestedDescendantPrice(t *testing.T) {
	t.Parallel()

	// The nearest span has no parseable price, so the deep scan through
	// the parent's child divs finds the symbol pair in the nested tag.
	doc := parseDoc(t, `
		<div>
			<h2>Ardbeg Uigeadail Islay Malt</h2>
			<span>View details</span>
			<div class="offer">
				<div><b>$92.50</b></div>
			</div>
		</div>`)

	got := scrape.Scan(doc)

	c, ok := findCandidate(got, "Ardbeg Uigeadail Islay Malt")
	require.True(t, ok)
	assert.InDelta(t, 92.5, c.Price, 0.001)
	assert.Equal(t, "$", c.Currency)
}

func TestScanSoldOutSibling(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `
		<div class="row">
			<div class="info">
				<h3>Hibiki Japanese Harmony Suntory</h3>
			</div>
			<div class="status">Out of Stock</div>
		</div>`)

	got := scrape.Scan(doc)

	c, ok := findCandidate(got, "Hibiki Japanese Harmony Suntory")
	require.True(t, ok)
	assert.True(t, c.IsSoldOut)
	assert.Zero(t, c.Price)
}

func TestScanSoldOutWithPrice(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `
		<div class="card">
			<h2>Lagavulin 16 Year Islay</h2>
			<span class="price">$120</span>
			<p>SOLD OUT</p>
		</div>`)

	got := scrape.Scan(doc)

	c, ok := findCandidate(got, "Lagavulin 16 Year Islay")
	require.True(t, ok)
	assert.True(t, c.IsSoldOut)
	assert.InDelta(t, 120.0, c.Price, 0.001)
}

func TestScanDropsTitleWithoutPriceOrAvailability(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `
		<div>
			<h2>About Our Shop</h2>
			<span>Family owned since 1985</span>
		</div>`)

	got := scrape.Scan(doc)

	_, ok := findCandidate(got, "About Our Shop")
	assert.False(t, ok)
}

func TestScanDeduplicatesTitles(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `
		<div class="card">
			<h2>Redbreast 12 Year Old</h2>
			<span class="price">$70</span>
		</div>
		<div class="card">
			<h2>Redbreast 12 Year Old</h2>
			<span class="price">$99</span>
		</div>`)

	got := scrape.Scan(doc)

	var count int
	for _, c := range got {
		if c.Title == "Redbreast 12 Year Old" {
			count++
		}
	}
	require.Equal(t, 1, count)

	c, _ := findCandidate(got, "Redbreast 12 Year Old")
	assert.InDelta(t, 70.0, c.Price, 0.001)
}

func TestScanDiscoveryOrder(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `
		<div><h2>First Bottle Listing</h2><span class="price">$10</span></div>
		<div><h2>Second Bottle Listing</h2><span class="price">$20</span></div>
		<div><h2>Third Bottle Listing</h2><span class="price">$30</span></div>`)

	got := scrape.Scan(doc)

	var titles []string
	for _, c := range got {
		switch c.Title {
		case "First Bottle Listing", "Second Bottle Listing", "Third Bottle Listing":
			titles = append(titles, c.Title)
		}
	}
	assert.Equal(t, []string{"First Bottle Listing", "Second Bottle Listing", "Third Bottle Listing"}, titles)
}

func TestScanEmptyDocument(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<div><p>nothing to see</p></div>`)
	assert.Empty(t, scrape.Scan(doc))
}
