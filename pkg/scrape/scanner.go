package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

// candidateSelector harvests title-bearing elements: headings at any depth,
// headings under up to two div wrappers, anything whose class or id mentions
// price, and span text under one or two div wrappers.
const candidateSelector = "h1, h2, h3, h4, h5, h6, " +
	"div > h1, div > h2, div > h3, div > h4, div > h5, div > h6, " +
	"[class*='price'], [id*='price'], " +
	"div > span, div > div > span"

// priceElementSelector locates the element most likely to carry the price
// near a title. Attribute matching is case-sensitive, so both casings of
// "price" are listed.
const priceElementSelector = "[class*='price'], [id*='price'], " +
	"[class*='Price'], [id*='Price'], .price, #price"

// soldOutPhrases mark a listing as unavailable when present (case-insensitive)
// in the text near a candidate title.
var soldOutPhrases = []string{"sold out", "out of stock"}

// Scan walks the document and returns one candidate listing per distinct
// title, in discovery order. A selected element becomes a candidate only if
// a price was extracted near it or it is marked sold out; everything else
// is dropped silently. Duplicate titles keep the first occurrence.
func Scan(doc *goquery.Document) []domain.CandidateListing {
	var candidates []domain.CandidateListing
	seen := make(map[string]struct{})

	doc.Find(candidateSelector).Each(func(_ int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Text())
		if title == "" {
			return
		}
		if _, dup := seen[title]; dup {
			return
		}

		parent := sel.Parent()
		if parent.Length() == 0 {
			return
		}

		soldOut := detectSoldOut(parent)

		var price float64
		var currency string
		priceEl := findPriceElement(parent)
		if priceEl != nil {
			if sig, ok := ParsePrice(strings.TrimSpace(priceEl.Text()), parent.Text()); ok {
				price = sig.Amount
				currency = sig.Currency
			}
		}
		if currency == "" {
			if sig, ok := scanNestedPrice(parent); ok {
				price = sig.Amount
				currency = sig.Currency
			}
		}

		if currency == "" && !soldOut {
			return
		}

		seen[title] = struct{}{}
		candidates = append(candidates, domain.CandidateListing{
			Title:     title,
			Price:     price,
			Currency:  currency,
			IsSoldOut: soldOut,
		})
	})

	return candidates
}

// findPriceElement searches in expanding radius around the title's parent:
// inside the parent, inside the grandparent, inside each sibling of the
// parent, and finally any span or p under the parent.
func findPriceElement(parent *goquery.Selection) *goquery.Selection {
	if s := parent.Find(priceElementSelector).First(); s.Length() > 0 {
		return s
	}

	grand := parent.Parent()
	if grand.Length() > 0 {
		if s := grand.Find(priceElementSelector).First(); s.Length() > 0 {
			return s
		}
		var found *goquery.Selection
		grand.Children().EachWithBreak(func(_ int, sib *goquery.Selection) bool {
			if sib.Nodes[0] == parent.Nodes[0] {
				return true
			}
			if s := sib.Find(priceElementSelector).First(); s.Length() > 0 {
				found = s
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}

	if s := parent.Find("span, p").First(); s.Length() > 0 {
		return s
	}
	return nil
}

// scanNestedPrice is the last-resort extraction stage: walk every element
// under the parent's div children looking for a symbol+number pair. Only
// reached when the earlier stages produced nothing.
func scanNestedPrice(parent *goquery.Selection) (PriceSignal, bool) {
	var sig PriceSignal
	found := false

	parent.Children().Filter("div").EachWithBreak(func(_ int, div *goquery.Selection) bool {
		div.Find("*").EachWithBreak(func(_ int, el *goquery.Selection) bool {
			if s, ok := parseSymbolAdjacent(strings.TrimSpace(el.Text())); ok {
				sig = s
				found = true
				return false
			}
			return true
		})
		return !found
	})

	return sig, found
}

// detectSoldOut checks the parent's text, then each sibling of the parent,
// then each child of the parent for an availability phrase.
func detectSoldOut(parent *goquery.Selection) bool {
	if containsSoldOut(parent.Text()) {
		return true
	}

	grand := parent.Parent()
	if grand.Length() > 0 {
		found := false
		grand.Children().EachWithBreak(func(_ int, sib *goquery.Selection) bool {
			if sib.Nodes[0] == parent.Nodes[0] {
				return true
			}
			if containsSoldOut(sib.Text()) {
				found = true
				return false
			}
			return true
		})
		if found {
			return true
		}
	}

	found := false
	parent.Children().EachWithBreak(func(_ int, child *goquery.Selection) bool {
		if containsSoldOut(child.Text()) {
			found = true
			return false
		}
		return true
	})
	return found
}

func containsSoldOut(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range soldOutPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
