package harvest

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	aboutKeywords   = []string{"team", "about", "over-ons", "about-us"}
	contactKeywords = []string{"contact", "contacteer"}
)

// PageLinks holds the classified navigation targets of a page. A page yields
// at most one about URL and one contact URL; the first matching anchor wins.
type PageLinks struct {
	AboutURL   string
	ContactURL string
}

// ClassifyLinks walks the page's anchors and picks out team/about and
// contact pages by keyword membership on the lower-cased href and anchor
// text. Relative hrefs are resolved against base.
func ClassifyLinks(doc *goquery.Document, base *url.URL) PageLinks {
	var links PageLinks

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		raw, ok := s.Attr("href")
		if !ok || raw == "" {
			return
		}
		href := strings.ToLower(raw)
		text := strings.ToLower(s.Text())

		if links.AboutURL == "" && matchesAny(href, text, aboutKeywords) {
			links.AboutURL = resolve(base, raw)
		}
		if links.ContactURL == "" && matchesAny(href, text, contactKeywords) {
			links.ContactURL = resolve(base, raw)
		}
	})

	return links
}

func matchesAny(href, text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(href, kw) || strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func resolve(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}
