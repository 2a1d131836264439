package harvest

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// Hosts that show up in results but are never the company itself: the search
// engine's own properties and the major social networks.
var skipDomains = []string{"google.", "youtube.", "facebook.", "linkedin.", "twitter.", "instagram."}

const googleSearchBase = "https://www.google.com/search"

// GoogleSearcher scrapes the Google results page directly. It is the default
// Searcher; CSESearcher replaces it when API credentials are configured.
type GoogleSearcher struct {
	fetcher *Fetcher
	baseURL string
}

// NewGoogleSearcher builds a searcher on top of the shared fetcher.
func NewGoogleSearcher(fetcher *Fetcher) *GoogleSearcher {
	return &GoogleSearcher{fetcher: fetcher, baseURL: googleSearchBase}
}

// Search issues one query and parses the result blocks into candidates.
// Individual malformed blocks are skipped; a failed request returns the
// error so the caller can log it and move on with no candidates.
func (g *GoogleSearcher) Search(ctx context.Context, query string, maxResults int) ([]Candidate, error) {
	searchURL := fmt.Sprintf("%s?q=%s&num=%d", g.baseURL, url.QueryEscape(query), maxResults)

	doc, err := g.fetcher.Get(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	var candidates []Candidate
	doc.Find("div.g").EachWithBreak(func(_ int, block *goquery.Selection) bool {
		href, ok := block.Find("a[href]").First().Attr("href")
		if !ok || href == "" {
			return true
		}

		cand, ok := candidateFromResult(block.Find("h3").First().Text(), href)
		if !ok {
			log.Debug().Str("href", href).Msg("skipping search result")
			return true
		}

		candidates = append(candidates, cand)
		return len(candidates) < maxResults
	})

	return candidates, nil
}

// candidateFromResult applies the shared filtering policy: http(s) URLs
// only, and never a denylisted host. The title falls back to the host when
// the result block has no heading.
func candidateFromResult(title, href string) (Candidate, bool) {
	if !strings.HasPrefix(href, "http") {
		return Candidate{}, false
	}

	u, err := url.Parse(href)
	if err != nil {
		return Candidate{}, false
	}
	host := strings.ToLower(u.Host)
	for _, skip := range skipDomains {
		if strings.Contains(host, skip) {
			return Candidate{}, false
		}
	}

	name := strings.TrimSpace(title)
	if name == "" {
		name = host
	}
	return Candidate{Name: name, URL: href}, true
}
