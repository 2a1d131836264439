package harvest

import (
	"context"
	"net/url"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// SiteScraper visits one company site: homepage patterns, link
// classification, and a single follow-up team-page visit when an about link
// is present.
type SiteScraper struct {
	fetcher     *Fetcher
	teamFetcher *Fetcher
	pace        *rate.Limiter
}

// NewSiteScraper wires the per-site scraper. The team fetcher typically
// carries a shorter timeout than the homepage fetcher; pace is shared with
// the runner so every outbound fetch honours the politeness delay.
func NewSiteScraper(fetcher, teamFetcher *Fetcher, pace *rate.Limiter) *SiteScraper {
	return &SiteScraper{fetcher: fetcher, teamFetcher: teamFetcher, pace: pace}
}

// Scrape fetches the candidate's homepage and assembles its contact record.
// A fetch failure yields (nil, err); an empty record (no emails, phones or
// team members) yields (nil, nil) and contributes nothing to the run.
func (s *SiteScraper) Scrape(ctx context.Context, cand Candidate) (*Record, error) {
	doc, err := s.fetcher.Get(ctx, cand.URL)
	if err != nil {
		return nil, err
	}

	rec := Record{
		CompanyName: cand.Name,
		Website:     cand.URL,
	}

	pageText := doc.Text()
	rec.Emails = ExtractEmails(pageText)
	rec.Phones = ExtractPhones(pageText)
	rec.PhoneSources = ExtractPhoneSources(pageText)
	rec.LinkedIn = FirstCompanyLinkedIn(doc)

	base, err := url.Parse(cand.URL)
	if err != nil {
		base = nil
	}
	links := ClassifyLinks(doc, base)
	rec.AboutURL = links.AboutURL
	rec.ContactURL = links.ContactURL

	if rec.AboutURL != "" {
		rec.TeamMembers = s.scrapeTeamPage(ctx, rec.AboutURL)
	}

	if rec.Empty() {
		return nil, nil
	}
	return &rec, nil
}

// scrapeTeamPage visits the about/team URL once. Failures are logged and
// reduce to an empty member list; they never fail the company visit.
func (s *SiteScraper) scrapeTeamPage(ctx context.Context, aboutURL string) []Member {
	if err := s.pace.Wait(ctx); err != nil {
		return nil
	}

	doc, err := s.teamFetcher.Get(ctx, aboutURL)
	if err != nil {
		log.Debug().Err(err).Str("url", aboutURL).Msg("team page fetch failed")
		return nil
	}
	return ExtractTeamMembers(doc)
}
