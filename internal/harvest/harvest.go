// Package harvest implements the company discovery and contact extraction
// pipeline: search queries produce site candidates, each candidate's homepage
// is scraped for emails, phones and social links, and team/about pages are
// followed for personnel details.
package harvest

import (
	"context"
	"net/url"
	"strings"
)

// Candidate is a {name, url} pair taken from search results. It carries no
// identity beyond its URL and has not been verified to hold contact data.
type Candidate struct {
	Name string
	URL  string
}

// Domain returns the lower-cased host of the candidate URL, or "" when the
// URL does not parse.
func (c Candidate) Domain() string {
	u, err := url.Parse(c.URL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}

// Member is a person extracted from a team section.
type Member struct {
	Name     string
	Position string
	Email    string
}

// Record is the per-company extraction result, the unit of output. Phones
// holds the concatenated-group values the extraction regex produces;
// PhoneSources holds the full matched substrings for the same matches.
type Record struct {
	CompanyName  string
	Website      string
	Emails       []string
	Phones       []string
	PhoneSources []string
	LinkedIn     string
	TeamMembers  []Member
	AboutURL     string
	ContactURL   string
}

// Empty reports whether the record carries no contact data at all. Empty
// records are never pushed to the sink.
func (r Record) Empty() bool {
	return len(r.Emails) == 0 && len(r.Phones) == 0 && len(r.TeamMembers) == 0
}

// Searcher turns a query into site candidates.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]Candidate, error)
}

// Sink receives each produced record immediately after assembly, so a run
// interrupted after N records still persists those N.
type Sink interface {
	Push(ctx context.Context, rec Record) error
}
