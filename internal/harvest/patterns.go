package harvest

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Caps keep pathological pages (mailing list archives, footer link farms)
// from flooding a record.
const (
	maxEmailsPerPage = 10
	maxPhonesPerPage = 5
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Dutch national formats: +31/0031/0 prefix followed by 8-9 grouped
	// digits with optional space, dot or dash separators.
	phonePattern = regexp.MustCompile(`(\+31|0031|0)[\s.-]?(\d[\s.-]?){8,9}\d`)

	linkedInCompanyPattern = regexp.MustCompile(`(?i)linkedin\.com/company/`)
)

// ExtractEmails returns the unique email addresses found in text, in
// first-seen order, capped at 10.
func ExtractEmails(text string) []string {
	matches := emailPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	emails := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		emails = append(emails, m)
		if len(emails) == maxEmailsPerPage {
			break
		}
	}
	return emails
}

// ExtractPhones returns unique Dutch phone candidates found in text, capped
// at 5. The captured groups of each match are concatenated, so a result is
// the dial prefix plus the trailing digit group rather than the full
// formatted number.
func ExtractPhones(text string) []string {
	matches := phonePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	phones := make([]string, 0, len(matches))
	for _, m := range matches {
		var sb strings.Builder
		for _, group := range m[1:] {
			sb.WriteString(group)
		}
		phone := sb.String()
		if phone == "" {
			continue
		}
		if _, dup := seen[phone]; dup {
			continue
		}
		seen[phone] = struct{}{}
		phones = append(phones, phone)
		if len(phones) == maxPhonesPerPage {
			break
		}
	}
	return phones
}

// ExtractPhoneSources returns the full matched substrings for the same
// matches ExtractPhones concatenates, capped at 5. These keep the complete
// formatted number and feed E.164 normalization downstream.
func ExtractPhoneSources(text string) []string {
	matches := phonePattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	phones := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		phones = append(phones, m)
		if len(phones) == maxPhonesPerPage {
			break
		}
	}
	return phones
}

// FirstCompanyLinkedIn returns the href of the first anchor pointing at a
// LinkedIn company page, or "" when the page has none.
func FirstCompanyLinkedIn(doc *goquery.Document) string {
	var href string
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		h, ok := s.Attr("href")
		if !ok || !linkedInCompanyPattern.MatchString(h) {
			return true
		}
		href = h
		return false
	})
	return href
}
