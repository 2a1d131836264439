package harvest

import (
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestExtractEmails(t *testing.T) {
	text := "Reach us at jane.doe@example.com or info@example.com, call 06-12345678"

	emails := ExtractEmails(text)
	want := []string{"jane.doe@example.com", "info@example.com"}
	if !reflect.DeepEqual(emails, want) {
		t.Fatalf("unexpected emails: %#v", emails)
	}
}

func TestExtractEmailsIsIdempotent(t *testing.T) {
	text := "a@b.nl duplicated a@b.nl and c@d.com"

	first := ExtractEmails(text)
	second := ExtractEmails(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("extraction not idempotent: %#v vs %#v", first, second)
	}
	if len(first) != 2 {
		t.Fatalf("expected deduplicated emails, got %#v", first)
	}
}

func TestExtractEmailsCapsAtTen(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 15; i++ {
		sb.WriteString("user")
		sb.WriteByte(byte('a' + i))
		sb.WriteString("@example.com ")
	}

	emails := ExtractEmails(sb.String())
	if len(emails) != 10 {
		t.Fatalf("expected cap of 10, got %d", len(emails))
	}
}

func TestExtractEmailsIgnoresJunk(t *testing.T) {
	if got := ExtractEmails("no emails here, just an @ sign and a .com"); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}
}

func TestExtractPhones(t *testing.T) {
	phones := ExtractPhones("call 06-12345678 today")
	if len(phones) == 0 {
		t.Fatalf("expected a phone match for 06-12345678")
	}
	if !strings.HasPrefix(phones[0], "0") {
		t.Fatalf("expected leading-zero prefix, got %q", phones[0])
	}
}

func TestExtractPhonesMatchesInternationalPrefix(t *testing.T) {
	for _, input := range []string{"+31 6 12 34 56 78", "0031612345678", "020-1234567 x"} {
		if got := ExtractPhones(input); len(got) == 0 {
			t.Fatalf("expected a match for %q", input)
		}
	}
}

func TestExtractPhoneSourcesKeepsFullMatch(t *testing.T) {
	sources := ExtractPhoneSources("call 06-12345678 today")
	if len(sources) != 1 || sources[0] != "06-12345678" {
		t.Fatalf("expected full match, got %#v", sources)
	}

	if got := ExtractPhoneSources("no phones"); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}
}

func TestExtractPhonesDeduplicatesAndCaps(t *testing.T) {
	text := strings.Repeat("06-12345678 ", 3)
	if got := ExtractPhones(text); len(got) != 1 {
		t.Fatalf("expected one deduplicated phone, got %#v", got)
	}
}

func TestFirstCompanyLinkedIn(t *testing.T) {
	html := `<html><body>
		<a href="https://twitter.com/acme">Twitter</a>
		<a href="https://www.LinkedIn.com/company/acme">LinkedIn</a>
		<a href="https://linkedin.com/company/other">Other</a>
	</body></html>`
	doc := mustParse(t, html)

	got := FirstCompanyLinkedIn(doc)
	if got != "https://www.LinkedIn.com/company/acme" {
		t.Fatalf("unexpected linkedin href: %q", got)
	}
}

func TestFirstCompanyLinkedInIgnoresProfiles(t *testing.T) {
	doc := mustParse(t, `<a href="https://linkedin.com/in/jane">Jane</a>`)
	if got := FirstCompanyLinkedIn(doc); got != "" {
		t.Fatalf("personal profile should not match, got %q", got)
	}
}

func mustParse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}
