package harvest

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxTeamSections bounds the work done on a single team page.
const maxTeamSections = 20

var (
	sectionClassPattern = regexp.MustCompile(`(?i)team|member|employee|staff|person`)

	// Only sections mentioning a managerial or commerce function are kept;
	// everything else on an about page (history, mission, press) is noise.
	managerKeywords = []string{
		"manager", "director", "head of", "ceo", "cmo", "coo",
		"e-commerce", "marketing", "logistics", "operations",
	}

	// Tags checked, in order, for a person's name inside a section.
	nameTags = "h2, h3, h4, strong, b"
)

// ExtractTeamMembers scans a team/about page for person sections and pulls
// out name, position and email per section. Sections are block containers
// whose class mentions a team-ish keyword; the name is the first heading or
// emphasis element, the position is guessed from the section's text lines.
func ExtractTeamMembers(doc *goquery.Document) []Member {
	var members []Member

	sections := doc.Find("div, section, article").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, ok := s.Attr("class")
		return ok && sectionClassPattern.MatchString(class)
	})

	sections.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= maxTeamSections {
			return false
		}

		text := s.Text()
		if !containsManagerKeyword(text) {
			return true
		}

		name := strings.TrimSpace(s.Find(nameTags).First().Text())
		if name == "" {
			return true
		}

		member := Member{Name: name}

		lines := nonBlankLines(text)
		if len(lines) >= 2 {
			if lines[0] == name {
				member.Position = lines[1]
			} else {
				member.Position = lines[0]
			}
		}

		if email := emailPattern.FindString(text); email != "" {
			member.Email = email
		}

		members = append(members, member)
		return true
	})

	return members
}

func containsManagerKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range managerKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
