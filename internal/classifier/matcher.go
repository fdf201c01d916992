package classifier

import (
	"regexp"
	"strings"
)

// keywordSet counts case-insensitive whole-word occurrences of a fixed
// keyword list. Each keyword is a literal phrase: regex metacharacters are
// escaped and the compiled pattern is anchored on word boundaries, so
// "light" never counts inside "lighthouse".
type keywordSet struct {
	keywords []string
	patterns []*regexp.Regexp
}

func newKeywordSet(keywords []string) *keywordSet {
	s := &keywordSet{
		keywords: make([]string, 0, len(keywords)),
		patterns: make([]*regexp.Regexp, 0, len(keywords)),
	}
	for _, kw := range keywords {
		normalized := strings.ToLower(strings.TrimSpace(kw))
		if normalized == "" {
			continue
		}
		s.keywords = append(s.keywords, normalized)
		s.patterns = append(s.patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(normalized)+`\b`))
	}
	return s
}

// score returns the total count of non-overlapping whole-word matches across
// all keywords in text. Adding occurrences of a keyword never lowers the
// score.
func (s *keywordSet) score(text string) int {
	total := 0
	for _, p := range s.patterns {
		total += len(p.FindAllStringIndex(text, -1))
	}
	return total
}
