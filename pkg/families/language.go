package families

import "regexp"

// UnknownLanguage is reported when no language tag is found.
const UnknownLanguage = "unknown"

var languagePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b([a-z]{2}_[A-Z]{2})\b`),
	regexp.MustCompile(`\b([a-z]{2}-[A-Z]{2})\b`),
	regexp.MustCompile(`\b([a-z]{2}_[a-z]{2})\b`),
	regexp.MustCompile(`\b([a-z]{2})\b`),
}

// DetectLanguage guesses a language tag from a repository name. Patterns are
// tried from most to least specific: en_US, en-US, zh_en, then a bare two
// letter code.
func DetectLanguage(repoName string) string {
	for _, p := range languagePatterns {
		if m := p.FindStringSubmatch(repoName); m != nil {
			return m[1]
		}
	}
	return UnknownLanguage
}
