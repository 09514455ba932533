package catalog

import (
	"regexp"
	"strings"
)

var (
	disallowedRun = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// NormalizeID turns a repository name into a catalog id: lowercase, with
// underscores and any other character outside [a-z0-9-] folded into single
// hyphens, and no leading or trailing hyphen. It is total and idempotent.
func NormalizeID(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "_", "-")
	s = disallowedRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
