package families

import (
	"strings"

	"github.com/agentstation/ttscatalog/pkg/catalog"
	"github.com/agentstation/ttscatalog/pkg/constants"
)

// Fields is everything needed to build one catalog entry.
type Fields struct {
	RepoID       string
	RepoName     string
	Family       Family
	Variant      Variant
	Files        []string
	Dependencies Dependencies
	Description  string
	Revision     string
}

// Build turns classified fields into a catalog entry.
func Build(f Fields) catalog.Entry {
	rev := f.Revision
	if rev == "" {
		rev = constants.DefaultRevision
	}
	prefixes := f.Dependencies.Prefixes
	if prefixes == nil {
		prefixes = []string{}
	}
	var deps []string
	if len(f.Dependencies.IDs) > 0 {
		deps = append([]string{}, f.Dependencies.IDs...)
	}

	return catalog.Entry{
		ID:           catalog.NormalizeID(f.RepoName) + f.Variant.Suffix,
		DisplayName:  DisplayName(f.Family, f.RepoName, f.Variant.Label),
		Engine:       catalog.EngineSherpaOfflineTTS,
		ModelType:    string(f.Family),
		Source:       catalog.HFSource(f.RepoID, rev),
		Files:        catalog.OrderedSet(f.Files),
		Prefixes:     append([]string{}, prefixes...),
		Dependencies: deps,
		Meta: catalog.Meta{
			Languages:   DetectLanguage(f.RepoName),
			Description: f.Description,
		},
	}
}

// DisplayName derives a human-readable name from the repository naming
// conventions of each family.
func DisplayName(family Family, repoName, variantLabel string) string {
	switch family {
	case VITS:
		return vitsDisplayName(repoName)
	case Matcha:
		name := "Matcha (" + trimPrefixFold(repoName, "matcha-") + ")"
		if variantLabel != "" {
			name += " + " + variantLabel
		}
		return name
	case Kokoro:
		return "Kokoro (" + trimPrefixFold(repoName, "kokoro-") + ")"
	case Kitten:
		return "Kitten (" + trimPrefixFold(repoName, "kitten-") + ")"
	default:
		return repoName
	}
}

func vitsDisplayName(repoName string) string {
	if rest, ok := cutPrefixFold(repoName, "vits-piper-"); ok {
		// <locale>-<voice>-<quality...>
		parts := strings.Split(rest, "-")
		bits := []string{strings.ReplaceAll(parts[0], "_", "-")}
		if len(parts) >= 2 {
			bits = append(bits, parts[1])
		}
		if len(parts) >= 3 {
			bits = append(bits, strings.Join(parts[2:], " "))
		}
		return "Piper VITS (" + joinNonEmpty(bits) + ")"
	}
	for _, p := range []struct{ prefix, label string }{
		{"vits-coqui-", "Coqui VITS"},
		{"vits-mimic3-", "Mimic3 VITS"},
		{"icefall-tts-", "Icefall VITS"},
	} {
		if rest, ok := cutPrefixFold(repoName, p.prefix); ok {
			return p.label + " (" + rest + ")"
		}
	}
	return "VITS (" + repoName + ")"
}

// cutPrefixFold is strings.CutPrefix ignoring ASCII case.
func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return s, false
}

func trimPrefixFold(s, prefix string) string {
	rest, _ := cutPrefixFold(s, prefix)
	return rest
}

func joinNonEmpty(parts []string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.TrimSpace(strings.Join(kept, " "))
}
