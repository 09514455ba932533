package families

import "strings"

// Dependencies are the shared assets and extra directories an entry needs.
type Dependencies struct {
	IDs      []string
	Prefixes []string
}

// ResolveDependencies returns the dependency ids and prefixes for one entry.
// The variant's vocoder comes first, then espeak-ng-data when the repository
// ships it. dict/ is requested when the repository has a dict directory.
func ResolveDependencies(family Family, variant Variant, files []string) Dependencies {
	deps := Dependencies{IDs: []string{}, Prefixes: []string{}}

	if family == Matcha {
		if id := DependencyID(variant.Vocoder); id != "" {
			deps.IDs = append(deps.IDs, id)
		}
	}
	if hasPrefix(files, EspeakPrefix) {
		deps.IDs = append(deps.IDs, EspeakDependencyID)
	}
	if hasPrefix(files, DictPrefix) {
		deps.Prefixes = append(deps.Prefixes, DictPrefix)
	}
	return deps
}

func hasPrefix(files []string, prefix string) bool {
	for _, f := range files {
		if strings.HasPrefix(f, prefix) {
			return true
		}
	}
	return false
}
