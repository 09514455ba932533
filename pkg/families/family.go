// Package families recognizes sherpa-onnx TTS model families in a Hub
// repository listing and turns a recognized repository into catalog entries.
//
// Each family is described by a Descriptor: the keyword its repository names
// carry, the root files it cannot work without, how its primary model file is
// picked among candidates, which auxiliary files travel with it, and how many
// entries one repository expands into. Descriptors live in a Registry that is
// consulted in a fixed order.
package families

import (
	"regexp"
	"strings"
)

// Family names a supported model architecture. The value doubles as the
// catalog model_type.
type Family string

// Families that produce catalog entries.
const (
	VITS   Family = "vits"
	Matcha Family = "matcha"
	Kokoro Family = "kokoro"
	Kitten Family = "kitten"
)

// Pseudo-families that only appear as dependency targets.
const (
	HiFiGAN Family = "hifigan"
	Vocos   Family = "vocos"
)

// Shared asset ids referenced from entry dependencies.
const (
	EspeakDependencyID  = "sherpa-espeak-ng-data"
	HiFiGANDependencyID = "sherpa-hifigan-v3"
	VocosDependencyID   = "sherpa-vocos-22khz-univ"
)

// Well-known files and directories inside a repository.
const (
	TokensFile   = "tokens.txt"
	VoicesFile   = "voices.bin"
	EspeakPrefix = "espeak-ng-data/"
	DictPrefix   = "dict/"
)

// Variant is one entry produced from a repository. Families that expand a
// repository into several entries (one per vocoder) declare several variants.
type Variant struct {
	// Suffix is appended to the normalized id, including its leading hyphen.
	Suffix string
	// Label is appended to the display name as " + Label".
	Label string
	// Vocoder is the pseudo-family the variant depends on, if any.
	Vocoder Family
}

// single is the variant list of families that map one repository to one entry.
var single = []Variant{{}}

// Descriptor describes how to recognize and assemble one family.
type Descriptor struct {
	Family Family

	// Keyword must appear in the lower-cased repository name.
	Keyword string

	// Signature, when set, recognizes the family from a root file name alone,
	// independently of the name keyword.
	Signature *regexp.Regexp

	// Required root files, in the order they are listed in the entry.
	Required []string

	// Primary picks the main model file from the root files.
	Primary Picker

	// Aux patterns collect extra root files; each pattern contributes its
	// matches sorted, in pattern order.
	Aux []*regexp.Regexp

	// Exclude drops repositories by name even though the keyword matched.
	Exclude func(repoName string) bool

	// Variants lists the entries produced per repository.
	Variants []Variant

	Description string
}

// NameMatches reports whether the keyword occurs in repoName, ignoring case.
func (d Descriptor) NameMatches(repoName string) bool {
	return d.Keyword != "" && strings.Contains(strings.ToLower(repoName), d.Keyword)
}

// SignatureMatches reports whether any root file carries the family signature.
func (d Descriptor) SignatureMatches(root []string) bool {
	if d.Signature == nil {
		return false
	}
	for _, f := range root {
		if d.Signature.MatchString(f) {
			return true
		}
	}
	return false
}

// missing returns the first required file absent from root.
func (d Descriptor) missing(root []string) (string, bool) {
	set := make(map[string]struct{}, len(root))
	for _, f := range root {
		set[f] = struct{}{}
	}
	for _, r := range d.Required {
		if _, ok := set[r]; !ok {
			return r, true
		}
	}
	return "", false
}

// DependencyID maps a pseudo-family to the catalog id of its shared asset.
func DependencyID(f Family) string {
	switch f {
	case HiFiGAN:
		return HiFiGANDependencyID
	case Vocos:
		return VocosDependencyID
	default:
		return ""
	}
}
