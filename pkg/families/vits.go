package families

import (
	"regexp"
	"strings"
)

// OfficialCoquiRepo is the only vits-coqui-* repository kept in the catalog.
const OfficialCoquiRepo = "vits-coqui-en-ljspeech"

var (
	lexiconFile = regexp.MustCompile(`^lexicon.*\.txt$`)
	farFile     = regexp.MustCompile(`\.far$`)
	fstFile     = regexp.MustCompile(`\.fst$`)
)

// VITSDescriptor covers Piper, Coqui, Mimic3, Icefall and other VITS voices.
func VITSDescriptor() Descriptor {
	return Descriptor{
		Family:      VITS,
		Keyword:     "vits",
		Required:    []string{TokensFile},
		Primary:     PickFirst("model.int8.onnx", "model.fp16.onnx", "model.onnx"),
		Aux:         []*regexp.Regexp{lexiconFile, farFile, fstFile},
		Exclude:     excludeCoqui,
		Variants:    single,
		Description: "VITS voice via sherpa-onnx OfflineTtsVitsModelConfig.",
	}
}

// excludeCoqui keeps a single Coqui model; the rest bloat the catalog.
func excludeCoqui(repoName string) bool {
	_, coqui := cutPrefixFold(repoName, "vits-coqui-")
	return coqui && !strings.EqualFold(repoName, OfficialCoquiRepo)
}
