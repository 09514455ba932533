package families_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/ttscatalog/pkg/families"
)

func TestResolveDependencies(t *testing.T) {
	hifigan := families.MatchaDescriptor().Variants[0]
	vocos := families.MatchaDescriptor().Variants[1]
	withEspeak := []string{"model.onnx", "tokens.txt", "espeak-ng-data/phontab"}
	withDict := []string{"model.onnx", "tokens.txt", "dict/jieba.dict.utf8"}

	tests := []struct {
		name     string
		family   families.Family
		variant  families.Variant
		files    []string
		ids      []string
		prefixes []string
	}{
		{"plain vits", families.VITS, families.Variant{}, []string{"model.onnx"}, []string{}, []string{}},
		{"vits with espeak", families.VITS, families.Variant{}, withEspeak, []string{"sherpa-espeak-ng-data"}, []string{}},
		{"kokoro with dict", families.Kokoro, families.Variant{}, withDict, []string{}, []string{"dict/"}},
		{"matcha hifigan", families.Matcha, hifigan, withDict, []string{"sherpa-hifigan-v3"}, []string{"dict/"}},
		{"matcha vocos with espeak", families.Matcha, vocos, withEspeak, []string{"sherpa-vocos-22khz-univ", "sherpa-espeak-ng-data"}, []string{}},
		{"vocoder ignored outside matcha", families.VITS, vocos, []string{"model.onnx"}, []string{}, []string{}},
		{"root file named like prefix is not a directory", families.VITS, families.Variant{}, []string{"espeak-ng-data"}, []string{}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := families.ResolveDependencies(tt.family, tt.variant, tt.files)
			assert.Equal(t, tt.ids, deps.IDs)
			assert.Equal(t, tt.prefixes, deps.Prefixes)
		})
	}
}

func TestDependencyIDsAreFixedEntries(t *testing.T) {
	assert.Equal(t, "sherpa-hifigan-v3", families.DependencyID(families.HiFiGAN))
	assert.Equal(t, "sherpa-vocos-22khz-univ", families.DependencyID(families.Vocos))
	assert.Empty(t, families.DependencyID(families.VITS))
}
