package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/ttscatalog/pkg/catalog"
	"github.com/agentstation/ttscatalog/pkg/errors"
)

func entries() []catalog.Entry {
	fixed := catalog.FixedEntries()
	return append(fixed,
		catalog.Entry{
			ID:           "matcha-icefall-en_us-ljspeech-hifigan",
			DisplayName:  "Matcha icefall en_US ljspeech (HiFiGAN)",
			Engine:       catalog.EngineSherpaOfflineTTS,
			ModelType:    "matcha",
			Source:       catalog.HFSource("csukuangfj/matcha-icefall-en_US-ljspeech", "main"),
			Files:        []string{"model-steps-3.onnx", "tokens.txt"},
			Prefixes:     []string{"espeak-ng-data/"},
			Dependencies: []string{"sherpa-espeak-ng-data", "sherpa-hifigan-v3"},
			Meta:         catalog.Meta{Languages: "en"},
		},
		catalog.Entry{
			ID:          "kokoro-multi-lang-v1_0",
			DisplayName: "Kokoro multi lang v1_0",
			Engine:      catalog.EngineSherpaOfflineTTS,
			ModelType:   "kokoro",
			Source:      catalog.HFSource("csukuangfj/kokoro-multi-lang-v1_0", "main"),
			Files:       []string{"model.onnx", "voices.bin", "tokens.txt"},
			Prefixes:    []string{},
			Meta:        catalog.Meta{Languages: "en, zh"},
		},
	)
}

func ids(es []catalog.Entry) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.ID
	}
	return out
}

func TestEmptyFilterKeepsEverything(t *testing.T) {
	all := entries()
	got, err := (&EntryFilter{}).Apply(all)
	require.NoError(t, err)
	assert.Len(t, got, len(all))

	var nilFilter *EntryFilter
	got, err = nilFilter.Apply(all)
	require.NoError(t, err)
	assert.Len(t, got, len(all))
}

func TestFlagFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter EntryFilter
		want   []string
	}{
		{"engine", EntryFilter{Engine: "nemo_ort"}, []string{"nemo-fastpitch-hifigan-en"}},
		{"type", EntryFilter{Type: "VOCODER"}, []string{"sherpa-hifigan-v3", "sherpa-vocos-22khz-univ"}},
		{"language list", EntryFilter{Language: "zh"}, []string{"kokoro-multi-lang-v1_0"}},
		{"search", EntryFilter{Search: "ljspeech"}, []string{"matcha-icefall-en_us-ljspeech-hifigan"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.filter.Apply(entries())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestWhereExpression(t *testing.T) {
	tests := []struct {
		where string
		want  []string
	}{
		{`"sherpa-hifigan-v3" in dependencies`, []string{"matcha-icefall-en_us-ljspeech-hifigan"}},
		{`type == "kokoro" && "voices.bin" in files`, []string{"kokoro-multi-lang-v1_0"}},
		{`source_kind == "hf" && !fixed`, []string{"matcha-icefall-en_us-ljspeech-hifigan", "kokoro-multi-lang-v1_0"}},
		{`fixed && source_kind != "hf"`, []string{"android-system-tts", "nemo-fastpitch-hifigan-en"}},
	}
	for _, tt := range tests {
		t.Run(tt.where, func(t *testing.T) {
			f := &EntryFilter{Where: tt.where}
			got, err := f.Apply(entries())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestWhereCombinesWithFlags(t *testing.T) {
	f := &EntryFilter{Type: "vocoder", Where: `repo startsWith "k2-fsa/"`}
	got, err := f.Apply(entries())
	require.NoError(t, err)
	assert.Equal(t, []string{"sherpa-vocos-22khz-univ"}, ids(got))
}

func TestInvalidWhereIsValidationError(t *testing.T) {
	for _, where := range []string{`id ==`, `len(files)`, `unknown_field == 1`} {
		f := &EntryFilter{Where: where}
		err := f.Compile()
		require.Error(t, err, where)
		assert.True(t, errors.IsValidationError(err), where)
	}
}

func TestNewEnv(t *testing.T) {
	e := entries()[5]
	env := NewEnv(e, false)
	assert.Equal(t, "matcha-icefall-en_us-ljspeech-hifigan", env.ID)
	assert.Equal(t, "hf", env.SourceKind)
	assert.Equal(t, "csukuangfj/matcha-icefall-en_US-ljspeech", env.Repo)
	assert.Equal(t, []string{"sherpa-espeak-ng-data", "sherpa-hifigan-v3"}, env.Dependencies)
	assert.False(t, env.Fixed)
	assert.True(t, NewEnv(e, true).Fixed)
}

func TestWhereFixedAcrossEntries(t *testing.T) {
	f := &EntryFilter{Where: `fixed`}
	got, err := f.Apply(entries())
	require.NoError(t, err)
	assert.Equal(t, catalog.FixedIDs(), ids(got))
}
