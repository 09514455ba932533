package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/ttscatalog/pkg/catalog"
	"github.com/agentstation/ttscatalog/pkg/errors"
)

func TestFixedEntries(t *testing.T) {
	fixed := catalog.FixedEntries()
	require.Len(t, fixed, 5)
	assert.Equal(t, []string{
		"android-system-tts",
		"nemo-fastpitch-hifigan-en",
		"sherpa-espeak-ng-data",
		"sherpa-hifigan-v3",
		"sherpa-vocos-22khz-univ",
	}, catalog.FixedIDs())

	system := fixed[0]
	assert.Equal(t, catalog.SourceKindSystem, system.Source.Kind)
	assert.Equal(t, catalog.EngineAndroidSystemTTS, system.Engine)
	assert.Empty(t, system.Files)
	assert.NotNil(t, system.Files)

	nemo := fixed[1]
	assert.Equal(t, catalog.SourceKindLocalBundle, nemo.Source.Kind)
	assert.Equal(t, "nemo-fastpitch-hifigan-en", nemo.Source.BundleName)
	assert.Equal(t, []string{"fastpitch.onnx", "hifigan.onnx", "symbols.json", "config.json"}, nemo.Files)

	espeak := fixed[2]
	assert.Equal(t, catalog.HFSource("csukuangfj/vits-piper-en_US-amy-low", "main"), espeak.Source)
	assert.Equal(t, []string{"espeak-ng-data/"}, espeak.Prefixes)
	assert.Equal(t, "n/a", espeak.Meta.Languages)

	vocos := fixed[4]
	assert.Equal(t, "k2-fsa/sherpa-onnx-models", vocos.Source.Repo)
	assert.Equal(t, []string{"vocoder-models/vocos-22khz-univ.onnx"}, vocos.Files)
}

func TestFixedEntriesReturnsCopies(t *testing.T) {
	a := catalog.FixedEntries()
	a[1].Files[0] = "tampered.onnx"
	b := catalog.FixedEntries()
	assert.Equal(t, "fastpitch.onnx", b[1].Files[0])
}

func TestParseFixed(t *testing.T) {
	_, err := catalog.ParseFixed([]byte("- id: a\n- id: a\n"))
	assert.True(t, errors.IsValidationError(err))

	_, err = catalog.ParseFixed([]byte("- display_name: no id\n"))
	assert.True(t, errors.IsValidationError(err))

	_, err = catalog.ParseFixed([]byte("not: [a list"))
	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
