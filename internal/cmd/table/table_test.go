package table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/ttscatalog/pkg/catalog"
	"github.com/agentstation/ttscatalog/pkg/families"
	"github.com/agentstation/ttscatalog/pkg/refresh"
)

func TestEntriesToTableData(t *testing.T) {
	entries := catalog.FixedEntries()

	narrow := EntriesToTableData(entries, false)
	assert.Len(t, narrow.Headers, 5)
	assert.Len(t, narrow.Rows, len(entries))
	assert.Empty(t, narrow.ColumnAlignment)

	wide := EntriesToTableData(entries, true)
	assert.Len(t, wide.Headers, 8)
	assert.Len(t, wide.ColumnAlignment, 8)
	assert.Equal(t, []string{
		"sherpa-hifigan-v3", "HiFiGAN Vocoder (v3)", "asset_only", "vocoder", "n/a",
		"hf:csukuangfj/sherpa-onnx-hifigan@main", "-", "1",
	}, wide.Rows[3])
}

func TestFormatSource(t *testing.T) {
	assert.Equal(t, "system", FormatSource(catalog.Source{Kind: catalog.SourceKindSystem}))
	assert.Equal(t, "bundle:nemo", FormatSource(catalog.Source{Kind: catalog.SourceKindLocalBundle, BundleName: "nemo"}))
	assert.Equal(t, "hf:a/b", FormatSource(catalog.Source{Kind: catalog.SourceKindHF, Repo: "a/b"}))
}

func TestReposToTableData(t *testing.T) {
	data := ReposToTableData([]refresh.RepoResult{
		{RepoID: "csukuangfj/kokoro-en-v0_19", Outcome: families.Matched, Family: families.Kokoro, Entries: 1},
		{RepoID: "csukuangfj/vits-private", Outcome: refresh.OutcomeUnavailable},
	})
	assert.Equal(t, []string{"csukuangfj/kokoro-en-v0_19", "matched", "kokoro", "1", "-"}, data.Rows[0])
	assert.Equal(t, []string{"csukuangfj/vits-private", "unavailable", "-", "0", "-"}, data.Rows[1])
}

func TestClassificationToTableData(t *testing.T) {
	data := ClassificationToTableData(families.Classification{
		RepoID:     "csukuangfj/vits-matcha-mix",
		Outcome:    families.Ambiguous,
		Candidates: []families.Family{families.Matcha, families.VITS},
		Reason:     "name matches several families",
	})
	assert.Contains(t, data.Rows, []string{"Candidates", "matcha, vits"})
	assert.Contains(t, data.Rows, []string{"Entries", "-"})
}

func TestCountsToTableData(t *testing.T) {
	r := &refresh.Result{Discovered: 4, Classified: 2}
	data := CountsToTableData(r.Counts())
	assert.Equal(t, []string{"discovered", "4"}, data.Rows[0])
	assert.Equal(t, []string{"classified", "2"}, data.Rows[1])
}
