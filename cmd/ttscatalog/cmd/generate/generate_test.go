package generate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/ttscatalog/internal/cmd/application"
	"github.com/agentstation/ttscatalog/internal/store"
	"github.com/agentstation/ttscatalog/pkg/catalog"
	"github.com/agentstation/ttscatalog/pkg/sources"
)

func init() {
	color.NoColor = true
}

func fixture() *sources.Static {
	s := sources.NewStatic(
		sources.Listing{RepoID: "csukuangfj/vits-piper-en_US-amy-low", Files: []string{"en_US-amy-low.onnx", "tokens.txt", "espeak-ng-data/phontab"}},
		sources.Listing{RepoID: "csukuangfj/kokoro-en-v0_19", Files: []string{"model.onnx", "tokens.txt", "voices.bin"}},
		sources.Listing{RepoID: "csukuangfj/kokoro-en-v0_19-no-voices", Files: []string{"model.onnx", "tokens.txt"}},
	)
	s.Unavailable = []string{"csukuangfj/vits-gated"}
	return s
}

func newMock(t *testing.T, format string) (*application.Mock, *bytes.Buffer, string) {
	t.Helper()
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "assets", "model_catalog.json")
	return &application.Mock{
		Out:              &out,
		SourceFunc:       func() sources.Source { return fixture() },
		CatalogPathFunc:  func() string { return path },
		OutputFormatFunc: func() string { return format },
	}, &out, path
}

func TestExecuteWritesCatalog(t *testing.T) {
	app, out, path := newMock(t, "")

	require.NoError(t, Execute(context.Background(), app, &Flags{}))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Models, 7)
	_, ok := c.Find("vits-piper-en-us-amy-low")
	assert.True(t, ok)

	text := out.String()
	assert.Contains(t, text, "Wrote "+path+" (models=7, fixed=5, dynamic=2)")
	assert.Contains(t, text, "Skipped (no family or missing files): 1")
	assert.Contains(t, text, "Unavailable (gated, private or failed): 1")
}

func TestExecuteDryRunDoesNotWrite(t *testing.T) {
	app, out, path := newMock(t, "")

	require.NoError(t, Execute(context.Background(), app, &Flags{DryRun: true, Report: true}))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.Contains(t, out.String(), "Dry run")
	assert.Contains(t, out.String(), "csukuangfj/vits-gated")
}

func TestExecuteOutputFlagWins(t *testing.T) {
	app, _, path := newMock(t, "")
	other := filepath.Join(t.TempDir(), "other.json")

	require.NoError(t, Execute(context.Background(), app, &Flags{Output: other}))

	_, err := os.Stat(other)
	assert.NoError(t, err)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestExecuteJSONSummary(t *testing.T) {
	app, out, _ := newMock(t, "json")

	require.NoError(t, Execute(context.Background(), app, &Flags{
		Seeds:       []string{"csukuangfj/kokoro-en-v0_19"},
		SearchTerms: []string{"kokoro"},
	}))

	var s Summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &s))
	assert.True(t, s.Written)
	assert.Equal(t, 2, s.Discovered)
	assert.Equal(t, 1, s.Dynamic)
	assert.Equal(t, 1, s.Skipped)
	assert.Nil(t, s.Published)
}

func TestExecuteSnapshot(t *testing.T) {
	app, _, path := newMock(t, "")
	app.SourceFunc = func() sources.Source { return sources.NewStatic() }

	snapshot := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(snapshot, []byte(`repos:
  csukuangfj/kitten-nano-en-v0_1-fp16: [model.fp16.onnx, tokens.txt, voices.bin, espeak-ng-data/phontab]
`), 0o644))

	require.NoError(t, Execute(context.Background(), app, &Flags{Snapshot: snapshot}))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	e, ok := c.Find("kitten-nano-en-v0-1-fp16")
	require.True(t, ok)
	assert.Equal(t, "kitten", e.ModelType)
}

func TestExecutePublish(t *testing.T) {
	app, out, path := newMock(t, "")
	var uploaded []byte
	app.PublisherFunc = func() (application.Publisher, error) {
		return application.PublishFunc(func(_ context.Context, content []byte) (store.Location, error) {
			uploaded = content
			return store.Location{Bucket: "catalogs", Key: "model_catalog.json"}, nil
		}), nil
	}

	require.NoError(t, Execute(context.Background(), app, &Flags{Publish: true}))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(written), string(uploaded))
	assert.Contains(t, out.String(), "Published s3://catalogs/model_catalog.json")
}

func TestExecutePublishWithoutStoreFails(t *testing.T) {
	app, _, _ := newMock(t, "")
	err := Execute(context.Background(), app, &Flags{Publish: true})
	assert.Error(t, err)
}

func TestExecuteCanceled(t *testing.T) {
	app, _, path := newMock(t, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, Execute(ctx, app, &Flags{}))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestBuildRefreshOptions(t *testing.T) {
	assert.Empty(t, BuildRefreshOptions(&Flags{}))
	assert.Len(t, BuildRefreshOptions(&Flags{Author: "k2-fsa", Revision: "v1", Limit: 5}), 3)
}
