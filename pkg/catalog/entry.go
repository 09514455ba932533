// Package catalog defines the model catalog artifact: its entry shape, the
// hand-authored fixed entries, identifier normalization, assembly of fixed
// and discovered entries, and the byte-stable JSON encoding consumed by the
// Android app.
package catalog

// SchemaVersion is the version written to every catalog artifact.
const SchemaVersion = 1

// SourceKind says where an entry's files come from.
type SourceKind string

// Source kinds.
const (
	SourceKindHF          SourceKind = "hf"
	SourceKindSystem      SourceKind = "system"
	SourceKindLocalBundle SourceKind = "local_bundle"
)

// Engines understood by the app.
const (
	EngineSherpaOfflineTTS = "sherpa_offline_tts"
	EngineAndroidSystemTTS = "android_system_tts"
	EngineNemoORT          = "nemo_ort"
	EngineAssetOnly        = "asset_only"
)

// Source locates an entry's files. Only the fields relevant to Kind are set.
type Source struct {
	Kind       SourceKind `json:"kind" yaml:"kind"`
	Repo       string     `json:"repo,omitempty" yaml:"repo,omitempty"`
	Rev        string     `json:"rev,omitempty" yaml:"rev,omitempty"`
	BundleName string     `json:"bundle_name,omitempty" yaml:"bundle_name,omitempty"`
}

// HFSource returns a Hub source pinned to rev.
func HFSource(repo, rev string) Source {
	return Source{Kind: SourceKindHF, Repo: repo, Rev: rev}
}

// Meta carries descriptive fields.
type Meta struct {
	Languages   string `json:"languages" yaml:"languages"`
	Description string `json:"description" yaml:"description"`
	SizeHintMB  int    `json:"size_hint_mb" yaml:"size_hint_mb"`
}

// Entry is one installable catalog item. Field order is the wire order.
type Entry struct {
	ID           string   `json:"id" yaml:"id"`
	DisplayName  string   `json:"display_name" yaml:"display_name"`
	Engine       string   `json:"engine" yaml:"engine"`
	ModelType    string   `json:"model_type" yaml:"model_type"`
	Source       Source   `json:"source" yaml:"source"`
	Files        []string `json:"files" yaml:"files"`
	Prefixes     []string `json:"prefixes" yaml:"prefixes"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Meta         Meta     `json:"meta" yaml:"meta"`
}

// Catalog is the artifact root.
type Catalog struct {
	SchemaVersion int     `json:"schema_version" yaml:"schema_version"`
	Models        []Entry `json:"models" yaml:"models"`
}

// Find returns the entry with the given id.
func (c *Catalog) Find(id string) (Entry, bool) {
	for _, e := range c.Models {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// OrderedSet removes duplicates while keeping the first occurrence of each
// value. The result is never nil.
func OrderedSet(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// normalized returns a copy whose list fields are non-nil so they encode as
// arrays.
func (e Entry) normalized() Entry {
	e.Files = OrderedSet(e.Files)
	if e.Prefixes == nil {
		e.Prefixes = []string{}
	} else {
		e.Prefixes = append([]string{}, e.Prefixes...)
	}
	if len(e.Dependencies) == 0 {
		e.Dependencies = nil
	} else {
		e.Dependencies = append([]string{}, e.Dependencies...)
	}
	return e
}
