package catalog

import (
	"fmt"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/ttscatalog/internal/embedded"
	"github.com/agentstation/ttscatalog/pkg/errors"
)

var (
	fixedOnce    sync.Once
	fixedEntries []Entry
	fixedErr     error
)

// ParseFixed decodes a YAML list of entries.
func ParseFixed(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.WrapParse("yaml", embedded.FixedEntriesPath, err)
	}
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return nil, errors.NewValidationError(fmt.Sprintf("[%d].id", i), e.ID, "is required")
		}
		if _, dup := seen[e.ID]; dup {
			return nil, errors.NewValidationError(fmt.Sprintf("[%d].id", i), e.ID, "is duplicated")
		}
		seen[e.ID] = struct{}{}
		entries[i] = e.normalized()
	}
	return entries, nil
}

// FixedEntries returns the hand-authored entries that lead every catalog, in
// their authored order. Callers receive their own copy.
func FixedEntries() []Entry {
	fixedOnce.Do(func() {
		data, err := embedded.FS.ReadFile(embedded.FixedEntriesPath)
		if err != nil {
			fixedErr = errors.WrapIO("read", embedded.FixedEntriesPath, err)
			return
		}
		fixedEntries, fixedErr = ParseFixed(data)
	})
	if fixedErr != nil {
		// The file is compiled in; failing here is a build defect.
		panic(fixedErr)
	}
	out := make([]Entry, len(fixedEntries))
	for i, e := range fixedEntries {
		out[i] = e.normalized()
	}
	return out
}

// FixedIDs returns the ids of FixedEntries.
func FixedIDs() []string {
	entries := FixedEntries()
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}
