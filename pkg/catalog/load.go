package catalog

import (
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/agentstation/ttscatalog/pkg/errors"
)

// Decode reads a catalog artifact.
func Decode(r io.Reader) (*Catalog, error) {
	var c Catalog
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, errors.WrapParse("json", "", err)
	}
	if c.SchemaVersion != SchemaVersion {
		return nil, errors.NewValidationError("schema_version", c.SchemaVersion, "unsupported schema version")
	}
	return &c, nil
}

// Load reads the catalog artifact at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("catalog", path)
		}
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	c, err := Decode(f)
	if err != nil {
		var parseErr *errors.ParseError
		if errors.As(err, &parseErr) {
			parseErr.File = path
		}
		return nil, err
	}
	return c, nil
}
