package manifest

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/autobump/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tidwall/gjson"
)

// FileName is the package manifest file name
const FileName = "package.json"

type reader struct{}

// NewReader creates a ManifestReader for package.json files
func NewReader() interfaces.ManifestReader {
	return &reader{}
}

// ReadVersion returns the version field of dir/package.json
func (r *reader) ReadVersion(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read manifest", goerr.V("path", path))
	}

	if !gjson.ValidBytes(data) {
		return "", goerr.New("manifest is not valid JSON", goerr.V("path", path))
	}

	v := gjson.GetBytes(data, "version")
	if !v.Exists() || v.String() == "" {
		return "", goerr.New("manifest has no version field", goerr.V("path", path))
	}
	return v.String(), nil
}
