package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/autobump/pkg/infra/manifest"
	"github.com/m-mizutani/gt"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	gt.NoError(t, os.WriteFile(filepath.Join(dir, manifest.FileName), []byte(content), 0644))
	return dir
}

func TestReader_ReadVersion(t *testing.T) {
	r := manifest.NewReader()

	t.Run("reads version", func(t *testing.T) {
		dir := writeManifest(t, `{"name":"pkg","version":"1.0.0","dependencies":{"x":{"version":"9.9.9"}}}`)
		got, err := r.ReadVersion(dir)
		gt.NoError(t, err)
		gt.Value(t, got).Equal("1.0.0")
	})

	t.Run("missing manifest", func(t *testing.T) {
		_, err := r.ReadVersion(t.TempDir())
		gt.Error(t, err)
		gt.String(t, err.Error()).Contains("failed to read manifest")
	})

	t.Run("missing version field", func(t *testing.T) {
		dir := writeManifest(t, `{"name":"pkg"}`)
		_, err := r.ReadVersion(dir)
		gt.Error(t, err)
	})

	t.Run("broken JSON", func(t *testing.T) {
		dir := writeManifest(t, `{"version": "1.0.0"`)
		_, err := r.ReadVersion(dir)
		gt.Error(t, err)
	})
}
