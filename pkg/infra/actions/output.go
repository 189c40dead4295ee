package actions

import (
	"fmt"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// WriteOutputs appends key=value lines to the GitHub Actions output file at path.
// An empty path means outputs are not requested and nothing is written.
func WriteOutputs(path string, outputs map[string]string, keys ...string) error {
	if path == "" {
		return nil
	}

	var sb strings.Builder
	for _, key := range keys {
		value := outputs[key]
		if strings.ContainsAny(value, "\r\n") {
			return goerr.New("output value must be a single line", goerr.V("key", key))
		}
		sb.WriteString(fmt.Sprintf("%s=%s\n", key, value))
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return goerr.Wrap(err, "failed to open output file", goerr.V("path", path))
	}
	defer f.Close()

	if _, err := f.WriteString(sb.String()); err != nil {
		return goerr.Wrap(err, "failed to write output file", goerr.V("path", path))
	}
	return nil
}
