package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/efeecllk/game-insights-sub001/errors"
)

// File boundary of the exporter. Exchange is file-content only; there is
// no network protocol for pack sharing.

// WritePackFile writes an exported pack document to disk. The
// conventional extension is .pack.json.
func WritePackFile(path, document string) error {
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		return errors.Wrap(err, "Export", "WritePackFile", "file write")
	}
	return nil
}

// ReadPackFile reads a pack document from disk. YAML files (.yaml/.yml)
// are converted to their JSON equivalent so Import handles both formats.
func ReadPackFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "Export", "ReadPackFile", "file read")
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		converted, err := yamlToJSON(data)
		if err != nil {
			return "", errors.WrapInvalid(err, "Export", "ReadPackFile", "yaml conversion")
		}
		return converted, nil
	}
	return string(data), nil
}

// yamlToJSON re-encodes a YAML document as JSON. yaml.v3 decodes
// mappings as map[string]any, so the result marshals directly.
func yamlToJSON(data []byte) (string, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", err
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
