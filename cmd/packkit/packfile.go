package main

import (
	"encoding/json"
	"fmt"

	"github.com/efeecllk/game-insights-sub001/export"
	"github.com/efeecllk/game-insights-sub001/pack"
)

// loadPack reads a pack from disk, accepting either a bare pack document
// or a full export envelope (JSON or YAML). Returns the decoded pack and
// any non-fatal warnings.
func loadPack(path string) (*pack.IndustryPack, []string, error) {
	doc, err := export.ReadPackFile(path)
	if err != nil {
		return nil, nil, err
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(doc), &probe); err != nil {
		return nil, nil, fmt.Errorf("%s: not a valid pack document: %w", path, err)
	}

	// Envelopes carry the pack under a "pack" key next to "metadata".
	if _, isEnvelope := probe["metadata"]; isEnvelope {
		result := export.Import(doc)
		if !result.IsValid {
			return nil, result.Warnings, fmt.Errorf("%s: invalid pack: %v", path, result.Errors)
		}
		return result.Pack, result.Warnings, nil
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, nil, fmt.Errorf("%s: not a valid pack document: %w", path, err)
	}
	errs, warnings := pack.ValidateRaw(raw)
	if len(errs) > 0 {
		return nil, warnings, fmt.Errorf("%s: invalid pack: %v", path, errs)
	}

	var p pack.IndustryPack
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return nil, warnings, fmt.Errorf("%s: pack decode: %w", path, err)
	}
	return &p, warnings, nil
}

func printWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Println("  warning:", w)
	}
}
