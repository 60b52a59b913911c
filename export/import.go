package export

import (
	"encoding/json"
	"fmt"

	"github.com/efeecllk/game-insights-sub001/pack"
)

// ImportResult is the structured outcome of parsing and validating an
// exported pack document. Import never returns a Go error: transport
// input is untrusted, so every failure mode is reported in-band.
type ImportResult struct {
	IsValid  bool               `json:"isValid"`
	Errors   []string           `json:"errors"`
	Warnings []string           `json:"warnings"`
	Pack     *pack.IndustryPack `json:"pack,omitempty"`
}

// rawEnvelope defers pack decoding so structural problems surface as
// validation errors, not JSON type errors
type rawEnvelope struct {
	Metadata json.RawMessage `json:"metadata"`
	Pack     json.RawMessage `json:"pack"`
	Checksum string          `json:"checksum"`
}

// Import parses an exported pack document through three stages: envelope
// parse, checksum verification (mismatch is a warning only), and
// structural validation of the embedded pack (same rules the registry
// applies). Any structural error invalidates the whole import.
func Import(data string) ImportResult {
	invalid := func(errs ...string) ImportResult {
		return ImportResult{IsValid: false, Errors: errs, Warnings: []string{}}
	}

	var envelope rawEnvelope
	if err := json.Unmarshal([]byte(data), &envelope); err != nil {
		return invalid(fmt.Sprintf("parse error: %v", err))
	}

	var missing []string
	if len(envelope.Metadata) == 0 || string(envelope.Metadata) == "null" {
		missing = append(missing, "missing required field: metadata")
	}
	if len(envelope.Pack) == 0 || string(envelope.Pack) == "null" {
		missing = append(missing, "missing required field: pack")
	}
	if len(missing) > 0 {
		return invalid(missing...)
	}

	var raw map[string]any
	if err := json.Unmarshal(envelope.Pack, &raw); err != nil {
		return invalid(fmt.Sprintf("pack is not an object: %v", err))
	}

	var p pack.IndustryPack
	if err := json.Unmarshal(envelope.Pack, &p); err != nil {
		return invalid(fmt.Sprintf("pack decode error: %v", err))
	}

	warnings := []string{}
	if w := verifyChecksum(&p, envelope.Checksum); w != "" {
		warnings = append(warnings, w)
	}

	errs, structuralWarnings := pack.ValidateRaw(raw)
	warnings = append(warnings, structuralWarnings...)
	if len(errs) > 0 {
		return ImportResult{IsValid: false, Errors: errs, Warnings: warnings}
	}

	return ImportResult{
		IsValid:  true,
		Errors:   []string{},
		Warnings: warnings,
		Pack:     &p,
	}
}

// verifyChecksum recomputes the pack checksum and compares it to the
// stored value, accepting the legacy rolling hash for short checksums.
// Returns a warning message on mismatch, or "" when the checksum is
// absent or matches.
func verifyChecksum(p *pack.IndustryPack, stored string) string {
	if stored == "" {
		return "envelope carries no checksum; integrity not verified"
	}

	canonical, err := json.Marshal(p)
	if err != nil {
		return fmt.Sprintf("checksum verification skipped: %v", err)
	}

	// SHA-256 checksums are 64 hex chars; anything shorter came from the
	// legacy rolling hash.
	var computed string
	if len(stored) == 64 {
		computed, err = Checksum(p)
		if err != nil {
			return fmt.Sprintf("checksum verification skipped: %v", err)
		}
	} else {
		computed = legacyChecksum(canonical)
	}

	if computed != stored {
		return "checksum mismatch: pack content differs from the exported snapshot"
	}
	return ""
}
