package pack

import (
	"fmt"

	"github.com/efeecllk/game-insights-sub001/errors"
)

// Validate checks the structural invariants every registered pack must
// satisfy: non-empty id, name, and version, unique semantic-type
// identifiers, and unique metric identifiers. The first violation is
// returned as a classified error naming the offending field or id.
func (p *IndustryPack) Validate() error {
	if p == nil {
		return errors.WrapInvalid(errors.ErrInvalidPack, "IndustryPack", "Validate", "nil pack check")
	}
	if p.ID == "" {
		return errors.WrapInvalid(
			fmt.Errorf("%w: id", errors.ErrMissingField),
			"IndustryPack", "Validate", "required field check")
	}
	if p.Name == "" {
		return errors.WrapInvalid(
			fmt.Errorf("%w: name", errors.ErrMissingField),
			"IndustryPack", "Validate", "required field check")
	}
	if p.Version == "" {
		return errors.WrapInvalid(
			fmt.Errorf("%w: version", errors.ErrMissingField),
			"IndustryPack", "Validate", "required field check")
	}

	if dup := firstDuplicateSemanticType(p.SemanticTypes); dup != "" {
		return errors.WrapInvalid(
			fmt.Errorf("%w: %q", errors.ErrDuplicateSemanticType, dup),
			"IndustryPack", "Validate", "semantic type uniqueness check")
	}
	if dup := firstDuplicateMetricID(p.Metrics); dup != "" {
		return errors.WrapInvalid(
			fmt.Errorf("%w: %q", errors.ErrDuplicateMetricID, dup),
			"IndustryPack", "Validate", "metric id uniqueness check")
	}

	return nil
}

func firstDuplicateSemanticType(types []SemanticType) string {
	seen := make(map[string]struct{}, len(types))
	for _, st := range types {
		if _, exists := seen[st.Type]; exists {
			return st.Type
		}
		seen[st.Type] = struct{}{}
	}
	return ""
}

func firstDuplicateMetricID(metrics []MetricDefinition) string {
	seen := make(map[string]struct{}, len(metrics))
	for _, m := range metrics {
		if _, exists := seen[m.ID]; exists {
			return m.ID
		}
		seen[m.ID] = struct{}{}
	}
	return ""
}

// ValidateRaw applies the registry's structural rules to an untyped pack
// document, as decoded from untrusted import input. Unlike Validate it
// never stops at the first problem: it accumulates every error so a pack
// author can fix all authoring mistakes in one pass. Warnings flag
// omissions that degrade but do not break a pack.
func ValidateRaw(raw map[string]any) (errs, warnings []string) {
	for _, field := range []string{"id", "name", "version"} {
		s, ok := raw[field].(string)
		if !ok || s == "" {
			errs = append(errs, fmt.Sprintf("missing required field: %s", field))
		}
	}

	for _, field := range []string{"subCategories", "semanticTypes", "metrics"} {
		if v, present := raw[field]; present && v != nil {
			if _, ok := v.([]any); !ok {
				errs = append(errs, fmt.Sprintf("field %s must be an array", field))
			}
		}
	}

	if dup := rawDuplicate(raw["semanticTypes"], "type"); dup != "" {
		errs = append(errs, fmt.Sprintf("duplicate semantic type: %q", dup))
	}
	if dup := rawDuplicate(raw["metrics"], "id"); dup != "" {
		errs = append(errs, fmt.Sprintf("duplicate metric id: %q", dup))
	}

	if isEmptyRawArray(raw["semanticTypes"]) {
		warnings = append(warnings, "pack has no semantic types; detection will not work")
	}
	if isEmptyRawArray(raw["detectionIndicators"]) {
		warnings = append(warnings, "pack has no detection indicators; industry cannot be auto-detected")
	}
	if isEmptyRawArray(raw["metrics"]) {
		warnings = append(warnings, "pack has no metrics")
	}

	return errs, warnings
}

// rawDuplicate scans an untyped array of objects for a repeated value of
// the given key and returns it, or "" when all values are distinct.
func rawDuplicate(v any, key string) string {
	entries, ok := v.([]any)
	if !ok {
		return ""
	}
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		id, ok := obj[key].(string)
		if !ok {
			continue
		}
		if _, exists := seen[id]; exists {
			return id
		}
		seen[id] = struct{}{}
	}
	return ""
}

func isEmptyRawArray(v any) bool {
	if v == nil {
		return true
	}
	entries, ok := v.([]any)
	return ok && len(entries) == 0
}
