// Package devkit provides a fluent builder for assembling industry
// packs incrementally. Every mutator returns the builder so calls chain;
// validation is deferred to an explicit Validate/Build step that fails
// loudly on structural errors and logs non-fatal warnings.
package devkit

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/efeecllk/game-insights-sub001/errors"
	"github.com/efeecllk/game-insights-sub001/pack"
)

// Builder accumulates an IndustryPack under construction
type Builder struct {
	p      pack.IndustryPack
	logger *slog.Logger
}

// New starts a builder for the given industry id and display name
func New(id pack.Industry, name string) *Builder {
	return &Builder{
		p: pack.IndustryPack{
			ID:            id,
			Name:          name,
			Version:       "1.0.0",
			SubCategories: []pack.SubCategory{},
			SemanticTypes: []pack.SemanticType{},
			Metrics:       []pack.MetricDefinition{},
			Funnels:       []pack.FunnelTemplate{},
			Terminology:   map[string]string{},
		},
		logger: slog.Default(),
	}
}

// WithLogger sets the logger used for build warnings
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// Describe sets the pack description
func (b *Builder) Describe(description string) *Builder {
	b.p.Description = description
	return b
}

// Version sets the pack's semantic version string
func (b *Builder) Version(version string) *Builder {
	b.p.Version = version
	return b
}

// AddSubCategory declares one sub-vertical
func (b *Builder) AddSubCategory(id, name string) *Builder {
	b.p.SubCategories = append(b.p.SubCategories, pack.SubCategory{ID: id, Name: name})
	return b
}

// AddSubCategories declares several sub-verticals at once
func (b *Builder) AddSubCategories(subCategories ...pack.SubCategory) *Builder {
	b.p.SubCategories = append(b.p.SubCategories, subCategories...)
	return b
}

// AddSemanticType declares one semantic column type
func (b *Builder) AddSemanticType(st pack.SemanticType) *Builder {
	b.p.SemanticTypes = append(b.p.SemanticTypes, st)
	return b
}

// AddSemanticTypes declares several semantic column types at once
func (b *Builder) AddSemanticTypes(types ...pack.SemanticType) *Builder {
	b.p.SemanticTypes = append(b.p.SemanticTypes, types...)
	return b
}

// AddIndicator adds a weighted detection rule
func (b *Builder) AddIndicator(indicator pack.DetectionIndicator) *Builder {
	b.p.DetectionIndicators = append(b.p.DetectionIndicators, indicator)
	return b
}

// AddMetric adds a full metric definition
func (b *Builder) AddMetric(m pack.MetricDefinition) *Builder {
	b.p.Metrics = append(b.p.Metrics, m)
	return b
}

// AddKPI is shorthand for a number-formatted kpi-category metric whose
// formula depends on the listed semantic types
func (b *Builder) AddKPI(id, name, expression string, requiredTypes ...string) *Builder {
	return b.AddMetric(pack.MetricDefinition{
		ID:   id,
		Name: name,
		Formula: pack.MetricFormula{
			Expression:    expression,
			RequiredTypes: requiredTypes,
		},
		Format:   pack.FormatNumber,
		Category: pack.CategoryKPI,
	})
}

// AddFunnel adds a complete funnel template. For step-by-step assembly
// use CreateFunnel.
func (b *Builder) AddFunnel(f pack.FunnelTemplate) *Builder {
	b.p.Funnels = append(b.p.Funnels, f)
	return b
}

// AddChartType adds a default chart configuration
func (b *Builder) AddChartType(cc pack.ChartConfig) *Builder {
	b.p.ChartConfigs = append(b.p.ChartConfigs, cc)
	return b
}

// SetDefaultCharts replaces the pack's chart configurations wholesale
func (b *Builder) SetDefaultCharts(charts []pack.ChartConfig) *Builder {
	b.p.ChartConfigs = append([]pack.ChartConfig(nil), charts...)
	return b
}

// AddInsight adds an insight template
func (b *Builder) AddInsight(it pack.InsightTemplate) *Builder {
	b.p.InsightTemplates = append(b.p.InsightTemplates, it)
	return b
}

// SetTerminology replaces the terminology table wholesale
func (b *Builder) SetTerminology(terms map[string]string) *Builder {
	b.p.Terminology = make(map[string]string, len(terms))
	for k, v := range terms {
		b.p.Terminology[k] = v
	}
	return b
}

// AddTerm sets one terminology entry
func (b *Builder) AddTerm(key, value string) *Builder {
	if b.p.Terminology == nil {
		b.p.Terminology = map[string]string{}
	}
	b.p.Terminology[key] = value
	return b
}

// SetTheme shallow-merges the given theme into the pack's theme:
// non-zero fields win, everything else is kept
func (b *Builder) SetTheme(theme pack.Theme) *Builder {
	b.p.Theme = pack.MergeThemes(b.p.Theme, theme)
	return b
}

// SetMetadata sets the pack's authorship metadata
func (b *Builder) SetMetadata(meta pack.Metadata) *Builder {
	b.p.Metadata = &meta
	return b
}

// ValidationResult reports the outcome of pre-build validation
type ValidationResult struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

// Validate checks the in-progress pack. Errors block Build; warnings
// flag omissions that degrade but do not break the pack.
func (b *Builder) Validate() ValidationResult {
	var errs, warnings []string

	if b.p.ID == "" {
		errs = append(errs, "missing required field: id")
	}
	if b.p.Name == "" {
		errs = append(errs, "missing required field: name")
	}
	if dup := firstDuplicate(b.p.SemanticTypes, func(st pack.SemanticType) string { return st.Type }); dup != "" {
		errs = append(errs, fmt.Sprintf("duplicate semantic type: %q", dup))
	}
	if dup := firstDuplicate(b.p.Metrics, func(m pack.MetricDefinition) string { return m.ID }); dup != "" {
		errs = append(errs, fmt.Sprintf("duplicate metric id: %q", dup))
	}

	if len(b.p.SubCategories) == 0 {
		warnings = append(warnings, "pack has no sub-categories")
	}
	if len(b.p.SemanticTypes) == 0 {
		warnings = append(warnings, "pack has no semantic types; detection will not work")
	}
	if len(b.p.Metrics) == 0 {
		warnings = append(warnings, "pack has no metrics")
	}
	if len(b.p.DetectionIndicators) == 0 {
		warnings = append(warnings, "pack has no detection indicators; industry cannot be auto-detected")
	}
	if len(b.p.Theme.ChartColors) == 0 {
		warnings = append(warnings, "theme has no chart colors")
	}

	return ValidationResult{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}

// Build validates and returns the finished pack. Any validation error
// fails the build with a classified error enumerating every problem;
// warnings are logged as non-fatal diagnostics.
func (b *Builder) Build() (*pack.IndustryPack, error) {
	result := b.Validate()
	if !result.IsValid {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %s", errors.ErrInvalidPack, strings.Join(result.Errors, "; ")),
			"Builder", "Build", "pack validation")
	}
	for _, warning := range result.Warnings {
		b.logger.Warn("pack built with warning", "pack", string(b.p.ID), "warning", warning)
	}
	built := b.p.Clone()
	return built, nil
}

// BuildUnsafe returns the in-progress pack regardless of validation
// state, for test scaffolding or intentionally partial packs
func (b *Builder) BuildUnsafe() *pack.IndustryPack {
	return b.p.Clone()
}

func firstDuplicate[T any](items []T, id func(T) string) string {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		key := id(item)
		if _, exists := seen[key]; exists {
			return key
		}
		seen[key] = struct{}{}
	}
	return ""
}
