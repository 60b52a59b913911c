package devkit

import "github.com/efeecllk/game-insights-sub001/pack"

// Customizations describes overrides and additions applied to a base
// pack by ExtendPack. Scalar fields replace the base value when
// non-empty; array fields are appended only where the base does not
// already declare the same identifier; map fields shallow-merge with
// customization values taking precedence.
type Customizations struct {
	Name        string
	Description string
	Version     string

	SubCategories       []pack.SubCategory
	SemanticTypes       []pack.SemanticType
	DetectionIndicators []pack.DetectionIndicator
	Metrics             []pack.MetricDefinition
	Funnels             []pack.FunnelTemplate
	InsightTemplates    []pack.InsightTemplate

	Terminology map[string]string
	Theme       *pack.Theme
	Metadata    *pack.Metadata
}

// ExtendPack produces a new pack derived from base with the given
// customizations. The base is never mutated. When no version override is
// given the result's version is "<base version>-custom", marking it as a
// local derivation of the published base.
func ExtendPack(base *pack.IndustryPack, custom Customizations) *pack.IndustryPack {
	out := base.Clone()

	if custom.Name != "" {
		out.Name = custom.Name
	}
	if custom.Description != "" {
		out.Description = custom.Description
	}
	if custom.Version != "" {
		out.Version = custom.Version
	} else {
		out.Version = base.Version + "-custom"
	}

	out.SubCategories = pack.MergeSubCategories(out.SubCategories, custom.SubCategories)
	out.SemanticTypes = pack.MergeSemanticTypes(out.SemanticTypes, custom.SemanticTypes)
	out.DetectionIndicators = pack.MergeIndicators(out.DetectionIndicators, custom.DetectionIndicators)
	out.Metrics = pack.MergeMetrics(out.Metrics, custom.Metrics)
	out.Funnels = pack.MergeFunnels(out.Funnels, custom.Funnels)
	out.InsightTemplates = pack.MergeInsights(out.InsightTemplates, custom.InsightTemplates)

	out.Terminology = pack.MergeTerminology(out.Terminology, custom.Terminology)
	if custom.Theme != nil {
		out.Theme = pack.MergeThemes(out.Theme, *custom.Theme)
	}
	if custom.Metadata != nil {
		meta := *custom.Metadata
		out.Metadata = &meta
	}

	return out
}
