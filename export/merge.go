package export

import "github.com/efeecllk/game-insights-sub001/pack"

// MergePacks combines a base pack with an overlay for customization.
// Array entities merge additively keyed by identifier - the base wins on
// id collision, so an overlay can never replace an existing entry (only
// a whole-pack update through the registry can). Terminology and theme
// shallow-merge with overlay values taking precedence; id, name, and
// version take the overlay's value when present, else the base's.
// Neither input is mutated.
func MergePacks(base, overlay *pack.IndustryPack) *pack.IndustryPack {
	out := base.Clone()

	if overlay.ID != "" {
		out.ID = overlay.ID
	}
	if overlay.Name != "" {
		out.Name = overlay.Name
	}
	if overlay.Version != "" {
		out.Version = overlay.Version
	}
	if overlay.Description != "" {
		out.Description = overlay.Description
	}

	out.SubCategories = pack.MergeSubCategories(out.SubCategories, overlay.SubCategories)
	out.SemanticTypes = pack.MergeSemanticTypes(out.SemanticTypes, overlay.SemanticTypes)
	out.DetectionIndicators = pack.MergeIndicators(out.DetectionIndicators, overlay.DetectionIndicators)
	out.Metrics = pack.MergeMetrics(out.Metrics, overlay.Metrics)
	out.Funnels = pack.MergeFunnels(out.Funnels, overlay.Funnels)
	out.InsightTemplates = pack.MergeInsights(out.InsightTemplates, overlay.InsightTemplates)

	out.Terminology = pack.MergeTerminology(out.Terminology, overlay.Terminology)
	out.Theme = pack.MergeThemes(out.Theme, overlay.Theme)

	if overlay.Metadata != nil {
		meta := *overlay.Metadata
		out.Metadata = &meta
	}

	return out
}
