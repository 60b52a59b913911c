package pack

// Additive merge semantics shared by devkit.ExtendPack and
// export.MergePacks: array entries from the overlay are appended only
// when the base does not already declare the same identifier (base wins
// on id collision), while scalar and map fields take the overlay's value
// when present. Only a whole-pack replace through the registry can
// change an existing entry.

// Clone returns a deep copy of the pack. Every nested slice and map is
// recreated so later in-place mutation of the original cannot leak into
// the copy.
func (p *IndustryPack) Clone() *IndustryPack {
	if p == nil {
		return nil
	}
	clone := *p

	clone.SubCategories = append([]SubCategory(nil), p.SubCategories...)
	clone.ChartConfigs = append([]ChartConfig(nil), p.ChartConfigs...)
	clone.InsightTemplates = append([]InsightTemplate(nil), p.InsightTemplates...)

	clone.SemanticTypes = make([]SemanticType, len(p.SemanticTypes))
	for i, st := range p.SemanticTypes {
		st.Patterns = append([]string(nil), st.Patterns...)
		clone.SemanticTypes[i] = st
	}

	clone.DetectionIndicators = make([]DetectionIndicator, len(p.DetectionIndicators))
	for i, di := range p.DetectionIndicators {
		di.Types = append([]string(nil), di.Types...)
		clone.DetectionIndicators[i] = di
	}

	clone.Metrics = make([]MetricDefinition, len(p.Metrics))
	for i, m := range p.Metrics {
		m.Formula.RequiredTypes = append([]string(nil), m.Formula.RequiredTypes...)
		m.SubCategories = append([]string(nil), m.SubCategories...)
		if m.Thresholds != nil {
			t := *m.Thresholds
			m.Thresholds = &t
		}
		clone.Metrics[i] = m
	}

	clone.Funnels = make([]FunnelTemplate, len(p.Funnels))
	for i, f := range p.Funnels {
		f.SubCategories = append([]string(nil), f.SubCategories...)
		steps := make([]FunnelStep, len(f.Steps))
		for j, step := range f.Steps {
			step.EventPatterns = append([]string(nil), step.EventPatterns...)
			steps[j] = step
		}
		f.Steps = steps
		clone.Funnels[i] = f
	}

	if p.Terminology != nil {
		clone.Terminology = make(map[string]string, len(p.Terminology))
		for k, v := range p.Terminology {
			clone.Terminology[k] = v
		}
	}
	clone.Theme.ChartColors = append([]string(nil), p.Theme.ChartColors...)

	if p.Metadata != nil {
		meta := *p.Metadata
		clone.Metadata = &meta
	}

	return &clone
}

// MergeSubCategories appends overlay entries whose id is absent from base
func MergeSubCategories(base, overlay []SubCategory) []SubCategory {
	out := append([]SubCategory(nil), base...)
	seen := make(map[string]struct{}, len(base))
	for _, sc := range base {
		seen[sc.ID] = struct{}{}
	}
	for _, sc := range overlay {
		if _, exists := seen[sc.ID]; !exists {
			out = append(out, sc)
		}
	}
	return out
}

// MergeSemanticTypes appends overlay entries whose type is absent from base
func MergeSemanticTypes(base, overlay []SemanticType) []SemanticType {
	out := append([]SemanticType(nil), base...)
	seen := make(map[string]struct{}, len(base))
	for _, st := range base {
		seen[st.Type] = struct{}{}
	}
	for _, st := range overlay {
		if _, exists := seen[st.Type]; !exists {
			out = append(out, st)
		}
	}
	return out
}

// MergeIndicators concatenates indicator lists. Indicators carry no
// identifier, so every overlay rule is kept.
func MergeIndicators(base, overlay []DetectionIndicator) []DetectionIndicator {
	out := append([]DetectionIndicator(nil), base...)
	return append(out, overlay...)
}

// MergeMetrics appends overlay entries whose id is absent from base
func MergeMetrics(base, overlay []MetricDefinition) []MetricDefinition {
	out := append([]MetricDefinition(nil), base...)
	seen := make(map[string]struct{}, len(base))
	for _, m := range base {
		seen[m.ID] = struct{}{}
	}
	for _, m := range overlay {
		if _, exists := seen[m.ID]; !exists {
			out = append(out, m)
		}
	}
	return out
}

// MergeFunnels appends overlay entries whose id is absent from base
func MergeFunnels(base, overlay []FunnelTemplate) []FunnelTemplate {
	out := append([]FunnelTemplate(nil), base...)
	seen := make(map[string]struct{}, len(base))
	for _, f := range base {
		seen[f.ID] = struct{}{}
	}
	for _, f := range overlay {
		if _, exists := seen[f.ID]; !exists {
			out = append(out, f)
		}
	}
	return out
}

// MergeInsights appends overlay entries whose id is absent from base
func MergeInsights(base, overlay []InsightTemplate) []InsightTemplate {
	out := append([]InsightTemplate(nil), base...)
	seen := make(map[string]struct{}, len(base))
	for _, it := range base {
		seen[it.ID] = struct{}{}
	}
	for _, it := range overlay {
		if _, exists := seen[it.ID]; !exists {
			out = append(out, it)
		}
	}
	return out
}

// MergeTerminology shallow-merges terminology maps, overlay values
// taking precedence
func MergeTerminology(base, overlay map[string]string) map[string]string {
	if base == nil && overlay == nil {
		return nil
	}
	out := make(map[string]string, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

// MergeThemes shallow-merges themes field by field, non-zero overlay
// values taking precedence
func MergeThemes(base, overlay Theme) Theme {
	out := base
	if overlay.Primary != "" {
		out.Primary = overlay.Primary
	}
	if overlay.Secondary != "" {
		out.Secondary = overlay.Secondary
	}
	if overlay.Accent != "" {
		out.Accent = overlay.Accent
	}
	if overlay.Background != "" {
		out.Background = overlay.Background
	}
	if len(overlay.ChartColors) > 0 {
		out.ChartColors = append([]string(nil), overlay.ChartColors...)
	} else {
		out.ChartColors = append([]string(nil), base.ChartColors...)
	}
	return out
}
