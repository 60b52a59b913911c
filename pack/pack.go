// Package pack defines the data model for industry packs: the semantic
// types, detection indicators, metrics, funnels, and presentation tables
// that describe one analytics vertical. Packs are pure data; behavior
// lives in the registry, detect, devkit, and export packages.
package pack

import "strings"

// Industry identifies an analytics vertical
type Industry string

// Built-in industry identifiers. IndustryCustom is the open escape value
// used for user-authored packs and for the "no signal" detection result.
const (
	IndustryGaming    Industry = "gaming"
	IndustrySaaS      Industry = "saas"
	IndustryEcommerce Industry = "ecommerce"
	IndustryFintech   Industry = "fintech"
	IndustryCustom    Industry = "custom"
)

// String implements fmt.Stringer for Industry
func (i Industry) String() string {
	return string(i)
}

// MetricFormat describes how a metric value is rendered downstream
type MetricFormat string

// Metric format constants
const (
	FormatNumber     MetricFormat = "number"
	FormatPercentage MetricFormat = "percentage"
	FormatCurrency   MetricFormat = "currency"
	FormatDuration   MetricFormat = "duration"
	FormatDecimal    MetricFormat = "decimal"
)

// MetricCategory groups metrics for dashboard layout
type MetricCategory string

// Metric category constants
const (
	CategoryKPI          MetricCategory = "kpi"
	CategoryEngagement   MetricCategory = "engagement"
	CategoryMonetization MetricCategory = "monetization"
	CategoryRetention    MetricCategory = "retention"
	CategoryFunnel       MetricCategory = "funnel"
	CategoryCustom       MetricCategory = "custom"
)

// SemanticType is a named column-meaning category (e.g. "mrr", "user_id",
// "level"). Patterns are lowercase fragments used for fuzzy header
// matching; Priority (1-10) weights the type's salience during detection.
type SemanticType struct {
	Type        string   `json:"type"`
	Patterns    []string `json:"patterns"`
	Priority    int      `json:"priority"`
	Description string   `json:"description,omitempty"`
	DataType    string   `json:"dataType,omitempty"`
}

// DetectionIndicator is a weighted scoring rule: when at least MinCount
// of the listed semantic types co-occur in a dataset, the indicator
// contributes Weight per matched type to the owning pack's score.
// MinCount zero means all listed types must match.
type DetectionIndicator struct {
	Types    []string `json:"types"`
	Weight   float64  `json:"weight"`
	MinCount int      `json:"minCount,omitempty"`
	Reason   string   `json:"reason,omitempty"`
}

// RequiredCount returns the effective minimum number of matching types
func (di DetectionIndicator) RequiredCount() int {
	if di.MinCount > 0 {
		return di.MinCount
	}
	return len(di.Types)
}

// MetricFormula holds an opaque downstream-evaluated expression with
// $column-style references. This module stores and validates presence
// only; it never parses or executes expressions.
type MetricFormula struct {
	Expression    string   `json:"expression"`
	RequiredTypes []string `json:"requiredTypes"`
	Fallback      string   `json:"fallback,omitempty"`
}

// Thresholds bound metric values for downstream visualization
type Thresholds struct {
	Good    float64 `json:"good"`
	Warning float64 `json:"warning"`
	Bad     float64 `json:"bad"`
}

// MetricDefinition describes one computed metric within a pack.
// SubCategories, when set, restricts the metric to those sub-verticals;
// empty means globally applicable within the industry.
type MetricDefinition struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Formula       MetricFormula  `json:"formula"`
	Format        MetricFormat   `json:"format"`
	Category      MetricCategory `json:"category"`
	Thresholds    *Thresholds    `json:"thresholds,omitempty"`
	SubCategories []string       `json:"subCategories,omitempty"`
}

// AppliesTo reports whether the metric is applicable to the given
// sub-category. Metrics without restrictions apply everywhere.
func (m MetricDefinition) AppliesTo(subCategory string) bool {
	return appliesTo(m.SubCategories, subCategory)
}

// FunnelStep is one stage of a conversion funnel
type FunnelStep struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	SemanticType  string   `json:"semanticType"`
	EventPatterns []string `json:"eventPatterns,omitempty"`
	Condition     string   `json:"condition,omitempty"`
}

// FunnelTemplate is an ordered multi-step conversion funnel
type FunnelTemplate struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description,omitempty"`
	Steps         []FunnelStep `json:"steps"`
	SubCategories []string     `json:"subCategories,omitempty"`
}

// AppliesTo reports whether the funnel is applicable to the given
// sub-category. Funnels without restrictions apply everywhere.
func (f FunnelTemplate) AppliesTo(subCategory string) bool {
	return appliesTo(f.SubCategories, subCategory)
}

// ChartConfig describes a default chart for the dashboard layer
type ChartConfig struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Metrics  []string `json:"metrics,omitempty"`
	Priority int      `json:"priority,omitempty"`
}

// InsightTemplate is a parameterized narrative rendered downstream when
// its (opaque) condition holds against computed metrics
type InsightTemplate struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Template  string `json:"template"`
	Severity  string `json:"severity,omitempty"`
	Condition string `json:"condition,omitempty"`
}

// Theme carries the pack's presentation colors
type Theme struct {
	Primary     string   `json:"primary,omitempty"`
	Secondary   string   `json:"secondary,omitempty"`
	Accent      string   `json:"accent,omitempty"`
	Background  string   `json:"background,omitempty"`
	ChartColors []string `json:"chartColors,omitempty"`
}

// SubCategory names a sub-vertical within an industry (e.g. puzzle/idle
// within gaming) with its own applicable metrics and funnels
type SubCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Metadata carries optional authorship information
type Metadata struct {
	Author   string `json:"author,omitempty"`
	License  string `json:"license,omitempty"`
	Homepage string `json:"homepage,omitempty"`
}

// IndustryPack is the unit of configuration for one analytics vertical.
// Packs are constructed once (statically or via the devkit builder),
// registered into a registry, and replaced wholesale on update - never
// partially mutated in place.
type IndustryPack struct {
	ID                  Industry             `json:"id"`
	Name                string               `json:"name"`
	Description         string               `json:"description,omitempty"`
	Version             string               `json:"version"`
	SubCategories       []SubCategory        `json:"subCategories"`
	SemanticTypes       []SemanticType       `json:"semanticTypes"`
	DetectionIndicators []DetectionIndicator `json:"detectionIndicators"`
	Metrics             []MetricDefinition   `json:"metrics"`
	Funnels             []FunnelTemplate     `json:"funnels"`
	ChartConfigs        []ChartConfig        `json:"chartConfigs,omitempty"`
	InsightTemplates    []InsightTemplate    `json:"insightTemplates,omitempty"`
	Terminology         map[string]string    `json:"terminology,omitempty"`
	Theme               Theme                `json:"theme"`
	Metadata            *Metadata            `json:"metadata,omitempty"`
}

// MetricsFor returns the pack's metrics applicable to the given
// sub-category; an empty subCategory returns all metrics.
func (p *IndustryPack) MetricsFor(subCategory string) []MetricDefinition {
	if subCategory == "" {
		return append([]MetricDefinition(nil), p.Metrics...)
	}
	var out []MetricDefinition
	for _, m := range p.Metrics {
		if m.AppliesTo(subCategory) {
			out = append(out, m)
		}
	}
	return out
}

// FunnelsFor returns the pack's funnels applicable to the given
// sub-category; an empty subCategory returns all funnels.
func (p *IndustryPack) FunnelsFor(subCategory string) []FunnelTemplate {
	if subCategory == "" {
		return append([]FunnelTemplate(nil), p.Funnels...)
	}
	var out []FunnelTemplate
	for _, f := range p.Funnels {
		if f.AppliesTo(subCategory) {
			out = append(out, f)
		}
	}
	return out
}

// SemanticType returns the pack's semantic type with the given
// identifier, or nil if not declared.
func (p *IndustryPack) SemanticType(typeID string) *SemanticType {
	for i := range p.SemanticTypes {
		if p.SemanticTypes[i].Type == typeID {
			return &p.SemanticTypes[i]
		}
	}
	return nil
}

// ColumnMeaning is the detection input: one observed column annotated by
// upstream schema analysis with a normalized meaning and its certainty.
type ColumnMeaning struct {
	Column     string  `json:"column"`
	Meaning    string  `json:"meaning"`
	Confidence float64 `json:"confidence"`
	DataType   string  `json:"dataType,omitempty"`
}

// IndustryMatch is one ranked classification candidate
type IndustryMatch struct {
	Industry    Industry `json:"industry"`
	SubCategory string   `json:"subCategory,omitempty"`
	Confidence  float64  `json:"confidence"`
	Reasons     []string `json:"reasons"`
}

// DetectedSemanticType maps one observed column to a semantic type with
// the combined (pattern x upstream) confidence of that assignment
type DetectedSemanticType struct {
	Column     string  `json:"column"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

// DetectionResult is the ranked classification of a dataset
type DetectionResult struct {
	Primary               IndustryMatch          `json:"primary"`
	Alternatives          []IndustryMatch        `json:"alternatives"`
	IsAmbiguous           bool                   `json:"isAmbiguous"`
	DetectedSemanticTypes []DetectedSemanticType `json:"detectedSemanticTypes"`
}

// NormalizeName lowercases a column or pattern name and strips
// underscores, dashes, and whitespace so "Player_ID", "player-id", and
// "player id" all normalize to "playerid".
func NormalizeName(name string) string {
	lower := strings.ToLower(name)
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ', '\t':
			return -1
		}
		return r
	}, lower)
}

func appliesTo(restrictions []string, subCategory string) bool {
	if len(restrictions) == 0 {
		return true
	}
	for _, s := range restrictions {
		if s == subCategory {
			return true
		}
	}
	return false
}
