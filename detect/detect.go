// Package detect classifies datasets into analytics verticals.
//
// The Detector is stateless: every call scores the observed column
// meanings against the packs currently registered in its Registry and
// produces a ranked DetectionResult. Scoring always succeeds; a dataset
// with no recognizable signal yields a clean "custom" result with zero
// confidence rather than an error.
package detect

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/efeecllk/game-insights-sub001/metric"
	"github.com/efeecllk/game-insights-sub001/pack"
	"github.com/efeecllk/game-insights-sub001/registry"
)

// Detection tuning defaults
const (
	// DefaultMinConfidence is advisory only: it is exposed for
	// caller-side filtering and deliberately NOT enforced inside Detect,
	// matching the established classification behavior.
	DefaultMinConfidence = 0.3

	// DefaultAmbiguityThreshold flags a result ambiguous when the
	// runner-up's normalized confidence exceeds 1 - threshold.
	DefaultAmbiguityThreshold = 0.2

	// DefaultMaxAlternatives caps the runner-up list
	DefaultMaxAlternatives = 3

	// highPriorityThreshold marks semantic types whose presence alone is
	// strong evidence for a pack
	highPriorityThreshold = 8

	// highPriorityBonus is the flat score added per matched
	// high-priority semantic type
	highPriorityBonus = 2.0
)

// Detector scores registered packs against observed columns
type Detector struct {
	registry           *registry.Registry
	minConfidence      float64
	ambiguityThreshold float64
	maxAlternatives    int

	logger  *slog.Logger
	metrics *metric.Metrics
}

// Option configures a Detector
type Option func(*Detector)

// WithMinConfidence sets the advisory minimum confidence exposed to
// callers via MinConfidence
func WithMinConfidence(v float64) Option {
	return func(d *Detector) {
		d.minConfidence = v
	}
}

// WithAmbiguityThreshold sets how close the runner-up must come to the
// top score before the result is flagged ambiguous
func WithAmbiguityThreshold(v float64) Option {
	return func(d *Detector) {
		d.ambiguityThreshold = v
	}
}

// WithMaxAlternatives caps the number of runner-up candidates returned
func WithMaxAlternatives(n int) Option {
	return func(d *Detector) {
		d.maxAlternatives = n
	}
}

// WithLogger sets the detector's logger
func WithLogger(logger *slog.Logger) Option {
	return func(d *Detector) {
		d.logger = logger
	}
}

// WithMetrics attaches Prometheus instrumentation
func WithMetrics(m *metric.Metrics) Option {
	return func(d *Detector) {
		d.metrics = m
	}
}

// New creates a detector reading packs from the given registry
func New(reg *registry.Registry, opts ...Option) *Detector {
	d := &Detector{
		registry:           reg,
		minConfidence:      DefaultMinConfidence,
		ambiguityThreshold: DefaultAmbiguityThreshold,
		maxAlternatives:    DefaultMaxAlternatives,
		logger:             slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// MinConfidence returns the advisory confidence floor callers may apply
// to Detect results
func (d *Detector) MinConfidence() float64 {
	return d.minConfidence
}

// candidate is one pack's scoring state during a detection pass
type candidate struct {
	pack       *pack.IndustryPack
	score      float64
	reasons    []string
	typeCounts map[string]int
}

// Detect classifies the observed columns against all registered packs.
//
// Each pack is scored by (1) matching every column to its best semantic
// type within the pack, (2) summing weight x matchCount for every
// detection indicator whose required types co-occur, and (3) adding a
// flat bonus per matched high-priority semantic type. Scores are
// normalized against the top scorer so the primary always has confidence
// 1.0; ties are broken by pack registration order.
func (d *Detector) Detect(columns []pack.ColumnMeaning) pack.DetectionResult {
	start := time.Now()
	result := d.detect(columns)
	d.metrics.ObserveDetection(string(result.Primary.Industry), result.IsAmbiguous, time.Since(start))
	return result
}

func (d *Detector) detect(columns []pack.ColumnMeaning) pack.DetectionResult {
	packs := d.registry.AllPacks()
	if len(packs) == 0 {
		return emptyResult("no industry packs registered")
	}

	candidates := make([]candidate, 0, len(packs))
	for _, p := range packs {
		c := d.scorePack(p, columns)
		if c.score > 0 {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return emptyResult("no industry signals found in columns")
	}

	// Stable sort keeps registration order as the tie-break
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	topScore := candidates[0].score
	matches := make([]pack.IndustryMatch, len(candidates))
	for i, c := range candidates {
		matches[i] = pack.IndustryMatch{
			Industry:   c.pack.ID,
			Confidence: c.score / topScore,
			Reasons:    c.reasons,
		}
	}

	isAmbiguous := len(matches) >= 2 && matches[1].Confidence > 1-d.ambiguityThreshold

	alternatives := matches[1:]
	if len(alternatives) > d.maxAlternatives {
		alternatives = alternatives[:d.maxAlternatives]
	}

	return pack.DetectionResult{
		Primary:               matches[0],
		Alternatives:          alternatives,
		IsAmbiguous:           isAmbiguous,
		DetectedSemanticTypes: d.detectSemanticTypes(columns, packs),
	}
}

// scorePack computes one pack's raw score and reasons against the
// observed columns
func (d *Detector) scorePack(p *pack.IndustryPack, columns []pack.ColumnMeaning) candidate {
	c := candidate{pack: p, typeCounts: matchPackTypes(p, columns)}

	for _, indicator := range p.DetectionIndicators {
		matched := make([]string, 0, len(indicator.Types))
		for _, typeID := range indicator.Types {
			if c.typeCounts[typeID] > 0 {
				matched = append(matched, typeID)
			}
		}
		if len(matched) < indicator.RequiredCount() {
			continue
		}

		c.score += indicator.Weight * float64(len(matched))
		reason := indicator.Reason
		if reason == "" {
			shown := matched
			if len(shown) > 3 {
				shown = shown[:3]
			}
			reason = fmt.Sprintf("matched %s", strings.Join(shown, ", "))
		}
		c.reasons = append(c.reasons, reason)
	}

	// High-salience fields count even without a qualifying indicator
	// combination. Iterate declared types, not the counts map, so reason
	// order is deterministic.
	for _, st := range p.SemanticTypes {
		if st.Priority >= highPriorityThreshold && c.typeCounts[st.Type] > 0 {
			c.score += highPriorityBonus
			c.reasons = append(c.reasons, fmt.Sprintf("Strong indicator: %s", st.Type))
		}
	}

	return c
}

// matchPackTypes maps each column to its best-matching semantic type
// within the pack and returns occurrence counts per type identifier.
// Counts record presence, not cumulative weight.
func matchPackTypes(p *pack.IndustryPack, columns []pack.ColumnMeaning) map[string]int {
	counts := make(map[string]int)
	for _, col := range columns {
		if typeID, ok := bestTypeForColumn(p, col); ok {
			counts[typeID]++
		}
	}
	return counts
}

// bestTypeForColumn finds the semantic type whose patterns best match
// the column's meaning or raw name. Exact normalized matches beat
// substring matches; longer patterns and higher priority break ties.
func bestTypeForColumn(p *pack.IndustryPack, col pack.ColumnMeaning) (string, bool) {
	meaning := strings.ToLower(col.Meaning)
	column := strings.ToLower(col.Column)
	normalizedMeaning := pack.NormalizeName(col.Meaning)
	normalizedColumn := pack.NormalizeName(col.Column)

	bestType := ""
	bestRank := 0
	bestLen := -1
	bestPriority := -1

	for _, st := range p.SemanticTypes {
		for _, pattern := range st.Patterns {
			lowered := strings.ToLower(pattern)
			normalized := pack.NormalizeName(pattern)
			if lowered == "" {
				continue
			}

			rank := 0
			switch {
			case normalizedMeaning == normalized || normalizedColumn == normalized:
				rank = 2
			case strings.Contains(meaning, lowered), strings.Contains(column, lowered),
				strings.Contains(lowered, meaning) && meaning != "",
				strings.Contains(lowered, column) && column != "":
				rank = 1
			default:
				continue
			}

			better := rank > bestRank ||
				(rank == bestRank && len(lowered) > bestLen) ||
				(rank == bestRank && len(lowered) == bestLen && st.Priority > bestPriority)
			if better {
				bestType = st.Type
				bestRank = rank
				bestLen = len(lowered)
				bestPriority = st.Priority
			}
		}
	}

	return bestType, bestRank > 0
}

// Pattern-match confidence ladder for detected semantic types
const (
	exactPatternConfidence       = 1.0
	containsPatternConfidence    = 0.8
	containedInPatternConfidence = 0.6
)

// detectSemanticTypes builds the column-to-type assignments across all
// packs, independent of pack scoring. Each assignment's confidence is
// the pattern-match grade scaled by the column's upstream confidence;
// only the best entry per (column, type) pair survives.
func (d *Detector) detectSemanticTypes(
	columns []pack.ColumnMeaning, packs []*pack.IndustryPack,
) []pack.DetectedSemanticType {
	type key struct {
		column string
		typeID string
	}
	best := make(map[key]float64)
	var order []key

	for _, col := range columns {
		meaning := strings.ToLower(col.Meaning)
		column := strings.ToLower(col.Column)
		normalizedMeaning := pack.NormalizeName(col.Meaning)
		normalizedColumn := pack.NormalizeName(col.Column)

		for _, p := range packs {
			for _, st := range p.SemanticTypes {
				grade := 0.0
				for _, pattern := range st.Patterns {
					lowered := strings.ToLower(pattern)
					normalized := pack.NormalizeName(pattern)
					if lowered == "" {
						continue
					}

					g := 0.0
					switch {
					case normalizedMeaning == normalized || normalizedColumn == normalized:
						g = exactPatternConfidence
					case strings.Contains(meaning, lowered), strings.Contains(column, lowered):
						g = containsPatternConfidence
					case (meaning != "" && strings.Contains(lowered, meaning)) ||
						(column != "" && strings.Contains(lowered, column)):
						g = containedInPatternConfidence
					}
					if g > grade {
						grade = g
					}
				}
				if grade == 0 {
					continue
				}

				confidence := grade * col.Confidence
				k := key{column: col.Column, typeID: st.Type}
				if existing, seen := best[k]; !seen {
					best[k] = confidence
					order = append(order, k)
				} else if confidence > existing {
					best[k] = confidence
				}
			}
		}
	}

	out := make([]pack.DetectedSemanticType, 0, len(order))
	for _, k := range order {
		out = append(out, pack.DetectedSemanticType{
			Column:     k.column,
			Type:       k.typeID,
			Confidence: best[k],
		})
	}
	return out
}

// emptyResult is the clean "no signal" outcome: primary industry is the
// custom sentinel with zero confidence
func emptyResult(reason string) pack.DetectionResult {
	return pack.DetectionResult{
		Primary: pack.IndustryMatch{
			Industry:   pack.IndustryCustom,
			Confidence: 0,
			Reasons:    []string{reason},
		},
		Alternatives:          []pack.IndustryMatch{},
		IsAmbiguous:           false,
		DetectedSemanticTypes: []pack.DetectedSemanticType{},
	}
}
