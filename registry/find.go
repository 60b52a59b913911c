package registry

import (
	"strings"

	"github.com/efeecllk/game-insights-sub001/pack"
)

// Pattern-match confidence levels for semantic type lookup
const (
	exactMatchConfidence     = 1.0
	substringMatchConfidence = 0.7
)

// SemanticTypeMatch is the result of a fuzzy semantic type lookup
type SemanticTypeMatch struct {
	Industry     pack.Industry
	SemanticType pack.SemanticType
	Confidence   float64
}

// FindSemanticType searches registered packs for the semantic type best
// matching a raw column name. The name is normalized (lowercased,
// underscores/dashes/whitespace stripped) and compared against each
// declared pattern: an exact normalized match scores 1.0, a substring
// match in either direction scores 0.7. When industries are given, only
// those packs are searched; otherwise all packs are candidates. Returns
// nil when nothing matches.
func (r *Registry) FindSemanticType(columnName string, industries ...pack.Industry) *SemanticTypeMatch {
	normalized := pack.NormalizeName(columnName)
	if normalized == "" {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	candidates := r.order
	if len(industries) > 0 {
		candidates = industries
	}

	var best *SemanticTypeMatch
	for _, id := range candidates {
		p, ok := r.packs[id]
		if !ok {
			continue
		}
		for _, st := range p.SemanticTypes {
			confidence := matchPatterns(normalized, st.Patterns)
			if confidence == 0 {
				continue
			}
			if best == nil || confidence > best.Confidence {
				best = &SemanticTypeMatch{
					Industry:     id,
					SemanticType: st,
					Confidence:   confidence,
				}
			}
		}
	}
	return best
}

// matchPatterns returns the highest confidence of any pattern against
// the normalized name, or 0 when nothing matches
func matchPatterns(normalized string, patterns []string) float64 {
	best := 0.0
	for _, pattern := range patterns {
		normalizedPattern := pack.NormalizeName(pattern)
		if normalizedPattern == "" {
			continue
		}
		switch {
		case normalized == normalizedPattern:
			return exactMatchConfidence
		case strings.Contains(normalized, normalizedPattern),
			strings.Contains(normalizedPattern, normalized):
			if substringMatchConfidence > best {
				best = substringMatchConfidence
			}
		}
	}
	return best
}
