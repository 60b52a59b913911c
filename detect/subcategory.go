package detect

import (
	"sort"

	"github.com/efeecllk/game-insights-sub001/pack"
)

// Sub-category scoring weights: a fully-satisfiable restricted metric
// counts 1 point, a restricted funnel half a point.
const (
	subCategoryMetricWeight = 1.0
	subCategoryFunnelWeight = 0.5
)

// DetectWithSubCategory runs Detect and then refines the result with the
// best-fitting sub-category of the resolved industry. A non-empty hint
// overrides the detected industry when that pack is registered;
// otherwise the hint is ignored and the detected industry is used. Packs
// declaring at most one sub-category are returned unrefined.
func (d *Detector) DetectWithSubCategory(
	columns []pack.ColumnMeaning, industryHint pack.Industry,
) pack.DetectionResult {
	result := d.Detect(columns)

	industry := result.Primary.Industry
	if industryHint != "" && d.registry.HasPack(industryHint) {
		industry = industryHint
	}

	p, ok := d.registry.GetPack(industry)
	if !ok || len(p.SubCategories) <= 1 {
		return result
	}

	if sub, found := bestSubCategory(p, columns); found {
		result.Primary.SubCategory = sub
	}
	return result
}

// bestSubCategory ranks a pack's declared sub-categories by how many of
// their restricted metrics have every required semantic type observed in
// the columns, plus a half point per restricted funnel. Ties resolve to
// declaration order.
func bestSubCategory(p *pack.IndustryPack, columns []pack.ColumnMeaning) (string, bool) {
	available := matchPackTypes(p, columns)

	type subScore struct {
		id    string
		score float64
	}
	scores := make([]subScore, 0, len(p.SubCategories))

	for _, sc := range p.SubCategories {
		score := 0.0
		for _, m := range p.Metrics {
			if !restrictedTo(m.SubCategories, sc.ID) {
				continue
			}
			if typesSatisfied(m.Formula.RequiredTypes, available) {
				score += subCategoryMetricWeight
			}
		}
		for _, f := range p.Funnels {
			if restrictedTo(f.SubCategories, sc.ID) {
				score += subCategoryFunnelWeight
			}
		}
		scores = append(scores, subScore{id: sc.ID, score: score})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	if len(scores) == 0 || scores[0].score == 0 {
		return "", false
	}
	return scores[0].id, true
}

// restrictedTo reports whether the restriction list explicitly names the
// sub-category. Unrestricted entries score for no sub-category here:
// they apply everywhere and so carry no refinement signal.
func restrictedTo(restrictions []string, subCategory string) bool {
	for _, s := range restrictions {
		if s == subCategory {
			return true
		}
	}
	return false
}

func typesSatisfied(required []string, available map[string]int) bool {
	for _, typeID := range required {
		if available[typeID] == 0 {
			return false
		}
	}
	return true
}
