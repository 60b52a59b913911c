package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efeecllk/game-insights-sub001/errors"
)

func validPack() *IndustryPack {
	return &IndustryPack{
		ID:      IndustryGaming,
		Name:    "Gaming",
		Version: "1.0.0",
		SemanticTypes: []SemanticType{
			{Type: "user_id", Patterns: []string{"user_id", "player_id"}, Priority: 10},
			{Type: "level", Patterns: []string{"level"}, Priority: 8},
		},
		DetectionIndicators: []DetectionIndicator{
			{Types: []string{"user_id", "level"}, Weight: 5},
		},
		Metrics: []MetricDefinition{
			{ID: "dau", Name: "DAU", Formula: MetricFormula{Expression: "count_distinct($user_id)", RequiredTypes: []string{"user_id"}}},
			{ID: "arpdau", Name: "ARPDAU", SubCategories: []string{"gacha"}},
		},
		Funnels: []FunnelTemplate{
			{ID: "onboarding", Name: "Onboarding", Steps: []FunnelStep{{ID: "install", Name: "Install", SemanticType: "user_id"}}},
			{ID: "pulls", Name: "Pulls", SubCategories: []string{"gacha"}},
		},
		Terminology: map[string]string{"user": "Player"},
		Theme:       Theme{Primary: "#111111", ChartColors: []string{"#111111"}},
	}
}

func TestValidateAcceptsCompletePack(t *testing.T) {
	require.NoError(t, validPack().Validate())
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*IndustryPack)
	}{
		{"missing id", func(p *IndustryPack) { p.ID = "" }},
		{"missing name", func(p *IndustryPack) { p.Name = "" }},
		{"missing version", func(p *IndustryPack) { p.Version = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPack()
			tt.mutate(p)
			err := p.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrMissingField)
		})
	}
}

func TestValidateDuplicateSemanticType(t *testing.T) {
	p := validPack()
	p.SemanticTypes = append(p.SemanticTypes, SemanticType{Type: "user_id", Patterns: []string{"uid"}})

	err := p.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDuplicateSemanticType)
	assert.Contains(t, err.Error(), "user_id")
}

func TestValidateDuplicateMetricID(t *testing.T) {
	p := validPack()
	p.Metrics = append(p.Metrics, MetricDefinition{ID: "dau", Name: "DAU again"})

	err := p.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDuplicateMetricID)
	assert.Contains(t, err.Error(), "dau")
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Player_ID", "playerid"},
		{"player-id", "playerid"},
		{"player id", "playerid"},
		{"MRR", "mrr"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.in), "NormalizeName(%q)", tt.in)
	}
}

func TestMetricsForSubCategory(t *testing.T) {
	p := validPack()

	all := p.MetricsFor("")
	assert.Len(t, all, 2)

	// Unrestricted metrics apply to every sub-category; restricted ones
	// only to their own.
	gacha := p.MetricsFor("gacha")
	assert.Len(t, gacha, 2)

	puzzle := p.MetricsFor("puzzle")
	require.Len(t, puzzle, 1)
	assert.Equal(t, "dau", puzzle[0].ID)
}

func TestFunnelsForSubCategory(t *testing.T) {
	p := validPack()

	assert.Len(t, p.FunnelsFor(""), 2)
	assert.Len(t, p.FunnelsFor("gacha"), 2)

	puzzle := p.FunnelsFor("puzzle")
	require.Len(t, puzzle, 1)
	assert.Equal(t, "onboarding", puzzle[0].ID)
}

func TestCloneIsIndependent(t *testing.T) {
	p := validPack()
	clone := p.Clone()

	require.Equal(t, p, clone)

	clone.SemanticTypes[0].Patterns[0] = "mutated"
	clone.Metrics[0].Formula.RequiredTypes[0] = "mutated"
	clone.Terminology["user"] = "mutated"
	clone.Funnels[0].Steps[0].Name = "mutated"
	clone.Theme.ChartColors[0] = "mutated"

	assert.Equal(t, "user_id", p.SemanticTypes[0].Patterns[0])
	assert.Equal(t, "user_id", p.Metrics[0].Formula.RequiredTypes[0])
	assert.Equal(t, "Player", p.Terminology["user"])
	assert.Equal(t, "Install", p.Funnels[0].Steps[0].Name)
	assert.Equal(t, "#111111", p.Theme.ChartColors[0])
}

func TestDetectionIndicatorRequiredCount(t *testing.T) {
	assert.Equal(t, 2, DetectionIndicator{Types: []string{"a", "b"}}.RequiredCount())
	assert.Equal(t, 1, DetectionIndicator{Types: []string{"a", "b"}, MinCount: 1}.RequiredCount())
}

func TestValidateRaw(t *testing.T) {
	t.Run("valid raw pack", func(t *testing.T) {
		errs, warnings := ValidateRaw(map[string]any{
			"id": "gaming", "name": "Gaming", "version": "1.0.0",
			"semanticTypes":       []any{map[string]any{"type": "user_id"}},
			"detectionIndicators": []any{map[string]any{"weight": 5.0}},
			"metrics":             []any{map[string]any{"id": "dau"}},
		})
		assert.Empty(t, errs)
		assert.Empty(t, warnings)
	})

	t.Run("missing fields accumulate", func(t *testing.T) {
		errs, _ := ValidateRaw(map[string]any{})
		assert.Len(t, errs, 3)
	})

	t.Run("non-array field", func(t *testing.T) {
		errs, _ := ValidateRaw(map[string]any{
			"id": "x", "name": "X", "version": "1",
			"metrics": "not-an-array",
		})
		require.NotEmpty(t, errs)
		assert.Contains(t, errs[0], "metrics")
	})

	t.Run("duplicate ids reported", func(t *testing.T) {
		errs, _ := ValidateRaw(map[string]any{
			"id": "x", "name": "X", "version": "1",
			"semanticTypes": []any{
				map[string]any{"type": "mrr"},
				map[string]any{"type": "mrr"},
			},
			"metrics": []any{
				map[string]any{"id": "m1"},
				map[string]any{"id": "m1"},
			},
		})
		require.Len(t, errs, 2)
		assert.Contains(t, errs[0], "mrr")
		assert.Contains(t, errs[1], "m1")
	})

	t.Run("empty sections warn", func(t *testing.T) {
		errs, warnings := ValidateRaw(map[string]any{
			"id": "x", "name": "X", "version": "1",
		})
		assert.Empty(t, errs)
		assert.Len(t, warnings, 3)
	})
}
