package packs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efeecllk/game-insights-sub001/detect"
	"github.com/efeecllk/game-insights-sub001/pack"
	"github.com/efeecllk/game-insights-sub001/registry"
)

func TestBuiltinPacksValidate(t *testing.T) {
	builtins := map[string]*pack.IndustryPack{
		"gaming":    Gaming(),
		"saas":      SaaS(),
		"ecommerce": Ecommerce(),
		"fintech":   Fintech(),
	}

	for name, p := range builtins {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, p.Validate())
			assert.NotEmpty(t, p.SubCategories)
			assert.NotEmpty(t, p.SemanticTypes)
			assert.NotEmpty(t, p.DetectionIndicators)
			assert.NotEmpty(t, p.Metrics)
			assert.NotEmpty(t, p.Funnels)
			assert.NotEmpty(t, p.Terminology)
			assert.NotEmpty(t, p.Theme.ChartColors)
		})
	}
}

func TestRegisterAll(t *testing.T) {
	reg := registry.New()

	require.NoError(t, RegisterAll(reg))

	assert.Equal(t, []pack.Industry{
		pack.IndustryGaming,
		pack.IndustrySaaS,
		pack.IndustryEcommerce,
		pack.IndustryFintech,
	}, reg.RegisteredIndustries())
}

func TestRegisterAllNilRegistry(t *testing.T) {
	require.Error(t, RegisterAll(nil))
}

func TestRegisterAllTwiceFails(t *testing.T) {
	reg := registry.New()
	require.NoError(t, RegisterAll(reg))
	require.Error(t, RegisterAll(reg))
}

func TestPacksAreFreshInstances(t *testing.T) {
	a := Gaming()
	b := Gaming()
	require.NotSame(t, a, b)

	a.Terminology["user"] = "mutated"
	assert.NotEqual(t, "mutated", b.Terminology["user"])
}

func TestGamingDatasetDetectsGaming(t *testing.T) {
	reg := registry.New()
	require.NoError(t, RegisterAll(reg))
	d := detect.New(reg)

	columns := []pack.ColumnMeaning{
		{Column: "player_id", Meaning: "player_id", Confidence: 1.0},
		{Column: "level", Meaning: "level", Confidence: 1.0},
		{Column: "session_length", Meaning: "session_length", Confidence: 0.9},
		{Column: "iap_revenue", Meaning: "iap_revenue", Confidence: 0.8},
	}

	result := d.Detect(columns)

	assert.Equal(t, pack.IndustryGaming, result.Primary.Industry)
	assert.Equal(t, 1.0, result.Primary.Confidence)
	assert.NotEmpty(t, result.Primary.Reasons)
	assert.NotEmpty(t, result.DetectedSemanticTypes)
}

func TestSaaSDatasetDetectsSaaS(t *testing.T) {
	reg := registry.New()
	require.NoError(t, RegisterAll(reg))
	d := detect.New(reg)

	columns := []pack.ColumnMeaning{
		{Column: "mrr", Meaning: "mrr", Confidence: 1.0},
		{Column: "churn_rate", Meaning: "churn_rate", Confidence: 1.0},
		{Column: "account_id", Meaning: "account_id", Confidence: 1.0},
	}

	result := d.Detect(columns)
	assert.Equal(t, pack.IndustrySaaS, result.Primary.Industry)
}

func TestUnrelatedDatasetDetectsCustom(t *testing.T) {
	reg := registry.New()
	require.NoError(t, RegisterAll(reg))
	d := detect.New(reg)

	columns := []pack.ColumnMeaning{
		{Column: "xyzzy", Meaning: "xyzzy", Confidence: 1.0},
		{Column: "plugh", Meaning: "plugh", Confidence: 1.0},
	}

	result := d.Detect(columns)
	assert.Equal(t, pack.IndustryCustom, result.Primary.Industry)
	assert.Zero(t, result.Primary.Confidence)
}
