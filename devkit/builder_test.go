package devkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/efeecllk/game-insights-sub001/errors"
	"github.com/efeecllk/game-insights-sub001/pack"
)

func TestBuilderChaining(t *testing.T) {
	p, err := New("streaming", "Streaming").
		Describe("Video streaming analytics").
		Version("0.2.0").
		AddSubCategory("vod", "Video on Demand").
		AddSubCategory("live", "Live Streaming").
		AddSemanticType(pack.SemanticType{
			Type: "watch_time", Patterns: []string{"watch_time", "minutes_watched"}, Priority: 9,
		}).
		AddSemanticType(pack.SemanticType{
			Type: "viewer_id", Patterns: []string{"viewer_id"}, Priority: 10,
		}).
		AddIndicator(pack.DetectionIndicator{Types: []string{"watch_time"}, Weight: 4}).
		AddKPI("total_watch_time", "Total Watch Time", "sum($watch_time)", "watch_time").
		AddTerm("user", "Viewer").
		SetTheme(pack.Theme{Primary: "#aa0000", ChartColors: []string{"#aa0000"}}).
		Build()

	require.NoError(t, err)
	assert.Equal(t, pack.Industry("streaming"), p.ID)
	assert.Equal(t, "Streaming", p.Name)
	assert.Equal(t, "0.2.0", p.Version)
	assert.Len(t, p.SubCategories, 2)
	assert.Len(t, p.SemanticTypes, 2)
	assert.Len(t, p.Metrics, 1)
	assert.Equal(t, "Viewer", p.Terminology["user"])
	require.NoError(t, p.Validate())
}

func TestBuilderDefaults(t *testing.T) {
	p := New("x", "X").BuildUnsafe()

	assert.Equal(t, "1.0.0", p.Version, "version defaults until overridden")
	assert.NotNil(t, p.SubCategories)
	assert.NotNil(t, p.SemanticTypes)
	assert.NotNil(t, p.Metrics)
	assert.NotNil(t, p.Funnels)
	assert.NotNil(t, p.Terminology)
}

func TestAddKPIShorthand(t *testing.T) {
	p := New("x", "X").
		AddKPI("dau", "Daily Active Users", "count_distinct($user_id)", "user_id").
		BuildUnsafe()

	require.Len(t, p.Metrics, 1)
	m := p.Metrics[0]
	assert.Equal(t, "dau", m.ID)
	assert.Equal(t, pack.FormatNumber, m.Format)
	assert.Equal(t, pack.CategoryKPI, m.Category)
	assert.Equal(t, "count_distinct($user_id)", m.Formula.Expression)
	assert.Equal(t, []string{"user_id"}, m.Formula.RequiredTypes)
}

func TestFunnelBuilderReturnsParent(t *testing.T) {
	p := New("x", "X").
		CreateFunnel("onboarding", "Onboarding").
		Describe("First session flow").
		ForSubCategories("vod").
		AddStep("install", "Install", "install_event").
		AddConditionalStep("signup", "Sign Up", "signup_event", "plan != 'anonymous'").
		AddEventStep("first_play", "First Play", "play_event", "video_start", "stream_start").
		Build().
		BuildUnsafe()

	require.Len(t, p.Funnels, 1)
	f := p.Funnels[0]
	assert.Equal(t, "onboarding", f.ID)
	assert.Equal(t, "First session flow", f.Description)
	assert.Equal(t, []string{"vod"}, f.SubCategories)
	require.Len(t, f.Steps, 3)
	assert.Equal(t, "plan != 'anonymous'", f.Steps[1].Condition)
	assert.Equal(t, []string{"video_start", "stream_start"}, f.Steps[2].EventPatterns)
}

func TestValidateCollectsErrorsAndWarnings(t *testing.T) {
	b := New("", "").
		AddSemanticType(pack.SemanticType{Type: "a"}).
		AddSemanticType(pack.SemanticType{Type: "a"}).
		AddMetric(pack.MetricDefinition{ID: "m"}).
		AddMetric(pack.MetricDefinition{ID: "m"})

	result := b.Validate()

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors[0], "id")
	assert.Contains(t, result.Errors[1], "name")
	assert.Contains(t, result.Errors[2], `"a"`)
	assert.Contains(t, result.Errors[3], `"m"`)
}

func TestValidateWarnsOnEmptySections(t *testing.T) {
	result := New("x", "X").Validate()

	assert.True(t, result.IsValid)
	assert.Len(t, result.Warnings, 5)
}

func TestBuildFailsWithAllErrors(t *testing.T) {
	_, err := New("", "").
		AddSemanticType(pack.SemanticType{Type: "a"}).
		AddSemanticType(pack.SemanticType{Type: "a"}).
		Build()

	require.Error(t, err)
	assert.True(t, pkgerrors.IsInvalid(err))
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidPack)
	assert.Contains(t, err.Error(), "missing required field: id")
	assert.Contains(t, err.Error(), "missing required field: name")
	assert.Contains(t, err.Error(), `duplicate semantic type: "a"`)
}

func TestBuildUnsafeIgnoresValidation(t *testing.T) {
	p := New("", "").BuildUnsafe()
	require.NotNil(t, p)
	assert.Empty(t, p.ID)
}

func TestBuildReturnsIndependentCopy(t *testing.T) {
	b := New("x", "X").
		AddSemanticType(pack.SemanticType{Type: "a", Patterns: []string{"a"}})

	first, err := b.Build()
	require.NoError(t, err)

	b.AddSemanticType(pack.SemanticType{Type: "b"})
	first.SemanticTypes[0].Patterns[0] = "mutated"

	second, err := b.Build()
	require.NoError(t, err)
	assert.Len(t, second.SemanticTypes, 2)
	assert.Equal(t, "a", second.SemanticTypes[0].Patterns[0])
}

func TestSetThemeMerges(t *testing.T) {
	p := New("x", "X").
		SetTheme(pack.Theme{Primary: "#111111", Secondary: "#222222"}).
		SetTheme(pack.Theme{Primary: "#333333", ChartColors: []string{"#333333"}}).
		BuildUnsafe()

	assert.Equal(t, "#333333", p.Theme.Primary)
	assert.Equal(t, "#222222", p.Theme.Secondary, "untouched fields survive a later merge")
	assert.Equal(t, []string{"#333333"}, p.Theme.ChartColors)
}

func TestSetTerminologyCopiesInput(t *testing.T) {
	terms := map[string]string{"user": "Viewer"}
	b := New("x", "X").SetTerminology(terms)
	terms["user"] = "mutated"

	assert.Equal(t, "Viewer", b.BuildUnsafe().Terminology["user"])
}

func TestExtendPack(t *testing.T) {
	base, err := New("gaming", "Gaming").
		Describe("Base gaming pack").
		AddSubCategory("gacha", "Gacha").
		AddSemanticType(pack.SemanticType{Type: "player_id", Patterns: []string{"player_id"}, Priority: 10}).
		AddKPI("dau", "DAU", "count_distinct($player_id)", "player_id").
		AddTerm("user", "Player").
		Build()
	require.NoError(t, err)

	extended := ExtendPack(base, Customizations{
		Description: "Studio-customized gaming pack",
		SubCategories: []pack.SubCategory{
			{ID: "gacha", Name: "Renamed Gacha"}, // collides, base wins
			{ID: "idle", Name: "Idle"},
		},
		Metrics: []pack.MetricDefinition{
			{ID: "dau", Name: "DAU override"}, // collides, base wins
			{ID: "whale_rate", Name: "Whale Rate"},
		},
		Terminology: map[string]string{"user": "Hero", "session": "Run"},
		Theme:       &pack.Theme{Primary: "#ff00ff"},
	})

	assert.Equal(t, "1.0.0-custom", extended.Version)
	assert.Equal(t, "Studio-customized gaming pack", extended.Description)

	require.Len(t, extended.SubCategories, 2)
	assert.Equal(t, "Gacha", extended.SubCategories[0].Name)
	assert.Equal(t, "idle", extended.SubCategories[1].ID)

	require.Len(t, extended.Metrics, 2)
	assert.Equal(t, "DAU", extended.Metrics[0].Name)
	assert.Equal(t, "whale_rate", extended.Metrics[1].ID)

	// Terminology is the one place customizations win.
	assert.Equal(t, "Hero", extended.Terminology["user"])
	assert.Equal(t, "Run", extended.Terminology["session"])

	assert.Equal(t, "#ff00ff", extended.Theme.Primary)

	// Base untouched.
	assert.Equal(t, "1.0.0", base.Version)
	assert.Equal(t, "Player", base.Terminology["user"])
	assert.Len(t, base.Metrics, 1)
}

func TestExtendPackVersionOverride(t *testing.T) {
	base := New("x", "X").BuildUnsafe()

	extended := ExtendPack(base, Customizations{Version: "7.0.0"})
	assert.Equal(t, "7.0.0", extended.Version)
}
