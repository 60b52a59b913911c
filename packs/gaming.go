package packs

import "github.com/efeecllk/game-insights-sub001/pack"

// Gaming returns the built-in gaming industry pack
func Gaming() *pack.IndustryPack {
	return &pack.IndustryPack{
		ID:          pack.IndustryGaming,
		Name:        "Gaming",
		Description: "Mobile and online game analytics: progression, sessions, and in-app monetization",
		Version:     "1.2.0",
		SubCategories: []pack.SubCategory{
			{ID: "puzzle", Name: "Puzzle", Description: "Level-based puzzle games"},
			{ID: "idle", Name: "Idle", Description: "Incremental and idle games"},
			{ID: "gacha", Name: "Gacha", Description: "Collection games with randomized rewards"},
		},
		SemanticTypes: []pack.SemanticType{
			{Type: "user_id", Patterns: []string{"user_id", "player_id", "uid"}, Priority: 10, DataType: "string"},
			{Type: "level", Patterns: []string{"level", "stage", "world"}, Priority: 8, DataType: "number"},
			{Type: "session_length", Patterns: []string{"session_length", "session_duration", "playtime"}, Priority: 7, DataType: "number"},
			{Type: "iap_revenue", Patterns: []string{"iap", "purchase_amount", "iap_revenue"}, Priority: 9, DataType: "number"},
			{Type: "currency_balance", Patterns: []string{"coins", "gems", "gold_balance"}, Priority: 6, DataType: "number"},
			{Type: "retention_day", Patterns: []string{"retention", "days_since_install"}, Priority: 7, DataType: "number"},
			{Type: "install_date", Patterns: []string{"install_date", "installed_at"}, Priority: 6, DataType: "date"},
			{Type: "ad_revenue", Patterns: []string{"ad_revenue", "ad_impressions"}, Priority: 6, DataType: "number"},
			{Type: "gacha_pull", Patterns: []string{"pull", "summon", "roll_count"}, Priority: 5, DataType: "number"},
		},
		DetectionIndicators: []pack.DetectionIndicator{
			{Types: []string{"user_id", "level"}, Weight: 5, Reason: "Player progression fields present"},
			{Types: []string{"iap_revenue"}, Weight: 4, Reason: "In-app purchase revenue column"},
			{Types: []string{"session_length", "retention_day"}, Weight: 3, MinCount: 1},
			{Types: []string{"currency_balance", "gacha_pull"}, Weight: 2, MinCount: 1},
		},
		Metrics: []pack.MetricDefinition{
			{
				ID:   "dau",
				Name: "Daily Active Users",
				Formula: pack.MetricFormula{
					Expression:    "count_distinct($user_id)",
					RequiredTypes: []string{"user_id"},
				},
				Format:     pack.FormatNumber,
				Category:   pack.CategoryKPI,
				Thresholds: &pack.Thresholds{Good: 10000, Warning: 1000, Bad: 100},
			},
			{
				ID:   "arpdau",
				Name: "ARPDAU",
				Formula: pack.MetricFormula{
					Expression:    "sum($iap_revenue) / count_distinct($user_id)",
					RequiredTypes: []string{"iap_revenue", "user_id"},
					Fallback:      "sum($ad_revenue) / count_distinct($user_id)",
				},
				Format:   pack.FormatCurrency,
				Category: pack.CategoryMonetization,
			},
			{
				ID:   "avg_session_length",
				Name: "Average Session Length",
				Formula: pack.MetricFormula{
					Expression:    "avg($session_length)",
					RequiredTypes: []string{"session_length"},
				},
				Format:   pack.FormatDuration,
				Category: pack.CategoryEngagement,
			},
			{
				ID:   "d7_retention",
				Name: "Day 7 Retention",
				Formula: pack.MetricFormula{
					Expression:    "retained($user_id, $retention_day, 7)",
					RequiredTypes: []string{"user_id", "retention_day"},
				},
				Format:     pack.FormatPercentage,
				Category:   pack.CategoryRetention,
				Thresholds: &pack.Thresholds{Good: 0.2, Warning: 0.1, Bad: 0.05},
			},
			{
				ID:   "level_completion_rate",
				Name: "Level Completion Rate",
				Formula: pack.MetricFormula{
					Expression:    "completed($level) / attempted($level)",
					RequiredTypes: []string{"user_id", "level"},
				},
				Format:        pack.FormatPercentage,
				Category:      pack.CategoryEngagement,
				SubCategories: []string{"puzzle"},
			},
			{
				ID:   "pull_conversion",
				Name: "Pull Conversion",
				Formula: pack.MetricFormula{
					Expression:    "payers($user_id, $iap_revenue) / count_distinct($user_id)",
					RequiredTypes: []string{"user_id", "iap_revenue", "gacha_pull"},
				},
				Format:        pack.FormatPercentage,
				Category:      pack.CategoryMonetization,
				SubCategories: []string{"gacha"},
			},
		},
		Funnels: []pack.FunnelTemplate{
			{
				ID:   "onboarding",
				Name: "Onboarding",
				Steps: []pack.FunnelStep{
					{ID: "install", Name: "Install", SemanticType: "install_date"},
					{ID: "first_session", Name: "First Session", SemanticType: "session_length"},
					{ID: "level_10", Name: "Reach Level 10", SemanticType: "level", Condition: "$level >= 10"},
				},
			},
			{
				ID:            "first_pull",
				Name:          "First Pull",
				SubCategories: []string{"gacha"},
				Steps: []pack.FunnelStep{
					{ID: "earn_currency", Name: "Earn Currency", SemanticType: "currency_balance"},
					{ID: "pull", Name: "First Pull", SemanticType: "gacha_pull"},
					{ID: "purchase", Name: "First Purchase", SemanticType: "iap_revenue"},
				},
			},
		},
		ChartConfigs: []pack.ChartConfig{
			{ID: "dau_trend", Type: "line", Title: "DAU Trend", Metrics: []string{"dau"}, Priority: 1},
			{ID: "revenue_split", Type: "pie", Title: "Revenue Split", Metrics: []string{"arpdau"}, Priority: 2},
			{ID: "retention_curve", Type: "line", Title: "Retention Curve", Metrics: []string{"d7_retention"}, Priority: 3},
		},
		InsightTemplates: []pack.InsightTemplate{
			{
				ID:        "retention_drop",
				Title:     "Retention Drop",
				Template:  "Day 7 retention fell to {{d7_retention}}, below your {{threshold}} target.",
				Severity:  "warning",
				Condition: "$d7_retention < thresholds.warning",
			},
			{
				ID:       "session_growth",
				Title:    "Session Growth",
				Template: "Average session length grew to {{avg_session_length}} this period.",
				Severity: "positive",
			},
		},
		Terminology: map[string]string{
			"user":    "Player",
			"revenue": "IAP Revenue",
			"session": "Play Session",
			"cohort":  "Install Cohort",
		},
		Theme: pack.Theme{
			Primary:     "#7c3aed",
			Secondary:   "#2dd4bf",
			Accent:      "#f59e0b",
			Background:  "#0f172a",
			ChartColors: []string{"#7c3aed", "#2dd4bf", "#f59e0b", "#f43f5e", "#38bdf8"},
		},
	}
}
