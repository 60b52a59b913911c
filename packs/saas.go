package packs

import "github.com/efeecllk/game-insights-sub001/pack"

// SaaS returns the built-in SaaS industry pack
func SaaS() *pack.IndustryPack {
	return &pack.IndustryPack{
		ID:          pack.IndustrySaaS,
		Name:        "SaaS",
		Description: "Subscription software analytics: recurring revenue, churn, and trial conversion",
		Version:     "1.1.0",
		SubCategories: []pack.SubCategory{
			{ID: "b2b", Name: "B2B", Description: "Seat-based business subscriptions"},
			{ID: "b2c", Name: "B2C", Description: "Consumer subscriptions"},
			{ID: "plg", Name: "Product-led", Description: "Self-serve freemium funnels"},
		},
		SemanticTypes: []pack.SemanticType{
			{Type: "mrr", Patterns: []string{"mrr", "monthly_recurring_revenue"}, Priority: 10, DataType: "number"},
			{Type: "arr", Patterns: []string{"arr", "annual_recurring_revenue"}, Priority: 9, DataType: "number"},
			{Type: "churn_rate", Patterns: []string{"churn", "churn_rate", "cancellations"}, Priority: 9, DataType: "number"},
			{Type: "plan", Patterns: []string{"plan", "tier", "subscription_plan"}, Priority: 6, DataType: "string"},
			{Type: "seats", Patterns: []string{"seats", "licenses", "seat_count"}, Priority: 6, DataType: "number"},
			{Type: "trial_start", Patterns: []string{"trial", "trial_start", "trial_started_at"}, Priority: 7, DataType: "date"},
			{Type: "signup_date", Patterns: []string{"signup", "signed_up_at", "created_at"}, Priority: 5, DataType: "date"},
			{Type: "account_id", Patterns: []string{"account_id", "customer_id", "org_id"}, Priority: 7, DataType: "string"},
			{Type: "feature_usage", Patterns: []string{"feature_usage", "events_per_user", "actions"}, Priority: 5, DataType: "number"},
			{Type: "nps", Patterns: []string{"nps", "nps_score"}, Priority: 4, DataType: "number"},
		},
		DetectionIndicators: []pack.DetectionIndicator{
			{Types: []string{"mrr"}, Weight: 5, Reason: "Monthly recurring revenue column"},
			{Types: []string{"churn_rate", "plan"}, Weight: 3, MinCount: 1},
			{Types: []string{"trial_start", "seats"}, Weight: 3, MinCount: 1},
			{Types: []string{"arr", "account_id"}, Weight: 2, MinCount: 2, Reason: "Account-level recurring revenue"},
		},
		Metrics: []pack.MetricDefinition{
			{
				ID:   "mrr",
				Name: "Monthly Recurring Revenue",
				Formula: pack.MetricFormula{
					Expression:    "sum($mrr)",
					RequiredTypes: []string{"mrr"},
				},
				Format:   pack.FormatCurrency,
				Category: pack.CategoryKPI,
			},
			{
				ID:   "churn_rate",
				Name: "Churn Rate",
				Formula: pack.MetricFormula{
					Expression:    "avg($churn_rate)",
					RequiredTypes: []string{"churn_rate"},
				},
				Format:     pack.FormatPercentage,
				Category:   pack.CategoryRetention,
				Thresholds: &pack.Thresholds{Good: 0.02, Warning: 0.05, Bad: 0.1},
			},
			{
				ID:   "arpa",
				Name: "Average Revenue per Account",
				Formula: pack.MetricFormula{
					Expression:    "sum($mrr) / count_distinct($account_id)",
					RequiredTypes: []string{"mrr", "account_id"},
				},
				Format:   pack.FormatCurrency,
				Category: pack.CategoryMonetization,
			},
			{
				ID:   "trial_conversion",
				Name: "Trial Conversion",
				Formula: pack.MetricFormula{
					Expression:    "converted($trial_start, $plan) / count($trial_start)",
					RequiredTypes: []string{"trial_start", "plan"},
				},
				Format:   pack.FormatPercentage,
				Category: pack.CategoryFunnel,
			},
			{
				ID:   "seat_expansion",
				Name: "Seat Expansion",
				Formula: pack.MetricFormula{
					Expression:    "delta(sum($seats))",
					RequiredTypes: []string{"seats", "account_id"},
				},
				Format:        pack.FormatNumber,
				Category:      pack.CategoryMonetization,
				SubCategories: []string{"b2b"},
			},
			{
				ID:   "activation_rate",
				Name: "Activation Rate",
				Formula: pack.MetricFormula{
					Expression:    "activated($feature_usage) / count_distinct($account_id)",
					RequiredTypes: []string{"feature_usage", "account_id"},
				},
				Format:        pack.FormatPercentage,
				Category:      pack.CategoryEngagement,
				SubCategories: []string{"plg"},
			},
		},
		Funnels: []pack.FunnelTemplate{
			{
				ID:   "trial_to_paid",
				Name: "Trial to Paid",
				Steps: []pack.FunnelStep{
					{ID: "signup", Name: "Sign Up", SemanticType: "signup_date"},
					{ID: "trial", Name: "Start Trial", SemanticType: "trial_start"},
					{ID: "paid", Name: "Convert to Paid", SemanticType: "plan", Condition: "$plan != 'free'"},
				},
			},
			{
				ID:            "self_serve_activation",
				Name:          "Self-serve Activation",
				SubCategories: []string{"plg"},
				Steps: []pack.FunnelStep{
					{ID: "signup", Name: "Sign Up", SemanticType: "signup_date"},
					{ID: "first_use", Name: "First Feature Use", SemanticType: "feature_usage"},
					{ID: "habit", Name: "Weekly Habit", SemanticType: "feature_usage", Condition: "$feature_usage >= 3"},
				},
			},
		},
		ChartConfigs: []pack.ChartConfig{
			{ID: "mrr_trend", Type: "line", Title: "MRR Trend", Metrics: []string{"mrr"}, Priority: 1},
			{ID: "churn_trend", Type: "line", Title: "Churn", Metrics: []string{"churn_rate"}, Priority: 2},
		},
		InsightTemplates: []pack.InsightTemplate{
			{
				ID:        "churn_spike",
				Title:     "Churn Spike",
				Template:  "Churn reached {{churn_rate}}, above the {{threshold}} warning level.",
				Severity:  "critical",
				Condition: "$churn_rate > thresholds.warning",
			},
		},
		Terminology: map[string]string{
			"user":    "Account",
			"revenue": "MRR",
			"cohort":  "Signup Cohort",
		},
		Theme: pack.Theme{
			Primary:     "#2563eb",
			Secondary:   "#14b8a6",
			Accent:      "#eab308",
			Background:  "#f8fafc",
			ChartColors: []string{"#2563eb", "#14b8a6", "#eab308", "#ef4444", "#8b5cf6"},
		},
	}
}
