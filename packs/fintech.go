package packs

import "github.com/efeecllk/game-insights-sub001/pack"

// Fintech returns the built-in fintech industry pack
func Fintech() *pack.IndustryPack {
	return &pack.IndustryPack{
		ID:          pack.IndustryFintech,
		Name:        "Fintech",
		Description: "Financial product analytics: transactions, accounts, and compliance funnels",
		Version:     "1.0.2",
		SubCategories: []pack.SubCategory{
			{ID: "banking", Name: "Banking", Description: "Deposit and card products"},
			{ID: "lending", Name: "Lending", Description: "Loan origination and servicing"},
			{ID: "trading", Name: "Trading", Description: "Brokerage and investment products"},
		},
		SemanticTypes: []pack.SemanticType{
			{Type: "transaction_id", Patterns: []string{"transaction_id", "txn_id", "transaction"}, Priority: 10, DataType: "string"},
			{Type: "account_id", Patterns: []string{"account_id", "account_number"}, Priority: 8, DataType: "string"},
			{Type: "balance", Patterns: []string{"balance", "account_balance"}, Priority: 8, DataType: "number"},
			{Type: "transfer_amount", Patterns: []string{"transfer", "transfer_amount", "wire"}, Priority: 7, DataType: "number"},
			{Type: "kyc_status", Patterns: []string{"kyc", "kyc_status", "verification_status"}, Priority: 9, DataType: "string"},
			{Type: "fraud_flag", Patterns: []string{"fraud", "fraud_score", "suspicious"}, Priority: 8, DataType: "number"},
			{Type: "interest_rate", Patterns: []string{"interest", "apr", "interest_rate"}, Priority: 6, DataType: "number"},
			{Type: "loan_amount", Patterns: []string{"loan", "loan_amount", "principal"}, Priority: 7, DataType: "number"},
			{Type: "trade_volume", Patterns: []string{"trade", "trade_volume", "shares"}, Priority: 6, DataType: "number"},
		},
		DetectionIndicators: []pack.DetectionIndicator{
			{Types: []string{"transaction_id", "account_id"}, Weight: 5, Reason: "Ledger fields present"},
			{Types: []string{"kyc_status"}, Weight: 4, Reason: "Compliance verification column"},
			{Types: []string{"balance", "transfer_amount"}, Weight: 3, MinCount: 1},
			{Types: []string{"fraud_flag", "interest_rate"}, Weight: 2, MinCount: 1},
		},
		Metrics: []pack.MetricDefinition{
			{
				ID:   "transaction_volume",
				Name: "Transaction Volume",
				Formula: pack.MetricFormula{
					Expression:    "sum($transfer_amount)",
					RequiredTypes: []string{"transfer_amount"},
				},
				Format:   pack.FormatCurrency,
				Category: pack.CategoryKPI,
			},
			{
				ID:   "active_accounts",
				Name: "Active Accounts",
				Formula: pack.MetricFormula{
					Expression:    "count_distinct($account_id)",
					RequiredTypes: []string{"account_id"},
				},
				Format:   pack.FormatNumber,
				Category: pack.CategoryKPI,
			},
			{
				ID:   "fraud_rate",
				Name: "Fraud Rate",
				Formula: pack.MetricFormula{
					Expression:    "count($fraud_flag) / count_distinct($transaction_id)",
					RequiredTypes: []string{"fraud_flag", "transaction_id"},
				},
				Format:     pack.FormatPercentage,
				Category:   pack.CategoryKPI,
				Thresholds: &pack.Thresholds{Good: 0.001, Warning: 0.005, Bad: 0.01},
			},
			{
				ID:   "kyc_completion",
				Name: "KYC Completion",
				Formula: pack.MetricFormula{
					Expression:    "verified($kyc_status) / count_distinct($account_id)",
					RequiredTypes: []string{"kyc_status", "account_id"},
				},
				Format:   pack.FormatPercentage,
				Category: pack.CategoryFunnel,
			},
			{
				ID:   "avg_loan_size",
				Name: "Average Loan Size",
				Formula: pack.MetricFormula{
					Expression:    "avg($loan_amount)",
					RequiredTypes: []string{"loan_amount"},
				},
				Format:        pack.FormatCurrency,
				Category:      pack.CategoryMonetization,
				SubCategories: []string{"lending"},
			},
			{
				ID:   "trading_volume",
				Name: "Trading Volume",
				Formula: pack.MetricFormula{
					Expression:    "sum($trade_volume)",
					RequiredTypes: []string{"trade_volume"},
				},
				Format:        pack.FormatNumber,
				Category:      pack.CategoryKPI,
				SubCategories: []string{"trading"},
			},
		},
		Funnels: []pack.FunnelTemplate{
			{
				ID:   "account_opening",
				Name: "Account Opening",
				Steps: []pack.FunnelStep{
					{ID: "application", Name: "Application", SemanticType: "account_id"},
					{ID: "kyc", Name: "KYC Verified", SemanticType: "kyc_status", Condition: "$kyc_status == 'verified'"},
					{ID: "funded", Name: "Account Funded", SemanticType: "balance", Condition: "$balance > 0"},
				},
			},
			{
				ID:            "loan_origination",
				Name:          "Loan Origination",
				SubCategories: []string{"lending"},
				Steps: []pack.FunnelStep{
					{ID: "application", Name: "Application", SemanticType: "loan_amount"},
					{ID: "approved", Name: "Approved", SemanticType: "interest_rate"},
					{ID: "disbursed", Name: "Disbursed", SemanticType: "transfer_amount"},
				},
			},
		},
		ChartConfigs: []pack.ChartConfig{
			{ID: "volume_trend", Type: "line", Title: "Transaction Volume", Metrics: []string{"transaction_volume"}, Priority: 1},
			{ID: "fraud_trend", Type: "line", Title: "Fraud Rate", Metrics: []string{"fraud_rate"}, Priority: 2},
		},
		InsightTemplates: []pack.InsightTemplate{
			{
				ID:        "fraud_spike",
				Title:     "Fraud Spike",
				Template:  "Fraud rate reached {{fraud_rate}}, above the {{threshold}} warning level.",
				Severity:  "critical",
				Condition: "$fraud_rate > thresholds.warning",
			},
		},
		Terminology: map[string]string{
			"user":    "Account Holder",
			"revenue": "Transaction Volume",
			"cohort":  "Opening Cohort",
		},
		Theme: pack.Theme{
			Primary:     "#059669",
			Secondary:   "#1d4ed8",
			Accent:      "#d97706",
			Background:  "#f0fdf4",
			ChartColors: []string{"#059669", "#1d4ed8", "#d97706", "#dc2626", "#7c3aed"},
		},
	}
}
