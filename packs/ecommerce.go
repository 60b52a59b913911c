package packs

import "github.com/efeecllk/game-insights-sub001/pack"

// Ecommerce returns the built-in e-commerce industry pack
func Ecommerce() *pack.IndustryPack {
	return &pack.IndustryPack{
		ID:          pack.IndustryEcommerce,
		Name:        "E-commerce",
		Description: "Online retail analytics: orders, carts, and purchase conversion",
		Version:     "1.1.0",
		SubCategories: []pack.SubCategory{
			{ID: "marketplace", Name: "Marketplace", Description: "Multi-seller platforms"},
			{ID: "d2c", Name: "Direct to Consumer", Description: "Single-brand storefronts"},
			{ID: "subscription_box", Name: "Subscription Box", Description: "Recurring physical deliveries"},
		},
		SemanticTypes: []pack.SemanticType{
			{Type: "order_id", Patterns: []string{"order_id", "order_number"}, Priority: 10, DataType: "string"},
			{Type: "sku", Patterns: []string{"sku", "product_id", "item_id"}, Priority: 8, DataType: "string"},
			{Type: "cart", Patterns: []string{"cart", "basket", "cart_id"}, Priority: 8, DataType: "string"},
			{Type: "checkout", Patterns: []string{"checkout", "checkout_started"}, Priority: 8, DataType: "event"},
			{Type: "price", Patterns: []string{"price", "unit_price", "amount"}, Priority: 6, DataType: "number"},
			{Type: "quantity", Patterns: []string{"quantity", "qty"}, Priority: 5, DataType: "number"},
			{Type: "customer_id", Patterns: []string{"customer_id", "buyer_id"}, Priority: 7, DataType: "string"},
			{Type: "shipping_cost", Patterns: []string{"shipping", "shipping_cost"}, Priority: 5, DataType: "number"},
			{Type: "refund", Patterns: []string{"refund", "return_flag", "refunded_at"}, Priority: 6, DataType: "number"},
			{Type: "seller_id", Patterns: []string{"seller_id", "merchant_id", "vendor_id"}, Priority: 6, DataType: "string"},
		},
		DetectionIndicators: []pack.DetectionIndicator{
			{Types: []string{"order_id", "sku"}, Weight: 5, Reason: "Order and product catalog fields present"},
			{Types: []string{"cart", "checkout"}, Weight: 4, MinCount: 1, Reason: "Shopping funnel events"},
			{Types: []string{"price", "quantity"}, Weight: 2},
			{Types: []string{"refund", "shipping_cost"}, Weight: 2, MinCount: 1},
		},
		Metrics: []pack.MetricDefinition{
			{
				ID:   "gmv",
				Name: "Gross Merchandise Value",
				Formula: pack.MetricFormula{
					Expression:    "sum($price * $quantity)",
					RequiredTypes: []string{"price", "quantity"},
				},
				Format:   pack.FormatCurrency,
				Category: pack.CategoryKPI,
			},
			{
				ID:   "aov",
				Name: "Average Order Value",
				Formula: pack.MetricFormula{
					Expression:    "sum($price * $quantity) / count_distinct($order_id)",
					RequiredTypes: []string{"price", "quantity", "order_id"},
				},
				Format:   pack.FormatCurrency,
				Category: pack.CategoryMonetization,
			},
			{
				ID:   "cart_abandonment",
				Name: "Cart Abandonment",
				Formula: pack.MetricFormula{
					Expression:    "1 - count_distinct($order_id) / count_distinct($cart)",
					RequiredTypes: []string{"cart", "order_id"},
				},
				Format:     pack.FormatPercentage,
				Category:   pack.CategoryFunnel,
				Thresholds: &pack.Thresholds{Good: 0.6, Warning: 0.75, Bad: 0.85},
			},
			{
				ID:   "refund_rate",
				Name: "Refund Rate",
				Formula: pack.MetricFormula{
					Expression:    "count($refund) / count_distinct($order_id)",
					RequiredTypes: []string{"refund", "order_id"},
				},
				Format:   pack.FormatPercentage,
				Category: pack.CategoryKPI,
			},
			{
				ID:   "repeat_purchase_rate",
				Name: "Repeat Purchase Rate",
				Formula: pack.MetricFormula{
					Expression:    "repeat_buyers($customer_id, $order_id) / count_distinct($customer_id)",
					RequiredTypes: []string{"customer_id", "order_id"},
				},
				Format:        pack.FormatPercentage,
				Category:      pack.CategoryRetention,
				SubCategories: []string{"d2c", "subscription_box"},
			},
			{
				ID:   "seller_concentration",
				Name: "Seller Concentration",
				Formula: pack.MetricFormula{
					Expression:    "top_share($seller_id, $price)",
					RequiredTypes: []string{"seller_id", "price"},
				},
				Format:        pack.FormatPercentage,
				Category:      pack.CategoryCustom,
				SubCategories: []string{"marketplace"},
			},
		},
		Funnels: []pack.FunnelTemplate{
			{
				ID:   "purchase",
				Name: "Purchase Funnel",
				Steps: []pack.FunnelStep{
					{ID: "view", Name: "Product View", SemanticType: "sku"},
					{ID: "cart", Name: "Add to Cart", SemanticType: "cart"},
					{ID: "checkout", Name: "Checkout", SemanticType: "checkout"},
					{ID: "order", Name: "Order Placed", SemanticType: "order_id"},
				},
			},
		},
		ChartConfigs: []pack.ChartConfig{
			{ID: "gmv_trend", Type: "line", Title: "GMV Trend", Metrics: []string{"gmv"}, Priority: 1},
			{ID: "funnel", Type: "funnel", Title: "Purchase Funnel", Priority: 2},
		},
		InsightTemplates: []pack.InsightTemplate{
			{
				ID:        "abandonment_high",
				Title:     "High Cart Abandonment",
				Template:  "Cart abandonment is {{cart_abandonment}}; consider checkout simplification.",
				Severity:  "warning",
				Condition: "$cart_abandonment > thresholds.warning",
			},
		},
		Terminology: map[string]string{
			"user":    "Customer",
			"revenue": "GMV",
			"session": "Shopping Session",
		},
		Theme: pack.Theme{
			Primary:     "#ea580c",
			Secondary:   "#0891b2",
			Accent:      "#65a30d",
			Background:  "#fffbeb",
			ChartColors: []string{"#ea580c", "#0891b2", "#65a30d", "#db2777", "#4f46e5"},
		},
	}
}
