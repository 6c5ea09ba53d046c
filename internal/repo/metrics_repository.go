package repo

// Metrics are the figures shown on the dashboard.
type Metrics struct {
	TotalProducts int     `json:"total_products"`
	LowStockCount int     `json:"low_stock_count"`
	StockValue    float64 `json:"stock_value"`
	NewestItem    string  `json:"newest_item"`
	Threshold     int     `json:"low_stock_threshold"`
}

type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
}
