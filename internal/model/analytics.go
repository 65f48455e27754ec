package model

import "github.com/shopspring/decimal"

// TimeFilter selects the reporting period for summaries and charts.
type TimeFilter string

const (
	FilterDaily   TimeFilter = "daily"
	FilterWeekly  TimeFilter = "weekly"
	FilterMonthly TimeFilter = "monthly"
	FilterYearly  TimeFilter = "yearly"
)

// Summary aggregates transactions over a single period.
type Summary struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	NetIncome        decimal.Decimal
	TransactionCount int
	Period           string
}

// CategorySummary is one row of a per-category breakdown.
type CategorySummary struct {
	Category   string
	Amount     decimal.Decimal
	Count      int
	Percentage decimal.Decimal
}

// ChartPoint is one bucket of a period-over-period series.
type ChartPoint struct {
	Name     string
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}
