// Package analytics computes dashboard aggregates over the recorded
// transactions: period summaries, category breakdowns, and chart series.
// All functions take an explicit reference time so results are
// reproducible.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Summarize totals income and expenses over the period containing now.
func Summarize(txns []model.Transaction, filter model.TimeFilter, now time.Time) model.Summary {
	inPeriod := filterByPeriod(txns, filter, now)

	income := decimal.Zero
	expenses := decimal.Zero
	for _, t := range inPeriod {
		switch t.Type {
		case model.TypeIncome:
			income = income.Add(t.Amount)
		case model.TypeExpense:
			expenses = expenses.Add(t.Amount)
		}
	}

	return model.Summary{
		TotalIncome:      income,
		TotalExpenses:    expenses,
		NetIncome:        income.Sub(expenses),
		TransactionCount: len(inPeriod),
		Period:           periodLabel(filter, now),
	}
}

// ByCategory breaks the period's transactions down per category, sorted by
// amount descending. Percentage is of the period's total across all
// categories.
func ByCategory(txns []model.Transaction, filter model.TimeFilter, now time.Time) []model.CategorySummary {
	inPeriod := filterByPeriod(txns, filter, now)

	total := decimal.Zero
	for _, t := range inPeriod {
		total = total.Add(t.Amount)
	}

	type bucket struct {
		amount decimal.Decimal
		count  int
	}
	byCat := make(map[string]*bucket)
	for _, t := range inPeriod {
		b, ok := byCat[t.Category]
		if !ok {
			b = &bucket{amount: decimal.Zero}
			byCat[t.Category] = b
		}
		b.amount = b.amount.Add(t.Amount)
		b.count++
	}

	result := make([]model.CategorySummary, 0, len(byCat))
	for cat, b := range byCat {
		pct := decimal.Zero
		if total.IsPositive() {
			pct = b.amount.Div(total).Mul(hundred)
		}
		result = append(result, model.CategorySummary{
			Category:   cat,
			Amount:     b.amount,
			Count:      b.count,
			Percentage: pct,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Amount.Equal(result[j].Amount) {
			return result[i].Amount.GreaterThan(result[j].Amount)
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// ChartSeries buckets income and expenses over the last count periods
// ending at now, oldest first.
func ChartSeries(txns []model.Transaction, filter model.TimeFilter, count int, now time.Time) []model.ChartPoint {
	points := make([]model.ChartPoint, 0, count)

	for i := count - 1; i >= 0; i-- {
		start := shiftPeriod(filter, now, -i)
		end := periodEnd(filter, start)

		income := decimal.Zero
		expenses := decimal.Zero
		for _, t := range txns {
			d := model.DateOnly(t.Date)
			if d.Before(start) || d.After(end) {
				continue
			}
			switch t.Type {
			case model.TypeIncome:
				income = income.Add(t.Amount)
			case model.TypeExpense:
				expenses = expenses.Add(t.Amount)
			}
		}

		points = append(points, model.ChartPoint{
			Name:     start.Format(chartNameFormat(filter)),
			Income:   income,
			Expenses: expenses,
			Net:      income.Sub(expenses),
		})
	}

	return points
}

func filterByPeriod(txns []model.Transaction, filter model.TimeFilter, now time.Time) []model.Transaction {
	start := periodStart(filter, now)
	end := periodEnd(filter, start)

	var result []model.Transaction
	for _, t := range txns {
		d := model.DateOnly(t.Date)
		if !d.Before(start) && !d.After(end) {
			result = append(result, t)
		}
	}
	return result
}

// periodStart returns the first calendar day of the period containing t.
// Weeks start on Sunday.
func periodStart(filter model.TimeFilter, t time.Time) time.Time {
	d := model.DateOnly(t)
	switch filter {
	case model.FilterWeekly:
		return d.AddDate(0, 0, -int(d.Weekday()))
	case model.FilterMonthly:
		return model.Date(d.Year(), d.Month(), 1)
	case model.FilterYearly:
		return model.Date(d.Year(), time.January, 1)
	default:
		return d
	}
}

// periodEnd returns the last calendar day of the period starting at start.
func periodEnd(filter model.TimeFilter, start time.Time) time.Time {
	switch filter {
	case model.FilterWeekly:
		return start.AddDate(0, 0, 6)
	case model.FilterMonthly:
		return start.AddDate(0, 1, -1)
	case model.FilterYearly:
		return start.AddDate(1, 0, -1)
	default:
		return start
	}
}

// shiftPeriod returns the start of the period n periods away from the one
// containing t. Shifts are applied to the period start so month and year
// arithmetic cannot overflow into a neighboring period.
func shiftPeriod(filter model.TimeFilter, t time.Time, n int) time.Time {
	start := periodStart(filter, t)
	switch filter {
	case model.FilterWeekly:
		return start.AddDate(0, 0, 7*n)
	case model.FilterMonthly:
		return start.AddDate(0, n, 0)
	case model.FilterYearly:
		return start.AddDate(n, 0, 0)
	default:
		return start.AddDate(0, 0, n)
	}
}

func chartNameFormat(filter model.TimeFilter) string {
	switch filter {
	case model.FilterMonthly:
		return "Jan 2006"
	case model.FilterYearly:
		return "2006"
	default:
		return "Jan 02"
	}
}

func periodLabel(filter model.TimeFilter, now time.Time) string {
	switch filter {
	case model.FilterDaily:
		return now.Format("Monday, January 2, 2006")
	case model.FilterWeekly:
		return "Week of " + periodStart(model.FilterWeekly, now).Format("January 2, 2006")
	case model.FilterMonthly:
		return now.Format("January 2006")
	case model.FilterYearly:
		return now.Format("2006")
	}
	return "Current Period"
}
