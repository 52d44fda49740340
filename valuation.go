package sukuk

import (
	"github.com/etnz/sukuk/date"
	"github.com/shopspring/decimal"
)

// DurationMonths returns the calendar-month difference between start and end,
// floored at 1. Days of the month are ignored.
func DurationMonths(start, end date.Date) int {
	months := date.MonthsBetween(start, end)
	if months < 1 {
		return 1
	}
	return months
}

// PortfolioValue is the deployed capital (face value of active investments)
// plus the liquid cash.
func PortfolioValue(investments []Investment, totalCash Money) Money {
	return ActiveValue(investments).Add(totalCash)
}

// ActiveValue sums the face value of investments whose stored status is active.
func ActiveValue(investments []Investment) Money {
	return sumFaceValue(investments, func(inv Investment) bool { return inv.Status == StatusActive })
}

// TotalInvested sums the face value of all investments.
func TotalInvested(investments []Investment) Money {
	return sumFaceValue(investments, func(Investment) bool { return true })
}

// TotalExpectedProfit sums the expected profit announced by the investments.
func TotalExpectedProfit(investments []Investment) Money {
	var total Money
	for _, inv := range investments {
		total = total.Add(inv.ExpectedProfit())
	}
	return total
}

func sumFaceValue(investments []Investment, keep func(Investment) bool) Money {
	var total Money
	for _, inv := range investments {
		if keep(inv) {
			total = total.Add(inv.FaceValue)
		}
	}
	return total
}

// CalculateExpectedProfit estimates the profit of 'amount' invested at 'irr'
// for 'months' with simple interest. Lighter dashboards use it when no expected
// profit is recorded.
func CalculateExpectedProfit(amount Money, irr Percent, months int) Money {
	rate := decimal.NewFromFloat(float64(irr)).Div(hundred)
	years := decimal.NewFromInt(int64(months)).Div(decimal.NewFromInt(12))
	return amount.Mul(rate).Mul(years)
}

// AverageDuration is the mean duration in months of investments with both dates.
func AverageDuration(investments []Investment) float64 {
	var sum, n int
	for _, inv := range investments {
		months, ok := inv.Duration()
		if !ok {
			continue
		}
		sum += months
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// AverageInvestment is the mean face value.
func AverageInvestment(investments []Investment) Money {
	if len(investments) == 0 {
		return Money{}
	}
	total := TotalInvested(investments)
	return Money{value: total.value.Div(decimal.NewFromInt(int64(len(investments)))), cur: total.cur}
}
