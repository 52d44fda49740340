package sukuk

import (
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// CalculateAPR annualizes the return of 'profit' earned on 'amount' over
// 'months': profit/amount * 12/months * 100.
// It is 0 when amount or months is 0.
func CalculateAPR(amount, profit Money, months int) Percent {
	if amount.IsZero() || months == 0 {
		return 0
	}
	roi := profit.Ratio(amount)
	apr := roi.Mul(decimal.NewFromInt(12)).Div(decimal.NewFromInt(int64(months))).Mul(hundred)
	return Percent(apr.InexactFloat64())
}

// ROI returns profit/amount as a percentage, 0 when amount is 0.
func ROI(amount, profit Money) Percent {
	return percentOf(profit.value, amount.value)
}

// ActiveAPR is the face-value weighted APR of open investments
// (active, late or defaulted).
func ActiveAPR(investments []Investment) Percent {
	return weightedAPR(investments, func(inv Investment) bool { return inv.Status.IsOpen() })
}

// WeightedAPR is the face-value weighted APR of all investments, whatever
// their status.
func WeightedAPR(investments []Investment) Percent {
	return weightedAPR(investments, func(Investment) bool { return true })
}

// weightedAPR averages the APR of kept investments weighted by face value.
// Investments missing a date contribute neither weight nor value.
func weightedAPR(investments []Investment, keep func(Investment) bool) Percent {
	var aprs, weights []float64
	var total decimal.Decimal
	for _, inv := range investments {
		if !keep(inv) {
			continue
		}
		apr, ok := inv.APR()
		if !ok {
			continue
		}
		aprs = append(aprs, float64(apr))
		weights = append(weights, inv.FaceValue.Float())
		total = total.Add(inv.FaceValue.value)
	}
	if !total.IsPositive() {
		return 0
	}
	return Percent(stat.Mean(aprs, weights))
}

// PortfolioROI is the profit actually received over the face value of all
// investments, as a percentage.
func PortfolioROI(investments []Investment, cashflows []Cashflow) Percent {
	return ROI(TotalInvested(investments), ReceivedProfit(cashflows))
}
