package calculation

import (
	"math"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// internalPrecision bounds the digits carried by the running balance and
// target between months. Reports round to cents.
const internalPrecision = 10

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalHundred = decimal.NewFromInt(100)
)

// MonthlyRate converts an annual rate into the equivalent monthly rate r
// such that (1+r)^12 = 1+annual.
func MonthlyRate(annual decimal.Decimal) decimal.Decimal {
	growth := annual.Add(decimalOne).InexactFloat64()
	return decimal.NewFromFloat(math.Pow(growth, 1.0/dateutil.MonthsPerYear) - 1)
}

// PercentOf returns profit / base * 100. The result is invalid when base is
// zero, where the percentage is undefined.
func PercentOf(profit, base decimal.Decimal) decimal.NullDecimal {
	if base.IsZero() {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: profit.Div(base).Mul(decimalHundred), Valid: true}
}

// simulate steps the portfolio month by month. Parameters must already be
// validated. onYear, when non-nil, is called at every year boundary.
func simulate(params domain.SimulationParameters, onYear func(year int, row domain.YearSummary)) *domain.SimulationResult {
	totalMonths := params.TotalMonths()
	growth := decimalOne.Add(MonthlyRate(params.AnnualReturn))
	inflation := decimalOne.Add(MonthlyRate(params.Inflation))

	result := &domain.SimulationResult{
		Parameters:          params,
		Balance:             make([]decimal.Decimal, 1, totalMonths+1),
		OwnContribution:     make([]decimal.Decimal, 1, totalMonths+1),
		FireTarget:          make([]decimal.Decimal, 1, totalMonths+1),
		AnnualProfit:        make([]decimal.Decimal, 0, params.Years),
		AnnualProfitPercent: make([]decimal.NullDecimal, 0, params.Years),
	}

	balance := decimal.Zero
	own := decimal.Zero
	target := params.FireTarget()
	result.Balance[0] = balance
	result.OwnContribution[0] = own
	result.FireTarget[0] = target

	for month := 1; month <= totalMonths; month++ {
		if params.ContributesIn(month) {
			balance = balance.Add(params.MonthlyContribution)
			own = own.Add(params.MonthlyContribution)
		}
		balance = balance.Mul(growth).Round(internalPrecision)

		result.Balance = append(result.Balance, balance)
		result.OwnContribution = append(result.OwnContribution, own)

		target = target.Mul(inflation).Round(internalPrecision)
		result.FireTarget = append(result.FireTarget, target)

		if result.FireMonth == nil && balance.GreaterThanOrEqual(target) {
			fireMonth := month
			result.FireMonth = &fireMonth
		}

		if dateutil.IsYearEnd(month) {
			profit := balance.Sub(own)
			pct := PercentOf(profit, own)
			result.AnnualProfit = append(result.AnnualProfit, profit)
			result.AnnualProfitPercent = append(result.AnnualProfitPercent, pct)

			if onYear != nil {
				year := month / dateutil.MonthsPerYear
				onYear(year, domain.YearSummary{
					Year:            year,
					OwnContribution: own,
					Balance:         balance,
					Profit:          profit,
					ProfitPercent:   pct,
				})
			}
		}
	}

	return result
}
