package domain

import (
	"fmt"
	"time"

	"github.com/rpgo/fire-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// SimulationResult holds the month-by-month series produced by a simulation.
// Monthly series are indexed by month 0..Years*12 with month 0 the empty
// starting state; annual series hold one entry per completed year.
type SimulationResult struct {
	Parameters SimulationParameters `json:"parameters"`

	Balance         []decimal.Decimal `json:"balance"`
	OwnContribution []decimal.Decimal `json:"own_contribution"`
	FireTarget      []decimal.Decimal `json:"fire_target"` // inflation-adjusted

	AnnualProfit        []decimal.Decimal     `json:"annual_profit"`
	AnnualProfitPercent []decimal.NullDecimal `json:"annual_profit_percent"` // invalid when own contribution is zero

	// FireMonth is the first month whose balance reached the inflation-adjusted target.
	FireMonth *int `json:"fire_month,omitempty"`
}

// YearSummary is one row of the per-year report table
type YearSummary struct {
	Year            int                 `json:"year"`
	OwnContribution decimal.Decimal     `json:"own_contribution"`
	Balance         decimal.Decimal     `json:"balance"`
	Profit          decimal.Decimal     `json:"profit"`
	ProfitPercent   decimal.NullDecimal `json:"profit_percent"`
}

// Months returns the number of simulated months (excluding month 0)
func (r *SimulationResult) Months() int {
	if len(r.Balance) == 0 {
		return 0
	}
	return len(r.Balance) - 1
}

// FinalBalance returns the portfolio value at the end of the horizon
func (r *SimulationResult) FinalBalance() decimal.Decimal {
	return last(r.Balance)
}

// TotalContribution returns the cumulative own contribution at the end of the horizon
func (r *SimulationResult) TotalContribution() decimal.Decimal {
	return last(r.OwnContribution)
}

// TotalProfit returns final balance minus total own contribution
func (r *SimulationResult) TotalProfit() decimal.Decimal {
	return r.FinalBalance().Sub(r.TotalContribution())
}

// FinalFireTarget returns the inflation-adjusted target in the last month
func (r *SimulationResult) FinalFireTarget() decimal.Decimal {
	return last(r.FireTarget)
}

// FireReached reports whether the target was crossed within the horizon
func (r *SimulationResult) FireReached() bool {
	return r.FireMonth != nil
}

// FireYearAndMonth translates the crossing month into a 1-based year and
// month-of-year. ok is false when the target was never reached.
func (r *SimulationResult) FireYearAndMonth() (year, month int, ok bool) {
	if r.FireMonth == nil {
		return 0, 0, false
	}
	year, month = dateutil.YearAndMonth(*r.FireMonth)
	return year, month, true
}

// FireDate returns the calendar month of the crossing when a start date is configured.
func (r *SimulationResult) FireDate() (time.Time, bool) {
	if r.FireMonth == nil || r.Parameters.StartDate == nil {
		return time.Time{}, false
	}
	return dateutil.MonthDate(*r.Parameters.StartDate, *r.FireMonth), true
}

// PercentReturn returns the profit percentage of a 1-based year. Years whose
// own contribution is zero have no defined return and yield ErrDivisionByZero.
func (r *SimulationResult) PercentReturn(year int) (decimal.Decimal, error) {
	if year < 1 || year > len(r.AnnualProfitPercent) {
		return decimal.Zero, fmt.Errorf("year %d out of range 1..%d", year, len(r.AnnualProfitPercent))
	}
	pct := r.AnnualProfitPercent[year-1]
	if !pct.Valid {
		return decimal.Zero, fmt.Errorf("percent return for year %d: own contribution is zero: %w", year, ErrDivisionByZero)
	}
	return pct.Decimal, nil
}

// YearSummaries returns one row per completed year
func (r *SimulationResult) YearSummaries() []YearSummary {
	rows := make([]YearSummary, 0, len(r.AnnualProfit))
	for i := range r.AnnualProfit {
		month := dateutil.TotalMonths(i + 1)
		row := YearSummary{
			Year:   i + 1,
			Profit: r.AnnualProfit[i],
		}
		if month < len(r.Balance) {
			row.Balance = r.Balance[month]
		}
		if month < len(r.OwnContribution) {
			row.OwnContribution = r.OwnContribution[month]
		}
		if i < len(r.AnnualProfitPercent) {
			row.ProfitPercent = r.AnnualProfitPercent[i]
		}
		rows = append(rows, row)
	}
	return rows
}

func last(series []decimal.Decimal) decimal.Decimal {
	if len(series) == 0 {
		return decimal.Zero
	}
	return series[len(series)-1]
}

// Report bundles a result with the presentation settings consumed by formatters
type Report struct {
	Result   *SimulationResult `json:"result"`
	Language string            `json:"language"`
	Currency string            `json:"currency"`
}
