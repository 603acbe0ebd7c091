package domain

import (
	"fmt"
	"time"

	"github.com/rpgo/fire-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// DefaultInflation is the annual inflation assumed when none is given.
var DefaultInflation = decimal.NewFromFloat(0.03)

// DefaultFireMultiple is the conventional "25x annual expenses" independence rule.
var DefaultFireMultiple = decimal.NewFromInt(25)

// MaxYears bounds the horizon so the monthly series stay allocatable.
const MaxYears = 1000

// SimulationParameters holds the fixed annual inputs of a portfolio simulation
type SimulationParameters struct {
	AnnualReturn        decimal.Decimal `json:"annual_return"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	Years               int             `json:"years"`
	AnnualExpenses      decimal.Decimal `json:"annual_expenses"`
	Inflation           decimal.Decimal `json:"inflation"`

	// ContributionMonths stops contributions after the given month. Nil means
	// contributions continue for the whole horizon.
	ContributionMonths *int `json:"contribution_months,omitempty"`

	FireMultiple decimal.Decimal `json:"fire_multiple"`

	// StartDate only labels months in reports; it never affects the numbers.
	StartDate *time.Time `json:"start_date,omitempty"`
}

// NewSimulationParameters creates parameters with the default inflation and FIRE multiple
func NewSimulationParameters(annualReturn, monthlyContribution decimal.Decimal, years int, annualExpenses decimal.Decimal) SimulationParameters {
	return SimulationParameters{
		AnnualReturn:        annualReturn,
		MonthlyContribution: monthlyContribution,
		Years:               years,
		AnnualExpenses:      annualExpenses,
		Inflation:           DefaultInflation,
		FireMultiple:        DefaultFireMultiple,
	}
}

// WithContributionMonths returns a copy of p that stops contributing after month n
func (p SimulationParameters) WithContributionMonths(n int) SimulationParameters {
	p.ContributionMonths = &n
	return p
}

// TotalMonths returns the number of simulated months
func (p SimulationParameters) TotalMonths() int {
	return dateutil.TotalMonths(p.Years)
}

// ContributesIn reports whether a contribution is made in the given 1-based month
func (p SimulationParameters) ContributesIn(month int) bool {
	return p.ContributionMonths == nil || month <= *p.ContributionMonths
}

// FireTarget returns the month-0 independence target (multiple x annual expenses).
// A zero multiple falls back to the default 25x.
func (p SimulationParameters) FireTarget() decimal.Decimal {
	multiple := p.FireMultiple
	if multiple.IsZero() {
		multiple = DefaultFireMultiple
	}
	return multiple.Mul(p.AnnualExpenses)
}

// Validate rejects parameter sets the simulator cannot run
func (p SimulationParameters) Validate() error {
	minusOne := decimal.NewFromInt(-1)

	if p.Years <= 0 {
		return fmt.Errorf("%w: years must be positive, got %d", ErrInvalidParameter, p.Years)
	}
	if p.Years > MaxYears {
		return fmt.Errorf("%w: years cannot exceed %d, got %d", ErrInvalidParameter, MaxYears, p.Years)
	}
	if p.MonthlyContribution.IsNegative() {
		return fmt.Errorf("%w: monthly contribution cannot be negative, got %s", ErrInvalidParameter, p.MonthlyContribution.String())
	}
	if p.AnnualReturn.LessThanOrEqual(minusOne) {
		return fmt.Errorf("%w: annual return must be greater than -100%%, got %s", ErrInvalidParameter, p.AnnualReturn.String())
	}
	if p.Inflation.LessThanOrEqual(minusOne) {
		return fmt.Errorf("%w: inflation must be greater than -100%%, got %s", ErrInvalidParameter, p.Inflation.String())
	}
	if p.AnnualExpenses.IsNegative() {
		return fmt.Errorf("%w: annual expenses cannot be negative, got %s", ErrInvalidParameter, p.AnnualExpenses.String())
	}
	if p.FireMultiple.IsNegative() {
		return fmt.Errorf("%w: FIRE multiple cannot be negative, got %s", ErrInvalidParameter, p.FireMultiple.String())
	}
	if p.ContributionMonths != nil && *p.ContributionMonths <= 0 {
		return fmt.Errorf("%w: contribution cutoff month must be positive, got %d", ErrInvalidParameter, *p.ContributionMonths)
	}
	return nil
}
