package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// SimulationEngine runs portfolio simulations
type SimulationEngine struct {
	Debug  bool // Enable per-year debug logging
	Logger Logger
}

// NewSimulationEngine creates a new simulation engine with a no-op logger
func NewSimulationEngine() *SimulationEngine {
	return &SimulationEngine{
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the simulation engine. If nil is provided, a no-op logger is used.
func (se *SimulationEngine) SetLogger(l Logger) {
	if l == nil {
		se.Logger = NopLogger{}
		return
	}
	se.Logger = l
}

// Run validates the parameters and simulates the portfolio month by month.
func (se *SimulationEngine) Run(ctx context.Context, params domain.SimulationParameters) (*domain.SimulationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		se.logger().Errorf("rejected simulation parameters: %v", err)
		return nil, err
	}

	se.logger().Infof("simulating %d months: return=%s contribution=%s expenses=%s inflation=%s",
		params.TotalMonths(),
		params.AnnualReturn.String(),
		params.MonthlyContribution.StringFixed(2),
		params.AnnualExpenses.StringFixed(2),
		params.Inflation.String(),
	)

	result := simulate(params, se.yearHook())

	if result.FireMonth != nil {
		se.logger().Infof("FIRE target reached in month %d", *result.FireMonth)
	} else {
		se.logger().Infof("FIRE target not reached within %d years", params.Years)
	}
	return result, nil
}

func (se *SimulationEngine) yearHook() func(year int, row domain.YearSummary) {
	if !se.Debug {
		return nil
	}
	return func(year int, row domain.YearSummary) {
		pct := "n/a"
		if row.ProfitPercent.Valid {
			pct = row.ProfitPercent.Decimal.StringFixed(2) + "%"
		}
		se.logger().Debugf("year %d: balance=%s own=%s profit=%s return=%s",
			year, row.Balance.StringFixed(2), row.OwnContribution.StringFixed(2), row.Profit.StringFixed(2), pct)
	}
}

func (se *SimulationEngine) logger() Logger {
	if se.Logger == nil {
		return NopLogger{}
	}
	return se.Logger
}

// Simulate runs a simulation with a default engine
func Simulate(params domain.SimulationParameters) (*domain.SimulationResult, error) {
	result, err := NewSimulationEngine().Run(context.Background(), params)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}
	return result, nil
}
