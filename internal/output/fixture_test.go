package output

import (
	"time"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// buildTestReport returns a hand-built two year result: contributions stop
// after month 12 and the target is crossed in month 14.
func buildTestReport(lang string, withStart bool) *domain.Report {
	const months = 24
	balance := make([]decimal.Decimal, months+1)
	own := make([]decimal.Decimal, months+1)
	target := make([]decimal.Decimal, months+1)
	for m := 0; m <= months; m++ {
		contributed := m
		if contributed > 12 {
			contributed = 12
		}
		own[m] = decimal.NewFromInt(int64(1000 * contributed))
		target[m] = decimal.NewFromInt(13000)
	}
	for m := 1; m <= 12; m++ {
		balance[m] = own[m].Add(decimal.NewFromInt(int64(50 * m)))
	}
	balance[12] = decimal.RequireFromString("12640.54")
	for m := 13; m <= months; m++ {
		balance[m] = balance[12].Add(decimal.RequireFromString("54.955").Mul(decimal.NewFromInt(int64(m - 12))))
	}

	params := domain.NewSimulationParameters(
		decimal.NewFromFloat(0.10),
		decimal.NewFromInt(1000),
		2,
		decimal.NewFromInt(520),
	).WithContributionMonths(12)
	if withStart {
		start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		params.StartDate = &start
	}

	fireMonth := 14
	return &domain.Report{
		Result: &domain.SimulationResult{
			Parameters:      params,
			Balance:         balance,
			OwnContribution: own,
			FireTarget:      target,
			AnnualProfit: []decimal.Decimal{
				decimal.RequireFromString("640.54"),
				decimal.RequireFromString("1300"),
			},
			AnnualProfitPercent: []decimal.NullDecimal{
				{Decimal: decimal.RequireFromString("5.3378333333"), Valid: true},
				{Decimal: decimal.RequireFromString("10.8333333333"), Valid: true},
			},
			FireMonth: &fireMonth,
		},
		Language: lang,
		Currency: "PLN",
	}
}

// buildZeroContributionReport returns one year without contributions, so the
// year has no defined return.
func buildZeroContributionReport(lang string) *domain.Report {
	zeros := make([]decimal.Decimal, 13)
	target := make([]decimal.Decimal, 13)
	for m := range zeros {
		zeros[m] = decimal.Zero
		target[m] = decimal.NewFromInt(1800000)
	}
	return &domain.Report{
		Result: &domain.SimulationResult{
			Parameters: domain.NewSimulationParameters(
				decimal.NewFromFloat(0.10),
				decimal.Zero,
				1,
				decimal.NewFromInt(72000),
			),
			Balance:             zeros,
			OwnContribution:     zeros,
			FireTarget:          target,
			AnnualProfit:        []decimal.Decimal{decimal.Zero},
			AnnualProfitPercent: []decimal.NullDecimal{{}},
		},
		Language: lang,
		Currency: "PLN",
	}
}
