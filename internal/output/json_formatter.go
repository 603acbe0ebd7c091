package output

import (
	"encoding/json"
	"fmt"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// JSONFormatter serializes the simulation result and its summary as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

type jsonSummary struct {
	FinalBalance      decimal.Decimal `json:"final_balance"`
	TotalContribution decimal.Decimal `json:"total_contribution"`
	TotalProfit       decimal.Decimal `json:"total_profit"`
	FireReached       bool            `json:"fire_reached"`
	FireYear          int             `json:"fire_year,omitempty"`
	FireMonthOfYear   int             `json:"fire_month_of_year,omitempty"`
	Message           string          `json:"message"`
}

type jsonReport struct {
	Language string                   `json:"language"`
	Currency string                   `json:"currency"`
	Summary  jsonSummary              `json:"summary"`
	Years    []domain.YearSummary     `json:"years"`
	Result   *domain.SimulationResult `json:"result"`
}

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, fmt.Errorf("json formatter: empty report")
	}
	r := report.Result
	year, month, ok := r.FireYearAndMonth()
	out := jsonReport{
		Language: NormalizeLanguage(report.Language),
		Currency: report.Currency,
		Summary: jsonSummary{
			FinalBalance:      r.FinalBalance().Round(2),
			TotalContribution: r.TotalContribution().Round(2),
			TotalProfit:       r.TotalProfit().Round(2),
			FireReached:       ok,
			FireYear:          year,
			FireMonthOfYear:   month,
			Message:           FireMessage(r, LabelsFor(report.Language)),
		},
		Years:  r.YearSummaries(),
		Result: r,
	}
	return json.MarshalIndent(out, "", "  ")
}
