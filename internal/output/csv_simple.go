package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// CSVSummarizer implements the annual CSV output (one row per completed year).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, fmt.Errorf("csv formatter: empty report")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "OwnContribution", "Balance", "AnnualProfit", "ReturnPercent"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range report.Result.YearSummaries() {
		pct := ""
		if row.ProfitPercent.Valid {
			pct = row.ProfitPercent.Decimal.StringFixed(2)
		}
		record := []string{
			intToString(row.Year),
			row.OwnContribution.StringFixed(2),
			row.Balance.StringFixed(2),
			row.Profit.StringFixed(2),
			pct,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
