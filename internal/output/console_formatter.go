package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// ConsoleFormatter prints the per-year table followed by the final summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, fmt.Errorf("console formatter: empty report")
	}
	l := LabelsFor(report.Language)
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%-5s%-25s%-20s%-15s\n",
		l.Year,
		fmt.Sprintf(l.OwnContribution, report.Currency),
		fmt.Sprintf(l.AnnualProfit, report.Currency),
		l.Return,
	)
	for _, row := range report.Result.YearSummaries() {
		fmt.Fprintf(&buf, "%-5d%-25s%-20s%-15s\n",
			row.Year,
			FormatAmount(row.OwnContribution),
			FormatAmount(row.Profit),
			FormatPercentage(row.ProfitPercent, report.Language),
		)
	}

	fmt.Fprintln(&buf)
	for _, line := range SummaryLines(report) {
		fmt.Fprintln(&buf, line)
	}
	return buf.Bytes(), nil
}
