package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// MarkdownFormatter renders the report as a markdown document, suitable for
// terminal rendering or pasting into notes.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, fmt.Errorf("markdown formatter: empty report")
	}
	l := LabelsFor(report.Language)
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", l.Title)
	fmt.Fprintf(&buf, "| %s | %s | %s | %s |\n",
		l.Year,
		fmt.Sprintf(l.OwnContribution, report.Currency),
		fmt.Sprintf(l.AnnualProfit, report.Currency),
		l.Return,
	)
	fmt.Fprintln(&buf, "|---:|---:|---:|---:|")
	for _, row := range report.Result.YearSummaries() {
		fmt.Fprintf(&buf, "| %d | %s | %s | %s |\n",
			row.Year,
			FormatAmount(row.OwnContribution),
			FormatAmount(row.Profit),
			FormatPercentage(row.ProfitPercent, report.Language),
		)
	}

	fmt.Fprintln(&buf)
	for _, line := range SummaryLines(report) {
		fmt.Fprintf(&buf, "- %s\n", line)
	}
	return buf.Bytes(), nil
}
