package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/pkg/dateutil"
)

// CSVMonthlyExporter provides the raw monthly series, month 0 included.
type CSVMonthlyExporter struct{}

func (c CSVMonthlyExporter) Name() string { return "monthly-csv" }

func (c CSVMonthlyExporter) Format(report *domain.Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, fmt.Errorf("monthly-csv formatter: empty report")
	}
	r := report.Result
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Month", "Year", "MonthOfYear", "Date", "Balance", "OwnContribution", "FireTarget", "Contributing"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for m := 0; m < len(r.Balance); m++ {
		year, monthOfYear := dateutil.YearAndMonth(m)
		date := ""
		if r.Parameters.StartDate != nil && m > 0 {
			date = dateutil.FormatMonth(dateutil.MonthDate(*r.Parameters.StartDate, m))
		}
		target := ""
		if m < len(r.FireTarget) {
			target = r.FireTarget[m].StringFixed(2)
		}
		own := ""
		if m < len(r.OwnContribution) {
			own = r.OwnContribution[m].StringFixed(2)
		}
		record := []string{
			intToString(m),
			intToString(year),
			intToString(monthOfYear),
			date,
			r.Balance[m].StringFixed(2),
			own,
			target,
			boolToString(m > 0 && r.Parameters.ContributesIn(m)),
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
