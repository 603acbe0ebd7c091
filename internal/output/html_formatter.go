package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report with Chart.js charts: the
// monthly portfolio value against own contribution and the FIRE target, and
// the annual profits as bars.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"amount": FormatAmount,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

type htmlRow struct {
	Year    int
	Own     decimal.Decimal
	Profit  decimal.Decimal
	Percent string
}

type chartData struct {
	Months    []int     `json:"months"`
	Balance   []float64 `json:"balance"`
	Own       []float64 `json:"own"`
	Target    []float64 `json:"target"`
	Years     []int     `json:"years"`
	Profits   []float64 `json:"profits"`
	ValueAxis string    `json:"valueAxis"`
}

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, fmt.Errorf("html formatter: empty report")
	}
	l := LabelsFor(report.Language)
	r := report.Result

	rows := make([]htmlRow, 0, len(r.AnnualProfit))
	for _, y := range r.YearSummaries() {
		rows = append(rows, htmlRow{
			Year:    y.Year,
			Own:     y.OwnContribution,
			Profit:  y.Profit,
			Percent: FormatPercentage(y.ProfitPercent, report.Language),
		})
	}

	data := struct {
		Lang     string
		Labels   Labels
		Currency string
		OwnCol   string
		ProfCol  string
		Rows     []htmlRow
		Summary  []string
		Chart    chartData
	}{
		Lang:     NormalizeLanguage(report.Language),
		Labels:   l,
		Currency: report.Currency,
		OwnCol:   fmt.Sprintf(l.OwnContribution, report.Currency),
		ProfCol:  fmt.Sprintf(l.AnnualProfit, report.Currency),
		Rows:     rows,
		Summary:  SummaryLines(report),
		Chart:    buildChartData(r, fmt.Sprintf(l.ValueAxis, report.Currency)),
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildChartData converts the decimal series to float points for plotting.
// Month 0 is left out of the value chart.
func buildChartData(r *domain.SimulationResult, valueAxis string) chartData {
	n := r.Months()
	cd := chartData{
		Months:    make([]int, 0, n),
		Balance:   make([]float64, 0, n),
		Own:       make([]float64, 0, n),
		Target:    make([]float64, 0, n),
		Years:     make([]int, 0, len(r.AnnualProfit)),
		Profits:   make([]float64, 0, len(r.AnnualProfit)),
		ValueAxis: valueAxis,
	}
	for m := 1; m <= n; m++ {
		cd.Months = append(cd.Months, m)
		cd.Balance = append(cd.Balance, r.Balance[m].Round(2).InexactFloat64())
		if m < len(r.OwnContribution) {
			cd.Own = append(cd.Own, r.OwnContribution[m].Round(2).InexactFloat64())
		}
		if m < len(r.FireTarget) {
			cd.Target = append(cd.Target, r.FireTarget[m].Round(2).InexactFloat64())
		}
	}
	for i, p := range r.AnnualProfit {
		cd.Years = append(cd.Years, i+1)
		cd.Profits = append(cd.Profits, p.Round(2).InexactFloat64())
	}
	return cd
}
