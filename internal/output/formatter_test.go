package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(out []byte) []string {
	return strings.Split(strings.TrimRight(string(out), "\n"), "\n")
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport("en", false))
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 8)

	assert.Equal(t, fmt.Sprintf("%-5s%-25s%-20s%-15s", "Year", "Own contribution (PLN)", "Annual profit (PLN)", "Return (%)"), got[0])
	assert.Equal(t, fmt.Sprintf("%-5s%-25s%-20s%-15s", "1", "12 000,00", "640,54", "5.34"), got[1])
	assert.Equal(t, fmt.Sprintf("%-5s%-25s%-20s%-15s", "2", "12 000,00", "1 300,00", "10.83"), got[2])
	assert.Equal(t, "", got[3])
	assert.Equal(t, "Final portfolio value: 13 300,00 PLN", got[4])
	assert.Equal(t, "Total own contribution: 12 000,00 PLN", got[5])
	assert.Equal(t, "Total investment profit: 1 300,00 PLN", got[6])
	assert.Equal(t, "You can reach FIRE in month 2 of year 2 (month 14 from now).", got[7])
}

func TestConsoleFormatterPolish(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport("pl", true))
	require.NoError(t, err)
	content := string(out)
	assert.True(t, strings.HasPrefix(content, "Rok"))
	assert.Contains(t, content, "5,34")
	assert.Contains(t, content, "10,83")
	assert.Contains(t, content, "Końcowa wartość portfela: 13 300,00 PLN")
	assert.Contains(t, content, "Możesz osiągnąć FIRE w 2. miesiącu 2. roku (14. miesiąc od teraz). Przewidywana data: 2026-04.")
}

func TestUndefinedReturn(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildZeroContributionReport("en"))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%-5s%-25s%-20s%-15s", "1", "0,00", "0,00", "n/a"), lines(out)[1])

	out, err = ConsoleFormatter{}.Format(buildZeroContributionReport("pl"))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%-5s%-25s%-20s%-15s", "1", "0,00", "0,00", "b.d."), lines(out)[1])

	out, err = CSVSummarizer{}.Format(buildZeroContributionReport("en"))
	require.NoError(t, err)
	assert.Equal(t, "1,0.00,0.00,0.00,", lines(out)[1])

	out, err = JSONFormatter{}.Format(buildZeroContributionReport("en"))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"profit_percent": null`)

	out, err = HTMLFormatter{}.Format(buildZeroContributionReport("en"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<td>n/a</td>")
}

func TestConsoleFormatterNotReached(t *testing.T) {
	report := buildTestReport("en", true)
	report.Result.FireMonth = nil
	out, err := ConsoleFormatter{}.Format(report)
	require.NoError(t, err)
	got := lines(out)
	assert.Equal(t, "FIRE was not achieved in the given period.", got[len(got)-1])
}

func TestMarkdownFormatter(t *testing.T) {
	out, err := MarkdownFormatter{}.Format(buildTestReport("en", true))
	require.NoError(t, err)
	got := lines(out)
	assert.Equal(t, "# FIRE portfolio simulation", got[0])
	assert.Contains(t, got, "| Year | Own contribution (PLN) | Annual profit (PLN) | Return (%) |")
	assert.Contains(t, got, "| 1 | 12 000,00 | 640,54 | 5.34 |")
	assert.Contains(t, got, "| 2 | 12 000,00 | 1 300,00 | 10.83 |")
	assert.Contains(t, got, "- Final portfolio value: 13 300,00 PLN")
	assert.Contains(t, got, "- You can reach FIRE in month 2 of year 2 (month 14 from now). Expected date: 2026-04.")
}

func TestCSVSummarizer(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestReport("en", false))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Year,OwnContribution,Balance,AnnualProfit,ReturnPercent",
		"1,12000.00,12640.54,640.54,5.34",
		"2,12000.00,13300.00,1300.00,10.83",
	}, lines(out))
}

func TestCSVMonthlyExporter(t *testing.T) {
	out, err := CSVMonthlyExporter{}.Format(buildTestReport("en", true))
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 26, "header + month 0 + 24 months")
	assert.Equal(t, "Month,Year,MonthOfYear,Date,Balance,OwnContribution,FireTarget,Contributing", got[0])
	assert.Equal(t, "0,0,0,,0.00,0.00,13000.00,false", got[1])
	assert.Equal(t, "1,1,1,2025-03,1050.00,1000.00,13000.00,true", got[2])
	assert.Equal(t, "12,1,12,2026-02,12640.54,12000.00,13000.00,true", got[13])
	assert.Equal(t, "14,2,2,2026-04,12750.45,12000.00,13000.00,false", got[15])
}

func TestCSVMonthlyExporterWithoutStartDate(t *testing.T) {
	out, err := CSVMonthlyExporter{}.Format(buildTestReport("en", false))
	require.NoError(t, err)
	assert.Equal(t, "1,1,1,,1050.00,1000.00,13000.00,true", lines(out)[2])
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport("pl-PL", false))
	require.NoError(t, err)

	var doc struct {
		Language string `json:"language"`
		Currency string `json:"currency"`
		Summary  struct {
			FinalBalance    decimal.Decimal `json:"final_balance"`
			TotalProfit     decimal.Decimal `json:"total_profit"`
			FireReached     bool            `json:"fire_reached"`
			FireYear        int             `json:"fire_year"`
			FireMonthOfYear int             `json:"fire_month_of_year"`
		} `json:"summary"`
		Years []struct {
			Year          int                 `json:"year"`
			ProfitPercent decimal.NullDecimal `json:"profit_percent"`
		} `json:"years"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "pl", doc.Language)
	assert.Equal(t, "PLN", doc.Currency)
	assert.True(t, doc.Summary.FinalBalance.Equal(decimal.NewFromInt(13300)))
	assert.True(t, doc.Summary.TotalProfit.Equal(decimal.NewFromInt(1300)))
	assert.True(t, doc.Summary.FireReached)
	assert.Equal(t, 2, doc.Summary.FireYear)
	assert.Equal(t, 2, doc.Summary.FireMonthOfYear)
	require.Len(t, doc.Years, 2)
	assert.True(t, doc.Years[1].ProfitPercent.Valid)
	assert.Equal(t, "10.83", doc.Years[1].ProfitPercent.Decimal.StringFixed(2))
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport("en", true))
	require.NoError(t, err)
	content := string(out)
	assert.True(t, strings.HasPrefix(content, "<!DOCTYPE html>"))
	assert.Contains(t, content, `<html lang="en">`)
	assert.Contains(t, content, "<title>FIRE portfolio simulation</title>")
	assert.Contains(t, content, "chart.js")
	assert.Contains(t, content, `"months":[1,2,3,`)
	assert.Contains(t, content, `"profits":[640.54,1300]`)
	assert.Contains(t, content, "<td>12 000,00</td>")
	assert.Contains(t, content, "<td>10.83</td>")
	assert.Contains(t, content, "You can reach FIRE in month 2 of year 2 (month 14 from now). Expected date: 2026-04.")
}

func TestFormattersRejectEmptyReport(t *testing.T) {
	for _, f := range builtInFormatters {
		t.Run(f.Name(), func(t *testing.T) {
			_, err := f.Format(nil)
			assert.Error(t, err)
		})
	}
}

func TestFormatterRegistry(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "html", "json", "markdown", "monthly-csv"}, AvailableFormatterNames())

	cases := map[string]string{
		"console":      "console",
		" Table ":      "console",
		"text":         "console",
		"MD":           "markdown",
		"csv":          "csv",
		"csv-monthly":  "monthly-csv",
		"detailed-csv": "monthly-csv",
		"chart":        "html",
		"html-report":  "html",
		"json-pretty":  "json",
	}
	for in, want := range cases {
		f := GetFormatterByName(in)
		require.NotNil(t, f, in)
		assert.Equal(t, want, f.Name(), in)
	}

	assert.Nil(t, GetFormatterByName("xml"))
	_, err := ResolveFormatter("xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "monthly-csv")
	assert.Contains(t, err.Error(), "json-pretty")
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "md", Extension(MarkdownFormatter{}))
	assert.Equal(t, "csv", Extension(CSVMonthlyExporter{}))
	assert.Equal(t, "html", Extension(HTMLFormatter{}))
	assert.Equal(t, "txt", Extension(ConsoleFormatter{}))
	for _, f := range builtInFormatters {
		_, ok := extensions[f.Name()]
		assert.True(t, ok, "no extension for %s", f.Name())
	}
}

func TestWriteFormatted(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteFormatted(MarkdownFormatter{}, buildTestReport("en", false), dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "fire_report_"))
	assert.Equal(t, ".md", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# FIRE portfolio simulation"))
}

func TestWriteFormattedCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "2025")
	path, err := WriteFormatted(CSVSummarizer{}, buildTestReport("en", false), dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, ".csv", filepath.Ext(path))

	_, err = WriteFormatted(CSVSummarizer{}, nil, dir)
	assert.Error(t, err)
}
