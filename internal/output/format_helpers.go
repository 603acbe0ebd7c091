package output

import (
	"fmt"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/pkg/dateutil"
	money "github.com/rpgo/fire-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatAmount formats a value with space thousands and a decimal comma: "1 234,56".
func FormatAmount(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatCurrency formats a value followed by its currency code: "1 234,56 PLN".
func FormatCurrency(amount decimal.Decimal, currency string) string {
	return money.NewMoneyFromDecimal(amount).FormatWithCurrency(currency)
}

// FormatPercentage formats a percentage with 2 decimals in the number style of
// lang, without grouping. Undefined percentages render as the localized "n/a".
func FormatPercentage(pct decimal.NullDecimal, lang string) string {
	if !pct.Valid {
		return LabelsFor(lang).Undefined
	}
	p := message.NewPrinter(languageTag(lang))
	return p.Sprint(number.Decimal(pct.Decimal.Round(2).InexactFloat64(), number.Scale(2), number.NoSeparator()))
}

// FireMessage describes when the FIRE target is first reached.
func FireMessage(r *domain.SimulationResult, l Labels) string {
	year, month, ok := r.FireYearAndMonth()
	if !ok {
		return l.FireNotReached
	}
	msg := fmt.Sprintf(l.FireReached, month, year, *r.FireMonth)
	if date, ok := r.FireDate(); ok {
		msg += " " + fmt.Sprintf(l.FireDate, dateutil.FormatMonth(date))
	}
	return msg
}

// SummaryLines returns the final summary shared by every report.
func SummaryLines(report *domain.Report) []string {
	l := LabelsFor(report.Language)
	r := report.Result
	return []string{
		fmt.Sprintf("%s: %s", l.FinalValue, FormatCurrency(r.FinalBalance(), report.Currency)),
		fmt.Sprintf("%s: %s", l.TotalContribution, FormatCurrency(r.TotalContribution(), report.Currency)),
		fmt.Sprintf("%s: %s", l.TotalProfit, FormatCurrency(r.TotalProfit(), report.Currency)),
		FireMessage(r, l),
	}
}

func languageTag(lang string) language.Tag {
	tag, err := language.Parse(NormalizeLanguage(lang))
	if err != nil {
		return language.English
	}
	return tag
}
