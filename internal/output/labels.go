package output

import (
	"sort"
	"strings"
)

// DefaultLanguage is used when a report asks for a language without labels.
const DefaultLanguage = "en"

// Labels holds every user-facing string of a report in one language.
// Entries containing verbs are fmt format strings.
type Labels struct {
	Title             string
	Year              string
	OwnContribution   string // %s: currency code
	AnnualProfit      string // %s: currency code
	Return            string
	FinalValue        string
	TotalContribution string
	TotalProfit       string
	FireReached       string // %d month of year, %d year, %d months elapsed
	FireDate          string // %s: YYYY-MM
	FireNotReached    string
	Undefined         string

	ValueChartTitle  string
	ProfitChartTitle string
	PortfolioSeries  string
	OwnSeries        string
	TargetSeries     string
	MonthsAxis       string
	YearAxis         string
	ValueAxis        string // %s: currency code
}

var labelSets = map[string]Labels{
	"en": {
		Title:             "FIRE portfolio simulation",
		Year:              "Year",
		OwnContribution:   "Own contribution (%s)",
		AnnualProfit:      "Annual profit (%s)",
		Return:            "Return (%)",
		FinalValue:        "Final portfolio value",
		TotalContribution: "Total own contribution",
		TotalProfit:       "Total investment profit",
		FireReached:       "You can reach FIRE in month %d of year %d (month %d from now).",
		FireDate:          "Expected date: %s.",
		FireNotReached:    "FIRE was not achieved in the given period.",
		Undefined:         "n/a",
		ValueChartTitle:   "Portfolio value over time",
		ProfitChartTitle:  "Annual portfolio profits",
		PortfolioSeries:   "Portfolio value",
		OwnSeries:         "Own contribution",
		TargetSeries:      "Inflation-adjusted FIRE target",
		MonthsAxis:        "Months",
		YearAxis:          "Year",
		ValueAxis:         "Value in %s",
	},
	"pl": {
		Title:             "Symulacja portfela FIRE",
		Year:              "Rok",
		OwnContribution:   "Wkład własny (%s)",
		AnnualProfit:      "Roczny zysk (%s)",
		Return:            "Zwrot (%)",
		FinalValue:        "Końcowa wartość portfela",
		TotalContribution: "Całkowity wkład własny",
		TotalProfit:       "Całkowity zysk z inwestycji",
		FireReached:       "Możesz osiągnąć FIRE w %d. miesiącu %d. roku (%d. miesiąc od teraz).",
		FireDate:          "Przewidywana data: %s.",
		FireNotReached:    "FIRE nie zostało osiągnięte w podanym okresie.",
		Undefined:         "b.d.",
		ValueChartTitle:   "Wartość portfela w czasie",
		ProfitChartTitle:  "Roczne zyski portfela",
		PortfolioSeries:   "Wartość portfela",
		OwnSeries:         "Wkład własny",
		TargetSeries:      "Cel FIRE skorygowany o inflację",
		MonthsAxis:        "Miesiące",
		YearAxis:          "Rok",
		ValueAxis:         "Wartość w %s",
	},
}

// NormalizeLanguage lowers the code and strips any region ("pl-PL" -> "pl").
func NormalizeLanguage(lang string) string {
	l := strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(l, "-_"); i > 0 {
		l = l[:i]
	}
	return l
}

// IsSupportedLanguage reports whether labels exist for lang
func IsSupportedLanguage(lang string) bool {
	_, ok := labelSets[NormalizeLanguage(lang)]
	return ok
}

// LabelsFor returns the labels of lang, falling back to English.
func LabelsFor(lang string) Labels {
	if l, ok := labelSets[NormalizeLanguage(lang)]; ok {
		return l
	}
	return labelSets[DefaultLanguage]
}

// SupportedLanguages returns the language codes with labels, sorted.
func SupportedLanguages() []string {
	langs := make([]string, 0, len(labelSets))
	for k := range labelSets {
		langs = append(langs, k)
	}
	sort.Strings(langs)
	return langs
}
