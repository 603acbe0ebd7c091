package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned for output format names with no formatter.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	MarkdownFormatter{},
	CSVSummarizer{},
	CSVMonthlyExporter{},
	JSONFormatter{},
	HTMLFormatter{},
}

// extensions maps formatter names to report file extensions.
var extensions = map[string]string{
	"console":     "txt",
	"markdown":    "md",
	"csv":         "csv",
	"monthly-csv": "csv",
	"json":        "json",
	"html":        "html",
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// ResolveFormatter is GetFormatterByName with a descriptive error for unknown names.
func ResolveFormatter(name string) (Formatter, error) {
	if f := GetFormatterByName(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"table":        "console",
	"text":         "console",
	"md":           "markdown",
	"csv-monthly":  "monthly-csv",
	"detailed-csv": "monthly-csv",
	"chart":        "html",
	"charts":       "html",
	"html-report":  "html",
	"json-pretty":  "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Extension returns the file extension used when a formatter's output is saved.
func Extension(f Formatter) string {
	if ext, ok := extensions[f.Name()]; ok {
		return ext
	}
	return "txt"
}

// WriteFormatted runs a formatter and writes output to a timestamped file in
// dir, creating dir when missing. It returns the path written.
func WriteFormatted(f Formatter, report *domain.Report, dir string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	filename := fmt.Sprintf("fire_report_%s.%s", time.Now().Format("20060102_150405"), Extension(f))
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
		filename = filepath.Join(dir, filename)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
