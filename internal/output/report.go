package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// GenerateReport formats the report and writes it to w.
func GenerateReport(w io.Writer, report *domain.Report, format string) error {
	f, err := ResolveFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// SaveReport formats the report and writes it to path, creating parent directories.
func SaveReport(path string, report *domain.Report, format string) error {
	f, err := ResolveFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
