package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// Table is a rendered report section: a title, a header row and data rows.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Report is the printable form of a generated report. Data carries the
// typed rows for JSON output; Tables carry the rendered form for the
// text, CSV and XLSX writers.
type Report struct {
	Title     string
	Generated time.Time
	Data      any
	Tables    []Table
}

// Generate creates output in the specified format
func Generate(report *Report, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(report, config)
	case "json":
		return generateJSONOutput(report, config)
	case "csv":
		return generateCSVOutput(report, config)
	case "xlsx":
		return generateXLSXOutput(report, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(report *Report, config Config) error {
	fmt.Printf("📊 %s\n", report.Title)
	fmt.Printf("%s\n", strings.Repeat("=", len(report.Title)+3))
	fmt.Printf("Generated: %s\n\n", report.Generated.Format("2006-01-02 15:04"))

	for _, table := range report.Tables {
		if len(table.Rows) == 0 {
			fmt.Printf("%s: no data\n\n", table.Title)
			continue
		}

		fmt.Printf("%s:\n", table.Title)
		printAligned(table)
		fmt.Println()
	}

	return nil
}

// printAligned prints a table with columns padded to the widest cell.
func printAligned(table Table) {
	widths := make([]int, len(table.Headers))
	for i, header := range table.Headers {
		widths[i] = len(header)
	}
	for _, row := range table.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Println(strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(table.Headers)
	separators := make([]string, len(table.Headers))
	for i := range separators {
		separators[i] = strings.Repeat("-", widths[i])
	}
	printRow(separators)
	for _, row := range table.Rows {
		printRow(row)
	}
}

// generateJSONOutput creates JSON output
func generateJSONOutput(report *Report, config Config) error {
	payload := struct {
		Title     string    `json:"title"`
		Generated time.Time `json:"generated"`
		Data      any       `json:"data"`
	}{report.Title, report.Generated, report.Data}

	jsonData, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, slug(report.Title)+".json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 JSON results saved to: %s\n", filename)
	}

	return nil
}

// generateCSVOutput creates one CSV file per report table
func generateCSVOutput(report *Report, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, table := range report.Tables {
		filename := filepath.Join(config.OutputDir, slug(table.Title)+".csv")
		if err := writeTableCSV(table, filename); err != nil {
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}

		if config.Verbose {
			fmt.Printf("💾 %s saved to: %s\n", table.Title, filename)
		}
	}

	return nil
}

func writeTableCSV(table Table, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.Headers); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// slug turns a table title into a safe file name.
func slug(title string) string {
	lower := strings.ToLower(title)
	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_', r == '/':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
