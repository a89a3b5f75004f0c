package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGenerate_UnsupportedFormat(t *testing.T) {
	report := &Report{Title: "Report", Generated: time.Now()}
	if err := Generate(report, Config{Format: "pdf"}); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestGenerateCSVOutput(t *testing.T) {
	dir := t.TempDir()
	report := &Report{
		Title:     "Cost Analysis",
		Generated: time.Now(),
		Tables: []Table{{
			Title:   "Cost Analysis",
			Headers: []string{"Project", "Budget", "Actual"},
			Rows:    [][]string{{"Residencial Alpha", "2500000.00", "2850.00"}},
		}},
	}

	if err := Generate(report, Config{Format: "csv", OutputDir: dir}); err != nil {
		t.Fatalf("Expected CSV generation to succeed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "cost_analysis.csv"))
	if err != nil {
		t.Fatalf("Expected CSV file to exist: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "Project,Budget,Actual") {
		t.Errorf("Expected header row, got: %s", content)
	}
	if !strings.Contains(content, "Residencial Alpha,2500000.00,2850.00") {
		t.Errorf("Expected data row, got: %s", content)
	}
}

func TestGenerateCSVOutput_RequiresOutputDir(t *testing.T) {
	report := &Report{Title: "Report", Generated: time.Now()}
	if err := Generate(report, Config{Format: "csv"}); err == nil {
		t.Error("Expected error when output directory is missing")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Cost Analysis", "cost_analysis"},
		{"Stock Status", "stock_status"},
		{"General Summary (2024)", "general_summary_2024"},
	}

	for _, tt := range tests {
		if got := slug(tt.input); got != tt.expected {
			t.Errorf("slug(%q): expected %q, got %q", tt.input, got, tt.expected)
		}
	}
}
