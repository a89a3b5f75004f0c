package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// generateXLSXOutput writes the report as a workbook with one sheet per table
func generateXLSXOutput(report *Report, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for XLSX format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for t, table := range report.Tables {
		sheet := sheetName(table.Title)
		if t == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("failed to add sheet %s: %w", sheet, err)
			}
		}

		widths := make([]int, len(table.Headers))
		for i, header := range table.Headers {
			col, _ := excelize.ColumnNumberToName(i + 1)
			cell := col + "1"
			f.SetCellValue(sheet, cell, header)
			f.SetCellStyle(sheet, cell, cell, boldStyle)
			widths[i] = len(header)
		}

		for r, row := range table.Rows {
			for i, value := range row {
				cell, err := excelize.CoordinatesToCellName(i+1, r+2)
				if err != nil {
					return fmt.Errorf("failed to address cell: %w", err)
				}
				f.SetCellValue(sheet, cell, value)
				if i < len(widths) && len(value) > widths[i] {
					widths[i] = len(value)
				}
			}
		}

		for i, w := range widths {
			col, _ := excelize.ColumnNumberToName(i + 1)
			f.SetColWidth(sheet, col, col, float64(w)+2)
		}
	}

	filename := filepath.Join(config.OutputDir,
		fmt.Sprintf("%s_%s.xlsx", slug(report.Title), report.Generated.Format("2006-01-02")))
	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to write XLSX file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 XLSX results saved to: %s\n", filename)
	}

	return nil
}

// sheetName trims a table title to the 31 character sheet name limit.
func sheetName(title string) string {
	if len(title) > 31 {
		return title[:31]
	}
	return title
}
