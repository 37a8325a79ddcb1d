package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"nutriscan/internal/report"
)

// ExportRecordsToXLSX writes one row per record with identity-first
// column ordering. Absent fields become empty cells; numeric cells get
// a two-decimal display format, the stored value keeps full precision.
func ExportRecordsToXLSX(records []*report.Record, sheetName, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	if sheetName != "" && sheetName != sheet {
		if err := f.SetSheetName(sheet, sheetName); err == nil {
			sheet = sheetName
		}
	}

	columns := Columns(records)
	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, col)
	}

	for i, rec := range records {
		r := i + 2
		for c, col := range columns {
			cell, _ := excelize.CoordinatesToCellName(c+1, r)
			value, ok := rec.Get(col)
			if !ok {
				_ = f.SetCellValue(sheet, cell, "")
				continue
			}
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	if len(records) > 0 && len(columns) > 0 {
		styleID, err := f.NewStyle(&excelize.Style{NumFmt: 2})
		if err == nil {
			first, _ := excelize.CoordinatesToCellName(1, 2)
			last, _ := excelize.CoordinatesToCellName(len(columns), len(records)+1)
			_ = f.SetCellStyle(sheet, first, last, styleID)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
