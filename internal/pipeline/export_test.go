package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExportRecordsToXLSX(t *testing.T) {
	renderer := fakeRenderer{texts: map[string]string{
		"a.pdf": reportText("Anna Verdi"),
		"b.pdf": reportText("Carlo Neri"),
	}}
	result := ProcessBatch([]string{"a.pdf", "b.pdf"}, renderer)

	out := filepath.Join(t.TempDir(), "nutrition.xlsx")
	if err := ExportRecordsToXLSX(result.Records, "ExtractedData", out); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("ExtractedData")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows=%d want 3", len(rows))
	}
	if rows[0][0] != "Patient_Name" || rows[0][6] != "BMI" {
		t.Fatalf("header=%v", rows[0][:7])
	}
	if rows[1][0] != "Anna Verdi" || rows[2][0] != "Carlo Neri" {
		t.Fatalf("names=%q %q", rows[1][0], rows[2][0])
	}
}

func TestExportAbsentFieldsAreEmptyCells(t *testing.T) {
	renderer := fakeRenderer{texts: map[string]string{"a.pdf": reportText("Anna Verdi")}}
	result := ProcessBatch([]string{"a.pdf"}, renderer)

	out := filepath.Join(t.TempDir(), "nutrition.xlsx")
	if err := ExportRecordsToXLSX(result.Records, "ExtractedData", out); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	columns := Columns(result.Records)
	col := -1
	for i, name := range columns {
		if name == "Calcio_mg" {
			col = i
			break
		}
	}
	if col < 0 {
		t.Fatal("Calcio_mg column missing")
	}
	cell, _ := excelize.CoordinatesToCellName(col+1, 2)
	value, err := f.GetCellValue("ExtractedData", cell)
	if err != nil {
		t.Fatalf("cell: %v", err)
	}
	if value != "" {
		t.Fatalf("absent field rendered as %q", value)
	}
}
