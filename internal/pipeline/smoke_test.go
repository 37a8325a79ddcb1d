package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"nutriscan/internal"
	"nutriscan/internal/storage"
)

// End-to-end over the persistent path: register documents, process the
// pending queue, read the stored records back and export them.
func TestSmokeScanProcessExport(t *testing.T) {
	dir := t.TempDir()
	db, err := storage.Open(filepath.Join(dir, "app.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	// broken.pdf has no text, so rendering it fails.
	renderer := fakeRenderer{texts: map[string]string{
		"good.pdf": reportText("Anna Verdi"),
	}}

	if _, err := db.UpsertDocument("good.pdf", "hash-1"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := db.UpsertDocument("broken.pdf", "hash-2"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	svc := NewProcessingService(db, renderer)
	processed, failed, err := svc.ProcessPending(10)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if processed != 1 || failed != 1 {
		t.Fatalf("processed=%d failed=%d", processed, failed)
	}

	brokenDoc, err := db.GetDocumentByPath("broken.pdf")
	if err != nil || brokenDoc == nil {
		t.Fatalf("broken doc: %v", err)
	}
	if brokenDoc.Status != string(internal.StatusFailed) || brokenDoc.Error == nil {
		t.Fatalf("broken doc status=%s error=%v", brokenDoc.Status, brokenDoc.Error)
	}

	docs, records, err := db.ListRecords(string(internal.StatusProcessed))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 1 || len(records) != 1 {
		t.Fatalf("docs=%d records=%d", len(docs), len(records))
	}

	name, ok := records[0].Text("Patient_Name")
	if !ok || name != "Anna Verdi" {
		t.Fatalf("Patient_Name=%q ok=%v", name, ok)
	}
	if total, ok := records[0].Float("Total_kcal"); !ok || total != 1940 {
		t.Fatalf("Total_kcal=%v ok=%v", total, ok)
	}
	if gender, ok := records[0].Int("Gender"); !ok || gender != 1 {
		t.Fatalf("Gender=%v ok=%v", gender, ok)
	}

	out := filepath.Join(dir, "out", "nutrition.xlsx")
	if err := ExportRecordsToXLSX(records, "ExtractedData", out); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("stat: %v", err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("ExtractedData")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 || rows[1][0] != "Anna Verdi" {
		t.Fatalf("exported rows=%v", rows)
	}
}

func TestSmokeReprocessOnHashChange(t *testing.T) {
	dir := t.TempDir()
	db, err := storage.Open(filepath.Join(dir, "app.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	renderer := fakeRenderer{texts: map[string]string{"a.pdf": reportText("Anna Verdi")}}
	if _, err := db.UpsertDocument("a.pdf", "hash-1"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	svc := NewProcessingService(db, renderer)
	if _, _, err := svc.ProcessPending(10); err != nil {
		t.Fatalf("process: %v", err)
	}

	// Same hash keeps the processed status.
	doc, err := db.UpsertDocument("a.pdf", "hash-1")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if doc.Status != string(internal.StatusProcessed) {
		t.Fatalf("status=%s want processed", doc.Status)
	}

	// A changed hash sends the document back to the queue.
	doc, err = db.UpsertDocument("a.pdf", "hash-2")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if doc.Status != string(internal.StatusScanned) {
		t.Fatalf("status=%s want scanned", doc.Status)
	}
}
