package pipeline

import (
	"fmt"
	"testing"
)

// fakeRenderer serves canned text per path; a missing path fails like
// an unreadable document.
type fakeRenderer struct {
	texts map[string]string
}

func (f fakeRenderer) RenderText(path string) (string, error) {
	text, ok := f.texts[path]
	if !ok {
		return "", fmt.Errorf("render %s: no text", path)
	}
	return text, nil
}

func reportText(name string) string {
	return "Report del Calcolo intake alimentare " + name + " Visita del: 01/02/2024 " +
		"Sesso: Maschio Et√†: 30 Altezza: cm 180 Peso: kg 80,0 BMI (Body Mass Index) 24,7 " +
		"MACRONUTRIENTI Protidi g 100 Glucidi g 250 Lipidi g 60 Alcool g 0 VITAMINE"
}

func TestProcessBatchSkipsFailedDocument(t *testing.T) {
	renderer := fakeRenderer{texts: map[string]string{
		"a.pdf": reportText("Anna Verdi"),
		"c.pdf": reportText("Carlo Neri"),
	}}

	result := ProcessBatch([]string{"a.pdf", "b.pdf", "c.pdf"}, renderer)

	if len(result.Records) != 2 {
		t.Fatalf("records=%d", len(result.Records))
	}
	if len(result.Failures) != 1 || result.Failures[0].Path != "b.pdf" {
		t.Fatalf("failures=%+v", result.Failures)
	}

	first, _ := result.Records[0].Text("Patient_Name")
	second, _ := result.Records[1].Text("Patient_Name")
	if first != "Anna Verdi" || second != "Carlo Neri" {
		t.Fatalf("order broken: %q, %q", first, second)
	}
}

func TestColumnsIdentityFirst(t *testing.T) {
	renderer := fakeRenderer{texts: map[string]string{"a.pdf": reportText("Anna Verdi")}}
	result := ProcessBatch([]string{"a.pdf"}, renderer)

	columns := Columns(result.Records)
	wantFirst := []string{"Patient_Name", "Visit_Date", "Gender", "Age_years", "Height_cm", "Weight_kg", "BMI"}
	for i, want := range wantFirst {
		if columns[i] != want {
			t.Fatalf("column %d=%s want %s", i, columns[i], want)
		}
	}
	if len(columns) != 127 {
		t.Fatalf("columns=%d want 127", len(columns))
	}
}

func TestProcessBatchDeterministic(t *testing.T) {
	renderer := fakeRenderer{texts: map[string]string{"a.pdf": reportText("Anna Verdi")}}

	first := ProcessBatch([]string{"a.pdf"}, renderer).Records[0]
	second := ProcessBatch([]string{"a.pdf"}, renderer).Records[0]

	for _, key := range first.Keys() {
		a, okA := first.Get(key)
		b, okB := second.Get(key)
		if okA != okB || a != b {
			t.Fatalf("value differs for %s", key)
		}
	}
}
