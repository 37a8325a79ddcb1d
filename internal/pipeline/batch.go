package pipeline

import (
	"nutriscan/internal/render"
	"nutriscan/internal/report"
)

type DocumentFailure struct {
	Path string
	Err  error
}

// BatchResult is the aggregate of one batch: successful records (one
// per document, in input order) and the documents that failed to
// render. Records and Paths are parallel slices.
type BatchResult struct {
	Records  []*report.Record
	Paths    []string
	Failures []DocumentFailure
}

// ProcessBatch runs the extraction pipeline over each document
// independently and in input order. A document that cannot be rendered
// is recorded as a failure and skipped; it never aborts the batch.
func ProcessBatch(paths []string, renderer render.Renderer) BatchResult {
	out := BatchResult{}
	for _, path := range paths {
		text, err := renderer.RenderText(path)
		if err != nil {
			out.Failures = append(out.Failures, DocumentFailure{Path: path, Err: err})
			continue
		}
		out.Records = append(out.Records, report.Extract(text))
		out.Paths = append(out.Paths, path)
	}
	return out
}

var identityColumns = []string{
	"Patient_Name", "Visit_Date", "Gender", "Age_years", "Height_cm", "Weight_kg", "BMI",
}

// Columns derives the export column order: identity columns first, then
// every remaining key in first-seen order across the records.
func Columns(records []*report.Record) []string {
	order := []string{}
	seen := map[string]struct{}{}
	for _, rec := range records {
		for _, key := range rec.Keys() {
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				order = append(order, key)
			}
		}
	}

	out := make([]string, 0, len(order))
	used := map[string]struct{}{}
	for _, key := range identityColumns {
		if _, ok := seen[key]; ok {
			out = append(out, key)
			used[key] = struct{}{}
		}
	}
	for _, key := range order {
		if _, ok := used[key]; !ok {
			out = append(out, key)
		}
	}
	return out
}
