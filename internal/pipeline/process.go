package pipeline

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"nutriscan/internal"
	"nutriscan/internal/render"
	"nutriscan/internal/report"
	"nutriscan/internal/storage"
)

// ProcessingService renders and extracts registered documents and
// persists the resulting records.
type ProcessingService struct {
	db       *storage.DB
	renderer render.Renderer
}

func NewProcessingService(db *storage.DB, renderer render.Renderer) *ProcessingService {
	return &ProcessingService{db: db, renderer: renderer}
}

type ProcessResult struct {
	DocumentID int
	Extracted  int
	Failed     bool
}

func (s *ProcessingService) ProcessByPath(path string) (ProcessResult, error) {
	doc, err := s.db.MustDocumentByPath(path)
	if err != nil {
		return ProcessResult{}, err
	}
	return s.ProcessDocument(doc)
}

// ProcessPending processes scanned documents in registration order. A
// document failure is recorded on the document and the batch continues;
// only store errors abort.
func (s *ProcessingService) ProcessPending(limit int) (processed, failed int, err error) {
	pending, err := s.db.ListDocumentsByStatus(string(internal.StatusScanned), limit)
	if err != nil {
		return 0, 0, err
	}
	for _, doc := range pending {
		res, err := s.ProcessDocument(doc)
		if err != nil {
			return processed, failed, err
		}
		if res.Failed {
			failed++
			continue
		}
		processed++
	}
	return processed, failed, nil
}

// ProcessDocument runs render + extract + store for one document. The
// returned error covers store problems only; an unrenderable document
// marks the row failed and reports Failed instead.
func (s *ProcessingService) ProcessDocument(doc internal.DocumentRow) (ProcessResult, error) {
	start := time.Now()

	text, renderErr := s.renderer.RenderText(doc.Path)
	if renderErr != nil {
		if err := s.db.MarkDocumentFailed(doc.ID, renderErr.Error()); err != nil {
			return ProcessResult{}, err
		}
		_ = s.db.InsertRun(traceID(), doc.ID,
			map[string]float64{"totalMs": float64(time.Since(start).Milliseconds())},
			map[string]int{"fields": 0, "present": 0, "absent": 0})
		return ProcessResult{DocumentID: doc.ID, Failed: true}, nil
	}

	rec := report.Extract(text)

	if err := s.db.ClearDocumentFields(doc.ID); err != nil {
		return ProcessResult{}, err
	}
	if err := s.db.InsertRecord(doc.ID, rec); err != nil {
		return ProcessResult{}, err
	}
	if err := s.db.UpdateDocumentStatus(doc.ID, string(internal.StatusProcessed)); err != nil {
		return ProcessResult{}, err
	}

	present := 0
	for _, key := range rec.Keys() {
		if _, ok := rec.Get(key); ok {
			present++
		}
	}
	total := len(rec.Keys())
	_ = s.db.InsertRun(traceID(), doc.ID,
		map[string]float64{"totalMs": float64(time.Since(start).Milliseconds())},
		map[string]int{"fields": total, "present": present, "absent": total - present})

	return ProcessResult{DocumentID: doc.ID, Extracted: present}, nil
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
