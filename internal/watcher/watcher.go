package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"nutriscan/internal"
	"nutriscan/internal/config"
	"nutriscan/internal/ingest"
	"nutriscan/internal/pipeline"
	"nutriscan/internal/render"
	"nutriscan/internal/storage"
)

// Service polls a directory for report PDFs, processes whatever is
// pending and exports newly processed records to one workbook per
// cycle.
type Service struct {
	db       *storage.DB
	cfg      config.Config
	renderer render.Renderer
}

func NewService(db *storage.DB, cfg config.Config) *Service {
	return &Service{db: db, cfg: cfg, renderer: render.NewPDFRenderer()}
}

func (s *Service) Run(ctx context.Context) error {
	for {
		if err := s.runCycle(); err != nil {
			fmt.Printf("watch cycle error: %v\n", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(time.Duration(s.cfg.WatchIntervalSec) * time.Second):
		}
	}
}

func (s *Service) runCycle() error {
	scanner := ingest.NewScanService(s.db)
	scanResult, err := scanner.ScanDir(s.cfg.WatchDir)
	if err != nil {
		return err
	}

	processor := pipeline.NewProcessingService(s.db, s.renderer)
	processed, failed, err := processor.ProcessPending(s.cfg.WatchBatch)
	if err != nil {
		return err
	}

	exported := 0
	if s.cfg.WatchAutoExport {
		exported, err = s.exportProcessed()
		if err != nil {
			return err
		}
	}

	fmt.Printf("watch cycle done found=%d registered=%d processed=%d failed=%d exported=%d\n",
		scanResult.Found, scanResult.Registered, processed, failed, exported)
	return nil
}

func (s *Service) exportProcessed() (int, error) {
	docs, records, err := s.db.ListRecords(string(internal.StatusProcessed))
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	filename := fmt.Sprintf("nutrition_%s.xlsx", time.Now().UTC().Format("20060102T150405"))
	outputPath := filepath.Join(s.cfg.OutputDir, "watch", filename)
	if err := pipeline.ExportRecordsToXLSX(records, s.cfg.ExportSheet, outputPath); err != nil {
		return 0, err
	}

	for _, doc := range docs {
		_ = s.db.UpdateDocumentStatus(doc.ID, string(internal.StatusExported))
	}
	return len(records), nil
}
