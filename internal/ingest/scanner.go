package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"time"

	"nutriscan/internal"
	"nutriscan/internal/storage"
)

// ScanService registers PDF report files found on disk so they can be
// processed later. Content is hashed so an unchanged file is never
// reprocessed and a changed one is rescheduled.
type ScanService struct {
	db *storage.DB
}

type ScanResult struct {
	Found      int
	Registered int
}

func NewScanService(db *storage.DB) *ScanService {
	return &ScanService{db: db}
}

func (s *ScanService) ScanDir(dir string) (ScanResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ScanResult{}, err
	}

	result := ScanResult{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		result.Found++

		path := filepath.Join(dir, entry.Name())
		if _, err := s.Register(path); err != nil {
			return result, err
		}
		result.Registered++
	}

	_ = s.db.SetMetadata("lastScanAt", time.Now().UTC().Format(time.RFC3339))
	return result, nil
}

func (s *ScanService) Register(path string) (internal.DocumentRow, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return internal.DocumentRow{}, err
	}
	hashBytes := sha256.Sum256(content)
	return s.db.UpsertDocument(path, hex.EncodeToString(hashBytes[:]))
}
