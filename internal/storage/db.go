package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"nutriscan/internal"
	"nutriscan/internal/report"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS documents (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  path TEXT NOT NULL UNIQUE,
  hash TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'scanned',
  error TEXT,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_documents_status ON documents(status);

CREATE TABLE IF NOT EXISTS fields (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  documentId INTEGER NOT NULL,
  position INTEGER NOT NULL,
  key TEXT NOT NULL,
  kind TEXT NOT NULL,
  numValue REAL,
  textValue TEXT,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  UNIQUE(documentId, key),
  FOREIGN KEY(documentId) REFERENCES documents(id)
);
CREATE INDEX IF NOT EXISTS idx_fields_documentId ON fields(documentId);

CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  documentId INTEGER,
  timingsJson TEXT NOT NULL,
  countsJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  FOREIGN KEY(documentId) REFERENCES documents(id)
);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

// UpsertDocument registers a document path. A path seen before keeps
// its status unless the content hash changed, in which case it goes
// back to scanned for reprocessing.
func (d *DB) UpsertDocument(path, hash string) (internal.DocumentRow, error) {
	_, err := d.conn.Exec(`
INSERT INTO documents (path, hash, status)
VALUES (?, ?, 'scanned')
ON CONFLICT(path) DO UPDATE SET
  status=CASE WHEN documents.hash <> excluded.hash THEN 'scanned' ELSE documents.status END,
  error=CASE WHEN documents.hash <> excluded.hash THEN NULL ELSE documents.error END,
  hash=excluded.hash,
  updatedAt=CURRENT_TIMESTAMP
`, path, hash)
	if err != nil {
		return internal.DocumentRow{}, err
	}

	row, err := d.GetDocumentByPath(path)
	if err != nil {
		return internal.DocumentRow{}, err
	}
	if row == nil {
		return internal.DocumentRow{}, errors.New("failed to upsert document")
	}
	return *row, nil
}

func (d *DB) GetDocumentByPath(path string) (*internal.DocumentRow, error) {
	var row internal.DocumentRow
	err := d.conn.QueryRow(`
SELECT id, path, hash, status, error, createdAt
FROM documents WHERE path = ?
`, path).Scan(&row.ID, &row.Path, &row.Hash, &row.Status, &row.Error, &row.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (d *DB) GetDocumentByID(id int) (*internal.DocumentRow, error) {
	var row internal.DocumentRow
	err := d.conn.QueryRow(`
SELECT id, path, hash, status, error, createdAt
FROM documents WHERE id = ?
`, id).Scan(&row.ID, &row.Path, &row.Hash, &row.Status, &row.Error, &row.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (d *DB) ListDocumentsByStatus(status string, limit int) ([]internal.DocumentRow, error) {
	rows, err := d.conn.Query(`
SELECT id, path, hash, status, error, createdAt
FROM documents WHERE status = ? ORDER BY id ASC LIMIT ?
`, status, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.DocumentRow
	for rows.Next() {
		var row internal.DocumentRow
		if err := rows.Scan(&row.ID, &row.Path, &row.Hash, &row.Status, &row.Error, &row.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (d *DB) UpdateDocumentStatus(documentID int, status string) error {
	_, err := d.conn.Exec(`UPDATE documents SET status = ?, error = NULL, updatedAt = CURRENT_TIMESTAMP WHERE id = ?`, status, documentID)
	return err
}

func (d *DB) MarkDocumentFailed(documentID int, message string) error {
	_, err := d.conn.Exec(`UPDATE documents SET status = 'failed', error = ?, updatedAt = CURRENT_TIMESTAMP WHERE id = ?`, message, documentID)
	return err
}

func (d *DB) ClearDocumentFields(documentID int) error {
	_, err := d.conn.Exec(`DELETE FROM fields WHERE documentId = ?`, documentID)
	return err
}

func (d *DB) InsertRecord(documentID int, rec *report.Record) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT INTO fields (documentId, position, key, kind, numValue, textValue)
VALUES (?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for position, key := range rec.Keys() {
		kind := internal.FieldAbsent
		var num *float64
		var text *string
		if v, ok := rec.Get(key); ok {
			switch t := v.(type) {
			case float64:
				kind = internal.FieldNumber
				num = internal.FloatPtr(t)
			case int:
				kind = internal.FieldInt
				num = internal.FloatPtr(float64(t))
			case string:
				kind = internal.FieldText
				text = internal.StringPtr(t)
			default:
				return fmt.Errorf("unsupported field type %T for key %s", v, key)
			}
		}
		if _, err := stmt.Exec(documentID, position, key, string(kind), num, text); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (d *DB) GetRecord(documentID int) (*report.Record, error) {
	rows, err := d.conn.Query(`
SELECT key, kind, numValue, textValue
FROM fields WHERE documentId = ? ORDER BY position ASC
`, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rec := report.NewRecord()
	for rows.Next() {
		var key, kind string
		var num *float64
		var text *string
		if err := rows.Scan(&key, &kind, &num, &text); err != nil {
			return nil, err
		}
		switch internal.FieldKind(kind) {
		case internal.FieldNumber:
			if num != nil {
				rec.Set(key, *num)
			} else {
				rec.Set(key, nil)
			}
		case internal.FieldInt:
			if num != nil {
				rec.Set(key, int(*num))
			} else {
				rec.Set(key, nil)
			}
		case internal.FieldText:
			if text != nil {
				rec.Set(key, *text)
			} else {
				rec.Set(key, nil)
			}
		default:
			rec.Set(key, nil)
		}
	}
	return rec, rows.Err()
}

// ListRecords returns the stored records for every document in one of
// the given statuses, in document insertion order.
func (d *DB) ListRecords(statuses ...string) ([]internal.DocumentRow, []*report.Record, error) {
	if len(statuses) == 0 {
		return nil, nil, errors.New("at least one status is required")
	}

	query := `SELECT id, path, hash, status, error, createdAt FROM documents WHERE status IN (?` +
		repeatPlaceholder(len(statuses)-1) + `) ORDER BY id ASC`
	args := make([]any, 0, len(statuses))
	for _, s := range statuses {
		args = append(args, s)
	}

	rows, err := d.conn.Query(query, args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var docs []internal.DocumentRow
	for rows.Next() {
		var row internal.DocumentRow
		if err := rows.Scan(&row.ID, &row.Path, &row.Hash, &row.Status, &row.Error, &row.CreatedAt); err != nil {
			return nil, nil, err
		}
		docs = append(docs, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	records := make([]*report.Record, 0, len(docs))
	for _, doc := range docs {
		rec, err := d.GetRecord(doc.ID)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, rec)
	}
	return docs, records, nil
}

func (d *DB) InsertRun(traceID string, documentID int, timings map[string]float64, counts map[string]int) error {
	timingsJSON, _ := json.Marshal(timings)
	countsJSON, _ := json.Marshal(counts)
	_, err := d.conn.Exec(`INSERT INTO runs (traceId, documentId, timingsJson, countsJson) VALUES (?, ?, ?, ?)`, traceID, documentID, string(timingsJSON), string(countsJSON))
	return err
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func (d *DB) MustDocumentByPath(path string) (internal.DocumentRow, error) {
	row, err := d.GetDocumentByPath(path)
	if err != nil {
		return internal.DocumentRow{}, err
	}
	if row == nil {
		return internal.DocumentRow{}, fmt.Errorf("document not found: path=%s", path)
	}
	return *row, nil
}

func repeatPlaceholder(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += ", ?"
	}
	return out
}
