package internal

type DocumentStatus string

const (
	StatusScanned   DocumentStatus = "scanned"
	StatusProcessed DocumentStatus = "processed"
	StatusFailed    DocumentStatus = "failed"
	StatusExported  DocumentStatus = "exported"
)

type FieldKind string

const (
	FieldNumber FieldKind = "number"
	FieldInt    FieldKind = "int"
	FieldText   FieldKind = "text"
	FieldAbsent FieldKind = "absent"
)

type DocumentRow struct {
	ID        int
	Path      string
	Hash      string
	Status    string
	Error     *string
	CreatedAt string
}

type FieldRow struct {
	DocumentID int
	Position   int
	Key        string
	Kind       string
	Num        *float64
	Text       *string
}

func StringPtr(v string) *string { return &v }

func FloatPtr(v float64) *float64 { return &v }
