package render

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// Renderer turns one source document into its full plain text. It is
// the input boundary of the pipeline: a render error is a document
// failure, everything downstream works on the returned text only.
type Renderer interface {
	RenderText(path string) (string, error)
}

type PDFRenderer struct{}

func NewPDFRenderer() PDFRenderer {
	return PDFRenderer{}
}

func (PDFRenderer) RenderText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Text(content)
}

// Text concatenates the plain text of every page. Pages that fail text
// extraction are skipped; only an unreadable document is an error.
func Text(content []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}
