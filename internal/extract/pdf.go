package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFSource extracts text from text-based PDFs. Image-only pages yield no
// text; OCR is out of scope, callers treat an empty result as a document
// with no invoices.
type PDFSource struct{}

// NewPDFSource returns a PDF text source.
func NewPDFSource() *PDFSource {
	return &PDFSource{}
}

// Extract reads every page of the PDF and returns its text, words joined
// with single spaces and rows with newlines. A page that fails to decode
// contributes nothing rather than failing the document.
func (s *PDFSource) Extract(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		rows, err := p.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			for j, word := range row.Content {
				if j > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(word.S)
			}
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}
