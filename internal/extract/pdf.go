package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/contractwatch/contractwatch/internal/common"
)

// extractPDF pulls text page by page in order and records the page count.
// Anything the reader cannot parse is a malformed source: no partial result.
func extractPDF(content []byte) (res Result, err error) {
	if len(content) == 0 {
		return Result{}, fmt.Errorf("%w: empty pdf", common.ErrMalformedSource)
	}

	// The pdf package panics on some corrupt cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: pdf reader panic: %v", common.ErrMalformedSource, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return Result{}, fmt.Errorf("%w: open pdf: %v", common.ErrMalformedSource, err)
	}

	numPages := reader.NumPage()
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return Result{}, fmt.Errorf("%w: extract page %d: %v", common.ErrMalformedSource, i, err)
		}
		pages = append(pages, text)
	}

	return Result{Text: strings.Join(pages, "\n\n"), PageCount: &numPages}, nil
}
