// Package extract converts uploaded contract documents to plain text.
// It is pure and stateless: bytes plus a declared media type in, UTF-8
// text (and a page count when the format has one) out.
package extract

import (
	"fmt"

	"github.com/contractwatch/contractwatch/constants"
	"github.com/contractwatch/contractwatch/internal/common"
)

// MaxTextLength caps extracted text to keep DB rows and downstream prompt
// sizes bounded.
const MaxTextLength = 500_000

// TruncationMarker is appended whenever the cap is applied.
const TruncationMarker = "\n\n[Text truncated at 500000 characters]"

// Result is the outcome of one extraction.
type Result struct {
	Text      string
	PageCount *int // nil for formats without a page concept
	Warnings  []string
}

// TextExtractor converts a document's bytes to text.
type TextExtractor interface {
	Extract(content []byte, contentType string) (Result, error)
}

type extractFunc func(content []byte) (Result, error)

// Extractor dispatches on the declared media type. Adding a format means
// adding one entry to the table.
type Extractor struct {
	formats map[constants.MediaFormat]extractFunc
}

func NewExtractor() *Extractor {
	return &Extractor{
		formats: map[constants.MediaFormat]extractFunc{
			constants.FormatPDF:  extractPDF,
			constants.FormatDOCX: extractDOCX,
			constants.FormatText: extractPlain,
		},
	}
}

// Extract runs the format-specific extraction and applies the length cap.
// Blank or unrecognized media types fail with common.ErrUnsupportedFormat;
// unreadable containers fail with common.ErrMalformedSource. An empty
// result is not an error.
func (e *Extractor) Extract(content []byte, contentType string) (Result, error) {
	format := constants.MapContentTypeToFormat(contentType)
	if format == "" {
		return Result{}, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, contentType)
	}
	fn, ok := e.formats[format]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, contentType)
	}

	res, err := fn(content)
	if err != nil {
		return Result{}, err
	}
	if len(res.Text) > MaxTextLength {
		res.Text = truncateUTF8(res.Text, MaxTextLength) + TruncationMarker
		res.Warnings = append(res.Warnings, fmt.Sprintf("text truncated at %d characters", MaxTextLength))
	}
	return res, nil
}

// truncateUTF8 cuts s to at most max bytes without splitting a rune.
func truncateUTF8(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && s[max]&0xC0 == 0x80 {
		max--
	}
	return s[:max]
}
