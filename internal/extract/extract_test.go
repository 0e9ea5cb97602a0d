package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/contractwatch/contractwatch/constants"
	"github.com/contractwatch/contractwatch/internal/common"
)

func TestExtractUnsupportedFormat(t *testing.T) {
	e := NewExtractor()
	for _, ct := range []string{"", "image/png", "application/zip"} {
		_, err := e.Extract([]byte("data"), ct)
		if !errors.Is(err, common.ErrUnsupportedFormat) {
			t.Errorf("content type %q: expected ErrUnsupportedFormat, got %v", ct, err)
		}
	}
}

func TestExtractPlainText(t *testing.T) {
	e := NewExtractor()
	res, err := e.Extract([]byte("hello contract"), "text/plain")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if res.Text != "hello contract" {
		t.Errorf("text: got %q", res.Text)
	}
	if res.PageCount != nil {
		t.Errorf("expected nil page count for plain text, got %d", *res.PageCount)
	}
}

func TestExtractPlainTextReplacesInvalidUTF8(t *testing.T) {
	e := NewExtractor()
	res, err := e.Extract([]byte{'a', 0xff, 'b'}, "text/plain; charset=utf-8")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if res.Text != "a�b" {
		t.Errorf("text: got %q", res.Text)
	}
}

func TestExtractCapsLongText(t *testing.T) {
	e := NewExtractor()
	long := strings.Repeat("x", MaxTextLength+1000)
	res, err := e.Extract([]byte(long), "text/plain")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.HasSuffix(res.Text, TruncationMarker) {
		t.Fatal("expected truncation marker suffix")
	}
	body := strings.TrimSuffix(res.Text, TruncationMarker)
	if len(body) != MaxTextLength {
		t.Errorf("truncated length: got %d, want %d", len(body), MaxTextLength)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("warnings: got %v", res.Warnings)
	}
}

func TestExtractCapKeepsRunesWhole(t *testing.T) {
	e := NewExtractor()
	// Multi-byte runes positioned so a naive byte cut would split one.
	long := strings.Repeat("é", MaxTextLength/2+10)
	res, err := e.Extract([]byte(long), "text/plain")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	body := strings.TrimSuffix(res.Text, TruncationMarker)
	for _, r := range body {
		if r == '�' {
			t.Fatal("cap split a rune")
		}
	}
	if len(body) > MaxTextLength {
		t.Errorf("body exceeds cap: %d", len(body))
	}
}

func TestExtractPDFMalformed(t *testing.T) {
	e := NewExtractor()
	for name, content := range map[string][]byte{
		"empty":   {},
		"garbage": []byte("not a pdf at all"),
	} {
		_, err := e.Extract(content, constants.ContentTypePDF)
		if !errors.Is(err, common.ErrMalformedSource) {
			t.Errorf("%s: expected ErrMalformedSource, got %v", name, err)
		}
	}
}

// makeDocx builds a minimal DOCX container from entry name to XML body.
func makeDocx(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

const docxNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`

func TestExtractDOCXParagraphsAndTables(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document ` + docxNS + `><w:body>
<w:p><w:r><w:t>First </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
<w:tbl>
  <w:tr><w:tc><w:p><w:r><w:t>Fee</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>100</w:t></w:r></w:p></w:tc></w:tr>
  <w:tr><w:tc><w:p><w:r><w:t>Term</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>12 months</w:t></w:r></w:p></w:tc></w:tr>
</w:tbl>
<w:p><w:r><w:t>After the table.</w:t></w:r></w:p>
</w:body></w:document>`

	e := NewExtractor()
	res, err := e.Extract(makeDocx(t, map[string]string{"word/document.xml": doc}), constants.ContentTypeDOCX)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	want := strings.Join([]string{
		"First paragraph.",
		"[Table]\nFee | 100\nTerm | 12 months",
		"After the table.",
	}, "\n\n")
	if res.Text != want {
		t.Errorf("text:\n got %q\nwant %q", res.Text, want)
	}
}

func TestExtractDOCXHeadersAndFooters(t *testing.T) {
	entries := map[string]string{
		"word/document.xml": `<w:document ` + docxNS + `><w:body>
<w:p><w:r><w:t>Body text.</w:t></w:r></w:p>
</w:body></w:document>`,
		"word/header1.xml": `<w:hdr ` + docxNS + `><w:p><w:r><w:t>Master</w:t></w:r><w:r><w:t>Agreement</w:t></w:r></w:p></w:hdr>`,
		"word/footer1.xml": `<w:ftr ` + docxNS + `><w:p><w:r><w:t>Page 1</w:t></w:r></w:p></w:ftr>`,
	}

	e := NewExtractor()
	res, err := e.Extract(makeDocx(t, entries), constants.ContentTypeDOCX)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	want := "[Header] Master Agreement\n\nBody text.\n\n[Footer] Page 1"
	if res.Text != want {
		t.Errorf("text:\n got %q\nwant %q", res.Text, want)
	}
}

func TestExtractDOCXNestedTableFoldsIntoCell(t *testing.T) {
	doc := `<w:document ` + docxNS + `><w:body>
<w:tbl>
  <w:tr><w:tc>
    <w:tbl><w:tr><w:tc><w:p><w:r><w:t>inner</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
    <w:p><w:r><w:t>outer</w:t></w:r></w:p>
  </w:tc></w:tr>
</w:tbl>
</w:body></w:document>`

	e := NewExtractor()
	res, err := e.Extract(makeDocx(t, map[string]string{"word/document.xml": doc}), constants.ContentTypeDOCX)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if res.Text != "[Table]\ninnerouter" {
		t.Errorf("text: got %q", res.Text)
	}
}

func TestExtractDOCXMalformed(t *testing.T) {
	e := NewExtractor()

	_, err := e.Extract([]byte("not a zip"), constants.ContentTypeDOCX)
	if !errors.Is(err, common.ErrMalformedSource) {
		t.Errorf("non-zip: expected ErrMalformedSource, got %v", err)
	}

	// Valid zip without the document part.
	content := makeDocx(t, map[string]string{"word/other.xml": "<x/>"})
	_, err = e.Extract(content, constants.ContentTypeDOCX)
	if !errors.Is(err, common.ErrMalformedSource) {
		t.Errorf("missing document.xml: expected ErrMalformedSource, got %v", err)
	}
}

func TestMapContentTypeToFormat(t *testing.T) {
	cases := map[string]constants.MediaFormat{
		"application/pdf":         constants.FormatPDF,
		constants.ContentTypeDOCX: constants.FormatDOCX,
		"application/docx":        constants.FormatDOCX,
		"text/plain":              constants.FormatText,
		"text/markdown":           constants.FormatText,
		"":                        "",
		"application/json":        "",
	}
	for ct, want := range cases {
		if got := constants.MapContentTypeToFormat(ct); got != want {
			t.Errorf("%q: got %q, want %q", ct, got, want)
		}
	}
}
