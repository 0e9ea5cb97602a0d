package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/contractwatch/contractwatch/internal/common"
)

const docxDocumentPath = "word/document.xml"

// extractDOCX walks the document body in order, preserving the original
// interleaving of paragraphs and tables. Tables render as a "[Table]" line
// followed by pipe-joined rows. Headers and footers live in separate zip
// entries and are prefixed with "[Header]"/"[Footer]". DOCX has no reliable
// page count.
func extractDOCX(content []byte) (Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return Result{}, fmt.Errorf("%w: docx is not a zip: %v", common.ErrMalformedSource, err)
	}

	var parts []string
	parts = append(parts, headerFooterParts(zr, "header")...)

	body, err := documentBodyParts(zr)
	if err != nil {
		return Result{}, err
	}
	parts = append(parts, body...)

	parts = append(parts, headerFooterParts(zr, "footer")...)

	return Result{Text: strings.Join(parts, "\n\n")}, nil
}

// documentBodyParts parses word/document.xml and returns one part per
// top-level paragraph or table, in document order.
func documentBodyParts(zr *zip.Reader) ([]string, error) {
	f := findZipEntry(zr, docxDocumentPath)
	if f == nil {
		return nil, fmt.Errorf("%w: %s not found", common.ErrMalformedSource, docxDocumentPath)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", common.ErrMalformedSource, docxDocumentPath, err)
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	var parts []string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", common.ErrMalformedSource, docxDocumentPath, err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "p":
			text, err := collectParagraph(dec)
			if err != nil {
				return nil, fmt.Errorf("%w: parse paragraph: %v", common.ErrMalformedSource, err)
			}
			if text != "" {
				parts = append(parts, text)
			}
		case "tbl":
			table, err := collectTable(dec)
			if err != nil {
				return nil, fmt.Errorf("%w: parse table: %v", common.ErrMalformedSource, err)
			}
			if table != "" {
				parts = append(parts, table)
			}
		}
	}
	return parts, nil
}

// collectParagraph consumes tokens until the enclosing <w:p> closes and
// returns its runs concatenated.
func collectParagraph(dec *xml.Decoder) (string, error) {
	var b strings.Builder
	depth := 1
	inText := false
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			depth--
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return strings.TrimSpace(b.String()), nil
}

// collectTable consumes tokens until the enclosing <w:tbl> closes. Rows and
// cells are tracked at the outermost table level only; text from nested
// tables folds into the containing cell.
func collectTable(dec *xml.Decoder) (string, error) {
	var (
		rows     [][]string
		cell     strings.Builder
		inCell   bool
		inText   bool
		tblDepth = 1
	)
	for tblDepth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tblDepth++
			case "tr":
				if tblDepth == 1 {
					rows = append(rows, nil)
				}
			case "tc":
				if tblDepth == 1 {
					inCell = true
					cell.Reset()
				}
			case "t":
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				tblDepth--
			case "tc":
				if tblDepth == 1 && inCell {
					inCell = false
					if len(rows) > 0 {
						rows[len(rows)-1] = append(rows[len(rows)-1], strings.TrimSpace(cell.String()))
					}
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText && inCell {
				cell.Write(t)
			}
		}
	}

	if len(rows) == 0 {
		return "", nil
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, "[Table]")
	for _, row := range rows {
		lines = append(lines, strings.Join(row, " | "))
	}
	return strings.Join(lines, "\n"), nil
}

// headerFooterParts extracts word/header*.xml or word/footer*.xml entries,
// sorted by name, each prefixed with its label. Unreadable entries are
// skipped: the body extraction surfaces the real error for a broken zip.
func headerFooterParts(zr *zip.Reader, kind string) []string {
	label := "[" + strings.ToUpper(kind[:1]) + kind[1:] + "]"
	prefix := "word/" + kind

	var entries []*zip.File
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, prefix) && strings.HasSuffix(f.Name, ".xml") {
			entries = append(entries, f)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	var parts []string
	for _, f := range entries {
		text, err := allTextNodes(f)
		if err != nil {
			continue
		}
		if text != "" {
			parts = append(parts, label+" "+text)
		}
	}
	return parts
}

// allTextNodes joins every <w:t> in the entry with single spaces.
func allTextNodes(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	var texts []string
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				texts = append(texts, string(t))
			}
		}
	}
	return strings.TrimSpace(strings.Join(texts, " ")), nil
}

func findZipEntry(zr *zip.Reader, name string) *zip.File {
	for _, f := range zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}
