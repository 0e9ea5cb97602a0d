package constants

import "strings"

// MediaFormat is the coarse format tag stored on a document and used to pick
// a text extraction strategy.
type MediaFormat string

const (
	FormatPDF  MediaFormat = "PDF"
	FormatDOCX MediaFormat = "DOCX"
	FormatText MediaFormat = "TEXT"
)

// MediaFormats holds the allowed values for the format field on documents.
var MediaFormats = []string{string(FormatPDF), string(FormatDOCX), string(FormatText)}

// ContentTypePDF and friends are the upload content types we accept.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeText = "text/plain"
)

// MapContentTypeToFormat maps a declared media type to a format tag.
// Returns "" for blank or unrecognized types; callers treat that as
// a non-retryable unsupported-format condition.
func MapContentTypeToFormat(contentType string) MediaFormat {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	switch {
	case ct == "":
		return ""
	case ct == ContentTypePDF:
		return FormatPDF
	case strings.Contains(ct, "wordprocessingml"), strings.Contains(ct, "docx"):
		return FormatDOCX
	case strings.HasPrefix(ct, "text/"):
		return FormatText
	default:
		return ""
	}
}
