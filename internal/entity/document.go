package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/contractwatch/contractwatch/constants"
)

// Document represents an uploaded contract document for data transfer
// between layers.
type Document struct {
	ID               uuid.UUID                  `json:"id"`
	ContractID       uuid.UUID                  `json:"contract_id"`
	Filename         string                     `json:"filename"`
	ContentType      string                     `json:"content_type"`
	BlobKey          string                     `json:"blob_key"`
	DocumentType     constants.DocumentType     `json:"document_type"`
	Position         int                        `json:"position"`
	ExtractionStatus constants.ExtractionStatus `json:"extraction_status"`
	ExtractedText    *string                    `json:"extracted_text,omitempty"`
	PageCount        *int                       `json:"page_count,omitempty"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}

func (d *Document) Completed() bool {
	return d.ExtractionStatus == constants.ExtractionCompleted
}

func (d *Document) Processing() bool {
	return d.ExtractionStatus == constants.ExtractionProcessing
}

// Text returns the extracted text or "".
func (d *Document) Text() string {
	if d.ExtractedText == nil {
		return ""
	}
	return *d.ExtractedText
}
