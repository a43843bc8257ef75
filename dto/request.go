package dto

import "errors"

// LeaseParseRequest carries raw lease text supplied by the caller,
// e.g. pasted from another system instead of uploaded as a PDF.
type LeaseParseRequest struct {
	Text string `json:"text" binding:"required"`
}

type DocumentType string

const (
	DocTypeCIPC DocumentType = "cipc"
	DocTypeID   DocumentType = "id"
	DocTypeFICA DocumentType = "fica"
)

// DocumentParseRequest carries text from a companion document (CIPC
// registration certificate, ID document or FICA form).
type DocumentParseRequest struct {
	Text    string       `json:"text" binding:"required"`
	DocType DocumentType `json:"doc_type" binding:"required"`
}

func (r *DocumentParseRequest) Validate() error {
	switch r.DocType {
	case DocTypeCIPC, DocTypeID, DocTypeFICA:
		return nil
	}
	return ErrUnknownDocumentType
}

var (
	ErrUnknownDocumentType = errors.New("unknown document type")
	ErrNoFileProvided      = errors.New("no file provided")
)
