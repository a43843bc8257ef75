package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// LeaseExtractionResponse is the final response for a lease extraction.
// RawText is returned so the UI can show the operator what the engine saw.
type LeaseExtractionResponse struct {
	ExtractionID string    `json:"extraction_id"`
	Data         LeaseData `json:"data"`
	RawText      string    `json:"raw_text,omitempty"`
	Method       string    `json:"method"`
	ProcessedAt  string    `json:"processed_at"`
}

// DocumentParseResponse wraps a companion-document parse. Fields holds
// the parsed record for the requested document type.
type DocumentParseResponse struct {
	ExtractionID string      `json:"extraction_id"`
	DocType      DocumentType `json:"doc_type"`
	Fields       interface{} `json:"fields"`
	ProcessedAt  string      `json:"processed_at"`
}

// IDVerificationResponse reports whether the identity number read from an
// uploaded ID document matches the number claimed for the surety.
type IDVerificationResponse struct {
	ClaimedID   string `json:"claimed_id"`
	DocumentID  string `json:"document_id"`
	Match       bool   `json:"match"`
	Method      string `json:"method"`
	ProcessedAt string `json:"processed_at"`
}
