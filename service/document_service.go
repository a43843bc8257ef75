package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/benavprops/lease-extraction-service/dto"
	"github.com/benavprops/lease-extraction-service/utils"
	"github.com/benavprops/lease-extraction-service/utils/ficadoc"
)

// DocumentService parses companion documents that accompany a lease:
// CIPC registration certificates, ID documents and FICA forms.
type DocumentService struct{}

func NewDocumentService() *DocumentService {
	return &DocumentService{}
}

// Parse normalizes the supplied text and dispatches to the parser for
// the requested document type.
func (s *DocumentService) Parse(text string, docType dto.DocumentType) (*dto.DocumentParseResponse, error) {
	normalized := utils.NormalizeText(text)

	var fields interface{}
	switch docType {
	case dto.DocTypeCIPC:
		fields = ficadoc.ParseCIPC(normalized)
	case dto.DocTypeID:
		fields = ficadoc.ParseID(normalized)
	case dto.DocTypeFICA:
		fields = ficadoc.ParseFICA(normalized)
	default:
		return nil, dto.ErrUnknownDocumentType
	}

	return &dto.DocumentParseResponse{
		ExtractionID: uuid.New().String(),
		DocType:      docType,
		Fields:       fields,
		ProcessedAt:  time.Now().Format(time.RFC3339),
	}, nil
}
