package service

import (
	"testing"

	"github.com/benavprops/lease-extraction-service/dto"
	"github.com/benavprops/lease-extraction-service/utils/ficadoc"
	"github.com/stretchr/testify/assert"
)

func TestDocumentServiceParseDispatch(t *testing.T) {
	service := NewDocumentService()

	response, err := service.Parse("ID Number: 8001015009087", dto.DocTypeID)

	assert.NoError(t, err)
	assert.Equal(t, dto.DocTypeID, response.DocType)
	assert.NotEmpty(t, response.ExtractionID)

	fields, ok := response.Fields.(ficadoc.IDData)
	assert.True(t, ok)
	assert.Equal(t, "8001015009087", fields.IDNumber)
}

func TestDocumentServiceRejectsUnknownType(t *testing.T) {
	service := NewDocumentService()

	_, err := service.Parse("whatever", dto.DocumentType("passport"))

	assert.ErrorIs(t, err, dto.ErrUnknownDocumentType)
}
