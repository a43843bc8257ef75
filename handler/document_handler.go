package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/benavprops/lease-extraction-service/dto"
	"github.com/benavprops/lease-extraction-service/service"
)

type DocumentHandler struct {
	documentService *service.DocumentService
	idVerifyService *service.IDVerifyService
}

func NewDocumentHandler(documentService *service.DocumentService, idVerifyService *service.IDVerifyService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		idVerifyService: idVerifyService,
	}
}

// ParseDocument handles POST /documents/parse: text of a companion
// document plus its type (cipc, id or fica).
func (h *DocumentHandler) ParseDocument(c *gin.Context) {
	var request dto.DocumentParseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "Document text and type are required", err)
		return
	}

	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid document type", err)
		return
	}

	response, err := h.documentService.Parse(request.Text, request.DocType)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to parse document", err)
		return
	}

	log.Printf("Document parse %s (%s) completed", response.ExtractionID, response.DocType)
	c.JSON(http.StatusOK, response)
}

// VerifyID handles POST /documents/verify-id: a multipart upload of an
// ID document plus the identity number claimed for the surety.
func (h *DocumentHandler) VerifyID(c *gin.Context) {
	claimedID := c.PostForm("claimed_id")
	if claimedID == "" {
		h.sendError(c, http.StatusBadRequest, "claimed_id is required", nil)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", dto.ErrNoFileProvided)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to open uploaded file", err)
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to read uploaded file", err)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")

	response, err := h.idVerifyService.Verify(fileData, mimeType, claimedID)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to verify ID document", err)
		return
	}

	log.Printf("ID verification via %s: match=%t", response.Method, response.Match)
	c.JSON(http.StatusOK, response)
}

// sendError sends a structured error response
func (h *DocumentHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "DOCUMENT_PARSE_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
