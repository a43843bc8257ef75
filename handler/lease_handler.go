package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/benavprops/lease-extraction-service/dto"
	"github.com/benavprops/lease-extraction-service/service"
)

type LeaseHandler struct {
	leaseService *service.LeaseService
}

func NewLeaseHandler(leaseService *service.LeaseService) *LeaseHandler {
	return &LeaseHandler{
		leaseService: leaseService,
	}
}

// ExtractLease handles POST /lease/extract: a multipart upload of one
// lease control schedule document.
func (h *LeaseHandler) ExtractLease(c *gin.Context) {
	log.Println("Received lease extraction request")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", dto.ErrNoFileProvided)
		return
	}

	log.Printf("Processing %s (%d bytes)", fileHeader.Filename, fileHeader.Size)

	response, err := h.leaseService.ExtractFromUpload(fileHeader)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to extract lease document", err)
		return
	}

	log.Printf("Lease extraction %s completed via %s", response.ExtractionID, response.Method)
	c.JSON(http.StatusOK, response)
}

// ParseLease handles POST /lease/parse: raw lease text pasted by the
// operator. Parsing is total, so this endpoint cannot fail once the
// request itself is well-formed.
func (h *LeaseHandler) ParseLease(c *gin.Context) {
	var request dto.LeaseParseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "Lease text is required", err)
		return
	}

	response := h.leaseService.ParseText(request.Text)

	log.Printf("Lease parse %s completed", response.ExtractionID)
	c.JSON(http.StatusOK, response)
}

// sendError sends a structured error response
func (h *LeaseHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "EXTRACTION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
