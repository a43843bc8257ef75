package service

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/benavprops/lease-extraction-service/client"
	"github.com/benavprops/lease-extraction-service/config"
	"github.com/benavprops/lease-extraction-service/dto"
	"github.com/benavprops/lease-extraction-service/utils"
)

// Extraction methods reported back to the caller, mirroring the upstream
// preference order: digital PDF text, Python OCR sidecar, local Tesseract.
const (
	MethodPDFText   = "pdf-text"
	MethodPythonOCR = "python-ocr"
	MethodTesseract = "tesseract-ocr"
	MethodRawText   = "raw-text"
)

// A digital extraction shorter than this is treated as a scan with a
// broken text layer and handed to the OCR paths instead.
const minUsableTextLength = 100

type LeaseService struct {
	pdfProcessor    PDFProcessor
	pythonOCR       *client.PythonOCRClient
	tesseractClient *client.TesseractClient
	opts            utils.ParseOptions
}

func NewLeaseService(
	pdfProcessor PDFProcessor,
	pythonOCR *client.PythonOCRClient,
	tesseractClient *client.TesseractClient,
	cfg *config.Config,
) *LeaseService {
	return &LeaseService{
		pdfProcessor:    pdfProcessor,
		pythonOCR:       pythonOCR,
		tesseractClient: tesseractClient,
		opts: utils.ParseOptions{
			DefaultEscalationRate: cfg.DefaultEscalationRate,
			MinRentAmount:         cfg.MinRentAmount,
		},
	}
}

// ParseText runs the extraction engine over caller-supplied text. The
// engine is total: whatever the text looks like, the caller gets back a
// fully populated record.
func (s *LeaseService) ParseText(text string) *dto.LeaseExtractionResponse {
	data := utils.ParseLeaseControl(text, s.opts)

	return &dto.LeaseExtractionResponse{
		ExtractionID: uuid.NewString(),
		Data:         data,
		Method:       MethodRawText,
		ProcessedAt:  time.Now().UTC().Format(time.RFC3339),
	}
}

// ExtractFromUpload turns an uploaded lease document into text and runs
// the engine over it. Only a failure to get any text at all is an error;
// an extraction that finds no fields still succeeds with defaults.
func (s *LeaseService) ExtractFromUpload(fileHeader *multipart.FileHeader) (*dto.LeaseExtractionResponse, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", fileHeader.Filename, err)
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileHeader.Filename, err)
	}

	text, method, err := s.extractText(fileBytes, fileHeader)
	if err != nil {
		return nil, err
	}

	data := utils.ParseLeaseControl(text, s.opts)

	return &dto.LeaseExtractionResponse{
		ExtractionID: uuid.NewString(),
		Data:         data,
		RawText:      text,
		Method:       method,
		ProcessedAt:  time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// extractText tries the extraction paths in preference order and reports
// which one produced the text.
func (s *LeaseService) extractText(fileBytes []byte, fileHeader *multipart.FileHeader) (string, string, error) {
	isPDF := strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf")

	if isPDF {
		text, err := s.pdfProcessor.ExtractText(fileBytes)
		if err == nil && len(strings.TrimSpace(text)) >= minUsableTextLength {
			log.Printf("Extracted %d characters from digital PDF text", len(text))
			return text, MethodPDFText, nil
		}
		if err != nil {
			log.Printf("Digital PDF text extraction failed: %v", err)
		} else {
			log.Printf("Digital PDF text too short (%d chars), treating as scan", len(text))
		}
	}

	if s.pythonOCR.Available() {
		text, err := s.pythonOCR.ExtractText(fileBytes, fileHeader.Filename)
		if err == nil && strings.TrimSpace(text) != "" {
			return text, MethodPythonOCR, nil
		}
		log.Printf("Python OCR failed, falling back to Tesseract: %v", err)
	}

	if isPDF {
		text, err := s.ocrScannedPDF(fileBytes)
		if err != nil {
			return "", "", fmt.Errorf("all extraction methods failed for %s: %w", fileHeader.Filename, err)
		}
		return text, MethodTesseract, nil
	}

	text, err := s.tesseractClient.ExtractTextFromFile(fileHeader)
	if err != nil {
		return "", "", fmt.Errorf("all extraction methods failed for %s: %w", fileHeader.Filename, err)
	}
	return text, MethodTesseract, nil
}

// ocrScannedPDF pulls the page images out of a scanned PDF and runs
// Tesseract over each, joining the page texts.
func (s *LeaseService) ocrScannedPDF(fileBytes []byte) (string, error) {
	images, err := s.pdfProcessor.ExtractImages(fileBytes)
	if err != nil {
		return "", fmt.Errorf("failed to extract page images: %w", err)
	}
	if len(images) == 0 {
		return "", fmt.Errorf("no page images found in PDF")
	}

	var fullText strings.Builder
	for idx, img := range images {
		buf := new(bytes.Buffer)
		if err := png.Encode(buf, img); err != nil {
			log.Printf("Failed to encode page %d: %v", idx+1, err)
			continue
		}

		pageText, err := s.tesseractClient.ExtractTextFromImageBytes(buf.Bytes(), ".png")
		if err != nil {
			log.Printf("Page %d OCR failed: %v", idx+1, err)
			continue
		}

		fullText.WriteString(pageText)
		fullText.WriteString("\n")
	}

	if strings.TrimSpace(fullText.String()) == "" {
		return "", fmt.Errorf("OCR produced no text")
	}
	return fullText.String(), nil
}
