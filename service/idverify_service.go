package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/benavprops/lease-extraction-service/client"
	"github.com/benavprops/lease-extraction-service/dto"
	"github.com/benavprops/lease-extraction-service/utils"
	"github.com/benavprops/lease-extraction-service/utils/ficadoc"
)

// IDVerifyService cross-checks the identity number claimed for a surety
// against an uploaded ID document. Smart ID cards carry a machine-readable
// code which is tried first; failing that the document is OCRed and the
// number recovered from the text.
type IDVerifyService struct {
	pdfProcessor    PDFProcessor
	tesseractClient *client.TesseractClient
}

func NewIDVerifyService(pdfProcessor PDFProcessor, tesseractClient *client.TesseractClient) *IDVerifyService {
	return &IDVerifyService{
		pdfProcessor:    pdfProcessor,
		tesseractClient: tesseractClient,
	}
}

var identityDigitsRegex = regexp.MustCompile(`\d{13}`)

// Verify reads the identity number out of the document bytes and compares
// it with the claimed number.
func (s *IDVerifyService) Verify(fileData []byte, mimeType, claimedID string) (*dto.IDVerificationResponse, error) {
	images, err := s.documentImages(fileData, mimeType)
	if err != nil {
		return nil, err
	}

	documentID, method := s.readIdentityNumber(images)

	return &dto.IDVerificationResponse{
		ClaimedID:   claimedID,
		DocumentID:  documentID,
		Match:       documentID != "" && documentID == claimedID,
		Method:      method,
		ProcessedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *IDVerifyService) documentImages(fileData []byte, mimeType string) ([]image.Image, error) {
	if strings.Contains(mimeType, "pdf") {
		images, err := s.pdfProcessor.ExtractImages(fileData)
		if err != nil {
			return nil, fmt.Errorf("failed to extract images from PDF: %w", err)
		}
		if len(images) == 0 {
			return nil, fmt.Errorf("no images found in PDF")
		}
		return images, nil
	}

	img, err := decodeImage(fileData, mimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return []image.Image{img}, nil
}

// readIdentityNumber tries the QR path on each page, then falls back to
// OCR plus the text-side identity heuristics.
func (s *IDVerifyService) readIdentityNumber(images []image.Image) (string, string) {
	for _, img := range images {
		if id := identityFromQR(img); id != "" {
			return id, "qr"
		}
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

	parsed := ficadoc.ParseID(utils.NormalizeText(fullText.String()))
	return parsed.IDNumber, "ocr"
}

// identityFromQR decodes a QR code on the document, if any, and pulls the
// first 13-digit span out of its payload.
func identityFromQR(img image.Image) string {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return ""
	}

	reader := qrcode.NewQRCodeReader()
	result, err := reader.Decode(bmp, nil)
	if err != nil {
		return ""
	}

	return identityDigitsRegex.FindString(result.GetText())
}

func decodeImage(fileData []byte, mimeType string) (image.Image, error) {
	switch {
	case strings.Contains(mimeType, "png"):
		return png.Decode(bytes.NewReader(fileData))
	case strings.Contains(mimeType, "jpeg"), strings.Contains(mimeType, "jpg"):
		return jpeg.Decode(bytes.NewReader(fileData))
	}

	img, _, err := image.Decode(bytes.NewReader(fileData))
	return img, err
}
