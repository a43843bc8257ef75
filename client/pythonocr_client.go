package client

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// PythonOCRClient talks to the Python OCR sidecar (pdfplumber + OCR),
// which produces better text for scanned lease schedules than local
// Tesseract. When the sidecar is not configured or unreachable the
// caller falls back to the local extraction paths.
type PythonOCRClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewPythonOCRClient(baseURL string) *PythonOCRClient {
	return &PythonOCRClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Available reports whether a sidecar URL is configured at all.
func (p *PythonOCRClient) Available() bool {
	return p.baseURL != ""
}

// ExtractText sends document bytes to the sidecar and returns the
// extracted text.
func (p *PythonOCRClient) ExtractText(documentData []byte, filename string) (string, error) {
	if !p.Available() {
		return "", fmt.Errorf("python OCR sidecar not configured")
	}

	payload := map[string]interface{}{
		"filename": filename,
		"document": base64.StdEncoding.EncodeToString(documentData),
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request payload: %w", err)
	}

	resp, err := p.httpClient.Post(p.baseURL+"/extract", "application/json", bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("failed to call python OCR sidecar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("python OCR sidecar returned status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Success       bool   `json:"success"`
		ExtractedText string `json:"extracted_text"`
		Error         string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode sidecar response: %w", err)
	}

	if !result.Success {
		return "", fmt.Errorf("python OCR sidecar failed: %s", result.Error)
	}

	log.Printf("Python OCR sidecar extracted %d characters", len(result.ExtractedText))
	return result.ExtractedText, nil
}
