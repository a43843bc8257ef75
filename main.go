package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/benavprops/lease-extraction-service/client"
	"github.com/benavprops/lease-extraction-service/config"
	"github.com/benavprops/lease-extraction-service/handler"
	"github.com/benavprops/lease-extraction-service/service"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Tesseract v5 reads this from the environment, not the API
	os.Setenv("TESSDATA_PREFIX", cfg.TesseractDataPath)
	log.Println("TESSDATA_PREFIX set to:", os.Getenv("TESSDATA_PREFIX"))

	// Initialize Tesseract client
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize Python OCR sidecar client (optional, URL may be empty)
	pythonOCR := client.NewPythonOCRClient(cfg.PythonOCRURL)

	// Initialize service layer
	leaseService := service.NewLeaseService(pdfProcessor, pythonOCR, tesseractClient, cfg)
	documentService := service.NewDocumentService()
	idVerifyService := service.NewIDVerifyService(pdfProcessor, tesseractClient)

	// Initialize handler layer
	leaseHandler := handler.NewLeaseHandler(leaseService)
	documentHandler := handler.NewDocumentHandler(documentService, idVerifyService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Lease Extraction Service",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		lease := api.Group("/lease")
		{
			lease.POST("/extract", leaseHandler.ExtractLease)
			lease.POST("/parse", leaseHandler.ParseLease)
		}

		documents := api.Group("/documents")
		{
			documents.POST("/parse", documentHandler.ParseDocument)
			documents.POST("/verify-id", documentHandler.VerifyID)
		}
	}

	// Start server
	log.Printf("Starting Lease Extraction Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
