package config

import (
	"github.com/spf13/viper"
)

const (
	DefaultPort           = "8080"
	DefaultMaxFileSize    = 10 * 1024 * 1024 // 10 MB
	DefaultEscalationRate = "6"
	DefaultMinRentAmount  = 1000.0
)

// Config holds all configuration for the lease extraction service.
// DefaultEscalationRate and MinRentAmount are the engine's two tunable
// heuristics: the annual escalation applied to projected years, and the
// floor below which a bare rent amount is treated as noise.
type Config struct {
	ServerPort        string
	MaxFileSize       int64
	TesseractDataPath string
	PythonOCRURL      string

	DefaultEscalationRate string
	MinRentAmount         float64
}

// LoadConfig reads configuration from the environment with defaults.
func LoadConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", DefaultPort)
	v.SetDefault("MAX_FILE_SIZE", DefaultMaxFileSize)
	v.SetDefault("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata/")
	v.SetDefault("PYTHON_OCR_URL", "")
	v.SetDefault("DEFAULT_ESCALATION_RATE", DefaultEscalationRate)
	v.SetDefault("MIN_RENT_AMOUNT", DefaultMinRentAmount)

	return &Config{
		ServerPort:            v.GetString("SERVER_PORT"),
		MaxFileSize:           v.GetInt64("MAX_FILE_SIZE"),
		TesseractDataPath:     v.GetString("TESSDATA_PREFIX"),
		PythonOCRURL:          v.GetString("PYTHON_OCR_URL"),
		DefaultEscalationRate: v.GetString("DEFAULT_ESCALATION_RATE"),
		MinRentAmount:         v.GetFloat64("MIN_RENT_AMOUNT"),
	}
}
