package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTextCollapsesWhitespace(t *testing.T) {
	text := "Unit No\t\t4B\r\nArea    120.50\r\n\r\n\r\nPermitted Usage"

	normalized := NormalizeText(text)

	assert.Equal(t, "Unit No 4B\nArea 120.50\n\nPermitted Usage", normalized)
}

func TestNormalizeTextIdempotent(t *testing.T) {
	text := "Owner / Lessor\r\nBenav   Properties (Pty) Ltd\r\n\r\n\r\n\r\nTelephone 011 234 5678"

	once := NormalizeText(text)
	twice := NormalizeText(once)

	assert.Equal(t, once, twice)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Benav Properties (Pty) Ltd", CleanText("  Benav   Properties (Pty) Ltd.,  "))
	assert.Equal(t, "", CleanText(""))
}

func TestCleanAddress(t *testing.T) {
	address := "105 Western Services Road\n\nWoodmead Office Park\nSandton"

	assert.Equal(t, "105 Western Services Road, Woodmead Office Park, Sandton", CleanAddress(address))
}
