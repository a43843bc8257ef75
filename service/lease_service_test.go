package service

import (
	"testing"

	"github.com/benavprops/lease-extraction-service/utils"
	"github.com/stretchr/testify/assert"
)

func TestParseTextReturnsDefaultedRecord(t *testing.T) {
	service := &LeaseService{opts: utils.DefaultParseOptions()}

	response := service.ParseText("")

	assert.NotEmpty(t, response.ExtractionID)
	assert.Equal(t, MethodRawText, response.Method)
	assert.Equal(t, 3, response.Data.Lease.Years)
	assert.Equal(t, "6", response.Data.Financial.EscalationRate)
	assert.Equal(t, "750.00", response.Data.Financial.LeaseFee)
}

func TestParseTextProjectsRent(t *testing.T) {
	service := &LeaseService{opts: utils.DefaultParseOptions()}

	response := service.ParseText("Basic Rent: R22,730.00\nEscalation: 6%\n")

	assert.Equal(t, "22730.00", response.Data.Financial.Year1.BasicRent)
	assert.Equal(t, "24093.80", response.Data.Financial.Year2.BasicRent)
	assert.Equal(t, "25539.43", response.Data.Financial.Year3.BasicRent)
}
