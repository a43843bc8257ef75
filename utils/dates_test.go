package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2026-03-01", NormalizeDate("01/03/2026"))
	assert.Equal(t, "2026-03-01", NormalizeDate("1/3/2026"))
	assert.Equal(t, "2026-03-01", NormalizeDate("2026-03-01"))
	assert.Equal(t, "2026-03-01", NormalizeDate("01 MARCH 2026"))
	assert.Equal(t, "2026-03-01", NormalizeDate("1 March 2026"))
}

func TestNormalizeDateRejectsGarbage(t *testing.T) {
	assert.Equal(t, "", NormalizeDate(""))
	assert.Equal(t, "", NormalizeDate("01 SMARCH 2026"))
	assert.Equal(t, "", NormalizeDate("not a date"))
}

func TestISOToSlashRoundTrip(t *testing.T) {
	assert.Equal(t, "28/02/2029", ISOToSlash("2029-02-28"))
	assert.Equal(t, "2029-02-28", NormalizeDate(ISOToSlash("2029-02-28")))
	assert.Equal(t, "", ISOToSlash("28/02/2029"))
}

func TestAddYearsISO(t *testing.T) {
	assert.Equal(t, "2028-03-01", AddYearsISO("2026-03-01", 2))
	assert.Equal(t, "", AddYearsISO("garbage", 2))
}

func TestAnniversaryEndHandlesLeapYear(t *testing.T) {
	// Year 2 of a lease starting 1 March 2026 ends the day before the
	// second anniversary, which falls in the 2028 leap February.
	assert.Equal(t, "2028-02-29", anniversaryEnd("2026-03-01", 2))
	assert.Equal(t, "2027-02-28", anniversaryEnd("2026-03-01", 1))
}
