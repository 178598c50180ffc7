package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlexibleDatetime(t *testing.T) {
	parsed, err := ParseFlexibleDatetime("2025-03-10T14:30")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC), parsed)

	parsed, err = ParseFlexibleDatetime("10/03/2025 14:30")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC), parsed)

	parsed, err = ParseFlexibleDatetime("2025-03-10")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseFlexibleDatetime("")
	assert.Error(t, err)

	_, err = ParseFlexibleDatetime("10-03-2025")
	assert.Error(t, err)
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "relato limpo", SanitizeText("<script>relato</script> limpo", 100))
	assert.Equal(t, "sem aspas", SanitizeText(`"sem" 'aspas'`, 100))

	longo := SanitizeText("abcdefghij", 5)
	assert.Equal(t, "abcde", longo)
}

func TestParseStringToInt64(t *testing.T) {
	value, err := ParseStringToInt64("42")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), value)

	value, err = ParseStringToInt64("")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), value)

	_, err = ParseStringToInt64("abc")
	assert.Error(t, err)
}
