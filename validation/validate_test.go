package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePlaca(t *testing.T) {
	placa, format := ValidatePlaca("abc-1234")
	assert.Equal(t, "ABC1234", placa)
	assert.Equal(t, PlacaFormatAntiga, format)

	placa, format = ValidatePlaca("abc1d23")
	assert.Equal(t, "ABC1D23", placa)
	assert.Equal(t, PlacaFormatMercosul, format)

	_, format = ValidatePlaca("ab12345")
	assert.Equal(t, PlacaFormatInvalida, format)

	_, format = ValidatePlaca("")
	assert.Equal(t, PlacaFormatInvalida, format)
}

func TestFormatPlaca(t *testing.T) {
	assert.Equal(t, "ABC-1234", FormatPlaca("abc1234"))
	assert.Equal(t, "ABC1D23", FormatPlaca("abc1d23"))

	// formatar e normalizar de novo devolve a mesma placa
	assert.Equal(t, "ABC1234", NormalizePlaca(FormatPlaca("ABC1234")))
}

func TestValidateCPF(t *testing.T) {
	assert.True(t, ValidateCPF("529.982.247-25"))
	assert.True(t, ValidateCPF("52998224725"))

	assert.False(t, ValidateCPF("529.982.247-26"))
	assert.False(t, ValidateCPF("111.111.111-11"))
	assert.False(t, ValidateCPF("1234567890"))
	assert.False(t, ValidateCPF(""))
}

func TestValidateCNPJ(t *testing.T) {
	assert.True(t, ValidateCNPJ("11.222.333/0001-81"))
	assert.True(t, ValidateCNPJ("11222333000181"))

	assert.False(t, ValidateCNPJ("11.222.333/0001-82"))
	assert.False(t, ValidateCNPJ("00000000000000"))
	assert.False(t, ValidateCNPJ("112223330001"))
}

func TestValidateDocument(t *testing.T) {
	assert.True(t, ValidateDocument("529.982.247-25"))
	assert.True(t, ValidateDocument("11.222.333/0001-81"))
	assert.False(t, ValidateDocument("12345"))
}

func TestNormalizeDocument(t *testing.T) {
	assert.Equal(t, "52998224725", NormalizeDocument("529.982.247-25"))
	assert.Equal(t, "", NormalizeDocument("abc"))
}
