package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

func Validate(data interface{}) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(data)
}

// PlacaFormat identifica o padrão da placa reconhecido.
type PlacaFormat string

const (
	PlacaFormatInvalida PlacaFormat = ""
	PlacaFormatAntiga   PlacaFormat = "antiga"
	PlacaFormatMercosul PlacaFormat = "mercosul"
)

var (
	nonDigitRegex      = regexp.MustCompile(`\D`)
	nonAlphaNumRegex   = regexp.MustCompile(`[^A-Z0-9]`)
	placaAntigaRegex   = regexp.MustCompile(`^[A-Z]{3}\d{4}$`)
	placaMercosulRegex = regexp.MustCompile(`^[A-Z]{3}\d[A-Z]\d{2}$`)
)

// NormalizeDocument remove tudo que não for dígito de um CPF/CNPJ.
func NormalizeDocument(doc string) string {
	return nonDigitRegex.ReplaceAllString(doc, "")
}

// NormalizePlaca remove separadores e converte para maiúsculas.
func NormalizePlaca(placa string) string {
	placa = strings.ToUpper(strings.TrimSpace(placa))
	return nonAlphaNumRegex.ReplaceAllString(placa, "")
}

// ValidatePlaca normaliza e classifica a placa nos padrões ABC1234 ou ABC1D23.
func ValidatePlaca(placa string) (string, PlacaFormat) {
	placa = NormalizePlaca(placa)
	switch {
	case placaAntigaRegex.MatchString(placa):
		return placa, PlacaFormatAntiga
	case placaMercosulRegex.MatchString(placa):
		return placa, PlacaFormatMercosul
	default:
		return placa, PlacaFormatInvalida
	}
}

// FormatPlaca devolve a forma de exibição: ABC-1234 para o padrão antigo,
// sem separador para Mercosul. Placas não reconhecidas voltam normalizadas.
func FormatPlaca(placa string) string {
	normalized, format := ValidatePlaca(placa)
	if format == PlacaFormatAntiga {
		return normalized[:3] + "-" + normalized[3:]
	}
	return normalized
}

func ValidateCPF(cpf string) bool {
	cpf = NormalizeDocument(cpf)
	if len(cpf) != 11 {
		return false
	}
	if allSameDigits(cpf) {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * (10 - i)
	}
	if checkDigitMod11(sum) != int(cpf[9]-'0') {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(cpf[i]-'0') * (11 - i)
	}
	return checkDigitMod11(sum) == int(cpf[10]-'0')
}

var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

func ValidateCNPJ(cnpj string) bool {
	cnpj = NormalizeDocument(cnpj)
	if len(cnpj) != 14 {
		return false
	}
	if allSameDigits(cnpj) {
		return false
	}

	sum := 0
	for i, w := range cnpjWeightsFirst {
		sum += int(cnpj[i]-'0') * w
	}
	if checkDigitMod11(sum) != int(cnpj[12]-'0') {
		return false
	}

	sum = 0
	for i, w := range cnpjWeightsSecond {
		sum += int(cnpj[i]-'0') * w
	}
	return checkDigitMod11(sum) == int(cnpj[13]-'0')
}

// ValidateDocument aceita CPF (11 dígitos) ou CNPJ (14 dígitos).
func ValidateDocument(doc string) bool {
	doc = NormalizeDocument(doc)
	switch len(doc) {
	case 11:
		return ValidateCPF(doc)
	case 14:
		return ValidateCNPJ(doc)
	default:
		return false
	}
}

func checkDigitMod11(sum int) int {
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

func allSameDigits(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
