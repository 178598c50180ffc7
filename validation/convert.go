package validation

import (
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var datetimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"02/01/2006 15:04",
	"2006-01-02",
	time.RFC3339,
}

// ParseFlexibleDatetime tenta os formatos de data/hora aceitos pelos
// formulários antes de desistir.
func ParseFlexibleDatetime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("data/hora vazia")
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("formato de data/hora inválido: %s", value)
}

// ParseISODatetime aceita ISO-8601 com sufixo Z ou offset explícito.
func ParseISODatetime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04", value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("formato ISO inválido: %s", value)
}

func ParseStringToInt64(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.ParseInt(value, 10, 64)
}

func ParseStringToFloat(text string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
}

func GetStringFromNull(nullString sql.NullString) string {
	if nullString.Valid {
		return nullString.String
	}
	return ""
}

var (
	htmlTagRegex   = regexp.MustCompile(`<[^>]*>`)
	riskyCharRegex = regexp.MustCompile(`[<>"']`)
)

// SanitizeText remove tags HTML e caracteres de citação, limitando o tamanho.
func SanitizeText(text string, maxLength int) string {
	text = htmlTagRegex.ReplaceAllString(text, "")
	if len(text) > maxLength {
		text = text[:maxLength]
	}
	text = riskyCharRegex.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
