package semantic

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	ClasseTrafico    = "TRAFICO"
	ClassePorteArma  = "PORTE_ARMA"
	ClasseReceptacao = "RECEPTACAO"
	ClasseOutros     = "OUTROS"

	NivelBaixo   = "BAIXO"
	NivelMedio   = "MÉDIO"
	NivelAlto    = "ALTO"
	NivelCritico = "CRÍTICO"
)

var (
	pesoRegex     = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:kg|quilos?|kilos?)`)
	unidadesRegex = regexp.MustCompile(`(\d+)\s*(?:municoes|comprimidos|pinos|tabletes|papelotes|unidades)`)
)

type Resultado struct {
	Score         float64  `json:"score"`
	Classificacao string   `json:"classificacao"`
	NivelRisco    string   `json:"nivel_risco"`
	PalavrasChave []string `json:"palavras_chave"`
}

// Analisar pontua o relato por léxico: presença de categoria soma peso fixo,
// quantidades apreendidas somam progressivamente com teto por tipo, e o total
// é truncado em [0, 100].
func Analisar(relato string) Resultado {
	folded := Fold(relato)

	drogas := matchKeywords(folded, keywordsDrogas)
	armas := matchKeywords(folded, keywordsArmas)
	receptacao := matchKeywords(folded, keywordsReceptacao)
	suspeito := matchKeywords(folded, keywordsSuspeito)
	entrega := matchKeywords(folded, keywordsEntrega)

	var score float64
	if len(drogas) > 0 {
		score += 25
	}
	if len(armas) > 0 {
		score += 25
	}
	if len(receptacao) > 0 {
		score += 20
	}
	if len(suspeito) > 0 {
		score += 15
	}
	if len(entrega) > 0 {
		score += 15
	}

	if kg := extrairPeso(folded); kg > 0 {
		score += min(10*kg, 40)
	}
	if un := extrairUnidades(folded); un > 0 {
		score += min(0.5*un, 20)
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	var palavras []string
	palavras = append(palavras, drogas...)
	palavras = append(palavras, armas...)
	palavras = append(palavras, receptacao...)
	palavras = append(palavras, suspeito...)
	palavras = append(palavras, entrega...)
	if palavras == nil {
		palavras = []string{}
	}

	return Resultado{
		Score:         score,
		Classificacao: classificar(drogas, armas, receptacao),
		NivelRisco:    nivelRisco(score),
		PalavrasChave: palavras,
	}
}

func classificar(drogas, armas, receptacao []string) string {
	switch {
	case len(drogas) > 0:
		return ClasseTrafico
	case len(armas) > 0:
		return ClassePorteArma
	case len(receptacao) > 0:
		return ClasseReceptacao
	default:
		return ClasseOutros
	}
}

func nivelRisco(score float64) string {
	switch {
	case score >= 75:
		return NivelCritico
	case score >= 50:
		return NivelAlto
	case score >= 25:
		return NivelMedio
	default:
		return NivelBaixo
	}
}

func extrairPeso(folded string) float64 {
	var total float64
	for _, match := range pesoRegex.FindAllStringSubmatch(folded, -1) {
		value, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", "."), 64)
		if err == nil {
			total += value
		}
	}
	return total
}

func extrairUnidades(folded string) float64 {
	var total float64
	for _, match := range unidadesRegex.FindAllStringSubmatch(folded, -1) {
		value, err := strconv.ParseFloat(match[1], 64)
		if err == nil {
			total += value
		}
	}
	return total
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
