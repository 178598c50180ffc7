package semantic

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Léxico das categorias usadas na pontuação. Os termos são comparados sem
// acentos e em minúsculas, então "munição" e "municao" casam igual.
var (
	keywordsDrogas = []string{
		"maconha", "cocaina", "crack", "skunk", "haxixe", "lanca perfume",
		"entorpecente", "droga", "trafico", "pasta base", "sintetico",
		"ecstasy", "lsd", "tablete", "pino", "fardo",
	}
	keywordsArmas = []string{
		"arma", "pistola", "revolver", "fuzil", "espingarda", "municao",
		"carregador", "calibre", "porte ilegal", "disparo",
	}
	keywordsReceptacao = []string{
		"receptacao", "furtado", "roubado", "adulterado", "chassi raspado",
		"clonado", "queixa de furto", "queixa de roubo", "desmanche",
	}
	keywordsSuspeito = []string{
		"nervoso", "contradicao", "contraditorio", "fundo falso", "evasao",
		"fuga", "comboio", "batedor", "denuncia anonima", "atitude suspeita",
	}
	keywordsEntrega = []string{
		"entrega", "desembarque", "descarregou", "buscar carga",
		"local de entrega", "destino final",
	}
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza o texto para comparação: minúsculas e sem diacríticos.
func Fold(text string) string {
	folded, _, err := transform.String(foldTransformer, strings.ToLower(text))
	if err != nil {
		return strings.ToLower(text)
	}
	return folded
}

func matchKeywords(folded string, keywords []string) []string {
	var matched []string
	for _, keyword := range keywords {
		if strings.Contains(folded, keyword) {
			matched = append(matched, keyword)
		}
	}
	return matched
}
