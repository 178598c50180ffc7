package semantic

import (
	"context"
	"encoding/json"
	"errors"

	db "sentinela/db/sqlc"
	"sentinela/validation"

	log "github.com/sirupsen/logrus"
	"github.com/sqlc-dev/pqtype"
)

const maxRelatosPlaca = 10

var ErrPlacaInvalida = errors.New("placa inválida")
var ErrSemRelatos = errors.New("nenhum relato encontrado para a placa")

type InterfaceService interface {
	AnaliseRelatoService(ctx context.Context, relato string) (Resultado, error)
	AnaliseLoteService(ctx context.Context, relatos []string) ([]Resultado, error)
	AnalisePlacaService(ctx context.Context, placa string) (AnalisePlacaResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
}

func NewSemanticService(InterfaceService InterfaceRepository) *Service {
	return &Service{InterfaceService}
}

// AnaliseRelatoService pontua um relato avulso e registra a extração para
// alimentar o histórico de treino do léxico.
func (p *Service) AnaliseRelatoService(ctx context.Context, relato string) (Resultado, error) {
	sanitized := validation.SanitizeText(relato, 5000)
	resultado := Analisar(sanitized)

	raw, err := json.Marshal(resultado.PalavrasChave)
	topPalavras := pqtype.NullRawMessage{}
	if err == nil {
		topPalavras = pqtype.NullRawMessage{RawMessage: raw, Valid: true}
	}

	_, err = p.InterfaceService.CreateRelatoExtracao(ctx, db.CreateRelatoExtracaoParams{
		Relato:      sanitized,
		ClasseRisco: resultado.Classificacao,
		Pontuacao:   int32(resultado.Score),
		TopPalavras: topPalavras,
	})
	if err != nil {
		log.WithError(err).Warn("falha ao registrar extração de relato")
	}

	return resultado, nil
}

func (p *Service) AnaliseLoteService(ctx context.Context, relatos []string) ([]Resultado, error) {
	resultados := make([]Resultado, 0, len(relatos))
	for _, relato := range relatos {
		resultado, err := p.AnaliseRelatoService(ctx, relato)
		if err != nil {
			return nil, err
		}
		resultados = append(resultados, resultado)
	}
	return resultados, nil
}

// AnalisePlacaService agrega a pontuação dos últimos relatos do veículo:
// score médio e máximo, nível de risco pelo máximo e classe predominante.
func (p *Service) AnalisePlacaService(ctx context.Context, placa string) (AnalisePlacaResponse, error) {
	normalized, format := validation.ValidatePlaca(placa)
	if format == validation.PlacaFormatInvalida {
		return AnalisePlacaResponse{}, ErrPlacaInvalida
	}

	rows, err := p.InterfaceService.GetRelatosByPlaca(ctx, db.GetRelatosByPlacaParams{
		Placa: normalized,
		Limit: maxRelatosPlaca,
	})
	if err != nil {
		return AnalisePlacaResponse{}, err
	}
	if len(rows) == 0 {
		return AnalisePlacaResponse{}, ErrSemRelatos
	}

	response := AnalisePlacaResponse{
		Placa:   normalized,
		Relatos: []RelatoAnalisado{},
	}

	var soma float64
	classes := map[string]int{}
	for _, row := range rows {
		resultado := Analisar(row.Relato.String)
		response.Relatos = append(response.Relatos, RelatoAnalisado{
			OcorrenciaID: row.ID,
			Datahora:     row.Datahora,
			Relato:       row.Relato.String,
			Resultado:    resultado,
		})

		soma += resultado.Score
		if resultado.Score > response.ScoreMaximo {
			response.ScoreMaximo = resultado.Score
		}
		classes[resultado.Classificacao]++
	}

	response.TotalRelatos = len(rows)
	response.ScoreMedio = soma / float64(len(rows))
	response.NivelRisco = nivelRisco(response.ScoreMaximo)
	response.ClassificacaoPredominante = predominante(classes)

	return response, nil
}

func predominante(classes map[string]int) string {
	melhor := ClasseOutros
	maior := 0
	for classe, total := range classes {
		if total > maior || (total == maior && classe != ClasseOutros && melhor == ClasseOutros) {
			melhor = classe
			maior = total
		}
	}
	return melhor
}
