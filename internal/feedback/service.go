package feedback

import (
	"context"
	"database/sql"

	db "sentinela/db/sqlc"
	"sentinela/validation"
)

const defaultListLimit = 50

type InterfaceService interface {
	SalvarFeedbackService(ctx context.Context, data SalvarFeedbackRequest) (FeedbackResponse, error)
	StatsService(ctx context.Context) (StatsResponse, error)
	ListarFeedbackService(ctx context.Context, limit int32) ([]FeedbackResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
}

func NewFeedbackService(InterfaceService InterfaceRepository) *Service {
	return &Service{InterfaceService}
}

// SalvarFeedbackService registra a avaliação do operador sobre uma
// classificação do modelo, base para o ajuste do léxico.
func (p *Service) SalvarFeedbackService(ctx context.Context, data SalvarFeedbackRequest) (FeedbackResponse, error) {
	if err := validation.Validate(data); err != nil {
		return FeedbackResponse{}, err
	}

	placa := sql.NullString{}
	if data.Placa != "" {
		normalized, format := validation.ValidatePlaca(data.Placa)
		if format != validation.PlacaFormatInvalida {
			placa = sql.NullString{String: normalized, Valid: true}
		}
	}

	result, err := p.InterfaceService.CreateFeedback(ctx, db.CreateFeedbackParams{
		Placa:                placa,
		TextoRelato:          validation.SanitizeText(data.TextoRelato, 5000),
		ClassificacaoUsuario: data.ClassificacaoUsuario,
		ClassificacaoModelo:  parseNullString(data.ClassificacaoModelo),
		ConfiancaModelo:      data.ConfiancaModelo,
		FeedbackUsuario:      data.FeedbackUsuario,
		Observacoes:          parseNullString(validation.SanitizeText(data.Observacoes, 1000)),
		Usuario:              parseNullString(data.Usuario),
		Contexto:             parseNullString(data.Contexto),
	})
	if err != nil {
		return FeedbackResponse{}, err
	}

	response := FeedbackResponse{}
	response.ParseFromFeedbackObject(result)
	return response, nil
}

func (p *Service) StatsService(ctx context.Context) (StatsResponse, error) {
	stats, err := p.InterfaceService.GetFeedbackStats(ctx)
	if err != nil {
		return StatsResponse{}, err
	}

	porClasse, err := p.InterfaceService.GetFeedbackStatsByClasse(ctx)
	if err != nil {
		return StatsResponse{}, err
	}

	response := StatsResponse{
		Total:      stats.Total,
		Corretos:   stats.Corretos,
		Incorretos: stats.Incorretos,
		Parciais:   stats.Parciais,
		PorClasse:  map[string]int64{},
	}
	if stats.Total > 0 {
		response.Acuracia = float64(stats.Corretos) / float64(stats.Total)
	}
	for _, classe := range porClasse {
		response.PorClasse[classe.ClassificacaoUsuario] = classe.Total
	}

	return response, nil
}

func (p *Service) ListarFeedbackService(ctx context.Context, limit int32) ([]FeedbackResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	result, err := p.InterfaceService.ListFeedback(ctx, limit)
	if err != nil {
		return nil, err
	}

	feedbacks := make([]FeedbackResponse, 0, len(result))
	for _, item := range result {
		response := FeedbackResponse{}
		response.ParseFromFeedbackObject(item)
		feedbacks = append(feedbacks, response)
	}

	return feedbacks, nil
}
