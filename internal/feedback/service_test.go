package feedback

import (
	"context"
	"testing"

	db "sentinela/db/sqlc"

	"github.com/stretchr/testify/assert"
)

type fakeFeedbackRepository struct {
	criados   []db.CreateFeedbackParams
	stats     db.GetFeedbackStatsRow
	porClasse []db.GetFeedbackStatsByClasseRow
	listados  []db.Feedback

	ultimoLimit int32
}

func (f *fakeFeedbackRepository) CreateFeedback(ctx context.Context, arg db.CreateFeedbackParams) (db.Feedback, error) {
	f.criados = append(f.criados, arg)
	return db.Feedback{
		ID:                   int64(len(f.criados)),
		Placa:                arg.Placa,
		TextoRelato:          arg.TextoRelato,
		ClassificacaoUsuario: arg.ClassificacaoUsuario,
		ClassificacaoModelo:  arg.ClassificacaoModelo,
		ConfiancaModelo:      arg.ConfiancaModelo,
		FeedbackUsuario:      arg.FeedbackUsuario,
		Observacoes:          arg.Observacoes,
		Usuario:              arg.Usuario,
		Contexto:             arg.Contexto,
	}, nil
}

func (f *fakeFeedbackRepository) GetFeedbackStats(ctx context.Context) (db.GetFeedbackStatsRow, error) {
	return f.stats, nil
}

func (f *fakeFeedbackRepository) GetFeedbackStatsByClasse(ctx context.Context) ([]db.GetFeedbackStatsByClasseRow, error) {
	return f.porClasse, nil
}

func (f *fakeFeedbackRepository) ListFeedback(ctx context.Context, limit int32) ([]db.Feedback, error) {
	f.ultimoLimit = limit
	return f.listados, nil
}

func TestSalvarFeedback(t *testing.T) {
	repo := &fakeFeedbackRepository{}
	service := NewFeedbackService(repo)

	response, err := service.SalvarFeedbackService(context.Background(), SalvarFeedbackRequest{
		Placa:                "abc-1234",
		TextoRelato:          "condutor transportava maconha",
		ClassificacaoUsuario: "TRAFICO",
		ClassificacaoModelo:  "OUTROS",
		ConfiancaModelo:      0.42,
		FeedbackUsuario:      "incorreto",
	})
	assert.NoError(t, err)
	assert.Equal(t, "ABC1234", response.Placa)
	assert.Equal(t, "incorreto", response.FeedbackUsuario)

	assert.Len(t, repo.criados, 1)
	assert.True(t, repo.criados[0].Placa.Valid)
	assert.Equal(t, "ABC1234", repo.criados[0].Placa.String)
}

func TestSalvarFeedbackPlacaInvalidaFicaNula(t *testing.T) {
	repo := &fakeFeedbackRepository{}
	service := NewFeedbackService(repo)

	_, err := service.SalvarFeedbackService(context.Background(), SalvarFeedbackRequest{
		Placa:                "PLACA-RUIM",
		TextoRelato:          "relato qualquer",
		ClassificacaoUsuario: "OUTROS",
		FeedbackUsuario:      "correto",
	})
	assert.NoError(t, err)
	assert.False(t, repo.criados[0].Placa.Valid)
}

func TestSalvarFeedbackValidacao(t *testing.T) {
	service := NewFeedbackService(&fakeFeedbackRepository{})

	// texto obrigatório
	_, err := service.SalvarFeedbackService(context.Background(), SalvarFeedbackRequest{
		ClassificacaoUsuario: "OUTROS",
		FeedbackUsuario:      "correto",
	})
	assert.Error(t, err)

	// feedback fora do enum correto/incorreto/parcial
	_, err = service.SalvarFeedbackService(context.Background(), SalvarFeedbackRequest{
		TextoRelato:          "relato",
		ClassificacaoUsuario: "OUTROS",
		FeedbackUsuario:      "talvez",
	})
	assert.Error(t, err)
}

func TestStatsService(t *testing.T) {
	repo := &fakeFeedbackRepository{
		stats: db.GetFeedbackStatsRow{Total: 10, Corretos: 7, Incorretos: 2, Parciais: 1},
		porClasse: []db.GetFeedbackStatsByClasseRow{
			{ClassificacaoUsuario: "TRAFICO", Total: 6},
			{ClassificacaoUsuario: "OUTROS", Total: 4},
		},
	}
	service := NewFeedbackService(repo)

	stats, err := service.StatsService(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.Total)
	assert.InDelta(t, 0.7, stats.Acuracia, 0.001)
	assert.Equal(t, int64(6), stats.PorClasse["TRAFICO"])
}

func TestStatsServiceSemRegistros(t *testing.T) {
	service := NewFeedbackService(&fakeFeedbackRepository{})

	stats, err := service.StatsService(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, stats.Acuracia)
}

func TestListarFeedbackLimitePadrao(t *testing.T) {
	repo := &fakeFeedbackRepository{
		listados: []db.Feedback{{ID: 1, TextoRelato: "relato"}},
	}
	service := NewFeedbackService(repo)

	feedbacks, err := service.ListarFeedbackService(context.Background(), 0)
	assert.NoError(t, err)
	assert.Len(t, feedbacks, 1)
	assert.Equal(t, int32(50), repo.ultimoLimit)

	_, err = service.ListarFeedbackService(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, int32(5), repo.ultimoLimit)
}
