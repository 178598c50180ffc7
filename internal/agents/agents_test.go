package agents

import (
	"context"
	"database/sql"
	"testing"
	"time"

	db "sentinela/db/sqlc"

	"github.com/stretchr/testify/assert"
)

type fakeAgentsRepository struct {
	veiculos  map[string]db.Veiculo
	passagens map[string][]db.GetPassagensByPlacaRow
	relatos   map[string][]db.GetRelatosByPlacaRow
	pingErr   error
}

func newFakeAgentsRepository() *fakeAgentsRepository {
	return &fakeAgentsRepository{
		veiculos:  map[string]db.Veiculo{},
		passagens: map[string][]db.GetPassagensByPlacaRow{},
		relatos:   map[string][]db.GetRelatosByPlacaRow{},
	}
}

func (f *fakeAgentsRepository) GetVeiculoByPlaca(ctx context.Context, placa string) (db.Veiculo, error) {
	veiculo, ok := f.veiculos[placa]
	if !ok {
		return db.Veiculo{}, sql.ErrNoRows
	}
	return veiculo, nil
}

func (f *fakeAgentsRepository) GetPassagensByPlaca(ctx context.Context, placa string) ([]db.GetPassagensByPlacaRow, error) {
	return f.passagens[placa], nil
}

func (f *fakeAgentsRepository) GetRelatosByPlaca(ctx context.Context, arg db.GetRelatosByPlacaParams) ([]db.GetRelatosByPlacaRow, error) {
	return f.relatos[arg.Placa], nil
}

func (f *fakeAgentsRepository) PingDatabase(ctx context.Context) error {
	return f.pingErr
}

func passagemEm(hora int, municipio, rodovia string) db.GetPassagensByPlacaRow {
	return db.GetPassagensByPlacaRow{
		Datahora:  time.Date(2025, 3, 10, hora, 0, 0, 0, time.UTC),
		Municipio: sql.NullString{String: municipio, Valid: true},
		Rodovia:   sql.NullString{String: rodovia, Valid: true},
	}
}

func TestColetarSemVeiculo(t *testing.T) {
	repo := newFakeAgentsRepository()
	collector := NewDataCollector(repo)

	coleta, err := collector.Coletar(context.Background(), "ABC1234")
	assert.NoError(t, err)
	assert.Nil(t, coleta.Veiculo)
	assert.False(t, coleta.Qualidade.TemVeiculo)
	assert.InDelta(t, 0.3, coleta.Qualidade.ScoreQualidade, 0.001)
	assert.Zero(t, coleta.Qualidade.Completude)
}

func TestColetarComDados(t *testing.T) {
	repo := newFakeAgentsRepository()
	repo.veiculos["ABC1234"] = db.Veiculo{ID: 1, Placa: "ABC1234"}
	repo.passagens["ABC1234"] = []db.GetPassagensByPlacaRow{
		passagemEm(8, "Cascavel", "BR-277"),
		passagemEm(9, "Cascavel", "BR-277"),
		passagemEm(10, "Cascavel", "BR-277"),
	}
	repo.relatos["ABC1234"] = []db.GetRelatosByPlacaRow{
		{ID: 1, Relato: sql.NullString{String: "abordagem de rotina", Valid: true}},
		{ID: 2, Relato: sql.NullString{String: "nada encontrado", Valid: true}},
	}
	collector := NewDataCollector(repo)

	coleta, err := collector.Coletar(context.Background(), "ABC1234")
	assert.NoError(t, err)
	assert.NotNil(t, coleta.Veiculo)
	assert.Equal(t, 3, coleta.Qualidade.TotalPassagens)
	assert.Equal(t, 2, coleta.Qualidade.TotalRelatos)
	assert.InDelta(t, 0.5, coleta.Qualidade.Completude, 0.001)
	assert.InDelta(t, 0.8, coleta.Qualidade.ScoreQualidade, 0.001)
}

func TestRouteAnalyzerSemPassagens(t *testing.T) {
	analyzer := NewRouteAnalyzer()

	rota, err := analyzer.Analisar(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, "NORMAL", rota.Classificacao)
	assert.Equal(t, float64(1), rota.Confianca)
	assert.Equal(t, "Nenhuma passagem encontrada", rota.Motivo)
}

func TestRouteAnalyzerPadraoSuspeito(t *testing.T) {
	analyzer := NewRouteAnalyzer()

	// 3 de 4 passagens noturnas no mesmo trecho
	passagens := []db.GetPassagensByPlacaRow{
		passagemEm(23, "Cascavel", "BR-277"),
		passagemEm(2, "Cascavel", "BR-277"),
		passagemEm(4, "Cascavel", "BR-277"),
		passagemEm(14, "Cascavel", "BR-277"),
	}

	rota, err := analyzer.Analisar(context.Background(), passagens)
	assert.NoError(t, err)
	assert.InDelta(t, 0.75, rota.Padroes.AtividadeNoturna, 0.001)
	assert.InDelta(t, 1.0, rota.Padroes.RepeticaoRota, 0.001)
	assert.Len(t, rota.Fatores, 2)
	assert.InDelta(t, 0.875, rota.RiskScore, 0.001)
	assert.Equal(t, "SUSPEITO", rota.Classificacao)
	assert.InDelta(t, 0.8, rota.Confianca, 0.001)
}

func TestRouteAnalyzerPadraoNormal(t *testing.T) {
	analyzer := NewRouteAnalyzer()

	// diurnas e sem repetição dominante
	passagens := []db.GetPassagensByPlacaRow{
		passagemEm(9, "Cascavel", "BR-277"),
		passagemEm(11, "Toledo", "PR-317"),
		passagemEm(15, "Maringá", "BR-376"),
	}

	rota, err := analyzer.Analisar(context.Background(), passagens)
	assert.NoError(t, err)
	assert.Empty(t, rota.Fatores)
	assert.Zero(t, rota.RiskScore)
	assert.Equal(t, "NORMAL", rota.Classificacao)
}

func TestSemanticAnalyzerMediaDosRelatos(t *testing.T) {
	analyzer := NewSemanticAnalyzer()

	relatos := []db.GetRelatosByPlacaRow{
		{ID: 1, Tipo: db.TipoOcorrenciaEnumBOP, Relato: sql.NullString{String: "encontrada maconha no porta-malas", Valid: true}},
		{ID: 2, Tipo: db.TipoOcorrenciaEnumAbordagem, Relato: sql.NullString{Valid: true}},
		{ID: 3, Tipo: db.TipoOcorrenciaEnumAbordagem, Relato: sql.NullString{String: "nada de irregular", Valid: true}},
	}

	analise, err := analyzer.Analisar(context.Background(), relatos)
	assert.NoError(t, err)

	// o relato vazio fica de fora da média
	assert.Len(t, analise.Relatos, 2)
	assert.InDelta(t, 0.25, analise.Relatos[0].RiskScore, 0.001)
	assert.InDelta(t, 0.125, analise.RiscoGeral, 0.001)
	assert.Equal(t, "Analisados 2 relatos. Risco médio: 0.12", analise.Resumo)
}

func TestSemanticAnalyzerSemRelatos(t *testing.T) {
	analyzer := NewSemanticAnalyzer()

	analise, err := analyzer.Analisar(context.Background(), nil)
	assert.NoError(t, err)
	assert.Zero(t, analise.RiscoGeral)
	assert.Equal(t, "Nenhum relato encontrado para análise", analise.Resumo)
}

func TestRiskCalculatorPesosCompletos(t *testing.T) {
	calculator := NewRiskCalculator()

	risco, err := calculator.Calcular(context.Background(),
		&AnaliseRota{RiskScore: 1},
		&AnaliseSemantica{RiscoGeral: 1},
	)
	assert.NoError(t, err)
	assert.InDelta(t, 0.6, risco.PesoRota, 0.001)
	assert.InDelta(t, 0.4, risco.PesoSemantico, 0.001)
	assert.InDelta(t, 1.0, risco.ScoreFinal, 0.001)
	assert.Equal(t, "CRÍTICO", risco.NivelRisco)
}

func TestRiskCalculatorSemSemantica(t *testing.T) {
	calculator := NewRiskCalculator()

	risco, err := calculator.Calcular(context.Background(), &AnaliseRota{RiskScore: 0.5}, nil)
	assert.NoError(t, err)

	// 0.6 e 0.2 normalizados
	assert.InDelta(t, 0.75, risco.PesoRota, 0.001)
	assert.InDelta(t, 0.25, risco.PesoSemantico, 0.001)
	assert.InDelta(t, 0.375, risco.ScoreFinal, 0.001)
	assert.Equal(t, "BAIXO", risco.NivelRisco)
}

func TestRiskCalculatorSemAnalises(t *testing.T) {
	calculator := NewRiskCalculator()

	risco, err := calculator.Calcular(context.Background(), nil, nil)
	assert.NoError(t, err)
	assert.Zero(t, risco.ScoreFinal)
	assert.Equal(t, "BAIXO", risco.NivelRisco)
}

func TestAnaliseCompletaService(t *testing.T) {
	repo := newFakeAgentsRepository()
	repo.veiculos["ABC1234"] = db.Veiculo{ID: 1, Placa: "ABC1234"}
	repo.passagens["ABC1234"] = []db.GetPassagensByPlacaRow{passagemEm(9, "Cascavel", "BR-277")}
	service := NewAgentsService(repo)

	response, err := service.AnaliseCompletaService(context.Background(), "abc-1234", PrioridadeAlta)
	assert.NoError(t, err)
	assert.Equal(t, "ABC1234", response.Placa)
	assert.True(t, response.Sucesso)
	assert.Equal(t, "high", response.Prioridade)
	assert.NotNil(t, response.Rota)
	assert.NotNil(t, response.Semantica)
	assert.NotNil(t, response.Risco)

	_, err = service.AnaliseCompletaService(context.Background(), "PLACA-RUIM", PrioridadeMedia)
	assert.ErrorIs(t, err, ErrPlacaInvalida)
}

func TestAnaliseRapidaService(t *testing.T) {
	repo := newFakeAgentsRepository()
	service := NewAgentsService(repo)

	response, err := service.AnaliseRapidaService(context.Background(), "BRA2E19")
	assert.NoError(t, err)
	assert.True(t, response.Sucesso)
	assert.NotNil(t, response.Rota)
	assert.Equal(t, "NORMAL", response.Rota.Classificacao)
}

func TestAnaliseBatchService(t *testing.T) {
	repo := newFakeAgentsRepository()
	service := NewAgentsService(repo)

	_, err := service.AnaliseBatchService(context.Background(), AnaliseBatchRequest{})
	assert.ErrorIs(t, err, ErrLoteVazio)

	placas := make([]string, maxPlacasLote+1)
	for i := range placas {
		placas[i] = "ABC1234"
	}
	_, err = service.AnaliseBatchService(context.Background(), AnaliseBatchRequest{Placas: placas})
	assert.ErrorIs(t, err, ErrLoteExcedido)

	_, err = service.AnaliseBatchService(context.Background(), AnaliseBatchRequest{Placas: []string{"RUIM", "!!"}})
	assert.ErrorIs(t, err, ErrPlacaInvalida)

	response, err := service.AnaliseBatchService(context.Background(), AnaliseBatchRequest{
		Placas: []string{"ABC1234", "BRA2E19", "invalida"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, response.Total)
	assert.Equal(t, 2, response.Sucessos)
	assert.Zero(t, response.Falhas)
}

func TestHealthService(t *testing.T) {
	repo := newFakeAgentsRepository()
	service := NewAgentsService(repo)

	health := service.HealthService(context.Background())
	assert.True(t, health.Saudavel)
	assert.True(t, health.Banco)

	repo.pingErr = sql.ErrConnDone
	health = service.HealthService(context.Background())
	assert.False(t, health.Saudavel)
}

func TestStatsServiceContabilizaAnalises(t *testing.T) {
	repo := newFakeAgentsRepository()
	service := NewAgentsService(repo)

	_, err := service.AnaliseRapidaService(context.Background(), "ABC1234")
	assert.NoError(t, err)

	stats := service.StatsService()
	assert.Equal(t, int64(1), stats.TotalAnalises)
	assert.Len(t, stats.Agentes, 4)
	assert.Equal(t, int64(1), stats.Agentes["data_collector"].Processados)
	assert.Equal(t, 5, stats.Agentes["data_collector"].LimiteSimultaneo)
}
