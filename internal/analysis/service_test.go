package analysis

import (
	"context"
	"database/sql"
	"testing"
	"time"

	db "sentinela/db/sqlc"

	"github.com/stretchr/testify/assert"
)

type fakeAnalysisRepository struct {
	passagens []db.GetPassagensIlicitasIdaRow
	tempos    []db.GetTemposEntregaRow
	rotas     []db.GetRotasIlicitasRow
	veiculos  []db.GetInteligenciaVeiculosRow
	locais    []sql.NullString
	tipos     []string

	ultimoFiltro db.GetPassagensIlicitasIdaParams
}

func (f *fakeAnalysisRepository) GetPassagensIlicitasIda(ctx context.Context, arg db.GetPassagensIlicitasIdaParams) ([]db.GetPassagensIlicitasIdaRow, error) {
	f.ultimoFiltro = arg
	return f.passagens, nil
}

func (f *fakeAnalysisRepository) GetTemposEntrega(ctx context.Context, arg db.GetTemposEntregaParams) ([]db.GetTemposEntregaRow, error) {
	return f.tempos, nil
}

func (f *fakeAnalysisRepository) GetRotasIlicitas(ctx context.Context, arg db.GetRotasIlicitasParams) ([]db.GetRotasIlicitasRow, error) {
	return f.rotas, nil
}

func (f *fakeAnalysisRepository) GetInteligenciaVeiculos(ctx context.Context, arg db.GetInteligenciaVeiculosParams) ([]db.GetInteligenciaVeiculosRow, error) {
	return f.veiculos, nil
}

func (f *fakeAnalysisRepository) ListLocaisEntrega(ctx context.Context) ([]sql.NullString, error) {
	return f.locais, nil
}

func (f *fakeAnalysisRepository) ListTiposApreensao(ctx context.Context) ([]string, error) {
	return f.tipos, nil
}

func nullStr(value string) sql.NullString {
	return sql.NullString{String: value, Valid: true}
}

func TestAnaliseServiceContagens(t *testing.T) {
	repo := &fakeAnalysisRepository{
		passagens: []db.GetPassagensIlicitasIdaRow{
			{Municipio: nullStr("Cascavel"), Rodovia: nullStr("BR-277"), Hora: 3, Dow: 1},
			{Municipio: nullStr("Cascavel"), Rodovia: nullStr("BR-277"), Hora: 3, Dow: 1},
			{Municipio: nullStr("Foz do Iguaçu"), Rodovia: nullStr("BR-469"), Hora: 22, Dow: 5},
			{Municipio: sql.NullString{}, Rodovia: sql.NullString{}, Hora: 10, Dow: 2},
		},
	}
	service := NewAnalysisService(repo)

	response, err := service.AnaliseService(context.Background(), FiltroRequest{})
	assert.NoError(t, err)

	assert.Equal(t, int64(4), response.TotalPassagens)
	assert.Equal(t, int64(2), response.PorHora[3])
	assert.Equal(t, int64(1), response.PorHora[22])
	assert.Equal(t, int64(2), response.PorDiaSemana[1])
	assert.Equal(t, int64(2), response.Heatmap[1][3])
	assert.Equal(t, int64(1), response.Heatmap[5][22])

	// municípios e rodovias nulos ficam de fora dos rankings
	assert.Len(t, response.TopMunicipios, 2)
	assert.Equal(t, "Cascavel", response.TopMunicipios[0].Nome)
	assert.Equal(t, int64(2), response.TopMunicipios[0].Total)
	assert.Len(t, response.TopRodovias, 2)
	assert.Equal(t, "BR-277", response.TopRodovias[0].Nome)
}

func TestAnaliseServicePlacaNormalizada(t *testing.T) {
	repo := &fakeAnalysisRepository{}
	service := NewAnalysisService(repo)

	_, err := service.AnaliseService(context.Background(), FiltroRequest{Placa: "abc-1234"})
	assert.NoError(t, err)
	assert.Equal(t, "ABC1234", repo.ultimoFiltro.Placa)
}

func TestAnaliseServicePeriodoInvalido(t *testing.T) {
	service := NewAnalysisService(&fakeAnalysisRepository{})

	_, err := service.AnaliseService(context.Background(), FiltroRequest{DataInicio: "ontem"})
	assert.ErrorIs(t, err, ErrPeriodoInvalido)

	_, err = service.AnaliseService(context.Background(), FiltroRequest{DataFim: "31/02"})
	assert.ErrorIs(t, err, ErrPeriodoInvalido)
}

func TestAnaliseServiceTempoMedioEntrega(t *testing.T) {
	inicio := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	repo := &fakeAnalysisRepository{
		tempos: []db.GetTemposEntregaRow{
			{Datahora: inicio, DatahoraFim: sql.NullTime{Time: inicio.Add(2 * time.Hour), Valid: true}},
			{Datahora: inicio, DatahoraFim: sql.NullTime{Time: inicio.Add(4 * time.Hour), Valid: true}},
			{Datahora: inicio, DatahoraFim: sql.NullTime{}},
			{Datahora: inicio, DatahoraFim: sql.NullTime{Time: inicio.Add(-time.Hour), Valid: true}},
		},
	}
	service := NewAnalysisService(repo)

	response, err := service.AnaliseService(context.Background(), FiltroRequest{})
	assert.NoError(t, err)
	assert.Equal(t, "3.00", response.TempoMedioEntregaHoras)
}

func TestAnaliseServiceRotasESankey(t *testing.T) {
	repo := &fakeAnalysisRepository{
		rotas: []db.GetRotasIlicitasRow{
			{MunicipioPartida: nullStr("Foz do Iguaçu"), MunicipioChegada: nullStr("Curitiba"), Total: 7},
		},
	}
	service := NewAnalysisService(repo)

	response, err := service.AnaliseService(context.Background(), FiltroRequest{})
	assert.NoError(t, err)
	assert.Len(t, response.Rotas, 1)
	assert.Equal(t, "Foz do Iguaçu", response.Rotas[0].Partida)
	assert.Equal(t, "Curitiba", response.Rotas[0].Chegada)
	assert.Len(t, response.Sankey, 1)
	assert.Equal(t, int64(7), response.Sankey[0].Value)
}

func TestAnaliseServiceInteligenciaVeiculos(t *testing.T) {
	repo := &fakeAnalysisRepository{
		veiculos: []db.GetInteligenciaVeiculosRow{
			{MarcaModelo: nullStr("GM/ONIX"), Cor: nullStr("PRETA"), TipoApreensao: nullStr("TRAFICO")},
			{MarcaModelo: nullStr("GM/ONIX"), Cor: nullStr("BRANCA"), TipoApreensao: sql.NullString{}},
		},
	}
	service := NewAnalysisService(repo)

	response, err := service.AnaliseService(context.Background(), FiltroRequest{})
	assert.NoError(t, err)
	assert.Equal(t, []ContagemItem{{Nome: "GM/ONIX", Total: 2}}, response.IntelModelos)
	assert.Len(t, response.IntelCores, 2)
	assert.Equal(t, []ContagemItem{{Nome: "TRAFICO", Total: 1}}, response.IntelApreensoes)
}

func TestTopContagemOrdenacaoELimite(t *testing.T) {
	contagem := map[string]int64{}
	for i := 0; i < 15; i++ {
		contagem[string(rune('a'+i))] = int64(i + 1)
	}

	items := topContagem(contagem, 10)
	assert.Len(t, items, 10)
	assert.Equal(t, int64(15), items[0].Total)
	assert.Equal(t, int64(6), items[9].Total)

	// empate resolve por nome
	items = topContagem(map[string]int64{"b": 2, "a": 2}, 10)
	assert.Equal(t, "a", items[0].Nome)
}

func TestFiltrosService(t *testing.T) {
	repo := &fakeAnalysisRepository{
		locais: []sql.NullString{nullStr("PF Cascavel"), {}, nullStr("")},
		tipos:  []string{"TRAFICO", "PORTE_ARMA"},
	}
	service := NewAnalysisService(repo)

	response, err := service.FiltrosService(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"PF Cascavel"}, response.Locais)
	assert.Equal(t, []string{"TRAFICO", "PORTE_ARMA"}, response.TiposApreensao)
}
