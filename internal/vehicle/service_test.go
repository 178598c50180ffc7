package vehicle

import (
	"context"
	"database/sql"
	"testing"
	"time"

	db "sentinela/db/sqlc"

	"github.com/stretchr/testify/assert"
)

type fakeVehicleRepository struct {
	veiculos  map[string]db.Veiculo
	pessoas   []db.Pessoa
	passagens []db.GetPassagensByVeiculoIdsRow
}

func (f *fakeVehicleRepository) GetVeiculoByPlaca(ctx context.Context, placa string) (db.Veiculo, error) {
	veiculo, ok := f.veiculos[placa]
	if !ok {
		return db.Veiculo{}, sql.ErrNoRows
	}
	return veiculo, nil
}

func (f *fakeVehicleRepository) UpsertVeiculo(ctx context.Context, arg db.UpsertVeiculoParams) (db.Veiculo, error) {
	return db.Veiculo{ID: 1, Placa: arg.Placa}, nil
}

func (f *fakeVehicleRepository) GetOcorrenciasByVeiculoIds(ctx context.Context, veiculoIds []int64) ([]db.GetOcorrenciasByVeiculoIdsRow, error) {
	return nil, nil
}

func (f *fakeVehicleRepository) GetApreensoesByOcorrenciaIds(ctx context.Context, ocorrenciaIds []int64) ([]db.Apreensao, error) {
	return nil, nil
}

func (f *fakeVehicleRepository) GetPassagensByVeiculoIds(ctx context.Context, veiculoIds []int64) ([]db.GetPassagensByVeiculoIdsRow, error) {
	return f.passagens, nil
}

func (f *fakeVehicleRepository) GetPessoasByVeiculoId(ctx context.Context, veiculoID sql.NullInt64) ([]db.Pessoa, error) {
	return f.pessoas, nil
}

func newFakeVehicleRepository() *fakeVehicleRepository {
	return &fakeVehicleRepository{
		veiculos: map[string]db.Veiculo{
			"ABC1234": {ID: 10, Placa: "ABC1234"},
		},
	}
}

func TestConsultaPlacaClassificaPessoas(t *testing.T) {
	repo := newFakeVehicleRepository()
	repo.pessoas = []db.Pessoa{
		{ID: 1, Nome: "JOÃO", CpfCnpj: "52998224725", Proprietario: true, Condutor: true},
		{ID: 2, Nome: "MARIA", CpfCnpj: "11144477735", Passageiro: true, Relevante: true},
		{ID: 3, Nome: "PEDRO", CpfCnpj: "16899535009"},
	}
	service := NewVehicleService(repo, nil)

	response, err := service.ConsultaPlacaService(context.Background(), "abc-1234")
	assert.NoError(t, err)
	assert.Len(t, response.Pessoas, 3)
	assert.Equal(t, "Proprietário / Condutor", response.Pessoas[0].Classificacao)
	assert.Equal(t, "Passageiro / Relevante", response.Pessoas[1].Classificacao)
	assert.Equal(t, "Não Classificado", response.Pessoas[2].Classificacao)
	assert.True(t, response.Pessoas[0].Detalhes.EhProprietario)
	assert.True(t, response.Pessoas[0].Detalhes.EhCondutor)
	assert.False(t, response.Pessoas[0].Detalhes.EhRelevante)
	assert.True(t, response.Pessoas[1].Detalhes.EhPassageiro)
}

func TestConsultaPlacaMontaResumo(t *testing.T) {
	repo := newFakeVehicleRepository()
	repo.pessoas = []db.Pessoa{
		{ID: 1, Nome: "JOÃO", Proprietario: true, Condutor: true},
		{ID: 2, Nome: "MARIA", Passageiro: true, Relevante: true},
	}
	repo.passagens = []db.GetPassagensByVeiculoIdsRow{
		{ID: 1, Datahora: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)},
		{ID: 2, Datahora: time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)},
		{ID: 3, Datahora: time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)},
	}
	service := NewVehicleService(repo, nil)

	response, err := service.ConsultaPlacaService(context.Background(), "ABC1234")
	assert.NoError(t, err)
	assert.Equal(t, 2, response.Resumo.TotalPessoas)
	assert.Equal(t, 1, response.Resumo.TotalProprietarios)
	assert.Equal(t, 1, response.Resumo.TotalCondutores)
	assert.Equal(t, 1, response.Resumo.TotalPassageiros)
	assert.Equal(t, 1, response.Resumo.TotalRelevantes)
	assert.Equal(t, 3, response.Resumo.TotalPassagens)
	assert.Equal(t, 0, response.Resumo.TotalOcorrencias)
}

func TestConsultaPlacaInvalida(t *testing.T) {
	service := NewVehicleService(newFakeVehicleRepository(), nil)

	_, err := service.ConsultaPlacaService(context.Background(), "PLACA!")
	assert.ErrorIs(t, err, ErrPlacaInvalida)
}

func TestConsultaPlacaDesconhecidaSemProvedor(t *testing.T) {
	service := NewVehicleService(newFakeVehicleRepository(), nil)

	_, err := service.ConsultaPlacaService(context.Background(), "XYZ9876")
	assert.ErrorIs(t, err, ErrVeiculoNaoEncontrado)
}
