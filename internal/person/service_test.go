package person

import (
	"context"
	"database/sql"
	"testing"

	db "sentinela/db/sqlc"

	"github.com/stretchr/testify/assert"
)

type fakePersonRepository struct {
	pessoas map[int64]db.Pessoa
	updates []db.UpdatePessoaParams
}

func (f *fakePersonRepository) GetPessoasByDocumento(ctx context.Context, cpfCnpj string) ([]db.Pessoa, error) {
	var result []db.Pessoa
	for _, pessoa := range f.pessoas {
		if pessoa.CpfCnpj == cpfCnpj {
			result = append(result, pessoa)
		}
	}
	return result, nil
}

func (f *fakePersonRepository) GetPessoaById(ctx context.Context, id int64) (db.Pessoa, error) {
	pessoa, ok := f.pessoas[id]
	if !ok {
		return db.Pessoa{}, sql.ErrNoRows
	}
	return pessoa, nil
}

func (f *fakePersonRepository) UpdatePessoa(ctx context.Context, arg db.UpdatePessoaParams) error {
	f.updates = append(f.updates, arg)
	return nil
}

func (f *fakePersonRepository) DeletePessoa(ctx context.Context, id int64) error {
	delete(f.pessoas, id)
	return nil
}

func (f *fakePersonRepository) GetVeiculosByIds(ctx context.Context, ids []int64) ([]db.Veiculo, error) {
	return nil, nil
}

func (f *fakePersonRepository) GetPassagensByVeiculoIds(ctx context.Context, veiculoIds []int64) ([]db.GetPassagensByVeiculoIdsRow, error) {
	return nil, nil
}

func (f *fakePersonRepository) GetOcorrenciasByVeiculoIds(ctx context.Context, veiculoIds []int64) ([]db.GetOcorrenciasByVeiculoIdsRow, error) {
	return nil, nil
}

func newFakePersonRepository() *fakePersonRepository {
	return &fakePersonRepository{
		pessoas: map[int64]db.Pessoa{
			7: {ID: 7, Nome: "JOÃO DA SILVA", CpfCnpj: "52998224725"},
		},
	}
}

func TestUpdatePessoaAtualizaNomeEDocumento(t *testing.T) {
	repo := newFakePersonRepository()
	service := NewPersonService(repo)

	err := service.UpdatePessoaService(context.Background(), UpdatePessoaRequest{
		ID:      7,
		Nome:    "JOÃO DE SOUZA",
		CpfCnpj: "529.982.247-25",
	})
	assert.NoError(t, err)
	assert.Len(t, repo.updates, 1)
	assert.Equal(t, "JOÃO DE SOUZA", repo.updates[0].Nome)
	assert.Equal(t, "52998224725", repo.updates[0].CpfCnpj)
}

func TestUpdatePessoaDocumentoInvalido(t *testing.T) {
	repo := newFakePersonRepository()
	service := NewPersonService(repo)

	err := service.UpdatePessoaService(context.Background(), UpdatePessoaRequest{
		ID:      7,
		Nome:    "JOÃO DE SOUZA",
		CpfCnpj: "123.456.789-00",
	})
	assert.ErrorIs(t, err, ErrDocumentoInvalido)
	assert.Empty(t, repo.updates)
}

func TestUpdatePessoaSemDocumentoMantemAtual(t *testing.T) {
	repo := newFakePersonRepository()
	service := NewPersonService(repo)

	relevante := true
	err := service.UpdatePessoaService(context.Background(), UpdatePessoaRequest{
		ID:        7,
		Relevante: &relevante,
	})
	assert.NoError(t, err)
	assert.Len(t, repo.updates, 1)
	assert.Equal(t, "", repo.updates[0].CpfCnpj)
	assert.True(t, repo.updates[0].Relevante.Bool)
}

func TestUpdatePessoaNaoEncontrada(t *testing.T) {
	service := NewPersonService(newFakePersonRepository())

	err := service.UpdatePessoaService(context.Background(), UpdatePessoaRequest{ID: 99, Nome: "X"})
	assert.ErrorIs(t, err, ErrPessoaNaoEncontrada)
}
