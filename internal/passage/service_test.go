package passage

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	db "sentinela/db/sqlc"

	"github.com/stretchr/testify/assert"
)

type fakePassageRepository struct {
	passagens map[int64]db.Passagem
	veiculos  map[int64]db.Veiculo
	idaCalls  []db.UpdatePassagemIlicitoIdaParams
	voltaCall []db.UpdatePassagemIlicitoVoltaParams
}

func (f *fakePassageRepository) GetPassagemById(ctx context.Context, id int64) (db.Passagem, error) {
	passagem, ok := f.passagens[id]
	if !ok {
		return db.Passagem{}, sql.ErrNoRows
	}
	return passagem, nil
}

func (f *fakePassageRepository) GetPassagensByIds(ctx context.Context, ids []int64) ([]db.Passagem, error) {
	result := make([]db.Passagem, 0, len(ids))
	for _, id := range ids {
		if passagem, ok := f.passagens[id]; ok {
			result = append(result, passagem)
		}
	}
	return result, nil
}

func (f *fakePassageRepository) UpdatePassagemIlicitoIda(ctx context.Context, arg db.UpdatePassagemIlicitoIdaParams) error {
	f.idaCalls = append(f.idaCalls, arg)
	return nil
}

func (f *fakePassageRepository) UpdatePassagemIlicitoVolta(ctx context.Context, arg db.UpdatePassagemIlicitoVoltaParams) error {
	f.voltaCall = append(f.voltaCall, arg)
	return nil
}

func (f *fakePassageRepository) GetVeiculoById(ctx context.Context, id int64) (db.Veiculo, error) {
	veiculo, ok := f.veiculos[id]
	if !ok {
		return db.Veiculo{}, sql.ErrNoRows
	}
	return veiculo, nil
}

type fakeNotifier struct {
	messages [][]byte
}

func (f *fakeNotifier) Broadcast(message []byte) {
	f.messages = append(f.messages, message)
}

func newTestService() (*Service, *fakePassageRepository, *fakeNotifier) {
	ida := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	volta := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)

	repo := &fakePassageRepository{
		passagens: map[int64]db.Passagem{
			1: {ID: 1, VeiculoID: 10, Datahora: ida},
			2: {ID: 2, VeiculoID: 10, Datahora: volta},
		},
		veiculos: map[int64]db.Veiculo{
			10: {ID: 10, Placa: "ABC1234"},
		},
	}
	notifier := &fakeNotifier{}
	return NewPassageService(repo, NewPairingTracker(), notifier), repo, notifier
}

func TestUpdatePassagemIdaMarcaPar(t *testing.T) {
	service, repo, notifier := newTestService()

	response, err := service.UpdatePassagemService(context.Background(), UpdatePassagemRequest{
		ID:    1,
		Field: FieldIlicitoIda,
		Value: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "ABC1234", response.Placa)
	assert.Nil(t, response.Sugestao)
	assert.Len(t, repo.idaCalls, 1)
	assert.True(t, repo.idaCalls[0].IlicitoIda)
	assert.Len(t, notifier.messages, 1)

	var event map[string]interface{}
	assert.NoError(t, json.Unmarshal(notifier.messages[0], &event))
	assert.Equal(t, "passagem_atualizada", event["evento"])
	assert.Equal(t, "ABC1234", event["placa"])
}

func TestUpdatePassagemVoltaFechaParComSugestao(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.UpdatePassagemService(context.Background(), UpdatePassagemRequest{
		ID:    1,
		Field: FieldIlicitoIda,
		Value: true,
	})
	assert.NoError(t, err)

	response, err := service.UpdatePassagemService(context.Background(), UpdatePassagemRequest{
		ID:    2,
		Field: FieldIlicitoVolta,
		Value: true,
	})
	assert.NoError(t, err)
	assert.NotNil(t, response.Sugestao)
	assert.Equal(t, "ABC1234", response.Sugestao.Placa)
	assert.Equal(t, "2025-03-10T08:00:00Z", response.Sugestao.InicioIso)
	assert.Equal(t, "2025-03-10T17:30:00Z", response.Sugestao.FimIso)
}

func TestUpdatePassagemVoltaSemIda(t *testing.T) {
	service, repo, _ := newTestService()

	response, err := service.UpdatePassagemService(context.Background(), UpdatePassagemRequest{
		ID:    2,
		Field: FieldIlicitoVolta,
		Value: true,
	})
	assert.NoError(t, err)
	assert.Nil(t, response.Sugestao)
	assert.Len(t, repo.voltaCall, 1)
}

func TestUpdatePassagemDesmarcarIda(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.UpdatePassagemService(context.Background(), UpdatePassagemRequest{
		ID:    1,
		Field: FieldIlicitoIda,
		Value: true,
	})
	assert.NoError(t, err)

	_, err = service.UpdatePassagemService(context.Background(), UpdatePassagemRequest{
		ID:    1,
		Field: FieldIlicitoIda,
		Value: false,
	})
	assert.NoError(t, err)

	// a ida desmarcada não fecha par com a volta
	response, err := service.UpdatePassagemService(context.Background(), UpdatePassagemRequest{
		ID:    2,
		Field: FieldIlicitoVolta,
		Value: true,
	})
	assert.NoError(t, err)
	assert.Nil(t, response.Sugestao)
}

func TestUpdatePassagemNaoEncontrada(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.UpdatePassagemService(context.Background(), UpdatePassagemRequest{
		ID:    99,
		Field: FieldIlicitoIda,
		Value: true,
	})
	assert.ErrorIs(t, err, ErrPassagemNaoEncontrada)
}

func TestUpdatePassagemCampoInvalido(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.UpdatePassagemService(context.Background(), UpdatePassagemRequest{
		ID:    1,
		Field: "ilicito_retorno",
		Value: true,
	})
	assert.ErrorIs(t, err, ErrCampoInvalido)
}

func TestGetStatusService(t *testing.T) {
	service, repo, _ := newTestService()
	repo.passagens[3] = db.Passagem{ID: 3, VeiculoID: 10, IlicitoIda: true}

	status, err := service.GetStatusService(context.Background(), 3)
	assert.NoError(t, err)
	assert.True(t, status.IlicitoIda)
	assert.False(t, status.IlicitoVolta)

	_, err = service.GetStatusService(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPassagemNaoEncontrada)
}

func TestGetStatusBatchService(t *testing.T) {
	service, _, _ := newTestService()

	response, err := service.GetStatusBatchService(context.Background(), []int64{1, 2})
	assert.NoError(t, err)
	assert.Len(t, response.Statuses, 2)
	assert.Empty(t, response.Erros)
}

func TestGetStatusBatchServiceIdsDesconhecidos(t *testing.T) {
	service, _, _ := newTestService()

	response, err := service.GetStatusBatchService(context.Background(), []int64{1, 99, 2, 77})
	assert.NoError(t, err)
	assert.Len(t, response.Statuses, 2)
	assert.Equal(t, []string{
		"passagem 99 não encontrada",
		"passagem 77 não encontrada",
	}, response.Erros)
}
