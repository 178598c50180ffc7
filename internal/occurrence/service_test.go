package occurrence

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	db "sentinela/db/sqlc"
	"sentinela/validation"

	"github.com/stretchr/testify/assert"
)

type fakeOccurrenceRepository struct {
	veiculos    map[string]db.Veiculo
	ocorrencias map[int64]db.Ocorrencia
	proximoID   int64

	upserts    []db.UpsertVeiculoParams
	apreensoes []db.CreateApreensaoParams
	pessoas    []db.UpsertPessoaParams
	locais     []sql.NullString
	tipos      []string
}

func newFakeOccurrenceRepository() *fakeOccurrenceRepository {
	return &fakeOccurrenceRepository{
		veiculos:    map[string]db.Veiculo{},
		ocorrencias: map[int64]db.Ocorrencia{},
		proximoID:   1,
	}
}

func (f *fakeOccurrenceRepository) GetVeiculoByPlaca(ctx context.Context, placa string) (db.Veiculo, error) {
	veiculo, ok := f.veiculos[placa]
	if !ok {
		return db.Veiculo{}, sql.ErrNoRows
	}
	return veiculo, nil
}

func (f *fakeOccurrenceRepository) UpsertVeiculo(ctx context.Context, arg db.UpsertVeiculoParams) (db.Veiculo, error) {
	f.upserts = append(f.upserts, arg)
	veiculo := db.Veiculo{ID: int64(len(f.veiculos) + 100), Placa: arg.Placa}
	f.veiculos[arg.Placa] = veiculo
	return veiculo, nil
}

func (f *fakeOccurrenceRepository) CreateOcorrencia(ctx context.Context, arg db.CreateOcorrenciaParams) (db.Ocorrencia, error) {
	ocorrencia := db.Ocorrencia{
		ID:          f.proximoID,
		VeiculoID:   arg.VeiculoID,
		Tipo:        arg.Tipo,
		Datahora:    arg.Datahora,
		DatahoraFim: arg.DatahoraFim,
		Relato:      arg.Relato,
		Ocupantes:   arg.Ocupantes,
		Presos:      arg.Presos,
		Veiculos:    arg.Veiculos,
	}
	f.ocorrencias[ocorrencia.ID] = ocorrencia
	f.proximoID++
	return ocorrencia, nil
}

func (f *fakeOccurrenceRepository) GetOcorrenciaById(ctx context.Context, id int64) (db.Ocorrencia, error) {
	ocorrencia, ok := f.ocorrencias[id]
	if !ok {
		return db.Ocorrencia{}, sql.ErrNoRows
	}
	return ocorrencia, nil
}

func (f *fakeOccurrenceRepository) UpdateOcorrencia(ctx context.Context, arg db.UpdateOcorrenciaParams) error {
	ocorrencia := f.ocorrencias[arg.ID]
	if arg.Tipo.Valid {
		ocorrencia.Tipo = db.TipoOcorrenciaEnum(arg.Tipo.String)
	}
	if arg.Datahora.Valid {
		ocorrencia.Datahora = arg.Datahora.Time
	}
	if arg.Relato.Valid {
		ocorrencia.Relato = arg.Relato
	}
	f.ocorrencias[arg.ID] = ocorrencia
	return nil
}

func (f *fakeOccurrenceRepository) DeleteOcorrencia(ctx context.Context, id int64) error {
	delete(f.ocorrencias, id)
	return nil
}

func (f *fakeOccurrenceRepository) CreateApreensao(ctx context.Context, arg db.CreateApreensaoParams) error {
	f.apreensoes = append(f.apreensoes, arg)
	return nil
}

func (f *fakeOccurrenceRepository) DeleteApreensoesByOcorrencia(ctx context.Context, ocorrenciaID int64) error {
	restantes := f.apreensoes[:0]
	for _, apreensao := range f.apreensoes {
		if apreensao.OcorrenciaID != ocorrenciaID {
			restantes = append(restantes, apreensao)
		}
	}
	f.apreensoes = restantes
	return nil
}

func (f *fakeOccurrenceRepository) ListTiposApreensao(ctx context.Context) ([]string, error) {
	return f.tipos, nil
}

func (f *fakeOccurrenceRepository) UpsertPessoa(ctx context.Context, arg db.UpsertPessoaParams) error {
	f.pessoas = append(f.pessoas, arg)
	return nil
}

func (f *fakeOccurrenceRepository) ListLocaisEntrega(ctx context.Context) ([]sql.NullString, error) {
	return f.locais, nil
}

type capturedNotifier struct {
	events [][]byte
}

func (c *capturedNotifier) Broadcast(event []byte) {
	c.events = append(c.events, event)
}

func TestCreateOcorrenciaAbordagem(t *testing.T) {
	repo := newFakeOccurrenceRepository()
	notifier := &capturedNotifier{}
	service := NewOccurrenceService(repo, notifier)

	response, err := service.CreateOcorrenciaService(context.Background(), CreateOcorrenciaRequest{
		Placa:    "ABC-1234",
		Tipo:     "Abordagem",
		Datahora: "2025-03-10T08:00",
		Relato:   "abordagem de rotina",
		Ocupantes: []PessoaEnvolvida{
			{Nome: "João da Silva", Cpf: "529.982.247-25", Condutor: true},
			{Nome: "Sem Documento", Cpf: "111.111.111-11"},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Abordagem", response.Tipo)
	assert.Equal(t, "abordagem de rotina", response.Relato)

	// a placa desconhecida vira um veículo novo normalizado
	assert.Len(t, repo.upserts, 1)
	assert.Equal(t, "ABC1234", repo.upserts[0].Placa)

	// só o documento válido vira pessoa
	assert.Len(t, repo.pessoas, 1)
	assert.Equal(t, "52998224725", repo.pessoas[0].CpfCnpj)
	assert.True(t, repo.pessoas[0].Condutor)
	assert.False(t, repo.pessoas[0].Relevante)

	// abordagem não registra apreensões
	assert.Empty(t, repo.apreensoes)
	assert.Len(t, notifier.events, 1)
}

func TestCreateOcorrenciaBOPComApreensoes(t *testing.T) {
	repo := newFakeOccurrenceRepository()
	service := NewOccurrenceService(repo, nil)

	_, err := service.CreateOcorrenciaService(context.Background(), CreateOcorrenciaRequest{
		Placa:    "BRA2E19",
		Tipo:     "BOP",
		Datahora: "10/03/2025 08:00",
		Presos: []PessoaEnvolvida{
			{Nome: "Fulano", Cpf: "529.982.247-25"},
		},
		Apreensoes: []ApreensaoRequest{
			{Tipo: "Dinheiro", Quantidade: "5000", Unidade: "reais"},
		},
	})
	assert.NoError(t, err)

	assert.Len(t, repo.apreensoes, 1)
	assert.Equal(t, db.TipoApreensaoEnumDinheiro, repo.apreensoes[0].Tipo)

	// preso entra como pessoa relevante
	assert.Len(t, repo.pessoas, 1)
	assert.True(t, repo.pessoas[0].Relevante)
}

func TestCreateOcorrenciaPlacaInvalida(t *testing.T) {
	service := NewOccurrenceService(newFakeOccurrenceRepository(), nil)

	_, err := service.CreateOcorrenciaService(context.Background(), CreateOcorrenciaRequest{
		Placa:    "PLACA-RUIM",
		Tipo:     "Abordagem",
		Datahora: "2025-03-10T08:00",
	})
	assert.ErrorIs(t, err, ErrPlacaInvalida)
}

func TestCreateOcorrenciaDatahoraInvalida(t *testing.T) {
	service := NewOccurrenceService(newFakeOccurrenceRepository(), nil)

	_, err := service.CreateOcorrenciaService(context.Background(), CreateOcorrenciaRequest{
		Placa:    "ABC1234",
		Tipo:     "Abordagem",
		Datahora: "amanhã cedo",
	})
	assert.ErrorIs(t, err, ErrDatahoraInvalida)
}

func TestCreateLocalEntrega(t *testing.T) {
	repo := newFakeOccurrenceRepository()
	notifier := &capturedNotifier{}
	service := NewOccurrenceService(repo, notifier)

	response, err := service.CreateLocalEntregaService(context.Background(), LocalEntregaRequest{
		Placa:     "ABC1234",
		Municipio: "  cascavel ",
		Inicio:    "2025-03-10T08:00",
		Fim:       "2025-03-10T17:30",
		Relato:    "entrega no bairro norte",
	})
	assert.NoError(t, err)
	assert.Equal(t, string(db.TipoOcorrenciaEnumLocalDeEntrega), response.Tipo)
	assert.Equal(t, "CASCAVEL - entrega no bairro norte", response.Relato)
	assert.NotNil(t, response.DatahoraFim)
	assert.Len(t, notifier.events, 1)

	var event map[string]interface{}
	assert.NoError(t, json.Unmarshal(notifier.events[0], &event))
	assert.Equal(t, "ocorrencia_criada", event["evento"])
	assert.Equal(t, string(db.TipoOcorrenciaEnumLocalDeEntrega), event["tipo"])
}

func TestCreateLocalEntregaAceitaPayloadDaSugestao(t *testing.T) {
	// o par ida/volta fechado emite {placa, inicio_iso, fim_iso}; o mesmo
	// corpo precisa ser aceito de volta pelo endpoint de local de entrega
	payload := `{"placa":"ABC1234","municipio":"Campinas","inicio_iso":"2025-03-10T08:00:00Z","fim_iso":"2025-03-10T17:30:00Z"}`

	var request LocalEntregaRequest
	assert.NoError(t, json.Unmarshal([]byte(payload), &request))
	assert.NoError(t, validation.Validate(request))
	assert.Equal(t, "2025-03-10T08:00:00Z", request.Inicio)
	assert.Equal(t, "2025-03-10T17:30:00Z", request.Fim)

	service := NewOccurrenceService(newFakeOccurrenceRepository(), nil)
	response, err := service.CreateLocalEntregaService(context.Background(), request)
	assert.NoError(t, err)
	assert.Equal(t, string(db.TipoOcorrenciaEnumLocalDeEntrega), response.Tipo)
}

func TestCreateLocalEntregaPeriodoInvalido(t *testing.T) {
	service := NewOccurrenceService(newFakeOccurrenceRepository(), nil)

	_, err := service.CreateLocalEntregaService(context.Background(), LocalEntregaRequest{
		Placa:     "ABC1234",
		Municipio: "Cascavel",
		Inicio:    "2025-03-10T17:30",
		Fim:       "2025-03-10T08:00",
	})
	assert.ErrorIs(t, err, ErrPeriodoInvalido)
}

func TestUpdateOcorrenciaNaoEncontrada(t *testing.T) {
	service := NewOccurrenceService(newFakeOccurrenceRepository(), nil)

	_, err := service.UpdateOcorrenciaService(context.Background(), UpdateOcorrenciaRequest{ID: 99})
	assert.ErrorIs(t, err, ErrOcorrenciaNaoEncontrada)

	err = service.DeleteOcorrenciaService(context.Background(), 99)
	assert.ErrorIs(t, err, ErrOcorrenciaNaoEncontrada)
}

func TestUpdateOcorrenciaSubstituiApreensoes(t *testing.T) {
	repo := newFakeOccurrenceRepository()
	service := NewOccurrenceService(repo, nil)

	criada, err := service.CreateOcorrenciaService(context.Background(), CreateOcorrenciaRequest{
		Placa:    "ABC1234",
		Tipo:     "BOP",
		Datahora: "2025-03-10T08:00",
		Apreensoes: []ApreensaoRequest{
			{Tipo: "Dinheiro", Quantidade: "5000", Unidade: "reais"},
		},
	})
	assert.NoError(t, err)

	_, err = service.UpdateOcorrenciaService(context.Background(), UpdateOcorrenciaRequest{
		ID:     criada.ID,
		Relato: "relato revisado",
		Apreensoes: []ApreensaoRequest{
			{Tipo: "Outros", Quantidade: "1", Unidade: "un"},
		},
	})
	assert.NoError(t, err)
	assert.Len(t, repo.apreensoes, 1)
	assert.Equal(t, db.TipoApreensaoEnumOutros, repo.apreensoes[0].Tipo)
	assert.Equal(t, "relato revisado", repo.ocorrencias[criada.ID].Relato.String)
}

func TestDeleteOcorrencia(t *testing.T) {
	repo := newFakeOccurrenceRepository()
	service := NewOccurrenceService(repo, nil)
	repo.ocorrencias[7] = db.Ocorrencia{ID: 7, Datahora: time.Now()}

	assert.NoError(t, service.DeleteOcorrenciaService(context.Background(), 7))
	_, ok := repo.ocorrencias[7]
	assert.False(t, ok)
}

func TestListLocaisEntregaService(t *testing.T) {
	repo := newFakeOccurrenceRepository()
	repo.locais = []sql.NullString{
		{String: "CASCAVEL", Valid: true},
		{},
		{String: "", Valid: true},
	}
	service := NewOccurrenceService(repo, nil)

	response, err := service.ListLocaisEntregaService(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"CASCAVEL"}, response.Municipios)
}
