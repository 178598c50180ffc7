package session

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	db "sentinela/db/sqlc"
	"sentinela/infra/token"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/oauth2/v2"
)

const testSymmetricKey = "12345678901234567890123456789012"

type fakeSessionRepository struct {
	operadores map[string]db.Operador
}

func (f *fakeSessionRepository) GetOperadorByMatricula(ctx context.Context, matricula string) (db.Operador, error) {
	operador, ok := f.operadores[matricula]
	if !ok {
		return db.Operador{}, sql.ErrNoRows
	}
	return operador, nil
}

func (f *fakeSessionRepository) GetOperadorByEmail(ctx context.Context, email sql.NullString) (db.Operador, error) {
	for _, operador := range f.operadores {
		if operador.Email.String == email.String {
			return operador, nil
		}
	}
	return db.Operador{}, sql.ErrNoRows
}

func (f *fakeSessionRepository) CreateOperador(ctx context.Context, arg db.CreateOperadorParams) (db.Operador, error) {
	operador := db.Operador{
		ID:          int64(len(f.operadores) + 1),
		Matricula:   arg.Matricula,
		Nome:        arg.Nome,
		Email:       arg.Email,
		ChaveAcesso: arg.ChaveAcesso,
		Ativo:       true,
	}
	f.operadores[arg.Matricula] = operador
	return operador, nil
}

type fakeGoogleValidator struct {
	email string
	err   error
}

func (f *fakeGoogleValidator) Validate(idToken string) (*oauth2.Tokeninfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &oauth2.Tokeninfo{Email: f.email}, nil
}

func newTestSessionService(t *testing.T, google GoogleValidator) (*Service, *fakeSessionRepository) {
	t.Helper()
	maker, err := token.NewPasetoMaker(testSymmetricKey)
	assert.NoError(t, err)

	repo := &fakeSessionRepository{operadores: map[string]db.Operador{}}
	return NewService(google, repo, maker), repo
}

func seedOperador(t *testing.T, repo *fakeSessionRepository) {
	t.Helper()
	hash, err := hashChaveAcesso("chave-secreta")
	assert.NoError(t, err)
	repo.operadores["12345"] = db.Operador{
		ID:          1,
		Matricula:   "12345",
		Nome:        "Operador Teste",
		Email:       sql.NullString{String: "operador@pm.gov.br", Valid: true},
		ChaveAcesso: hash,
		Ativo:       true,
	}
}

func TestLoginComMatriculaEChave(t *testing.T) {
	service, repo := newTestSessionService(t, &fakeGoogleValidator{})
	seedOperador(t, repo)

	response, err := service.Login(context.Background(), LoginRequest{
		Matricula:   "12345",
		ChaveAcesso: "chave-secreta",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "Operador Teste", response.Nome)
	assert.Equal(t, "operador@pm.gov.br", response.Email)
}

func TestLoginChaveErrada(t *testing.T) {
	service, repo := newTestSessionService(t, &fakeGoogleValidator{})
	seedOperador(t, repo)

	_, err := service.Login(context.Background(), LoginRequest{
		Matricula:   "12345",
		ChaveAcesso: "chave-errada",
	})
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

func TestLoginMatriculaDesconhecida(t *testing.T) {
	service, _ := newTestSessionService(t, &fakeGoogleValidator{})

	_, err := service.Login(context.Background(), LoginRequest{
		Matricula:   "99999",
		ChaveAcesso: "qualquer",
	})
	assert.ErrorIs(t, err, ErrOperadorNaoEncontrado)
}

func TestLoginComTokenGoogle(t *testing.T) {
	service, repo := newTestSessionService(t, &fakeGoogleValidator{email: "operador@pm.gov.br"})
	seedOperador(t, repo)

	response, err := service.Login(context.Background(), LoginRequest{Token: "id-token"})
	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "12345", response.Matricula)
}

func TestLoginTokenGoogleInvalido(t *testing.T) {
	service, repo := newTestSessionService(t, &fakeGoogleValidator{err: errors.New("token inválido")})
	seedOperador(t, repo)

	_, err := service.Login(context.Background(), LoginRequest{Token: "id-token"})
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

func TestLoginTokenGoogleSemCadastro(t *testing.T) {
	service, _ := newTestSessionService(t, &fakeGoogleValidator{email: "desconhecido@pm.gov.br"})

	_, err := service.Login(context.Background(), LoginRequest{Token: "id-token"})
	assert.ErrorIs(t, err, ErrOperadorNaoEncontrado)
}

func TestCriarOperador(t *testing.T) {
	service, repo := newTestSessionService(t, &fakeGoogleValidator{})

	response, err := service.CriarOperador(context.Background(), CriarOperadorRequest{
		Matricula:   "54321",
		Nome:        "Novo Operador",
		Email:       "novo@pm.gov.br",
		ChaveAcesso: "chave-inicial",
	})
	assert.NoError(t, err)
	assert.Equal(t, "54321", response.Matricula)

	// a chave é persistida como hash e continua verificável
	operador := repo.operadores["54321"]
	assert.NotEqual(t, "chave-inicial", operador.ChaveAcesso)
	assert.True(t, verifyChaveAcesso("chave-inicial", operador.ChaveAcesso))
}

func TestCriarOperadorDuplicado(t *testing.T) {
	service, repo := newTestSessionService(t, &fakeGoogleValidator{})
	seedOperador(t, repo)

	_, err := service.CriarOperador(context.Background(), CriarOperadorRequest{
		Matricula:   "12345",
		Nome:        "Outro",
		Email:       "outro@pm.gov.br",
		ChaveAcesso: "chave-qualquer",
	})
	assert.ErrorIs(t, err, ErrOperadorJaExiste)
}
