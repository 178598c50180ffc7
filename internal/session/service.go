package session

import (
	"context"
	"database/sql"
	"errors"
	"time"

	db "sentinela/db/sqlc"
	"sentinela/infra/token"

	"google.golang.org/api/oauth2/v2"
)

const tokenDuration = 24 * time.Hour

var (
	ErrOperadorNaoEncontrado = errors.New("operador não encontrado")
	ErrCredenciaisInvalidas  = errors.New("credenciais inválidas")
	ErrOperadorJaExiste      = errors.New("operador já cadastrado")
)

// GoogleValidator valida o ID token institucional emitido pelo SSO.
type GoogleValidator interface {
	Validate(token string) (*oauth2.Tokeninfo, error)
}

type ServiceInterface interface {
	Login(ctx context.Context, data LoginRequest) (LoginResponse, error)
	CriarOperador(ctx context.Context, data CriarOperadorRequest) (CriarOperadorResponse, error)
}

type Service struct {
	googleToken GoogleValidator
	repository  RepositoryInterface
	maker       token.Maker
}

func NewService(googleToken GoogleValidator, repository RepositoryInterface, maker token.Maker) *Service {
	return &Service{googleToken, repository, maker}
}

// Login autentica por matrícula e chave de acesso ou por ID token do Google,
// casado pelo e-mail institucional do operador.
func (s *Service) Login(ctx context.Context, data LoginRequest) (LoginResponse, error) {
	var operador db.Operador
	var err error

	if data.Token != "" {
		tokenInfo, err := s.googleToken.Validate(data.Token)
		if err != nil {
			return LoginResponse{}, ErrCredenciaisInvalidas
		}

		operador, err = s.repository.GetOperadorByEmail(ctx, sql.NullString{String: tokenInfo.Email, Valid: true})
		if errors.Is(err, sql.ErrNoRows) {
			return LoginResponse{}, ErrOperadorNaoEncontrado
		}
		if err != nil {
			return LoginResponse{}, err
		}
	} else {
		operador, err = s.repository.GetOperadorByMatricula(ctx, data.Matricula)
		if errors.Is(err, sql.ErrNoRows) {
			return LoginResponse{}, ErrOperadorNaoEncontrado
		}
		if err != nil {
			return LoginResponse{}, err
		}

		if !verifyChaveAcesso(data.ChaveAcesso, operador.ChaveAcesso) {
			return LoginResponse{}, ErrCredenciaisInvalidas
		}
	}

	tokenStr, err := s.maker.CreateToken(operador.ID, operador.Matricula, operador.Nome, operador.Email.String, tokenDuration)
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		Token:     tokenStr,
		Nome:      operador.Nome,
		Matricula: operador.Matricula,
		Email:     operador.Email.String,
	}, nil
}

func (s *Service) CriarOperador(ctx context.Context, data CriarOperadorRequest) (CriarOperadorResponse, error) {
	_, err := s.repository.GetOperadorByMatricula(ctx, data.Matricula)
	if err == nil {
		return CriarOperadorResponse{}, ErrOperadorJaExiste
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return CriarOperadorResponse{}, err
	}

	hash, err := hashChaveAcesso(data.ChaveAcesso)
	if err != nil {
		return CriarOperadorResponse{}, err
	}

	operador, err := s.repository.CreateOperador(ctx, db.CreateOperadorParams{
		Matricula:   data.Matricula,
		Nome:        data.Nome,
		Email:       sql.NullString{String: data.Email, Valid: true},
		ChaveAcesso: hash,
	})
	if err != nil {
		return CriarOperadorResponse{}, err
	}

	return CriarOperadorResponse{
		ID:        operador.ID,
		Matricula: operador.Matricula,
		Nome:      operador.Nome,
		Email:     operador.Email.String,
	}, nil
}
