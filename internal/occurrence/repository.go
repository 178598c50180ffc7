package occurrence

import (
	"context"
	"database/sql"

	db "sentinela/db/sqlc"
)

type InterfaceRepository interface {
	GetVeiculoByPlaca(ctx context.Context, placa string) (db.Veiculo, error)
	UpsertVeiculo(ctx context.Context, arg db.UpsertVeiculoParams) (db.Veiculo, error)
	CreateOcorrencia(ctx context.Context, arg db.CreateOcorrenciaParams) (db.Ocorrencia, error)
	GetOcorrenciaById(ctx context.Context, id int64) (db.Ocorrencia, error)
	UpdateOcorrencia(ctx context.Context, arg db.UpdateOcorrenciaParams) error
	DeleteOcorrencia(ctx context.Context, id int64) error
	CreateApreensao(ctx context.Context, arg db.CreateApreensaoParams) error
	DeleteApreensoesByOcorrencia(ctx context.Context, ocorrenciaID int64) error
	ListTiposApreensao(ctx context.Context) ([]string, error)
	UpsertPessoa(ctx context.Context, arg db.UpsertPessoaParams) error
	ListLocaisEntrega(ctx context.Context) ([]sql.NullString, error)
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewOccurrenceRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		Queries: q,
	}
}

func (r *Repository) GetVeiculoByPlaca(ctx context.Context, placa string) (db.Veiculo, error) {
	return r.Queries.GetVeiculoByPlaca(ctx, placa)
}

func (r *Repository) UpsertVeiculo(ctx context.Context, arg db.UpsertVeiculoParams) (db.Veiculo, error) {
	return r.Queries.UpsertVeiculo(ctx, arg)
}

func (r *Repository) CreateOcorrencia(ctx context.Context, arg db.CreateOcorrenciaParams) (db.Ocorrencia, error) {
	return r.Queries.CreateOcorrencia(ctx, arg)
}

func (r *Repository) GetOcorrenciaById(ctx context.Context, id int64) (db.Ocorrencia, error) {
	return r.Queries.GetOcorrenciaById(ctx, id)
}

func (r *Repository) UpdateOcorrencia(ctx context.Context, arg db.UpdateOcorrenciaParams) error {
	return r.Queries.UpdateOcorrencia(ctx, arg)
}

func (r *Repository) DeleteOcorrencia(ctx context.Context, id int64) error {
	return r.Queries.DeleteOcorrencia(ctx, id)
}

func (r *Repository) CreateApreensao(ctx context.Context, arg db.CreateApreensaoParams) error {
	return r.Queries.CreateApreensao(ctx, arg)
}

func (r *Repository) DeleteApreensoesByOcorrencia(ctx context.Context, ocorrenciaID int64) error {
	return r.Queries.DeleteApreensoesByOcorrencia(ctx, ocorrenciaID)
}

func (r *Repository) ListTiposApreensao(ctx context.Context) ([]string, error) {
	return r.Queries.ListTiposApreensao(ctx)
}

func (r *Repository) UpsertPessoa(ctx context.Context, arg db.UpsertPessoaParams) error {
	return r.Queries.UpsertPessoa(ctx, arg)
}

func (r *Repository) ListLocaisEntrega(ctx context.Context) ([]sql.NullString, error) {
	return r.Queries.ListLocaisEntrega(ctx)
}
