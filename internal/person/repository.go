package person

import (
	"context"
	"database/sql"

	db "sentinela/db/sqlc"
)

type InterfaceRepository interface {
	GetPessoasByDocumento(ctx context.Context, cpfCnpj string) ([]db.Pessoa, error)
	GetPessoaById(ctx context.Context, id int64) (db.Pessoa, error)
	UpdatePessoa(ctx context.Context, arg db.UpdatePessoaParams) error
	DeletePessoa(ctx context.Context, id int64) error
	GetVeiculosByIds(ctx context.Context, ids []int64) ([]db.Veiculo, error)
	GetPassagensByVeiculoIds(ctx context.Context, veiculoIds []int64) ([]db.GetPassagensByVeiculoIdsRow, error)
	GetOcorrenciasByVeiculoIds(ctx context.Context, veiculoIds []int64) ([]db.GetOcorrenciasByVeiculoIdsRow, error)
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewPersonRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		Queries: q,
	}
}

func (r *Repository) GetPessoasByDocumento(ctx context.Context, cpfCnpj string) ([]db.Pessoa, error) {
	return r.Queries.GetPessoasByDocumento(ctx, cpfCnpj)
}

func (r *Repository) GetPessoaById(ctx context.Context, id int64) (db.Pessoa, error) {
	return r.Queries.GetPessoaById(ctx, id)
}

func (r *Repository) UpdatePessoa(ctx context.Context, arg db.UpdatePessoaParams) error {
	return r.Queries.UpdatePessoa(ctx, arg)
}

func (r *Repository) DeletePessoa(ctx context.Context, id int64) error {
	return r.Queries.DeletePessoa(ctx, id)
}

func (r *Repository) GetVeiculosByIds(ctx context.Context, ids []int64) ([]db.Veiculo, error) {
	return r.Queries.GetVeiculosByIds(ctx, ids)
}

func (r *Repository) GetPassagensByVeiculoIds(ctx context.Context, veiculoIds []int64) ([]db.GetPassagensByVeiculoIdsRow, error) {
	return r.Queries.GetPassagensByVeiculoIds(ctx, veiculoIds)
}

func (r *Repository) GetOcorrenciasByVeiculoIds(ctx context.Context, veiculoIds []int64) ([]db.GetOcorrenciasByVeiculoIdsRow, error) {
	return r.Queries.GetOcorrenciasByVeiculoIds(ctx, veiculoIds)
}
