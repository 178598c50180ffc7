package vehicle

import (
	"context"
	"database/sql"

	db "sentinela/db/sqlc"
)

type InterfaceRepository interface {
	GetVeiculoByPlaca(ctx context.Context, placa string) (db.Veiculo, error)
	UpsertVeiculo(ctx context.Context, arg db.UpsertVeiculoParams) (db.Veiculo, error)
	GetOcorrenciasByVeiculoIds(ctx context.Context, veiculoIds []int64) ([]db.GetOcorrenciasByVeiculoIdsRow, error)
	GetApreensoesByOcorrenciaIds(ctx context.Context, ocorrenciaIds []int64) ([]db.Apreensao, error)
	GetPassagensByVeiculoIds(ctx context.Context, veiculoIds []int64) ([]db.GetPassagensByVeiculoIdsRow, error)
	GetPessoasByVeiculoId(ctx context.Context, veiculoID sql.NullInt64) ([]db.Pessoa, error)
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewVehicleRepository(Conn *sql.DB) *Repository {
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

func (r *Repository) GetOcorrenciasByVeiculoIds(ctx context.Context, veiculoIds []int64) ([]db.GetOcorrenciasByVeiculoIdsRow, error) {
	return r.Queries.GetOcorrenciasByVeiculoIds(ctx, veiculoIds)
}

func (r *Repository) GetApreensoesByOcorrenciaIds(ctx context.Context, ocorrenciaIds []int64) ([]db.Apreensao, error) {
	return r.Queries.GetApreensoesByOcorrenciaIds(ctx, ocorrenciaIds)
}

func (r *Repository) GetPassagensByVeiculoIds(ctx context.Context, veiculoIds []int64) ([]db.GetPassagensByVeiculoIdsRow, error) {
	return r.Queries.GetPassagensByVeiculoIds(ctx, veiculoIds)
}

func (r *Repository) GetPessoasByVeiculoId(ctx context.Context, veiculoID sql.NullInt64) ([]db.Pessoa, error) {
	return r.Queries.GetPessoasByVeiculoId(ctx, veiculoID)
}
