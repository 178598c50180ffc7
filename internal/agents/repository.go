package agents

import (
	"context"
	"database/sql"

	db "sentinela/db/sqlc"
)

type InterfaceRepository interface {
	GetVeiculoByPlaca(ctx context.Context, placa string) (db.Veiculo, error)
	GetPassagensByPlaca(ctx context.Context, placa string) ([]db.GetPassagensByPlacaRow, error)
	GetRelatosByPlaca(ctx context.Context, arg db.GetRelatosByPlacaParams) ([]db.GetRelatosByPlacaRow, error)
	PingDatabase(ctx context.Context) error
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewAgentsRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		Queries: q,
	}
}

func (r *Repository) GetVeiculoByPlaca(ctx context.Context, placa string) (db.Veiculo, error) {
	return r.Queries.GetVeiculoByPlaca(ctx, placa)
}

func (r *Repository) GetPassagensByPlaca(ctx context.Context, placa string) ([]db.GetPassagensByPlacaRow, error) {
	return r.Queries.GetPassagensByPlaca(ctx, placa)
}

func (r *Repository) GetRelatosByPlaca(ctx context.Context, arg db.GetRelatosByPlacaParams) ([]db.GetRelatosByPlacaRow, error) {
	return r.Queries.GetRelatosByPlaca(ctx, arg)
}

func (r *Repository) PingDatabase(ctx context.Context) error {
	return r.Conn.PingContext(ctx)
}
