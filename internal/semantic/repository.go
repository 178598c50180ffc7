package semantic

import (
	"context"
	"database/sql"

	db "sentinela/db/sqlc"
)

type InterfaceRepository interface {
	CreateRelatoExtracao(ctx context.Context, arg db.CreateRelatoExtracaoParams) (db.RelatoExtracao, error)
	GetRelatosByPlaca(ctx context.Context, arg db.GetRelatosByPlacaParams) ([]db.GetRelatosByPlacaRow, error)
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewSemanticRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		Queries: q,
	}
}

func (r *Repository) CreateRelatoExtracao(ctx context.Context, arg db.CreateRelatoExtracaoParams) (db.RelatoExtracao, error) {
	return r.Queries.CreateRelatoExtracao(ctx, arg)
}

func (r *Repository) GetRelatosByPlaca(ctx context.Context, arg db.GetRelatosByPlacaParams) ([]db.GetRelatosByPlacaRow, error) {
	return r.Queries.GetRelatosByPlaca(ctx, arg)
}
