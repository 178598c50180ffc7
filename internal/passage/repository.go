package passage

import (
	"context"
	"database/sql"

	db "sentinela/db/sqlc"
)

type InterfaceRepository interface {
	GetPassagemById(ctx context.Context, id int64) (db.Passagem, error)
	GetPassagensByIds(ctx context.Context, ids []int64) ([]db.Passagem, error)
	UpdatePassagemIlicitoIda(ctx context.Context, arg db.UpdatePassagemIlicitoIdaParams) error
	UpdatePassagemIlicitoVolta(ctx context.Context, arg db.UpdatePassagemIlicitoVoltaParams) error
	GetVeiculoById(ctx context.Context, id int64) (db.Veiculo, error)
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewPassageRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		Queries: q,
	}
}

func (r *Repository) GetPassagemById(ctx context.Context, id int64) (db.Passagem, error) {
	return r.Queries.GetPassagemById(ctx, id)
}

func (r *Repository) GetPassagensByIds(ctx context.Context, ids []int64) ([]db.Passagem, error) {
	return r.Queries.GetPassagensByIds(ctx, ids)
}

func (r *Repository) UpdatePassagemIlicitoIda(ctx context.Context, arg db.UpdatePassagemIlicitoIdaParams) error {
	return r.Queries.UpdatePassagemIlicitoIda(ctx, arg)
}

func (r *Repository) UpdatePassagemIlicitoVolta(ctx context.Context, arg db.UpdatePassagemIlicitoVoltaParams) error {
	return r.Queries.UpdatePassagemIlicitoVolta(ctx, arg)
}

func (r *Repository) GetVeiculoById(ctx context.Context, id int64) (db.Veiculo, error) {
	return r.Queries.GetVeiculoById(ctx, id)
}
