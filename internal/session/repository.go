package session

import (
	"context"
	"database/sql"

	db "sentinela/db/sqlc"
)

type RepositoryInterface interface {
	GetOperadorByMatricula(ctx context.Context, matricula string) (db.Operador, error)
	GetOperadorByEmail(ctx context.Context, email sql.NullString) (db.Operador, error)
	CreateOperador(ctx context.Context, arg db.CreateOperadorParams) (db.Operador, error)
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewRepository(conn *sql.DB) *Repository {
	q := db.New(conn)
	return &Repository{
		Conn:    conn,
		Queries: q,
	}
}

func (r *Repository) GetOperadorByMatricula(ctx context.Context, matricula string) (db.Operador, error) {
	return r.Queries.GetOperadorByMatricula(ctx, matricula)
}

func (r *Repository) GetOperadorByEmail(ctx context.Context, email sql.NullString) (db.Operador, error) {
	return r.Queries.GetOperadorByEmail(ctx, email)
}

func (r *Repository) CreateOperador(ctx context.Context, arg db.CreateOperadorParams) (db.Operador, error) {
	return r.Queries.CreateOperador(ctx, arg)
}
