package municipality

import (
	"context"
	"database/sql"

	db "sentinela/db/sqlc"
)

type InterfaceRepository interface {
	ListMunicipios(ctx context.Context) ([]db.Municipio, error)
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewMunicipalityRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		Queries: q,
	}
}

func (r *Repository) ListMunicipios(ctx context.Context) ([]db.Municipio, error) {
	return r.Queries.ListMunicipios(ctx)
}
