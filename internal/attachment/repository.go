package attachment

import (
	"context"
	"database/sql"

	db "sentinela/db/sqlc"
)

type InterfaceRepository interface {
	CreateAnexo(ctx context.Context, arg db.CreateAnexoParams) (db.Anexo, error)
	GetAnexoById(ctx context.Context, id int64) (db.Anexo, error)
	GetAnexosByOcorrencia(ctx context.Context, ocorrenciaID int64) ([]db.Anexo, error)
	DeleteAnexo(ctx context.Context, id int64) error
	GetOcorrenciaById(ctx context.Context, id int64) (db.Ocorrencia, error)
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewAttachmentRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		Queries: q,
	}
}

func (r *Repository) CreateAnexo(ctx context.Context, arg db.CreateAnexoParams) (db.Anexo, error) {
	return r.Queries.CreateAnexo(ctx, arg)
}

func (r *Repository) GetAnexoById(ctx context.Context, id int64) (db.Anexo, error) {
	return r.Queries.GetAnexoById(ctx, id)
}

func (r *Repository) GetAnexosByOcorrencia(ctx context.Context, ocorrenciaID int64) ([]db.Anexo, error) {
	return r.Queries.GetAnexosByOcorrencia(ctx, ocorrenciaID)
}

func (r *Repository) DeleteAnexo(ctx context.Context, id int64) error {
	return r.Queries.DeleteAnexo(ctx, id)
}

func (r *Repository) GetOcorrenciaById(ctx context.Context, id int64) (db.Ocorrencia, error) {
	return r.Queries.GetOcorrenciaById(ctx, id)
}
