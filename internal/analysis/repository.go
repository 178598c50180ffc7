package analysis

import (
	"context"
	"database/sql"

	db "sentinela/db/sqlc"
)

type InterfaceRepository interface {
	GetPassagensIlicitasIda(ctx context.Context, arg db.GetPassagensIlicitasIdaParams) ([]db.GetPassagensIlicitasIdaRow, error)
	GetTemposEntrega(ctx context.Context, arg db.GetTemposEntregaParams) ([]db.GetTemposEntregaRow, error)
	GetRotasIlicitas(ctx context.Context, arg db.GetRotasIlicitasParams) ([]db.GetRotasIlicitasRow, error)
	GetInteligenciaVeiculos(ctx context.Context, arg db.GetInteligenciaVeiculosParams) ([]db.GetInteligenciaVeiculosRow, error)
	ListLocaisEntrega(ctx context.Context) ([]sql.NullString, error)
	ListTiposApreensao(ctx context.Context) ([]string, error)
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewAnalysisRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		Queries: q,
	}
}

func (r *Repository) GetPassagensIlicitasIda(ctx context.Context, arg db.GetPassagensIlicitasIdaParams) ([]db.GetPassagensIlicitasIdaRow, error) {
	return r.Queries.GetPassagensIlicitasIda(ctx, arg)
}

func (r *Repository) GetTemposEntrega(ctx context.Context, arg db.GetTemposEntregaParams) ([]db.GetTemposEntregaRow, error) {
	return r.Queries.GetTemposEntrega(ctx, arg)
}

func (r *Repository) GetRotasIlicitas(ctx context.Context, arg db.GetRotasIlicitasParams) ([]db.GetRotasIlicitasRow, error) {
	return r.Queries.GetRotasIlicitas(ctx, arg)
}

func (r *Repository) GetInteligenciaVeiculos(ctx context.Context, arg db.GetInteligenciaVeiculosParams) ([]db.GetInteligenciaVeiculosRow, error) {
	return r.Queries.GetInteligenciaVeiculos(ctx, arg)
}

func (r *Repository) ListLocaisEntrega(ctx context.Context) ([]sql.NullString, error) {
	return r.Queries.ListLocaisEntrega(ctx)
}

func (r *Repository) ListTiposApreensao(ctx context.Context) ([]string, error) {
	return r.Queries.ListTiposApreensao(ctx)
}
