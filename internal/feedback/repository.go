package feedback

import (
	"context"
	"database/sql"

	db "sentinela/db/sqlc"
)

type InterfaceRepository interface {
	CreateFeedback(ctx context.Context, arg db.CreateFeedbackParams) (db.Feedback, error)
	GetFeedbackStats(ctx context.Context) (db.GetFeedbackStatsRow, error)
	GetFeedbackStatsByClasse(ctx context.Context) ([]db.GetFeedbackStatsByClasseRow, error)
	ListFeedback(ctx context.Context, limit int32) ([]db.Feedback, error)
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewFeedbackRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		Queries: q,
	}
}

func (r *Repository) CreateFeedback(ctx context.Context, arg db.CreateFeedbackParams) (db.Feedback, error) {
	return r.Queries.CreateFeedback(ctx, arg)
}

func (r *Repository) GetFeedbackStats(ctx context.Context) (db.GetFeedbackStatsRow, error) {
	return r.Queries.GetFeedbackStats(ctx)
}

func (r *Repository) GetFeedbackStatsByClasse(ctx context.Context) ([]db.GetFeedbackStatsByClasseRow, error) {
	return r.Queries.GetFeedbackStatsByClasse(ctx)
}

func (r *Repository) ListFeedback(ctx context.Context, limit int32) ([]db.Feedback, error) {
	return r.Queries.ListFeedback(ctx, limit)
}
