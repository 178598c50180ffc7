package feedback

import (
	"database/sql"
	"time"

	db "sentinela/db/sqlc"
)

type SalvarFeedbackRequest struct {
	Placa                string  `json:"placa"`
	TextoRelato          string  `json:"texto_relato" validate:"required"`
	ClassificacaoUsuario string  `json:"classificacao_usuario" validate:"required"`
	ClassificacaoModelo  string  `json:"classificacao_modelo"`
	ConfiancaModelo      float64 `json:"confianca_modelo"`
	FeedbackUsuario      string  `json:"feedback_usuario" validate:"required,oneof=correto incorreto parcial"`
	Observacoes          string  `json:"observacoes"`
	Usuario              string  `json:"usuario"`
	Contexto             string  `json:"contexto"`
}

type FeedbackResponse struct {
	ID                   int64     `json:"id"`
	Placa                string    `json:"placa"`
	TextoRelato          string    `json:"texto_relato"`
	ClassificacaoUsuario string    `json:"classificacao_usuario"`
	ClassificacaoModelo  string    `json:"classificacao_modelo"`
	ConfiancaModelo      float64   `json:"confianca_modelo"`
	FeedbackUsuario      string    `json:"feedback_usuario"`
	Observacoes          string    `json:"observacoes"`
	Usuario              string    `json:"usuario"`
	Contexto             string    `json:"contexto"`
	CriadoEm             time.Time `json:"criado_em"`
}

type StatsResponse struct {
	Total      int64            `json:"total"`
	Corretos   int64            `json:"corretos"`
	Incorretos int64            `json:"incorretos"`
	Parciais   int64            `json:"parciais"`
	Acuracia   float64          `json:"acuracia"`
	PorClasse  map[string]int64 `json:"por_classe"`
}

func (f *FeedbackResponse) ParseFromFeedbackObject(result db.Feedback) {
	f.ID = result.ID
	f.Placa = result.Placa.String
	f.TextoRelato = result.TextoRelato
	f.ClassificacaoUsuario = result.ClassificacaoUsuario
	f.ClassificacaoModelo = result.ClassificacaoModelo.String
	f.ConfiancaModelo = result.ConfiancaModelo
	f.FeedbackUsuario = result.FeedbackUsuario
	f.Observacoes = result.Observacoes.String
	f.Usuario = result.Usuario.String
	f.Contexto = result.Contexto.String
	f.CriadoEm = result.CriadoEm
}

func parseNullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
