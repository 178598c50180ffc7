package attachment

import (
	"time"

	db "sentinela/db/sqlc"
)

type AnexoResponse struct {
	ID           int64     `json:"id"`
	OcorrenciaID int64     `json:"ocorrencia_id"`
	Nome         string    `json:"nome"`
	Url          string    `json:"url"`
	ContentType  string    `json:"content_type"`
	CriadoEm     time.Time `json:"criado_em"`
}

func (a *AnexoResponse) ParseFromAnexoObject(result db.Anexo) {
	a.ID = result.ID
	a.OcorrenciaID = result.OcorrenciaID
	a.Nome = result.Nome
	a.Url = result.Url
	a.ContentType = result.ContentType.String
	a.CriadoEm = result.CriadoEm
}
