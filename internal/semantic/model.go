package semantic

import (
	"time"
)

type AnaliseRelatoRequest struct {
	Relato string `json:"relato" validate:"required"`
}

type AnaliseLoteRequest struct {
	Relatos []string `json:"relatos" validate:"required,min=1"`
}

type RelatoAnalisado struct {
	OcorrenciaID int64     `json:"ocorrencia_id,omitempty"`
	Datahora     time.Time `json:"datahora,omitempty"`
	Relato       string    `json:"relato"`
	Resultado    Resultado `json:"resultado"`
}

type AnalisePlacaResponse struct {
	Placa                     string            `json:"placa"`
	TotalRelatos              int               `json:"total_relatos"`
	ScoreMedio                float64           `json:"score_medio"`
	ScoreMaximo               float64           `json:"score_maximo"`
	NivelRisco                string            `json:"nivel_risco"`
	ClassificacaoPredominante string            `json:"classificacao_predominante"`
	Relatos                   []RelatoAnalisado `json:"relatos"`
}
