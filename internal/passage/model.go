package passage

import (
	db "sentinela/db/sqlc"
)

const (
	FieldIlicitoIda   = "ilicito_ida"
	FieldIlicitoVolta = "ilicito_volta"
)

type UpdatePassagemRequest struct {
	ID    int64  `json:"-"`
	Field string `json:"field" validate:"required,oneof=ilicito_ida ilicito_volta"`
	Value bool   `json:"value"`
}

type UpdatePassagemResponse struct {
	ID       int64            `json:"id"`
	Placa    string           `json:"placa"`
	Field    string           `json:"field"`
	Value    bool             `json:"value"`
	Sugestao *SugestaoEntrega `json:"sugestao_entrega,omitempty"`
}

// SugestaoEntrega é emitida quando a marcação de volta fecha um par
// ida/volta da mesma placa, pré-preenchendo o local de entrega.
type SugestaoEntrega struct {
	Placa     string `json:"placa"`
	InicioIso string `json:"inicio_iso"`
	FimIso    string `json:"fim_iso"`
}

type StatusResponse struct {
	ID           int64 `json:"id"`
	IlicitoIda   bool  `json:"ilicito_ida"`
	IlicitoVolta bool  `json:"ilicito_volta"`
}

type BatchStatusRequest struct {
	Ids []int64 `json:"ids" validate:"required,min=1"`
}

type BatchStatusResponse struct {
	Statuses []StatusResponse `json:"statuses"`
	Erros    []string         `json:"erros"`
}

func (s *StatusResponse) ParseFromPassagemObject(result db.Passagem) {
	s.ID = result.ID
	s.IlicitoIda = result.IlicitoIda
	s.IlicitoVolta = result.IlicitoVolta
}
