package occurrence

import (
	"encoding/json"
	"time"

	db "sentinela/db/sqlc"
)

type PessoaEnvolvida struct {
	Nome         string `json:"nome" validate:"required"`
	Cpf          string `json:"cpf"`
	Condutor     bool   `json:"condutor"`
	Proprietario bool   `json:"proprietario"`
	Passageiro   bool   `json:"passageiro"`
}

type ApreensaoRequest struct {
	Tipo       string `json:"tipo" validate:"required"`
	Quantidade string `json:"quantidade"`
	Unidade    string `json:"unidade"`
}

type CreateOcorrenciaRequest struct {
	Placa       string             `json:"placa" validate:"required"`
	Tipo        string             `json:"tipo" validate:"required,oneof=Abordagem BOP"`
	Datahora    string             `json:"datahora" validate:"required"`
	DatahoraFim string             `json:"datahora_fim"`
	Relato      string             `json:"relato"`
	Ocupantes   []PessoaEnvolvida  `json:"ocupantes"`
	Presos      []PessoaEnvolvida  `json:"presos"`
	Veiculos    []string           `json:"veiculos"`
	Apreensoes  []ApreensaoRequest `json:"apreensoes"`
}

type UpdateOcorrenciaRequest struct {
	ID          int64              `json:"-"`
	Tipo        string             `json:"tipo"`
	Datahora    string             `json:"datahora"`
	DatahoraFim string             `json:"datahora_fim"`
	Relato      string             `json:"relato"`
	Ocupantes   []PessoaEnvolvida  `json:"ocupantes"`
	Presos      []PessoaEnvolvida  `json:"presos"`
	Veiculos    []string           `json:"veiculos"`
	Apreensoes  []ApreensaoRequest `json:"apreensoes"`
}

type LocalEntregaRequest struct {
	Placa     string `json:"placa" validate:"required"`
	Municipio string `json:"municipio" validate:"required"`
	Inicio    string `json:"inicio_iso" validate:"required"`
	Fim       string `json:"fim_iso" validate:"required"`
	Relato    string `json:"relato"`
}

type OcorrenciaResponse struct {
	ID          int64           `json:"id"`
	VeiculoID   int64           `json:"veiculo_id"`
	Tipo        string          `json:"tipo"`
	Datahora    time.Time       `json:"datahora"`
	DatahoraFim *time.Time      `json:"datahora_fim"`
	Relato      string          `json:"relato"`
	Ocupantes   json.RawMessage `json:"ocupantes"`
	Presos      json.RawMessage `json:"presos"`
	Veiculos    json.RawMessage `json:"veiculos"`
	CriadoEm    time.Time       `json:"criado_em"`
}

type LocalEntregaResponse struct {
	Municipios []string `json:"municipios"`
}

func (o *OcorrenciaResponse) ParseFromOcorrenciaObject(result db.Ocorrencia) {
	o.ID = result.ID
	o.VeiculoID = result.VeiculoID
	o.Tipo = string(result.Tipo)
	o.Datahora = result.Datahora
	if result.DatahoraFim.Valid {
		o.DatahoraFim = &result.DatahoraFim.Time
	}
	o.Relato = result.Relato.String
	if result.Ocupantes.Valid {
		o.Ocupantes = result.Ocupantes.RawMessage
	}
	if result.Presos.Valid {
		o.Presos = result.Presos.RawMessage
	}
	if result.Veiculos.Valid {
		o.Veiculos = result.Veiculos.RawMessage
	}
	o.CriadoEm = result.CriadoEm
}
