package vehicle

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	db "sentinela/db/sqlc"
	"sentinela/validation"
)

type VeiculoResponse struct {
	ID                int64  `json:"id"`
	Placa             string `json:"placa"`
	PlacaFormatada    string `json:"placa_formatada"`
	FormatoPlaca      string `json:"formato_placa"`
	MarcaModelo       string `json:"marca_modelo"`
	Cor               string `json:"cor"`
	Tipo              string `json:"tipo"`
	AnoModelo         string `json:"ano_modelo"`
	LocalEmplacamento string `json:"local_emplacamento"`
	Origem            string `json:"origem"`
}

type ApreensaoResponse struct {
	ID         int64  `json:"id"`
	Tipo       string `json:"tipo"`
	Quantidade string `json:"quantidade"`
	Unidade    string `json:"unidade"`
}

type OcorrenciaResponse struct {
	ID          int64               `json:"id"`
	Tipo        string              `json:"tipo"`
	Datahora    time.Time           `json:"datahora"`
	DatahoraFim *time.Time          `json:"datahora_fim"`
	Relato      string              `json:"relato"`
	Ocupantes   json.RawMessage     `json:"ocupantes"`
	Presos      json.RawMessage     `json:"presos"`
	Veiculos    json.RawMessage     `json:"veiculos"`
	Apreensoes  []ApreensaoResponse `json:"apreensoes"`
}

type PassagemResponse struct {
	ID           int64     `json:"id"`
	Datahora     time.Time `json:"datahora"`
	Municipio    string    `json:"municipio"`
	Rodovia      string    `json:"rodovia"`
	IlicitoIda   bool      `json:"ilicito_ida"`
	IlicitoVolta bool      `json:"ilicito_volta"`
}

type PessoaDetalhes struct {
	EhProprietario bool `json:"eh_proprietario"`
	EhCondutor     bool `json:"eh_condutor"`
	EhPassageiro   bool `json:"eh_passageiro"`
	EhRelevante    bool `json:"eh_relevante"`
}

type PessoaResponse struct {
	ID            int64          `json:"id"`
	Nome          string         `json:"nome"`
	CpfCnpj       string         `json:"cpf_cnpj"`
	Classificacao string         `json:"classificacao"`
	Relevante     bool           `json:"relevante"`
	Condutor      bool           `json:"condutor"`
	Proprietario  bool           `json:"proprietario"`
	Passageiro    bool           `json:"passageiro"`
	Detalhes      PessoaDetalhes `json:"detalhes"`
}

type ResumoResponse struct {
	TotalPessoas       int `json:"total_pessoas"`
	TotalProprietarios int `json:"total_proprietarios"`
	TotalCondutores    int `json:"total_condutores"`
	TotalPassageiros   int `json:"total_passageiros"`
	TotalRelevantes    int `json:"total_relevantes"`
	TotalPassagens     int `json:"total_passagens"`
	TotalOcorrencias   int `json:"total_ocorrencias"`
}

type DossierResponse struct {
	Veiculo     VeiculoResponse      `json:"veiculo"`
	Ocorrencias []OcorrenciaResponse `json:"ocorrencias"`
	Passagens   []PassagemResponse   `json:"passagens"`
	Pessoas     []PessoaResponse     `json:"pessoas"`
	Resumo      ResumoResponse       `json:"resumo"`
}

func (v *VeiculoResponse) ParseFromVeiculoObject(result db.Veiculo, origem string) {
	v.ID = result.ID
	v.Placa = result.Placa
	v.PlacaFormatada = validation.FormatPlaca(result.Placa)
	_, formato := validation.ValidatePlaca(result.Placa)
	v.FormatoPlaca = string(formato)
	v.MarcaModelo = result.MarcaModelo.String
	v.Cor = result.Cor.String
	v.Tipo = result.Tipo.String
	v.AnoModelo = result.AnoModelo.String
	v.LocalEmplacamento = result.LocalEmplacamento.String
	v.Origem = origem
}

func (o *OcorrenciaResponse) ParseFromOcorrenciaRow(result db.GetOcorrenciasByVeiculoIdsRow) {
	o.ID = result.ID
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
	o.Apreensoes = []ApreensaoResponse{}
}

func (p *PassagemResponse) ParseFromPassagemRow(result db.GetPassagensByVeiculoIdsRow) {
	p.ID = result.ID
	p.Datahora = result.Datahora
	p.Municipio = result.Municipio.String
	p.Rodovia = result.Rodovia.String
	p.IlicitoIda = result.IlicitoIda
	p.IlicitoVolta = result.IlicitoVolta
}

func (p *PessoaResponse) ParseFromPessoaObject(result db.Pessoa) {
	p.ID = result.ID
	p.Nome = result.Nome
	p.CpfCnpj = result.CpfCnpj
	p.Relevante = result.Relevante
	p.Condutor = result.Condutor
	p.Proprietario = result.Proprietario
	p.Passageiro = result.Passageiro
	p.Classificacao = classificarPessoa(result)
	p.Detalhes = PessoaDetalhes{
		EhProprietario: result.Proprietario,
		EhCondutor:     result.Condutor,
		EhPassageiro:   result.Passageiro,
		EhRelevante:    result.Relevante,
	}
}

// classificarPessoa deriva o rótulo exibido no dossiê a partir dos vínculos da
// pessoa com o veículo.
func classificarPessoa(result db.Pessoa) string {
	var papeis []string
	if result.Proprietario {
		papeis = append(papeis, "Proprietário")
	}
	if result.Condutor {
		papeis = append(papeis, "Condutor")
	}
	if result.Passageiro {
		papeis = append(papeis, "Passageiro")
	}
	if result.Relevante {
		papeis = append(papeis, "Relevante")
	}
	if len(papeis) == 0 {
		return "Não Classificado"
	}
	return strings.Join(papeis, " / ")
}

func parseNullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
