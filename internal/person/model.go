package person

import (
	"time"

	db "sentinela/db/sqlc"
	"sentinela/validation"
)

type PessoaResponse struct {
	ID           int64  `json:"id"`
	Nome         string `json:"nome"`
	CpfCnpj      string `json:"cpf_cnpj"`
	VeiculoID    *int64 `json:"veiculo_id"`
	Relevante    bool   `json:"relevante"`
	Condutor     bool   `json:"condutor"`
	Proprietario bool   `json:"proprietario"`
	Passageiro   bool   `json:"passageiro"`
}

type VeiculoVinculado struct {
	ID             int64  `json:"id"`
	Placa          string `json:"placa"`
	PlacaFormatada string `json:"placa_formatada"`
	MarcaModelo    string `json:"marca_modelo"`
	Cor            string `json:"cor"`
}

type PassagemVinculada struct {
	VeiculoID    int64     `json:"veiculo_id"`
	Datahora     time.Time `json:"datahora"`
	Municipio    string    `json:"municipio"`
	Rodovia      string    `json:"rodovia"`
	IlicitoIda   bool      `json:"ilicito_ida"`
	IlicitoVolta bool      `json:"ilicito_volta"`
}

type OcorrenciaVinculada struct {
	VeiculoID int64     `json:"veiculo_id"`
	Tipo      string    `json:"tipo"`
	Datahora  time.Time `json:"datahora"`
	Relato    string    `json:"relato"`
}

type ConsultaCpfResponse struct {
	Documento   string                `json:"documento"`
	Pessoas     []PessoaResponse      `json:"pessoas"`
	Veiculos    []VeiculoVinculado    `json:"veiculos"`
	Passagens   []PassagemVinculada   `json:"passagens"`
	Ocorrencias []OcorrenciaVinculada `json:"ocorrencias"`
}

type UpdatePessoaRequest struct {
	ID           int64  `json:"id"`
	Nome         string `json:"nome"`
	CpfCnpj      string `json:"cpf_cnpj"`
	Relevante    *bool  `json:"relevante"`
	Condutor     *bool  `json:"condutor"`
	Proprietario *bool  `json:"proprietario"`
	Passageiro   *bool  `json:"passageiro"`
}

func (p *PessoaResponse) ParseFromPessoaObject(result db.Pessoa) {
	p.ID = result.ID
	p.Nome = result.Nome
	p.CpfCnpj = result.CpfCnpj
	if result.VeiculoID.Valid {
		veiculoID := result.VeiculoID.Int64
		p.VeiculoID = &veiculoID
	}
	p.Relevante = result.Relevante
	p.Condutor = result.Condutor
	p.Proprietario = result.Proprietario
	p.Passageiro = result.Passageiro
}

func (v *VeiculoVinculado) ParseFromVeiculoObject(result db.Veiculo) {
	v.ID = result.ID
	v.Placa = result.Placa
	v.PlacaFormatada = validation.FormatPlaca(result.Placa)
	v.MarcaModelo = result.MarcaModelo.String
	v.Cor = result.Cor.String
}
