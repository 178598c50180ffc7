package person

import (
	"context"
	"database/sql"
	"errors"

	db "sentinela/db/sqlc"
	"sentinela/validation"
)

var ErrDocumentoInvalido = errors.New("documento inválido")
var ErrPessoaNaoEncontrada = errors.New("pessoa não encontrada")

type InterfaceService interface {
	ConsultaCpfService(ctx context.Context, documento string) (ConsultaCpfResponse, error)
	UpdatePessoaService(ctx context.Context, data UpdatePessoaRequest) error
	DeletePessoaService(ctx context.Context, id int64) error
}

type Service struct {
	InterfaceService InterfaceRepository
}

func NewPersonService(InterfaceService InterfaceRepository) *Service {
	return &Service{InterfaceService}
}

// ConsultaCpfService busca todas as pessoas registradas com o documento e o
// histórico dos veículos em que aparecem.
func (p *Service) ConsultaCpfService(ctx context.Context, documento string) (ConsultaCpfResponse, error) {
	normalized := validation.NormalizeDocument(documento)
	if !validation.ValidateDocument(normalized) {
		return ConsultaCpfResponse{}, ErrDocumentoInvalido
	}

	pessoas, err := p.InterfaceService.GetPessoasByDocumento(ctx, normalized)
	if err != nil {
		return ConsultaCpfResponse{}, err
	}
	if len(pessoas) == 0 {
		return ConsultaCpfResponse{}, ErrPessoaNaoEncontrada
	}

	response := ConsultaCpfResponse{
		Documento:   normalized,
		Pessoas:     []PessoaResponse{},
		Veiculos:    []VeiculoVinculado{},
		Passagens:   []PassagemVinculada{},
		Ocorrencias: []OcorrenciaVinculada{},
	}

	var veiculoIds []int64
	seen := map[int64]bool{}
	for _, pessoa := range pessoas {
		pessoaResponse := PessoaResponse{}
		pessoaResponse.ParseFromPessoaObject(pessoa)
		response.Pessoas = append(response.Pessoas, pessoaResponse)

		if pessoa.VeiculoID.Valid && !seen[pessoa.VeiculoID.Int64] {
			seen[pessoa.VeiculoID.Int64] = true
			veiculoIds = append(veiculoIds, pessoa.VeiculoID.Int64)
		}
	}

	if len(veiculoIds) == 0 {
		return response, nil
	}

	veiculos, err := p.InterfaceService.GetVeiculosByIds(ctx, veiculoIds)
	if err != nil {
		return ConsultaCpfResponse{}, err
	}
	for _, veiculo := range veiculos {
		veiculoResponse := VeiculoVinculado{}
		veiculoResponse.ParseFromVeiculoObject(veiculo)
		response.Veiculos = append(response.Veiculos, veiculoResponse)
	}

	passagens, err := p.InterfaceService.GetPassagensByVeiculoIds(ctx, veiculoIds)
	if err != nil {
		return ConsultaCpfResponse{}, err
	}
	for _, passagem := range passagens {
		response.Passagens = append(response.Passagens, PassagemVinculada{
			VeiculoID:    passagem.VeiculoID,
			Datahora:     passagem.Datahora,
			Municipio:    passagem.Municipio.String,
			Rodovia:      passagem.Rodovia.String,
			IlicitoIda:   passagem.IlicitoIda,
			IlicitoVolta: passagem.IlicitoVolta,
		})
	}

	ocorrencias, err := p.InterfaceService.GetOcorrenciasByVeiculoIds(ctx, veiculoIds)
	if err != nil {
		return ConsultaCpfResponse{}, err
	}
	for _, ocorrencia := range ocorrencias {
		response.Ocorrencias = append(response.Ocorrencias, OcorrenciaVinculada{
			VeiculoID: ocorrencia.VeiculoID,
			Tipo:      string(ocorrencia.Tipo),
			Datahora:  ocorrencia.Datahora,
			Relato:    ocorrencia.Relato.String,
		})
	}

	return response, nil
}

func (p *Service) UpdatePessoaService(ctx context.Context, data UpdatePessoaRequest) error {
	_, err := p.InterfaceService.GetPessoaById(ctx, data.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPessoaNaoEncontrada
	}
	if err != nil {
		return err
	}

	documento := validation.NormalizeDocument(data.CpfCnpj)
	if documento != "" && !validation.ValidateDocument(documento) {
		return ErrDocumentoInvalido
	}

	arg := db.UpdatePessoaParams{
		ID:           data.ID,
		Nome:         validation.SanitizeText(data.Nome, 200),
		CpfCnpj:      documento,
		Relevante:    parseNullBool(data.Relevante),
		Condutor:     parseNullBool(data.Condutor),
		Proprietario: parseNullBool(data.Proprietario),
		Passageiro:   parseNullBool(data.Passageiro),
	}

	return p.InterfaceService.UpdatePessoa(ctx, arg)
}

func (p *Service) DeletePessoaService(ctx context.Context, id int64) error {
	_, err := p.InterfaceService.GetPessoaById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPessoaNaoEncontrada
	}
	if err != nil {
		return err
	}

	return p.InterfaceService.DeletePessoa(ctx, id)
}

func parseNullBool(value *bool) sql.NullBool {
	if value == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *value, Valid: true}
}
