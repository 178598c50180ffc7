package vehicle

import (
	"context"
	"database/sql"
	"errors"

	db "sentinela/db/sqlc"
	"sentinela/pkg/plate"
	"sentinela/validation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
)

var ErrPlacaInvalida = errors.New("placa inválida")
var ErrVeiculoNaoEncontrado = errors.New("veículo não encontrado")

var consultasPlaca = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sentinela_consultas_placa_total",
	Help: "Total de consultas de placa por origem do dado.",
}, []string{"origem"})

type PlacaProvider interface {
	ConsultarPlaca(placa string) (*plate.ConsultaResponse, error)
}

type InterfaceService interface {
	ConsultaPlacaService(ctx context.Context, placa string) (DossierResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
	Provider         PlacaProvider
}

func NewVehicleService(InterfaceService InterfaceRepository, provider PlacaProvider) *Service {
	return &Service{InterfaceService: InterfaceService, Provider: provider}
}

// ConsultaPlacaService monta o dossiê completo do veículo: dados cadastrais,
// ocorrências com apreensões, passagens e pessoas vinculadas. Quando a placa
// não existe na base local, consulta o provedor externo e persiste o retorno.
func (p *Service) ConsultaPlacaService(ctx context.Context, placa string) (DossierResponse, error) {
	normalized, format := validation.ValidatePlaca(placa)
	if format == validation.PlacaFormatInvalida {
		return DossierResponse{}, ErrPlacaInvalida
	}

	origem := "base"
	veiculo, err := p.InterfaceService.GetVeiculoByPlaca(ctx, normalized)
	if errors.Is(err, sql.ErrNoRows) {
		veiculo, err = p.consultaExterna(ctx, normalized)
		origem = "externo"
	}
	if err != nil {
		return DossierResponse{}, err
	}
	consultasPlaca.WithLabelValues(origem).Inc()

	response := DossierResponse{
		Ocorrencias: []OcorrenciaResponse{},
		Passagens:   []PassagemResponse{},
		Pessoas:     []PessoaResponse{},
	}
	response.Veiculo.ParseFromVeiculoObject(veiculo, origem)

	ids := []int64{veiculo.ID}

	ocorrencias, err := p.InterfaceService.GetOcorrenciasByVeiculoIds(ctx, ids)
	if err != nil {
		return DossierResponse{}, err
	}

	var ocorrenciaIds []int64
	for _, ocorrencia := range ocorrencias {
		ocorrenciaIds = append(ocorrenciaIds, ocorrencia.ID)
	}

	apreensoesPorOcorrencia := map[int64][]ApreensaoResponse{}
	if len(ocorrenciaIds) > 0 {
		apreensoes, err := p.InterfaceService.GetApreensoesByOcorrenciaIds(ctx, ocorrenciaIds)
		if err != nil {
			return DossierResponse{}, err
		}
		for _, apreensao := range apreensoes {
			apreensoesPorOcorrencia[apreensao.OcorrenciaID] = append(apreensoesPorOcorrencia[apreensao.OcorrenciaID], ApreensaoResponse{
				ID:         apreensao.ID,
				Tipo:       string(apreensao.Tipo),
				Quantidade: apreensao.Quantidade,
				Unidade:    apreensao.Unidade,
			})
		}
	}

	for _, ocorrencia := range ocorrencias {
		ocorrenciaResponse := OcorrenciaResponse{}
		ocorrenciaResponse.ParseFromOcorrenciaRow(ocorrencia)
		if apreensoes, ok := apreensoesPorOcorrencia[ocorrencia.ID]; ok {
			ocorrenciaResponse.Apreensoes = apreensoes
		}
		response.Ocorrencias = append(response.Ocorrencias, ocorrenciaResponse)
	}

	passagens, err := p.InterfaceService.GetPassagensByVeiculoIds(ctx, ids)
	if err != nil {
		return DossierResponse{}, err
	}
	for _, passagem := range passagens {
		passagemResponse := PassagemResponse{}
		passagemResponse.ParseFromPassagemRow(passagem)
		response.Passagens = append(response.Passagens, passagemResponse)
	}

	pessoas, err := p.InterfaceService.GetPessoasByVeiculoId(ctx, sql.NullInt64{Int64: veiculo.ID, Valid: true})
	if err != nil {
		return DossierResponse{}, err
	}
	for _, pessoa := range pessoas {
		pessoaResponse := PessoaResponse{}
		pessoaResponse.ParseFromPessoaObject(pessoa)
		response.Pessoas = append(response.Pessoas, pessoaResponse)
	}

	response.Resumo = montarResumo(response)
	return response, nil
}

func montarResumo(response DossierResponse) ResumoResponse {
	resumo := ResumoResponse{
		TotalPessoas:     len(response.Pessoas),
		TotalPassagens:   len(response.Passagens),
		TotalOcorrencias: len(response.Ocorrencias),
	}
	for _, pessoa := range response.Pessoas {
		if pessoa.Proprietario {
			resumo.TotalProprietarios++
		}
		if pessoa.Condutor {
			resumo.TotalCondutores++
		}
		if pessoa.Passageiro {
			resumo.TotalPassageiros++
		}
		if pessoa.Relevante {
			resumo.TotalRelevantes++
		}
	}
	return resumo
}

func (p *Service) consultaExterna(ctx context.Context, placa string) (db.Veiculo, error) {
	if p.Provider == nil {
		return db.Veiculo{}, ErrVeiculoNaoEncontrado
	}

	externo, err := p.Provider.ConsultarPlaca(placa)
	if err != nil {
		log.WithError(err).WithField("placa", placa).Warn("consulta externa indisponível")
		return db.Veiculo{}, ErrVeiculoNaoEncontrado
	}

	marcaModelo := externo.Data.Marca
	if externo.Data.Modelo != "" {
		if marcaModelo != "" {
			marcaModelo += "/" + externo.Data.Modelo
		} else {
			marcaModelo = externo.Data.Modelo
		}
	}

	localEmplacamento := externo.Data.Municipio
	if externo.Data.Uf != "" {
		if localEmplacamento != "" {
			localEmplacamento += " - " + externo.Data.Uf
		} else {
			localEmplacamento = externo.Data.Uf
		}
	}

	return p.InterfaceService.UpsertVeiculo(ctx, db.UpsertVeiculoParams{
		Placa:             placa,
		MarcaModelo:       parseNullString(marcaModelo),
		Cor:               parseNullString(externo.Data.Cor),
		Tipo:              parseNullString(externo.Data.TipoVeiculo.TipoVeiculo),
		AnoModelo:         parseNullString(externo.Data.AnoModelo),
		LocalEmplacamento: parseNullString(localEmplacamento),
	})
}
