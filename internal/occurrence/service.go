package occurrence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	db "sentinela/db/sqlc"
	"sentinela/validation"

	log "github.com/sirupsen/logrus"
	"github.com/sqlc-dev/pqtype"
)

const maxRelatoLength = 5000

var ErrPlacaInvalida = errors.New("placa inválida")
var ErrDatahoraInvalida = errors.New("data/hora inválida")
var ErrPeriodoInvalido = errors.New("o fim do período deve ser posterior ao início")
var ErrOcorrenciaNaoEncontrada = errors.New("ocorrência não encontrada")

type InterfaceService interface {
	CreateOcorrenciaService(ctx context.Context, data CreateOcorrenciaRequest) (OcorrenciaResponse, error)
	UpdateOcorrenciaService(ctx context.Context, data UpdateOcorrenciaRequest) (OcorrenciaResponse, error)
	DeleteOcorrenciaService(ctx context.Context, id int64) error
	CreateLocalEntregaService(ctx context.Context, data LocalEntregaRequest) (OcorrenciaResponse, error)
	ListLocaisEntregaService(ctx context.Context) (LocalEntregaResponse, error)
	ListTiposApreensaoService(ctx context.Context) ([]string, error)
}

// Notifier replica eventos de novas ocorrências para o feed de monitoramento.
type Notifier interface {
	Broadcast(event []byte)
}

type Service struct {
	InterfaceService InterfaceRepository
	Notifier         Notifier
}

func NewOccurrenceService(InterfaceService InterfaceRepository, notifier Notifier) *Service {
	return &Service{
		InterfaceService: InterfaceService,
		Notifier:         notifier,
	}
}

func (p *Service) notify(ocorrencia db.Ocorrencia, placa string) {
	if p.Notifier == nil {
		return
	}

	event, err := json.Marshal(map[string]interface{}{
		"evento":        "ocorrencia_criada",
		"ocorrencia_id": ocorrencia.ID,
		"tipo":          string(ocorrencia.Tipo),
		"placa":         placa,
		"datahora":      ocorrencia.Datahora.Format(time.RFC3339),
	})
	if err != nil {
		log.WithError(err).Warn("falha ao serializar evento de ocorrência")
		return
	}
	p.Notifier.Broadcast(event)
}

// CreateOcorrenciaService registra uma abordagem ou BOP: resolve o veículo
// pela placa, grava os blocos de ocupantes/presos e, para BOP, as apreensões.
// Pessoas com documento válido são promovidas a registros próprios.
func (p *Service) CreateOcorrenciaService(ctx context.Context, data CreateOcorrenciaRequest) (OcorrenciaResponse, error) {
	if err := validation.Validate(data); err != nil {
		return OcorrenciaResponse{}, err
	}

	veiculo, err := p.resolveVeiculo(ctx, data.Placa)
	if err != nil {
		return OcorrenciaResponse{}, err
	}

	datahora, err := validation.ParseFlexibleDatetime(data.Datahora)
	if err != nil {
		return OcorrenciaResponse{}, ErrDatahoraInvalida
	}

	var datahoraFim sql.NullTime
	if data.DatahoraFim != "" {
		fim, err := validation.ParseFlexibleDatetime(data.DatahoraFim)
		if err != nil {
			return OcorrenciaResponse{}, ErrDatahoraInvalida
		}
		datahoraFim = sql.NullTime{Time: fim, Valid: true}
	}

	arg := db.CreateOcorrenciaParams{
		VeiculoID:   veiculo.ID,
		Tipo:        db.TipoOcorrenciaEnum(data.Tipo),
		Datahora:    datahora,
		DatahoraFim: datahoraFim,
		Relato:      parseNullString(validation.SanitizeText(data.Relato, maxRelatoLength)),
		Ocupantes:   marshalEnvolvidos(data.Ocupantes),
		Presos:      marshalEnvolvidos(data.Presos),
		Veiculos:    marshalVeiculos(data.Veiculos),
	}

	ocorrencia, err := p.InterfaceService.CreateOcorrencia(ctx, arg)
	if err != nil {
		return OcorrenciaResponse{}, err
	}

	if data.Tipo == string(db.TipoOcorrenciaEnumBOP) {
		if err := p.createApreensoes(ctx, ocorrencia.ID, data.Apreensoes); err != nil {
			return OcorrenciaResponse{}, err
		}
	}

	p.upsertPessoas(ctx, veiculo.ID, data.Ocupantes, false)
	p.upsertPessoas(ctx, veiculo.ID, data.Presos, true)

	p.notify(ocorrencia, veiculo.Placa)

	response := OcorrenciaResponse{}
	response.ParseFromOcorrenciaObject(ocorrencia)
	return response, nil
}

func (p *Service) UpdateOcorrenciaService(ctx context.Context, data UpdateOcorrenciaRequest) (OcorrenciaResponse, error) {
	_, err := p.InterfaceService.GetOcorrenciaById(ctx, data.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return OcorrenciaResponse{}, ErrOcorrenciaNaoEncontrada
	}
	if err != nil {
		return OcorrenciaResponse{}, err
	}

	arg := db.UpdateOcorrenciaParams{ID: data.ID}

	if data.Tipo != "" {
		arg.Tipo = sql.NullString{String: data.Tipo, Valid: true}
	}
	if data.Datahora != "" {
		datahora, err := validation.ParseFlexibleDatetime(data.Datahora)
		if err != nil {
			return OcorrenciaResponse{}, ErrDatahoraInvalida
		}
		arg.Datahora = sql.NullTime{Time: datahora, Valid: true}
	}
	if data.DatahoraFim != "" {
		fim, err := validation.ParseFlexibleDatetime(data.DatahoraFim)
		if err != nil {
			return OcorrenciaResponse{}, ErrDatahoraInvalida
		}
		arg.DatahoraFim = sql.NullTime{Time: fim, Valid: true}
	}
	if data.Relato != "" {
		arg.Relato = sql.NullString{String: validation.SanitizeText(data.Relato, maxRelatoLength), Valid: true}
	}
	if data.Ocupantes != nil {
		arg.Ocupantes = marshalEnvolvidos(data.Ocupantes)
	}
	if data.Presos != nil {
		arg.Presos = marshalEnvolvidos(data.Presos)
	}
	if data.Veiculos != nil {
		arg.Veiculos = marshalVeiculos(data.Veiculos)
	}

	if err := p.InterfaceService.UpdateOcorrencia(ctx, arg); err != nil {
		return OcorrenciaResponse{}, err
	}

	if data.Apreensoes != nil {
		if err := p.InterfaceService.DeleteApreensoesByOcorrencia(ctx, data.ID); err != nil {
			return OcorrenciaResponse{}, err
		}
		if err := p.createApreensoes(ctx, data.ID, data.Apreensoes); err != nil {
			return OcorrenciaResponse{}, err
		}
	}

	ocorrencia, err := p.InterfaceService.GetOcorrenciaById(ctx, data.ID)
	if err != nil {
		return OcorrenciaResponse{}, err
	}

	response := OcorrenciaResponse{}
	response.ParseFromOcorrenciaObject(ocorrencia)
	return response, nil
}

func (p *Service) DeleteOcorrenciaService(ctx context.Context, id int64) error {
	_, err := p.InterfaceService.GetOcorrenciaById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrOcorrenciaNaoEncontrada
	}
	if err != nil {
		return err
	}

	return p.InterfaceService.DeleteOcorrencia(ctx, id)
}

// CreateLocalEntregaService registra o ponto de entrega de um trajeto
// ilícito. O município entra em caixa alta no relato para alimentar os
// filtros de análise.
func (p *Service) CreateLocalEntregaService(ctx context.Context, data LocalEntregaRequest) (OcorrenciaResponse, error) {
	if err := validation.Validate(data); err != nil {
		return OcorrenciaResponse{}, err
	}

	veiculo, err := p.resolveVeiculo(ctx, data.Placa)
	if err != nil {
		return OcorrenciaResponse{}, err
	}

	inicio, err := validation.ParseFlexibleDatetime(data.Inicio)
	if err != nil {
		return OcorrenciaResponse{}, ErrDatahoraInvalida
	}
	fim, err := validation.ParseFlexibleDatetime(data.Fim)
	if err != nil {
		return OcorrenciaResponse{}, ErrDatahoraInvalida
	}
	if fim.Before(inicio) {
		return OcorrenciaResponse{}, ErrPeriodoInvalido
	}

	relato := strings.ToUpper(strings.TrimSpace(data.Municipio))
	if extra := validation.SanitizeText(data.Relato, maxRelatoLength); extra != "" {
		relato = relato + " - " + extra
	}

	ocorrencia, err := p.InterfaceService.CreateOcorrencia(ctx, db.CreateOcorrenciaParams{
		VeiculoID:   veiculo.ID,
		Tipo:        db.TipoOcorrenciaEnumLocalDeEntrega,
		Datahora:    inicio,
		DatahoraFim: sql.NullTime{Time: fim, Valid: true},
		Relato:      parseNullString(relato),
	})
	if err != nil {
		return OcorrenciaResponse{}, err
	}

	p.notify(ocorrencia, veiculo.Placa)

	response := OcorrenciaResponse{}
	response.ParseFromOcorrenciaObject(ocorrencia)
	return response, nil
}

func (p *Service) ListLocaisEntregaService(ctx context.Context) (LocalEntregaResponse, error) {
	locais, err := p.InterfaceService.ListLocaisEntrega(ctx)
	if err != nil {
		return LocalEntregaResponse{}, err
	}

	response := LocalEntregaResponse{Municipios: []string{}}
	for _, local := range locais {
		if local.Valid && local.String != "" {
			response.Municipios = append(response.Municipios, local.String)
		}
	}
	return response, nil
}

func (p *Service) ListTiposApreensaoService(ctx context.Context) ([]string, error) {
	return p.InterfaceService.ListTiposApreensao(ctx)
}

func (p *Service) resolveVeiculo(ctx context.Context, placa string) (db.Veiculo, error) {
	normalized, format := validation.ValidatePlaca(placa)
	if format == validation.PlacaFormatInvalida {
		return db.Veiculo{}, ErrPlacaInvalida
	}

	veiculo, err := p.InterfaceService.GetVeiculoByPlaca(ctx, normalized)
	if errors.Is(err, sql.ErrNoRows) {
		return p.InterfaceService.UpsertVeiculo(ctx, db.UpsertVeiculoParams{Placa: normalized})
	}
	return veiculo, err
}

func (p *Service) createApreensoes(ctx context.Context, ocorrenciaID int64, apreensoes []ApreensaoRequest) error {
	for _, apreensao := range apreensoes {
		err := p.InterfaceService.CreateApreensao(ctx, db.CreateApreensaoParams{
			OcorrenciaID: ocorrenciaID,
			Tipo:         db.TipoApreensaoEnum(apreensao.Tipo),
			Quantidade:   apreensao.Quantidade,
			Unidade:      apreensao.Unidade,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Service) upsertPessoas(ctx context.Context, veiculoID int64, envolvidos []PessoaEnvolvida, preso bool) {
	for _, envolvido := range envolvidos {
		documento := validation.NormalizeDocument(envolvido.Cpf)
		if !validation.ValidateDocument(documento) {
			continue
		}

		err := p.InterfaceService.UpsertPessoa(ctx, db.UpsertPessoaParams{
			Nome:         validation.SanitizeText(envolvido.Nome, 200),
			CpfCnpj:      documento,
			VeiculoID:    sql.NullInt64{Int64: veiculoID, Valid: true},
			Relevante:    preso,
			Condutor:     envolvido.Condutor,
			Proprietario: envolvido.Proprietario,
			Passageiro:   envolvido.Passageiro,
		})
		if err != nil {
			log.WithError(err).WithField("documento", documento).Warn("falha ao registrar pessoa envolvida")
		}
	}
}

func marshalEnvolvidos(envolvidos []PessoaEnvolvida) pqtype.NullRawMessage {
	if envolvidos == nil {
		return pqtype.NullRawMessage{}
	}
	raw, err := json.Marshal(envolvidos)
	if err != nil {
		return pqtype.NullRawMessage{}
	}
	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}
}

func marshalVeiculos(placas []string) pqtype.NullRawMessage {
	if placas == nil {
		return pqtype.NullRawMessage{}
	}
	normalized := make([]string, 0, len(placas))
	for _, placa := range placas {
		normalized = append(normalized, validation.NormalizePlaca(placa))
	}
	raw, err := json.Marshal(normalized)
	if err != nil {
		return pqtype.NullRawMessage{}
	}
	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}
}

func parseNullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
