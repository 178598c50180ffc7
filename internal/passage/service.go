package passage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	db "sentinela/db/sqlc"
	"sentinela/validation"

	log "github.com/sirupsen/logrus"
)

var ErrPassagemNaoEncontrada = errors.New("passagem não encontrada")
var ErrCampoInvalido = errors.New("campo inválido: use ilicito_ida ou ilicito_volta")

type Notifier interface {
	Broadcast(message []byte)
}

type InterfaceService interface {
	UpdatePassagemService(ctx context.Context, data UpdatePassagemRequest) (UpdatePassagemResponse, error)
	GetStatusService(ctx context.Context, id int64) (StatusResponse, error)
	GetStatusBatchService(ctx context.Context, ids []int64) (BatchStatusResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
	Tracker          *PairingTracker
	Notifier         Notifier
}

func NewPassageService(InterfaceService InterfaceRepository, tracker *PairingTracker, notifier Notifier) *Service {
	return &Service{
		InterfaceService: InterfaceService,
		Tracker:          tracker,
		Notifier:         notifier,
	}
}

// UpdatePassagemService marca ou desmarca o trânsito ilícito de ida/volta de
// uma passagem. Marcações de volta podem fechar um par ida/volta da mesma
// placa e devolver a sugestão de local de entrega.
func (p *Service) UpdatePassagemService(ctx context.Context, data UpdatePassagemRequest) (UpdatePassagemResponse, error) {
	if err := validation.Validate(data); err != nil {
		return UpdatePassagemResponse{}, ErrCampoInvalido
	}

	passagem, err := p.InterfaceService.GetPassagemById(ctx, data.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return UpdatePassagemResponse{}, ErrPassagemNaoEncontrada
	}
	if err != nil {
		return UpdatePassagemResponse{}, err
	}

	veiculo, err := p.InterfaceService.GetVeiculoById(ctx, passagem.VeiculoID)
	if err != nil {
		return UpdatePassagemResponse{}, err
	}

	response := UpdatePassagemResponse{
		ID:    passagem.ID,
		Placa: veiculo.Placa,
		Field: data.Field,
		Value: data.Value,
	}

	switch data.Field {
	case FieldIlicitoIda:
		err = p.InterfaceService.UpdatePassagemIlicitoIda(ctx, db.UpdatePassagemIlicitoIdaParams{
			ID:         passagem.ID,
			IlicitoIda: data.Value,
		})
		if err != nil {
			return UpdatePassagemResponse{}, err
		}
		if data.Value {
			p.Tracker.MarkIda(veiculo.Placa, passagem.Datahora)
		} else {
			p.Tracker.UnmarkIda(veiculo.Placa)
		}
	case FieldIlicitoVolta:
		err = p.InterfaceService.UpdatePassagemIlicitoVolta(ctx, db.UpdatePassagemIlicitoVoltaParams{
			ID:           passagem.ID,
			IlicitoVolta: data.Value,
		})
		if err != nil {
			return UpdatePassagemResponse{}, err
		}
		if data.Value {
			if sugestao, ok := p.Tracker.ConsumeVolta(veiculo.Placa, passagem.Datahora); ok {
				response.Sugestao = &sugestao
			}
		}
	default:
		return UpdatePassagemResponse{}, ErrCampoInvalido
	}

	p.notify(response)
	return response, nil
}

func (p *Service) GetStatusService(ctx context.Context, id int64) (StatusResponse, error) {
	passagem, err := p.InterfaceService.GetPassagemById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return StatusResponse{}, ErrPassagemNaoEncontrada
	}
	if err != nil {
		return StatusResponse{}, err
	}

	status := StatusResponse{}
	status.ParseFromPassagemObject(passagem)
	return status, nil
}

// GetStatusBatchService lê o status de várias passagens de uma vez. IDs
// desconhecidos não interrompem o lote: entram na lista de erros da resposta.
func (p *Service) GetStatusBatchService(ctx context.Context, ids []int64) (BatchStatusResponse, error) {
	passagens, err := p.InterfaceService.GetPassagensByIds(ctx, ids)
	if err != nil {
		return BatchStatusResponse{}, err
	}

	found := make(map[int64]bool, len(passagens))
	response := BatchStatusResponse{
		Statuses: make([]StatusResponse, 0, len(passagens)),
		Erros:    []string{},
	}
	for _, passagem := range passagens {
		status := StatusResponse{}
		status.ParseFromPassagemObject(passagem)
		response.Statuses = append(response.Statuses, status)
		found[passagem.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			response.Erros = append(response.Erros, fmt.Sprintf("passagem %d não encontrada", id))
		}
	}

	return response, nil
}

func (p *Service) notify(response UpdatePassagemResponse) {
	if p.Notifier == nil {
		return
	}

	event := map[string]interface{}{
		"evento":      "passagem_atualizada",
		"passagem_id": response.ID,
		"placa":       response.Placa,
		"field":       response.Field,
		"value":       response.Value,
	}
	message, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Warn("falha ao serializar evento de passagem")
		return
	}
	p.Notifier.Broadcast(message)
}
