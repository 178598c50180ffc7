package passage

import (
	"sync"
	"time"
)

// PairingTracker guarda, em memória, o horário da passagem de ida marcada
// como ilícita por placa. Quando a volta da mesma placa é marcada com
// horário posterior, o par é consumido e vira sugestão de local de entrega.
type PairingTracker struct {
	mu       sync.Mutex
	outbound map[string]time.Time
}

func NewPairingTracker() *PairingTracker {
	return &PairingTracker{outbound: make(map[string]time.Time)}
}

func (t *PairingTracker) MarkIda(placa string, datahora time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.outbound[placa] = datahora
}

func (t *PairingTracker) UnmarkIda(placa string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.outbound, placa)
}

// ConsumeVolta devolve a sugestão quando existe ida registrada para a placa
// com horário anterior ao da volta. O registro é consumido: cada par gera
// exatamente uma sugestão.
func (t *PairingTracker) ConsumeVolta(placa string, datahora time.Time) (SugestaoEntrega, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	inicio, ok := t.outbound[placa]
	if !ok {
		return SugestaoEntrega{}, false
	}
	if !datahora.After(inicio) {
		return SugestaoEntrega{}, false
	}

	delete(t.outbound, placa)
	return SugestaoEntrega{
		Placa:     placa,
		InicioIso: inicio.Format(time.RFC3339),
		FimIso:    datahora.Format(time.RFC3339),
	}, true
}
