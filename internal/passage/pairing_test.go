package passage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsumeVoltaFechaPar(t *testing.T) {
	tracker := NewPairingTracker()
	ida := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	volta := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)

	tracker.MarkIda("ABC1234", ida)

	sugestao, ok := tracker.ConsumeVolta("ABC1234", volta)
	assert.True(t, ok)
	assert.Equal(t, "ABC1234", sugestao.Placa)
	assert.Equal(t, ida.Format(time.RFC3339), sugestao.InicioIso)
	assert.Equal(t, volta.Format(time.RFC3339), sugestao.FimIso)

	// o par é consumido: a segunda volta não gera sugestão
	_, ok = tracker.ConsumeVolta("ABC1234", volta.Add(time.Hour))
	assert.False(t, ok)
}

func TestConsumeVoltaSemIda(t *testing.T) {
	tracker := NewPairingTracker()

	_, ok := tracker.ConsumeVolta("ABC1234", time.Now())
	assert.False(t, ok)
}

func TestConsumeVoltaAnteriorAIda(t *testing.T) {
	tracker := NewPairingTracker()
	ida := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	tracker.MarkIda("ABC1234", ida)

	_, ok := tracker.ConsumeVolta("ABC1234", ida.Add(-time.Hour))
	assert.False(t, ok)

	// ida continua registrada para uma volta válida
	_, ok = tracker.ConsumeVolta("ABC1234", ida.Add(time.Hour))
	assert.True(t, ok)
}

func TestUnmarkIdaDescartaRegistro(t *testing.T) {
	tracker := NewPairingTracker()
	ida := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	tracker.MarkIda("ABC1234", ida)
	tracker.UnmarkIda("ABC1234")

	_, ok := tracker.ConsumeVolta("ABC1234", ida.Add(time.Hour))
	assert.False(t, ok)
}

func TestPlacasIndependentes(t *testing.T) {
	tracker := NewPairingTracker()
	ida := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	tracker.MarkIda("ABC1234", ida)

	_, ok := tracker.ConsumeVolta("XYZ9876", ida.Add(time.Hour))
	assert.False(t, ok)

	_, ok = tracker.ConsumeVolta("ABC1234", ida.Add(time.Hour))
	assert.True(t, ok)
}
