package analysis

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	db "sentinela/db/sqlc"
	"sentinela/validation"
)

const topN = 10

var ErrPeriodoInvalido = errors.New("período inválido")

type InterfaceService interface {
	AnaliseService(ctx context.Context, filtro FiltroRequest) (AnaliseResponse, error)
	FiltrosService(ctx context.Context) (FiltrosResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
}

func NewAnalysisService(InterfaceService InterfaceRepository) *Service {
	return &Service{InterfaceService}
}

// AnaliseService monta o painel analítico dos trânsitos ilícitos: rankings de
// município e rodovia, distribuição por hora e dia da semana, mapa de calor,
// tempo médio até a entrega, rotas partida-chegada e perfil dos veículos.
func (p *Service) AnaliseService(ctx context.Context, filtro FiltroRequest) (AnaliseResponse, error) {
	locais := filtro.Locais
	if locais == nil {
		locais = []string{}
	}
	apreensoes := filtro.Apreensoes
	if apreensoes == nil {
		apreensoes = []string{}
	}

	placa := ""
	if filtro.Placa != "" {
		placa, _ = validation.ValidatePlaca(filtro.Placa)
	}

	dataInicio, err := parseNullDatetime(filtro.DataInicio)
	if err != nil {
		return AnaliseResponse{}, ErrPeriodoInvalido
	}
	dataFim, err := parseNullDatetime(filtro.DataFim)
	if err != nil {
		return AnaliseResponse{}, ErrPeriodoInvalido
	}

	passagens, err := p.InterfaceService.GetPassagensIlicitasIda(ctx, db.GetPassagensIlicitasIdaParams{
		Locais:     locais,
		Apreensoes: apreensoes,
		Placa:      placa,
		DataInicio: dataInicio,
		DataFim:    dataFim,
	})
	if err != nil {
		return AnaliseResponse{}, err
	}

	response := AnaliseResponse{
		TotalPassagens: int64(len(passagens)),
		PorHora:        make([]int64, 24),
		PorDiaSemana:   make([]int64, 7),
		Heatmap:        makeHeatmap(),
		Rotas:          []RotaItem{},
		Sankey:         []SankeyLink{},
	}

	municipios := map[string]int64{}
	rodovias := map[string]int64{}
	for _, passagem := range passagens {
		if passagem.Municipio.Valid && passagem.Municipio.String != "" {
			municipios[passagem.Municipio.String]++
		}
		if passagem.Rodovia.Valid && passagem.Rodovia.String != "" {
			rodovias[passagem.Rodovia.String]++
		}
		if passagem.Hora >= 0 && passagem.Hora < 24 {
			response.PorHora[passagem.Hora]++
		}
		if passagem.Dow >= 0 && passagem.Dow < 7 {
			response.PorDiaSemana[passagem.Dow]++
			if passagem.Hora >= 0 && passagem.Hora < 24 {
				response.Heatmap[passagem.Dow][passagem.Hora]++
			}
		}
	}
	response.TopMunicipios = topContagem(municipios, topN)
	response.TopRodovias = topContagem(rodovias, topN)

	tempos, err := p.InterfaceService.GetTemposEntrega(ctx, db.GetTemposEntregaParams{
		Locais:     locais,
		Apreensoes: apreensoes,
		Placa:      placa,
		DataInicio: dataInicio,
		DataFim:    dataFim,
	})
	if err != nil {
		return AnaliseResponse{}, err
	}
	response.TempoMedioEntregaHoras = fmt.Sprintf("%.2f", tempoMedioHoras(tempos))

	rotas, err := p.InterfaceService.GetRotasIlicitas(ctx, db.GetRotasIlicitasParams{
		Locais:     locais,
		Apreensoes: apreensoes,
		Placa:      placa,
		DataInicio: dataInicio,
		DataFim:    dataFim,
	})
	if err != nil {
		return AnaliseResponse{}, err
	}
	for _, rota := range rotas {
		item := RotaItem{
			Partida: rota.MunicipioPartida.String,
			Chegada: rota.MunicipioChegada.String,
			Total:   rota.Total,
		}
		response.Rotas = append(response.Rotas, item)
		response.Sankey = append(response.Sankey, SankeyLink{
			Source: item.Partida,
			Target: item.Chegada,
			Value:  item.Total,
		})
	}

	veiculos, err := p.InterfaceService.GetInteligenciaVeiculos(ctx, db.GetInteligenciaVeiculosParams{
		Locais:     locais,
		Apreensoes: apreensoes,
		Placa:      placa,
		DataInicio: dataInicio,
		DataFim:    dataFim,
	})
	if err != nil {
		return AnaliseResponse{}, err
	}

	modelos := map[string]int64{}
	cores := map[string]int64{}
	tiposApreensao := map[string]int64{}
	for _, veiculo := range veiculos {
		if veiculo.MarcaModelo.Valid && veiculo.MarcaModelo.String != "" {
			modelos[veiculo.MarcaModelo.String]++
		}
		if veiculo.Cor.Valid && veiculo.Cor.String != "" {
			cores[veiculo.Cor.String]++
		}
		if veiculo.TipoApreensao.Valid && veiculo.TipoApreensao.String != "" {
			tiposApreensao[veiculo.TipoApreensao.String]++
		}
	}
	response.IntelModelos = topContagem(modelos, topN)
	response.IntelCores = topContagem(cores, topN)
	response.IntelApreensoes = topContagem(tiposApreensao, topN)

	return response, nil
}

// FiltrosService lista os valores disponíveis para os filtros do painel.
func (p *Service) FiltrosService(ctx context.Context) (FiltrosResponse, error) {
	locais, err := p.InterfaceService.ListLocaisEntrega(ctx)
	if err != nil {
		return FiltrosResponse{}, err
	}

	tipos, err := p.InterfaceService.ListTiposApreensao(ctx)
	if err != nil {
		return FiltrosResponse{}, err
	}

	response := FiltrosResponse{
		Locais:         []string{},
		TiposApreensao: tipos,
	}
	for _, local := range locais {
		if local.Valid && local.String != "" {
			response.Locais = append(response.Locais, local.String)
		}
	}
	return response, nil
}

func parseNullDatetime(value string) (sql.NullTime, error) {
	if value == "" {
		return sql.NullTime{}, nil
	}
	parsed, err := validation.ParseFlexibleDatetime(value)
	if err != nil {
		return sql.NullTime{}, err
	}
	return sql.NullTime{Time: parsed, Valid: true}, nil
}

func makeHeatmap() [][]int64 {
	heatmap := make([][]int64, 7)
	for dow := range heatmap {
		heatmap[dow] = make([]int64, 24)
	}
	return heatmap
}

func topContagem(contagem map[string]int64, limit int) []ContagemItem {
	items := make([]ContagemItem, 0, len(contagem))
	for nome, total := range contagem {
		items = append(items, ContagemItem{Nome: nome, Total: total})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Total != items[j].Total {
			return items[i].Total > items[j].Total
		}
		return items[i].Nome < items[j].Nome
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

func tempoMedioHoras(tempos []db.GetTemposEntregaRow) float64 {
	var soma float64
	var total int
	for _, tempo := range tempos {
		if !tempo.DatahoraFim.Valid {
			continue
		}
		delta := tempo.DatahoraFim.Time.Sub(tempo.Datahora).Hours()
		if delta < 0 {
			continue
		}
		soma += delta
		total++
	}
	if total == 0 {
		return 0
	}
	return soma / float64(total)
}
