package agents

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"sentinela/validation"
)

const maxPlacasLote = 50

type InterfaceService interface {
	AnaliseCompletaService(ctx context.Context, placa string, prioridade Prioridade) (AnaliseCompletaResponse, error)
	AnaliseRapidaService(ctx context.Context, placa string) (AnaliseRapidaResponse, error)
	AnaliseBatchService(ctx context.Context, data AnaliseBatchRequest) (AnaliseBatchResponse, error)
	HealthService(ctx context.Context) HealthResponse
	StatsService() StatsResponse
	InfoService() InfoResponse
}

// Service orquestra os agentes: coleta primeiro, depois rota e semântica em
// paralelo, e por fim a consolidação de risco.
type Service struct {
	InterfaceService InterfaceRepository
	Collector        *DataCollector
	Rotas            *RouteAnalyzer
	Semantica        *SemanticAnalyzer
	Risco            *RiskCalculator

	totalAnalises int64
	inicioEm      time.Time
}

func NewAgentsService(InterfaceService InterfaceRepository) *Service {
	return &Service{
		InterfaceService: InterfaceService,
		Collector:        NewDataCollector(InterfaceService),
		Rotas:            NewRouteAnalyzer(),
		Semantica:        NewSemanticAnalyzer(),
		Risco:            NewRiskCalculator(),
		inicioEm:         time.Now(),
	}
}

func (p *Service) AnaliseCompletaService(ctx context.Context, placa string, prioridade Prioridade) (AnaliseCompletaResponse, error) {
	inicio := time.Now()

	normalized, format := validation.ValidatePlaca(placa)
	if format == validation.PlacaFormatInvalida {
		return AnaliseCompletaResponse{}, ErrPlacaInvalida
	}

	coleta, err := p.Collector.Coletar(ctx, normalized)
	if err != nil {
		return AnaliseCompletaResponse{}, err
	}

	var (
		wg           sync.WaitGroup
		rota         AnaliseRota
		semantica    AnaliseSemantica
		errRota      error
		errSemantica error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		rota, errRota = p.Rotas.Analisar(ctx, coleta.Passagens)
	}()
	go func() {
		defer wg.Done()
		semantica, errSemantica = p.Semantica.Analisar(ctx, coleta.Relatos)
	}()
	wg.Wait()

	response := AnaliseCompletaResponse{
		Placa:      normalized,
		Sucesso:    true,
		Qualidade:  coleta.Qualidade,
		Prioridade: prioridadeLabel(prioridade),
	}

	var rotaPtr *AnaliseRota
	var semanticaPtr *AnaliseSemantica
	if errRota == nil {
		rotaPtr = &rota
		response.Rota = rotaPtr
	}
	if errSemantica == nil {
		semanticaPtr = &semantica
		response.Semantica = semanticaPtr
	}

	risco, err := p.Risco.Calcular(ctx, rotaPtr, semanticaPtr)
	if err != nil {
		return AnaliseCompletaResponse{}, err
	}
	response.Risco = &risco
	response.TempoMs = time.Since(inicio).Milliseconds()

	atomic.AddInt64(&p.totalAnalises, 1)
	return response, nil
}

// AnaliseRapidaService roda só coletor e analisador de rotas, sem pontuar
// relatos nem consolidar risco.
func (p *Service) AnaliseRapidaService(ctx context.Context, placa string) (AnaliseRapidaResponse, error) {
	inicio := time.Now()

	normalized, format := validation.ValidatePlaca(placa)
	if format == validation.PlacaFormatInvalida {
		return AnaliseRapidaResponse{}, ErrPlacaInvalida
	}

	coleta, err := p.Collector.Coletar(ctx, normalized)
	if err != nil {
		return AnaliseRapidaResponse{}, err
	}

	rota, err := p.Rotas.Analisar(ctx, coleta.Passagens)
	if err != nil {
		return AnaliseRapidaResponse{}, err
	}

	atomic.AddInt64(&p.totalAnalises, 1)
	return AnaliseRapidaResponse{
		Placa:     normalized,
		Sucesso:   true,
		Qualidade: coleta.Qualidade,
		Rota:      &rota,
		TempoMs:   time.Since(inicio).Milliseconds(),
	}, nil
}

func (p *Service) AnaliseBatchService(ctx context.Context, data AnaliseBatchRequest) (AnaliseBatchResponse, error) {
	inicio := time.Now()

	if len(data.Placas) == 0 {
		return AnaliseBatchResponse{}, ErrLoteVazio
	}
	if len(data.Placas) > maxPlacasLote {
		return AnaliseBatchResponse{}, ErrLoteExcedido
	}

	validas := make([]string, 0, len(data.Placas))
	for _, placa := range data.Placas {
		normalized, format := validation.ValidatePlaca(placa)
		if format != validation.PlacaFormatInvalida {
			validas = append(validas, normalized)
		}
	}
	if len(validas) == 0 {
		return AnaliseBatchResponse{}, ErrPlacaInvalida
	}

	prioridade := ParsePrioridade(data.Prioridade)
	resultados := make([]AnaliseCompletaResponse, len(validas))

	var wg sync.WaitGroup
	for i, placa := range validas {
		wg.Add(1)
		go func(i int, placa string) {
			defer wg.Done()
			resultado, err := p.AnaliseCompletaService(ctx, placa, prioridade)
			if err != nil {
				resultado = AnaliseCompletaResponse{Placa: placa}
			}
			resultados[i] = resultado
		}(i, placa)
	}
	wg.Wait()

	response := AnaliseBatchResponse{
		Total:      len(resultados),
		Resultados: resultados,
		TempoMs:    time.Since(inicio).Milliseconds(),
	}
	for _, resultado := range resultados {
		if resultado.Sucesso {
			response.Sucessos++
		} else {
			response.Falhas++
		}
	}

	return response, nil
}

func (p *Service) HealthService(ctx context.Context) HealthResponse {
	banco := p.InterfaceService.PingDatabase(ctx) == nil
	return HealthResponse{
		Saudavel:     banco,
		Banco:        banco,
		Agentes:      4,
		VerificadoEm: time.Now(),
	}
}

func (p *Service) StatsService() StatsResponse {
	return StatsResponse{
		Agentes: map[string]AgenteStats{
			"data_collector":    p.Collector.Stats(),
			"route_analyzer":    p.Rotas.Stats(),
			"semantic_analyzer": p.Semantica.Stats(),
			"risk_calculator":   p.Risco.Stats(),
		},
		TotalAnalises: atomic.LoadInt64(&p.totalAnalises),
		InicioEm:      p.inicioEm,
	}
}

func (p *Service) InfoService() InfoResponse {
	return InfoResponse{
		Mensagem: "Sistema de Análise de Placas v2.0 - Agentes Especializados",
		Versao:   "2.0",
		Recursos: []string{
			"Análise completa com múltiplos agentes",
			"Análise rápida otimizada",
			"Processamento em lote",
			"Balanceamento de carga automático",
			"Monitoramento de performance",
		},
		Endpoints: map[string]string{
			"analysis":       "/api/v2/analyze/:placa",
			"fast_analysis":  "/api/v2/analyze/:placa/fast",
			"batch_analysis": "/api/v2/analyze/batch",
			"health":         "/api/v2/health",
			"stats":          "/api/v2/stats",
		},
	}
}

func prioridadeLabel(prioridade Prioridade) string {
	switch prioridade {
	case PrioridadeBaixa:
		return "low"
	case PrioridadeAlta:
		return "high"
	case PrioridadeCritica:
		return "critical"
	default:
		return "medium"
	}
}
