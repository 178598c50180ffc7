package agents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	"sentinela/internal/semantic"

	db "sentinela/db/sqlc"
)

const maxRelatosColeta = 10

// Agente carrega contadores e o limite de tarefas simultâneas compartilhado
// pelos agentes especializados.
type Agente struct {
	nome        string
	slots       chan struct{}
	ativas      int64
	processados int64
	erros       int64
}

func novoAgente(nome string, maxSimultaneas int) *Agente {
	return &Agente{
		nome:  nome,
		slots: make(chan struct{}, maxSimultaneas),
	}
}

// acquire bloqueia até haver um slot livre ou o contexto expirar.
func (a *Agente) acquire(ctx context.Context) error {
	select {
	case a.slots <- struct{}{}:
		atomic.AddInt64(&a.ativas, 1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *Agente) release(err error) {
	<-a.slots
	atomic.AddInt64(&a.ativas, -1)
	if err != nil {
		atomic.AddInt64(&a.erros, 1)
		return
	}
	atomic.AddInt64(&a.processados, 1)
}

func (a *Agente) Stats() AgenteStats {
	ativas := atomic.LoadInt64(&a.ativas)
	return AgenteStats{
		Processados:      atomic.LoadInt64(&a.processados),
		Erros:            atomic.LoadInt64(&a.erros),
		TarefasAtivas:    ativas,
		LimiteSimultaneo: cap(a.slots),
		Carga:            float64(ativas) / float64(cap(a.slots)),
	}
}

// DataCollector levanta veículo, passagens e relatos da placa em uma passada.
type DataCollector struct {
	*Agente
	repo InterfaceRepository
}

func NewDataCollector(repo InterfaceRepository) *DataCollector {
	return &DataCollector{Agente: novoAgente("data_collector", 5), repo: repo}
}

func (a *DataCollector) Coletar(ctx context.Context, placa string) (Coleta, error) {
	if err := a.acquire(ctx); err != nil {
		return Coleta{}, err
	}
	var err error
	defer func() { a.release(err) }()

	coleta := Coleta{Placa: placa}

	veiculo, err := a.repo.GetVeiculoByPlaca(ctx, placa)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Coleta{}, err
	}
	if err == nil {
		coleta.Veiculo = &veiculo
	}
	err = nil

	coleta.Passagens, err = a.repo.GetPassagensByPlaca(ctx, placa)
	if err != nil {
		return Coleta{}, err
	}

	coleta.Relatos, err = a.repo.GetRelatosByPlaca(ctx, db.GetRelatosByPlacaParams{
		Placa: placa,
		Limit: maxRelatosColeta,
	})
	if err != nil {
		return Coleta{}, err
	}

	coleta.Qualidade = avaliarQualidade(coleta)
	return coleta, nil
}

func avaliarQualidade(coleta Coleta) QualidadeDados {
	total := len(coleta.Passagens) + len(coleta.Relatos)
	completude := float64(total) / 10
	if completude > 1 {
		completude = 1
	}

	score := 0.3
	if coleta.Veiculo != nil && total > 0 {
		score = 0.8
	}

	return QualidadeDados{
		TemVeiculo:     coleta.Veiculo != nil,
		TotalPassagens: len(coleta.Passagens),
		TotalRelatos:   len(coleta.Relatos),
		Completude:     completude,
		ScoreQualidade: score,
	}
}

// RouteAnalyzer pontua padrões de deslocamento: concentração noturna e
// repetição do mesmo trecho município/rodovia.
type RouteAnalyzer struct {
	*Agente
}

func NewRouteAnalyzer() *RouteAnalyzer {
	return &RouteAnalyzer{Agente: novoAgente("route_analyzer", 3)}
}

func (a *RouteAnalyzer) Analisar(ctx context.Context, passagens []db.GetPassagensByPlacaRow) (AnaliseRota, error) {
	if err := a.acquire(ctx); err != nil {
		return AnaliseRota{}, err
	}
	defer a.release(nil)

	if len(passagens) == 0 {
		return AnaliseRota{
			Classificacao: "NORMAL",
			Confianca:     1,
			Motivo:        "Nenhuma passagem encontrada",
		}, nil
	}

	var noturnas int
	rotas := map[string]int{}
	for _, passagem := range passagens {
		hora := passagem.Datahora.Hour()
		if hora >= 22 || hora <= 6 {
			noturnas++
		}
		chave := passagem.Municipio.String + "|" + passagem.Rodovia.String
		rotas[chave]++
	}

	razaoNoturna := float64(noturnas) / float64(len(passagens))
	maiorRepeticao := 0
	for _, total := range rotas {
		if total > maiorRepeticao {
			maiorRepeticao = total
		}
	}
	razaoRepeticao := float64(maiorRepeticao) / float64(len(passagens))

	var fatores []FatorRisco
	if razaoNoturna > 0.6 {
		fatores = append(fatores, FatorRisco{Nome: "atividade_noturna_alta", Valor: razaoNoturna})
	}
	if razaoRepeticao > 0.4 {
		fatores = append(fatores, FatorRisco{Nome: "repeticao_de_rota", Valor: razaoRepeticao})
	}

	var soma float64
	for _, fator := range fatores {
		soma += fator.Valor
	}
	score := soma / 2
	if score > 1 {
		score = 1
	}

	classificacao := "NORMAL"
	if score > 0.6 {
		classificacao = "SUSPEITO"
	}

	return AnaliseRota{
		RiskScore:     score,
		Classificacao: classificacao,
		Confianca:     0.8,
		Padroes: PadroesRota{
			AtividadeNoturna: razaoNoturna,
			RepeticaoRota:    razaoRepeticao,
		},
		Fatores: fatores,
	}, nil
}

// SemanticAnalyzer reaproveita o léxico de risco para pontuar cada relato
// coletado e consolida a média em escala 0-1.
type SemanticAnalyzer struct {
	*Agente
}

func NewSemanticAnalyzer() *SemanticAnalyzer {
	return &SemanticAnalyzer{Agente: novoAgente("semantic_analyzer", 4)}
}

func (a *SemanticAnalyzer) Analisar(ctx context.Context, relatos []db.GetRelatosByPlacaRow) (AnaliseSemantica, error) {
	if err := a.acquire(ctx); err != nil {
		return AnaliseSemantica{}, err
	}
	defer a.release(nil)

	if len(relatos) == 0 {
		return AnaliseSemantica{Resumo: "Nenhum relato encontrado para análise"}, nil
	}

	analise := AnaliseSemantica{}
	var soma float64
	for _, relato := range relatos {
		texto := relato.Relato.String
		if texto == "" {
			continue
		}

		resultado := semantic.Analisar(texto)
		score := resultado.Score / 100
		soma += score

		analise.Relatos = append(analise.Relatos, RelatoAnalisado{
			OcorrenciaID:  relato.ID,
			Tipo:          string(relato.Tipo),
			Datahora:      relato.Datahora,
			RiskScore:     score,
			Classificacao: resultado.Classificacao,
		})
	}

	if len(analise.Relatos) > 0 {
		analise.RiscoGeral = soma / float64(len(analise.Relatos))
	}
	analise.Resumo = fmt.Sprintf("Analisados %d relatos. Risco médio: %.2f", len(analise.Relatos), analise.RiscoGeral)

	return analise, nil
}

// RiskCalculator consolida rota e semântica com pesos adaptativos: análises
// ausentes entram com peso reduzido antes da normalização.
type RiskCalculator struct {
	*Agente
}

func NewRiskCalculator() *RiskCalculator {
	return &RiskCalculator{Agente: novoAgente("risk_calculator", 5)}
}

func (a *RiskCalculator) Calcular(ctx context.Context, rota *AnaliseRota, semantica *AnaliseSemantica) (RiscoConsolidado, error) {
	if err := a.acquire(ctx); err != nil {
		return RiscoConsolidado{}, err
	}
	defer a.release(nil)

	var riscoRota, riscoSemantico float64
	pesoRota, pesoSemantico := 0.3, 0.2
	if rota != nil {
		riscoRota = rota.RiskScore
		pesoRota = 0.6
	}
	if semantica != nil {
		riscoSemantico = semantica.RiscoGeral
		pesoSemantico = 0.4
	}

	totalPeso := pesoRota + pesoSemantico
	pesoRota /= totalPeso
	pesoSemantico /= totalPeso

	score := riscoRota*pesoRota + riscoSemantico*pesoSemantico

	nivel := semantic.NivelBaixo
	switch {
	case score > 0.8:
		nivel = semantic.NivelCritico
	case score > 0.6:
		nivel = semantic.NivelAlto
	case score > 0.4:
		nivel = semantic.NivelMedio
	}

	return RiscoConsolidado{
		ScoreFinal:     score,
		NivelRisco:     nivel,
		RiscoRota:      riscoRota,
		RiscoSemantico: riscoSemantico,
		PesoRota:       pesoRota,
		PesoSemantico:  pesoSemantico,
		Confianca:      0.8,
	}, nil
}
