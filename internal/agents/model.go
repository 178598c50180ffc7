package agents

import (
	"errors"
	"time"

	db "sentinela/db/sqlc"
)

var (
	ErrPlacaInvalida = errors.New("placa inválida")
	ErrLoteVazio     = errors.New("lista de placas não pode estar vazia")
	ErrLoteExcedido  = errors.New("máximo de 50 placas por lote")
)

// Prioridade ordena o atendimento das tarefas na fila do orquestrador.
type Prioridade int

const (
	PrioridadeBaixa Prioridade = iota
	PrioridadeMedia
	PrioridadeAlta
	PrioridadeCritica
)

func ParsePrioridade(value string) Prioridade {
	switch value {
	case "low":
		return PrioridadeBaixa
	case "high":
		return PrioridadeAlta
	case "critical":
		return PrioridadeCritica
	default:
		return PrioridadeMedia
	}
}

type AnaliseBatchRequest struct {
	Placas     []string `json:"placas" validate:"required,min=1"`
	Prioridade string   `json:"priority"`
}

// Coleta agrupa tudo que o coletor levantou sobre a placa.
type Coleta struct {
	Placa     string
	Veiculo   *db.Veiculo
	Passagens []db.GetPassagensByPlacaRow
	Relatos   []db.GetRelatosByPlacaRow
	Qualidade QualidadeDados
}

type QualidadeDados struct {
	TemVeiculo     bool    `json:"tem_veiculo"`
	TotalPassagens int     `json:"total_passagens"`
	TotalRelatos   int     `json:"total_relatos"`
	Completude     float64 `json:"completude"`
	ScoreQualidade float64 `json:"score_qualidade"`
}

type PadroesRota struct {
	AtividadeNoturna float64 `json:"atividade_noturna"`
	RepeticaoRota    float64 `json:"repeticao_rota"`
}

type FatorRisco struct {
	Nome  string  `json:"nome"`
	Valor float64 `json:"valor"`
}

type AnaliseRota struct {
	RiskScore     float64      `json:"risk_score"`
	Classificacao string       `json:"classificacao"`
	Confianca     float64      `json:"confianca"`
	Padroes       PadroesRota  `json:"padroes"`
	Fatores       []FatorRisco `json:"fatores"`
	Motivo        string       `json:"motivo,omitempty"`
}

type RelatoAnalisado struct {
	OcorrenciaID  int64     `json:"ocorrencia_id"`
	Tipo          string    `json:"tipo"`
	Datahora      time.Time `json:"datahora"`
	RiskScore     float64   `json:"risk_score"`
	Classificacao string    `json:"classificacao"`
}

type AnaliseSemantica struct {
	RiscoGeral float64           `json:"risco_geral"`
	Relatos    []RelatoAnalisado `json:"relatos_analisados"`
	Resumo     string            `json:"resumo"`
}

type RiscoConsolidado struct {
	ScoreFinal     float64 `json:"score_final"`
	NivelRisco     string  `json:"nivel_risco"`
	RiscoRota      float64 `json:"risco_rota"`
	RiscoSemantico float64 `json:"risco_semantico"`
	PesoRota       float64 `json:"peso_rota"`
	PesoSemantico  float64 `json:"peso_semantico"`
	Confianca      float64 `json:"confianca"`
}

type AnaliseCompletaResponse struct {
	Placa      string            `json:"placa"`
	Sucesso    bool              `json:"sucesso"`
	Qualidade  QualidadeDados    `json:"qualidade_dados"`
	Rota       *AnaliseRota      `json:"analise_rota,omitempty"`
	Semantica  *AnaliseSemantica `json:"analise_semantica,omitempty"`
	Risco      *RiscoConsolidado `json:"risco_consolidado,omitempty"`
	Prioridade string            `json:"prioridade"`
	TempoMs    int64             `json:"tempo_ms"`
}

type AnaliseRapidaResponse struct {
	Placa     string         `json:"placa"`
	Sucesso   bool           `json:"sucesso"`
	Qualidade QualidadeDados `json:"qualidade_dados"`
	Rota      *AnaliseRota   `json:"analise_rota,omitempty"`
	TempoMs   int64          `json:"tempo_ms"`
}

type AnaliseBatchResponse struct {
	Total      int                       `json:"total"`
	Sucessos   int                       `json:"sucessos"`
	Falhas     int                       `json:"falhas"`
	Resultados []AnaliseCompletaResponse `json:"resultados"`
	TempoMs    int64                     `json:"tempo_ms"`
}

type AgenteStats struct {
	Processados      int64   `json:"processados"`
	Erros            int64   `json:"erros"`
	TarefasAtivas    int64   `json:"tarefas_ativas"`
	LimiteSimultaneo int     `json:"limite_simultaneo"`
	Carga            float64 `json:"carga"`
}

type StatsResponse struct {
	Agentes       map[string]AgenteStats `json:"agentes"`
	TotalAnalises int64                  `json:"total_analises"`
	InicioEm      time.Time              `json:"inicio_em"`
}

type HealthResponse struct {
	Saudavel     bool      `json:"saudavel"`
	Banco        bool      `json:"banco"`
	Agentes      int       `json:"agentes"`
	VerificadoEm time.Time `json:"verificado_em"`
}

type InfoResponse struct {
	Mensagem  string            `json:"mensagem"`
	Versao    string            `json:"versao"`
	Recursos  []string          `json:"recursos"`
	Endpoints map[string]string `json:"endpoints"`
}
