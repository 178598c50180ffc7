package agents

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewAgentsHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// InfoHandler godoc
// @Summary Informações do sistema v2.
// @Description Lista versão, recursos e endpoints do sistema de agentes.
// @Tags Agentes
// @Produce json
// @Success 200 {object} InfoResponse "Informações do sistema"
// @Router /api/v2/ [get]
func (p *Handler) InfoHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, p.InterfaceService.InfoService())
}

// AnaliseCompletaHandler godoc
// @Summary Análise completa da placa.
// @Description Executa todos os agentes especializados sobre a placa informada.
// @Tags Agentes
// @Produce json
// @Param placa path string true "Placa do veículo"
// @Param priority query string false "Prioridade: low, medium, high ou critical"
// @Success 200 {object} AnaliseCompletaResponse "Análise consolidada"
// @Failure 400 {string} string "Placa inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/v2/analyze/{placa} [get]
// @Security ApiKeyAuth
func (p *Handler) AnaliseCompletaHandler(c echo.Context) error {
	prioridade := ParsePrioridade(c.QueryParam("priority"))

	result, err := p.InterfaceService.AnaliseCompletaService(c.Request().Context(), c.Param("placa"), prioridade)
	if errors.Is(err, ErrPlacaInvalida) {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// AnaliseRapidaHandler godoc
// @Summary Análise rápida da placa.
// @Description Executa apenas coleta e análise de rotas, sem consolidação de risco.
// @Tags Agentes
// @Produce json
// @Param placa path string true "Placa do veículo"
// @Success 200 {object} AnaliseRapidaResponse "Análise de rotas"
// @Failure 400 {string} string "Placa inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/v2/analyze/{placa}/fast [get]
// @Security ApiKeyAuth
func (p *Handler) AnaliseRapidaHandler(c echo.Context) error {
	result, err := p.InterfaceService.AnaliseRapidaService(c.Request().Context(), c.Param("placa"))
	if errors.Is(err, ErrPlacaInvalida) {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// AnaliseBatchHandler godoc
// @Summary Análise em lote.
// @Description Analisa até 50 placas em paralelo com todos os agentes.
// @Tags Agentes
// @Accept json
// @Produce json
// @Param request body AnaliseBatchRequest true "Placas a analisar"
// @Success 200 {object} AnaliseBatchResponse "Resultados por placa"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/v2/analyze/batch [post]
// @Security ApiKeyAuth
func (p *Handler) AnaliseBatchHandler(c echo.Context) error {
	var request AnaliseBatchRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := p.InterfaceService.AnaliseBatchService(c.Request().Context(), request)
	if errors.Is(err, ErrLoteVazio) || errors.Is(err, ErrLoteExcedido) || errors.Is(err, ErrPlacaInvalida) {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// HealthHandler godoc
// @Summary Saúde do sistema de agentes.
// @Description Verifica conectividade com o banco e disponibilidade dos agentes.
// @Tags Agentes
// @Produce json
// @Success 200 {object} HealthResponse "Sistema saudável"
// @Failure 503 {object} HealthResponse "Sistema degradado"
// @Router /api/v2/health [get]
func (p *Handler) HealthHandler(c echo.Context) error {
	result := p.InterfaceService.HealthService(c.Request().Context())
	if !result.Saudavel {
		return c.JSON(http.StatusServiceUnavailable, result)
	}
	return c.JSON(http.StatusOK, result)
}

// StatsHandler godoc
// @Summary Estatísticas dos agentes.
// @Description Retorna contadores e carga atual de cada agente especializado.
// @Tags Agentes
// @Produce json
// @Success 200 {object} StatsResponse "Estatísticas do orquestrador"
// @Router /api/v2/stats [get]
func (p *Handler) StatsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, p.InterfaceService.StatsService())
}
