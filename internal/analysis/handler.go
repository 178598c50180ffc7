package analysis

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewAnalysisHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// AnaliseHandler godoc
// @Summary Painel analítico.
// @Description Agrega os trânsitos ilícitos pelos filtros informados: rankings, distribuições horárias, rotas e perfil de veículos.
// @Tags Analise
// @Accept json
// @Produce json
// @Param locais query []string false "Locais de entrega"
// @Param apreensoes query []string false "Tipos de apreensão"
// @Param placa query string false "Placa do veículo"
// @Param data_inicio query string false "Início do período"
// @Param data_fim query string false "Fim do período"
// @Success 200 {object} AnaliseResponse "Painel agregado"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/analise [get]
// @Security ApiKeyAuth
func (p *Handler) AnaliseHandler(c echo.Context) error {
	var request FiltroRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := p.InterfaceService.AnaliseService(c.Request().Context(), request)
	if errors.Is(err, ErrPeriodoInvalido) {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// FiltrosHandler godoc
// @Summary Filtros do painel.
// @Description Lista os valores disponíveis para os filtros de local de entrega e tipo de apreensão.
// @Tags Analise
// @Accept json
// @Produce json
// @Success 200 {object} FiltrosResponse "Valores disponíveis"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/analise/filtros [get]
// @Security ApiKeyAuth
func (p *Handler) FiltrosHandler(c echo.Context) error {
	result, err := p.InterfaceService.FiltrosService(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
