package semantic

import (
	"errors"
	"net/http"

	"sentinela/validation"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewSemanticHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// AnaliseRelatoHandler godoc
// @Summary Analisar relato.
// @Description Pontua um relato pelo léxico de risco e devolve classe, nível e palavras-chave.
// @Tags Analise
// @Accept json
// @Produce json
// @Param request body AnaliseRelatoRequest true "Relato a analisar"
// @Success 200 {object} Resultado "Resultado da análise"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/analise_relato [post]
// @Security ApiKeyAuth
func (p *Handler) AnaliseRelatoHandler(c echo.Context) error {
	var request AnaliseRelatoRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := p.InterfaceService.AnaliseRelatoService(c.Request().Context(), request.Relato)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// AnaliseLoteHandler godoc
// @Summary Analisar relatos em lote.
// @Description Pontua vários relatos em uma única chamada.
// @Tags Analise
// @Accept json
// @Produce json
// @Param request body AnaliseLoteRequest true "Relatos a analisar"
// @Success 200 {array} Resultado "Resultados na ordem de entrada"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/analise_relato/lote [post]
// @Security ApiKeyAuth
func (p *Handler) AnaliseLoteHandler(c echo.Context) error {
	var request AnaliseLoteRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := p.InterfaceService.AnaliseLoteService(c.Request().Context(), request.Relatos)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// AnalisePlacaHandler godoc
// @Summary Analisar relatos da placa.
// @Description Agrega a pontuação dos últimos relatos registrados para o veículo.
// @Tags Analise
// @Accept json
// @Produce json
// @Param placa path string true "Placa do veículo"
// @Success 200 {object} AnalisePlacaResponse "Análise agregada"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Nenhum relato encontrado"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/analise_placa/{placa} [get]
// @Security ApiKeyAuth
func (p *Handler) AnalisePlacaHandler(c echo.Context) error {
	placa := c.Param("placa")
	if placa == "" {
		return c.JSON(http.StatusBadRequest, "informe a placa")
	}

	result, err := p.InterfaceService.AnalisePlacaService(c.Request().Context(), placa)
	if errors.Is(err, ErrPlacaInvalida) {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, ErrSemRelatos) {
		return c.JSON(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
