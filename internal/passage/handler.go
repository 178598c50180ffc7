package passage

import (
	"errors"
	"net/http"

	"sentinela/validation"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewPassageHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// UpdatePassagemHandler godoc
// @Summary Marcar passagem ilícita.
// @Description Atualiza o marcador de ida ou volta ilícita de uma passagem.
// @Tags Passagem
// @Accept json
// @Produce json
// @Param id path string true "ID da passagem"
// @Param request body UpdatePassagemRequest true "Campo e valor"
// @Success 200 {object} UpdatePassagemResponse "Passagem atualizada"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Passagem não encontrada"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/passagem/{id} [put]
// @Security ApiKeyAuth
func (p *Handler) UpdatePassagemHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	var request UpdatePassagemRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	request.ID = id

	result, err := p.InterfaceService.UpdatePassagemService(c.Request().Context(), request)
	if errors.Is(err, ErrCampoInvalido) {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, ErrPassagemNaoEncontrada) {
		return c.JSON(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetStatusHandler godoc
// @Summary Consultar status da passagem.
// @Description Recupera os marcadores de ida e volta ilícitas.
// @Tags Passagem
// @Accept json
// @Produce json
// @Param id path string true "ID da passagem"
// @Success 200 {object} StatusResponse "Status da passagem"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Passagem não encontrada"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/passagem/{id}/status [get]
// @Security ApiKeyAuth
func (p *Handler) GetStatusHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := p.InterfaceService.GetStatusService(c.Request().Context(), id)
	if errors.Is(err, ErrPassagemNaoEncontrada) {
		return c.JSON(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetStatusBatchHandler godoc
// @Summary Consultar status em lote.
// @Description Recupera os marcadores de várias passagens em uma única chamada.
// @Tags Passagem
// @Accept json
// @Produce json
// @Param request body BatchStatusRequest true "IDs das passagens"
// @Success 200 {object} BatchStatusResponse "Status das passagens"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/passagem/status/batch [post]
// @Security ApiKeyAuth
func (p *Handler) GetStatusBatchHandler(c echo.Context) error {
	var request BatchStatusRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := p.InterfaceService.GetStatusBatchService(c.Request().Context(), request.Ids)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
