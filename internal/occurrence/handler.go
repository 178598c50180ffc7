package occurrence

import (
	"errors"
	"net/http"

	"sentinela/validation"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewOccurrenceHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// CreateOcorrenciaHandler godoc
// @Summary Registrar ocorrência.
// @Description Registra uma abordagem ou BOP com ocupantes, presos e apreensões.
// @Tags Ocorrencia
// @Accept json
// @Produce json
// @Param request body CreateOcorrenciaRequest true "Dados da ocorrência"
// @Success 200 {object} OcorrenciaResponse "Ocorrência registrada"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/ocorrencia [post]
// @Security ApiKeyAuth
func (p *Handler) CreateOcorrenciaHandler(c echo.Context) error {
	var request CreateOcorrenciaRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := p.InterfaceService.CreateOcorrenciaService(c.Request().Context(), request)
	if errors.Is(err, ErrPlacaInvalida) || errors.Is(err, ErrDatahoraInvalida) {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// UpdateOcorrenciaHandler godoc
// @Summary Atualizar ocorrência.
// @Description Atualiza os campos informados de uma ocorrência existente.
// @Tags Ocorrencia
// @Accept json
// @Produce json
// @Param id path string true "ID da ocorrência"
// @Param request body UpdateOcorrenciaRequest true "Campos a atualizar"
// @Success 200 {object} OcorrenciaResponse "Ocorrência atualizada"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Ocorrência não encontrada"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/ocorrencia/{id} [put]
// @Security ApiKeyAuth
func (p *Handler) UpdateOcorrenciaHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	var request UpdateOcorrenciaRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	request.ID = id

	result, err := p.InterfaceService.UpdateOcorrenciaService(c.Request().Context(), request)
	if errors.Is(err, ErrDatahoraInvalida) {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, ErrOcorrenciaNaoEncontrada) {
		return c.JSON(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// DeleteOcorrenciaHandler godoc
// @Summary Excluir ocorrência.
// @Description Remove a ocorrência e suas apreensões.
// @Tags Ocorrencia
// @Accept json
// @Produce json
// @Param id path string true "ID da ocorrência"
// @Success 200 {string} string "Sucesso"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Ocorrência não encontrada"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/ocorrencia/{id} [delete]
// @Security ApiKeyAuth
func (p *Handler) DeleteOcorrenciaHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	err = p.InterfaceService.DeleteOcorrenciaService(c.Request().Context(), id)
	if errors.Is(err, ErrOcorrenciaNaoEncontrada) {
		return c.JSON(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, "Sucesso")
}

// CreateLocalEntregaHandler godoc
// @Summary Registrar local de entrega.
// @Description Registra o ponto de entrega de um trajeto ilícito com o período da viagem.
// @Tags Ocorrencia
// @Accept json
// @Produce json
// @Param request body LocalEntregaRequest true "Dados do local de entrega"
// @Success 200 {object} OcorrenciaResponse "Local de entrega registrado"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/local_entrega [post]
// @Security ApiKeyAuth
func (p *Handler) CreateLocalEntregaHandler(c echo.Context) error {
	var request LocalEntregaRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := p.InterfaceService.CreateLocalEntregaService(c.Request().Context(), request)
	if errors.Is(err, ErrPlacaInvalida) || errors.Is(err, ErrDatahoraInvalida) || errors.Is(err, ErrPeriodoInvalido) {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// ListLocaisEntregaHandler godoc
// @Summary Listar locais de entrega.
// @Description Recupera os municípios já registrados como local de entrega.
// @Tags Ocorrencia
// @Accept json
// @Produce json
// @Success 200 {object} LocalEntregaResponse "Municípios registrados"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/local_entrega [get]
// @Security ApiKeyAuth
func (p *Handler) ListLocaisEntregaHandler(c echo.Context) error {
	result, err := p.InterfaceService.ListLocaisEntregaService(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// ListTiposApreensaoHandler godoc
// @Summary Listar tipos de apreensão.
// @Description Recupera os tipos de apreensão aceitos no cadastro de BOP.
// @Tags Ocorrencia
// @Accept json
// @Produce json
// @Success 200 {array} string "Tipos de apreensão"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/tipos_apreensao [get]
// @Security ApiKeyAuth
func (p *Handler) ListTiposApreensaoHandler(c echo.Context) error {
	result, err := p.InterfaceService.ListTiposApreensaoService(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
