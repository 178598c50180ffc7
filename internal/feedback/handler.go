package feedback

import (
	"net/http"

	"sentinela/validation"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewFeedbackHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// SalvarFeedbackHandler godoc
// @Summary Salvar feedback.
// @Description Registra a avaliação do operador sobre uma classificação do modelo.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body SalvarFeedbackRequest true "Feedback do operador"
// @Success 200 {object} FeedbackResponse "Feedback registrado"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/feedback/salvar [post]
// @Security ApiKeyAuth
func (p *Handler) SalvarFeedbackHandler(c echo.Context) error {
	var request SalvarFeedbackRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := p.InterfaceService.SalvarFeedbackService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// StatsHandler godoc
// @Summary Estatísticas de feedback.
// @Description Retorna acurácia acumulada e distribuição por classe.
// @Tags Feedback
// @Accept json
// @Produce json
// @Success 200 {object} StatsResponse "Estatísticas agregadas"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/feedback/stats [get]
// @Security ApiKeyAuth
func (p *Handler) StatsHandler(c echo.Context) error {
	result, err := p.InterfaceService.StatsService(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// ListarFeedbackHandler godoc
// @Summary Listar feedbacks.
// @Description Lista os feedbacks mais recentes registrados pelos operadores.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param limit query string false "Quantidade máxima de registros"
// @Success 200 {array} FeedbackResponse "Feedbacks registrados"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/feedback/listar [get]
// @Security ApiKeyAuth
func (p *Handler) ListarFeedbackHandler(c echo.Context) error {
	limit, err := validation.ParseStringToInt64(c.QueryParam("limit"))
	if err != nil {
		limit = 0
	}

	result, err := p.InterfaceService.ListarFeedbackService(c.Request().Context(), int32(limit))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
