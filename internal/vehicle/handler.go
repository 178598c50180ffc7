package vehicle

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewVehicleHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// ConsultaPlacaHandler godoc
// @Summary Consultar placa.
// @Description Recupera o dossiê completo do veículo: cadastro, ocorrências, passagens e pessoas vinculadas.
// @Tags Veiculo
// @Accept json
// @Produce json
// @Param placa path string true "Placa nos padrões ABC1234 ou ABC1D23"
// @Success 200 {object} DossierResponse "Dossiê do veículo"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Veículo não encontrado"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/consulta_placa/{placa} [get]
// @Security ApiKeyAuth
func (p *Handler) ConsultaPlacaHandler(c echo.Context) error {
	placa := c.Param("placa")
	if placa == "" {
		return c.JSON(http.StatusBadRequest, "informe a placa")
	}

	result, err := p.InterfaceService.ConsultaPlacaService(c.Request().Context(), placa)
	if errors.Is(err, ErrPlacaInvalida) {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, ErrVeiculoNaoEncontrado) {
		return c.JSON(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
