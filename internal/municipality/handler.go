package municipality

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewMunicipalityHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// ListMunicipiosHandler godoc
// @Summary Listar municípios.
// @Description Recupera o catálogo de municípios para os formulários.
// @Tags Municipio
// @Accept json
// @Produce json
// @Success 200 {object} MunicipiosResponse "Municípios"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/municipios [get]
// @Security ApiKeyAuth
func (p *Handler) ListMunicipiosHandler(c echo.Context) error {
	result, err := p.InterfaceService.ListMunicipiosService(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
