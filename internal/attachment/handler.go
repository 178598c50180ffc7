package attachment

import (
	"errors"
	"net/http"

	"sentinela/validation"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService ServiceInterface
}

func NewAttachmentHandler(service ServiceInterface) *Handler {
	return &Handler{
		InterfaceService: service,
	}
}

// CreateAnexoHandler godoc
// @Summary Anexar arquivos à ocorrência.
// @Description Sobe fotos e documentos da ocorrência. Aceita apenas .jpg, .jpeg, .png e .pdf.
// @Tags Anexos
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "ID da ocorrência"
// @Param files_input formData []file true "Arquivos a enviar"
// @Success 200 {array} AnexoResponse "Anexos registrados"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Ocorrência não encontrada"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/ocorrencia/{id}/anexos [post]
// @Security ApiKeyAuth
func (h *Handler) CreateAnexoHandler(c echo.Context) error {
	ocorrenciaID, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "id inválido")
	}

	request, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, "falha ao ler o formulário multipart")
	}

	result, err := h.InterfaceService.CreateAnexoService(c.Request().Context(), ocorrenciaID, request)
	if errors.Is(err, ErrOcorrenciaNaoEncontrada) {
		return c.JSON(http.StatusNotFound, err.Error())
	}
	if errors.Is(err, ErrExtensaoInvalida) {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetAnexosHandler godoc
// @Summary Listar anexos da ocorrência.
// @Description Lista os arquivos anexados à ocorrência.
// @Tags Anexos
// @Produce json
// @Param id path string true "ID da ocorrência"
// @Success 200 {array} AnexoResponse "Anexos da ocorrência"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/ocorrencia/{id}/anexos [get]
// @Security ApiKeyAuth
func (h *Handler) GetAnexosHandler(c echo.Context) error {
	ocorrenciaID, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "id inválido")
	}

	result, err := h.InterfaceService.GetAnexosByOcorrenciaService(c.Request().Context(), ocorrenciaID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// DeleteAnexoHandler godoc
// @Summary Remover anexo.
// @Description Remove o arquivo do bucket e apaga o registro.
// @Tags Anexos
// @Produce json
// @Param id path string true "ID do anexo"
// @Success 200 {string} string "Sucesso"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Anexo não encontrado"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/anexo/{id} [delete]
// @Security ApiKeyAuth
func (h *Handler) DeleteAnexoHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "id inválido")
	}

	if err := h.InterfaceService.DeleteAnexoService(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrAnexoNaoEncontrado) {
			return c.JSON(http.StatusNotFound, err.Error())
		}
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, "Sucesso")
}
