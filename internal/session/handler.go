package session

import (
	"errors"
	"net/http"

	"sentinela/validation"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service}
}

// Login godoc
// @Summary Autenticar operador.
// @Description Autentica por matrícula e chave de acesso ou por ID token do Google.
// @Tags Sessao
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credenciais do operador"
// @Success 200 {object} LoginResponse "Operador autenticado"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 401 {string} string "Credenciais inválidas"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/sessao [post]
func (h *Handler) Login(e echo.Context) error {
	var request LoginRequest
	if err := e.Bind(&request); err != nil {
		return e.JSON(http.StatusBadRequest, err.Error())
	}

	if request.Token == "" && (request.Matricula == "" || request.ChaveAcesso == "") {
		return e.JSON(http.StatusBadRequest, "informe matrícula e chave de acesso ou token")
	}

	result, err := h.service.Login(e.Request().Context(), request)
	if errors.Is(err, ErrOperadorNaoEncontrado) || errors.Is(err, ErrCredenciaisInvalidas) {
		return e.JSON(http.StatusUnauthorized, err.Error())
	}
	if err != nil {
		return e.JSON(http.StatusInternalServerError, err.Error())
	}

	return e.JSON(http.StatusOK, result)
}

// CriarOperador godoc
// @Summary Cadastrar operador.
// @Description Registra um novo operador com chave de acesso criptografada.
// @Tags Sessao
// @Accept json
// @Produce json
// @Param request body CriarOperadorRequest true "Dados do operador"
// @Success 200 {object} CriarOperadorResponse "Operador cadastrado"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 409 {string} string "Operador já cadastrado"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/operador [post]
// @Security ApiKeyAuth
func (h *Handler) CriarOperador(e echo.Context) error {
	var request CriarOperadorRequest
	if err := e.Bind(&request); err != nil {
		return e.JSON(http.StatusBadRequest, err.Error())
	}

	if err := validation.Validate(request); err != nil {
		return e.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.CriarOperador(e.Request().Context(), request)
	if errors.Is(err, ErrOperadorJaExiste) {
		return e.JSON(http.StatusConflict, err.Error())
	}
	if err != nil {
		return e.JSON(http.StatusInternalServerError, err.Error())
	}

	return e.JSON(http.StatusOK, result)
}
