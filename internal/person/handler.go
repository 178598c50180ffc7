package person

import (
	"errors"
	"net/http"

	"sentinela/validation"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewPersonHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// ConsultaCpfHandler godoc
// @Summary Consultar CPF/CNPJ.
// @Description Recupera as pessoas registradas com o documento e os veículos vinculados.
// @Tags Pessoa
// @Accept json
// @Produce json
// @Param cpf path string true "CPF ou CNPJ, com ou sem máscara"
// @Success 200 {object} ConsultaCpfResponse "Resultado da consulta"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Pessoa não encontrada"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/consulta_cpf/{cpf} [get]
// @Security ApiKeyAuth
func (p *Handler) ConsultaCpfHandler(c echo.Context) error {
	documento := c.Param("cpf")
	if documento == "" {
		return c.JSON(http.StatusBadRequest, "informe o documento")
	}

	result, err := p.InterfaceService.ConsultaCpfService(c.Request().Context(), documento)
	if errors.Is(err, ErrDocumentoInvalido) {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, ErrPessoaNaoEncontrada) {
		return c.JSON(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// UpdatePessoaHandler godoc
// @Summary Atualizar pessoa.
// @Description Atualiza nome e marcadores de vínculo de uma pessoa.
// @Tags Pessoa
// @Accept json
// @Produce json
// @Param id path string true "ID da pessoa"
// @Param request body UpdatePessoaRequest true "Campos a atualizar"
// @Success 200 {string} string "Sucesso"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Pessoa não encontrada"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/pessoa/{id} [put]
// @Security ApiKeyAuth
func (p *Handler) UpdatePessoaHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	var request UpdatePessoaRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	request.ID = id

	err = p.InterfaceService.UpdatePessoaService(c.Request().Context(), request)
	if errors.Is(err, ErrPessoaNaoEncontrada) {
		return c.JSON(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, "Sucesso")
}

// DeletePessoaHandler godoc
// @Summary Excluir pessoa.
// @Description Remove o registro da pessoa.
// @Tags Pessoa
// @Accept json
// @Produce json
// @Param id path string true "ID da pessoa"
// @Success 200 {string} string "Sucesso"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Pessoa não encontrada"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /api/pessoa/{id} [delete]
// @Security ApiKeyAuth
func (p *Handler) DeletePessoaHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	err = p.InterfaceService.DeletePessoaService(c.Request().Context(), id)
	if errors.Is(err, ErrPessoaNaoEncontrada) {
		return c.JSON(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, "Sucesso")
}
