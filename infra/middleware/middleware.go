package middleware

import (
	"net/http"
	"os"
	"strings"

	"sentinela/infra/token"

	"github.com/labstack/echo/v4"
)

func CheckAuthorization(handlerFunc echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {

		bearerToken := c.Request().Header.Get("Authorization")
		tokenStr := strings.Replace(bearerToken, "Bearer ", "", 1)

		maker, err := token.NewPasetoMaker(os.Getenv("SIGNATURE_STRING"))
		if err != nil {
			return c.JSON(http.StatusBadGateway, err.Error())
		}

		tokenPayload, err := maker.VerifyToken(tokenStr)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, err.Error())
		}
		c.Set("token_id", tokenPayload.ID)
		c.Set("token_operador_id", tokenPayload.OperadorID)
		c.Set("token_matricula", tokenPayload.Matricula)
		c.Set("token_nome", tokenPayload.Nome)
		c.Set("token_email", tokenPayload.Email)
		c.Set("token_expiry_at", tokenPayload.ExpiredAt)

		return handlerFunc(c)
	}
}
