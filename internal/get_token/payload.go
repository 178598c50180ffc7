package get_token

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func GetPayloadToken(c echo.Context) PayloadDTO {
	strID, _ := c.Get("token_id").(uuid.UUID)
	strOperadorID, _ := c.Get("token_operador_id").(int64)
	strMatricula, _ := c.Get("token_matricula").(string)
	strNome, _ := c.Get("token_nome").(string)
	strEmail, _ := c.Get("token_email").(string)
	strExpiryAt, _ := c.Get("token_expiry_at").(time.Time)

	return PayloadDTO{
		ID:         strID,
		OperadorID: strOperadorID,
		Matricula:  strMatricula,
		Nome:       strNome,
		Email:      strEmail,
		ExpiryAt:   strExpiryAt,
	}
}
