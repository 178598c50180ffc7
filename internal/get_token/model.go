package get_token

import (
	"time"

	"github.com/google/uuid"
)

type PayloadDTO struct {
	ID         uuid.UUID `json:"id"`
	OperadorID int64     `json:"operador_id"`
	Matricula  string    `json:"matricula"`
	Nome       string    `json:"nome"`
	Email      string    `json:"email"`
	ExpiryAt   time.Time `json:"expiry_at"`
}
