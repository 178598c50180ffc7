package token

import (
	"time"
)

type Maker interface {
	VerifyToken(token string) (*Payload, error)
	CreateToken(
		operadorID int64,
		matricula string,
		nome string,
		email string,
		duration time.Duration,
	) (string, error)
}
