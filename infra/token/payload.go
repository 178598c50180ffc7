package token

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrExpiredToken = errors.New("token has expired")
var ErrInvalidToken = errors.New("token is invalid")

type Payload struct {
	ID         uuid.UUID `json:"id"`
	OperadorID int64     `json:"operador_id"`
	Matricula  string    `json:"matricula"`
	Nome       string    `json:"nome"`
	Email      string    `json:"email"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiredAt  time.Time `json:"expired_at"`
}

func (payload *Payload) valid() error {
	if time.Now().After(payload.ExpiredAt) {
		return ErrExpiredToken
	}
	return nil
}

func NewPayload(operadorID int64, matricula string, nome string, email string, duration time.Duration) (*Payload, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	payload := &Payload{
		ID:         tokenID,
		OperadorID: operadorID,
		Matricula:  matricula,
		Nome:       nome,
		Email:      email,
		IssuedAt:   time.Now(),
		ExpiredAt:  time.Now().Add(duration),
	}

	return payload, nil
}
