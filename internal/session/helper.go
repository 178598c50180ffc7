package session

import (
	"golang.org/x/crypto/bcrypt"
)

func verifyChaveAcesso(providedChave, storedHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(providedChave))
	return err == nil
}

func hashChaveAcesso(chave string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(chave), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
