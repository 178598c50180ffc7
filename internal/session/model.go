package session

type LoginRequest struct {
	Matricula   string `json:"matricula"`
	ChaveAcesso string `json:"chave_acesso"`
	Token       string `json:"token"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Nome      string `json:"nome"`
	Matricula string `json:"matricula"`
	Email     string `json:"email"`
}

type CriarOperadorRequest struct {
	Matricula   string `json:"matricula" validate:"required"`
	Nome        string `json:"nome" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	ChaveAcesso string `json:"chave_acesso" validate:"required,min=8"`
}

type CriarOperadorResponse struct {
	ID        int64  `json:"id"`
	Matricula string `json:"matricula"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
}
