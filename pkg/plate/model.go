package plate

type ConsultaResponse struct {
	Error   bool     `json:"error"`
	Message string   `json:"message"`
	Data    Response `json:"response"`
}

type Response struct {
	Placa           string `json:"placa"`
	Marca           string `json:"marca"`
	Modelo          string `json:"modelo"`
	Cor             string `json:"cor"`
	AnoModelo       string `json:"ano_modelo"`
	Municipio       string `json:"municipio"`
	Uf              string `json:"uf"`
	Combustivel     string `json:"combustivel"`
	Chassi          string `json:"chassi"`
	SituacaoVeiculo string `json:"situacao_veiculo"`
	TipoVeiculo     struct {
		TipoVeiculo string `json:"tipo_veiculo"`
	} `json:"tipo_veiculo"`
	Restricoes []string `json:"restricoes"`
}
