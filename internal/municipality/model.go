package municipality

import (
	"fmt"

	db "sentinela/db/sqlc"
)

type MunicipiosResponse struct {
	Municipios []string `json:"municipios"`
}

// FormatMunicipio devolve a forma exibida nos formulários: "NOME - UF".
func FormatMunicipio(result db.Municipio) string {
	return fmt.Sprintf("%s - %s", result.Nome, result.Uf)
}
