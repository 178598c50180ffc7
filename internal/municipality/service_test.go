package municipality

import (
	"context"
	"testing"

	db "sentinela/db/sqlc"

	"github.com/stretchr/testify/assert"
)

type fakeMunicipalityRepository struct {
	municipios []db.Municipio
}

func (f *fakeMunicipalityRepository) ListMunicipios(ctx context.Context) ([]db.Municipio, error) {
	return f.municipios, nil
}

func TestListMunicipiosServiceFormataNomeUf(t *testing.T) {
	repo := &fakeMunicipalityRepository{
		municipios: []db.Municipio{
			{ID: 1, Nome: "CASCAVEL", Uf: "PR"},
			{ID: 2, Nome: "FOZ DO IGUAÇU", Uf: "PR"},
		},
	}
	service := NewMunicipalityService(repo)

	response, err := service.ListMunicipiosService(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"CASCAVEL - PR", "FOZ DO IGUAÇU - PR"}, response.Municipios)
}

func TestListMunicipiosServiceVazio(t *testing.T) {
	service := NewMunicipalityService(&fakeMunicipalityRepository{})

	response, err := service.ListMunicipiosService(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, response.Municipios)
	assert.NotNil(t, response.Municipios)
}
