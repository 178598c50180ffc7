package municipality

import (
	"context"
	"encoding/json"
	"time"

	"sentinela/pkg"

	log "github.com/sirupsen/logrus"
)

const cacheKey = "municipios"
const cacheTTL = 24 * time.Hour

type InterfaceService interface {
	ListMunicipiosService(ctx context.Context) (MunicipiosResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
}

func NewMunicipalityService(InterfaceService InterfaceRepository) *Service {
	return &Service{InterfaceService}
}

// ListMunicipiosService devolve o catálogo de municípios como "NOME - UF".
// A lista muda raramente, então fica 24h no Redis.
func (p *Service) ListMunicipiosService(ctx context.Context) (MunicipiosResponse, error) {
	if pkg.Rdb != nil {
		if cached, err := pkg.Rdb.Get(pkg.Ctx, cacheKey).Result(); err == nil {
			var municipios []string
			if err := json.Unmarshal([]byte(cached), &municipios); err == nil {
				return MunicipiosResponse{Municipios: municipios}, nil
			}
		}
	}

	result, err := p.InterfaceService.ListMunicipios(ctx)
	if err != nil {
		return MunicipiosResponse{}, err
	}

	municipios := make([]string, 0, len(result))
	for _, municipio := range result {
		municipios = append(municipios, FormatMunicipio(municipio))
	}

	if pkg.Rdb != nil {
		raw, _ := json.Marshal(municipios)
		if err := pkg.Rdb.Set(pkg.Ctx, cacheKey, raw, cacheTTL).Err(); err != nil {
			log.WithError(err).Warn("falha ao salvar municípios no Redis")
		}
	}

	return MunicipiosResponse{Municipios: municipios}, nil
}
