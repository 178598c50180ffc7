package plate

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"sentinela/pkg"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

const cacheTTL = 30 * time.Minute

type Client struct {
	http    *resty.Client
	baseURL string
	token   string
}

func NewClient(baseURL string, token string) *Client {
	return &Client{
		http:    resty.New().SetTimeout(20 * time.Second),
		baseURL: baseURL,
		token:   token,
	}
}

// ConsultarPlaca busca os dados cadastrais do veículo no provedor externo.
// Respostas válidas ficam em cache no Redis por 30 minutos.
func (c *Client) ConsultarPlaca(placa string) (*ConsultaResponse, error) {
	placa = strings.ToUpper(strings.TrimSpace(placa))
	placa = strings.ReplaceAll(placa, "-", "")
	cacheKey := "placa:" + placa

	if pkg.Rdb != nil {
		if cached, err := pkg.Rdb.Get(pkg.Ctx, cacheKey).Result(); err == nil {
			var cachedResp ConsultaResponse
			if err := json.Unmarshal([]byte(cached), &cachedResp); err == nil {
				return &cachedResp, nil
			}
		}
	}

	var consultaResp ConsultaResponse
	resp, err := c.http.R().
		SetHeader("Authorization", "Bearer "+c.token).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{"placa": placa}).
		SetResult(&consultaResp).
		Post(c.baseURL + "/vehicles/dados")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		log.WithFields(log.Fields{
			"placa":  placa,
			"status": resp.StatusCode(),
		}).Warn("consulta externa de placa falhou")
		return nil, errors.New("provedor externo indisponível")
	}

	if consultaResp.Error {
		return nil, errors.New(consultaResp.Message)
	}

	if pkg.Rdb != nil {
		respBytes, _ := json.Marshal(consultaResp)
		if err := pkg.Rdb.Set(pkg.Ctx, cacheKey, respBytes, cacheTTL).Err(); err != nil {
			log.WithError(err).Warn("falha ao salvar consulta de placa no Redis")
		}
	}

	return &consultaResp, nil
}
